package app_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildit/internal/app"
	"go.trai.ch/buildit/internal/core/domain"
	"go.trai.ch/buildit/internal/core/ports/mocks"
	"go.trai.ch/buildit/internal/engine/dispatcher"
	"go.trai.ch/buildit/internal/engine/reconciler"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	store    *mocks.MockRecordStore
	settings *mocks.MockSettingsLoader
	runner   *mocks.MockCommandRunner
	helper   *mocks.MockHelperGenerator
	logger   *mocks.MockLogger
	stdout   *bytes.Buffer
	app      *app.App
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		store:    mocks.NewMockRecordStore(ctrl),
		settings: mocks.NewMockSettingsLoader(ctrl),
		runner:   mocks.NewMockCommandRunner(ctrl),
		helper:   mocks.NewMockHelperGenerator(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		stdout:   &bytes.Buffer{},
	}
	f.app = app.New(
		reconciler.New(f.store, f.logger),
		f.settings,
		dispatcher.New(f.runner, f.helper, f.logger, f.stdout, &bytes.Buffer{}),
	)
	return f
}

func TestApp_ConfigureDebug(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.store.EXPECT().Write("/proj/", domain.Configuration{
			Mode:      domain.ModeConfigure,
			BuildType: domain.BuildTypeDebug,
			SourceDir: "/proj/",
			BuildDir:  "/proj/build/Debug/",
		}).Return(nil),
		f.settings.EXPECT().Load("/proj/").Return(domain.DefaultSettings(), nil),
		f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
				assert.Equal(t, "cmake", cmd.Name)
				assert.Contains(t, cmd.Args, "-DCMAKE_BUILD_TYPE=Debug")
				return nil
			}),
	)
	f.logger.EXPECT().Info("build record written", gomock.Any())

	err := f.app.Run(context.Background(), domain.Flags{
		Mode:      domain.ModeConfigure,
		BuildType: domain.BuildTypeDebug,
		SourceDir: "/proj",
	}, "")
	require.NoError(t, err)
}

func TestApp_BuildWithoutRecord(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings()
	settings.Helper.Enabled = false

	f.store.EXPECT().Exists("/proj/").Return(false, nil)
	f.store.EXPECT().Write("/proj/", gomock.Any()).Return(nil)
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).Times(2)
	f.settings.EXPECT().Load("/proj/").Return(settings, nil)
	f.runner.EXPECT().Run(gomock.Any(), domain.Command{
		Name:        "cmake",
		Args:        []string{"--build", "/proj/build/Release/"},
		Environment: settings.Environment,
	}, gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.app.Run(context.Background(), domain.Flags{Mode: domain.ModeBuild}, "/proj"))
}

func TestApp_MissingSourceDirWritesNothing(t *testing.T) {
	f := newFixture(t)

	err := f.app.Run(context.Background(), domain.Flags{Mode: domain.ModeConfigure}, "")
	require.ErrorIs(t, err, domain.ErrMissingSourceDir)
}

func TestApp_MissingAction(t *testing.T) {
	f := newFixture(t)

	err := f.app.Run(context.Background(), domain.Flags{ExtraArgs: []string{"foo"}}, "/proj")
	require.ErrorIs(t, err, domain.ErrMissingAction)
}

func TestApp_Help(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.app.Run(context.Background(), domain.Flags{Mode: domain.ModeHelp}, ""))
}

func TestApp_SettingsFailureStopsBeforeCommand(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any())
	f.settings.EXPECT().Load("/proj/").Return(domain.Settings{}, zerr.Wrap(domain.ErrSettingsParseFailed, "bad yaml"))

	err := f.app.Run(context.Background(), domain.Flags{Mode: domain.ModeConfigure}, "/proj")
	require.ErrorIs(t, err, domain.ErrSettingsParseFailed)
}

func TestApp_CleanSkipsSettings(t *testing.T) {
	f := newFixture(t)
	src := t.TempDir() + "/"

	require.NoError(t, f.app.Run(context.Background(), domain.Flags{Mode: domain.ModeClean}, src))
	assert.Equal(t, "Clearing build directory: "+src+"build/\n", f.stdout.String())
}

func TestApp_CleanWithBuildDirKeepsSiblings(t *testing.T) {
	f := newFixture(t)
	tmp := t.TempDir()
	shared := filepath.Join(tmp, "shared")
	require.NoError(t, os.MkdirAll(filepath.Join(shared, "Release"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(shared, "unrelated.txt"), []byte("keep"), 0o600))

	err := f.app.Run(context.Background(), domain.Flags{
		Mode:      domain.ModeClean,
		SourceDir: filepath.Join(tmp, "proj"),
		BuildDir:  shared,
	}, "")
	require.NoError(t, err)

	assert.Equal(t, "Clearing build directory: "+shared+"/Release/\n", f.stdout.String())
	assert.NoDirExists(t, filepath.Join(shared, "Release"))
	assert.FileExists(t, filepath.Join(shared, "unrelated.txt"))
}

func TestApp_CommandFailureKeepsExitCode(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any())
	f.settings.EXPECT().Load(gomock.Any()).Return(domain.DefaultSettings(), nil)
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(exec.ErrNotFound)

	err := f.app.Run(context.Background(), domain.Flags{Mode: domain.ModeConfigure}, "/proj")
	require.ErrorIs(t, err, domain.ErrExternalCommandFailed)

	var cmdErr *domain.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, domain.ExitCodeNotStarted, cmdErr.Code)
}
