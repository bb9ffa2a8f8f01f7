package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildit/cmd/buildit/commands"
	"go.trai.ch/buildit/internal/build"
	"go.trai.ch/buildit/internal/core/domain"
)

type mockApp struct {
	runFunc func(ctx context.Context, flags domain.Flags, envSourceDir string) error
}

func (m *mockApp) Run(ctx context.Context, flags domain.Flags, envSourceDir string) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, flags, envSourceDir)
	}
	return nil
}

func mustNotRun(_ context.Context, _ domain.Flags, _ string) error {
	panic("should not be called")
}

func TestCommands_Run(t *testing.T) {
	t.Run("passes flags and environment", func(t *testing.T) {
		t.Setenv(domain.SourceDirEnv, "/env/proj")

		var captured domain.Flags
		var capturedEnv string
		mock := &mockApp{
			runFunc: func(_ context.Context, flags domain.Flags, env string) error {
				captured = flags
				capturedEnv = env
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"-cd", "-b", "out", "-DFOO=1"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.Flags{
			Mode:      domain.ModeConfigure,
			BuildType: domain.BuildTypeDebug,
			BuildDir:  "out",
			ExtraArgs: []string{"-DFOO=1"},
		}, captured)
		assert.Equal(t, "/env/proj", capturedEnv)
	})

	t.Run("returns application errors", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ domain.Flags, _ string) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"-j"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("missing flag value stops before the application", func(t *testing.T) {
		cli := commands.New(&mockApp{runFunc: mustNotRun})
		cli.SetArgs([]string{"-j", "-s"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrMissingFlagValue)
	})
}

func TestCommands_Help(t *testing.T) {
	cli := commands.New(&mockApp{runFunc: mustNotRun})
	out := new(bytes.Buffer)
	cli.SetArgs([]string{"-j", "-h"})
	cli.SetOutput(out, new(bytes.Buffer))

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "buildit -c -cr -cd -j -m -h -s -b -v\n")
	assert.Contains(t, out.String(), "  -cd: configure debug\n")
	assert.Contains(t, out.String(), "  -v: version\n")
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{runFunc: mustNotRun})
	out := new(bytes.Buffer)
	cli.SetArgs([]string{"-v", "-j"})
	cli.SetOutput(out, new(bytes.Buffer))

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t,
		"buildit version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
		out.String())
}
