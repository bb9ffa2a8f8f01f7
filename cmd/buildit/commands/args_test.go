package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildit/cmd/buildit/commands"
	"go.trai.ch/buildit/internal/core/domain"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected domain.Flags
	}{
		{
			name:     "no arguments",
			args:     nil,
			expected: domain.Flags{},
		},
		{
			name:     "configure debug with source",
			args:     []string{"-cd", "-s", "/proj"},
			expected: domain.Flags{Mode: domain.ModeConfigure, BuildType: domain.BuildTypeDebug, SourceDir: "/proj"},
		},
		{
			name:     "plain configure keeps earlier build type",
			args:     []string{"-cd", "-c"},
			expected: domain.Flags{Mode: domain.ModeConfigure, BuildType: domain.BuildTypeDebug},
		},
		{
			name:     "last mode wins",
			args:     []string{"-cr", "-j"},
			expected: domain.Flags{Mode: domain.ModeBuild, BuildType: domain.BuildTypeRelease},
		},
		{
			name:     "clean with build dir",
			args:     []string{"-m", "-b", "out"},
			expected: domain.Flags{Mode: domain.ModeClean, BuildDir: "out"},
		},
		{
			name: "extra arguments keep order",
			args: []string{"-j", "--target", "sim", "--", "-j8"},
			expected: domain.Flags{
				Mode:      domain.ModeBuild,
				ExtraArgs: []string{"--target", "sim", "--", "-j8"},
			},
		},
		{
			name:     "help short-circuits",
			args:     []string{"-j", "-h", "-s"},
			expected: domain.Flags{Mode: domain.ModeHelp},
		},
		{
			name:     "version short-circuits",
			args:     []string{"-cd", "-v", "-b"},
			expected: domain.Flags{Mode: domain.ModeConfigure, BuildType: domain.BuildTypeDebug, ShowVersion: true},
		},
		{
			name:     "flag value may look like a flag",
			args:     []string{"-j", "-s", "-weird"},
			expected: domain.Flags{Mode: domain.ModeBuild, SourceDir: "-weird"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := commands.ParseArgs(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseArgs_MissingValue(t *testing.T) {
	for _, args := range [][]string{{"-j", "-s"}, {"-b"}} {
		_, err := commands.ParseArgs(args)
		require.ErrorIs(t, err, domain.ErrMissingFlagValue)
	}
}
