package domain

import "path/filepath"

const (
	// SourceDirEnv names the environment variable holding the default source directory.
	SourceDirEnv = "SIM_DIR"

	// LogFormatEnv selects the log format; "json" switches to structured JSON logs.
	LogFormatEnv = "BUILDIT_LOG_FORMAT"

	// RecordFileName is the build record kept in the source directory.
	RecordFileName = ".buildit.build"

	// SettingsFileName is the optional project settings file in the source directory.
	SettingsFileName = "buildit.yaml"

	// BuildDirName is the default build root below the source directory.
	BuildDirName = "build"

	// HelperDirName is the directory below a build directory holding helper files.
	HelperDirName = "config"

	// LauncherName is the generated runner launcher.
	LauncherName = "runit"

	// RunnerLinkName is the link to the built runner binary.
	RunnerLinkName = "runnerLink"

	// PathScriptName is the generated PATH setup script.
	PathScriptName = "config.sh"

	// ExecLinkName is the link from the source tree to the helper directory.
	ExecLinkName = "exec"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission for generated executables (rwxr-xr-x).
	ExecPerm = 0o755
)

// RecordPath returns the location of the build record for a source directory.
func RecordPath(sourceDir string) string {
	return filepath.Join(sourceDir, RecordFileName)
}

// SettingsPath returns the location of the project settings file.
func SettingsPath(sourceDir string) string {
	return filepath.Join(sourceDir, SettingsFileName)
}

// HelperDir returns the helper directory of a build directory, with a trailing separator.
func HelperDir(buildDir string) string {
	return buildDir + HelperDirName + string(filepath.Separator)
}
