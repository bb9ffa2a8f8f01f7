package domain

const (
	// BuildTypeRelease is the optimized compilation profile.
	BuildTypeRelease = "Release"
	// BuildTypeDebug is the debug compilation profile.
	BuildTypeDebug = "Debug"

	// DefaultBuildType is used when no build type was requested.
	DefaultBuildType = BuildTypeRelease
)

// Flags holds what was requested on the command line, before any
// environment default or persisted record is consulted.
// Empty strings mean "not given".
type Flags struct {
	Mode        Mode
	BuildType   string
	SourceDir   string
	BuildDir    string
	ExtraArgs   []string
	ShowVersion bool
}

// BuildTypeOrDefault returns the requested build type or DefaultBuildType.
func (f Flags) BuildTypeOrDefault() string {
	if f.BuildType == "" {
		return DefaultBuildType
	}
	return f.BuildType
}

// Configuration is the effective build configuration for one invocation.
// SourceDir and BuildDir are absolute and end in exactly one separator.
type Configuration struct {
	Mode      Mode
	BuildType string
	SourceDir string
	BuildDir  string
	ExtraArgs []string
}

// Record returns the subset of c that is written to the build record,
// tagged with the given mode.
func (c Configuration) Record(mode Mode) Configuration {
	return Configuration{
		Mode:      mode,
		BuildType: c.BuildType,
		SourceDir: c.SourceDir,
		BuildDir:  c.BuildDir,
	}
}
