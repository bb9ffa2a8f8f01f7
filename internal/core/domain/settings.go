package domain

// Settings are per-project options read from buildit.yaml.
type Settings struct {
	// Generator is the program used both to configure and to build.
	Generator string
	// Defines are extra cache entries passed as -D<key>=<value> on configure.
	Defines map[string]string
	// Environment is merged over the inherited environment of every command.
	Environment map[string]string
	Helper      HelperSettings
}

// HelperSettings control the files generated after a successful build.
// Paths are relative to the source or build directory.
type HelperSettings struct {
	Enabled      bool
	Interpreter  string
	Runner       string
	LinkDir      string
	RunnerBinary string
}

// DefaultSettings returns the settings used when no buildit.yaml exists.
func DefaultSettings() Settings {
	return Settings{
		Generator: "cmake",
		Defines: map[string]string{
			"CMAKE_EXPORT_COMPILE_COMMANDS": "ON",
		},
		Environment: map[string]string{},
		Helper: HelperSettings{
			Enabled:      true,
			Interpreter:  "python3",
			Runner:       "Sim/Runner/runit.py",
			LinkDir:      "Sim/config",
			RunnerBinary: "Sim/Runner/runner",
		},
	}
}
