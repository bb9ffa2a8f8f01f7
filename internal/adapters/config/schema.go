package config

// File represents the structure of the buildit.yaml settings file.
// Omitted fields keep their default values.
type File struct {
	Generator   *string           `yaml:"generator"`
	Defines     map[string]string `yaml:"defines"`
	Environment map[string]string `yaml:"environment"`
	Helper      *HelperDTO        `yaml:"helper"`
}

// HelperDTO represents the helper section of the settings file.
type HelperDTO struct {
	Enabled      *bool   `yaml:"enabled"`
	Interpreter  *string `yaml:"interpreter"`
	Runner       *string `yaml:"runner"`
	LinkDir      *string `yaml:"linkDir"`
	RunnerBinary *string `yaml:"runnerBinary"`
}
