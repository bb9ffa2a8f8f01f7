package domain

import (
	"slices"
	"strings"
)

// Command is an external process invocation.
type Command struct {
	Name        string
	Args        []string
	Environment map[string]string
}

// String renders the command line the way it is echoed before running.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// ConfigureCommand returns the generator invocation for cfg.
func ConfigureCommand(cfg Configuration, s Settings) Command {
	args := []string{
		"-S", cfg.SourceDir,
		"-B", cfg.BuildDir,
		"-DCMAKE_BUILD_TYPE=" + cfg.BuildType,
	}

	keys := make([]string, 0, len(s.Defines))
	for k := range s.Defines {
		if k == "CMAKE_BUILD_TYPE" {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		args = append(args, "-D"+k+"="+s.Defines[k])
	}

	return Command{
		Name:        s.Generator,
		Args:        append(args, cfg.ExtraArgs...),
		Environment: s.Environment,
	}
}

// BuildCommand returns the build driver invocation for cfg.
func BuildCommand(cfg Configuration, s Settings) Command {
	args := []string{"--build", cfg.BuildDir}
	return Command{
		Name:        s.Generator,
		Args:        append(args, cfg.ExtraArgs...),
		Environment: s.Environment,
	}
}
