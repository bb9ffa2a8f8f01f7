package commands

import (
	"go.trai.ch/buildit/internal/core/domain"
	"go.trai.ch/zerr"
)

// ParseArgs reads the raw command line left to right. The last mode flag
// wins; -h and -v stop the scan where they appear. Unrecognized tokens are
// kept, in order, as extra arguments.
func ParseArgs(args []string) (domain.Flags, error) {
	var flags domain.Flags

	for i := 0; i < len(args); i++ {
		switch tok := args[i]; tok {
		case "-c":
			flags.Mode = domain.ModeConfigure
		case "-cr":
			flags.Mode = domain.ModeConfigure
			flags.BuildType = domain.BuildTypeRelease
		case "-cd":
			flags.Mode = domain.ModeConfigure
			flags.BuildType = domain.BuildTypeDebug
		case "-j":
			flags.Mode = domain.ModeBuild
		case "-m":
			flags.Mode = domain.ModeClean
		case "-h":
			flags.Mode = domain.ModeHelp
			return flags, nil
		case "-v":
			flags.ShowVersion = true
			return flags, nil
		case "-s", "-b":
			if i+1 >= len(args) {
				return domain.Flags{}, zerr.With(zerr.Wrap(domain.ErrMissingFlagValue, "missing directory"), "flag", tok)
			}
			i++
			if tok == "-s" {
				flags.SourceDir = args[i]
			} else {
				flags.BuildDir = args[i]
			}
		default:
			flags.ExtraArgs = append(flags.ExtraArgs, tok)
		}
	}

	return flags, nil
}
