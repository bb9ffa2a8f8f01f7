// Package detector inspects the process environment to pick an output mode.
package detector

import (
	"os"

	"golang.org/x/term"
)

// CIEnv is the variable that, when truthy, disables terminal features.
const CIEnv = "CI"

// IsInteractive reports whether stdout is a terminal outside of CI.
func IsInteractive() bool {
	return Interactive(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv(CIEnv))
}

// Interactive applies the CI override to a terminal check.
func Interactive(isTTY bool, ci string) bool {
	if ci == "true" || ci == "1" {
		return false
	}
	return isTTY
}
