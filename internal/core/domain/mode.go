package domain

import (
	"strconv"

	"go.trai.ch/zerr"
)

// Mode is the action requested on the command line.
// Its integer value is the tag persisted in the build record.
type Mode uint

const (
	// ModeUnset means no mode-selecting flag was given.
	ModeUnset Mode = iota
	// ModeConfigure generates the build system for a build type.
	ModeConfigure
	// ModeBuild runs the build driver against a generated build directory.
	ModeBuild
	// ModeClean removes the build output.
	ModeClean
	// ModeHelp prints usage.
	ModeHelp
)

var modeNames = [...]string{
	ModeUnset:     "unset",
	ModeConfigure: "configure",
	ModeBuild:     "build",
	ModeClean:     "clean",
	ModeHelp:      "help",
}

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "mode(" + strconv.FormatUint(uint64(m), 10) + ")"
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m <= ModeHelp
}

// ParseModeTag parses the integer tag stored in a build record.
func ParseModeTag(s string) (Mode, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return ModeUnset, zerr.With(zerr.Wrap(ErrMalformedRecord, "mode tag is not an integer"), "value", s)
	}
	m := Mode(n)
	if !m.Valid() {
		return ModeUnset, zerr.With(zerr.Wrap(ErrMalformedRecord, "mode tag out of range"), "value", s)
	}
	return m, nil
}
