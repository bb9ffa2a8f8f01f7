package main

import (
	"errors"

	"go.trai.ch/buildit/internal/core/domain"
)

// Exit codes for failures that happen before or instead of an external command.
// A failed external command surfaces its own exit code.
const (
	exitSuccess       = 0
	exitFailure       = 1
	exitUsage         = 2
	exitNoSource      = 3
	exitBadRecord     = 4
	exitIO            = 5
	exitUnsafeCleanup = 6
)

func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}

	var cmdErr *domain.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}

	switch {
	case errors.Is(err, domain.ErrMissingAction), errors.Is(err, domain.ErrMissingFlagValue):
		return exitUsage
	case errors.Is(err, domain.ErrMissingSourceDir):
		return exitNoSource
	case errors.Is(err, domain.ErrMalformedRecord):
		return exitBadRecord
	case errors.Is(err, domain.ErrUnsafeCleanTarget):
		return exitUnsafeCleanup
	case errors.Is(err, domain.ErrRecordReadFailed),
		errors.Is(err, domain.ErrRecordWriteFailed),
		errors.Is(err, domain.ErrSettingsReadFailed),
		errors.Is(err, domain.ErrSettingsParseFailed),
		errors.Is(err, domain.ErrResolvePathFailed),
		errors.Is(err, domain.ErrCleanFailed):
		return exitIO
	default:
		return exitFailure
	}
}
