package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingSourceDir is returned when neither -s nor SIM_DIR names a source directory.
	ErrMissingSourceDir = zerr.New("source directory not set, pass -s or set " + SourceDirEnv)

	// ErrMissingAction is returned when no mode-selecting flag was given.
	ErrMissingAction = zerr.New("-c, -cr, -cd, -j or -m needs to be provided")

	// ErrMissingFlagValue is returned when -s or -b is the last token.
	ErrMissingFlagValue = zerr.New("flag needs a value")

	// ErrMalformedRecord is returned when the build record is incomplete or carries an invalid mode tag.
	ErrMalformedRecord = zerr.New("malformed build record")

	// ErrRecordReadFailed is returned when the build record cannot be read.
	ErrRecordReadFailed = zerr.New("failed to read build record")

	// ErrRecordWriteFailed is returned when the build record cannot be written.
	ErrRecordWriteFailed = zerr.New("failed to write build record")

	// ErrSettingsReadFailed is returned when the project settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read project settings")

	// ErrSettingsParseFailed is returned when the project settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse project settings")

	// ErrResolvePathFailed is returned when a directory cannot be made absolute.
	ErrResolvePathFailed = zerr.New("failed to resolve directory")

	// ErrUnsafeCleanTarget is returned when clean would remove the filesystem root or the sources.
	ErrUnsafeCleanTarget = zerr.New("refusing to remove build directory")

	// ErrCleanFailed is returned when the build directory cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove build directory")

	// ErrExternalCommandFailed is returned when the generator or build driver exits non-zero.
	ErrExternalCommandFailed = zerr.New("external command failed")

	// ErrHelperFailed is returned when one or more helper files could not be generated.
	ErrHelperFailed = zerr.New("failed to generate helper files")
)
