package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const separator = string(filepath.Separator)

// NormalizeDir returns dir as an absolute, cleaned path ending in exactly one separator.
// Relative paths are resolved against the working directory.
func NormalizeDir(dir string) (string, error) {
	abs, err := filepath.Abs(strings.TrimSpace(dir))
	if err != nil {
		return "", zerr.With(zerr.Wrap(ErrResolvePathFailed, err.Error()), "dir", dir)
	}
	if strings.HasSuffix(abs, separator) {
		return abs, nil
	}
	return abs + separator, nil
}

// ResolveSourceDir picks the source directory. A non-blank flag value wins over
// the environment value; if both are blank ErrMissingSourceDir is returned.
func ResolveSourceDir(envValue, flagValue string) (string, error) {
	dir := strings.TrimSpace(flagValue)
	if dir == "" {
		dir = strings.TrimSpace(envValue)
	}
	if dir == "" {
		return "", ErrMissingSourceDir
	}
	return NormalizeDir(dir)
}

// ResolveBuildRoot returns the directory holding every build type: the
// normalized flag value if given, otherwise sourceDir/build/.
func ResolveBuildRoot(sourceDir, flagValue string) (string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return NormalizeDir(flagValue)
	}
	return sourceDir + BuildDirName + separator, nil
}

// ResolveBuildDir returns the build directory for one build type.
func ResolveBuildDir(sourceDir, flagValue, buildType string) (string, error) {
	root, err := ResolveBuildRoot(sourceDir, flagValue)
	if err != nil {
		return "", err
	}
	return root + buildType + separator, nil
}

// UnsafeCleanTarget reports whether removing root would be catastrophic:
// root is blank, the filesystem root, or contains sourceDir.
func UnsafeCleanTarget(root, sourceDir string) bool {
	root = strings.TrimSpace(root)
	if root == "" {
		return true
	}
	cleaned := filepath.Clean(root)
	if cleaned == filepath.Dir(cleaned) {
		return true
	}
	if sourceDir == "" {
		return false
	}
	rel, err := filepath.Rel(cleaned, filepath.Clean(sourceDir))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+separator))
}
