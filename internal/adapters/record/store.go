// Package record implements the build record kept in the source directory.
package record

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/buildit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Record keys, in file order.
const (
	keyBuildMode = "buildMode"
	keyBuildType = "buildType"
	keySourceDir = "sourceDir"
	keyBuildDir  = "buildDir"
)

var keyOrder = [...]string{keyBuildMode, keyBuildType, keySourceDir, keyBuildDir}

// Store implements ports.RecordStore with a four line "key = value" file.
type Store struct{}

// NewStore creates a new record Store.
func NewStore() *Store {
	return &Store{}
}

// Exists reports whether sourceDir holds a build record.
func (s *Store) Exists(sourceDir string) (bool, error) {
	path := domain.RecordPath(sourceDir)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(domain.ErrRecordReadFailed, err.Error()), "path", path)
	}
	return info.Mode().IsRegular(), nil
}

// Write replaces the record in sourceDir. The file is written to a temporary
// sibling and renamed into place so readers never see a partial record.
func (s *Store) Write(sourceDir string, cfg domain.Configuration) error {
	path := domain.RecordPath(sourceDir)

	if err := writeFileAtomic(path, encode(cfg)); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrRecordWriteFailed, err.Error()), "path", path)
	}
	return nil
}

// Read loads the record from sourceDir. The stored source directory is parsed
// but not returned; relative build directories are resolved against sourceDir.
func (s *Store) Read(sourceDir string) (domain.Configuration, error) {
	path := domain.RecordPath(sourceDir)

	//nolint:gosec // Path is the fixed record name inside the resolved source directory
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Configuration{}, zerr.With(zerr.Wrap(domain.ErrRecordReadFailed, err.Error()), "path", path)
	}

	values, err := decode(data)
	if err != nil {
		return domain.Configuration{}, zerr.With(err, "path", path)
	}

	mode, err := domain.ParseModeTag(values[0])
	if err != nil {
		return domain.Configuration{}, zerr.With(err, "path", path)
	}

	buildDir := values[3]
	if !filepath.IsAbs(buildDir) {
		buildDir = filepath.Join(sourceDir, buildDir)
	}
	buildDir, err = domain.NormalizeDir(buildDir)
	if err != nil {
		return domain.Configuration{}, err
	}

	return domain.Configuration{
		Mode:      mode,
		BuildType: values[1],
		BuildDir:  buildDir,
	}, nil
}

func encode(cfg domain.Configuration) []byte {
	var buf bytes.Buffer
	_, _ = fmt.Fprintf(&buf, "%s = %s\n", keyBuildMode, strconv.FormatUint(uint64(cfg.Mode), 10))
	_, _ = fmt.Fprintf(&buf, "%s = %s\n", keyBuildType, cfg.BuildType)
	_, _ = fmt.Fprintf(&buf, "%s = %s\n", keySourceDir, cfg.SourceDir)
	_, _ = fmt.Fprintf(&buf, "%s = %s\n", keyBuildDir, cfg.BuildDir)
	return buf.Bytes()
}

// decode returns the trimmed values of the first four lines. Every line must
// carry its expected key and, except for sourceDir, a non-empty value.
func decode(data []byte) ([len(keyOrder)]string, error) {
	var values [len(keyOrder)]string

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for i, want := range keyOrder {
		if !scanner.Scan() {
			return values, zerr.With(zerr.Wrap(domain.ErrMalformedRecord, "missing line"), "key", want)
		}

		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok || strings.TrimSpace(key) != want {
			return values, zerr.With(zerr.Wrap(domain.ErrMalformedRecord, "unexpected line"), "line", i+1)
		}

		value = strings.TrimSpace(value)
		if value == "" && want != keySourceDir {
			return values, zerr.With(zerr.Wrap(domain.ErrMalformedRecord, "empty value"), "key", want)
		}
		values[i] = value
	}

	if err := scanner.Err(); err != nil {
		return values, zerr.Wrap(domain.ErrMalformedRecord, err.Error())
	}

	return values, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
