// Package config provides the project settings loader for buildit.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"maps"
	"os"
	"strings"

	"go.trai.ch/buildit/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileSettingsLoader implements ports.SettingsLoader using buildit.yaml in the
// source directory.
type FileSettingsLoader struct{}

// NewLoader creates a new FileSettingsLoader.
func NewLoader() *FileSettingsLoader {
	return &FileSettingsLoader{}
}

// Load reads the settings for sourceDir. A missing file yields the defaults.
func (l *FileSettingsLoader) Load(sourceDir string) (domain.Settings, error) {
	path := domain.SettingsPath(sourceDir)

	data, err := os.ReadFile(path) //nolint:gosec // path is the fixed settings name in the source directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrSettingsReadFailed, err.Error()), "path", path)
	}

	settings, err := Parse(data)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	return settings, nil
}

// Parse decodes a settings document and applies it over the defaults.
// Unknown keys are rejected.
func Parse(data []byte) (domain.Settings, error) {
	var file File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, zerr.Wrap(domain.ErrSettingsParseFailed, err.Error())
	}

	settings := domain.DefaultSettings()

	if file.Generator != nil {
		generator := strings.TrimSpace(*file.Generator)
		if generator == "" {
			return domain.Settings{}, zerr.With(
				zerr.Wrap(domain.ErrSettingsParseFailed, "generator must not be empty"), "key", "generator")
		}
		settings.Generator = generator
	}

	for key := range file.Defines {
		if strings.TrimSpace(key) == "" || strings.ContainsAny(key, "= ") {
			return domain.Settings{}, zerr.With(
				zerr.Wrap(domain.ErrSettingsParseFailed, "invalid define name"), "define", key)
		}
	}
	maps.Copy(settings.Defines, file.Defines)
	maps.Copy(settings.Environment, file.Environment)

	if file.Helper != nil {
		applyHelper(&settings.Helper, file.Helper)
	}

	return settings, nil
}

func applyHelper(dst *domain.HelperSettings, dto *HelperDTO) {
	if dto.Enabled != nil {
		dst.Enabled = *dto.Enabled
	}
	setString(&dst.Interpreter, dto.Interpreter)
	setString(&dst.Runner, dto.Runner)
	setString(&dst.LinkDir, dto.LinkDir)
	setString(&dst.RunnerBinary, dto.RunnerBinary)
}

func setString(dst *string, v *string) {
	if v != nil && strings.TrimSpace(*v) != "" {
		*dst = strings.TrimSpace(*v)
	}
}
