package ports

import "go.trai.ch/buildit/internal/core/domain"

// SettingsLoader loads per-project settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load returns the settings of sourceDir, or the defaults if it has none.
	Load(sourceDir string) (domain.Settings, error)
}
