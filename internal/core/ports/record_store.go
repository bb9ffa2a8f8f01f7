package ports

import "go.trai.ch/buildit/internal/core/domain"

// RecordStore persists the build record of a source directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=record_store.go -destination=mocks/mock_record_store.go -package=mocks
type RecordStore interface {
	// Exists reports whether a record is present in sourceDir.
	Exists(sourceDir string) (bool, error)

	// Write replaces the record in sourceDir with cfg.
	Write(sourceDir string, cfg domain.Configuration) error

	// Read loads the record from sourceDir. The returned SourceDir is always
	// empty: the stored value is informational only.
	Read(sourceDir string) (domain.Configuration, error)
}
