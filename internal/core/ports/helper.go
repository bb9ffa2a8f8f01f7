package ports

import (
	"context"

	"go.trai.ch/buildit/internal/core/domain"
)

// HelperGenerator writes the runner launcher, links and PATH script for a build.
//
//go:generate go run go.uber.org/mock/mockgen -source=helper.go -destination=mocks/mock_helper.go -package=mocks
type HelperGenerator interface {
	// Generate attempts every step and returns the joined failures.
	Generate(ctx context.Context, cfg domain.Configuration, s domain.HelperSettings) error
}
