package ports

import (
	"context"
	"io"

	"go.trai.ch/buildit/internal/core/domain"
)

// CommandRunner runs external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run starts cmd, streams its output and blocks until it exits.
	// A non-zero exit is returned as an error wrapping *exec.ExitError.
	Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
