package app

import (
	"io"

	"go.trai.ch/buildit/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: logger,
	}
}

// SetOutput points command output at stdout and stderr, and log records at
// stderr when the logger supports redirection.
func (c *Components) SetOutput(stdout, stderr io.Writer) {
	if c.App != nil {
		c.App.SetOutput(stdout, stderr)
	}
	if l, ok := c.Logger.(interface{ SetOutput(io.Writer) }); ok {
		l.SetOutput(stderr)
	}
}
