// Package app implements the application layer for buildit.
package app

import (
	"context"
	"io"

	"go.trai.ch/buildit/internal/core/domain"
	"go.trai.ch/buildit/internal/core/ports"
	"go.trai.ch/buildit/internal/engine/dispatcher"
	"go.trai.ch/buildit/internal/engine/reconciler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	reconciler *reconciler.Reconciler
	settings   ports.SettingsLoader
	dispatcher *dispatcher.Dispatcher
}

// New creates a new App instance.
func New(rec *reconciler.Reconciler, settings ports.SettingsLoader, disp *dispatcher.Dispatcher) *App {
	return &App{
		reconciler: rec,
		settings:   settings,
		dispatcher: disp,
	}
}

// SetOutput redirects the output of dispatched commands.
func (a *App) SetOutput(stdout, stderr io.Writer) {
	a.dispatcher.SetOutput(stdout, stderr)
}

// Run performs the action requested by flags. envSourceDir is the value of
// SIM_DIR. Help is a no-op here; usage is printed by the command layer.
func (a *App) Run(ctx context.Context, flags domain.Flags, envSourceDir string) error {
	// 1. Decide the effective configuration
	cfg, err := a.reconciler.Reconcile(flags, envSourceDir)
	if err != nil {
		return zerr.Wrap(err, "failed to reconcile configuration")
	}

	if cfg.Mode == domain.ModeHelp {
		return nil
	}

	// 2. Project settings only matter for commands that run the generator
	settings := domain.DefaultSettings()
	if cfg.Mode != domain.ModeClean {
		settings, err = a.settings.Load(cfg.SourceDir)
		if err != nil {
			return zerr.Wrap(err, "failed to load project settings")
		}
	}

	// 3. Run the action
	if err := a.dispatcher.Dispatch(ctx, cfg, settings); err != nil {
		return zerr.With(zerr.Wrap(err, cfg.Mode.String()+" failed"), "build_dir", cfg.BuildDir)
	}

	return nil
}
