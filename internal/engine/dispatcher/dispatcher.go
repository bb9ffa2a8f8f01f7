// Package dispatcher maps an effective configuration to external commands and
// filesystem actions.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/buildit/internal/core/domain"
	"go.trai.ch/buildit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dispatcher executes the action selected by a domain.Configuration.
type Dispatcher struct {
	runner ports.CommandRunner
	helper ports.HelperGenerator
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// New creates a new Dispatcher writing tool output to stdout and stderr.
func New(
	runner ports.CommandRunner,
	helper ports.HelperGenerator,
	logger ports.Logger,
	stdout, stderr io.Writer,
) *Dispatcher {
	return &Dispatcher{
		runner: runner,
		helper: helper,
		logger: logger,
		stdout: stdout,
		stderr: stderr,
	}
}

// SetOutput redirects tool output and progress lines. A nil writer selects the
// process stream.
func (d *Dispatcher) SetOutput(stdout, stderr io.Writer) {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	d.stdout = stdout
	d.stderr = stderr
}

// Dispatch runs the action for cfg. A failed external command is returned as a
// *domain.CommandError carrying the exit code to surface.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg domain.Configuration, settings domain.Settings) error {
	switch cfg.Mode {
	case domain.ModeConfigure:
		return d.run(ctx, domain.ConfigureCommand(cfg, settings))
	case domain.ModeBuild:
		return d.build(ctx, cfg, settings)
	case domain.ModeClean:
		return d.clean(cfg)
	case domain.ModeHelp:
		return nil
	default:
		return domain.ErrMissingAction
	}
}

func (d *Dispatcher) build(ctx context.Context, cfg domain.Configuration, settings domain.Settings) error {
	if err := d.run(ctx, domain.BuildCommand(cfg, settings)); err != nil {
		return err
	}

	if !settings.Helper.Enabled {
		return nil
	}
	if err := d.helper.Generate(ctx, cfg, settings.Helper); err != nil {
		d.logger.Warn("helper files incomplete", "error", err.Error())
	}
	return nil
}

func (d *Dispatcher) run(ctx context.Context, cmd domain.Command) error {
	_, _ = fmt.Fprintf(d.stdout, "Command: %s\n", cmd)

	err := d.runner.Run(ctx, cmd, d.stdout, d.stderr)
	if err == nil {
		return nil
	}

	code := domain.ExitCodeNotStarted
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
		if code <= 0 {
			// Terminated by a signal.
			code = 1
		}
	}
	return &domain.CommandError{Command: cmd.Name, Code: code, Err: err}
}

// clean removes the resolved build directory. A missing one is not an error.
func (d *Dispatcher) clean(cfg domain.Configuration) error {
	root := cfg.BuildDir
	if domain.UnsafeCleanTarget(root, cfg.SourceDir) {
		err := zerr.Wrap(domain.ErrUnsafeCleanTarget, "build directory is the filesystem root or contains the sources")
		err = zerr.With(err, "path", root)
		return zerr.With(err, "source_dir", cfg.SourceDir)
	}

	_, _ = fmt.Fprintf(d.stdout, "Clearing build directory: %s\n", root)

	if err := os.RemoveAll(root); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrCleanFailed, err.Error()), "path", root)
	}
	return nil
}
