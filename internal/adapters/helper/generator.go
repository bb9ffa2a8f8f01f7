// Package helper generates the runner launcher, links and PATH script that
// accompany a successful build.
package helper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/buildit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Generator implements ports.HelperGenerator on the local filesystem.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate writes every helper artifact for cfg. A failed step does not stop
// the following ones; all failures are returned together.
func (g *Generator) Generate(ctx context.Context, cfg domain.Configuration, s domain.HelperSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	helperDir := domain.HelperDir(cfg.BuildDir)
	execDir := filepath.Join(cfg.SourceDir, s.LinkDir, domain.ExecLinkName)

	var errs []error
	if err := os.MkdirAll(helperDir, domain.DirPerm); err != nil {
		errs = append(errs, zerr.With(zerr.Wrap(err, "failed to create helper directory"), "path", helperDir))
	}

	launcher := filepath.Join(helperDir, domain.LauncherName)
	runner := filepath.Join(cfg.SourceDir, s.Runner)
	if err := writeIfChanged(launcher, renderLauncher(s.Interpreter, runner), domain.ExecPerm); err != nil {
		errs = append(errs, zerr.With(zerr.Wrap(err, "failed to write launcher"), "path", launcher))
	}

	if err := replaceSymlink(filepath.Clean(helperDir), execDir); err != nil {
		errs = append(errs, zerr.With(zerr.Wrap(err, "failed to link helper directory"), "path", execDir))
	}

	runnerLink := filepath.Join(helperDir, domain.RunnerLinkName)
	if err := replaceSymlink(filepath.Join(cfg.BuildDir, s.RunnerBinary), runnerLink); err != nil {
		errs = append(errs, zerr.With(zerr.Wrap(err, "failed to link runner binary"), "path", runnerLink))
	}

	script := filepath.Join(helperDir, domain.PathScriptName)
	if err := writeIfChanged(script, renderPathScript(execDir), domain.FilePerm); err != nil {
		errs = append(errs, zerr.With(zerr.Wrap(err, "failed to write path script"), "path", script))
	}

	if len(errs) > 0 {
		return zerr.With(
			zerr.Wrap(domain.ErrHelperFailed, errors.Join(errs...).Error()),
			"failed_steps", len(errs),
		)
	}
	return nil
}

// renderLauncher returns a POSIX shell script that forwards its arguments to
// the runner script.
func renderLauncher(interpreter, runner string) []byte {
	var buf bytes.Buffer
	buf.WriteString("#!/bin/sh\n")
	_, _ = fmt.Fprintf(&buf, "exec %s %s \"$@\"\n", shellQuote(interpreter), shellQuote(runner))
	return buf.Bytes()
}

// renderPathScript returns a bash snippet that moves execDir to the front of PATH.
// Sourcing it repeatedly leaves a single entry.
func renderPathScript(execDir string) []byte {
	var buf bytes.Buffer
	buf.WriteString("#!/bin/bash\n")
	_, _ = fmt.Fprintf(&buf, "PATH=${PATH//%s/}\n", shellQuote(execDir+":"))
	_, _ = fmt.Fprintf(&buf, "echo %s\n", shellQuote("Prepending to PATH: "+execDir))
	_, _ = fmt.Fprintf(&buf, "export PATH=%s\"${PATH}\"\n", shellQuote(execDir+":"))
	return buf.Bytes()
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// writeIfChanged writes data to path unless the file already holds the same
// content. The permission bits are enforced either way.
func writeIfChanged(path string, data []byte, perm fs.FileMode) error {
	if same, err := matchesFingerprint(path, int64(len(data)), xxhash.Sum64(data)); err == nil && same {
		return os.Chmod(path, perm)
	}

	if err := os.WriteFile(path, data, perm); err != nil {
		return err
	}
	return os.Chmod(path, perm)
}

// matchesFingerprint streams the file at path through xxhash and compares it
// with want. A size mismatch is decided without opening the file.
func matchesFingerprint(path string, size int64, want uint64) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if !info.Mode().IsRegular() || info.Size() != size {
		return false, nil
	}

	//nolint:gosec // path is derived from the build directory
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer func() { _ = f.Close() }()

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return false, err
	}
	return hasher.Sum64() == want, nil
}

// replaceSymlink points link at target. An existing symlink is replaced; any
// other file at link is left untouched and reported.
func replaceSymlink(target, link string) error {
	info, err := os.Lstat(link)
	switch {
	case err == nil && info.Mode()&fs.ModeSymlink == 0:
		return zerr.New("path exists and is not a symlink")
	case err == nil:
		if current, readErr := os.Readlink(link); readErr == nil && current == target {
			return nil
		}
		if err := os.Remove(link); err != nil {
			return err
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	if err := os.MkdirAll(filepath.Dir(link), domain.DirPerm); err != nil {
		return err
	}
	return os.Symlink(target, link)
}
