// Package shell provides the process runner for generator and build commands.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/buildit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.CommandRunner using os/exec.
// When interactive, commands run on a pseudo-terminal so that tools keep
// their colored, progress-style output.
type Executor struct {
	interactive bool
}

// NewExecutor creates a new Executor.
func NewExecutor(interactive bool) *Executor {
	return &Executor{interactive: interactive}
}

// Run starts cmd and waits for it to exit. Arguments are passed as argv,
// never through a shell. cmd.Environment is merged over the inherited
// environment.
func (e *Executor) Run(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error {
	if cmd.Name == "" {
		return zerr.New("empty command")
	}

	cmdEnv := resolveEnvironment(os.Environ(), cmd.Environment)

	executable := cmd.Name
	if !filepath.IsAbs(cmd.Name) && !strings.ContainsRune(cmd.Name, filepath.Separator) {
		if lp, err := lookPath(cmd.Name, cmdEnv); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // command comes from project settings
	if len(c.Args) > 0 {
		c.Args[0] = cmd.Name
	}
	c.Env = cmdEnv

	var err error
	if e.interactive {
		err = runPTY(c, stdout)
	} else {
		err = runPipes(c, stdout, stderr)
	}
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitErr.ExitCode())
	}
	return zerr.With(zerr.Wrap(err, "failed to start command"), "command", cmd.Name)
}

func runPipes(c *exec.Cmd, stdout, stderr io.Writer) error {
	c.Stdin = os.Stdin
	c.Stdout = stdout
	c.Stderr = stderr
	return c.Run()
}

// runPTY runs c attached to a pseudo-terminal. The terminal merges stdout and
// stderr, so everything is copied to stdout.
func runPTY(c *exec.Cmd, stdout io.Writer) error {
	ptmx, err := pty.Start(c)
	if err != nil {
		return err
	}

	// Best effort: the child still runs with the default size.
	_ = pty.InheritSize(os.Stdin, ptmx)

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// Reading the master after the child exits returns EIO on Linux.
		_, _ = io.Copy(stdout, ptmx)
	}()

	err = c.Wait()
	<-ioDone

	return err
}

// resolveEnvironment merges cmdEnv over sysEnv and returns a sorted list.
func resolveEnvironment(sysEnv []string, cmdEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(cmdEnv))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range cmdEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the PATH of env rather than the
// PATH of the current process.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
