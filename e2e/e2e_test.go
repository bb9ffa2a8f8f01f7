//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var builditBinary string

// fakeGenerator stands in for cmake: it echoes its arguments and exits with
// $FAKE_CMAKE_EXIT.
const fakeGenerator = `#!/bin/sh
echo "fake-cmake $*"
exit "${FAKE_CMAKE_EXIT:-0}"
`

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "buildit-e2e-*")
	if err != nil {
		panic(err)
	}

	builditBinary = filepath.Join(tmpDir, "buildit")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", builditBinary, "./cmd/buildit")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build buildit binary: " + err.Error())
	}

	//nolint:gosec // The fake generator must be executable
	if err := os.WriteFile(filepath.Join(tmpDir, "cmake"), []byte(fakeGenerator), 0o755); err != nil {
		panic("failed to write fake generator: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")
	env.Setenv("SIM_DIR", "")

	binDir := filepath.Dir(builditBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}
