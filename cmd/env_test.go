// The cmd/ package contains CLI integration tests that build the binary once
// and run it against a temporary workspace, exercising the full stack:
// command parsing -> extension -> searcher -> workspace -> filesystem.
//
// HOME points into the test's temp directory so global config and the audit
// log never touch the developer's real ~/.seek.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the seek binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "seek-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "seek"
		if os.PathSeparator == '\\' {
			binaryName = "seek.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Project root is the parent of cmd/
		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string // workspace, and the working directory of every run
	home   string
	binary string
}

// newTestEnv creates an empty workspace with an isolated home directory.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	base := t.TempDir()
	env := &testEnv{
		t:      t,
		dir:    filepath.Join(base, "work"),
		home:   filepath.Join(base, "home"),
		binary: buildBinary(t),
	}
	require.NoError(t, os.MkdirAll(env.dir, 0755))
	require.NoError(t, os.MkdirAll(env.home, 0755))
	return env
}

// write creates a workspace file, making parent directories as needed.
func (e *testEnv) write(rel, content string) {
	e.t.Helper()
	p := filepath.Join(e.dir, filepath.FromSlash(rel))
	require.NoError(e.t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(e.t, os.WriteFile(p, []byte(content), 0644))
}

func (e *testEnv) command(args ...string) *exec.Cmd {
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(),
		"HOME="+e.home,
		"USERPROFILE="+e.home,
		RootEnv+"=",
		"NO_COLOR=1",
	)
	return cmd
}

// run executes seek with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("seek %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes seek and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	out, err := e.command(args...).CombinedOutput()
	return string(out), err
}

// stdout executes seek and returns stdout only, failing the test on error.
func (e *testEnv) stdout(args ...string) string {
	e.t.Helper()
	out, err := e.command(args...).Output()
	if err != nil {
		e.t.Fatalf("seek %v failed: %v\nstdout: %s", args, err, out)
	}
	return string(out)
}

// stdoutErr executes seek and returns stdout only along with any error.
func (e *testEnv) stdoutErr(args ...string) (string, error) {
	e.t.Helper()
	out, err := e.command(args...).Output()
	return string(out), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// lines splits trimmed output into lines.
func lines(out string) []string {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
