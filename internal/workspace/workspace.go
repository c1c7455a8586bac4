// Package workspace confines filesystem access to a single directory tree.
//
// A Workspace is the root every search path is resolved against. It plays two
// roles for the search engine: it validates caller paths (rejecting anything
// that escapes the root) and it is the read-only filesystem layer the walk
// consumes (list a directory with entry types, read a file).
//
// Security: all reads go through os.Root (Go 1.24+), so even a symlink inside
// the tree cannot be used to read files outside it. This is defence-in-depth
// alongside lexical path validation.
package workspace

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/seek/internal/validate"
)

// ErrNotDirectory is returned when the workspace root is not a directory.
var ErrNotDirectory = errors.New("workspace root is not a directory")

// Workspace is an open, confined directory tree.
type Workspace struct {
	dir  string // absolute, cleaned root directory
	root *os.Root
}

// Open opens dir as a workspace. An empty dir means the current directory.
func Open(dir string) (*Workspace, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace root %s: %w", dir, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("opening workspace root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, abs)
	}

	root, err := os.OpenRoot(abs)
	if err != nil {
		return nil, fmt.Errorf("opening workspace root: %w", err)
	}
	return &Workspace{dir: abs, root: root}, nil
}

// Root returns the absolute path of the workspace root.
func (w *Workspace) Root() string {
	return w.dir
}

// Close releases the underlying root handle.
func (w *Workspace) Close() error {
	return w.root.Close()
}

// Resolve maps a caller-supplied path to a normalised workspace-relative path.
//
// Relative paths are interpreted against the root. Absolute paths are
// accepted when they point inside the root. Anything else fails with
// validate.ErrPathEscape.
func (w *Workspace) Resolve(p string) (string, error) {
	if filepath.IsAbs(p) {
		rel, err := filepath.Rel(w.dir, filepath.Clean(p))
		if err != nil {
			return "", fmt.Errorf("%w: %s", validate.ErrPathEscape, p)
		}
		p = rel
	}
	return validate.Path(p)
}

// Abs returns the absolute filesystem path for a normalised relative path.
func (w *Workspace) Abs(rel string) string {
	return filepath.Join(w.dir, filepath.FromSlash(rel))
}

// ReadDir lists a directory in the order the filesystem returns entries.
// Unlike os.ReadDir, entries are not sorted.
func (w *Workspace) ReadDir(rel string) ([]fs.DirEntry, error) {
	f, err := w.root.Open(filepath.FromSlash(rel))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.ReadDir(-1)
}

// ReadFile reads a file's content within the workspace.
func (w *Workspace) ReadFile(rel string) ([]byte, error) {
	f, err := w.root.Open(filepath.FromSlash(rel))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
