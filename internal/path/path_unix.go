//go:build !windows

// path_unix.go provides Unix-specific path normalisation (Linux, macOS, etc).
//
// On Unix systems, backslashes are valid filename characters, not path separators.
// Therefore filepath.ToSlash does NOT convert them. We explicitly replace
// backslashes so Windows-style paths sent by an MCP client resolve the same way.

package path

import (
	"path/filepath"
	"strings"
)

// Normalise cleans and validates a workspace-relative path.
func Normalise(p string) (string, error) {
	if p == "" {
		return Root, nil
	}

	// Explicitly convert backslashes (filepath.ToSlash won't do this on Unix)
	p = strings.ReplaceAll(p, "\\", "/")

	if strings.HasPrefix(p, "/") {
		return "", ErrInvalid
	}

	p = filepath.Clean(p)
	p = strings.TrimSuffix(p, "/")

	if escapes(p) {
		return "", ErrEscape
	}
	return p, nil
}
