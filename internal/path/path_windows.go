//go:build windows

// path_windows.go provides Windows-specific path normalisation.
//
// On Windows, backslashes are native path separators. We use filepath.ToSlash
// which correctly converts them to forward slashes for consistent results.

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

	// Reject drive letters, UNC paths and rooted paths
	if filepath.IsAbs(p) || filepath.VolumeName(p) != "" || strings.HasPrefix(p, `\`) || strings.HasPrefix(p, "/") {
		return "", ErrInvalid
	}

	p = filepath.ToSlash(filepath.Clean(p))
	p = strings.TrimSuffix(p, "/")

	if escapes(p) {
		return "", ErrEscape
	}
	return p, nil
}
