// Package path provides workspace path normalisation and validation utilities.
//
// Every caller-supplied path passes through this package before it reaches
// the filesystem. Paths are relative to the workspace root and use forward
// slashes so results are stable across platforms.
//
// Security: a path that climbs above the root ("..", "../x", "a/../../x") is
// rejected with ErrEscape. The workspace package additionally confines all
// reads with os.Root, so a symlink cannot escape either.
//
// Normalisation rules:
//   - Paths use forward slashes (Windows-compatible)
//   - "" and "." both mean the workspace root and normalise to "."
//   - No leading "./" and no trailing slash
//   - "a/../b" resolves to "b"; anything resolving above the root is rejected
//   - Absolute paths are rejected (the workspace converts them first)
package path

import (
	"errors"
	"strings"
)

// ErrInvalid indicates the provided path is malformed.
var ErrInvalid = errors.New("invalid workspace path")

// ErrEscape indicates the path resolves outside the workspace root.
var ErrEscape = errors.New("path escapes workspace root")

// Root is the normalised form of the workspace root itself.
const Root = "."

// Join appends a child name to a normalised directory path.
// Joining onto Root yields the bare name so results never start with "./".
func Join(dir, name string) string {
	if dir == "" || dir == Root {
		return name
	}
	return dir + "/" + name
}

// Within reports whether p is rel or a descendant of rel.
// Both arguments must already be normalised.
//
// Examples (rel="src"):
//   - "src" -> true
//   - "src/a.ts" -> true
//   - "srcx/a.ts" -> false
func Within(p, rel string) bool {
	if rel == Root {
		return true
	}
	return p == rel || strings.HasPrefix(p, rel+"/")
}

// escapes reports whether a cleaned, slash-separated path climbs above root.
func escapes(p string) bool {
	return p == ".." || strings.HasPrefix(p, "../")
}
