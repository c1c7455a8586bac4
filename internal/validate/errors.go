// errors.go defines sentinel errors for validation failures.
//
// Separated to centralise error definitions. These errors are used with
// errors.Is() for type-safe error checking. Each error represents a
// distinct validation failure category.

package validate

import "errors"

var (
	// ErrInvalidArgument is returned for unusable request arguments (empty query).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidPath is returned for malformed paths (null bytes, foreign absolute paths).
	ErrInvalidPath = errors.New("invalid path")
	// ErrPathEscape is returned when a path resolves outside the workspace root.
	ErrPathEscape = errors.New("path escapes workspace root")
)
