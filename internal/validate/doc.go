// Package validate provides input validation for seek's search requests.
//
// This package enforces safety rules at the boundary between caller input
// (CLI arguments, MCP tool arguments) and the filesystem. Each validation
// function returns the normalised value on success or a descriptive error on
// failure.
//
// # Design Philosophy
//
// Validation is minimal. We reject inputs that cannot produce a meaningful
// search (an empty query) or that are dangerous (null bytes, paths escaping
// the workspace) and accept everything else.
//
// # Validation Functions
//
// Query trims and validates a search query.
// Path validates and normalises a workspace-relative path with traversal protection.
//
// # Error Handling
//
// All validation errors wrap one of the sentinel errors defined in errors.go
// (ErrInvalidArgument, ErrInvalidPath, ErrPathEscape). Use errors.Is() for
// type-safe error checking:
//
//	if errors.Is(err, validate.ErrPathEscape) {
//	    // handle escape attempt
//	}
package validate
