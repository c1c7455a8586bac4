package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/seek/internal/path"
)

// Path validates a workspace-relative path and returns the normalised form.
//
// Validation rules:
//   - Empty path means the workspace root (".")
//   - Null bytes rejected (security: prevents path injection)
//   - Traversal above the root rejected with ErrPathEscape
//   - Path normalisation via path.Normalise
func Path(p string) (string, error) {
	if strings.ContainsRune(p, 0) {
		return "", fmt.Errorf("%w: null byte in path", ErrInvalidPath)
	}

	norm, err := path.Normalise(p)
	if errors.Is(err, path.ErrEscape) {
		return "", fmt.Errorf("%w: %s", ErrPathEscape, p)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrInvalidPath, p, err)
	}
	return norm, nil
}
