package validate

import (
	"fmt"
	"strings"
)

// Query validates a search query and returns it trimmed.
//
// Validation rules:
//   - Empty or whitespace-only queries rejected (nothing to search for)
//   - Surrounding whitespace is removed; inner whitespace is kept
func Query(q string) (string, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", fmt.Errorf("%w: search query is required", ErrInvalidArgument)
	}
	return q, nil
}
