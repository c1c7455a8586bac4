// config_keys.go provides key-value access to configuration settings.
//
// The CLI and the MCP tools address config by dotted string keys
// (e.g. "search.max_matches"); this file maps those keys onto the YAML
// structure in config.go.
//
// Pointers are used for optional fields so "not set" (nil) differs from
// "explicitly set". Defaults apply only to unset fields.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"workspace.root",
		"search.max_matches", "search.max_line_length",
		"search.skip_dirs", "search.binary_extensions",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
// List values are comma separated.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "workspace.root":
		return c.Workspace.Root, nil
	case "search.max_matches":
		return strconv.Itoa(c.MaxMatches()), nil
	case "search.max_line_length":
		return strconv.Itoa(c.MaxLineLength()), nil
	case "search.skip_dirs":
		return strings.Join(c.SkipDirs(), ","), nil
	case "search.binary_extensions":
		return strings.Join(c.BinaryExtensions(), ","), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
// List keys take a comma-separated value; an empty value clears the list.
func (c *Config) Set(key, value string) error {
	switch key {
	case "workspace.root":
		c.Workspace.Root = strings.TrimSpace(value)
	case "search.max_matches":
		n, err := parseBounded(key, value, MinMaxMatches, MaxMaxMatches)
		if err != nil {
			return err
		}
		c.Search.MaxMatches = &n
	case "search.max_line_length":
		n, err := parseBounded(key, value, MinMaxLineLength, MaxMaxLineLength)
		if err != nil {
			return err
		}
		c.Search.MaxLineLength = &n
	case "search.skip_dirs":
		dirs := splitList(value)
		for _, d := range dirs {
			if strings.ContainsAny(d, `/\`) {
				return fmt.Errorf("%w: search.skip_dirs entries are names, not paths: %q", ErrInvalidValue, d)
			}
		}
		c.Search.SkipDirs = &dirs
	case "search.binary_extensions":
		exts := splitList(value)
		for i, e := range exts {
			e = strings.ToLower(e)
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			exts[i] = e
		}
		c.Search.BinaryExtensions = &exts
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// Unset removes an explicit value so the default applies again.
func (c *Config) Unset(key string) error {
	switch key {
	case "workspace.root":
		c.Workspace.Root = ""
	case "search.max_matches":
		c.Search.MaxMatches = nil
	case "search.max_line_length":
		c.Search.MaxLineLength = nil
	case "search.skip_dirs":
		c.Search.SkipDirs = nil
	case "search.binary_extensions":
		c.Search.BinaryExtensions = nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	all := make(map[string]string, len(ValidKeys()))
	for _, key := range ValidKeys() {
		all[key], _ = c.Get(key)
	}
	return all
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "workspace.root":
		return c.Workspace.Root != ""
	case "search.max_matches":
		return c.Search.MaxMatches != nil
	case "search.max_line_length":
		return c.Search.MaxLineLength != nil
	case "search.skip_dirs":
		return c.Search.SkipDirs != nil
	case "search.binary_extensions":
		return c.Search.BinaryExtensions != nil
	default:
		return false
	}
}

func parseBounded(key, value string, lo, hi int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("%w: %s must be an integer between %d and %d", ErrInvalidValue, key, lo, hi)
	}
	return n, nil
}

// splitList parses "a, b,,c" into [a b c]. The result is never nil.
func splitList(value string) []string {
	out := []string{}
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
