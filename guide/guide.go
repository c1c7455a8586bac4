// Package guide provides access to embedded help and guide pages used by
// the CLI's built-in documentation system and the MCP server.
package guide

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// ErrNotFound is returned for an unknown guide topic.
var ErrNotFound = errors.New("guide not found")

//go:embed *.md
var files embed.FS

// Get returns the content of a guide page by name. If name is empty the
// default "guide" page is returned. Names are case-insensitive.
func Get(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = "guide"
	}
	if strings.ContainsAny(name, `/\.`) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	data, err := files.ReadFile(name + ".md")
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the available guide page names (without the .md suffix).
func List() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if name != "guide.md" {
			names = append(names, strings.TrimSuffix(name, ".md"))
		}
	}
	return names, nil
}
