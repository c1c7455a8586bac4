// Package config provides reading and writing of seek configuration.
// Supports both global (~/.seek/config.yaml) and local (.seek/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/seek/internal/grep"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Dir is the name of the configuration directory, both in the user's home
// and in a workspace.
const Dir = ".seek"

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.seek/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is workspace-specific config in .seek/config.yaml
	ScopeLocal
)

// String returns the scope name as used by the CLI and MCP tools.
func (s Scope) String() string {
	if s == ScopeLocal {
		return "local"
	}
	return "global"
}

// Workspace holds workspace-related configuration options.
type Workspace struct {
	Root string `yaml:"root,omitempty"`
}

// Search holds the search limits and deny-lists.
type Search struct {
	MaxMatches       *int      `yaml:"max_matches,omitempty"`
	MaxLineLength    *int      `yaml:"max_line_length,omitempty"`
	SkipDirs         *[]string `yaml:"skip_dirs,omitempty"`
	BinaryExtensions *[]string `yaml:"binary_extensions,omitempty"`
}

// Validation bounds for configuration values.
const (
	MinMaxMatches    = 1
	MaxMaxMatches    = 10000
	MinMaxLineLength = 1
	MaxMaxLineLength = 100000
)

// Config contains configuration for seek.
type Config struct {
	Workspace Workspace `yaml:"workspace,omitempty"`
	Search    Search    `yaml:"search,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Search.MaxMatches != nil {
		v := *c.Search.MaxMatches
		if v < MinMaxMatches || v > MaxMaxMatches {
			return fmt.Errorf("%w: max_matches must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxMatches, MaxMaxMatches, v)
		}
	}
	if c.Search.MaxLineLength != nil {
		v := *c.Search.MaxLineLength
		if v < MinMaxLineLength || v > MaxMaxLineLength {
			return fmt.Errorf("%w: max_line_length must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxLineLength, MaxMaxLineLength, v)
		}
	}
	return nil
}

// Root returns the configured workspace root, or "" for the current directory.
func (c *Config) Root() string {
	return c.Workspace.Root
}

// MaxMatches returns the match cap (defaults to 100).
func (c *Config) MaxMatches() int {
	if c.Search.MaxMatches == nil {
		return grep.DefaultMaxMatches
	}
	return *c.Search.MaxMatches
}

// MaxLineLength returns the maximum reported line length in runes
// (defaults to 200).
func (c *Config) MaxLineLength() int {
	if c.Search.MaxLineLength == nil {
		return grep.DefaultMaxLineLength
	}
	return *c.Search.MaxLineLength
}

// SkipDirs returns the directory names never searched.
func (c *Config) SkipDirs() []string {
	if c.Search.SkipDirs == nil {
		return grep.DefaultSkipDirs()
	}
	return *c.Search.SkipDirs
}

// BinaryExtensions returns the file extensions never opened.
func (c *Config) BinaryExtensions() []string {
	if c.Search.BinaryExtensions == nil {
		return grep.DefaultBinaryExtensions()
	}
	return *c.Search.BinaryExtensions
}

// Limits returns the search limits described by this config.
// An explicitly empty deny-list stays empty rather than falling back.
func (c *Config) Limits() grep.Limits {
	skip := c.SkipDirs()
	if skip == nil {
		skip = []string{}
	}
	bin := c.BinaryExtensions()
	if bin == nil {
		bin = []string{}
	}
	return grep.Limits{
		MaxMatches:       c.MaxMatches(),
		MaxLineLength:    c.MaxLineLength(),
		SkipDirs:         skip,
		BinaryExtensions: bin,
	}
}

// LocalPath returns the path to the local (workspace) config file.
func LocalPath() string {
	return filepath.Join(Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.seek/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}
	return loadPath(path, scope)
}

func loadPath(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Path returns the file this config was loaded from or will be saved to.
func (c *Config) Path() string {
	if c.path == "" {
		return pathForScope(c.scope)
	}
	return c.path
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
