// context.go defines the Context interface for extension access to seek internals.
//
// The Context is the controlled surface extensions see: the opened workspace
// and the loaded config. Extensions receive it during Init(), not at
// construction, because they register before the workspace is known.

package extension

import (
	"fmt"
	"sync/atomic"

	"github.com/jpl-au/seek/internal/config"
	"github.com/jpl-au/seek/internal/grep"
	"github.com/jpl-au/seek/internal/workspace"
)

// Context provides extensions controlled access to seek internals.
type Context interface {
	// Workspace returns the confined workspace all paths resolve against.
	Workspace() *workspace.Workspace

	// Config returns the current user configuration.
	Config() *config.Config

	// Searcher returns a searcher over the workspace using the current
	// configured limits.
	Searcher(opts ...grep.Option) *grep.Searcher

	// ReloadConfig re-reads configuration from disk so later calls to
	// Config and Searcher see updated values.
	ReloadConfig() error
}

// extContext implements Context.
type extContext struct {
	ws  *workspace.Workspace
	cfg atomic.Pointer[config.Config]
}

// NewContext creates a new extension context.
func NewContext(ws *workspace.Workspace, cfg *config.Config) Context {
	c := &extContext{ws: ws}
	if cfg == nil {
		cfg = &config.Config{}
	}
	c.cfg.Store(cfg)
	return c
}

// Workspace returns the workspace shared by all extensions.
func (c *extContext) Workspace() *workspace.Workspace {
	return c.ws
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg.Load()
}

// Searcher builds a searcher from the current config. Searchers are cheap
// and stateless, so one per call keeps config reloads visible.
func (c *extContext) Searcher(opts ...grep.Option) *grep.Searcher {
	return grep.New(c.ws, c.Config().Limits(), opts...)
}

// ReloadConfig replaces the config with a fresh load from disk. On error
// the previous config stays in place.
func (c *extContext) ReloadConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("reloading config: %w", err)
	}
	c.cfg.Store(cfg)
	return nil
}
