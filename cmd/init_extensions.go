/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Extensions register during init() but aren't initialised until first
// command execution. The workspace is opened once and shared across all
// extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/seek/extension"
	"github.com/jpl-au/seek/internal/config"
	"github.com/jpl-au/seek/internal/log"
	"github.com/jpl-au/seek/internal/workspace"
)

// noWorkspaceCommands lists commands that bypass automatic workspace
// initialisation. Built from the built-in set plus extension-declared
// standalone commands.
var noWorkspaceCommands map[string]bool

// buildNoWorkspaceCommands creates the set of commands that skip workspace
// initialisation. "help" and "completion" are cobra built-ins; everything
// else is declared by extensions through extension.Standalone.
func buildNoWorkspaceCommands() map[string]bool {
	cmds := map[string]bool{
		"help":       true,
		"completion": true,
	}

	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Standalone); ok {
			for _, name := range s.NoWorkspaceCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extWorkspace *workspace.Workspace
	initOnce     sync.Once
	initErr      error
)

// initExtensions loads config, opens the workspace and injects both into
// every Initializable extension. Runs at most once per process.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		ws, err := OpenWorkspace(cfg)
		if err != nil {
			initErr = err
			return
		}
		extWorkspace = ws

		log.SetProject(ws.Root())

		initErr = extension.InitAll(extension.NewContext(ws, cfg))
	})
	return initErr
}

// OpenWorkspace opens the workspace selected by the flags, environment and
// config (see Root).
func OpenWorkspace(cfg *config.Config) (*workspace.Workspace, error) {
	dir := Root(cfg)
	ws, err := workspace.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("opening workspace %s: %w", dir, err)
	}
	return ws, nil
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		noWorkspaceCommands = buildNoWorkspaceCommands()
	})
}
