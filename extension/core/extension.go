// Package core provides the core extension for seek.
// It registers commands: config, serve, guide, vacuum, version.
package core

import (
	"github.com/jpl-au/seek/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension  = (*Extension)(nil)
	_ extension.Standalone = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Commands returns the core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newVacuumCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil. The guide and config tools are built into the
// MCP server itself.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoWorkspaceCommands returns every core command.
// serve: opens its own workspace for the server's lifetime.
// config, guide, vacuum, version: never touch workspace files.
func (e *Extension) NoWorkspaceCommands() []string {
	return []string{"config", "serve", "guide", "vacuum", "version"}
}
