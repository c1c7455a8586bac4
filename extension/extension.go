// Package extension provides the plugin architecture for seek. Extensions
// encapsulate related functionality (commands, MCP tools) and register at
// init time, enabling modular feature development without touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for seek extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared workspace and config before
// their commands or tools run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Standalone is an optional interface for extensions with commands that
// don't operate on a workspace. Commands returned by NoWorkspaceCommands()
// do not trigger workspace initialisation in PersistentPreRunE.
//
// Use cases:
// 1. Commands that open their own workspace (serve)
// 2. Utility commands that never touch files (config, guide, vacuum, version)
type Standalone interface {
	NoWorkspaceCommands() []string
}
