// Package search provides literal text search over the workspace.
// Registers the grep command and the seek_grep MCP tool.
package search

import (
	"github.com/jpl-au/seek/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the search extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "search".
func (e *Extension) Name() string { return "search" }

// Init keeps the shared context for CLI commands. MCP handlers receive the
// context per call instead.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the grep command.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newGrepCmd(),
	}
}

// MCPTools returns the seek_grep tool.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		grepTool(),
	}
}
