// mcp.go defines types for MCP tool registration by extensions.
//
// Not all extensions need MCP tools; some only provide CLI commands.
// MCPTool pairs the tool definition with its handler. The handler receives
// both the Go context (for cancellation) and the extension Context (for
// workspace access).

package extension

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTool pairs an MCP tool definition with its handler.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler processes MCP tool requests.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

// JSONResult serialises v as indented JSON in a text result. Marshalling
// failures become tool errors, so every failure reaches the client the
// same way.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
