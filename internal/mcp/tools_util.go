// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Extraction is permissive: a missing or mistyped optional parameter yields
// the default instead of an error. LLMs frequently omit optional parameters
// or send "true" where true was expected.

package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter, returning def if the parameter is
// missing or not a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool extracts a boolean parameter from the raw argument map. JSON
// booleans decode as Go bool values; anything else yields def.
func getBool(req mcp.CallToolRequest, name string, def bool) bool { //nolint:unparam
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}
