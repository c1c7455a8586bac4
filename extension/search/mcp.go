// mcp.go implements the seek_grep MCP tool.
//
// Failures (empty query, bad glob, path outside the workspace) come back as
// tool error results rather than Go errors, so the LLM sees the message.

package search

import (
	"context"
	"fmt"

	"github.com/jpl-au/seek/extension"
	"github.com/jpl-au/seek/internal/grep"
	"github.com/jpl-au/seek/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

func grepTool() extension.MCPTool {
	limits := grep.DefaultLimits()
	return extension.MCPTool{
		Tool: mcp.NewTool("seek_grep",
			mcp.WithDescription(fmt.Sprintf(
				"Search workspace files for a literal phrase (not a regex). "+
					"Skips dependency/build directories and binary files. "+
					"Returns up to %d matches (configurable) as {file, line, content}; "+
					"truncated=true means the cap was reached, so narrow path or glob.",
				limits.MaxMatches)),
			mcp.WithString("query", mcp.Required(), mcp.Description("Literal text to find")),
			mcp.WithString("path", mcp.Description("Directory to search, relative to the workspace root (default: root)")),
			mcp.WithString("glob", mcp.Description("File name filter, e.g. '*.go' or '*.{ts,tsx}'")),
			mcp.WithBoolean("case_sensitive", mcp.Description("Match case exactly (default: false)")),
			mcp.WithReadOnlyHintAnnotation(true),
			mcp.WithIdempotentHintAnnotation(true),
		),
		Handler: grepHandler,
	}
}

// grepHandler handles seek_grep tool calls.
func grepHandler(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}

	r := grep.Request{
		Query:         query,
		Path:          req.GetString("path", ""),
		Glob:          req.GetString("glob", ""),
		CaseSensitive: req.GetBool("case_sensitive", false),
	}

	res, err := extCtx.Searcher().Search(ctx, r)

	log.Event("mcp:seek_grep", "search").
		Path(r.Path).
		Detail("query", r.Query).
		Detail("glob", r.Glob).
		Detail("case_sensitive", r.CaseSensitive).
		Detail("matches", res.TotalMatches).
		Detail("truncated", res.Truncated).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return extension.JSONResult(res)
}
