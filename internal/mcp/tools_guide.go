// tools_guide.go implements the MCP tool for accessing help content, so an
// LLM can learn the tool surface without external lookups.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/seek/extension"
	"github.com/jpl-au/seek/guide"
	"github.com/jpl-au/seek/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getGuide handles seek_guide tool calls.
func getGuide(_ context.Context, _ extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:seek_guide", "read").Detail("topic", topic).Write(err)

	if err != nil {
		// Unknown topic: return the list so the LLM can retry
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return extension.JSONResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}
