// Package mcp implements the Model Context Protocol server, exposing seek
// operations to LLMs over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/seek/extension"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve starts the MCP server over stdio and blocks until the client
// disconnects. extCtx must already be initialised (see extension.InitAll).
func Serve(extCtx extension.Context) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(extCtx)

	slog.Info("seek MCP server ready",
		"version", Version,
		"transport", "stdio",
		"root", extCtx.Workspace().Root(),
		"tools", len(extension.Tools())+len(builtinTools()),
	)

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with built-in tools, guide resources and
// every tool contributed by a registered extension.
func NewServer(extCtx extension.Context) *server.MCPServer {
	h := &handlers{ext: extCtx}

	s := server.NewMCPServer(
		"seek",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	registerResources(s, h)
	for _, t := range builtinTools() {
		s.AddTool(t.Tool, h.bind(t.Handler))
	}
	for _, t := range extension.Tools() {
		s.AddTool(t.Tool, h.bind(t.Handler))
	}
	return s
}

// handlers gives MCP request handlers access to the shared extension context.
type handlers struct {
	ext extension.Context
}

// bind adapts an extension handler to the mcp-go handler signature.
func (h *handlers) bind(fn extension.MCPHandler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return fn(ctx, h.ext, req)
	}
}

// builtinTools returns the tools the server provides itself.
func builtinTools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("seek_guide",
				mcp.WithDescription("Get help/guide content for seek commands and tools"),
				mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'grep', 'config', 'mcp') or empty for index")),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: getGuide,
		},
		{
			Tool: mcp.NewTool("seek_config_get",
				mcp.WithDescription("Get a configuration value"),
				mcp.WithString("key", mcp.Description("Config key (e.g., search.max_matches, search.skip_dirs) or empty for all")),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: configGet,
		},
		{
			Tool: mcp.NewTool("seek_config_set",
				mcp.WithDescription("Set a configuration value. Takes effect for the next search"),
				mcp.WithString("key", mcp.Required(), mcp.Description("Config key (e.g., search.max_matches, search.skip_dirs)")),
				mcp.WithString("value", mcp.Required(), mcp.Description("Value to set; lists are comma separated")),
				mcp.WithBoolean("local", mcp.Description("Write .seek/config.yaml in the current directory instead of the global config")),
			),
			Handler: configSet,
		},
	}
}
