// tools_config.go implements MCP tools for configuration management.
//
// A successful set reloads the shared extension context, so the running
// server applies new limits from the next search without a restart.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/seek/extension"
	"github.com/jpl-au/seek/internal/config"
	"github.com/jpl-au/seek/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// configGet handles seek_config_get tool calls. It reads the live config
// held by the server rather than the file.
func configGet(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := extCtx.Config()

	key := getString(req, "key", "")
	if key == "" {
		log.Event("mcp:seek_config_get", "list").Write(nil)
		return extension.JSONResult(cfg.All())
	}

	v, err := cfg.Get(key)

	log.Event("mcp:seek_config_get", "get").Detail("key", key).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return extension.JSONResult(map[string]string{key: v})
}

// configSet handles seek_config_set tool calls.
func configSet(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := req.RequireString("key")
	if err != nil {
		return mcp.NewToolResultError("key is required"), nil //nolint:nilerr
	}

	value, err := req.RequireString("value")
	if err != nil {
		return mcp.NewToolResultError("value is required"), nil //nolint:nilerr
	}

	scope := config.ScopeGlobal
	if getBool(req, "local", false) {
		scope = config.ScopeLocal
	}

	_, err = config.Update(scope, func(c *config.Config) error {
		return c.Set(key, value)
	})

	log.Event("mcp:seek_config_set", "write").Detail("key", key).Detail("scope", scope.String()).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := extCtx.ReloadConfig(); err != nil {
		log.Event("mcp:seek_config_set", "reload").Write(err)
		return mcp.NewToolResultText(fmt.Sprintf("%s = %s (warning: reload failed, restart server to apply: %v)", key, value, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("%s = %s (%s)", key, value, scope)), nil
}
