// serve.go implements the "seek serve" command for MCP server operation.
//
// Unlike other commands that run and exit, serve blocks handling MCP
// requests over stdio, so it opens and closes its own workspace rather than
// using the one managed by the root command.

package core

import (
	"github.com/jpl-au/seek/cmd"
	"github.com/jpl-au/seek/extension"
	"github.com/jpl-au/seek/internal/config"
	"github.com/jpl-au/seek/internal/log"
	"github.com/jpl-au/seek/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Use --root to serve a specific workspace:
  seek serve --root ~/code/app

See 'seek guide mcp' for client configuration and tools.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ws, err := cmd.OpenWorkspace(cfg)
	if err != nil {
		return err
	}
	defer ws.Close()

	log.SetProject(ws.Root())
	defer func() {
		log.Event("core:serve", "serve").Path(ws.Root()).Write(err)
	}()

	extCtx := extension.NewContext(ws, cfg)
	if err := extension.InitAll(extCtx); err != nil {
		return err
	}
	return mcp.Serve(extCtx)
}
