/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// PersistentPreRunE opens the workspace lazily: only commands that search
// trigger extension init, so config, guide and version work anywhere. The
// noWorkspaceCommands map controls which commands skip initialisation.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/jpl-au/seek/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seek",
	Short: "Literal text search across a workspace",
	Long: `Search a workspace for literal text, skipping dependency and build
directories and binary files. Results are capped so they stay readable for
humans and LLMs alike. Run 'seek serve' to expose search as an MCP tool.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		// Arguments are valid by now; later failures are not usage errors.
		cmd.SilenceUsage = true
		if JSON() {
			cmd.SilenceErrors = true
		}

		if !noWorkspaceCommands[topLevelCmdName(cmd)] {
			if err := initExtensions(); err != nil {
				return PrintJSONError(fmt.Errorf("initialise extensions: %w", err))
			}
		}
		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "seek grep TODO", returns "grep".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions, executes the command, and
// closes the workspace before exit. Ctrl-C cancels the command's context so
// a long search stops between files. Exit code 1 indicates error.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	defer log.Close()

	registerExtensions()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if extWorkspace != nil {
		if closeErr := extWorkspace.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: closing workspace: %v\n", closeErr)
		}
	}

	if err != nil {
		log.Close()
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
