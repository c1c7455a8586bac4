// vacuum.go implements the "seek vacuum" command, which trims the audit log.
//
// The log grows with every search from every workspace, so old entries are
// removed by age. Vacuum never touches workspace files.

package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jpl-au/seek/cmd"
	"github.com/jpl-au/seek/extension"
	"github.com/jpl-au/seek/internal/duration"
	"github.com/jpl-au/seek/internal/log"
	"github.com/spf13/cobra"
)

const defaultRetention = "30d"

func newVacuumCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "vacuum",
		Short: "Delete old audit log entries",
		Long: `Delete audit log entries older than a retention window.

This is irreversible. Use --force to skip confirmation.

  seek vacuum                     # older than 30 days
  seek vacuum --older-than 4w
  seek vacuum --dry-run

Duration formats: 7d (days), 4w (weeks), 3m (months)`,
		Args: cobra.NoArgs,
		RunE: runVacuum,
	}
	c.Flags().String(extension.FlagOlderThan, defaultRetention, "Only delete entries older than duration (e.g., 7d, 4w, 3m)")
	c.Flags().BoolP(extension.FlagDryRun, "n", false, "Show how many entries would be deleted")
	c.Flags().BoolP(extension.FlagForce, "f", false, "Skip confirmation")
	return c
}

func runVacuum(c *cobra.Command, _ []string) error {
	olderThan, _ := c.Flags().GetString(extension.FlagOlderThan)
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)
	force, _ := c.Flags().GetBool(extension.FlagForce)

	d, err := duration.Parse(olderThan)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("parse duration %q: %w", olderThan, err))
	}
	before := time.Now().Add(-d)

	if !dryRun && !force && !cmd.JSON() {
		fmt.Fprintf(cmd.Out(), "Delete audit log entries older than %s? This cannot be undone. [y/N] ", olderThan)
		response, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return cmd.PrintJSONError(fmt.Errorf("reading confirmation: %w", err))
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(cmd.Out(), "Cancelled")
			return nil
		}
	}

	n, err := log.Prune(before, dryRun)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("vacuum: %w", err))
	}
	// Logged after the prune so the entry itself survives.
	log.Event("core:vacuum", "vacuum").
		Detail("older_than", olderThan).
		Detail("dry_run", dryRun).
		Detail("count", n).
		Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"deleted": n, "dry_run": dryRun, "older_than": olderThan})
	}
	if dryRun {
		fmt.Fprintf(cmd.Out(), "Would delete %d audit log entr%s\n", n, plural(n))
		return nil
	}
	fmt.Fprintf(cmd.Out(), "Deleted %d audit log entr%s\n", n, plural(n))
	return nil
}

func plural(n int64) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
