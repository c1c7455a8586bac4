// config.go implements the "seek config" command for configuration management.
//
// Config follows a cascade model similar to git: local config
// (.seek/config.yaml) takes precedence over global (~/.seek/config.yaml).
// The --local flag forces use of local config even if it doesn't exist yet.

package core

import (
	"fmt"

	"github.com/jpl-au/seek/cmd"
	"github.com/jpl-au/seek/extension"
	"github.com/jpl-au/seek/internal/config"
	"github.com/jpl-au/seek/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  seek config                          # show config
  seek config search.max_matches       # show one value
  seek config search.max_matches 250   # set a value
  seek config search.skip_dirs --unset # restore the default

Configuration locations:
  Global: ~/.seek/config.yaml
  Local:  .seek/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return config.ValidKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.seek/config.yaml)")
	c.Flags().Bool(extension.FlagUnset, false, "Remove the key so its default applies")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)
	unset, _ := c.Flags().GetBool(extension.FlagUnset)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}
	scope := cfg.Scope()

	if unset {
		if len(args) != 1 {
			return cmd.PrintJSONError(fmt.Errorf("--unset takes exactly one key"))
		}
		_, err := config.Update(scope, func(cfg *config.Config) error {
			return cfg.Unset(args[0])
		})
		log.Event("core:config", "unset").Detail("key", args[0]).Detail("scope", scope.String()).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config unset %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{"key": args[0], "scope": scope.String()})
		}
		fmt.Fprintf(cmd.Out(), "%s unset (%s)\n", args[0], scope)
		return nil
	}

	switch len(args) {
	case 0:
		all := cfg.All()
		log.Event("core:config", "list").Write(nil)
		if cmd.JSON() {
			return cmd.PrintJSON(all)
		}
		for _, k := range config.ValidKeys() {
			fmt.Fprintf(cmd.Out(), "%s: %s\n", k, all[k])
		}

	case 1:
		v, err := cfg.Get(args[0])
		log.Event("core:config", "get").Detail("key", args[0]).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{"key": args[0], "value": v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		// The MCP server may write the same file, so the set is a locked
		// read-modify-write rather than a save of the copy loaded above.
		_, err := config.Update(scope, func(cfg *config.Config) error {
			return cfg.Set(args[0], args[1])
		})
		log.Event("core:config", "set").Detail("key", args[0]).Detail("scope", scope.String()).Write(err)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{"key": args[0], "value": args[1], "scope": scope.String()})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], args[1], scope)
	}
	return nil
}
