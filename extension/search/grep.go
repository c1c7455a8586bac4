// grep.go implements the "seek grep" command.

package search

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jpl-au/seek/cmd"
	"github.com/jpl-au/seek/extension"
	"github.com/jpl-au/seek/internal/config"
	"github.com/jpl-au/seek/internal/format"
	"github.com/jpl-au/seek/internal/grep"
	"github.com/jpl-au/seek/internal/log"
	"github.com/jpl-au/seek/internal/progress"
	"github.com/spf13/cobra"
)

func (e *Extension) newGrepCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "grep <query> [path]",
		Short: "Search files for literal text",
		Long: `Search the workspace for lines containing a literal phrase.

  seek grep "TODO"                      # search everything
  seek grep "handleRequest" src         # search a subtree
  seek grep -g "*.{ts,tsx}" "useState"  # filter by file name
  seek grep -s "Config"                 # case-sensitive
  seek grep -l "deprecated"             # list matching files

The query is literal text: "a.b" matches only "a.b". Dependency and build
directories and binary files are skipped. See 'seek guide grep'.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: e.runGrep,
	}
	c.Flags().StringP(extension.FlagGlob, "g", "", "Only search files whose name matches (e.g. \"*.{ts,tsx}\")")
	c.Flags().BoolP(extension.FlagCaseSensitive, "s", false, "Match case exactly")
	c.Flags().IntP(extension.FlagMax, "m", 0, "Maximum matches for this search (default: search.max_matches)")
	c.Flags().BoolP(extension.FlagFilesWithMatch, "l", false, "Only output paths of matching files")
	c.Flags().BoolP(extension.FlagCount, "c", false, "Only output the number of matches")
	c.Flags().BoolP(extension.FlagQuiet, "q", false, "Do not print the summary line")
	c.Flags().Bool(extension.FlagNoColour, false, "Disable colour output")
	return c
}

func (e *Extension) runGrep(c *cobra.Command, args []string) error {
	req := grep.Request{Query: args[0]}
	if len(args) > 1 {
		req.Path = args[1]
	}
	req.Glob, _ = c.Flags().GetString(extension.FlagGlob)
	req.CaseSensitive, _ = c.Flags().GetBool(extension.FlagCaseSensitive)

	maxMatches, _ := c.Flags().GetInt(extension.FlagMax)
	filesOnly, _ := c.Flags().GetBool(extension.FlagFilesWithMatch)
	countOnly, _ := c.Flags().GetBool(extension.FlagCount)
	quiet, _ := c.Flags().GetBool(extension.FlagQuiet)
	noColour, _ := c.Flags().GetBool(extension.FlagNoColour)

	if maxMatches < 0 || maxMatches > config.MaxMaxMatches {
		return cmd.PrintJSONError(fmt.Errorf("--max must be between 0 (use config) and %d, got %d", config.MaxMaxMatches, maxMatches))
	}

	limits := e.ctx.Config().Limits()
	if maxMatches > 0 {
		limits.MaxMatches = maxMatches
	}

	spin := progress.NewSpinner("Searching")
	if !cmd.JSON() {
		spin.Start()
	}
	searcher := grep.New(e.ctx.Workspace(), limits, grep.WithProgress(func(string) { spin.Tick() }))
	res, err := searcher.Search(c.Context(), req)
	spin.Stop()

	resolved, _ := e.ctx.Workspace().Resolve(req.Path)
	log.Event("search:grep", "search").
		Path(req.Path).
		Resolved(resolved).
		Detail("query", req.Query).
		Detail("glob", req.Glob).
		Detail("case_sensitive", req.CaseSensitive).
		Detail("matches", res.TotalMatches).
		Detail("files", res.FilesSearched).
		Detail("truncated", res.Truncated).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("grep %q: %w", req.Query, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(res)
	}

	opts := format.Options{
		Colour:        !noColour && !color.NoColor && cmd.Out() == os.Stdout,
		Query:         req.Query,
		CaseSensitive: req.CaseSensitive,
	}
	switch {
	case countOnly:
		_, err = fmt.Fprintln(cmd.Out(), res.TotalMatches)
	case filesOnly:
		err = format.Files(cmd.Out(), res, opts)
	default:
		err = format.Matches(cmd.Out(), res, opts)
	}
	if err != nil {
		return err
	}

	if !quiet {
		return format.Summary(c.ErrOrStderr(), res)
	}
	return nil
}
