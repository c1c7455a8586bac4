// guide.go implements the "seek guide" command for documentation access.
//
// Terminal output gets glamour rendering; pipes and redirects get raw
// markdown for machine consumption and LLM context loading.

package core

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/seek/cmd"
	"github.com/jpl-au/seek/guide"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the seek usage guide",
		Long: `Outputs the seek guide for LLMs and humans.

  seek guide          # main guide
  seek guide grep     # search rules and flags
  seek guide config   # configuration keys
  seek guide mcp      # MCP server and tools`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			topics, _ := guide.List()
			return topics, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(_ *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.PrintJSONError(fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if cmd.JSON() {
				return cmd.PrintJSON(map[string]string{"topic": name, "content": content})
			}
			return render(cmd.Out(), content)
		},
	}
}

// render writes markdown to w, styled when w is a terminal.
func render(w io.Writer, content string) error {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if rendered, err := glamour.Render(content, "dark"); err == nil {
			_, err = fmt.Fprint(w, rendered)
			return err
		}
	}
	_, err := fmt.Fprint(w, content)
	return err
}
