// Package format provides output formatting utilities for CLI display.
//
// Command implementations produce a grep.Result; this package handles
// presentation: grep-style match lines, optional colour and the summary.
package format

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/jpl-au/seek/internal/grep"
)

// Options controls how matches are rendered.
type Options struct {
	Colour        bool   // Emit ANSI colour codes
	Query         string // Highlighted within each line when Colour is set
	CaseSensitive bool   // Must agree with the search for highlighting to line up
}

// palette holds the colours for one render call.
type palette struct {
	file, line, sep, hit *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		file: color.New(color.FgMagenta),
		line: color.New(color.FgGreen),
		sep:  color.New(color.FgCyan),
		hit:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.file, p.line, p.sep, p.hit} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Matches prints one "file:line:content" row per match.
func Matches(w io.Writer, res grep.Result, opts Options) error {
	p := newPalette(opts.Colour)
	hl := highlighter(opts)

	for _, m := range res.Matches {
		content := m.Content
		if opts.Colour && hl != nil {
			content = hl.ReplaceAllStringFunc(content, func(s string) string {
				return p.hit.Sprint(s)
			})
		}
		_, err := fmt.Fprintf(w, "%s%s%s%s%s\n",
			p.file.Sprint(m.File), p.sep.Sprint(":"),
			p.line.Sprint(m.Line), p.sep.Sprint(":"),
			content)
		if err != nil {
			return err
		}
	}
	return nil
}

// Files prints each file with at least one match, once, in match order.
func Files(w io.Writer, res grep.Result, opts Options) error {
	p := newPalette(opts.Colour)
	seen := make(map[string]bool)
	for _, m := range res.Matches {
		if seen[m.File] {
			continue
		}
		seen[m.File] = true
		if _, err := fmt.Fprintln(w, p.file.Sprint(m.File)); err != nil {
			return err
		}
	}
	return nil
}

// Summary prints a one-line description of the result, e.g.
// "3 matches in 2 of 14 files (limit reached)".
func Summary(w io.Writer, res grep.Result) error {
	files := make(map[string]bool)
	for _, m := range res.Matches {
		files[m.File] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d %s in %d of %d %s",
		res.TotalMatches, plural(res.TotalMatches, "match", "matches"),
		len(files), res.FilesSearched, plural(res.FilesSearched, "file", "files"))

	var notes []string
	if res.Truncated {
		notes = append(notes, "limit reached")
	}
	if res.Skipped > 0 {
		notes = append(notes, fmt.Sprintf("%d unreadable", res.Skipped))
	}
	if len(notes) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(notes, ", "))
	}

	_, err := fmt.Fprintln(w, b.String())
	return err
}

func highlighter(opts Options) *regexp.Regexp {
	q := strings.TrimSpace(opts.Query)
	if q == "" {
		return nil
	}
	expr := regexp.QuoteMeta(q)
	if !opts.CaseSensitive {
		expr = "(?i)" + expr
	}
	return regexp.MustCompile(expr)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
