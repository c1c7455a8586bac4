// Package grep provides literal text search across a workspace tree.
//
// A search walks the tree depth-first, skipping deny-listed directories and
// binary files, filters file names with an optional glob, and reports every
// line containing the query until a match cap is reached. The query is a
// literal phrase: regex metacharacters are escaped before compiling, so
// "a.b" only matches the text "a.b".
//
// Searches are best-effort. A directory that cannot be listed or a file that
// cannot be read is skipped and counted, never fatal. Only an empty query or a
// path outside the workspace aborts a search.
package grep

import (
	"context"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jpl-au/seek/internal/glob"
	"github.com/jpl-au/seek/internal/path"
	"github.com/jpl-au/seek/internal/validate"
	"golang.org/x/text/encoding/unicode"
)

// FS is the read-only filesystem a search walks. Paths are workspace-relative
// with forward slashes; "." is the root.
type FS interface {
	// Resolve validates a caller path and returns its normalised form.
	Resolve(p string) (string, error)
	// ReadDir lists a directory in filesystem order.
	ReadDir(rel string) ([]fs.DirEntry, error)
	// ReadFile returns a file's raw content.
	ReadFile(rel string) ([]byte, error)
}

// Request describes a single search.
type Request struct {
	Query         string // Literal text to find; trimmed, must be non-empty
	Path          string // Subtree to search, relative to the workspace root (default ".")
	Glob          string // Optional base-name filter, e.g. "*.{ts,tsx}"
	CaseSensitive bool   // Content matching only; glob matching is always case-insensitive
}

// Match is a single matching line.
type Match struct {
	File    string `json:"file"`    // Relative to the workspace root
	Line    int    `json:"line"`    // 1-indexed line number
	Content string `json:"content"` // Trimmed, truncated to Limits.MaxLineLength
}

// Result contains the outcome of a search.
type Result struct {
	Matches       []Match `json:"matches"`
	TotalMatches  int     `json:"totalMatches"`
	FilesSearched int     `json:"filesSearched"`

	// Truncated is true when the match cap was reached. It does not promise
	// that more matches exist: exactly MaxMatches matches also reports true.
	Truncated bool `json:"truncated"`

	// Skipped counts directories and files that could not be listed, read or
	// decoded. These never fail the search.
	Skipped int `json:"skipped"`
}

// Searcher runs searches against an FS. It holds no per-search state and is
// safe for concurrent use.
type Searcher struct {
	fsys     FS
	limits   Limits
	skipDirs map[string]bool
	binary   map[string]bool
	onFile   func(rel string)
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithProgress registers a callback invoked each time a file is opened.
// The CLI uses this to animate a spinner on large trees.
func WithProgress(fn func(rel string)) Option {
	return func(s *Searcher) { s.onFile = fn }
}

// New creates a Searcher over fsys. Zero or nil limit fields take their
// defaults (see Limits.withDefaults).
func New(fsys FS, limits Limits, opts ...Option) *Searcher {
	limits = limits.withDefaults()
	s := &Searcher{
		fsys:     fsys,
		limits:   limits,
		skipDirs: toSet(limits.SkipDirs, false),
		binary:   toSet(limits.BinaryExtensions, true),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Limits returns the effective limits after defaults were applied.
func (s *Searcher) Limits() Limits {
	return s.limits
}

// frame is a directory whose entries are being visited.
type frame struct {
	dir     string
	entries []fs.DirEntry
	next    int
}

// search holds the accumulator for a single Search call.
type search struct {
	*Searcher
	re     *regexp.Regexp
	filter *glob.Pattern
	result Result
}

// Search runs a literal search and returns the capped result.
//
// Fatal errors (returned before any I/O):
//   - validate.ErrInvalidArgument: empty query or malformed glob
//   - validate.ErrPathEscape / validate.ErrInvalidPath: bad Path
//
// If ctx is cancelled the search stops and returns ctx.Err() with a zero
// Result; a partial result is never returned.
func (s *Searcher) Search(ctx context.Context, req Request) (Result, error) {
	query, err := validate.Query(req.Query)
	if err != nil {
		return Result{}, err
	}

	start, err := s.fsys.Resolve(req.Path)
	if err != nil {
		return Result{}, err
	}

	run := &search{
		Searcher: s,
		re:       compileQuery(query, req.CaseSensitive),
		result:   Result{Matches: make([]Match, 0)},
	}
	if req.Glob != "" {
		run.filter, err = glob.Compile(req.Glob)
		if err != nil {
			return Result{}, fmt.Errorf("%w: %w", validate.ErrInvalidArgument, err)
		}
	}

	if err := run.walk(ctx, start); err != nil {
		return Result{}, err
	}

	run.result.TotalMatches = len(run.result.Matches)
	run.result.Truncated = run.full()
	return run.result, nil
}

// compileQuery builds a regex that matches the query literally.
func compileQuery(query string, caseSensitive bool) *regexp.Regexp {
	expr := regexp.QuoteMeta(query)
	if !caseSensitive {
		expr = "(?i)" + expr
	}
	return regexp.MustCompile(expr)
}

// full reports whether the match cap has been reached.
func (r *search) full() bool {
	return len(r.result.Matches) >= r.limits.MaxMatches
}

// walk visits the tree under start depth-first using an explicit stack.
// A subdirectory is fully explored before the next entry of its parent, so
// the order matches a recursive walk over entries in listing order.
func (r *search) walk(ctx context.Context, start string) error {
	var stack []*frame

	push := func(dir string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		entries, err := r.fsys.ReadDir(dir)
		if err != nil {
			r.result.Skipped++
			return nil
		}
		stack = append(stack, &frame{dir: dir, entries: entries})
		return nil
	}

	if err := push(start); err != nil {
		return err
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next >= len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		entry := top.entries[top.next]
		top.next++

		name := entry.Name()
		if r.skipDirs[name] {
			continue
		}
		rel := path.Join(top.dir, name)

		switch {
		case entry.IsDir():
			if err := push(rel); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if r.isBinary(name) || (r.filter != nil && !r.filter.Match(name)) {
				continue
			}
			if err := r.searchFile(ctx, rel); err != nil {
				return err
			}
			if r.full() {
				return nil
			}
		}
	}
	return nil
}

// isBinary reports whether name has a deny-listed extension.
func (r *search) isBinary(name string) bool {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		// No extension, or a dotfile like ".env" whose "extension" is its name
		return false
	}
	return r.binary[strings.ToLower(name[i:])]
}

// searchFile scans one file and appends matching lines until the cap.
func (r *search) searchFile(ctx context.Context, rel string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.result.FilesSearched++
	if r.onFile != nil {
		r.onFile(rel)
	}

	data, err := r.fsys.ReadFile(rel)
	if err != nil {
		r.result.Skipped++
		return nil
	}
	text, err := decode(data)
	if err != nil {
		r.result.Skipped++
		return nil
	}

	for i, line := range strings.Split(text, "\n") {
		if !r.re.MatchString(line) {
			continue
		}
		r.result.Matches = append(r.result.Matches, Match{
			File:    rel,
			Line:    i + 1,
			Content: truncate(strings.TrimSpace(line), r.limits.MaxLineLength),
		})
		if r.full() {
			break
		}
	}
	return nil
}

// decode interprets raw bytes as UTF-8 text. Invalid sequences become U+FFFD
// rather than failing, so a stray Latin-1 byte does not hide a whole file.
func decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// toSet builds a lookup set, optionally lower-casing keys.
func toSet(items []string, lower bool) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		if lower {
			item = strings.ToLower(item)
		}
		set[item] = true
	}
	return set
}
