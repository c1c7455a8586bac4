package grep

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"unicode/utf8"

	"github.com/jpl-au/seek/internal/validate"
	"github.com/jpl-au/seek/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFS is an in-memory FS that records I/O and can deny access.
type memFS struct {
	files  fstest.MapFS
	denied map[string]bool
	listed []string
	opened []string
}

func newMemFS(files map[string]string) *memFS {
	m := &memFS{files: fstest.MapFS{}, denied: map[string]bool{}}
	for name, content := range files {
		m.files[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return m
}

func (m *memFS) Resolve(p string) (string, error) {
	return validate.Path(p)
}

func (m *memFS) ReadDir(rel string) ([]fs.DirEntry, error) {
	m.listed = append(m.listed, rel)
	if m.denied[rel] {
		return nil, fs.ErrPermission
	}
	return fs.ReadDir(m.files, rel)
}

func (m *memFS) ReadFile(rel string) ([]byte, error) {
	m.opened = append(m.opened, rel)
	if m.denied[rel] {
		return nil, fs.ErrPermission
	}
	return fs.ReadFile(m.files, rel)
}

func runSearch(t *testing.T, fsys FS, limits Limits, req Request) Result {
	t.Helper()
	res, err := New(fsys, limits).Search(context.Background(), req)
	require.NoError(t, err)
	return res
}

func lines(n int, text string) string {
	var b strings.Builder
	for range n {
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String()
}

func TestSearch_Example(t *testing.T) {
	m := newMemFS(map[string]string{
		"src/a.ts":              "const x = 1;\nfunction Foo() {}\n",
		"src/b.md":              "# foo\n",
		"node_modules/lib/i.js": "foo",
		"assets/logo.png":       "foo",
	})

	res := runSearch(t, m, DefaultLimits(), Request{Query: "foo"})

	assert.Equal(t, []Match{
		{File: "src/a.ts", Line: 2, Content: "function Foo() {}"},
		{File: "src/b.md", Line: 1, Content: "# foo"},
	}, res.Matches)
	assert.Equal(t, 2, res.TotalMatches)
	assert.Equal(t, 2, res.FilesSearched)
	assert.False(t, res.Truncated)
	assert.Zero(t, res.Skipped)
}

func TestSearch_Cap(t *testing.T) {
	t.Run("default cap", func(t *testing.T) {
		m := newMemFS(map[string]string{
			"a.txt": lines(60, "hit"),
			"b.txt": lines(60, "hit"),
			"c.txt": lines(60, "hit"),
		})
		res := runSearch(t, m, DefaultLimits(), Request{Query: "hit"})

		assert.Len(t, res.Matches, DefaultMaxMatches)
		assert.Equal(t, DefaultMaxMatches, res.TotalMatches)
		assert.True(t, res.Truncated)
		assert.Equal(t, 2, res.FilesSearched)
		assert.Equal(t, []string{"a.txt", "b.txt"}, m.opened, "no file opened after the cap")
		assert.Equal(t, 40, res.Matches[99].Line)
	})

	t.Run("exactly at cap", func(t *testing.T) {
		m := newMemFS(map[string]string{"a.txt": lines(3, "hit")})
		res := runSearch(t, m, Limits{MaxMatches: 3}, Request{Query: "hit"})
		assert.Len(t, res.Matches, 3)
		assert.True(t, res.Truncated)
	})

	t.Run("below cap", func(t *testing.T) {
		m := newMemFS(map[string]string{"a.txt": lines(2, "hit")})
		res := runSearch(t, m, Limits{MaxMatches: 3}, Request{Query: "hit"})
		assert.Len(t, res.Matches, 2)
		assert.False(t, res.Truncated)
	})

	t.Run("line order within file", func(t *testing.T) {
		m := newMemFS(map[string]string{"a.txt": "hit\nmiss\nhit\nhit\n"})
		res := runSearch(t, m, DefaultLimits(), Request{Query: "hit"})
		var got []int
		for _, match := range res.Matches {
			got = append(got, match.Line)
		}
		assert.Equal(t, []int{1, 3, 4}, got)
	})
}

func TestSearch_Query(t *testing.T) {
	m := newMemFS(map[string]string{"a.txt": "Hello\nhello\nHELLO\na.b\naxb\n"})

	t.Run("empty", func(t *testing.T) {
		for _, q := range []string{"", "   ", "\t\n"} {
			_, err := New(m, DefaultLimits()).Search(context.Background(), Request{Query: q})
			assert.ErrorIs(t, err, validate.ErrInvalidArgument, "query %q", q)
		}
		assert.Empty(t, m.listed, "validation happens before any I/O")
	})

	t.Run("case insensitive by default", func(t *testing.T) {
		res := runSearch(t, m, DefaultLimits(), Request{Query: "hello"})
		assert.Equal(t, 3, res.TotalMatches)
	})

	t.Run("case sensitive", func(t *testing.T) {
		res := runSearch(t, m, DefaultLimits(), Request{Query: "hello", CaseSensitive: true})
		require.Len(t, res.Matches, 1)
		assert.Equal(t, 2, res.Matches[0].Line)
	})

	t.Run("literal metacharacters", func(t *testing.T) {
		res := runSearch(t, m, DefaultLimits(), Request{Query: "a.b"})
		require.Len(t, res.Matches, 1)
		assert.Equal(t, "a.b", res.Matches[0].Content)
	})

	t.Run("trimmed", func(t *testing.T) {
		res := runSearch(t, m, DefaultLimits(), Request{Query: "  HELLO  ", CaseSensitive: true})
		require.Len(t, res.Matches, 1)
		assert.Equal(t, 3, res.Matches[0].Line)
	})
}

func TestSearch_Filters(t *testing.T) {
	t.Run("binary extensions never opened", func(t *testing.T) {
		m := newMemFS(map[string]string{
			"image.png": "foo",
			"PHOTO.JPG": "foo",
			"yarn.lock": "foo",
			"notes.txt": "foo",
		})
		res := runSearch(t, m, DefaultLimits(), Request{Query: "foo"})
		assert.Equal(t, []string{"notes.txt"}, m.opened)
		assert.Equal(t, 1, res.FilesSearched)
	})

	t.Run("skip dirs never listed", func(t *testing.T) {
		m := newMemFS(map[string]string{
			"node_modules/pkg/index.js": "foo",
			".git/HEAD":                 "foo",
			"src/deep/node_modules/x":   "foo",
			"src/main.go":               "foo",
		})
		res := runSearch(t, m, DefaultLimits(), Request{Query: "foo"})
		require.Len(t, res.Matches, 1)
		assert.Equal(t, "src/main.go", res.Matches[0].File)
		for _, dir := range m.listed {
			assert.NotContains(t, dir, "node_modules")
			assert.NotContains(t, dir, ".git")
		}
	})

	t.Run("skip names apply to files", func(t *testing.T) {
		m := newMemFS(map[string]string{"build": "foo", "make": "foo"})
		res := runSearch(t, m, DefaultLimits(), Request{Query: "foo"})
		assert.Equal(t, []string{"make"}, m.opened)
		assert.Equal(t, 1, res.TotalMatches)
	})

	t.Run("glob on base name", func(t *testing.T) {
		m := newMemFS(map[string]string{
			"src/a.ts":  "foo",
			"src/b.TSX": "foo",
			"src/c.js":  "foo",
			"d.ts/e.md": "foo",
		})
		res := runSearch(t, m, DefaultLimits(), Request{Query: "foo", Glob: "*.{ts,tsx}"})
		var files []string
		for _, match := range res.Matches {
			files = append(files, match.File)
		}
		assert.Equal(t, []string{"src/a.ts", "src/b.TSX"}, files)
		assert.Equal(t, 2, res.FilesSearched)
	})

	t.Run("bad glob", func(t *testing.T) {
		m := newMemFS(map[string]string{"a.txt": "foo"})
		_, err := New(m, DefaultLimits()).Search(context.Background(), Request{
			Query: "foo",
			Glob:  strings.Repeat("{a,b}", 11),
		})
		assert.ErrorIs(t, err, validate.ErrInvalidArgument)
	})

	t.Run("symlinks ignored", func(t *testing.T) {
		m := newMemFS(map[string]string{"real.txt": "foo"})
		m.files["link.txt"] = &fstest.MapFile{Data: []byte("foo"), Mode: fs.ModeSymlink}
		res := runSearch(t, m, DefaultLimits(), Request{Query: "foo"})
		assert.Equal(t, []string{"real.txt"}, m.opened)
		assert.Equal(t, 1, res.TotalMatches)
	})

	t.Run("custom limits replace defaults", func(t *testing.T) {
		m := newMemFS(map[string]string{
			"node_modules/x.js": "foo",
			"vendor/y.go":       "foo",
			"a.png":             "foo",
		})
		res := runSearch(t, m, Limits{SkipDirs: []string{"vendor"}, BinaryExtensions: []string{}},
			Request{Query: "foo"})
		var files []string
		for _, match := range res.Matches {
			files = append(files, match.File)
		}
		assert.Equal(t, []string{"a.png", "node_modules/x.js"}, files)
	})
}

func TestSearch_Content(t *testing.T) {
	t.Run("trimmed and truncated", func(t *testing.T) {
		m := newMemFS(map[string]string{
			"long.txt": "   " + strings.Repeat("x", 500) + "   \n",
		})
		res := runSearch(t, m, DefaultLimits(), Request{Query: "xxx"})
		require.Len(t, res.Matches, 1)
		assert.Equal(t, strings.Repeat("x", DefaultMaxLineLength), res.Matches[0].Content)
	})

	t.Run("truncates by rune", func(t *testing.T) {
		m := newMemFS(map[string]string{"u.txt": strings.Repeat("é", 300)})
		res := runSearch(t, m, Limits{MaxLineLength: 10}, Request{Query: "é"})
		require.Len(t, res.Matches, 1)
		assert.Equal(t, 10, utf8.RuneCountInString(res.Matches[0].Content))
		assert.True(t, utf8.ValidString(res.Matches[0].Content))
	})

	t.Run("crlf", func(t *testing.T) {
		m := newMemFS(map[string]string{"w.txt": "one\r\nfoo bar\r\n"})
		res := runSearch(t, m, DefaultLimits(), Request{Query: "foo"})
		require.Len(t, res.Matches, 1)
		assert.Equal(t, 2, res.Matches[0].Line)
		assert.Equal(t, "foo bar", res.Matches[0].Content)
	})

	t.Run("invalid utf-8 replaced", func(t *testing.T) {
		m := newMemFS(map[string]string{"latin.txt": "caf\xe9 foo\n"})
		res := runSearch(t, m, DefaultLimits(), Request{Query: "foo"})
		require.Len(t, res.Matches, 1)
		assert.Equal(t, "caf\uFFFD foo", res.Matches[0].Content)
	})
}

func TestSearch_Paths(t *testing.T) {
	m := newMemFS(map[string]string{
		"src/lib/a.go": "foo",
		"other/b.go":   "foo",
	})

	t.Run("subtree relative to root", func(t *testing.T) {
		res := runSearch(t, m, DefaultLimits(), Request{Query: "foo", Path: "src"})
		require.Len(t, res.Matches, 1)
		assert.Equal(t, "src/lib/a.go", res.Matches[0].File)
	})

	t.Run("escape rejected", func(t *testing.T) {
		m.listed = nil
		_, err := New(m, DefaultLimits()).Search(context.Background(), Request{Query: "foo", Path: "../etc"})
		assert.ErrorIs(t, err, validate.ErrPathEscape)
		assert.Empty(t, m.listed)
	})

	t.Run("missing subtree", func(t *testing.T) {
		res := runSearch(t, m, DefaultLimits(), Request{Query: "foo", Path: "nope"})
		assert.Empty(t, res.Matches)
		assert.NotNil(t, res.Matches)
		assert.Equal(t, 1, res.Skipped)
	})
}

func TestSearch_Errors(t *testing.T) {
	m := newMemFS(map[string]string{
		"locked/secret.txt": "foo",
		"open/a.txt":        "foo",
		"open/denied.txt":   "foo",
	})
	m.denied["locked"] = true
	m.denied["open/denied.txt"] = true

	res := runSearch(t, m, DefaultLimits(), Request{Query: "foo"})

	require.Len(t, res.Matches, 1)
	assert.Equal(t, "open/a.txt", res.Matches[0].File)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, 2, res.FilesSearched, "a failed open still counts as searched")
}

func TestSearch_Cancel(t *testing.T) {
	m := newMemFS(map[string]string{
		"a.txt": "foo",
		"b.txt": "foo",
		"c.txt": "foo",
	})

	t.Run("before start", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		res, err := New(m, DefaultLimits()).Search(ctx, Request{Query: "foo"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, Result{}, res)
	})

	t.Run("mid search", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		s := New(m, DefaultLimits(), WithProgress(func(string) { cancel() }))
		res, err := s.Search(ctx, Request{Query: "foo"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, Result{}, res, "no partial result")
	})
}

func TestSearch_Progress(t *testing.T) {
	m := newMemFS(map[string]string{"a.txt": "x", "b.png": "x", "sub/c.txt": "x"})
	var seen []string
	s := New(m, DefaultLimits(), WithProgress(func(rel string) { seen = append(seen, rel) }))
	_, err := s.Search(context.Background(), Request{Query: "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "sub/c.txt"}, seen)
}

func TestSearch_Workspace(t *testing.T) {
	dir := t.TempDir()
	write := func(rel, content string) {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	write("src/a.ts", "const x = 1;\nfunction Foo() {}\n")
	write("src/b.md", "# foo\n")
	write("node_modules/lib/index.js", "foo")
	write("assets/logo.png", "foo")

	ws, err := workspace.Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })

	res := runSearch(t, ws, DefaultLimits(), Request{Query: "foo"})

	assert.ElementsMatch(t, []Match{
		{File: "src/a.ts", Line: 2, Content: "function Foo() {}"},
		{File: "src/b.md", Line: 1, Content: "# foo"},
	}, res.Matches)
	assert.Equal(t, 2, res.FilesSearched)
	assert.False(t, res.Truncated)

	t.Run("absolute path inside root", func(t *testing.T) {
		res := runSearch(t, ws, DefaultLimits(), Request{Query: "foo", Path: filepath.Join(dir, "src")})
		assert.Len(t, res.Matches, 2)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "", truncate("abc", 0))
	assert.Equal(t, "日本", truncate("日本語", 2))
}
