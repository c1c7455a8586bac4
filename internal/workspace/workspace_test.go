package workspace

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jpl-au/seek/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T) (*Workspace, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "api"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "api", "handler.go"), []byte("package api\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# readme\n"), 0644))

	ws, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws, dir
}

func TestOpen(t *testing.T) {
	ws, dir := open(t)
	abs, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, abs, ws.Root())

	t.Run("missing", func(t *testing.T) {
		_, err := Open(filepath.Join(dir, "nope"))
		assert.Error(t, err)
	})

	t.Run("file", func(t *testing.T) {
		_, err := Open(filepath.Join(dir, "README.md"))
		assert.ErrorIs(t, err, ErrNotDirectory)
	})
}

func TestResolve(t *testing.T) {
	ws, dir := open(t)

	tests := []struct {
		in   string
		want string
	}{
		{"", "."},
		{".", "."},
		{"src", "src"},
		{"./src/api/", "src/api"},
		{"src/../README.md", "README.md"},
		{filepath.Join(dir, "src"), "src"},
		{dir, "."},
	}
	for _, tt := range tests {
		got, err := ws.Resolve(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"..", "../x", "src/../../x", filepath.Dir(dir)} {
		_, err := ws.Resolve(bad)
		assert.ErrorIs(t, err, validate.ErrPathEscape, bad)
	}
}

func TestReadDir(t *testing.T) {
	ws, _ := open(t)

	entries, err := ws.ReadDir(".")
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"README.md", "src"}, names)

	entries, err = ws.ReadDir("src")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsDir())

	_, err = ws.ReadDir("missing")
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	ws, _ := open(t)

	data, err := ws.ReadFile("src/api/handler.go")
	require.NoError(t, err)
	assert.Equal(t, "package api\n", string(data))

	assert.Equal(t, filepath.Join(ws.Root(), "src", "api", "handler.go"), ws.Abs("src/api/handler.go"))
}

func TestReadFile_SymlinkEscape(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on Windows")
	}
	ws, dir := open(t)

	outside := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret\n"), 0644))
	require.NoError(t, os.Symlink(outside, filepath.Join(dir, "link.txt")))

	_, err := ws.ReadFile("link.txt")
	assert.Error(t, err, "reads through os.Root cannot follow links out of the tree")
}
