// Package log provides centralised audit logging for seek operations.
// Logs are stored in ~/.seek/log/seek-log.db and track all CLI commands
// and MCP tool invocations across workspaces.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("search:grep", "search").
//		Path(req.Path).
//		Detail("query", req.Query).
//		Detail("matches", res.TotalMatches).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "search:grep",
// "core:config", "mcp:seek_grep".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "search:grep", "mcp:seek_grep"
	Action string // verb: search, read, write, serve
	Path   string // input: path as the caller gave it

	// Resolved is the workspace-relative path after normalisation, when it
	// differs from Path.
	Resolved string

	// Timing
	Start int64 // unix milliseconds when Event() called
	End   int64 // unix milliseconds when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "search:grep")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:seek_grep")
//
// The action describes what operation was performed:
//   - "search", "read", "write", "serve"
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().UnixMilli(),
		},
	}
}

// Path sets the path this operation targets, as given by the caller.
// Leave unset for operations that don't target a path (e.g., config).
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Resolved sets the normalised workspace-relative path (output).
// Stored only when it differs from the input path.
func (b *Builder) Resolved(path string) *Builder {
	if path != b.entry.Path {
		b.entry.Resolved = path
	}
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// search queries, globs, match counts, config keys.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// Example:
//
//	res, err := searcher.Search(ctx, req)
//	log.Event("search:grep", "search").Path(req.Path).Write(err)
//	if err != nil {
//		return err
//	}
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().UnixMilli()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}
	// One writer at a time; the MCP server logs from concurrent handlers.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db, session: uuid.NewString()}
	return nil
}

// SetProject sets the workspace identifier for subsequent log entries.
// The dir should be the absolute workspace root.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Session returns the identifier shared by all entries from this process,
// or "" when the logger is not open.
func Session() string {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return ""
	}
	return global.session
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
