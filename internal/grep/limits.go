package grep

// Default limits applied when a Limits field is zero.
const (
	DefaultMaxMatches    = 100
	DefaultMaxLineLength = 200
)

// Limits bounds a search and names what it ignores.
//
// Nil slices take the defaults; an empty non-nil slice disables the
// corresponding filter.
type Limits struct {
	MaxMatches       int      // Cap on reported matches
	MaxLineLength    int      // Cap on Match.Content, in runes
	SkipDirs         []string // Entry names never descended into or opened
	BinaryExtensions []string // File extensions (with dot) never opened
}

// DefaultSkipDirs returns the directory names skipped by default.
func DefaultSkipDirs() []string {
	return []string{
		"node_modules", ".git", "dist", "build",
		".next", ".cache", ".vscode", "coverage",
	}
}

// DefaultBinaryExtensions returns the file extensions treated as binary.
func DefaultBinaryExtensions() []string {
	return []string{
		// images
		".png", ".jpg", ".jpeg", ".gif", ".ico", ".svg", ".webp",
		// fonts
		".woff", ".woff2", ".ttf", ".eot", ".otf",
		// documents and archives
		".pdf", ".zip", ".tar", ".gz", ".7z", ".rar",
		// executables and libraries
		".exe", ".dll", ".so", ".dylib",
		// media
		".mp3", ".mp4", ".avi", ".mov", ".mkv",
		// databases and lockfiles
		".db", ".sqlite", ".lock",
	}
}

// DefaultLimits returns the limits used when nothing is configured.
func DefaultLimits() Limits {
	return Limits{
		MaxMatches:       DefaultMaxMatches,
		MaxLineLength:    DefaultMaxLineLength,
		SkipDirs:         DefaultSkipDirs(),
		BinaryExtensions: DefaultBinaryExtensions(),
	}
}

// withDefaults fills zero fields from DefaultLimits.
func (l Limits) withDefaults() Limits {
	if l.MaxMatches <= 0 {
		l.MaxMatches = DefaultMaxMatches
	}
	if l.MaxLineLength <= 0 {
		l.MaxLineLength = DefaultMaxLineLength
	}
	if l.SkipDirs == nil {
		l.SkipDirs = DefaultSkipDirs()
	}
	if l.BinaryExtensions == nil {
		l.BinaryExtensions = DefaultBinaryExtensions()
	}
	return l
}
