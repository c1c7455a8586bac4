// flags.go defines constants for all CLI flag names.
//
// Constants instead of string literals keep Flags().Type() definitions and
// GetType() calls in sync.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag (e.g., "case-sensitive" -> FlagCaseSensitive).

package extension

// Flag name constants for CLI commands.
// These are used with cobra's Flags().Type() and GetType() methods.
const (
	// Boolean flags

	FlagCaseSensitive  = "case-sensitive"     // Match content case exactly
	FlagCount          = "count"              // Output match count only
	FlagDryRun         = "dry-run"            // Report without deleting
	FlagFilesWithMatch = "files-with-matches" // Output matching file paths only
	FlagForce          = "force"              // Skip confirmation
	FlagLocal          = "local"              // Use local scope (.seek/config.yaml)
	FlagNoColour       = "no-color"           // Disable colour output
	FlagQuiet          = "quiet"              // Suppress the summary line
	FlagUnset          = "unset"              // Remove a config value

	// String flags

	FlagGlob      = "glob"       // File name filter
	FlagOlderThan = "older-than" // Retention window (7d, 4w, 3m)

	// Integer flags

	FlagMax = "max" // Match cap for this search
)
