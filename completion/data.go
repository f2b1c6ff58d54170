// completion/data.go
package completion

// ValueEntry is one acceptable value for a flag that takes an argument
type ValueEntry struct {
	Pattern     string // The literal word offered to the shell
	Description string // Human-readable description
}

// FlagEntry describes one command-line option of the completed program
type FlagEntry struct {
	Long        string // Canonical name without the -- prefix
	Short       string // Optional single-character alias without the - prefix
	Description string
	Standalone  bool // True when the flag takes no value
}

// Data is the descriptor table consumed by the shell script generators
type Data struct {
	Flags  []FlagEntry
	Values map[string][]ValueEntry // keyed by long flag name
}

// Paths holds information about completion script locations
type Paths struct {
	Primary   string // Main completion path
	Fallback  string // Alternative path if primary isn't available
	Extension string // File extension for completion script (if any)
	Comment   string // Documentation about the path choice
}

// FileInfo holds shell-specific naming conventions
type FileInfo struct {
	Prefix    string // Some shells require specific prefixes
	Extension string // File extension if required
	Comment   string // Documentation about the naming convention
}
