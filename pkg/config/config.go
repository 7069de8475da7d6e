// Package config defines core configuration types for skeldoc.
// These types are pure data structures; file discovery and parsing
// live alongside them but nothing here depends on the CLI.
package config

// OutputFormat specifies the output format for extracted skeletons.
type OutputFormat string

const (
	FormatText     OutputFormat = "text"
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
	FormatHTML     OutputFormat = "html"
)

// IsValid returns true if the output format is one skeldoc can render.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatMarkdown, FormatHTML:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for skeldoc.
type Config struct {
	// Extensions lists additional file extensions to treat as
	// indentation-delimited source, without the leading dot.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files and directories to skip.
	Ignore []string `yaml:"ignore"`

	// Docstrings controls whether docstrings are pulled into reports.
	// Nil means the default (enabled); a pointer distinguishes an
	// explicit "false" in a config file from an absent field.
	Docstrings *bool `yaml:"docstrings"`

	// MaxDepth caps how deep the rendered outline goes. 0 means
	// unlimited.
	MaxDepth int `yaml:"max_depth"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Output is the path reports are written to; empty means stdout.
	Output string `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`
}

// IncludeDocstrings reports whether docstrings should appear in
// reports. Unset means enabled.
func (c *Config) IncludeDocstrings() bool {
	return c.Docstrings == nil || *c.Docstrings
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Extensions: nil,
		Ignore:     []string{".git/**", "**/__pycache__/**", "**/.venv/**"},
		Docstrings: nil,
		MaxDepth:   0,
		Format:     FormatText,
		Jobs:       0, // 0 means use GOMAXPROCS
	}
}
