package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output (text format only).
	// Values: "auto" (default), "always", "never"
	Color string

	// ShowDocstrings includes docstring summaries in the outline.
	ShowDocstrings bool

	// ShowLineNumbers includes source line numbers in the outline.
	ShowLineNumbers bool

	// ShowSummary displays aggregate statistics after results.
	ShowSummary bool

	// MaxDepth caps the rendered outline depth. 0 means unlimited.
	MaxDepth int

	// Title is the document title for markdown and HTML output.
	Title string

	// WorkingDir is the directory to make paths relative to.
	// If empty, paths are kept as-is (typically absolute).
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:          os.Stdout,
		Format:          FormatText,
		Color:           "auto",
		ShowDocstrings:  true,
		ShowLineNumbers: true,
		ShowSummary:     true,
		Title:           "Code skeleton",
	}
}
