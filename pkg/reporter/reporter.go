// Package reporter renders extraction results as terminal outlines,
// JSON, Markdown, or HTML.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/skeldoc/pkg/runner"
)

// Reporter formats and writes extraction results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of declarations reported and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	switch opts.Format {
	case FormatText, "":
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatMarkdown:
		return NewMarkdownReporter(opts), nil
	case FormatHTML:
		return NewHTMLReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

// displayPath makes a path relative to the working directory when that
// produces a shorter, saner path.
func displayPath(path, workingDir string) string {
	if workingDir == "" {
		return path
	}
	rel, err := filepath.Rel(workingDir, path)
	if err != nil || len(rel) >= len(path) {
		return path
	}
	return rel
}
