package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/skeldoc/pkg/docstring"
	"github.com/yaklabco/skeldoc/pkg/runner"
	"github.com/yaklabco/skeldoc/pkg/skeleton"
)

// MarkdownReporter renders skeletons as a Markdown document, one
// section per file with a nested declaration list.
type MarkdownReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewMarkdownReporter creates a new Markdown reporter.
func NewMarkdownReporter(opts Options) *MarkdownReporter {
	return &MarkdownReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *MarkdownReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if _, err := r.bw.WriteString(r.Render(result)); err != nil {
		return 0, fmt.Errorf("write markdown: %w", err)
	}
	return result.Stats.NodesTotal, nil
}

// Render produces the Markdown document as a string. Split out from
// Report so the HTML reporter can reuse it.
func (r *MarkdownReporter) Render(result *runner.Result) string {
	var sb strings.Builder

	if r.opts.Title != "" {
		fmt.Fprintf(&sb, "# %s\n", r.opts.Title)
	}

	for _, file := range result.Files {
		if file.Skipped {
			continue
		}

		path := displayPath(file.Path, r.opts.WorkingDir)
		fmt.Fprintf(&sb, "\n## `%s`\n\n", path)

		if file.Error != nil {
			fmt.Fprintf(&sb, "Extraction failed: %v\n", file.Error)
			continue
		}
		if file.Root == nil {
			continue
		}

		if r.opts.ShowDocstrings {
			if doc, ok := docstring.FromNode(file.Root); ok {
				sb.WriteString(doc)
				sb.WriteString("\n\n")
			}
		}

		if len(file.Root.Children) == 0 {
			sb.WriteString("No declarations.\n")
			continue
		}

		for _, child := range file.Root.Children {
			r.writeNode(&sb, child, 0)
		}
	}

	return sb.String()
}

// writeNode emits one declaration as a list item, indented two spaces
// per nesting level.
func (r *MarkdownReporter) writeNode(sb *strings.Builder, n *skeleton.Node, depth int) {
	if r.opts.MaxDepth > 0 && depth >= r.opts.MaxDepth {
		return
	}

	name := n.Name
	if name == "" {
		name = "(block)"
	}

	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(sb, "%s- **%s** *%s*", indent, name, n.Kind.String())
	if r.opts.ShowLineNumbers {
		fmt.Fprintf(sb, " (line %d)", n.Lineno+1)
	}

	if r.opts.ShowDocstrings {
		if doc, ok := docstring.FromNode(n); ok {
			fmt.Fprintf(sb, " - %s", docstring.Summary(doc))
		}
	}
	sb.WriteString("\n")

	for _, child := range n.Children {
		r.writeNode(sb, child, depth+1)
	}
}
