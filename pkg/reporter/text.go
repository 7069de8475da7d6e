package reporter

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/yaklabco/skeldoc/internal/ui/pretty"
	"github.com/yaklabco/skeldoc/pkg/runner"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// TextReporter formats results as a styled terminal outline.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	width  int
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)

	width := defaultTermWidth
	if f, ok := opts.Writer.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		width:  width,
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to outline."))
		}
		return 0, nil
	}

	treeOpts := pretty.TreeOptions{
		MaxDepth:        r.opts.MaxDepth,
		ShowDocstrings:  r.opts.ShowDocstrings,
		ShowLineNumbers: r.opts.ShowLineNumbers,
		Width:           r.width,
	}

	first := true
	for _, file := range result.Files {
		if file.Skipped {
			continue
		}

		if !first {
			fmt.Fprintln(r.bw)
		}
		first = false

		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}
		if file.Root == nil {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FilePath.Render(path))
		if len(file.Root.Children) == 0 {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("    (no declarations)"))
			continue
		}
		r.styles.RenderTree(r.bw, file.Root, treeOpts)
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return result.Stats.NodesTotal, nil
}
