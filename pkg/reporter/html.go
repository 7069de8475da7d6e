package reporter

import (
	"bufio"
	"context"
	"fmt"
	"html"

	"github.com/yaklabco/skeldoc/pkg/docstring"
	"github.com/yaklabco/skeldoc/pkg/runner"
)

// HTMLReporter renders skeletons as standalone HTML by converting the
// Markdown document.
type HTMLReporter struct {
	opts     Options
	markdown *MarkdownReporter
	renderer *docstring.Renderer
	bw       *bufio.Writer
}

// NewHTMLReporter creates a new HTML reporter.
func NewHTMLReporter(opts Options) *HTMLReporter {
	return &HTMLReporter{
		opts:     opts,
		markdown: NewMarkdownReporter(opts),
		renderer: docstring.NewRenderer(),
		bw:       bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// Report implements Reporter.
func (r *HTMLReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	body, err := r.renderer.HTML(r.markdown.Render(result))
	if err != nil {
		return 0, fmt.Errorf("render html: %w", err)
	}

	fmt.Fprintf(r.bw, htmlHeader, html.EscapeString(r.opts.Title))
	if _, err := r.bw.WriteString(body); err != nil {
		return 0, fmt.Errorf("write html: %w", err)
	}
	if _, err := r.bw.WriteString(htmlFooter); err != nil {
		return 0, fmt.Errorf("write html: %w", err)
	}

	return result.Stats.NodesTotal, nil
}
