package docstring

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts docstring text, treated as Markdown, into HTML.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Markdown renderer with GitHub-flavored
// extensions enabled. Docstrings in the wild lean on tables and
// autolinks far more than raw HTML.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
			),
		),
	}
}

// HTML renders doc as an HTML fragment.
func (r *Renderer) HTML(doc string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(doc), &buf); err != nil {
		return "", fmt.Errorf("render docstring: %w", err)
	}
	return buf.String(), nil
}
