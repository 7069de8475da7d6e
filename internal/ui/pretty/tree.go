package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/skeldoc/pkg/docstring"
	"github.com/yaklabco/skeldoc/pkg/skeleton"
)

// anonymousLabel is shown for nodes with no declaration name.
const anonymousLabel = "(block)"

// TreeOptions controls outline rendering.
type TreeOptions struct {
	// MaxDepth caps the rendered depth. 0 means unlimited; depth 1 is
	// the module's direct children.
	MaxDepth int

	// ShowDocstrings appends the docstring summary after each node.
	ShowDocstrings bool

	// ShowLineNumbers prefixes each node with its source line.
	ShowLineNumbers bool

	// Width is the terminal width used to trim docstring summaries.
	// 0 disables trimming.
	Width int
}

// KindStyle returns the style for a declaration kind.
func (s *Styles) KindStyle(kind skeleton.DeclKind) lipgloss.Style {
	switch kind {
	case skeleton.DeclFunction:
		return s.KindFunction
	case skeleton.DeclClass:
		return s.KindClass
	case skeleton.DeclAssignment:
		return s.KindAssignment
	default:
		return s.KindAnonymous
	}
}

// RenderTree writes an outline of the skeleton rooted at root. The
// module node itself is not printed; its children form the top level.
func (s *Styles) RenderTree(w io.Writer, root *skeleton.Node, opts TreeOptions) {
	for i, child := range root.Children {
		s.renderNode(w, child, "", i == len(root.Children)-1, 1, opts)
	}
}

func (s *Styles) renderNode(w io.Writer, n *skeleton.Node, prefix string, last bool, depth int, opts TreeOptions) {
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		return
	}

	branch := "├── "
	childPrefix := prefix + "│   "
	if last {
		branch = "└── "
		childPrefix = prefix + "    "
	}

	fmt.Fprintf(w, "%s%s\n", s.TreeLine.Render(prefix+branch), s.nodeLabel(n, prefix+branch, opts))

	for i, child := range n.Children {
		s.renderNode(w, child, childPrefix, i == len(n.Children)-1, depth+1, opts)
	}
}

// nodeLabel formats a single node: name, kind, line, and optional
// docstring summary.
func (s *Styles) nodeLabel(n *skeleton.Node, indent string, opts TreeOptions) string {
	name := n.Name
	if name == "" {
		name = anonymousLabel
	}

	var sb strings.Builder
	sb.WriteString(s.KindStyle(n.Kind).Render(name))
	sb.WriteString(s.Dim.Render(" " + n.Kind.String()))

	if opts.ShowLineNumbers {
		sb.WriteString(s.Location.Render(fmt.Sprintf(":%d", n.Lineno+1)))
	}

	if opts.ShowDocstrings {
		if doc, ok := docstring.FromNode(n); ok {
			summary := docstring.Summary(doc)
			if opts.Width > 0 {
				budget := opts.Width - len(indent) - len(name) - 16
				if budget < 8 {
					budget = 8
				}
				if len(summary) > budget {
					summary = summary[:budget] + "..."
				}
			}
			sb.WriteString("  ")
			sb.WriteString(s.Docstring.Render(summary))
		}
	}

	return sb.String()
}
