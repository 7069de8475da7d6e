// Package docstring extracts and renders documentation strings from
// skeleton nodes.
//
// A docstring is the first triple-quoted string literal in a node's
// body, separated from the declaration header only by whitespace and
// comments. Extraction is purely textual and tolerates source that a
// real language parser would reject.
package docstring

import (
	"regexp"
	"strings"

	"github.com/yaklabco/skeldoc/pkg/scan"
	"github.com/yaklabco/skeldoc/pkg/skeleton"
)

// preambleRe matches the whitespace and comments allowed between a
// declaration header and its docstring.
var preambleRe = regexp.MustCompile(`^(?:[ \t\r\n]|#[^\n]*)*$`)

// FromNode returns the docstring of n with quotes stripped and common
// indentation removed. The second return is false when the node has no
// docstring.
func FromNode(n *skeleton.Node) (string, bool) {
	body := n.Source
	from := 0

	// For named declarations the docstring follows the header line.
	if n.Kind != skeleton.DeclModule {
		nl := strings.IndexByte(body, '\n')
		if nl < 0 {
			return "", false
		}
		from = nl + 1
	}

	atoms := scan.NewScanner().Scan(body)
	for _, a := range atoms {
		if a.Kind != scan.AtomString {
			continue
		}
		if a.Start < from {
			continue
		}
		text := a.Text(body)
		if !strings.HasPrefix(text, `"""`) && !strings.HasPrefix(text, "'''") {
			// Single-quoted strings are ordinary expressions.
			return "", false
		}
		if !preambleRe.MatchString(body[from:a.Start]) {
			return "", false
		}
		return Trim(text[3 : len(text)-3]), true
	}
	return "", false
}

// Trim normalizes a raw docstring body: the first line keeps only its
// trailing content, later lines lose the indentation they share, and
// leading and trailing blank lines are dropped.
func Trim(raw string) string {
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 {
		return ""
	}

	first := strings.TrimSpace(lines[0])

	// Common indentation is computed over the continuation lines only;
	// the first line sits right after the opening quotes.
	indent := -1
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		n := len(line) - len(trimmed)
		if indent < 0 || n < indent {
			indent = n
		}
	}

	out := []string{first}
	for _, line := range lines[1:] {
		if indent > 0 && len(line) >= indent {
			line = line[indent:]
		}
		out = append(out, strings.TrimRight(line, " \t\r"))
	}

	// Drop blank lines at both ends.
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

// Summary returns the first line of the docstring, the conventional
// one-sentence description.
func Summary(doc string) string {
	if i := strings.IndexByte(doc, '\n'); i >= 0 {
		return strings.TrimSpace(doc[:i])
	}
	return strings.TrimSpace(doc)
}
