package skeleton

import "regexp"

// DeclKind classifies a declaration node.
type DeclKind uint8

const (
	DeclNone DeclKind = iota
	DeclModule
	DeclFunction
	DeclClass
	DeclAssignment
)

// String returns a human-readable name for the kind.
func (k DeclKind) String() string {
	switch k {
	case DeclModule:
		return "module"
	case DeclFunction:
		return "function"
	case DeclClass:
		return "class"
	case DeclAssignment:
		return "assignment"
	default:
		return "none"
	}
}

// Declaration is the result of classifying a single source line.
type Declaration struct {
	Kind DeclKind
	Name string
}

// declPattern recognizes one declaration form. Group 1 captures the
// declared identifier.
type declPattern struct {
	kind DeclKind
	re   *regexp.Regexp
}

// Classifier recognizes declaration lines by pattern matching. Candidate
// patterns are disambiguated with the same first-then-longest rule the
// scanner uses: the earliest-starting match wins, ties broken by the
// longest whole match.
type Classifier struct {
	patterns []declPattern
}

// NewClassifier returns a classifier for Python-style declarations:
// functions (def / async def), classes, and simple possibly-annotated
// assignments.
func NewClassifier() *Classifier {
	return &Classifier{
		patterns: []declPattern{
			{DeclFunction, regexp.MustCompile(`^[ \t]*(?:async[ \t]+)?def[ \t]+([A-Za-z_][A-Za-z0-9_]*)[ \t]*\(`)},
			{DeclClass, regexp.MustCompile(`^[ \t]*class[ \t]+([A-Za-z_][A-Za-z0-9_]*)`)},
			{DeclAssignment, regexp.MustCompile(`^[ \t]*([A-Za-z_][A-Za-z0-9_]*)[ \t]*(?::[^=\n]+)?=(?:[^=]|$)`)},
		},
	}
}

// Classify recognizes the declaration on a single line, or returns a
// DeclNone result when no pattern matches.
func (c *Classifier) Classify(line string) Declaration {
	best := Declaration{Kind: DeclNone}
	bestStart, bestEnd := -1, -1

	for _, p := range c.patterns {
		idx := p.re.FindStringSubmatchIndex(line)
		if idx == nil {
			continue
		}
		start, end := idx[0], idx[1]
		if bestStart < 0 || start < bestStart || (start == bestStart && end > bestEnd) {
			best = Declaration{Kind: p.kind, Name: line[idx[2]:idx[3]]}
			bestStart, bestEnd = start, end
		}
	}

	return best
}
