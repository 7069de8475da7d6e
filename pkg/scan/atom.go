// Package scan performs regex-level lexical analysis of indentation-delimited
// source text. It identifies the atoms whose interiors must not be misread as
// indentation-significant content: strings, comment paragraphs, explicit line
// continuations, blank lines, and bracketed expressions spanning lines.
package scan

// Kind classifies an atom in the source text.
type Kind uint8

// Atom kinds. The Matched* kinds are produced by MatchBrackets, never by the
// Scanner itself.
const (
	AtomOpenParen Kind = iota
	AtomCloseParen
	AtomOpenBracket
	AtomCloseBracket
	AtomOpenBrace
	AtomCloseBrace
	AtomBlankline
	AtomComment
	AtomLineCont
	AtomString
	AtomMatchedParen
	AtomMatchedBracket
	AtomMatchedBrace
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case AtomOpenParen:
		return "open-paren"
	case AtomCloseParen:
		return "close-paren"
	case AtomOpenBracket:
		return "open-bracket"
	case AtomCloseBracket:
		return "close-bracket"
	case AtomOpenBrace:
		return "open-brace"
	case AtomCloseBrace:
		return "close-brace"
	case AtomBlankline:
		return "blankline"
	case AtomComment:
		return "comment"
	case AtomLineCont:
		return "line-continuation"
	case AtomString:
		return "string"
	case AtomMatchedParen:
		return "matched-paren"
	case AtomMatchedBracket:
		return "matched-bracket"
	case AtomMatchedBrace:
		return "matched-brace"
	default:
		return "unknown"
	}
}

// IsOpen reports whether the kind is an opening bracket atom.
func (k Kind) IsOpen() bool {
	return k == AtomOpenParen || k == AtomOpenBracket || k == AtomOpenBrace
}

// IsClose reports whether the kind is a closing bracket atom.
func (k Kind) IsClose() bool {
	return k == AtomCloseParen || k == AtomCloseBracket || k == AtomCloseBrace
}

// IsMatched reports whether the kind is a merged bracket pair.
func (k Kind) IsMatched() bool {
	return k == AtomMatchedParen || k == AtomMatchedBracket || k == AtomMatchedBrace
}

// Atom is a classified span [Start, End) of the source text.
// Atoms produced by the Scanner are pairwise non-overlapping; Matched* atoms
// span every atom they subsume.
type Atom struct {
	Kind  Kind
	Start int
	End   int
}

// Text returns the source text of the atom, or "" for out-of-range spans.
func (a Atom) Text(src string) string {
	if a.Start < 0 || a.End > len(src) || a.Start > a.End {
		return ""
	}
	return src[a.Start:a.End]
}

// Len returns the atom's length in bytes.
func (a Atom) Len() int {
	return a.End - a.Start
}
