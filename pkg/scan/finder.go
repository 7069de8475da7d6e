package scan

import (
	"fmt"
	"regexp"
)

// Finder locates the next occurrence of one atom kind at or after a given
// offset. It wraps a single regular expression with exactly one capturing
// group; the capture is the atom span. Finders are stateless and safe to
// call repeatedly with increasing offsets.
type Finder struct {
	kind Kind
	re   *regexp.Regexp

	// lineAnchored marks patterns using (?m)^. Searches restart from a
	// true line boundary so that a mid-line cursor is not mistaken for a
	// line start (regexp sees only the tail of the text).
	lineAnchored bool
}

// NewFinder compiles a Finder for the given kind. The pattern must contain
// exactly one capturing group.
func NewFinder(kind Kind, pattern string) (*Finder, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile %v pattern: %w", kind, err)
	}
	if re.NumSubexp() != 1 {
		return nil, fmt.Errorf("%v pattern has %d capturing groups, want 1", kind, re.NumSubexp())
	}
	return &Finder{kind: kind, re: re}, nil
}

// mustFinder is NewFinder for the built-in patterns.
func mustFinder(kind Kind, pattern string) *Finder {
	f, err := NewFinder(kind, pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// anchored marks the finder's pattern as line-anchored and returns it.
func (f *Finder) anchored() *Finder {
	f.lineAnchored = true
	return f
}

// Kind returns the atom kind this finder produces.
func (f *Finder) Kind() Kind {
	return f.kind
}

// Find returns the first atom at or after from, or ok=false when the
// pattern does not occur again. Empty captures are never returned.
func (f *Finder) Find(text string, from int) (Atom, bool) {
	if from < 0 {
		from = 0
	}
	for from <= len(text) {
		idx := f.re.FindStringSubmatchIndex(text[from:])
		if idx == nil || idx[2] < 0 {
			return Atom{}, false
		}
		start, end := from+idx[2], from+idx[3]

		if f.lineAnchored && from+idx[0] == from && !atLineStart(text, from) {
			// The ^ matched the start of the sliced tail, which is not a
			// real line boundary. Resume from the next line.
			from = nextLineStart(text, from)
			continue
		}
		if end <= start {
			return Atom{}, false
		}
		return Atom{Kind: f.kind, Start: start, End: end}, true
	}
	return Atom{}, false
}

func atLineStart(text string, offset int) bool {
	return offset == 0 || text[offset-1] == '\n'
}

func nextLineStart(text string, offset int) int {
	for offset < len(text) {
		if text[offset] == '\n' {
			return offset + 1
		}
		offset++
	}
	return len(text) + 1
}
