package scan

// Built-in atom patterns. Strings tolerate escaped quotes and, inside
// triple-quoted literals, up to two adjacent non-terminating quote
// characters. Comment paragraphs merge consecutive single-line comments.
const (
	patternOpenParen    = `(\()`
	patternCloseParen   = `(\))`
	patternOpenBracket  = `(\[)`
	patternCloseBracket = `(\])`
	patternOpenBrace    = `({)`
	patternCloseBrace   = `(})`

	patternBlankline = `(?m)(^[ \t]*\r?\n)`
	patternComment   = `((?:[ \t]*#[^\n]*(?:\n|$))+)`
	patternLineCont  = `(\\\r?\n)`

	patternTripleDouble = `(?s)("""(?:\\.|"{1,2}[^"\\]|[^"\\])*?""")`
	patternTripleSingle = `(?s)('''(?:\\.|'{1,2}[^'\\]|[^'\\])*?''')`
	patternSingleDouble = `(?s)("(?:\\.|[^"\\\n])*")`
	patternSingleSingle = `(?s)('(?:\\.|[^'\\\n])*')`
)

// DefaultFinders returns the finder set for Python-style source, in
// registration order. Order never affects the result: the Scanner's
// first-then-longest rule is order-independent.
func DefaultFinders() []*Finder {
	return []*Finder{
		mustFinder(AtomString, patternTripleDouble),
		mustFinder(AtomString, patternTripleSingle),
		mustFinder(AtomString, patternSingleDouble),
		mustFinder(AtomString, patternSingleSingle),
		mustFinder(AtomComment, patternComment),
		mustFinder(AtomBlankline, patternBlankline).anchored(),
		mustFinder(AtomLineCont, patternLineCont),
		mustFinder(AtomOpenParen, patternOpenParen),
		mustFinder(AtomCloseParen, patternCloseParen),
		mustFinder(AtomOpenBracket, patternOpenBracket),
		mustFinder(AtomCloseBracket, patternCloseBracket),
		mustFinder(AtomOpenBrace, patternOpenBrace),
		mustFinder(AtomCloseBrace, patternCloseBrace),
	}
}

// Scanner runs an ordered set of finders over the text and produces a flat,
// non-overlapping atom sequence. Finders are injected at construction; the
// Scanner holds no process-wide state.
type Scanner struct {
	finders []*Finder
}

// NewScanner creates a Scanner with the given finders. With no arguments it
// uses DefaultFinders.
func NewScanner(finders ...*Finder) *Scanner {
	if len(finders) == 0 {
		finders = DefaultFinders()
	}
	return &Scanner{finders: finders}
}

// cached holds a finder's most recent match so each finder is re-run only
// once its cached match falls behind the cursor.
type cached struct {
	atom  Atom
	ok    bool
	valid bool
}

// Scan tokenizes text into atoms. At each step every finder's next match is
// considered and the winner is chosen by (start ascending, end descending):
// the first, then longest rule. This keeps the scanner from ever slicing
// into the interior of a string or comment — the widest, earliest-starting
// atom always wins.
func (s *Scanner) Scan(text string) []Atom {
	var atoms []Atom
	cache := make([]cached, len(s.finders))
	cursor := 0

	for cursor < len(text) {
		best := Atom{}
		found := false

		for i, f := range s.finders {
			c := &cache[i]
			if !c.valid || (c.ok && c.atom.Start < cursor) {
				c.atom, c.ok = f.Find(text, cursor)
				c.valid = true
			}
			if !c.ok {
				continue
			}
			a := c.atom
			if !found || a.Start < best.Start || (a.Start == best.Start && a.End > best.End) {
				best = a
				found = true
			}
		}

		if !found || best.End <= cursor {
			break
		}
		atoms = append(atoms, best)
		cursor = best.End
	}

	return atoms
}
