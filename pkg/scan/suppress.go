package scan

import "github.com/yaklabco/skeldoc/pkg/source"

// LineSet is a set of physical line numbers whose leading whitespace must
// be ignored for indentation purposes.
type LineSet map[int]struct{}

// Contains reports whether the line is suppressed.
func (s LineSet) Contains(line int) bool {
	_, ok := s[line]
	return ok
}

func (s LineSet) add(line int) {
	s[line] = struct{}{}
}

func (s LineSet) addRange(first, last int) {
	for line := first; line <= last; line++ {
		s.add(line)
	}
}

// SuppressedLines derives the suppression set from a merged atom stream.
//
// The first physical line of a multi-line string or bracketed expression is
// never suppressed: its leading indentation is still meaningful. The same
// holds for a trailing comment, whose line carries real code before the
// comment marker.
func SuppressedLines(atoms []Atom, loc *source.Locator) LineSet {
	set := make(LineSet)

	for _, a := range atoms {
		if a.Len() <= 0 {
			continue
		}
		startLC := loc.ToLineCol(a.Start)
		endLine := loc.ToLineCol(a.End - 1).Line

		switch {
		case a.Kind == AtomBlankline:
			set.add(endLine)

		case a.Kind == AtomComment:
			first := startLC.Line
			if startLC.Column != 0 {
				first++
			}
			set.addRange(first, endLine)

		case a.Kind == AtomLineCont:
			set.add(startLC.Line + 1)

		case a.Kind == AtomString || a.Kind.IsMatched():
			set.addRange(startLC.Line+1, endLine)
		}
	}

	return set
}
