// Package source provides positional bookkeeping over an immutable text
// buffer: a line table and bidirectional offset ↔ (line, column) mapping.
package source

import "sort"

// LineCol is a 0-based line and column pair. Column counts bytes, not runes.
type LineCol struct {
	Line   int
	Column int
}

// Locator maps byte offsets to line/column positions and back.
// It is constructed once per text buffer and is immutable afterward.
type Locator struct {
	text string

	// starts[i] is the byte offset of the first character of line i.
	// starts[len(starts)-1] == len(text) acts as a sentinel so that
	// starts[i] <= offset < starts[i+1] holds for every line i.
	starts []int
}

// NewLocator builds a Locator for the given text. Lines are split on '\n';
// the newline byte belongs to the line it terminates.
func NewLocator(text string) *Locator {
	starts := make([]int, 1, 16)
	starts[0] = 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	starts = append(starts, len(text))
	return &Locator{text: text, starts: starts}
}

// Text returns the text buffer this locator was built from.
func (l *Locator) Text() string {
	return l.text
}

// LineCount returns the number of lines. A trailing newline does not open
// a new counted line unless text follows it.
func (l *Locator) LineCount() int {
	n := len(l.starts) - 1
	if n > 1 && l.starts[n-1] == l.starts[n] {
		// Final sentinel coincides with the start of an empty last line.
		n--
	}
	return n
}

// LineStart returns the byte offset of the first character of the given
// 0-based line, clamped to the buffer bounds for out-of-range lines.
func (l *Locator) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(l.starts)-1 {
		return len(l.text)
	}
	return l.starts[line]
}

// Line returns the content of the given 0-based line, including its
// trailing newline if present. Out-of-range lines yield "".
func (l *Locator) Line(line int) string {
	if line < 0 || line >= len(l.starts)-1 {
		return ""
	}
	return l.text[l.starts[line]:l.starts[line+1]]
}

// ToLineCol converts a byte offset to a 0-based line/column pair.
// Out-of-range offsets clamp to the nearest buffer boundary rather than
// failing: the pipeline is best-effort on malformed input.
func (l *Locator) ToLineCol(offset int) LineCol {
	if offset < 0 {
		return LineCol{}
	}
	if offset > len(l.text) {
		offset = len(l.text)
	}

	// Find the first line start strictly past offset; the line containing
	// offset is the one before it.
	idx := sort.Search(len(l.starts), func(i int) bool {
		return l.starts[i] > offset
	})
	line := idx - 1
	if line < 0 {
		line = 0
	}
	if line >= len(l.starts)-1 {
		line = len(l.starts) - 2
	}

	return LineCol{Line: line, Column: offset - l.starts[line]}
}

// ToOffset converts a 0-based line/column pair back to a byte offset,
// clamping out-of-range positions to the buffer bounds.
func (l *Locator) ToOffset(line, column int) int {
	if line < 0 {
		return 0
	}
	if line >= len(l.starts)-1 {
		return len(l.text)
	}

	offset := l.starts[line] + column
	if column < 0 {
		offset = l.starts[line]
	}
	if offset > len(l.text) {
		offset = len(l.text)
	}
	return offset
}
