package scan

import (
	"testing"

	"github.com/yaklabco/skeldoc/pkg/source"
)

func suppressedFor(src string) LineSet {
	loc := source.NewLocator(src)
	atoms := MatchBrackets(NewScanner().Scan(src))
	return SuppressedLines(atoms, loc)
}

func checkLines(t *testing.T, set LineSet, total int, want map[int]bool) {
	t.Helper()
	for line := 0; line < total; line++ {
		if got := set.Contains(line); got != want[line] {
			t.Errorf("line %d suppressed = %v, want %v", line, got, want[line])
		}
	}
}

func TestSuppressedLines_Blankline(t *testing.T) {
	src := "x = 1\n\ny = 2\n"
	checkLines(t, suppressedFor(src), 3, map[int]bool{1: true})
}

func TestSuppressedLines_MultilineString(t *testing.T) {
	// Lines after the opening quote are suppressed; the opening line's own
	// indentation still participates.
	src := "s = \"\"\"first\nsecond\n# third\nfourth\"\"\"\nz = 1\n"
	checkLines(t, suppressedFor(src), 5, map[int]bool{1: true, 2: true, 3: true})
}

func TestSuppressedLines_MultilineBrackets(t *testing.T) {
	src := "x = [1,\n     2,\n     3]\ny = 4\n"
	checkLines(t, suppressedFor(src), 4, map[int]bool{1: true, 2: true})
}

func TestSuppressedLines_Continuation(t *testing.T) {
	src := "x = 1 + \\\n    2\ny = 3\n"
	checkLines(t, suppressedFor(src), 3, map[int]bool{1: true})
}

func TestSuppressedLines_WholeLineComment(t *testing.T) {
	src := "# a\n# b\nx = 1\n"
	checkLines(t, suppressedFor(src), 3, map[int]bool{0: true, 1: true})
}

func TestSuppressedLines_TrailingComment(t *testing.T) {
	// The code line before the comment marker keeps its indentation.
	src := "x = 1  # note\ny = 2\n"
	checkLines(t, suppressedFor(src), 2, map[int]bool{})
}

func TestSuppressedLines_IndentedComment(t *testing.T) {
	src := "def f():\n    # body note\n    pass\n"
	checkLines(t, suppressedFor(src), 3, map[int]bool{1: true})
}
