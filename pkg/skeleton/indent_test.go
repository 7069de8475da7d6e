package skeleton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/skeldoc/pkg/scan"
	"github.com/yaklabco/skeldoc/pkg/source"
)

func analyze(t *testing.T, src string) ([]IndentEvent, error) {
	t.Helper()
	loc := source.NewLocator(src)
	atoms := scan.MatchBrackets(scan.NewScanner().Scan(src))
	return AnalyzeIndent(loc, scan.SuppressedLines(atoms, loc))
}

func TestAnalyzeIndent_Flat(t *testing.T) {
	events, err := analyze(t, "a = 1\nb = 2\nc = 3\n")
	require.NoError(t, err)

	want := []IndentEvent{{0, 0}, {1, 0}, {2, 0}}
	assert.Equal(t, want, events)
}

func TestAnalyzeIndent_NestAndClose(t *testing.T) {
	src := "def f():\n    x = 1\n    y = 2\nz = 3\n"
	events, err := analyze(t, src)
	require.NoError(t, err)

	want := []IndentEvent{{0, 0}, {1, 1}, {2, 0}, {3, -1}}
	assert.Equal(t, want, events)
}

func TestAnalyzeIndent_DeepDedent(t *testing.T) {
	src := "class A:\n    def m(self):\n        x = 1\nb = 2\n"
	events, err := analyze(t, src)
	require.NoError(t, err)

	want := []IndentEvent{{0, 0}, {1, 1}, {2, 1}, {3, -2}}
	assert.Equal(t, want, events)
}

func TestAnalyzeIndent_TabsAndSpacesConsistent(t *testing.T) {
	// A tab level nested inside a space level is fine as long as every
	// line repeats the established prefixes exactly.
	src := "def f():\n  if x:\n  \ty = 1\n  z = 2\n"
	events, err := analyze(t, src)
	require.NoError(t, err)

	want := []IndentEvent{{0, 0}, {1, 1}, {2, 1}, {3, -1}}
	assert.Equal(t, want, events)
}

func TestAnalyzeIndent_Inconsistency(t *testing.T) {
	// Line 2 diverges from the established two-space prefix with a tab,
	// and still has whitespace beyond the divergence point.
	src := "def f():\n  x = 1\n\ty = 2\n"
	_, err := analyze(t, src)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInconsistentIndent)

	var ierr *InconsistencyError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, 2, ierr.Line)
	assert.Contains(t, ierr.Text, "y = 2")
}

func TestAnalyzeIndent_PartialDedentIsInconsistent(t *testing.T) {
	// Dedenting to a level that was never established cannot be structured.
	src := "def f():\n    x = 1\n  y = 2\n"
	_, err := analyze(t, src)
	assert.ErrorIs(t, err, ErrInconsistentIndent)
}

func TestAnalyzeIndent_SuppressedLinesSkipped(t *testing.T) {
	src := "x = \"\"\"\n    indented inside string\n\"\"\"\ny = 2\n"
	events, err := analyze(t, src)
	require.NoError(t, err)

	// Lines 1 and 2 are inside the string; only lines 0 and 3 bear
	// indentation.
	want := []IndentEvent{{0, 0}, {3, 0}}
	assert.Equal(t, want, events)
}

func TestAnalyzeIndent_BlankLinesSkipped(t *testing.T) {
	src := "a = 1\n\n   \nb = 2"
	events, err := analyze(t, src)
	require.NoError(t, err)

	want := []IndentEvent{{0, 0}, {3, 0}}
	assert.Equal(t, want, events)
}
