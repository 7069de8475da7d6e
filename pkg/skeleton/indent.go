package skeleton

import (
	"strings"

	"github.com/yaklabco/skeldoc/pkg/scan"
	"github.com/yaklabco/skeldoc/pkg/source"
)

// IndentEvent records the change in indentation stack depth at a line,
// relative to the previous indentation-bearing line. Zero means "same
// block", +1 opens one nested level, a negative delta closes that many
// levels.
type IndentEvent struct {
	Line  int
	Delta int
}

// AnalyzeIndent walks every indentation-bearing line in order, maintaining
// a stack of whitespace prefixes observed so far, and emits one event per
// line. Lines in the suppression set and whitespace-only lines are skipped.
//
// A line whose leading whitespace diverges from the established prefixes
// partway through — while still carrying extra non-matching whitespace —
// yields an *InconsistencyError.
func AnalyzeIndent(loc *source.Locator, suppressed scan.LineSet) ([]IndentEvent, error) {
	var events []IndentEvent
	var stack []string

	for line := 0; line < loc.LineCount(); line++ {
		if suppressed.Contains(line) {
			continue
		}
		text := loc.Line(line)
		lead := leadingWhitespace(text)
		if isBlank(text) {
			// Whitespace-only lines carry no block structure even when the
			// scanner did not flag them (e.g. a trailing line without a
			// newline).
			continue
		}

		// Match the established prefixes against the line's leading
		// whitespace, prefix by prefix.
		matched := 0
		rest := lead
		for matched < len(stack) && strings.HasPrefix(rest, stack[matched]) {
			rest = rest[len(stack[matched]):]
			matched++
		}

		switch {
		case matched == len(stack) && rest != "":
			// A new nested level opens.
			stack = append(stack, rest)
			events = append(events, IndentEvent{Line: line, Delta: +1})

		case rest == "":
			// The line sits at an established level; close the deeper ones.
			events = append(events, IndentEvent{Line: line, Delta: matched - len(stack)})
			stack = stack[:matched]

		default:
			return nil, &InconsistencyError{Line: line, Text: text}
		}
	}

	return events, nil
}

func leadingWhitespace(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return line[:i]
		}
	}
	return line
}

func isBlank(line string) bool {
	return strings.TrimRight(line, " \t\r\n") == ""
}
