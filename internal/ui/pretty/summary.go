package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/skeldoc/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "14 declarations (6 functions, 2 classes, 6 assignments) in 3 files".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesProcessed == 0 && stats.FilesErrored == 0 {
		return s.Dim.Render(fmt.Sprintf("No source files found (%d discovered, %d skipped)",
			stats.FilesDiscovered, stats.FilesSkipped)) + "\n"
	}

	var parts []string

	declWord := "declarations"
	if stats.NodesTotal == 1 {
		declWord = "declaration"
	}

	var kindParts []string
	if n := stats.NodesByKind["function"]; n > 0 {
		kindParts = append(kindParts, s.KindFunction.Render(fmt.Sprintf("%d functions", n)))
	}
	if n := stats.NodesByKind["class"]; n > 0 {
		kindParts = append(kindParts, s.KindClass.Render(fmt.Sprintf("%d classes", n)))
	}
	if n := stats.NodesByKind["assignment"]; n > 0 {
		kindParts = append(kindParts, s.KindAssignment.Render(fmt.Sprintf("%d assignments", n)))
	}

	if len(kindParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)", stats.NodesTotal, declWord, strings.Join(kindParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.NodesTotal, declWord))
	}

	fileWord := wordFiles
	if stats.FilesProcessed == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesProcessed, fileWord))

	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d errored", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}
