package skeleton

import (
	"github.com/yaklabco/skeldoc/pkg/scan"
	"github.com/yaklabco/skeldoc/pkg/source"
)

// Extractor runs the full structure-extraction pipeline: scan atoms, merge
// bracket pairs, derive the suppression set, analyze indentation, and fold
// the event stream into a tree. Scanner and classifier are injected at
// construction; an Extractor holds no mutable state and is safe for
// concurrent use.
type Extractor struct {
	scanner  *scan.Scanner
	classify *Classifier
}

// NewExtractor creates an Extractor with the default scanner and
// classifier.
func NewExtractor() *Extractor {
	return &Extractor{
		scanner:  scan.NewScanner(),
		classify: NewClassifier(),
	}
}

// NewExtractorWith creates an Extractor with a custom scanner and
// classifier, for superset dialects with extra atoms or declaration forms.
func NewExtractorWith(scanner *scan.Scanner, classify *Classifier) *Extractor {
	if scanner == nil {
		scanner = scan.NewScanner()
	}
	if classify == nil {
		classify = NewClassifier()
	}
	return &Extractor{scanner: scanner, classify: classify}
}

// Extract builds the declaration tree for the given source text.
//
// The only failure mode is an *InconsistencyError from the indentation
// analyzer; unmatched brackets and unrecognized declarations degrade into a
// best-effort tree instead of failing.
func (e *Extractor) Extract(src string) (*Node, error) {
	loc := source.NewLocator(src)

	atoms := e.scanner.Scan(src)
	merged := scan.MatchBrackets(atoms)
	suppressed := scan.SuppressedLines(merged, loc)

	events, err := AnalyzeIndent(loc, suppressed)
	if err != nil {
		return nil, err
	}

	return BuildTree(loc, events, e.classify), nil
}

// Extract is the package-level entry point using the default pipeline.
func Extract(src string) (*Node, error) {
	return NewExtractor().Extract(src)
}
