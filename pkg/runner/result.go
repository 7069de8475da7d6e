package runner

import (
	"github.com/yaklabco/skeldoc/pkg/skeleton"
)

// FileOutcome is the per-file result of an extraction run.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Language is the detected language identifier.
	Language string

	// Root is the extracted skeleton. Nil when the file was skipped
	// or errored.
	Root *skeleton.Node

	// Skipped is true when the file was discovered but turned out not
	// to be indentation-delimited source.
	Skipped bool

	// Error is set if the file could not be processed. Indentation
	// inconsistencies surface here as *skeleton.InconsistencyError.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully extracted.
	FilesProcessed int

	// FilesSkipped is the number of files skipped by language detection.
	FilesSkipped int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// NodesTotal is the total number of nodes across all skeletons,
	// excluding module roots.
	NodesTotal int

	// NodesByKind maps declaration kinds to counts.
	NodesByKind map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered
	// deterministically by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasErrors reports whether any file failed to process.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		NodesByKind: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Skipped {
		r.Stats.FilesSkipped++
		return
	}
	if outcome.Root == nil {
		return
	}

	r.Stats.FilesProcessed++

	_ = skeleton.Walk(outcome.Root, func(n *skeleton.Node) error {
		if n.Kind == skeleton.DeclModule {
			return nil
		}
		r.Stats.NodesTotal++
		r.Stats.NodesByKind[n.Kind.String()]++
		return nil
	})
}
