package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/skeldoc/pkg/docstring"
	"github.com/yaklabco/skeldoc/pkg/runner"
	"github.com/yaklabco/skeldoc/pkg/skeleton"
)

// jsonSchemaVersion identifies the JSON output shape.
const jsonSchemaVersion = "1"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string      `json:"version"`
	Files   []JSONFile  `json:"files"`
	Summary JSONSummary `json:"summary"`
}

// JSONFile represents a single file's skeleton.
type JSONFile struct {
	Path     string      `json:"path"`
	Language string      `json:"language,omitempty"`
	Skipped  bool        `json:"skipped,omitempty"`
	Error    string      `json:"error,omitempty"`
	Nodes    []*JSONNode `json:"nodes,omitempty"`
}

// JSONNode is a declaration in the skeleton tree.
type JSONNode struct {
	Name      string      `json:"name,omitempty"`
	Kind      string      `json:"kind"`
	Line      int         `json:"line"`
	Docstring string      `json:"docstring,omitempty"`
	Children  []*JSONNode `json:"children,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int            `json:"filesDiscovered"`
	FilesProcessed  int            `json:"filesProcessed"`
	FilesSkipped    int            `json:"filesSkipped"`
	FilesErrored    int            `json:"filesErrored"`
	Declarations    int            `json:"declarations"`
	ByKind          map[string]int `json:"byKind,omitempty"`
}

// JSONReporter emits machine-readable output.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	out := JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFile, 0, len(result.Files)),
	}

	for _, file := range result.Files {
		jf := JSONFile{
			Path:     displayPath(file.Path, r.opts.WorkingDir),
			Language: file.Language,
			Skipped:  file.Skipped,
		}
		if file.Error != nil {
			jf.Error = file.Error.Error()
		}
		if file.Root != nil {
			jf.Nodes = r.convertChildren(file.Root)
		}
		out.Files = append(out.Files, jf)
	}

	out.Summary = JSONSummary{
		FilesDiscovered: result.Stats.FilesDiscovered,
		FilesProcessed:  result.Stats.FilesProcessed,
		FilesSkipped:    result.Stats.FilesSkipped,
		FilesErrored:    result.Stats.FilesErrored,
		Declarations:    result.Stats.NodesTotal,
		ByKind:          result.Stats.NodesByKind,
	}

	enc := json.NewEncoder(r.bw)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(out); encErr != nil {
		return 0, fmt.Errorf("encode json: %w", encErr)
	}

	return result.Stats.NodesTotal, nil
}

func (r *JSONReporter) convertChildren(n *skeleton.Node) []*JSONNode {
	if len(n.Children) == 0 {
		return nil
	}
	out := make([]*JSONNode, 0, len(n.Children))
	for _, child := range n.Children {
		out = append(out, r.convert(child))
	}
	return out
}

func (r *JSONReporter) convert(n *skeleton.Node) *JSONNode {
	jn := &JSONNode{
		Name:     n.Name,
		Kind:     n.Kind.String(),
		Line:     n.Lineno + 1,
		Children: r.convertChildren(n),
	}
	if r.opts.ShowDocstrings {
		if doc, ok := docstring.FromNode(n); ok {
			jn.Docstring = doc
		}
	}
	return jn
}
