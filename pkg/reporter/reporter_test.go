package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/skeldoc/pkg/reporter"
	"github.com/yaklabco/skeldoc/pkg/runner"
	"github.com/yaklabco/skeldoc/pkg/skeleton"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "markdown", input: "markdown", want: reporter.FormatMarkdown},
		{name: "md alias", input: "md", want: reporter.FormatMarkdown},
		{name: "html", input: "html", want: reporter.FormatHTML},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	tests := []struct {
		format reporter.Format
		want   bool
	}{
		{reporter.FormatText, true},
		{reporter.FormatJSON, true},
		{reporter.FormatMarkdown, true},
		{reporter.FormatHTML, true},
		{reporter.Format("unknown"), false},
		{reporter.Format(""), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.format.IsValid(), "format %q", tt.format)
	}
}

// resultFor builds a runner.Result from in-memory sources keyed by path.
func resultFor(t *testing.T, sources map[string]string) *runner.Result {
	t.Helper()

	result := &runner.Result{Stats: runner.Stats{NodesByKind: map[string]int{}}}
	paths := make([]string, 0, len(sources))
	for p := range sources {
		paths = append(paths, p)
	}
	// Deterministic order, like discovery.
	sort.Strings(paths)

	for _, path := range paths {
		root, err := skeleton.Extract(sources[path])
		require.NoError(t, err)

		result.Files = append(result.Files, runner.FileOutcome{
			Path:     path,
			Language: "python",
			Root:     root,
		})
		result.Stats.FilesProcessed++
		_ = skeleton.Walk(root, func(n *skeleton.Node) error {
			if n.Kind != skeleton.DeclModule {
				result.Stats.NodesTotal++
				result.Stats.NodesByKind[n.Kind.String()]++
			}
			return nil
		})
	}
	result.Stats.FilesDiscovered = len(paths)
	return result
}

func TestTextReporter(t *testing.T) {
	result := resultFor(t, map[string]string{
		"app.py": "class A:\n    def m(self):\n        pass\n",
	})

	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Color = "never"

	r, err := reporter.New(opts)
	require.NoError(t, err)

	count, err := r.Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out := buf.String()
	assert.Contains(t, out, "app.py")
	assert.Contains(t, out, "└── A class")
	assert.Contains(t, out, "m function")
	assert.Contains(t, out, "2 declarations")
}

func TestTextReporter_FileError(t *testing.T) {
	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "bad.py", Error: errors.New("boom")},
		},
		Stats: runner.Stats{FilesDiscovered: 1, FilesErrored: 1},
	}

	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Color = "never"

	r := reporter.NewTextReporter(opts)
	_, err := r.Report(context.Background(), result)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "error: boom")
}

func TestJSONReporter(t *testing.T) {
	result := resultFor(t, map[string]string{
		"app.py": "def f():\n    \"\"\"Does f.\"\"\"\n    return 1\n",
	})

	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Format = reporter.FormatJSON

	r, err := reporter.New(opts)
	require.NoError(t, err)

	_, err = r.Report(context.Background(), result)
	require.NoError(t, err)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1", out.Version)
	require.Len(t, out.Files, 1)
	assert.Equal(t, "app.py", out.Files[0].Path)
	assert.Equal(t, "python", out.Files[0].Language)
	require.Len(t, out.Files[0].Nodes, 1)

	node := out.Files[0].Nodes[0]
	assert.Equal(t, "f", node.Name)
	assert.Equal(t, "function", node.Kind)
	assert.Equal(t, 1, node.Line)
	assert.Equal(t, "Does f.", node.Docstring)
	assert.Equal(t, 1, out.Summary.Declarations)
}

func TestMarkdownReporter(t *testing.T) {
	result := resultFor(t, map[string]string{
		"app.py": "\"\"\"Module doc.\"\"\"\n\nclass A:\n    \"\"\"A thing.\"\"\"\n    def m(self):\n        pass\n",
	})

	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Format = reporter.FormatMarkdown
	opts.Title = "Skeleton"

	r, err := reporter.New(opts)
	require.NoError(t, err)

	_, err = r.Report(context.Background(), result)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "# Skeleton")
	assert.Contains(t, out, "## `app.py`")
	assert.Contains(t, out, "Module doc.")
	assert.Contains(t, out, "- **A** *class*")
	assert.Contains(t, out, "  - **m** *function*")
	assert.Contains(t, out, "A thing.")
}

func TestHTMLReporter(t *testing.T) {
	result := resultFor(t, map[string]string{
		"app.py": "def f():\n    pass\n",
	})

	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Format = reporter.FormatHTML

	r, err := reporter.New(opts)
	require.NoError(t, err)

	_, err = r.Report(context.Background(), result)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<strong>f</strong>")
	assert.Contains(t, out, "</html>")
}

func TestNew_UnknownFormat(t *testing.T) {
	opts := reporter.DefaultOptions()
	opts.Format = reporter.Format("xml")

	_, err := reporter.New(opts)
	require.Error(t, err)
}

func TestMarkdownReporter_MaxDepth(t *testing.T) {
	result := resultFor(t, map[string]string{
		"app.py": "class A:\n    def m(self):\n        pass\n",
	})

	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Format = reporter.FormatMarkdown
	opts.MaxDepth = 1

	r, err := reporter.New(opts)
	require.NoError(t, err)

	_, err = r.Report(context.Background(), result)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "**A**")
	assert.NotContains(t, out, "**m**")
}
