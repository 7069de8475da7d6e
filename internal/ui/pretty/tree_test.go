package pretty

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/skeldoc/pkg/skeleton"
)

func renderTree(t *testing.T, src string, opts TreeOptions) string {
	t.Helper()
	root, err := skeleton.Extract(src)
	require.NoError(t, err)

	var sb strings.Builder
	NewStyles(false).RenderTree(&sb, root, opts)
	return sb.String()
}

func TestRenderTree_Nesting(t *testing.T) {
	src := "class A:\n" +
		"    def m(self):\n" +
		"        pass\n" +
		"    def n(self):\n" +
		"        pass\n" +
		"b = 1\n"

	out := renderTree(t, src, TreeOptions{})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "├── A class", lines[0])
	assert.Equal(t, "│   ├── m function", lines[1])
	assert.Equal(t, "│   └── n function", lines[2])
	assert.Equal(t, "└── b assignment", lines[3])
}

func TestRenderTree_MaxDepth(t *testing.T) {
	src := "class A:\n    def m(self):\n        x = 1\n"

	out := renderTree(t, src, TreeOptions{MaxDepth: 1})

	assert.Contains(t, out, "A class")
	assert.NotContains(t, out, "m function")
}

func TestRenderTree_LineNumbers(t *testing.T) {
	src := "x = 1\n\ndef f():\n    pass\n"

	out := renderTree(t, src, TreeOptions{ShowLineNumbers: true})

	assert.Contains(t, out, "x assignment:1")
	assert.Contains(t, out, "f function:3")
}

func TestRenderTree_Docstrings(t *testing.T) {
	src := "def f():\n    \"\"\"Frobnicates the widget.\"\"\"\n    pass\n"

	out := renderTree(t, src, TreeOptions{ShowDocstrings: true})

	assert.Contains(t, out, "Frobnicates the widget.")
}

func TestRenderTree_AnonymousNode(t *testing.T) {
	src := "def f():\n    pass\nprint(1)\n"

	out := renderTree(t, src, TreeOptions{})

	assert.Contains(t, out, "(block)")
}

func TestRenderTree_Empty(t *testing.T) {
	out := renderTree(t, "", TreeOptions{})
	assert.Empty(t, out)
}

func TestIsColorEnabled(t *testing.T) {
	var sb strings.Builder

	assert.True(t, IsColorEnabled("always", &sb))
	assert.False(t, IsColorEnabled("never", &sb))
	// A strings.Builder is not a TTY.
	assert.False(t, IsColorEnabled("auto", &sb))
}
