package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/skeldoc/pkg/config"
)

func TestYAMLRoundTrip(t *testing.T) {
	off := false
	original := &config.Config{
		Extensions: []string{"pyx", "pxd"},
		Ignore:     []string{"vendor/**"},
		Docstrings: &off,
		MaxDepth:   4,
	}

	data, err := original.ToYAML()
	require.NoError(t, err)

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, original.Extensions, parsed.Extensions)
	assert.Equal(t, original.Ignore, parsed.Ignore)
	require.NotNil(t, parsed.Docstrings)
	assert.False(t, *parsed.Docstrings)
	assert.Equal(t, 4, parsed.MaxDepth)
}

func TestToYAML_NilConfig(t *testing.T) {
	var c *config.Config
	data, err := c.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestToYAMLWithHeader(t *testing.T) {
	c := config.NewConfig()

	data, err := c.ToYAMLWithHeader("# skeldoc configuration")
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, byte('#'), data[0])
	assert.Contains(t, string(data), "ignore:")
}

func TestFromYAML_Invalid(t *testing.T) {
	_, err := config.FromYAML([]byte("ignore: [unclosed"))
	assert.Error(t, err)
}

func TestFromYAML_AbsentDocstrings(t *testing.T) {
	cfg, err := config.FromYAML([]byte("max_depth: 1\n"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Docstrings)
	assert.True(t, cfg.IncludeDocstrings())
}

func TestOutputFormatIsValid(t *testing.T) {
	valid := []config.OutputFormat{
		config.FormatText,
		config.FormatJSON,
		config.FormatMarkdown,
		config.FormatHTML,
	}
	for _, f := range valid {
		assert.True(t, f.IsValid(), "format %q", f)
	}

	assert.False(t, config.OutputFormat("xml").IsValid())
	assert.False(t, config.OutputFormat("").IsValid())
}
