package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "ordinal-ignore-case", c.NameMatching)
	assert.False(t, c.Build.MultipleBuilds)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, FormatText, c.Log.Format)
	assert.Equal(t, Default(), c)
}

func TestParse_Values(t *testing.T) {
	yaml := `
name_matching: normalized
build:
  multiple_builds: true
log:
  level: debug
  format: json
`
	c, err := Parse([]byte(yaml))
	require.NoError(t, err)

	comparer, err := c.Comparer()
	require.NoError(t, err)
	assert.Equal(t, "normalized", comparer.Name())
	assert.True(t, c.Build.MultipleBuilds)

	level, err := c.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	var buf bytes.Buffer
	logger, err := c.Log.NewLogger(&buf)
	require.NoError(t, err)
	logger.Debug("hello")
	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown comparer", "name_matching: fuzzy", "name_matching"},
		{"unknown level", "log:\n  level: loud", "log.level"},
		{"unknown format", "log:\n  format: xml", "log.format"},
		{"unknown key", "colour: red", "failed to parse config YAML"},
		{"malformed", "build: [", "failed to parse config YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attribute-mapper.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name_matching: ordinal\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ordinal", c.NameMatching)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	c, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}
