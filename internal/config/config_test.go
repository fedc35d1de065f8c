package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bearpig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Verbose)
	assert.True(t, cfg.Color)
	assert.Equal(t, "dot", cfg.GraphFormat)
	assert.Equal(t, "main", cfg.Package)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
verbose: true
color: false
graph_format: svg
graph_output: out/nfa.svg
package: patterns
codegen_output: patterns_gen.go
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Verbose:       true,
		Color:         false,
		GraphFormat:   "svg",
		GraphOutput:   "out/nfa.svg",
		Package:       "patterns",
		CodegenOutput: "patterns_gen.go",
	}, cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "package: patterns\n"))
	require.NoError(t, err)
	assert.Equal(t, "patterns", cfg.Package)
	assert.Equal(t, "dot", cfg.GraphFormat)
	assert.True(t, cfg.Color)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("BEARPIG_GRAPH_FORMAT", "png")
	t.Setenv("BEARPIG_VERBOSE", "true")

	cfg, err := Load(writeConfig(t, "graph_format: svg\n"))
	require.NoError(t, err)
	assert.Equal(t, "png", cfg.GraphFormat)
	assert.True(t, cfg.Verbose)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSearchPathsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadInvalidFormat(t *testing.T) {
	_, err := Load(writeConfig(t, "graph_format: gif\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "graph_format")
}
