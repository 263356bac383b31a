package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omrstudio/notagraph/export"
)

// execute runs the CLI with the given arguments, capturing stdout and
// stderr in one buffer.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// writeConfig writes a config file into a temp dir and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "notagraph version "+Version)
}

func TestLoadConfigExplicitFile(t *testing.T) {
	cfgPath := writeConfig(t, "output:\n  format: turtle\n")

	cfg, err := loadConfig(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "turtle", cfg.Output.Format)
}

func TestLoadConfigExplicitFileInvalid(t *testing.T) {
	cfgPath := writeConfig(t, "output:\n  format: xml\n")

	_, err := loadConfig(cfgPath)
	require.Error(t, err)
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestConfigShowCommand(t *testing.T) {
	cfgPath := writeConfig(t, "output:\n  format: turtle\nlint:\n  ignore:\n    - unclassified\n")

	out, err := execute(t, "config", "show", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "format: turtle")
	assert.Contains(t, out, "- unclassified")
}
