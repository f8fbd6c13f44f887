package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insomnimus/mdtree/config"
	"github.com/insomnimus/mdtree/logging"
)

func writeInput(t *testing.T, dir, text string) string {
	t.Helper()
	path := filepath.Join(dir, "in.md")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestRunWritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	c := &cli{
		Input:    writeInput(t, dir, "# Hi\n\ntext"),
		Output:   filepath.Join(dir, "out.html"),
		Fragment: true,
	}
	var stdout, stderr bytes.Buffer
	require.NoError(t, c.run(c.config(), logging.NoOp(), strings.NewReader(""), &stdout, &stderr))

	got, err := os.ReadFile(c.Output)
	require.NoError(t, err)
	assert.Equal(t, "<div><h1>Hi</h1><p>text</p></div>", strings.TrimSpace(string(got)))
	assert.Empty(t, stdout.String())
}

func TestRunFailureLeavesNoOutputFile(t *testing.T) {
	dir := t.TempDir()
	c := &cli{
		Input:  writeInput(t, dir, "fine\n\nnot `fine"),
		Output: filepath.Join(dir, "out.html"),
	}
	var stdout, stderr bytes.Buffer
	err := c.run(c.config(), logging.NoOp(), strings.NewReader(""), &stdout, &stderr)
	require.Error(t, err)

	_, statErr := os.Stat(c.Output)
	assert.True(t, os.IsNotExist(statErr), "output file should not exist, got %v", statErr)
	assert.Empty(t, stdout.String())
}

func TestRunStdio(t *testing.T) {
	c := &cli{Fragment: true}
	var stdout, stderr bytes.Buffer
	require.NoError(t, c.run(c.config(), logging.NoOp(), strings.NewReader("**hi**"), &stdout, &stderr))
	assert.Contains(t, stdout.String(), "<p><b>hi</b></p>")
}

func TestCLIConfig(t *testing.T) {
	c := &cli{Fragment: true, NoFrontMatter: true, LogLevel: "debug", LogFormat: "json"}
	cfg := c.config()
	assert.False(t, cfg.Standalone)
	assert.False(t, cfg.FrontMatter)
	assert.Equal(t, "debug", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.DefaultConfig().Sanitize, (&cli{}).config().Sanitize)
}
