package lox

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "glox.toml")
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestLoadConfig(t *testing.T) {
	file := writeConfig(t, "Prompt = \"lox> \"\nMaxCallDepth = 64\nColor = false\n")

	cfg, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Prompt:       "lox> ",
		HistoryFile:  DefaultConfig.HistoryFile,
		Color:        false,
		MaxCallDepth: 64,
	}, cfg)
}

func TestLoadConfigEmptyKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, cfg)
}

func TestLoadConfigUnknownField(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "Prompt = \"> \"\nPromt = \"oops\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'Promt' is not defined")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHistoryPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".glox_history"), historyPath("~/.glox_history"))
	assert.Equal(t, "/tmp/h", historyPath("/tmp/h"))
	assert.Equal(t, "", historyPath(""))
}

func TestConfiguredDepthReachesInterpreter(t *testing.T) {
	cfg := DefaultConfig
	cfg.Color = false
	cfg.MaxCallDepth = 3
	l := New(cfg, WithOutput(io.Discard), WithErrorOutput(io.Discard))
	assert.Equal(t, 3, l.Interpreter().maxDepth)
}
