package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Data.Path)
	assert.Equal(t, float32(1000), cfg.Window.Width)
	assert.Equal(t, float32(600), cfg.Window.Height)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[data]
path = "/tmp/practice.json"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/practice.json", cfg.Data.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset sections keep their defaults.
	assert.Equal(t, float32(1000), cfg.Window.Width)

	dataFile, err := cfg.DataFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/practice.json", dataFile)
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestCreateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, CreateConfigFile(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	assert.Error(t, CreateConfigFile(path))
}

func TestDataFileDefaultsToHomeDirectory(t *testing.T) {
	cfg := Default()
	path, err := cfg.DataFile()
	require.NoError(t, err)
	assert.Contains(t, path, ".PracticeApp")
	assert.Equal(t, "data.json", filepath.Base(path))
}
