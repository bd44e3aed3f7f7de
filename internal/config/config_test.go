package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromPathRoundTrip(t *testing.T) {
	svc := &service{}
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.ServerURL = "http://search.local:9000"
	cfg.UISettings.CompactResults = true
	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://search.local:9000", loaded.ServerURL)
	assert.True(t, loaded.UISettings.CompactResults)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := &service{}
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadFromPathGarbage(t *testing.T) {
	svc := &service{}
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("== not toml =="), 0644))

	_, err := svc.LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("== not toml =="), 0644))

	svc := &service{filePath: path}
	cfg, err := svc.Load()
	require.NoError(t, err, "garbage config never surfaces an error")
	assert.Equal(t, Default().ServerURL, cfg.ServerURL)
}

func TestLoadFromPathFillsEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	svc := &service{}
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, Default().ServerURL, cfg.ServerURL)
	assert.Equal(t, Default().LogFile, cfg.LogFile)
}

func TestSaveToPathCreatesDirectory(t *testing.T) {
	svc := &service{}
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.toml")

	require.NoError(t, svc.SaveToPath(Default(), path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
