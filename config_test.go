package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_NoPath(t *testing.T) {
	assert.Equal(t, defaultConfig(), loadConfig(""))
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg := loadConfig(filepath.Join(t.TempDir(), "config.json"))
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "output": "cursor.ico",
  "preview": "cursor.png",
  "preview_scale": 4,
  "syso": "rsrc.syso",
  "syso_arch": "arm64"
}`), 0600))

	cfg := loadConfig(path)
	assert.Equal(t, Config{
		Output:       "cursor.ico",
		Preview:      "cursor.png",
		PreviewScale: 4,
		Syso:         "rsrc.syso",
		SysoArch:     "arm64",
	}, cfg)
}

func TestLoadConfig_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output": "cursor.ico"}`), 0600))

	cfg := loadConfig(path)
	assert.Equal(t, "cursor.ico", cfg.Output)
	assert.Equal(t, 8, cfg.PreviewScale, "default")
	assert.Equal(t, "amd64", cfg.SysoArch, "default")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0600))

	assert.Equal(t, defaultConfig(), loadConfig(path))
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"output": "", "preview_scale": 500, "syso_arch": "sparc"}`), 0600))

	assert.Equal(t, defaultConfig(), loadConfig(path))
}
