package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 500, cfg.Train.LogEvery)
	assert.Equal(t, 10, cfg.Report.TopTokens)
	assert.Equal(t, "auto", cfg.Report.Color)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bytepair.yaml")
	content := "log:\n  level: debug\nreport:\n  top_tokens: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	// Overridden keys.
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Report.TopTokens)

	// Untouched keys keep their defaults.
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 500, cfg.Train.LogEvery)
	assert.Equal(t, "auto", cfg.Report.Color)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "while reading config file")
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
