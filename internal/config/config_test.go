package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("creates a default config under the home directory", func(t *testing.T) {
		home := t.TempDir()

		cfg, err := LoadConfig(home)

		require.NoError(t, err)
		assert.Equal(t, "gemma3:12b", cfg.Model)
		assert.Equal(t, "http://localhost:11434", cfg.BaseURL)
		assert.Equal(t, "jira", cfg.OutputFormat)
		assert.Equal(t, 500, cfg.MaxTokens)
		assert.FileExists(t, filepath.Join(home, ".template-drafter", "config.json"))
	})

	t.Run("loads an explicit json path without creating directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"model": "llama3:8b"}`), 0644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "llama3:8b", cfg.Model)
		assert.Equal(t, path, cfg.PathFile)
	})

	t.Run("missing values are filled with defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"output_format": "adoc"}`), 0644))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "adoc", cfg.OutputFormat)
		assert.Equal(t, "gemma3:12b", cfg.Model)
		assert.Equal(t, 0.8, cfg.Temperature)
	})

	t.Run("an unsupported output format is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"output_format": "markdown"}`), 0644))

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("round-trips the config through its file", func(t *testing.T) {
		home := t.TempDir()
		cfg, err := LoadConfig(home)
		require.NoError(t, err)

		cfg.Model = "qwen2.5:14b"
		cfg.MaxTokens = 1024
		require.NoError(t, SaveConfig(cfg))

		reloaded, err := LoadConfig(home)
		require.NoError(t, err)
		assert.Equal(t, "qwen2.5:14b", reloaded.Model)
		assert.Equal(t, 1024, reloaded.MaxTokens)
	})

	t.Run("a config without a file path is rejected", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)

		assert.Error(t, SaveConfig(cfg))
	})
}
