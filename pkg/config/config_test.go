package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configContent := `
output:
  top: 25

processing:
  workers: 4
  extensions: [".txt", ".text"]
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, 25, cfg.Output.Top)
		assert.Equal(t, 4, cfg.Processing.Workers)
		assert.Equal(t, []string{".txt", ".text"}, cfg.Processing.Extensions)
	})

	t.Run("defaults applied", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte("output: {}\n"), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)

		assert.Equal(t, 100, cfg.Output.Top)
		assert.Equal(t, 1, cfg.Processing.Workers)
		assert.Equal(t, []string{".txt"}, cfg.Processing.Extensions)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("TRIGREP_TOP", "7")
		configContent := `
output:
  top: ${TRIGREP_TOP}
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "test-config.yml")
		err := os.WriteFile(configPath, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Output.Top)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("no-such-config.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "broken.yml")
		err := os.WriteFile(configPath, []byte("output: [unclosed"), 0o644)
		require.NoError(t, err)

		_, err = Load(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("negative top rejected", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "bad.yml")
		err := os.WriteFile(configPath, []byte("output:\n  top: -5\n"), 0o644)
		require.NoError(t, err)

		_, err = Load(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "output.top must be positive")
	})

	t.Run("extension without dot rejected", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "bad.yml")
		err := os.WriteFile(configPath, []byte("processing:\n  extensions: [\"txt\"]\n"), 0o644)
		require.NoError(t, err)

		_, err = Load(configPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must start with a dot")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 100, cfg.Output.Top)
	assert.Equal(t, 1, cfg.Processing.Workers)
	assert.Equal(t, []string{".txt"}, cfg.Processing.Extensions)
}
