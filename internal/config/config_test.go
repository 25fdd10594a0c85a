package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reposcope/reposcope/internal/constants"
	reposcopeerrors "github.com/reposcope/reposcope/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, "GEMINI_API_KEY", cfg.AI.APIKeyEnvVar)
	assert.Equal(t, constants.DefaultAITimeout, cfg.AI.Timeout)
	assert.Equal(t, "JIRA_API_TOKEN", cfg.Tracker.TokenEnvVar)
	assert.Equal(t, constants.DefaultMaxDiffLines, cfg.Display.MaxDiffLines)
	assert.Equal(t, constants.DefaultLogLimit, cfg.Display.LogLimit)

	require.NoError(t, Validate(cfg))
}

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, constants.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFromPaths(t *testing.T) {
	t.Run("defaults when no files", func(t *testing.T) {
		cfg, err := LoadFromPaths(context.Background(), "", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().AI.Model, cfg.AI.Model)
	})

	t.Run("global file applies", func(t *testing.T) {
		global := writeConfigFile(t, t.TempDir(), `
ai:
  model: gemini-2.0-pro
  timeout: 45s
display:
  max_diff_lines: 200
`)

		cfg, err := LoadFromPaths(context.Background(), "", global)
		require.NoError(t, err)
		assert.Equal(t, "gemini-2.0-pro", cfg.AI.Model)
		assert.Equal(t, 45*time.Second, cfg.AI.Timeout)
		assert.Equal(t, 200, cfg.Display.MaxDiffLines)
		// Untouched keys keep defaults.
		assert.Equal(t, "gemini", cfg.AI.Provider)
	})

	t.Run("project overrides global", func(t *testing.T) {
		global := writeConfigFile(t, t.TempDir(), `
tracker:
  base_url: https://global.atlassian.net
  email: global@example.com
`)
		project := writeConfigFile(t, t.TempDir(), `
tracker:
  base_url: https://project.atlassian.net
`)

		cfg, err := LoadFromPaths(context.Background(), project, global)
		require.NoError(t, err)
		assert.Equal(t, "https://project.atlassian.net", cfg.Tracker.BaseURL)
		// Keys absent from the project file survive from global.
		assert.Equal(t, "global@example.com", cfg.Tracker.Email)
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		project := writeConfigFile(t, t.TempDir(), `
display:
  max_diff_lines: -5
`)

		_, err := LoadFromPaths(context.Background(), project, "")
		require.ErrorIs(t, err, reposcopeerrors.ErrConfigInvalidDisplay)
	})

	t.Run("malformed yaml rejected", func(t *testing.T) {
		project := writeConfigFile(t, t.TempDir(), "ai: [unclosed")

		_, err := LoadFromPaths(context.Background(), project, "")
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config { return DefaultConfig() }

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.AI.Provider = "oracle" },
			wantErr: reposcopeerrors.ErrConfigInvalidAI,
		},
		{
			name:    "empty model",
			mutate:  func(c *Config) { c.AI.Model = "" },
			wantErr: reposcopeerrors.ErrConfigInvalidAI,
		},
		{
			name:    "zero ai timeout",
			mutate:  func(c *Config) { c.AI.Timeout = 0 },
			wantErr: reposcopeerrors.ErrConfigInvalidAI,
		},
		{
			name:    "bad tracker url scheme",
			mutate:  func(c *Config) { c.Tracker.BaseURL = "ftp://x" },
			wantErr: reposcopeerrors.ErrConfigInvalidTracker,
		},
		{
			name:    "empty token env var",
			mutate:  func(c *Config) { c.Tracker.TokenEnvVar = "" },
			wantErr: reposcopeerrors.ErrConfigInvalidTracker,
		},
		{
			name:    "negative diff budget",
			mutate:  func(c *Config) { c.Display.MaxDiffLines = -1 },
			wantErr: reposcopeerrors.ErrConfigInvalidDisplay,
		},
		{
			name:    "negative log limit",
			mutate:  func(c *Config) { c.Display.LogLimit = -1 },
			wantErr: reposcopeerrors.ErrConfigInvalidDisplay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			require.ErrorIs(t, Validate(cfg), tt.wantErr)
		})
	}

	t.Run("nil config", func(t *testing.T) {
		require.ErrorIs(t, Validate(nil), reposcopeerrors.ErrConfigNil)
	})

	t.Run("empty tracker url allowed", func(t *testing.T) {
		cfg := valid()
		cfg.Tracker.BaseURL = ""
		require.NoError(t, Validate(cfg))
	})
}

func TestWriteDefault(t *testing.T) {
	t.Run("round trips through load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), constants.ConfigDir, constants.ConfigFileName)
		require.NoError(t, WriteDefault(path))

		cfg, err := LoadFromPaths(context.Background(), path, "")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), constants.ConfigFileName)
		require.NoError(t, WriteDefault(path))
		require.ErrorIs(t, WriteDefault(path), os.ErrExist)
	})

	t.Run("empty path", func(t *testing.T) {
		require.ErrorIs(t, WriteDefault(""), reposcopeerrors.ErrEmptyValue)
	})
}
