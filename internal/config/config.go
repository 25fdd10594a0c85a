// Package config provides configuration management for reposcope with
// layered precedence.
//
// Configuration sources are loaded in the following order (highest
// precedence first):
//  1. CLI flags (applied by the command layer)
//  2. Environment variables (REPOSCOPE_* prefix)
//  3. Project config (.reposcope/config.yaml)
//  4. Global config (~/.reposcope/config.yaml)
//  5. Built-in defaults
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import other internal packages.
package config

import (
	"time"

	"github.com/reposcope/reposcope/internal/constants"
)

// Config is the root configuration structure for reposcope.
type Config struct {
	// AI contains settings for the text-generation provider.
	AI AIConfig `yaml:"ai" mapstructure:"ai"`

	// Tracker contains settings for the issue tracker.
	Tracker TrackerConfig `yaml:"tracker" mapstructure:"tracker"`

	// Display contains settings for terminal output.
	Display DisplayConfig `yaml:"display" mapstructure:"display"`
}

// AIConfig contains settings for the text-generation provider.
type AIConfig struct {
	// Provider names the text-generation backend. Only "gemini" is
	// supported today.
	Provider string `yaml:"provider" mapstructure:"provider"`

	// Model is the model identifier sent to the provider.
	Model string `yaml:"model" mapstructure:"model"`

	// APIKeyEnvVar names the environment variable holding the API key.
	// The key itself never lives in a config file.
	APIKeyEnvVar string `yaml:"api_key_env_var" mapstructure:"api_key_env_var"`

	// Timeout is the maximum duration for a single generation request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// TrackerConfig contains settings for the issue tracker.
type TrackerConfig struct {
	// BaseURL is the tracker site, e.g. "https://example.atlassian.net".
	// Empty disables tracker-backed commands.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Email is the account used for API token auth.
	Email string `yaml:"email" mapstructure:"email"`

	// TokenEnvVar names the environment variable holding the API token.
	TokenEnvVar string `yaml:"token_env_var" mapstructure:"token_env_var"`

	// Project is the default project key for issue listings.
	Project string `yaml:"project" mapstructure:"project"`

	// Timeout is the maximum duration for a single tracker API call.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// DisplayConfig contains settings for terminal output.
type DisplayConfig struct {
	// MaxDiffLines is the display budget for a single patch. Zero means
	// unlimited.
	MaxDiffLines int `yaml:"max_diff_lines" mapstructure:"max_diff_lines"`

	// LogLimit is the default number of commits shown by the log command.
	// Zero means unlimited.
	LogLimit int `yaml:"log_limit" mapstructure:"log_limit"`
}

// DefaultConfig returns a Config populated with built-in defaults.
// These values match setDefaults in load.go.
func DefaultConfig() *Config {
	return &Config{
		AI: AIConfig{
			Provider:     "gemini",
			Model:        "gemini-2.0-flash",
			APIKeyEnvVar: "GEMINI_API_KEY",
			Timeout:      constants.DefaultAITimeout,
		},
		Tracker: TrackerConfig{
			TokenEnvVar: "JIRA_API_TOKEN",
			Timeout:     constants.DefaultTrackerTimeout,
		},
		Display: DisplayConfig{
			MaxDiffLines: constants.DefaultMaxDiffLines,
			LogLimit:     constants.DefaultLogLimit,
		},
	}
}
