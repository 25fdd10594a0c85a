package config

import (
	"strings"

	"github.com/reposcope/reposcope/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - AI provider must be "gemini"
//   - AI model and API key env var must not be empty
//   - AI and tracker timeouts must be positive
//   - Tracker base URL, when set, must be http(s)
//   - Display budgets must not be negative
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateAIConfig(&cfg.AI); err != nil {
		return err
	}
	if err := validateTrackerConfig(&cfg.Tracker); err != nil {
		return err
	}
	return validateDisplayConfig(&cfg.Display)
}

func validateAIConfig(cfg *AIConfig) error {
	if cfg.Provider != "gemini" {
		return errors.Wrapf(errors.ErrConfigInvalidAI,
			"ai.provider must be \"gemini\", got %q", cfg.Provider)
	}
	if cfg.Model == "" {
		return errors.Wrap(errors.ErrConfigInvalidAI,
			"ai.model must not be empty")
	}
	if cfg.APIKeyEnvVar == "" {
		return errors.Wrap(errors.ErrConfigInvalidAI,
			"ai.api_key_env_var must not be empty")
	}
	if cfg.Timeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidAI,
			"ai.timeout must be positive, got %s", cfg.Timeout)
	}
	return nil
}

func validateTrackerConfig(cfg *TrackerConfig) error {
	if cfg.BaseURL != "" &&
		!strings.HasPrefix(cfg.BaseURL, "https://") &&
		!strings.HasPrefix(cfg.BaseURL, "http://") {
		return errors.Wrapf(errors.ErrConfigInvalidTracker,
			"tracker.base_url must start with http:// or https://, got %q", cfg.BaseURL)
	}
	if cfg.TokenEnvVar == "" {
		return errors.Wrap(errors.ErrConfigInvalidTracker,
			"tracker.token_env_var must not be empty")
	}
	if cfg.Timeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidTracker,
			"tracker.timeout must be positive, got %s", cfg.Timeout)
	}
	return nil
}

func validateDisplayConfig(cfg *DisplayConfig) error {
	if cfg.MaxDiffLines < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidDisplay,
			"display.max_diff_lines cannot be negative, got %d", cfg.MaxDiffLines)
	}
	if cfg.LogLimit < 0 {
		return errors.Wrapf(errors.ErrConfigInvalidDisplay,
			"display.log_limit cannot be negative, got %d", cfg.LogLimit)
	}
	return nil
}
