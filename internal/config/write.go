package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/reposcope/reposcope/internal/errors"
)

// writableConfig mirrors Config with durations rendered as strings so the
// generated file round-trips through the duration decode hook.
type writableConfig struct {
	AI struct {
		Provider     string `yaml:"provider"`
		Model        string `yaml:"model"`
		APIKeyEnvVar string `yaml:"api_key_env_var"`
		Timeout      string `yaml:"timeout"`
	} `yaml:"ai"`
	Tracker struct {
		BaseURL     string `yaml:"base_url"`
		Email       string `yaml:"email"`
		TokenEnvVar string `yaml:"token_env_var"`
		Project     string `yaml:"project"`
		Timeout     string `yaml:"timeout"`
	} `yaml:"tracker"`
	Display struct {
		MaxDiffLines int `yaml:"max_diff_lines"`
		LogLimit     int `yaml:"log_limit"`
	} `yaml:"display"`
}

// WriteDefault writes the default configuration to path, creating parent
// directories as needed. Fails if the file already exists.
func WriteDefault(path string) error {
	if path == "" {
		return errors.Wrap(errors.ErrEmptyValue, "config path")
	}
	if fileExists(path) {
		return errors.Wrapf(os.ErrExist, "config file already exists: %s", path)
	}

	def := DefaultConfig()
	var w writableConfig
	w.AI.Provider = def.AI.Provider
	w.AI.Model = def.AI.Model
	w.AI.APIKeyEnvVar = def.AI.APIKeyEnvVar
	w.AI.Timeout = def.AI.Timeout.String()
	w.Tracker.BaseURL = def.Tracker.BaseURL
	w.Tracker.Email = def.Tracker.Email
	w.Tracker.TokenEnvVar = def.Tracker.TokenEnvVar
	w.Tracker.Project = def.Tracker.Project
	w.Tracker.Timeout = def.Tracker.Timeout.String()
	w.Display.MaxDiffLines = def.Display.MaxDiffLines
	w.Display.LogLimit = def.Display.LogLimit

	data, err := yaml.Marshal(&w)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}
