package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/reposcope/reposcope/internal/errors"
)

// newViperInstance creates a Viper instance with standard reposcope
// configuration: defaults, REPOSCOPE_ env prefix, and key replacer.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("REPOSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults configures all default values on the Viper instance.
// Keys must match the YAML tag names exactly. These values match
// DefaultConfig().
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("ai.provider", def.AI.Provider)
	v.SetDefault("ai.model", def.AI.Model)
	v.SetDefault("ai.api_key_env_var", def.AI.APIKeyEnvVar)
	v.SetDefault("ai.timeout", def.AI.Timeout.String())

	v.SetDefault("tracker.base_url", "")
	v.SetDefault("tracker.email", "")
	v.SetDefault("tracker.token_env_var", def.Tracker.TokenEnvVar)
	v.SetDefault("tracker.project", "")
	v.SetDefault("tracker.timeout", def.Tracker.Timeout.String())

	v.SetDefault("display.max_diff_lines", def.Display.MaxDiffLines)
	v.SetDefault("display.log_limit", def.Display.LogLimit)
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// This configures mapstructure to convert duration strings like "30s".
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}

// unmarshalAndValidate unmarshals viper config into Config and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// Missing config files are not an error; actual read or validation failures
// are.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	// Global config first (lower precedence).
	if path, ok := globalConfigPathIfExists(); ok {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
			return nil, errors.Wrap(err, "failed to read global config file")
		}
	}

	// Project config merges over global.
	if path := ProjectConfigPath(); fileExists(path) {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
			return nil, errors.Wrap(err, "failed to read project config file")
		}
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("ai.provider", cfg.AI.Provider).
		Str("ai.model", cfg.AI.Model).
		Int("display.max_diff_lines", cfg.Display.MaxDiffLines).
		Msg("configuration loaded")

	return cfg, nil
}

// LoadFromPaths loads configuration from specific file paths. Either path can
// be empty to skip that level. Used by tests and the init command.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(v)
}
