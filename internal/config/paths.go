package config

import (
	"os"
	"path/filepath"

	"github.com/reposcope/reposcope/internal/constants"
	"github.com/reposcope/reposcope/internal/errors"
)

// GlobalConfigDir returns the path to the global reposcope configuration
// directory, typically ~/.reposcope.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get home directory")
	}
	return filepath.Join(home, constants.AppHome), nil
}

// GlobalConfigPath returns the full path to the global configuration file,
// typically ~/.reposcope/config.yaml.
func GlobalConfigPath() (string, error) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.ConfigFileName), nil
}

// ProjectConfigPath returns the relative path to the project configuration
// file, .reposcope/config.yaml from the working directory.
func ProjectConfigPath() string {
	return filepath.Join(constants.ConfigDir, constants.ConfigFileName)
}

// globalConfigPathIfExists returns the global config path if it exists.
func globalConfigPathIfExists() (string, bool) {
	path, err := GlobalConfigPath()
	if err != nil {
		return "", false
	}
	if !fileExists(path) {
		return "", false
	}
	return path, true
}
