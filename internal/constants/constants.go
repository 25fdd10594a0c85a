// Package constants provides centralized constant values used throughout reposcope.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory names and paths used by reposcope for organizing data.
const (
	// AppHome is the hidden directory name where reposcope stores its data.
	// This directory is created in the user's home directory.
	AppHome = ".reposcope"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// ConfigDir is the project-local directory name for configuration.
	ConfigDir = ".reposcope"

	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "config.yaml"
)

// Log rotation settings for the CLI log file.
const (
	// CLILogFileName is the name of the rotating CLI log file.
	CLILogFileName = "reposcope.log"

	// LogMaxSizeMB is the maximum size in megabytes before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the maximum number of rotated files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days of a rotated file.
	LogMaxAgeDays = 28

	// LogCompress controls gzip compression of rotated files.
	LogCompress = true
)

// Timeout configurations for external services.
const (
	// DefaultAITimeout is the default maximum duration for a single
	// text-generation request.
	DefaultAITimeout = 2 * time.Minute

	// DefaultTrackerTimeout is the default maximum duration for a single
	// issue-tracker API call.
	DefaultTrackerTimeout = 30 * time.Second
)

// Git output formats shared between the runner and its parsers.
const (
	// CommitLogFormat is the pretty format passed to git log. Fields are
	// pipe-delimited: hash, author name, author email, unix timestamp, subject.
	CommitLogFormat = "%H|%an|%ae|%at|%s"

	// CommitDateLayout is the display layout for commit dates.
	CommitDateLayout = "2006-01-02 15:04:05"
)

// Display defaults.
const (
	// DefaultMaxDiffLines is the default display budget for a single patch.
	// Zero means unlimited.
	DefaultMaxDiffLines = 80

	// DefaultLogLimit is the default number of commits shown by the log command.
	DefaultLogLimit = 10
)
