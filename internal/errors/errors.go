// Package errors provides centralized error handling for reposcope.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrNotGitRepo indicates that the configured path is not inside a git
	// work tree. This is a fatal precondition: no other git operation may
	// run once it is detected.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrGitOperation indicates that a git command failed during execution.
	ErrGitOperation = errors.New("git operation failed")

	// ErrMalformedLogLine indicates that a commit-log line did not have the
	// expected number of pipe-delimited fields. Unlike status parsing, this
	// is a hard error for the whole call.
	ErrMalformedLogLine = errors.New("malformed commit log line")

	// ErrTrackerOperation indicates that an issue-tracker API call failed.
	ErrTrackerOperation = errors.New("tracker operation failed")

	// ErrIssueNotFound indicates the requested issue does not exist.
	ErrIssueNotFound = errors.New("issue not found")

	// ErrAIGeneration indicates that the text-generation service failed to
	// produce a response.
	ErrAIGeneration = errors.New("ai generation failed")

	// ErrAIResponseParse indicates the text-generation response could not be
	// parsed into the expected structure.
	ErrAIResponseParse = errors.New("ai response parse failed")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidAI indicates an invalid AI configuration value.
	ErrConfigInvalidAI = errors.New("invalid AI configuration")

	// ErrConfigInvalidTracker indicates an invalid tracker configuration value.
	ErrConfigInvalidTracker = errors.New("invalid tracker configuration")

	// ErrConfigInvalidDisplay indicates an invalid display configuration value.
	ErrConfigInvalidDisplay = errors.New("invalid display configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrEmptyValue indicates that a required value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrMissingAPIKey indicates the API key environment variable is unset.
	ErrMissingAPIKey = errors.New("api key not set")
)
