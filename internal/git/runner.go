// Package git provides Git operations for reposcope.
// This file defines the Runner interface for git CLI operations.
package git

import "context"

// Runner defines the read operations reposcope performs on a repository.
// All operations run in the working directory fixed at construction time and
// use context for cancellation.
type Runner interface {
	// ChangedFiles returns the ordered list of changed files from the
	// machine-readable status output. An empty result is valid and means a
	// clean working tree.
	ChangedFiles(ctx context.Context) ([]ChangedFile, error)

	// Diffs returns one FileDiff per changed file, in status order.
	// If staged is true, diffs are index-relative and untracked files are
	// excluded. Returns an empty result when there are no changes.
	Diffs(ctx context.Context, staged bool) ([]FileDiff, error)

	// Commits returns up to limit commit records, newest first.
	// A limit of zero or less means no limit. A malformed log line is a
	// hard error for the whole call.
	Commits(ctx context.Context, limit int) ([]Commit, error)

	// Info returns repository-level metadata. Individual fields degrade to
	// zero values when their underlying command fails.
	Info(ctx context.Context) (*RepoInfo, error)
}
