// Package git provides Git operations for reposcope.
// This file implements the CLIRunner which wraps git CLI commands.
package git

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/reposcope/reposcope/internal/ctxutil"
	reposcopeerrors "github.com/reposcope/reposcope/internal/errors"
)

// Compile-time interface check.
var _ Runner = (*CLIRunner)(nil)

// CLIRunner implements Runner using the git CLI.
type CLIRunner struct {
	workDir string         // Working directory for git commands
	cmd     Commander      // Command execution boundary
	logger  zerolog.Logger // Logger for operations
}

// CLIRunnerOption configures a CLIRunner.
type CLIRunnerOption func(*CLIRunner)

// WithCommander substitutes the command execution boundary.
// Tests use this to replay recorded git output.
func WithCommander(cmd Commander) CLIRunnerOption {
	return func(r *CLIRunner) {
		r.cmd = cmd
	}
}

// WithLogger sets the logger for the runner.
func WithLogger(logger zerolog.Logger) CLIRunnerOption {
	return func(r *CLIRunner) {
		r.logger = logger
	}
}

// NewRunner creates a new CLIRunner for the given working directory.
// The directory is probed with `git rev-parse --is-inside-work-tree` before
// anything else runs; a failed probe is a hard ErrNotGitRepo, never a
// degraded result.
func NewRunner(ctx context.Context, workDir string, opts ...CLIRunnerOption) (*CLIRunner, error) {
	if workDir == "" {
		return nil, fmt.Errorf("work directory cannot be empty: %w", reposcopeerrors.ErrEmptyValue)
	}

	r := &CLIRunner{
		workDir: workDir,
		cmd:     ExecCommander{},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	out, err := r.cmd.Run(ctx, workDir, "rev-parse", "--is-inside-work-tree")
	if err != nil || out != "true" {
		return nil, fmt.Errorf("%s: %w", workDir, reposcopeerrors.ErrNotGitRepo)
	}

	return r, nil
}

// ChangedFiles returns the ordered list of changed files.
func (r *CLIRunner) ChangedFiles(ctx context.Context) ([]ChangedFile, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	output, err := r.cmd.Run(ctx, r.workDir, "status", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}

	return ParseStatus(output), nil
}

// Diffs returns one FileDiff per changed file, in status order.
//
// The fast path runs a single combined diff and splits it with
// ParseUnifiedDiff; its entries always carry the "Modified" label because
// the diff text cannot recover true status codes. When the combined diff is
// empty or unparsable, each file is retrieved individually: untracked files
// are skipped in staged mode, synthesized as "New file: <path>" placeholders
// otherwise, and any per-file failure degrades to an empty diff for that
// file instead of aborting the batch.
func (r *CLIRunner) Diffs(ctx context.Context, staged bool) ([]FileDiff, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	files, err := r.ChangedFiles(ctx)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if diffs := ParseUnifiedDiff(r.combinedDiff(ctx, staged)); len(diffs) > 0 {
		return diffs, nil
	}

	var diffs []FileDiff
	for _, file := range files {
		if staged && file.StatusCode == "??" {
			continue
		}

		patch := r.fileDiff(ctx, file.Path, staged)

		if patch == "" {
			if staged {
				continue
			}
			if file.StatusCode == "??" {
				diffs = append(diffs, FileDiff{
					Path:        file.Path,
					StatusCode:  file.StatusCode,
					StatusLabel: file.StatusLabel,
					Patch:       "New file: " + file.Path + "\n",
				})
			}
			continue
		}

		diffs = append(diffs, FileDiff{
			Path:        file.Path,
			StatusCode:  file.StatusCode,
			StatusLabel: file.StatusLabel,
			Patch:       patch,
		})
	}

	return diffs, nil
}

// combinedDiff attempts a single diff covering all files. Failure is treated
// as "no combined diff available" so the caller falls back to per-file
// retrieval.
func (r *CLIRunner) combinedDiff(ctx context.Context, staged bool) string {
	args := []string{"diff"}
	if staged {
		args = append(args, "--cached")
	}

	output, err := r.cmd.Run(ctx, r.workDir, args...)
	if err != nil {
		r.logger.Debug().Err(err).Bool("staged", staged).Msg("combined diff unavailable, falling back to per-file retrieval")
		return ""
	}
	return output
}

// fileDiff retrieves the diff for a single file. Any failure degrades to an
// empty diff for that file.
func (r *CLIRunner) fileDiff(ctx context.Context, path string, staged bool) string {
	args := []string{"diff"}
	if staged {
		args = append(args, "--cached")
	}
	args = append(args, "--", path)

	output, err := r.cmd.Run(ctx, r.workDir, args...)
	if err != nil {
		r.logger.Debug().Err(err).Str("path", path).Msg("per-file diff failed, treating as empty")
		return ""
	}
	return output
}
