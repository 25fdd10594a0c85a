// Package git provides Git operations for reposcope.
// This file retrieves and parses the commit log.
package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/reposcope/reposcope/internal/constants"
	"github.com/reposcope/reposcope/internal/ctxutil"
	reposcopeerrors "github.com/reposcope/reposcope/internal/errors"
)

// logFieldCount is the number of pipe-delimited fields in a log line.
const logFieldCount = 5

// Commits returns up to limit commit records, newest first.
//
// Unlike status parsing, a malformed line here is a hard error for the whole
// call rather than a silent skip.
func (r *CLIRunner) Commits(ctx context.Context, limit int) ([]Commit, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	args := []string{"log", "--pretty=format:" + constants.CommitLogFormat}
	if limit > 0 {
		args = append(args, "-n", strconv.Itoa(limit))
	}

	output, err := r.cmd.Run(ctx, r.workDir, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get commit log: %w", err)
	}

	return parseCommitLog(output)
}

// parseCommitLog parses pipe-delimited log lines into Commit records.
// The subject is the fifth field and may itself contain pipes; only lines
// with fewer than five fields are malformed.
func parseCommitLog(output string) ([]Commit, error) {
	var commits []Commit
	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, "|", logFieldCount)
		if len(parts) != logFieldCount {
			return nil, fmt.Errorf("expected %d fields, got %d: %w", logFieldCount, len(parts), reposcopeerrors.ErrMalformedLogLine)
		}

		ts, err := strconv.ParseInt(parts[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad timestamp %q: %w", parts[3], reposcopeerrors.ErrMalformedLogLine)
		}

		commits = append(commits, Commit{
			Hash:    parts[0],
			Author:  parts[1],
			Email:   parts[2],
			Date:    time.Unix(ts, 0).UTC().Format(constants.CommitDateLayout),
			Message: parts[4],
		})
	}
	return commits, nil
}
