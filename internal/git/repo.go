// Package git provides Git operations for reposcope.
// This file collects repository-level metadata.
package git

import (
	"context"
	"strconv"
	"strings"

	"github.com/reposcope/reposcope/internal/ctxutil"
)

// Info returns repository-level metadata.
//
// Each field is gathered independently and degrades to its zero value when
// the underlying command fails: a repository without a remote or without
// commits is still reportable. The repository-validity check already
// happened at construction time.
func (r *CLIRunner) Info(ctx context.Context) (*RepoInfo, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	info := &RepoInfo{}

	if remote, err := r.cmd.Run(ctx, r.workDir, "remote", "get-url", "origin"); err == nil {
		info.RemoteURL = remote
	}

	if count, err := r.cmd.Run(ctx, r.workDir, "rev-list", "--count", "HEAD"); err == nil {
		if n, convErr := strconv.Atoi(strings.TrimSpace(count)); convErr == nil {
			info.TotalCommits = n
		}
	}

	if shortlog, err := r.cmd.Run(ctx, r.workDir, "shortlog", "-sn", "HEAD"); err == nil {
		info.Contributors = parseShortlog(shortlog)
	}

	if branch, err := r.cmd.Run(ctx, r.workDir, "rev-parse", "--abbrev-ref", "HEAD"); err == nil {
		info.Branch = branch
	}

	return info, nil
}

// parseShortlog parses `git shortlog -sn` output, preserving the order
// emitted by git (descending by commit count).
// Each line is "<count>\t<name>" with leading padding.
func parseShortlog(output string) []Contributor {
	var contributors []Contributor
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		count, name, found := strings.Cut(line, "\t")
		if !found {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil {
			continue
		}

		contributors = append(contributors, Contributor{
			Name:    strings.TrimSpace(name),
			Commits: n,
		})
	}
	return contributors
}
