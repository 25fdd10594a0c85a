// Package git provides Git operations for reposcope.
// This file provides the git command execution boundary.
package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/reposcope/reposcope/internal/errors"
)

// Commander runs a git command in a working directory and returns its
// trimmed stdout. It is the single seam between the diff engine and the
// outside world: production code uses ExecCommander, tests substitute
// recorded outputs.
type Commander interface {
	Run(ctx context.Context, workDir string, args ...string) (string, error)
}

// ExecCommander executes git via os/exec.
type ExecCommander struct{}

// Run executes a git command in the specified directory and returns its output.
// All errors are wrapped with ErrGitOperation and include stderr for debugging.
func (ExecCommander) Run(ctx context.Context, workDir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...) //#nosec G204 -- args are constructed internally, not user input
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Check for context cancellation
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		// Include stderr in error for debugging, wrap with ErrGitOperation
		if stderr.Len() > 0 {
			return "", fmt.Errorf("git %s failed: %s: %w", args[0], strings.TrimSpace(stderr.String()), errors.ErrGitOperation)
		}
		return "", fmt.Errorf("git %s failed: %w", args[0], errors.ErrGitOperation)
	}

	return strings.TrimRight(stdout.String(), "\n"), nil
}
