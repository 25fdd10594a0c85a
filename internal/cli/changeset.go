package cli

import (
	"context"
	"strings"

	"github.com/reposcope/reposcope/internal/git"
	"github.com/reposcope/reposcope/internal/prompts"
	"github.com/reposcope/reposcope/internal/render"
)

// changeSet bundles the repository state the generation commands feed into
// their prompts.
type changeSet struct {
	files []git.ChangedFile
	diffs []git.FileDiff
}

// collectChangeSet gathers the changed files and their diffs.
// Returns an empty set for a clean working tree.
func collectChangeSet(ctx context.Context, runner git.Runner, staged bool) (*changeSet, error) {
	files, err := runner.ChangedFiles(ctx)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return &changeSet{}, nil
	}

	diffs, err := runner.Diffs(ctx, staged)
	if err != nil {
		return nil, err
	}

	return &changeSet{files: files, diffs: diffs}, nil
}

// empty reports whether there is nothing to describe.
func (cs *changeSet) empty() bool {
	return len(cs.files) == 0
}

// promptFiles converts the changed files into prompt references.
func (cs *changeSet) promptFiles() []prompts.FileChange {
	out := make([]prompts.FileChange, 0, len(cs.files))
	for _, f := range cs.files {
		out = append(out, prompts.FileChange{Path: f.Path, Status: f.StatusLabel})
	}
	return out
}

// promptDiff joins all patches into one prompt-sized diff text.
// Each patch is truncated to maxLines so a single huge file cannot blow the
// prompt budget.
func (cs *changeSet) promptDiff(maxLines int) string {
	var sb strings.Builder
	for i, d := range cs.diffs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("--- ")
		sb.WriteString(d.Path)
		sb.WriteString(" (")
		sb.WriteString(d.StatusLabel)
		sb.WriteString(")\n")

		body, _ := render.TruncatePatch(d.Patch, maxLines)
		sb.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
