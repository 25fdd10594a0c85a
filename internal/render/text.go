package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/reposcope/reposcope/internal/git"
)

// TextRenderer writes human-readable output for the git result model.
type TextRenderer struct {
	w        io.Writer
	styles   *Styles
	maxLines int // display budget per patch, non-positive means unlimited
}

// NewTextRenderer creates a TextRenderer writing to w.
// maxLines is the per-patch display budget passed to TruncatePatch.
func NewTextRenderer(w io.Writer, maxLines int) *TextRenderer {
	return &TextRenderer{
		w:        w,
		styles:   NewStyles(),
		maxLines: maxLines,
	}
}

// Status renders the changed-file list as an aligned two-column table.
func (r *TextRenderer) Status(files []git.ChangedFile) {
	if len(files) == 0 {
		fmt.Fprintln(r.w, "No changes found.")
		return
	}

	width := 0
	for _, f := range files {
		if w := runewidth.StringWidth(f.Path); w > width {
			width = w
		}
	}

	for _, f := range files {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(f.Path))
		fmt.Fprintf(r.w, "%s%s  %s\n", f.Path, pad, r.styles.Label.Render(f.StatusLabel))
	}
}

// Diffs renders each file diff with a header line and a colorized,
// possibly truncated patch body.
func (r *TextRenderer) Diffs(diffs []git.FileDiff) {
	if len(diffs) == 0 {
		fmt.Fprintln(r.w, "No changes found.")
		return
	}

	for i, d := range diffs {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		fmt.Fprintf(r.w, "%s (%s)\n", r.styles.Header.Render(d.Path), r.styles.Label.Render(d.StatusLabel))

		body, truncated := TruncatePatch(d.Patch, r.maxLines)
		for _, line := range strings.Split(body, "\n") {
			fmt.Fprintln(r.w, r.renderLine(line))
		}
		if truncated {
			fmt.Fprintln(r.w, r.styles.Dim.Render(fmt.Sprintf("(patch truncated to %d lines)", r.maxLines)))
		}
	}
}

// Commits renders commit records one per line.
func (r *TextRenderer) Commits(commits []git.Commit) {
	if len(commits) == 0 {
		fmt.Fprintln(r.w, "No commits found.")
		return
	}

	for _, c := range commits {
		hash := c.Hash
		if len(hash) > 8 {
			hash = hash[:8]
		}
		fmt.Fprintf(r.w, "%s  %s  %s  %s\n",
			r.styles.Hunk.Render(hash),
			r.styles.Dim.Render(c.Date),
			c.Message,
			r.styles.Label.Render(c.Author),
		)
	}
}

// Info renders repository metadata and the contributor table.
func (r *TextRenderer) Info(info *git.RepoInfo) {
	fmt.Fprintf(r.w, "%s %s\n", r.styles.Header.Render("Branch:"), info.Branch)
	fmt.Fprintf(r.w, "%s %s\n", r.styles.Header.Render("Remote:"), info.RemoteURL)
	fmt.Fprintf(r.w, "%s %d\n", r.styles.Header.Render("Commits:"), info.TotalCommits)

	if len(info.Contributors) == 0 {
		return
	}
	fmt.Fprintln(r.w, r.styles.Header.Render("Contributors:"))

	width := 0
	for _, c := range info.Contributors {
		if w := runewidth.StringWidth(c.Name); w > width {
			width = w
		}
	}
	for _, c := range info.Contributors {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(c.Name))
		fmt.Fprintf(r.w, "  %s%s  %d\n", c.Name, pad, c.Commits)
	}
}

// renderLine applies the style for the line's presentation kind.
// Empty lines render as blank.
func (r *TextRenderer) renderLine(line string) string {
	if line == "" {
		return ""
	}
	switch ClassifyLine(line) {
	case LineAddition:
		return r.styles.Addition.Render(line)
	case LineDeletion:
		return r.styles.Deletion.Render(line)
	case LineHunk:
		return r.styles.Hunk.Render(line)
	default:
		return line
	}
}
