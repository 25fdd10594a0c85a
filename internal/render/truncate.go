// Package render turns the canonical git result model into human-readable
// text or machine-readable JSON. Renderers are stateless and never mutate
// the model they are given.
package render

import (
	"fmt"
	"strings"
)

// TruncatePatch applies the head/tail display window to a patch.
//
// maxLines is the display budget; zero or negative means unlimited, so a
// caller-supplied flag value can be passed through unchecked. When the patch
// exceeds the budget, the first maxLines/2 and last maxLines/2 lines are
// kept with a marker line in between stating how many lines were omitted
// (total - maxLines). Both the start and end of a patch stay visible, which
// is the useful part of a diff: context plus final state.
//
// Returns the display text and whether truncation occurred.
func TruncatePatch(patch string, maxLines int) (string, bool) {
	lines := strings.Split(patch, "\n")
	if maxLines <= 0 || len(lines) <= maxLines {
		return patch, false
	}

	half := maxLines / 2
	omitted := len(lines) - maxLines

	out := make([]string, 0, half*2+1)
	out = append(out, lines[:half]...)
	out = append(out, fmt.Sprintf("... %d lines omitted ...", omitted))
	out = append(out, lines[len(lines)-half:]...)

	return strings.Join(out, "\n"), true
}

// LineKind classifies a single diff line for presentation.
// This is presentation-only and has no effect on the data model.
type LineKind int

// Diff line kinds.
const (
	LineContext LineKind = iota
	LineAddition
	LineDeletion
	LineHunk
)

// ClassifyLine returns the presentation kind of a diff line: additions start
// with '+', deletions with '-', hunk headers with '@', everything else is
// context.
func ClassifyLine(line string) LineKind {
	if line == "" {
		return LineContext
	}
	switch line[0] {
	case '+':
		return LineAddition
	case '-':
		return LineDeletion
	case '@':
		return LineHunk
	default:
		return LineContext
	}
}
