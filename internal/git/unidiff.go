// Package git provides Git operations for reposcope.
// This file splits a multi-file unified diff into per-file patches.
package git

import (
	"regexp"
	"strings"
)

// diffHeaderRe matches the canonical two-path section start of a unified
// diff. The second capture (the "b/" path) names the file after the change.
//
// The greedy first capture splits the header at the LAST " b/" occurrence.
// A path containing " b/" (e.g. "lib/a b/c.txt") therefore mis-captures;
// the header format itself is ambiguous for such paths and git quotes them
// only when core.quotePath applies. Callers needing exact paths for unusual
// names get them from status output, not from diff headers.
var diffHeaderRe = regexp.MustCompile(`^diff --git a/(.+) b/(.+)$`)

// ParseUnifiedDiff splits the full text of a unified diff covering possibly
// many files into one FileDiff per section, in header order.
//
// A `diff --git a/X b/Y` line opens a new section and contributes the file
// path; every following line belongs to that section's patch body until the
// next header or end of input. A section with an empty body is still
// emitted. The status label always defaults to "Modified" because the diff
// text cannot recover the original status code.
//
// Returns nil when no header line is found, which callers use as the signal
// to fall back to per-file retrieval. This function performs no I/O.
func ParseUnifiedDiff(diff string) []FileDiff {
	var (
		diffs []FileDiff
		open  bool
		path  string
		body  []string
	)

	flush := func() {
		if !open {
			return
		}
		diffs = append(diffs, FileDiff{
			Path:        path,
			StatusLabel: labelModified,
			Patch:       strings.Join(body, "\n"),
		})
	}

	for _, line := range strings.Split(diff, "\n") {
		if m := diffHeaderRe.FindStringSubmatch(line); m != nil {
			flush()
			open = true
			path = m[2]
			body = nil
			continue
		}
		if open {
			body = append(body, line)
		}
	}
	flush()

	return diffs
}
