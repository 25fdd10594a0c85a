// Package git provides Git operations for reposcope.
// This file parses machine-readable status output into ChangedFile records.
package git

import "strings"

// Human-readable status labels.
const (
	labelModified  = "Modified"
	labelUntracked = "Untracked"
	labelUnknown   = "Unknown status"
)

// statusLabels maps exact status tokens to their labels. Single letters
// cover the case where git reports only one column; "??" is the untracked
// marker and the only two-character exact key.
var statusLabels = map[string]string{ //nolint:gochecknoglobals // fixed classification table
	"M":  labelModified,
	"A":  "Added",
	"D":  "Deleted",
	"R":  "Renamed",
	"C":  "Copied",
	"U":  "Updated but unmerged",
	"??": labelUntracked,
}

// ParseStatus turns `git status --porcelain` output into an ordered list of
// ChangedFile records, preserving line order.
//
// Each line is "XY PATH": the first two characters are the status code, the
// third is a separator space (discarded, not validated), and the rest is the
// path. Lines shorter than three characters and lines with an empty path are
// silently dropped; the parser never fails.
func ParseStatus(output string) []ChangedFile {
	var files []ChangedFile
	for _, line := range strings.Split(output, "\n") {
		if len(line) < 3 {
			continue
		}
		code := line[:2]
		path := line[3:]
		if path == "" {
			continue
		}
		files = append(files, ChangedFile{
			Path:        path,
			StatusCode:  code,
			StatusLabel: StatusLabel(code),
		})
	}
	return files
}

// StatusLabel classifies a raw status code into a human-readable label.
// It is a pure function of the code.
//
// A code whose space-trimmed form matches the table exactly gets that label
// directly, so "M ", " M" and "M" all classify as "Modified". Anything else
// is decomposed into its index and working-tree columns, each classified
// independently (space means absent), and the parts are combined.
func StatusLabel(code string) string {
	if label, ok := statusLabels[strings.TrimSpace(code)]; ok {
		return label
	}

	var indexLabel, workingLabel string
	if len(code) > 0 {
		indexLabel = columnLabel(code[0])
	}
	if len(code) > 1 {
		workingLabel = columnLabel(code[1])
	}

	switch {
	case indexLabel != "" && workingLabel != "":
		return indexLabel + " in index, " + workingLabel + " in working tree"
	case indexLabel != "":
		return indexLabel + " in index"
	case workingLabel != "":
		return workingLabel + " in working tree"
	default:
		return labelUnknown
	}
}

// columnLabel classifies a single status column character.
// A space or a letter outside the table counts as absent.
func columnLabel(c byte) string {
	if c == ' ' {
		return ""
	}
	return statusLabels[string(c)]
}
