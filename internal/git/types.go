// Package git provides Git operations for reposcope.
// This file defines the types produced by the Runner.
package git

// ChangedFile represents one line of machine-readable status output.
type ChangedFile struct {
	// Path is the repository-relative file path. Never empty after parsing;
	// lines without a path are dropped by the parser.
	Path string `json:"path"`

	// StatusCode is the raw two-character status token, e.g. " M", "??", "A ".
	StatusCode string `json:"status_code"`

	// StatusLabel is the human-readable classification of StatusCode.
	// It is a pure function of StatusCode.
	StatusLabel string `json:"status"`
}

// FileDiff is the per-file change model shared by the human renderer, the
// JSON surface, and the prompt builders. Constructed fresh per retrieval
// call and never mutated afterwards.
type FileDiff struct {
	// Path matches a ChangedFile.Path, or is recovered from a diff header
	// when the combined-diff fast path was used.
	Path string `json:"path"`

	// StatusCode is the raw status token when known; empty on the
	// combined-diff fast path, which cannot recover it.
	StatusCode string `json:"status_code,omitempty"`

	// StatusLabel is copied from the matching ChangedFile, defaulting to
	// "Modified" when synthesized from raw diff parsing alone.
	StatusLabel string `json:"status"`

	// Patch is the raw patch body for the single file, newline-joined.
	// May be empty.
	Patch string `json:"patch"`
}

// Commit is a single record from the commit log.
type Commit struct {
	Hash    string `json:"hash"`
	Author  string `json:"author"`
	Email   string `json:"email"`
	Date    string `json:"date"` // formatted "YYYY-MM-DD HH:MM:SS" (UTC)
	Message string `json:"message"`
}

// Contributor is one entry of the shortlog author aggregation.
type Contributor struct {
	Name    string `json:"name"`
	Commits int    `json:"commits"`
}

// RepoInfo summarizes repository-level metadata.
// Contributors keep the order emitted by the underlying shortlog
// (descending by commit count); reposcope does not re-sort them.
type RepoInfo struct {
	RemoteURL    string        `json:"remote_url"`
	TotalCommits int           `json:"total_commits"`
	Contributors []Contributor `json:"contributors"`
	Branch       string        `json:"branch"`
}
