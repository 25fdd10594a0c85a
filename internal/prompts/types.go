// Package prompts holds the prompt templates sent to the text-generation
// service and the typed data each template expects.
package prompts

// PromptID identifies a specific prompt template.
type PromptID string

// Prompt identifiers for all AI prompts in reposcope.
const (
	// CommitSuggestion asks for a structured commit-message suggestion.
	CommitSuggestion PromptID = "git/commit_suggestion"

	// ChangeAnalysis asks for a change-analysis comment, optionally in the
	// context of a tracker issue.
	ChangeAnalysis PromptID = "git/change_analysis"
)

// FileChange is a changed file reference for prompt rendering.
type FileChange struct {
	Path   string
	Status string
}

// CommitSuggestionData contains input data for commit message generation.
type CommitSuggestionData struct {
	// Branch is the current branch name.
	Branch string
	// Files are the files included in the change set.
	Files []FileChange
	// Diff is the (possibly truncated) unified diff text.
	Diff string
}

// ChangeAnalysisData contains input data for change analysis generation.
type ChangeAnalysisData struct {
	// IssueKey is the tracker issue key, empty when no issue is linked.
	IssueKey string
	// IssueSummary is the issue's one-line summary, empty when unlinked.
	IssueSummary string
	// IssueDescription is the issue's body text, empty when unlinked.
	IssueDescription string
	// Files are the files included in the change set.
	Files []FileChange
	// Diff is the (possibly truncated) unified diff text.
	Diff string
}
