package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	reposcopeerrors "github.com/reposcope/reposcope/internal/errors"
)

// CommitSuggestion is the structured result of a commit-message prompt.
type CommitSuggestion struct {
	// CommitTitle is the suggested subject line.
	CommitTitle string `json:"commit_title"`

	// Explanation is a short synopsis of what changed and why.
	Explanation string `json:"explanation"`

	// Files lists the paths the model considered part of the change.
	Files []string `json:"files"`
}

// ChangeAnalysis is the structured result of a change-analysis prompt.
type ChangeAnalysis struct {
	// Summary describes what the change does.
	Summary string `json:"summary"`

	// Impact describes the technical impact of the change.
	Impact string `json:"impact"`

	// Risks lists risks or follow-ups the model identified.
	Risks []string `json:"risks"`
}

// ParseCommitSuggestion extracts the JSON payload from a model response and
// unmarshals it. Returns an error wrapped with ErrAIResponseParse when no
// usable JSON is found or the title is missing.
func ParseCommitSuggestion(text string) (*CommitSuggestion, error) {
	payload, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var s CommitSuggestion
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("unmarshaling suggestion: %w: %w", err, reposcopeerrors.ErrAIResponseParse)
	}
	if s.CommitTitle == "" {
		return nil, fmt.Errorf("missing commit_title: %w", reposcopeerrors.ErrAIResponseParse)
	}
	return &s, nil
}

// ParseChangeAnalysis extracts the JSON payload from a model response and
// unmarshals it.
func ParseChangeAnalysis(text string) (*ChangeAnalysis, error) {
	payload, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var a ChangeAnalysis
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, fmt.Errorf("unmarshaling analysis: %w: %w", err, reposcopeerrors.ErrAIResponseParse)
	}
	if a.Summary == "" {
		return nil, fmt.Errorf("missing summary: %w", reposcopeerrors.ErrAIResponseParse)
	}
	return &a, nil
}

// extractJSON pulls the JSON object out of a model response. Models are
// asked for a fenced block but do not always comply, so this falls back to
// the outermost brace pair.
func extractJSON(text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("empty response: %w", reposcopeerrors.ErrAIResponseParse)
	}

	if start := strings.Index(text, "```json"); start != -1 {
		rest := text[start+len("```json"):]
		if end := strings.Index(rest, "```"); end != -1 {
			return []byte(strings.TrimSpace(rest[:end])), nil
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("no json object in response: %w", reposcopeerrors.ErrAIResponseParse)
	}
	return []byte(text[start : end+1]), nil
}
