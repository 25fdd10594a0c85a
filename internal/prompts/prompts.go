package prompts

import (
	"bytes"
	"fmt"
)

// Render executes a prompt template with the provided data and returns the
// result. The data type should match the expected type for the given prompt:
//
//	prompt, err := prompts.Render(prompts.CommitSuggestion, prompts.CommitSuggestionData{
//	    Branch: "main",
//	    Files:  files,
//	    Diff:   diff,
//	})
func Render(id PromptID, data any) (string, error) {
	tmpl, err := globalRegistry.get(id)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("prompt %s: %w", id, err)
	}

	return buf.String(), nil
}
