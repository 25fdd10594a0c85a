// Package ai provides the text-generation boundary for reposcope.
//
// The core never talks to a model directly: it builds a prompt, hands it to
// a Provider, and parses the structured response. Implementations are plain
// HTTP clients.
package ai

import "context"

// Provider defines the interface for text generation.
// Context should be used to control timeouts and cancellation.
type Provider interface {
	// Name returns the provider identifier, e.g. "gemini".
	Name() string

	// Generate sends a prompt and returns the raw model text.
	// Returns an error wrapped with errors.ErrAIGeneration on failure.
	Generate(ctx context.Context, prompt string) (string, error)
}
