package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/reposcope/reposcope/internal/constants"
	reposcopeerrors "github.com/reposcope/reposcope/internal/errors"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// Gemini implements Provider for Google's Gemini API.
type Gemini struct {
	apiKey  string
	model   string
	baseURL string
	httpCli *http.Client
	logger  zerolog.Logger
}

// GeminiOption configures a Gemini provider.
type GeminiOption func(*Gemini)

// WithBaseURL overrides the API base URL. Tests point this at a local server.
func WithBaseURL(url string) GeminiOption {
	return func(g *Gemini) {
		g.baseURL = url
	}
}

// WithHTTPClient substitutes the HTTP client.
func WithHTTPClient(cli *http.Client) GeminiOption {
	return func(g *Gemini) {
		g.httpCli = cli
	}
}

// WithLogger sets the logger for the provider.
func WithLogger(logger zerolog.Logger) GeminiOption {
	return func(g *Gemini) {
		g.logger = logger
	}
}

// NewGemini creates a new Gemini provider.
// The API key is read from the environment variable named by apiKeyEnvVar,
// keeping keys out of config files.
func NewGemini(model, apiKeyEnvVar string, opts ...GeminiOption) (*Gemini, error) {
	key := os.Getenv(apiKeyEnvVar)
	if key == "" {
		return nil, fmt.Errorf("%s: %w", apiKeyEnvVar, reposcopeerrors.ErrMissingAPIKey)
	}

	g := &Gemini{
		apiKey:  key,
		model:   model,
		baseURL: defaultGeminiBaseURL,
		httpCli: &http.Client{Timeout: constants.DefaultAITimeout},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Name returns the provider identifier.
func (g *Gemini) Name() string { return "gemini" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate sends the prompt and returns the first candidate's text.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := g.httpCli.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w: %w", err, reposcopeerrors.ErrAIGeneration)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	g.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("gemini request completed")

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini api error (status %d): %s: %w", resp.StatusCode, string(body), reposcopeerrors.ErrAIGeneration)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parsing response: %w: %w", err, reposcopeerrors.ErrAIGeneration)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response: %w", reposcopeerrors.ErrAIGeneration)
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
