package cli

import (
	"context"
	"net/http"
	"os"

	"github.com/reposcope/reposcope/internal/ai"
	"github.com/reposcope/reposcope/internal/config"
	"github.com/reposcope/reposcope/internal/errors"
	"github.com/reposcope/reposcope/internal/git"
	"github.com/reposcope/reposcope/internal/logging"
	"github.com/reposcope/reposcope/internal/tracker"
)

// openRunner creates a git runner for the repository named by --repo.
// The constructor probes the directory, so a bad path fails here.
func openRunner(ctx context.Context, flags *GlobalFlags) (git.Runner, error) {
	return git.NewRunner(ctx, flags.Repo, git.WithLogger(GetLogger()))
}

// newProvider builds the text-generation provider from configuration.
func newProvider(cfg *config.Config) (ai.Provider, error) {
	return ai.NewGemini(cfg.AI.Model, cfg.AI.APIKeyEnvVar,
		ai.WithLogger(GetLogger()),
		ai.WithHTTPClient(&http.Client{Timeout: cfg.AI.Timeout}),
	)
}

// newTracker builds the issue tracker client from configuration.
// Requires tracker.base_url and tracker.email to be configured and the API
// token to be present in the environment.
func newTracker(cfg *config.Config) (tracker.Tracker, error) {
	if cfg.Tracker.BaseURL == "" {
		return nil, errors.Wrap(errors.ErrEmptyValue,
			"tracker.base_url is not configured; run 'reposcope init' and edit the config file")
	}

	token := os.Getenv(cfg.Tracker.TokenEnvVar)
	if token == "" {
		return nil, errors.Wrapf(errors.ErrMissingAPIKey, "%s", cfg.Tracker.TokenEnvVar)
	}

	logger := GetLogger()
	logger.Debug().
		Str("base_url", logging.SafeValue("base_url", cfg.Tracker.BaseURL)).
		Str("email", logging.SafeValue("email", cfg.Tracker.Email)).
		Str("token", logging.SafeValue("token", token)).
		Msg("tracker configured")

	return tracker.NewJiraClient(cfg.Tracker.BaseURL, cfg.Tracker.Email, token,
		tracker.WithLogger(GetLogger()),
		tracker.WithHTTPClient(&http.Client{Timeout: cfg.Tracker.Timeout}),
	)
}
