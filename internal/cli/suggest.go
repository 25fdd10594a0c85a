package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reposcope/reposcope/internal/ai"
	"github.com/reposcope/reposcope/internal/config"
	"github.com/reposcope/reposcope/internal/git"
	"github.com/reposcope/reposcope/internal/prompts"
	"github.com/reposcope/reposcope/internal/render"
)

// AddSuggestCommand adds the suggest command to the root command.
func AddSuggestCommand(parent *cobra.Command, flags *GlobalFlags) {
	var staged bool

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a commit message for the current changes",
		Long: `Summarize the current change set and ask the text-generation service
for a structured commit message suggestion.

The API key is read from the environment variable named by
ai.api_key_env_var in the config (default GEMINI_API_KEY).

Examples:
  reposcope suggest           # Suggest from working-tree changes
  reposcope suggest --staged  # Suggest from staged changes only`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			provider, err := newProvider(cfg)
			if err != nil {
				return err
			}
			runner, err := openRunner(cmd.Context(), flags)
			if err != nil {
				return err
			}
			return runSuggest(cmd.Context(), flags, runner, provider, staged, cfg.Display.MaxDiffLines, os.Stdout)
		},
	}
	cmd.Flags().BoolVar(&staged, "staged", false, "suggest from the index instead of the working tree")

	parent.AddCommand(cmd)
}

func runSuggest(ctx context.Context, flags *GlobalFlags, runner git.Runner, provider ai.Provider, staged bool, maxLines int, w io.Writer) error {
	cs, err := collectChangeSet(ctx, runner, staged)
	if err != nil {
		return err
	}
	if cs.empty() {
		fmt.Fprintln(w, "No changes found.")
		return nil
	}

	info, err := runner.Info(ctx)
	if err != nil {
		return err
	}

	prompt, err := prompts.Render(prompts.CommitSuggestion, prompts.CommitSuggestionData{
		Branch: info.Branch,
		Files:  cs.promptFiles(),
		Diff:   cs.promptDiff(maxLines),
	})
	if err != nil {
		return err
	}

	logger := GetLogger()
	logger.Info().Str("provider", provider.Name()).Int("files", len(cs.files)).Msg("requesting commit suggestion")

	text, err := provider.Generate(ctx, prompt)
	if err != nil {
		return err
	}

	suggestion, err := ai.ParseCommitSuggestion(text)
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return render.WriteJSON(w, suggestion)
	}

	fmt.Fprintln(w, suggestion.CommitTitle)
	if suggestion.Explanation != "" {
		fmt.Fprintf(w, "\n%s\n", suggestion.Explanation)
	}
	if len(suggestion.Files) > 0 {
		fmt.Fprintf(w, "\nFiles: %s\n", strings.Join(suggestion.Files, ", "))
	}
	return nil
}
