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
	"github.com/reposcope/reposcope/internal/tracker"
)

// AddAnalyzeCommand adds the analyze command to the root command.
func AddAnalyzeCommand(parent *cobra.Command, flags *GlobalFlags) {
	var issueKey string
	var post bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze the current changes, optionally against a tracker issue",
		Long: `Summarize the current change set and ask the text-generation service
for a change analysis: summary, impact, and risks.

With --issue, the issue's summary and description are included in the
prompt so the analysis is judged against the issue's intent. With
--post, the analysis is added as a comment on that issue.

Examples:
  reposcope analyze                        # Analyze working-tree changes
  reposcope analyze --issue PROJ-42        # Analyze against an issue
  reposcope analyze --issue PROJ-42 --post # Also comment on the issue`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if post && issueKey == "" {
				return fmt.Errorf("--post requires --issue")
			}

			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			provider, err := newProvider(cfg)
			if err != nil {
				return err
			}

			var trk tracker.Tracker
			if issueKey != "" {
				if trk, err = newTracker(cfg); err != nil {
					return err
				}
			}

			runner, err := openRunner(cmd.Context(), flags)
			if err != nil {
				return err
			}
			return runAnalyze(cmd.Context(), flags, runner, provider, trk, issueKey, post, cfg.Display.MaxDiffLines, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&issueKey, "issue", "", "tracker issue key to analyze against")
	cmd.Flags().BoolVar(&post, "post", false, "post the analysis as a comment on the issue")

	parent.AddCommand(cmd)
}

func runAnalyze(ctx context.Context, flags *GlobalFlags, runner git.Runner, provider ai.Provider, trk tracker.Tracker, issueKey string, post bool, maxLines int, w io.Writer) error {
	cs, err := collectChangeSet(ctx, runner, false)
	if err != nil {
		return err
	}
	if cs.empty() {
		fmt.Fprintln(w, "No changes found.")
		return nil
	}

	data := prompts.ChangeAnalysisData{
		Files: cs.promptFiles(),
		Diff:  cs.promptDiff(maxLines),
	}
	if issueKey != "" {
		issue, err := trk.GetIssue(ctx, issueKey)
		if err != nil {
			return err
		}
		data.IssueKey = issue.Key
		data.IssueSummary = issue.Summary
		data.IssueDescription = issue.Description
	}

	prompt, err := prompts.Render(prompts.ChangeAnalysis, data)
	if err != nil {
		return err
	}

	logger := GetLogger()
	logger.Info().Str("provider", provider.Name()).Str("issue", issueKey).Msg("requesting change analysis")

	text, err := provider.Generate(ctx, prompt)
	if err != nil {
		return err
	}

	analysis, err := ai.ParseChangeAnalysis(text)
	if err != nil {
		return err
	}

	if post {
		if err := trk.PostComment(ctx, issueKey, formatAnalysisComment(analysis)); err != nil {
			return err
		}
		logger.Info().Str("issue", issueKey).Msg("posted analysis comment")
	}

	if flags.Output == OutputJSON {
		return render.WriteJSON(w, analysis)
	}

	fmt.Fprintf(w, "Summary: %s\n", analysis.Summary)
	if analysis.Impact != "" {
		fmt.Fprintf(w, "Impact:  %s\n", analysis.Impact)
	}
	for _, risk := range analysis.Risks {
		fmt.Fprintf(w, "Risk:    %s\n", risk)
	}
	return nil
}

// formatAnalysisComment renders a change analysis as a tracker comment body.
func formatAnalysisComment(a *ai.ChangeAnalysis) string {
	var sb strings.Builder
	sb.WriteString("Change analysis\n\n")
	sb.WriteString("Summary: ")
	sb.WriteString(a.Summary)
	sb.WriteString("\n")
	if a.Impact != "" {
		sb.WriteString("Impact: ")
		sb.WriteString(a.Impact)
		sb.WriteString("\n")
	}
	if len(a.Risks) > 0 {
		sb.WriteString("Risks:\n")
		for _, r := range a.Risks {
			sb.WriteString("- ")
			sb.WriteString(r)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
