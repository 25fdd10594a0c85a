package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/reposcope/reposcope/internal/config"
	"github.com/reposcope/reposcope/internal/render"
	"github.com/reposcope/reposcope/internal/tracker"
)

// AddIssuesCommand adds the issues command to the root command.
func AddIssuesCommand(parent *cobra.Command, flags *GlobalFlags) {
	var projectKey string

	cmd := &cobra.Command{
		Use:   "issues",
		Short: "List open tracker issues assigned to you",
		Long: `List the open issues assigned to the configured tracker user,
optionally filtered by project.

Examples:
  reposcope issues                 # All your open issues
  reposcope issues --project PROJ  # Scoped to one project`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			if projectKey == "" {
				projectKey = cfg.Tracker.Project
			}

			trk, err := newTracker(cfg)
			if err != nil {
				return err
			}
			return runIssues(cmd.Context(), flags, trk, projectKey, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&projectKey, "project", "", "project key to filter by")

	parent.AddCommand(cmd)
}

func runIssues(ctx context.Context, flags *GlobalFlags, trk tracker.Tracker, projectKey string, w io.Writer) error {
	issues, err := trk.ListIssues(ctx, projectKey)
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return render.WriteJSON(w, issues)
	}

	if len(issues) == 0 {
		fmt.Fprintln(w, "No open issues found.")
		return nil
	}

	keyWidth := 0
	for _, issue := range issues {
		if w := runewidth.StringWidth(issue.Key); w > keyWidth {
			keyWidth = w
		}
	}
	for _, issue := range issues {
		fmt.Fprintf(w, "%s  [%s] %s\n", runewidth.FillRight(issue.Key, keyWidth), issue.Status, issue.Summary)
	}
	return nil
}
