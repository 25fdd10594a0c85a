package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/reposcope/reposcope/internal/config"
	"github.com/reposcope/reposcope/internal/git"
	"github.com/reposcope/reposcope/internal/render"
)

// AddLogCommand adds the log command to the root command.
func AddLogCommand(parent *cobra.Command, flags *GlobalFlags) {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent commits",
		Long: `Display recent commits, newest first.

Examples:
  reposcope log           # Most recent commits
  reposcope log -n 25     # Limit to 25 commits
  reposcope log -n 0      # No limit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.Display.LogLimit
			}

			runner, err := openRunner(cmd.Context(), flags)
			if err != nil {
				return err
			}
			return runLog(cmd.Context(), flags, runner, limit, os.Stdout)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of commits (0 = unlimited)")

	parent.AddCommand(cmd)
}

func runLog(ctx context.Context, flags *GlobalFlags, runner git.Runner, limit int, w io.Writer) error {
	commits, err := runner.Commits(ctx, limit)
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return render.WriteJSON(w, commits)
	}

	render.NewTextRenderer(w, 0).Commits(commits)
	return nil
}
