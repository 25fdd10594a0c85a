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

// AddDiffCommand adds the diff command to the root command.
func AddDiffCommand(parent *cobra.Command, flags *GlobalFlags) {
	var staged bool
	var maxLines int

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show per-file diffs for the working tree or index",
		Long: `Display one diff section per changed file. Long patches are truncated
for display, keeping the head and tail with an omission marker between.

Examples:
  reposcope diff                 # Working-tree diffs, colorized
  reposcope diff --staged        # Index-relative diffs, untracked excluded
  reposcope diff --max-lines 40  # Tighter display budget per patch
  reposcope diff --output json   # Full, untruncated patches as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("max-lines") {
				maxLines = cfg.Display.MaxDiffLines
			}

			runner, err := openRunner(cmd.Context(), flags)
			if err != nil {
				return err
			}
			return runDiff(cmd.Context(), flags, runner, staged, maxLines, os.Stdout)
		},
	}
	cmd.Flags().BoolVar(&staged, "staged", false, "diff the index instead of the working tree")
	cmd.Flags().IntVar(&maxLines, "max-lines", 0, "display budget per patch (0 or less = unlimited)")

	parent.AddCommand(cmd)
}

func runDiff(ctx context.Context, flags *GlobalFlags, runner git.Runner, staged bool, maxLines int, w io.Writer) error {
	diffs, err := runner.Diffs(ctx, staged)
	if err != nil {
		return err
	}

	// JSON output carries the full patches; truncation is display-only.
	if flags.Output == OutputJSON {
		return render.WriteJSON(w, diffs)
	}

	render.NewTextRenderer(w, maxLines).Diffs(diffs)
	return nil
}
