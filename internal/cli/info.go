package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/reposcope/reposcope/internal/git"
	"github.com/reposcope/reposcope/internal/render"
)

// AddInfoCommand adds the info command to the root command.
func AddInfoCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show repository metadata",
		Long: `Display repository-level metadata: current branch, remote URL, total
commit count, and the contributor table. Fields degrade independently
when their underlying git command fails.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := openRunner(cmd.Context(), flags)
			if err != nil {
				return err
			}
			return runInfo(cmd.Context(), flags, runner, os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

func runInfo(ctx context.Context, flags *GlobalFlags, runner git.Runner, w io.Writer) error {
	info, err := runner.Info(ctx)
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return render.WriteJSON(w, info)
	}

	render.NewTextRenderer(w, 0).Info(info)
	return nil
}
