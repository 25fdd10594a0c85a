package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/reposcope/reposcope/internal/git"
	"github.com/reposcope/reposcope/internal/render"
)

// AddStatusCommand adds the status command to the root command.
func AddStatusCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show changed files in the repository",
		Long: `Display the changed files in the working tree with a human-readable
status for each file.

Examples:
  reposcope status               # Aligned table of changed files
  reposcope status --output json # JSON array of changed files`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := openRunner(cmd.Context(), flags)
			if err != nil {
				return err
			}
			return runStatus(cmd.Context(), flags, runner, os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

func runStatus(ctx context.Context, flags *GlobalFlags, runner git.Runner, w io.Writer) error {
	files, err := runner.ChangedFiles(ctx)
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return render.WriteJSON(w, files)
	}

	render.NewTextRenderer(w, 0).Status(files)
	return nil
}
