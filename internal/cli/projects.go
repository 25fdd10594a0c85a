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

// AddProjectsCommand adds the projects command to the root command.
func AddProjectsCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List tracker projects",
		Long:  `List the tracker projects visible to the configured user.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			trk, err := newTracker(cfg)
			if err != nil {
				return err
			}
			return runProjects(cmd.Context(), flags, trk, os.Stdout)
		},
	}
	parent.AddCommand(cmd)
}

func runProjects(ctx context.Context, flags *GlobalFlags, trk tracker.Tracker, w io.Writer) error {
	projects, err := trk.ListProjects(ctx)
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return render.WriteJSON(w, projects)
	}

	if len(projects) == 0 {
		fmt.Fprintln(w, "No projects found.")
		return nil
	}

	keyWidth := 0
	for _, p := range projects {
		if w := runewidth.StringWidth(p.Key); w > keyWidth {
			keyWidth = w
		}
	}
	for _, p := range projects {
		fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(p.Key, keyWidth), p.Name)
	}
	return nil
}
