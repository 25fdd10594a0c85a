package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/reposcope/reposcope/internal/config"
)

// AddInitCommand adds the init command to the root command.
func AddInitCommand(parent *cobra.Command, _ *GlobalFlags) {
	var global bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a default configuration file with all supported keys.

By default the file is written to .reposcope/config.yaml in the current
directory. With --global it is written to ~/.reposcope/config.yaml and
applies to every repository.

The command refuses to overwrite an existing file.

Examples:
  reposcope init           # Project config in ./.reposcope/
  reposcope init --global  # Global config in ~/.reposcope/`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(global, os.Stdout)
		},
	}
	cmd.Flags().BoolVar(&global, "global", false, "write the global config instead of the project config")

	parent.AddCommand(cmd)
}

func runInit(global bool, w io.Writer) error {
	path := config.ProjectConfigPath()
	if global {
		var err error
		if path, err = config.GlobalConfigPath(); err != nil {
			return err
		}
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}

	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}
