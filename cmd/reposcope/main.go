// Package main provides the entry point for the reposcope CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reposcope/reposcope/internal/cli"
)

// Build information set via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	ctx := context.Background()

	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	if err := cli.Execute(ctx, info); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCodeForError(err))
	}
}
