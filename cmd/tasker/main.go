package main

import (
	"fmt"
	"os"

	app "github.com/valter-silva-au/tasker/internal"
	"github.com/valter-silva-au/tasker/internal/cli"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)

	if _, err := app.NewApp(app.ConfigSearchPaths()...); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing tasker: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
