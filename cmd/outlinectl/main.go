// Package main provides the entry point for the outlinectl CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ar4mirez/outlinectl/cmd/outlinectl/cmd"
	"github.com/ar4mirez/outlinectl/internal/config"
	"github.com/ar4mirez/outlinectl/pkg/outline"
)

// Build-time variables (set via ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	cmd.SetVersionInfo(Version, Commit, BuildTime)

	if err := cmd.Execute(); err != nil {
		var cfgErr *config.Error
		var apiErr *outline.Error
		switch {
		case errors.As(err, &cfgErr):
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", cfgErr)
			os.Exit(1)
		case errors.As(err, &apiErr):
			fmt.Fprintf(os.Stderr, "Error: %v\n", apiErr)
			os.Exit(apiErr.ExitCode())
		default:
			fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)
			os.Exit(1)
		}
	}
}
