// Package cmd provides CLI commands for outlinectl.
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ar4mirez/outlinectl/internal/config"
)

// app carries the dependencies every command handler needs. It is built
// once in Execute and passed down, so there is no ambient global state.
type app struct {
	verbose    bool
	loadConfig func() (*config.Config, error)
	stdout     io.Writer
}

// logger returns the request logger: a development-config zap logger on
// stderr under --verbose, a nop logger otherwise.
func (a *app) logger() *zap.Logger {
	if !a.verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopmentConfig().Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// newRootCmd builds the full command tree from the registry.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "outlinectl",
		Short: "Outline CLI - Command-line tool for the Outline wiki API",
		Long: `outlinectl is a command-line tool for interacting with an Outline server.

Use outlinectl to:
  - Create, list, search, and manage documents and collections
  - Manage users, groups, and their memberships
  - Inspect shares, stars, comments, revisions, and events`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
	for _, group := range registry {
		rootCmd.AddCommand(newGroupCmd(a, group))
	}

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	a := &app{
		loadConfig: config.Load,
		stdout:     os.Stdout,
	}
	return newRootCmd(a).Execute()
}
