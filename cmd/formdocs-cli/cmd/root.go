package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each call returns a fresh tree so flag
// state never leaks between invocations.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "formdocs-cli",
		Short: "Formdocs CLI tool",
		Long: `Formdocs CLI is a command-line interface for the documentation site.

Available commands:
  content      Validate, inspect and export the localized content mapping
  new-module   Scaffold a new site module
  version      Print the version number

Use "formdocs-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newContentCmd())
	root.AddCommand(newModuleCmd())
	return root
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
