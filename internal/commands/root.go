// Package commands wires the nativekit CLI.
package commands

import (
	"github.com/nativekit/nativekit"
	"github.com/nativekit/nativekit/internal/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the nativekit CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "nativekit",
		Short: "Scaffolder for React Native project structure",
		Long: `nativekit materializes a clean React Native (TypeScript) project layout.

It asks a handful of questions and generates:
• A feature-oriented src/ directory tree
• Navigation, storage and state-management boilerplate
• A tsconfig.json with path aliases for every src subdirectory`,
		Version: nativekit.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
