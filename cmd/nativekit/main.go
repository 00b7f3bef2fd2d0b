package main

import (
	"os"

	"github.com/nativekit/nativekit/internal/commands"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.InitCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
