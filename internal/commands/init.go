package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nativekit/nativekit/internal/config"
	"github.com/nativekit/nativekit/internal/generator"
	"github.com/nativekit/nativekit/internal/input"
	"github.com/nativekit/nativekit/internal/output"
	"github.com/nativekit/nativekit/internal/scaffold"
	"github.com/spf13/cobra"
)

// InitCmd creates and returns the 'init' command for scaffolding a project
func InitCmd() *cobra.Command {
	var dryRun, keepExisting bool
	var presetPath string

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Scaffold the React Native project structure",
		Long: `Scaffolds the nativekit directory tree and boilerplate in the given
directory (default: the current directory).

Four questions drive generation: bottom tab navigation, storage library,
React Navigation setup and state management. Answers can also come from a
preset file for non-interactive use:

  nativekit init --preset answers.yml

Re-running is safe: directories are created idempotently and generated files
are overwritten (pass --keep-existing to fail on conflicts instead).`,
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			root, err := resolveRoot(args)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			cfg, err := collectConfig(root, presetPath)
			if err != nil {
				if errors.Is(err, input.ErrInputUnavailable) {
					output.Error(err.Error())
					output.Step("Run from an interactive terminal, or pass --preset answers.yml")
				} else {
					output.Error(err.Error())
				}
				os.Exit(1)
			}

			output.Verbose(fmt.Sprintf("Scaffolding into: %s", root))

			scaffolder := scaffold.New(root)
			opts := generator.ExecuteOptions{
				DryRun:    dryRun,
				Overwrite: !keepExisting,
			}
			if err := scaffolder.Scaffold(context.Background(), cfg, opts); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			if dryRun {
				output.Info("Dry run complete, nothing was written")
				return
			}

			output.Banner("Project structure ready 🌱")
			output.Info("Next steps:")
			output.Step("npm install")
			output.Step("npm run ios   # or: npm run android")
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show planned operations without writing anything")
	cmd.Flags().BoolVar(&keepExisting, "keep-existing", false, "Fail instead of overwriting existing files")
	cmd.Flags().StringVar(&presetPath, "preset", "", "Answer the configuration questions from a preset file")

	return cmd
}

// resolveRoot resolves the project root from the optional positional
// argument, defaulting to the current working directory.
func resolveRoot(args []string) (string, error) {
	if len(args) == 1 {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			return "", fmt.Errorf("invalid project path %q: %w", args[0], err)
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cannot determine working directory: %w", err)
	}
	return cwd, nil
}

// collectConfig produces the scaffold configuration, preferring an explicit
// preset, then an existing scaffold record (with confirmation), then the
// interactive prompts. Prompting happens before any filesystem mutation.
func collectConfig(root, presetPath string) (config.ScaffoldConfig, error) {
	if presetPath != "" {
		output.Verbose(fmt.Sprintf("Loading preset: %s", presetPath))
		return config.LoadPreset(presetPath)
	}

	prompter, err := input.NewTerminalPrompter()
	if err != nil {
		return config.ScaffoldConfig{}, err
	}

	if record := config.FindRecord(root); record != "" {
		reuse, err := prompter.Confirm("Found "+config.RecordFile+". Reuse the recorded choices?", true)
		if err != nil {
			return config.ScaffoldConfig{}, err
		}
		if reuse {
			return config.LoadPreset(record)
		}
	}

	return scaffold.CollectOptions(prompter)
}
