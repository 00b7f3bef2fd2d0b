// Package scaffold orchestrates project generation: it collects the four
// configuration choices, materializes the base directory tree and runs the
// conditional and fixed generators against a single root path.
package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/nativekit/nativekit/internal/config"
	"github.com/nativekit/nativekit/internal/generator"
	"github.com/nativekit/nativekit/internal/generators/navigation"
	"github.com/nativekit/nativekit/internal/generators/state"
	"github.com/nativekit/nativekit/internal/generators/storage"
	"github.com/nativekit/nativekit/internal/generators/tabs"
	"github.com/nativekit/nativekit/internal/generators/tsconfig"
	"github.com/nativekit/nativekit/internal/generators/utils"
	"github.com/nativekit/nativekit/internal/output"
	"gopkg.in/yaml.v3"
)

// Scaffolder plans and executes project generation under a root path.
type Scaffolder struct {
	root string
}

// New creates a scaffolder rooted at the given directory.
func New(root string) *Scaffolder {
	return &Scaffolder{root: root}
}

// Root returns the resolved project root.
func (s *Scaffolder) Root() string {
	return s.root
}

// Plan assembles the full operation list for a configuration: base
// directories, the gated generators, then the fixed outputs and the scaffold
// record. Generators only touch disjoint paths, so their relative order does
// not affect the resulting file set.
func (s *Scaffolder) Plan(cfg config.ScaffoldConfig) ([]generator.Operation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var ops []generator.Operation

	for _, dir := range BaseDirs {
		ops = append(ops, &generator.MkdirOp{
			Path:  filepath.Join(s.root, dir),
			Mode:  0755,
			Label: dir,
		})
	}

	if cfg.BottomTabs {
		output.Verbose("Planning bottom tab navigator")
		tabOps, err := tabs.New(s.root).Generate()
		if err != nil {
			return nil, fmt.Errorf("bottom tab generation failed: %w", err)
		}
		ops = append(ops, tabOps...)
	}

	output.Verbose(fmt.Sprintf("Planning storage helper: %s", cfg.Storage))
	storageOps, err := storage.New(s.root).Generate(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("storage generation failed: %w", err)
	}
	ops = append(ops, storageOps...)

	if cfg.Navigation {
		output.Verbose("Planning navigation setup")
		navOps, err := navigation.New(s.root).Generate()
		if err != nil {
			return nil, fmt.Errorf("navigation generation failed: %w", err)
		}
		ops = append(ops, navOps...)
	}

	output.Verbose(fmt.Sprintf("Planning state management: %s", cfg.StateManagement))
	stateOps, err := state.New(s.root).Generate(cfg.StateManagement)
	if err != nil {
		return nil, fmt.Errorf("state management generation failed: %w", err)
	}
	ops = append(ops, stateOps...)

	utilOps, err := utils.New(s.root).Generate()
	if err != nil {
		return nil, fmt.Errorf("utility generation failed: %w", err)
	}
	ops = append(ops, utilOps...)

	tsOps, err := tsconfig.New(s.root).Generate()
	if err != nil {
		return nil, fmt.Errorf("tsconfig generation failed: %w", err)
	}
	ops = append(ops, tsOps...)

	recordOp, err := s.recordOp(cfg)
	if err != nil {
		return nil, err
	}
	ops = append(ops, recordOp)

	return ops, nil
}

// Scaffold plans and executes generation in one step.
func (s *Scaffolder) Scaffold(ctx context.Context, cfg config.ScaffoldConfig, opts generator.ExecuteOptions) error {
	ops, err := s.Plan(cfg)
	if err != nil {
		return err
	}
	return generator.Execute(ctx, ops, opts)
}

// recordOp builds the operation that writes the scaffold record, capturing
// the chosen options so a later run can reuse them as a preset.
func (s *Scaffolder) recordOp(cfg config.ScaffoldConfig) (generator.Operation, error) {
	content, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal scaffold record: %w", err)
	}

	return &generator.WriteFileOp{
		Path:    filepath.Join(s.root, config.RecordFile),
		Content: content,
		Mode:    0644,
		Label:   config.RecordFile,
	}, nil
}
