// Package state generates the state-management boilerplate for the chosen
// library. Every variant ships the same minimal counter example: value starts
// at 0, increment adds 1, decrement subtracts 1.
package state

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/nativekit/nativekit/internal/config"
	"github.com/nativekit/nativekit/internal/generator"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Generator generates state-management boilerplate
type Generator struct {
	renderer *generator.Renderer
	root     string
}

// New creates a new state generator rooted at the project directory
func New(root string) *Generator {
	return &Generator{
		renderer: generator.NewRenderer(),
		root:     root,
	}
}

// Generate creates operations for the chosen library. config.StateNone yields
// no operations.
func (g *Generator) Generate(library config.StateLibrary) ([]generator.Operation, error) {
	var files []struct {
		template string
		output   string
	}

	switch library {
	case config.StateReduxToolkit:
		files = []struct {
			template string
			output   string
		}{
			{"templates/redux_store.ts.tmpl", filepath.Join("src", "store", "index.ts")},
			{"templates/counter_slice.ts.tmpl", filepath.Join("src", "store", "counterSlice.ts")},
		}
	case config.StateZustand:
		files = []struct {
			template string
			output   string
		}{
			{"templates/zustand_store.ts.tmpl", filepath.Join("src", "store", "useCounterStore.ts")},
		}
	case config.StateContextAPI:
		files = []struct {
			template string
			output   string
		}{
			{"templates/counter_context.tsx.tmpl", filepath.Join("src", "context", "CounterContext.tsx")},
		}
	case config.StateNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown state library: %q", library)
	}

	var ops []generator.Operation
	for _, f := range files {
		content, err := g.renderer.RenderFS(templatesFS, f.template, nil)
		if err != nil {
			return nil, err
		}

		ops = append(ops, &generator.WriteFileOp{
			Path:    filepath.Join(g.root, f.output),
			Content: content,
			Mode:    0644,
			Label:   f.output,
		})
	}

	return ops, nil
}
