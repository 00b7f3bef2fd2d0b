// Package navigation generates the root navigation entry point and the
// navigation-reference helper.
package navigation

import (
	"embed"
	"path/filepath"

	"github.com/nativekit/nativekit/internal/generator"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Generator generates navigation setup files
type Generator struct {
	renderer *generator.Renderer
	root     string
}

// New creates a new navigation generator rooted at the project directory
func New(root string) *Generator {
	return &Generator{
		renderer: generator.NewRenderer(),
		root:     root,
	}
}

// Generate creates operations for the root navigator and the ref helper
func (g *Generator) Generate() ([]generator.Operation, error) {
	var ops []generator.Operation

	files := []struct {
		template string
		output   string
	}{
		{"templates/root_navigator.tsx.tmpl", "index.tsx"},
		{"templates/navigation_ref.ts.tmpl", "navigationRef.ts"},
	}

	for _, f := range files {
		content, err := g.renderer.RenderFS(templatesFS, f.template, nil)
		if err != nil {
			return nil, err
		}

		rel := filepath.Join("src", "navigation", f.output)
		ops = append(ops, &generator.WriteFileOp{
			Path:    filepath.Join(g.root, rel),
			Content: content,
			Mode:    0644,
			Label:   rel,
		})
	}

	return ops, nil
}
