// Package utils generates the placeholder utility helpers every scaffolded
// project receives regardless of the chosen options.
package utils

import (
	"embed"
	"path/filepath"

	"github.com/nativekit/nativekit/internal/generator"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Generator generates the media and responsive-sizing helpers
type Generator struct {
	renderer *generator.Renderer
	root     string
}

// New creates a new utility generator rooted at the project directory
func New(root string) *Generator {
	return &Generator{
		renderer: generator.NewRenderer(),
		root:     root,
	}
}

// Generate creates operations for the two fixed utility files
func (g *Generator) Generate() ([]generator.Operation, error) {
	var ops []generator.Operation

	files := []struct {
		template string
		output   string
	}{
		{"templates/media.ts.tmpl", "media.ts"},
		{"templates/responsive.ts.tmpl", "responsive.ts"},
	}

	for _, f := range files {
		content, err := g.renderer.RenderFS(templatesFS, f.template, nil)
		if err != nil {
			return nil, err
		}

		rel := filepath.Join("src", "utils", f.output)
		ops = append(ops, &generator.WriteFileOp{
			Path:    filepath.Join(g.root, rel),
			Content: content,
			Mode:    0644,
			Label:   rel,
		})
	}

	return ops, nil
}
