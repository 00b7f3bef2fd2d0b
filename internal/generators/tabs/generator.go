// Package tabs generates the bottom-tab navigator placeholder and its
// icon-asset directory.
package tabs

import (
	"embed"
	"path/filepath"

	"github.com/nativekit/nativekit/internal/generator"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// IconDir is the icon-asset directory created for tab bar icons,
// relative to the project root.
var IconDir = filepath.Join("src", "assets", "tabIcons")

// Generator generates bottom-tab navigation files
type Generator struct {
	renderer *generator.Renderer
	root     string
}

// New creates a new bottom-tab generator rooted at the project directory
func New(root string) *Generator {
	return &Generator{
		renderer: generator.NewRenderer(),
		root:     root,
	}
}

// Generate creates operations for the icon directory and the placeholder
// navigator
func (g *Generator) Generate() ([]generator.Operation, error) {
	content, err := g.renderer.RenderFS(templatesFS, "templates/bottom_tabs.tsx.tmpl", nil)
	if err != nil {
		return nil, err
	}

	rel := filepath.Join("src", "navigation", "BottomTabNavigator.tsx")
	return []generator.Operation{
		&generator.MkdirOp{
			Path:  filepath.Join(g.root, IconDir),
			Mode:  0755,
			Label: IconDir,
		},
		&generator.WriteFileOp{
			Path:    filepath.Join(g.root, rel),
			Content: content,
			Mode:    0644,
			Label:   rel,
		},
	}, nil
}
