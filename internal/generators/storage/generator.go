// Package storage generates the key-value storage helper for the chosen
// backend. Every backend exposes the same four operations: setItem, getItem,
// deleteItem and clearAll.
package storage

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/nativekit/nativekit/internal/config"
	"github.com/nativekit/nativekit/internal/generator"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Generator generates the storage helper file
type Generator struct {
	renderer *generator.Renderer
	root     string
}

// New creates a new storage generator rooted at the project directory
func New(root string) *Generator {
	return &Generator{
		renderer: generator.NewRenderer(),
		root:     root,
	}
}

// Generate creates the operation for the chosen backend. config.StorageNone
// yields no operations.
func (g *Generator) Generate(backend config.StorageBackend) ([]generator.Operation, error) {
	var tmplPath, output string

	switch backend {
	case config.StorageAsyncStorage:
		tmplPath = "templates/async_storage.ts.tmpl"
		output = "asyncStorage.ts"
	case config.StorageMMKV:
		tmplPath = "templates/mmkv_storage.ts.tmpl"
		output = "mmkvStorage.ts"
	case config.StorageNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", backend)
	}

	content, err := g.renderer.RenderFS(templatesFS, tmplPath, nil)
	if err != nil {
		return nil, err
	}

	rel := filepath.Join("src", "utils", output)
	return []generator.Operation{
		&generator.WriteFileOp{
			Path:    filepath.Join(g.root, rel),
			Content: content,
			Mode:    0644,
			Label:   rel,
		},
	}, nil
}
