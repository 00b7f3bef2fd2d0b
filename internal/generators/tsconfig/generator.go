// Package tsconfig generates the TypeScript compiler configuration with one
// path alias per top-level src subdirectory.
package tsconfig

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/nativekit/nativekit/internal/generator"
)

// BaseConfig is the shared preset every generated tsconfig extends.
const BaseConfig = "@tsconfig/react-native/tsconfig.json"

// Aliased lists the top-level src subdirectories that receive a path alias.
var Aliased = []string{
	"assets",
	"components",
	"constants",
	"context",
	"features",
	"hooks",
	"i18n",
	"navigation",
	"screens",
	"services",
	"store",
	"theme",
	"types",
	"utils",
}

// Config models the generated tsconfig.json document.
type Config struct {
	Extends         string          `json:"extends"`
	CompilerOptions CompilerOptions `json:"compilerOptions"`
}

// CompilerOptions holds the fixed compiler settings plus the alias mapping.
type CompilerOptions struct {
	TypeRoots []string            `json:"typeRoots"`
	Types     []string            `json:"types"`
	BaseURL   string              `json:"baseUrl"`
	Paths     map[string][]string `json:"paths"`
}

// Generator generates tsconfig.json at the project root
type Generator struct {
	root string
}

// New creates a new tsconfig generator rooted at the project directory
func New(root string) *Generator {
	return &Generator{root: root}
}

// Generate creates the operation that writes tsconfig.json
func (g *Generator) Generate() ([]generator.Operation, error) {
	paths := make(map[string][]string, len(Aliased))
	for _, dir := range Aliased {
		paths[fmt.Sprintf("@%s/*", dir)] = []string{dir + "/*"}
	}

	cfg := Config{
		Extends: BaseConfig,
		CompilerOptions: CompilerOptions{
			TypeRoots: []string{"./node_modules/@types", "./src/types"},
			Types:     []string{"react-native"},
			BaseURL:   "./src",
			Paths:     paths,
		},
	}

	content, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tsconfig: %w", err)
	}
	content = append(content, '\n')

	return []generator.Operation{
		&generator.WriteFileOp{
			Path:    filepath.Join(g.root, "tsconfig.json"),
			Content: content,
			Mode:    0644,
			Label:   "tsconfig.json",
		},
	}, nil
}
