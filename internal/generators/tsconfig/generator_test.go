package tsconfig

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tmpDir := t.TempDir()

	ops, err := New(tmpDir).Generate()
	require.NoError(t, err)
	require.Len(t, ops, 1)

	ctx := context.Background()
	require.NoError(t, ops[0].Execute(ctx))

	data, err := os.ReadFile(filepath.Join(tmpDir, "tsconfig.json"))
	require.NoError(t, err)

	var doc Config
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, BaseConfig, doc.Extends)
	assert.Equal(t, "./src", doc.CompilerOptions.BaseURL)
	assert.Equal(t, []string{"./node_modules/@types", "./src/types"}, doc.CompilerOptions.TypeRoots)
	assert.Equal(t, []string{"react-native"}, doc.CompilerOptions.Types)

	require.Len(t, doc.CompilerOptions.Paths, 14)
	for _, dir := range Aliased {
		alias := "@" + dir + "/*"
		require.Contains(t, doc.CompilerOptions.Paths, alias)
		assert.Equal(t, []string{dir + "/*"}, doc.CompilerOptions.Paths[alias])
	}
}

func TestGenerate_PrettyPrinted(t *testing.T) {
	tmpDir := t.TempDir()

	ops, err := New(tmpDir).Generate()
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, ops[0].Execute(ctx))

	data, err := os.ReadFile(filepath.Join(tmpDir, "tsconfig.json"))
	require.NoError(t, err)

	// 2-space indentation and a trailing newline
	assert.Contains(t, string(data), "\n  \"compilerOptions\"")
	assert.True(t, strings.HasSuffix(string(data), "\n"))
}
