package utils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	tmpDir := t.TempDir()

	ops, err := New(tmpDir).Generate()
	require.NoError(t, err)
	require.Len(t, ops, 2)

	ctx := context.Background()
	for _, op := range ops {
		require.NoError(t, op.Execute(ctx))
	}

	for _, name := range []string{"media.ts", "responsive.ts"} {
		path := filepath.Join(tmpDir, "src", "utils", name)
		require.FileExists(t, path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotEmpty(t, content)
	}

	responsive, err := os.ReadFile(filepath.Join(tmpDir, "src", "utils", "responsive.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(responsive), "moderateScale")
}
