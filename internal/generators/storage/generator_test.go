package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nativekit/nativekit/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_AsyncStorage(t *testing.T) {
	tmpDir := t.TempDir()

	ops, err := New(tmpDir).Generate(config.StorageAsyncStorage)
	require.NoError(t, err)
	require.Len(t, ops, 1)

	ctx := context.Background()
	require.NoError(t, ops[0].Execute(ctx))

	path := filepath.Join(tmpDir, "src", "utils", "asyncStorage.ts")
	require.FileExists(t, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), "@react-native-async-storage/async-storage")
	assert.Contains(t, string(content), "export const setItem")
	assert.Contains(t, string(content), "export const getItem")
	assert.Contains(t, string(content), "export const deleteItem")
	assert.Contains(t, string(content), "export const clearAll")
	// Failures never propagate to callers
	assert.Contains(t, string(content), "catch (error)")
}

func TestGenerate_MMKV(t *testing.T) {
	tmpDir := t.TempDir()

	ops, err := New(tmpDir).Generate(config.StorageMMKV)
	require.NoError(t, err)
	require.Len(t, ops, 1)

	ctx := context.Background()
	require.NoError(t, ops[0].Execute(ctx))

	path := filepath.Join(tmpDir, "src", "utils", "mmkvStorage.ts")
	require.FileExists(t, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), "react-native-mmkv")
	assert.Contains(t, string(content), "export const setItem")
	assert.Contains(t, string(content), "export const clearAll")
}

func TestGenerate_None(t *testing.T) {
	ops, err := New(t.TempDir()).Generate(config.StorageNone)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestGenerate_UnknownBackend(t *testing.T) {
	_, err := New(t.TempDir()).Generate("sqlite")
	assert.Error(t, err)
}
