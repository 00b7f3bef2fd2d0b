package generator

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Operation represents a file system operation that can be validated and executed.
//
// Validate checks if the operation would succeed without executing it.
// overwrite=true allows replacing an existing file; directory creation is
// always idempotent.
//
// Execute performs the actual operation. This should only be called after
// Validate succeeds.
//
// Description returns a human-readable description for output
// (e.g., "Create src/utils/media.ts (312 bytes)").
type Operation interface {
	Validate(ctx context.Context, overwrite bool) error
	Execute(ctx context.Context) error
	Description() string
}

// WriteFileOp writes a file with fixed content.
//
// Validation behavior:
//   - Read-only: never touches the filesystem, so a dry run stays a dry run
//   - Rejects an existing file unless overwrite=true
//   - Allows empty content (zero bytes) but rejects nil content
//
// Execution behavior:
//   - Creates parent directories if needed
//   - Writes (or replaces) the file with the specified Mode
type WriteFileOp struct {
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
	Label   string      // Display path for log output; Path is used when empty
}

func (op *WriteFileOp) Validate(ctx context.Context, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(op.Path); err == nil {
			return fmt.Errorf("file already exists: %s", op.Path)
		}
	}

	// Reject nil content (empty is OK)
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	dir := filepath.Dir(op.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(op.Path, op.Content, op.Mode)
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.display(), len(op.Content))
}

func (op *WriteFileOp) display() string {
	if op.Label != "" {
		return op.Label
	}
	return op.Path
}

// MkdirOp creates a directory and any missing parents.
//
// Creating a directory that already exists is a no-op success. A path that
// exists as a regular file fails validation.
type MkdirOp struct {
	Path  string      // Directory path to create
	Mode  fs.FileMode // Directory permissions (e.g., 0755)
	Label string      // Display path for log output; Path is used when empty
}

func (op *MkdirOp) Validate(ctx context.Context, overwrite bool) error {
	info, err := os.Stat(op.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cannot stat %s: %w", op.Path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path exists and is not a directory: %s", op.Path)
	}
	return nil
}

func (op *MkdirOp) Execute(ctx context.Context) error {
	if err := os.MkdirAll(op.Path, op.Mode); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", op.Path, err)
	}
	return nil
}

func (op *MkdirOp) Description() string {
	return fmt.Sprintf("Create directory %s", op.display())
}

func (op *MkdirOp) display() string {
	if op.Label != "" {
		return op.Label
	}
	return op.Path
}
