// Package fs provides file-based storage for markdown documents.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mdtools"
	"github.com/google/uuid"
)

// Ensure FileStore implements mdtools.FileStore at compile time.
var _ mdtools.FileStore = (*FileStore)(nil)

// FileStore implements mdtools.FileStore on the local filesystem.
// Writes are atomic: data goes to a temporary file in the target directory
// which is then renamed over the target.
type FileStore struct{}

// NewFileStore creates a new FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

func (s *FileStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, mdtools.Errorf(mdtools.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *FileStore) WriteFile(ctx context.Context, path string, data []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	// Write through symlinks so the link survives the rename.
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return false, mdtools.Errorf(mdtools.EINVALID, "%s is a directory", path)
		}
		mode = info.Mode().Perm()
		if same, err := sameContent(path, data); err != nil {
			return false, err
		} else if same {
			return false, nil
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, err
	}

	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, data, mode); err != nil {
		return false, err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return false, err
	}
	return true, nil
}

// sameContent reports whether the file at path hashes to the same value as data.
func sameContent(path string, data []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return len(existing) == len(data) && xxhash.Sum64(existing) == xxhash.Sum64(data), nil
}
