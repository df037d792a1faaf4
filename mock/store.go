package mock

import (
	"context"

	"github.com/fwojciec/mdtools"
)

var _ mdtools.FileStore = (*FileStore)(nil)

// FileStore is a mock implementation of mdtools.FileStore.
type FileStore struct {
	ReadFileFn  func(ctx context.Context, path string) ([]byte, error)
	WriteFileFn func(ctx context.Context, path string, data []byte) (bool, error)
}

func (s *FileStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return s.ReadFileFn(ctx, path)
}

func (s *FileStore) WriteFile(ctx context.Context, path string, data []byte) (bool, error) {
	return s.WriteFileFn(ctx, path, data)
}
