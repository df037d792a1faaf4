package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdtools"
)

// Ensure LoggingFileStore implements mdtools.FileStore.
var _ mdtools.FileStore = (*LoggingFileStore)(nil)

// LoggingFileStore wraps a FileStore with debug logging.
type LoggingFileStore struct {
	next   mdtools.FileStore
	logger *slog.Logger
}

// NewLoggingFileStore creates a new LoggingFileStore.
func NewLoggingFileStore(next mdtools.FileStore, logger *slog.Logger) *LoggingFileStore {
	return &LoggingFileStore{next: next, logger: logger}
}

// ReadFile delegates to the wrapped store and logs the operation.
func (s *LoggingFileStore) ReadFile(ctx context.Context, path string) (data []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Info("read file",
			"path", path,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadFile(ctx, path)
}

// WriteFile delegates to the wrapped store and logs the operation.
func (s *LoggingFileStore) WriteFile(ctx context.Context, path string, data []byte) (changed bool, err error) {
	defer func(begin time.Time) {
		s.logger.Info("write file",
			"path", path,
			"bytes", len(data),
			"changed", changed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteFile(ctx, path, data)
}
