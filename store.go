package mdtools

import "context"

// FileStore reads and writes markdown files.
type FileStore interface {
	// ReadFile returns the contents of the file at path.
	// Returns ENOTFOUND if the file does not exist.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile replaces the file at path with data, creating parent
	// directories as needed. It reports whether the file changed; writing
	// identical content is a no-op.
	WriteFile(ctx context.Context, path string, data []byte) (changed bool, err error)
}
