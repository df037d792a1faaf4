package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/mdtools"
	"github.com/fwojciec/mdtools/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure FileStore implements mdtools.FileStore at compile time.
var _ mdtools.FileStore = (*fs.FileStore)(nil)

func TestFileStore_ReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads file contents", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "README.md")
		require.NoError(t, os.WriteFile(path, []byte("# Title\n"), 0644))

		data, err := fs.NewFileStore().ReadFile(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "# Title\n", string(data))
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.md")

		_, err := fs.NewFileStore().ReadFile(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, mdtools.ENOTFOUND, mdtools.ErrorCode(err))
		assert.Equal(t, "file not found: "+path, mdtools.ErrorMessage(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewFileStore().ReadFile(ctx, "README.md")

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestFileStore_WriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates file and parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "nested", "table.md")

		changed, err := fs.NewFileStore().WriteFile(context.Background(), path, []byte("| a |\n"))

		require.NoError(t, err)
		assert.True(t, changed)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "| a |\n", string(content))
	})

	t.Run("replaces existing content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "README.md")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0600))

		changed, err := fs.NewFileStore().WriteFile(context.Background(), path, []byte("new"))

		require.NoError(t, err)
		assert.True(t, changed)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("skips identical content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "README.md")
		require.NoError(t, os.WriteFile(path, []byte("same"), 0644))

		changed, err := fs.NewFileStore().WriteFile(context.Background(), path, []byte("same"))

		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "README.md")

		_, err := fs.NewFileStore().WriteFile(context.Background(), path, []byte("content"))
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "README.md", entries[0].Name())
	})

	t.Run("rejects directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		_, err := fs.NewFileStore().WriteFile(context.Background(), dir, []byte("content"))

		require.Error(t, err)
		assert.Equal(t, mdtools.EINVALID, mdtools.ErrorCode(err))
	})
	t.Run("writes through symlinks", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := filepath.Join(dir, "docs", "README.md")
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
		require.NoError(t, os.WriteFile(target, []byte("old\n"), 0644))
		link := filepath.Join(dir, "README.md")
		require.NoError(t, os.Symlink(target, link))

		changed, err := fs.NewFileStore().WriteFile(context.Background(), link, []byte("new\n"))

		require.NoError(t, err)
		assert.True(t, changed)
		info, err := os.Lstat(link)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&os.ModeSymlink)
		content, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "new\n", string(content))
	})
}
