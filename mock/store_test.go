package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/mdtools"
	"github.com/fwojciec/mdtools/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where FileStore is expected
	var _ mdtools.FileStore = &mock.FileStore{}
}

func TestFileStore_WriteFile(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteFileFn", func(t *testing.T) {
		t.Parallel()

		var gotPath string
		var gotData []byte
		s := &mock.FileStore{
			WriteFileFn: func(_ context.Context, path string, data []byte) (bool, error) {
				gotPath, gotData = path, data
				return true, nil
			},
		}

		changed, err := s.WriteFile(context.Background(), "README.md", []byte("# Title\n"))

		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "README.md", gotPath)
		assert.Equal(t, "# Title\n", string(gotData))
	})
}
