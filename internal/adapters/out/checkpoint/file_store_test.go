package checkpoint_test

import (
	"os"
	"path/filepath"
	"testing"

	"proofparcel/internal/adapters/out/checkpoint"
	"proofparcel/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	t.Run("missing file means no checkpoint", func(t *testing.T) {
		store := checkpoint.NewFileStore(filepath.Join(t.TempDir(), "state.json"))

		_, err := store.Load(t.Context())

		require.ErrorIs(t, err, ports.ErrNoCheckpoint)
	})

	t.Run("latest save wins", func(t *testing.T) {
		// Given
		path := filepath.Join(t.TempDir(), "nested", "state.json")
		store := checkpoint.NewFileStore(path)

		// When
		require.NoError(t, store.Save(t.Context(), []byte("first")))
		require.NoError(t, store.Save(t.Context(), []byte("second")))

		// Then
		blob, err := store.Load(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), blob)

		entries, err := os.ReadDir(filepath.Dir(path))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary files are cleaned up")
	})
}
