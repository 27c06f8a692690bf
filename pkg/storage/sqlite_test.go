package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLite(filepath.Join(t.TempDir(), "nested", "test.sqlite"))
	require.NoError(t, err)
	defer store.Close()

	exerciseStore(t, store)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemory())
}
