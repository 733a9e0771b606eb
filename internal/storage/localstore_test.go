package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	in := map[string]int{"a": 1, "b": 2}
	require.NoError(t, store.Set("counts", in))

	var out map[string]int
	require.True(t, store.Get("counts", &out))
	assert.Equal(t, in, out)
}

func TestStoreMissingKey(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	var out []string
	assert.False(t, store.Get("nothing", &out))
	assert.Nil(t, out)
}

func TestStoreCorruptValueReadsAsAbsent(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "cart.json"), []byte("{not json"), 0o600))

	var out []string
	assert.False(t, store.Get("cart", &out))
}

func TestStoreDeleteAbsentKeyIsNoop(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete("never-set"))
}

func TestStoreOverwrite(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("token", "first"))
	require.NoError(t, store.Set("token", "second"))

	var out string
	require.True(t, store.Get("token", &out))
	assert.Equal(t, "second", out)
}

func TestStoreRequiresDirectory(t *testing.T) {
	_, err := NewStore("  ")
	assert.Error(t, err)
}
