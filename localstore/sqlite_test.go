package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGetRoundtrip(t *testing.T) {
	store := openTestStore(t)

	value, ok, err := store.Get("vitanza_cart:guest_1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)

	require.NoError(t, store.Set("vitanza_cart:guest_1", `[{"quantity":2}]`))

	value, ok, err = store.Get("vitanza_cart:guest_1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"quantity":2}]`, value)
}

func TestSetOverwrites(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("vitanza_goal:guest_1", "fat_loss"))
	require.NoError(t, store.Set("vitanza_goal:guest_1", "muscle_gain"))

	value, ok, err := store.Get("vitanza_goal:guest_1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "muscle_gain", value)
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Set("key", "value"))
	require.NoError(t, store.Delete("key"))

	_, ok, err := store.Get("key")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting a missing key is not an error.
	require.NoError(t, store.Delete("key"))
}

func TestValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("key", "value"))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get("key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "value", value)
}
