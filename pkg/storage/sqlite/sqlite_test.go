package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kasuboski/moviez/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initSqlite(t *testing.T, ctx context.Context) *SQLite {
	t.Helper()
	store, err := New(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestMigration_FreshDatabase(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	version, dirty, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
}

func TestMigration_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "wishlist:v1", []byte(`{}`)))
	require.NoError(t, store.Close())

	store, err = New(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	version, _, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	value, err := store.Get(ctx, "wishlist:v1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{}`), value)
}

func TestClientStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = store.Put(ctx, "wishlist:v1", []byte(`{"version":0}`))
	require.NoError(t, err)

	value, err := store.Get(ctx, "wishlist:v1")
	require.NoError(t, err)
	assert.Equal(t, `{"version":0}`, string(value))

	err = store.Put(ctx, "wishlist:v1", []byte(`{"version":1}`))
	require.NoError(t, err)

	value, err = store.Get(ctx, "wishlist:v1")
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(value))

	err = store.Delete(ctx, "wishlist:v1")
	require.NoError(t, err)

	_, err = store.Get(ctx, "wishlist:v1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NoError(t, store.Delete(ctx, "wishlist:v1"))
}
