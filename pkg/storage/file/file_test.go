package file

import (
	"context"
	"testing"

	"github.com/kasuboski/moviez/pkg/storage"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()

	store, err := New(fs, "/data/moviez")
	require.NoError(t, err)

	_, err = store.Get(ctx, "wishlist:v1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Put(ctx, "wishlist:v1", []byte(`{"version":0}`)))

	exists, err := afero.Exists(fs, "/data/moviez/wishlist:v1.json")
	require.NoError(t, err)
	assert.True(t, exists)

	tmp, err := afero.Exists(fs, "/data/moviez/wishlist:v1.json.tmp")
	require.NoError(t, err)
	assert.False(t, tmp)

	value, err := store.Get(ctx, "wishlist:v1")
	require.NoError(t, err)
	assert.Equal(t, `{"version":0}`, string(value))

	require.NoError(t, store.Put(ctx, "wishlist:v1", []byte(`{"version":1}`)))
	value, err = store.Get(ctx, "wishlist:v1")
	require.NoError(t, err)
	assert.Equal(t, `{"version":1}`, string(value))

	require.NoError(t, store.Delete(ctx, "wishlist:v1"))
	_, err = store.Get(ctx, "wishlist:v1")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.NoError(t, store.Delete(ctx, "wishlist:v1"))
}

func TestFile_KeysAreEscaped(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()

	store, err := New(fs, "/data")
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "../escape", []byte("x")))

	exists, err := afero.Exists(fs, "/data/..%2Fescape.json")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFile_ReadOnly(t *testing.T) {
	ctx := context.Background()
	base := afero.NewMemMapFs()
	require.NoError(t, base.MkdirAll("/data", 0o750))

	_, err := New(afero.NewReadOnlyFs(base), "/data")
	assert.Error(t, err)

	store := &File{fs: afero.NewReadOnlyFs(base), dir: "/data"}
	err = store.Put(ctx, "wishlist:v1", []byte("x"))
	assert.Error(t, err)
}
