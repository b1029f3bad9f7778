package memory

import (
	"context"
	"testing"

	"github.com/kasuboski/moviez/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := New()

	_, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	value := []byte("v1")
	require.NoError(t, m.Put(ctx, "k", value))
	value[0] = 'x'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", string(got), "stored values are copies")

	got[0] = 'y'
	again, _ := m.Get(ctx, "k")
	assert.Equal(t, "v1", string(again))

	require.NoError(t, m.Delete(ctx, "k"))
	_, err = m.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
