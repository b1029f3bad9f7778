package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/kasuboski/moviez/config"
	"github.com/kasuboski/moviez/pkg/movies"
	"github.com/kasuboski/moviez/pkg/storage"
	"github.com/kasuboski/moviez/pkg/storage/file"
	"github.com/kasuboski/moviez/pkg/storage/memory"
	"github.com/kasuboski/moviez/pkg/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("sqlite", func(t *testing.T) {
		s, err := openStorage(ctx, config.Storage{Driver: storage.DriverSQLite, FilePath: filepath.Join(t.TempDir(), "moviez.sqlite")})
		require.NoError(t, err)
		defer s.Close()
		assert.IsType(t, &sqlite.SQLite{}, s)

		require.NoError(t, s.Put(ctx, "k", []byte("v")))
		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("file", func(t *testing.T) {
		s, err := openStorage(ctx, config.Storage{Driver: storage.DriverFile, Dir: t.TempDir()})
		require.NoError(t, err)
		assert.IsType(t, &file.File{}, s)
	})

	t.Run("memory", func(t *testing.T) {
		s, err := openStorage(ctx, config.Storage{Driver: storage.DriverMemory})
		require.NoError(t, err)
		assert.IsType(t, &memory.Memory{}, s)
	})

	t.Run("ephemeral overrides the driver", func(t *testing.T) {
		ephemeral = true
		defer func() { ephemeral = false }()

		s, err := openStorage(ctx, config.Storage{Driver: "bogus"})
		require.NoError(t, err)
		assert.IsType(t, &memory.Memory{}, s)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := openStorage(ctx, config.Storage{Driver: "bogus"})
		assert.ErrorContains(t, err, `unknown storage driver "bogus"`)
	})
}

func TestWriteFilms(t *testing.T) {
	films, err := movies.NewMock().TopRated(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeFilms(&buf, films))
	out := buf.String()
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "The Shawshank Redemption")
	assert.Contains(t, out, "Top Rated")

	outputJSON = true
	defer func() { outputJSON = false }()

	buf.Reset()
	require.NoError(t, writeFilms(&buf, films))
	assert.Contains(t, buf.String(), `"title": "The Godfather"`)
}

func TestDescribeFilm(t *testing.T) {
	film, err := movies.NewMock().Movie(context.Background(), 1)
	require.NoError(t, err)

	out := describeFilm(film)
	assert.Contains(t, out, "The Shawshank Redemption (1994)")
	assert.Contains(t, out, "genres:")
	assert.Contains(t, out, "budget:   $")
}

func TestRootCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"serve", "browse", "list", "get", "wishlist"} {
		assert.True(t, names[want], want)
	}
}
