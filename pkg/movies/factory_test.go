package movies

import (
	"testing"

	"github.com/kasuboski/moviez/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("no credentials uses the demo catalogue", func(t *testing.T) {
		p, err := NewProvider(config.TMDB{Host: "api.themoviedb.org"})
		require.NoError(t, err)
		assert.Equal(t, KindMock, p.Kind())
	})

	t.Run("force mock wins over credentials", func(t *testing.T) {
		p, err := NewProvider(config.TMDB{Host: "api.themoviedb.org", Token: "token", ForceMock: true})
		require.NoError(t, err)
		assert.Equal(t, KindMock, p.Kind())
	})

	t.Run("credentials use a cached live provider", func(t *testing.T) {
		p, err := NewProvider(config.TMDB{Scheme: "https", Host: "api.themoviedb.org", BasePath: "/3", APIKey: "key"})
		require.NoError(t, err)
		assert.Equal(t, KindLive, p.Kind())
		assert.IsType(t, &Cached{}, p)
	})

	t.Run("credentials without host", func(t *testing.T) {
		_, err := NewProvider(config.TMDB{Token: "token"})
		assert.Error(t, err)
	})
}
