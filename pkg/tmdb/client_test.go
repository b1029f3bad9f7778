package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	mhttp "github.com/kasuboski/moviez/pkg/http"
	"github.com/kasuboski/moviez/pkg/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const popularBody = `{
	"page": 1,
	"results": [
		{"id": 550, "title": "Fight Club", "poster_path": "/fc.jpg", "vote_average": 8.4, "release_date": "1999-10-15", "adult": false},
		{"id": 1399, "name": "Named Only"}
	],
	"total_pages": 1,
	"total_results": 2
}`

func TestClient_Lists(t *testing.T) {
	var mu sync.Mutex
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		mu.Lock()
		paths = append(paths, req.URL.Path)
		mu.Unlock()
		assert.Equal(t, "Bearer token", req.Header.Get("Authorization"))
		rw.Write([]byte(popularBody))
	}))
	defer server.Close()

	c, err := tmdb.New(server.URL+"/3", tmdb.WithHTTPClient(server.Client()), tmdb.WithRequestEditorFn(tmdb.SetRequestAPIKey("token")))
	require.NoError(t, err)

	ctx := context.Background()
	list, err := c.Popular(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list.Results, 2)
	assert.Equal(t, "Fight Club", *list.Results[0].Title)
	assert.Nil(t, list.Results[1].Title)
	assert.Equal(t, "Named Only", *list.Results[1].Name)

	_, err = c.TopRated(ctx, 0)
	require.NoError(t, err)
	_, err = c.Upcoming(ctx, 2)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/3/movie/popular", "/3/movie/top_rated", "/3/movie/upcoming"}, paths)
}

func TestClient_QueryKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "key", req.URL.Query().Get("api_key"))
		assert.Equal(t, "2", req.URL.Query().Get("page"))
		assert.Empty(t, req.Header.Get("Authorization"))
		rw.Write([]byte(`{"page": 2, "results": []}`))
	}))
	defer server.Close()

	c, err := tmdb.New(server.URL, tmdb.WithHTTPClient(server.Client()), tmdb.WithRequestEditorFn(tmdb.SetRequestQueryKey("key")))
	require.NoError(t, err)

	list, err := c.Upcoming(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Page)
	assert.Empty(t, list.Results)
}

func TestClient_MovieDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/movie/550":
			rw.Write([]byte(`{"id": 550, "title": "Fight Club", "runtime": 139, "genres": [{"id": 18, "name": "Drama"}], "production_companies": [{"id": 508, "name": "Regency", "logo_path": "/r.png", "origin_country": "US"}], "budget": 63000000}`))
		default:
			rw.WriteHeader(http.StatusNotFound)
			rw.Write([]byte(`{"status_code": 34, "status_message": "The resource you requested could not be found."}`))
		}
	}))
	defer server.Close()

	// requests go through the rate limited client the way the app wires it
	hc := mhttp.NewRateLimitedHTTPClient(mhttp.WithHTTPClient(server.Client()))
	c, err := tmdb.New(server.URL, tmdb.WithHTTPClient(hc))
	require.NoError(t, err)

	ctx := context.Background()
	det, err := c.MovieDetails(ctx, 550)
	require.NoError(t, err)
	assert.Equal(t, 139, *det.Runtime)
	assert.Equal(t, "Drama", det.Genres[0].Name)
	assert.Equal(t, "/r.png", *det.ProductionCompanies[0].LogoPath)
	assert.Equal(t, int64(63000000), det.Budget)

	_, err = c.MovieDetails(ctx, 1)
	require.Error(t, err)
	assert.True(t, tmdb.IsNotFound(err))

	var apiErr *tmdb.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 34, apiErr.Code)
	assert.Contains(t, apiErr.Error(), "could not be found")
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c, err := tmdb.New(server.URL, tmdb.WithHTTPClient(server.Client()))
	require.NoError(t, err)

	_, err = c.Popular(context.Background(), 0)
	require.Error(t, err)
	assert.False(t, tmdb.IsNotFound(err))
	assert.EqualError(t, err, "tmdb request failed with status 500")
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := tmdb.New("not a url")
	assert.Error(t, err)
}
