package tmdb

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestParseMovieDetailsResponse(t *testing.T) {
	t.Run("decodes details", func(t *testing.T) {
		res := response(http.StatusOK, `{
			"id": 155,
			"title": "The Dark Knight",
			"backdrop_path": "/backdrop.jpg",
			"runtime": 152,
			"genres": [{"id": 28, "name": "Action"}],
			"production_companies": [{"id": 174, "name": "Warner Bros. Pictures", "logo_path": null, "origin_country": "US"}],
			"budget": 185000000
		}`)

		details, err := parseMovieDetailsResponse(res)
		require.NoError(t, err)
		assert.Equal(t, 155, details.ID)
		require.NotNil(t, details.Title)
		assert.Equal(t, "The Dark Knight", *details.Title)
		require.NotNil(t, details.BackdropPath)
		assert.Equal(t, "/backdrop.jpg", *details.BackdropPath)
		require.NotNil(t, details.Runtime)
		assert.Equal(t, 152, *details.Runtime)
		assert.Equal(t, "Action", details.Genres[0].Name)
		assert.Nil(t, details.ProductionCompanies[0].LogoPath)
		assert.Equal(t, int64(185000000), details.Budget)
	})

	t.Run("not found", func(t *testing.T) {
		res := response(http.StatusNotFound, `{"status_code": 34, "status_message": "The resource you requested could not be found."}`)

		_, err := parseMovieDetailsResponse(res)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 34, apiErr.Code)
		assert.Contains(t, err.Error(), "could not be found")
	})

	t.Run("server error with a non json body", func(t *testing.T) {
		_, err := parseMovieDetailsResponse(response(http.StatusBadGateway, "<html>bad gateway</html>"))
		require.Error(t, err)
		assert.False(t, IsNotFound(err))
		assert.EqualError(t, err, "tmdb request failed with status 502")
	})

	for name, body := range map[string]string{
		"missing id":   `{"title": "no id"}`,
		"empty object": `{}`,
		"empty body":   ``,
		"invalid json": `{"id": `,
		"wrong types":  `{"id": "one"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parseMovieDetailsResponse(response(http.StatusOK, body))
			assert.Error(t, err)
		})
	}
}
