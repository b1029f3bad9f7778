// Package tmdb is a small client for the movie endpoints of The Movie Database v3 API.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_tmdb.go github.com/kasuboski/moviez/pkg/tmdb ITmdb

// DefaultBaseURL is the v3 API root
const DefaultBaseURL = "https://api.themoviedb.org/3"

type ITmdb interface {
	Popular(ctx context.Context, page int) (*MovieList, error)
	TopRated(ctx context.Context, page int) (*MovieList, error)
	Upcoming(ctx context.Context, page int) (*MovieList, error)
	MovieDetails(ctx context.Context, id int) (*MovieDetails, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RequestEditorFn is applied to every outgoing request, e.g. to authenticate it
type RequestEditorFn func(ctx context.Context, req *http.Request) error

type TMDB struct {
	baseURL *url.URL
	client  HTTPClient
	editors []RequestEditorFn
}

type ClientOption func(*TMDB)

// WithHTTPClient sets the client used to send requests
func WithHTTPClient(client HTTPClient) ClientOption {
	return func(t *TMDB) {
		t.client = client
	}
}

// WithRequestEditorFn adds fn to the editors run before each request
func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(t *TMDB) {
		t.editors = append(t.editors, fn)
	}
}

// New creates a client rooted at baseURL, e.g. https://api.themoviedb.org/3
func New(baseURL string, opts ...ClientOption) (*TMDB, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid tmdb url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid tmdb url %q: scheme and host are required", baseURL)
	}

	t := &TMDB{
		baseURL: u,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// SetRequestAPIKey authenticates with a v4 read access token
func SetRequestAPIKey(apiKey string) RequestEditorFn {
	return func(ctx context.Context, req *http.Request) error {
		req.Header.Add("Authorization", "Bearer "+apiKey)
		req.Header.Add("accept", "application/json")
		return nil
	}
}

// SetRequestQueryKey authenticates with a v3 api key passed as the api_key parameter
func SetRequestQueryKey(apiKey string) RequestEditorFn {
	return func(ctx context.Context, req *http.Request) error {
		q := req.URL.Query()
		q.Set("api_key", apiKey)
		req.URL.RawQuery = q.Encode()
		req.Header.Add("accept", "application/json")
		return nil
	}
}

// Popular lists the films currently popular on TMDB
func (t *TMDB) Popular(ctx context.Context, page int) (*MovieList, error) {
	return t.list(ctx, "popular", page)
}

// TopRated lists the best rated films
func (t *TMDB) TopRated(ctx context.Context, page int) (*MovieList, error) {
	return t.list(ctx, "top_rated", page)
}

// Upcoming lists films about to be released
func (t *TMDB) Upcoming(ctx context.Context, page int) (*MovieList, error) {
	return t.list(ctx, "upcoming", page)
}

// MovieDetails fetches the full record of the film with id
func (t *TMDB) MovieDetails(ctx context.Context, id int) (*MovieDetails, error) {
	res, err := t.get(ctx, nil, "movie", strconv.Itoa(id))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	return parseMovieDetailsResponse(res)
}

func (t *TMDB) list(ctx context.Context, name string, page int) (*MovieList, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}

	res, err := t.get(ctx, params, "movie", name)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, parseAPIError(res)
	}

	var list MovieList
	if err := json.NewDecoder(res.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("failed to decode %s movies: %w", name, err)
	}

	return &list, nil
}

func (t *TMDB) get(ctx context.Context, params url.Values, elem ...string) (*http.Response, error) {
	u := t.baseURL.JoinPath(elem...)
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	for _, edit := range t.editors {
		if err := edit(ctx, req); err != nil {
			return nil, err
		}
	}

	return t.client.Do(req)
}

func parseMovieDetailsResponse(res *http.Response) (*MovieDetails, error) {
	if res.StatusCode != http.StatusOK {
		return nil, parseAPIError(res)
	}

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var details MovieDetails
	if err := json.Unmarshal(b, &details); err != nil {
		return nil, fmt.Errorf("failed to decode movie details: %w", err)
	}

	if details.ID == 0 {
		return nil, errors.New("movie details response is missing an id")
	}

	return &details, nil
}

// APIError is returned for non 200 responses
type APIError struct {
	StatusCode    int    `json:"-"`
	Code          int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}

func (e *APIError) Error() string {
	if e.StatusMessage == "" {
		return fmt.Sprintf("tmdb request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("tmdb request failed with status %d: %s", e.StatusCode, e.StatusMessage)
}

// IsNotFound reports whether err is a TMDB 404
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func parseAPIError(res *http.Response) error {
	apiErr := &APIError{StatusCode: res.StatusCode}
	b, err := io.ReadAll(res.Body)
	if err == nil && len(b) > 0 {
		// the body is informational only; a non json body keeps the status
		_ = json.Unmarshal(b, apiErr)
	}
	return apiErr
}
