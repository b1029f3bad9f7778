package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/kasuboski/moviez/pkg/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func popularRequest(t *testing.T, ctx context.Context) *http.Request {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.themoviedb.org/3/movie/popular?page=1", nil)
	require.NoError(t, err)
	return req
}

func reply(status int, body string, header http.Header) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNewRateLimitedHTTPClient(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c := NewRateLimitedHTTPClient()
		assert.Equal(t, http.DefaultClient, c.client)
		assert.Equal(t, DefaultMaxRetries, c.maxRetries)
		assert.Equal(t, DefaultBaseBackoff, c.baseBackoff)
		assert.True(t, c.jitter)
	})

	t.Run("options", func(t *testing.T) {
		inner := &http.Client{Timeout: 5 * time.Second}
		c := NewRateLimitedHTTPClient(
			WithMaxRetries(5),
			WithBaseBackoff(100*time.Millisecond),
			WithJitter(false),
			WithHTTPClient(inner),
		)
		assert.Same(t, inner, c.client)
		assert.Equal(t, 5, c.maxRetries)
		assert.Equal(t, 100*time.Millisecond, c.baseBackoff)
		assert.False(t, c.jitter)
	})
}

func TestRateLimitedHTTPClient_Do(t *testing.T) {
	t.Run("transport errors are returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)
		req := popularRequest(t, context.Background())

		mhttp.EXPECT().Do(req).Return(nil, errors.New("connection refused"))

		resp, err := NewRateLimitedHTTPClient(WithHTTPClient(mhttp)).Do(req)
		assert.EqualError(t, err, "connection refused")
		assert.Nil(t, resp)
	})

	t.Run("non 429 responses pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)
		req := popularRequest(t, context.Background())

		mhttp.EXPECT().Do(req).Return(reply(http.StatusNotFound, `{"status_code":34}`, nil), nil)

		resp, err := NewRateLimitedHTTPClient(WithHTTPClient(mhttp)).Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, `{"status_code":34}`, string(b))
	})

	t.Run("gives up after max retries with the last response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)
		req := popularRequest(t, context.Background())

		mhttp.EXPECT().Do(req).Return(reply(http.StatusTooManyRequests, "slow down", nil), nil).Times(2)

		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp), WithMaxRetries(2), WithBaseBackoff(time.Millisecond), WithJitter(false))
		resp, err := client.Do(req)
		assert.EqualError(t, err, "rate limit exceeded after 2 retries")
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "slow down", string(b))
	})

	t.Run("succeeds after a 429", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)
		req := popularRequest(t, context.Background())

		gomock.InOrder(
			mhttp.EXPECT().Do(req).Return(reply(http.StatusTooManyRequests, "", nil), nil),
			mhttp.EXPECT().Do(req).Return(reply(http.StatusOK, `{"page":1}`, nil), nil),
		)

		client := NewRateLimitedHTTPClient(WithHTTPClient(mhttp), WithBaseBackoff(time.Millisecond), WithJitter(false))
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("stops waiting when the context is done", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		ctx, cancel := context.WithCancel(context.Background())
		req := popularRequest(t, ctx)

		mhttp.EXPECT().Do(req).DoAndReturn(func(*http.Request) (*http.Response, error) {
			cancel()
			return reply(http.StatusTooManyRequests, "", http.Header{"Retry-After": []string{"60"}}), nil
		})

		resp, err := NewRateLimitedHTTPClient(WithHTTPClient(mhttp)).Do(req)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, resp)
	})
}

func TestRateLimitedClient_getRetryAfter(t *testing.T) {
	tests := []struct {
		name    string
		header  http.Header
		attempt int
		want    time.Duration
	}{
		{
			name:   "retry after header in seconds",
			header: http.Header{"Retry-After": []string{"2"}},
			want:   2 * time.Second,
		},
		{
			name:    "unparseable header falls back to backoff",
			header:  http.Header{"Retry-After": []string{"Wed, 21 Oct 2015 07:28:00 GMT"}},
			attempt: 1,
			want:    2 * time.Second,
		},
		{
			name:    "exponential backoff",
			attempt: 3,
			want:    8 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewRateLimitedHTTPClient(WithBaseBackoff(time.Second), WithJitter(false))
			got := c.getRetryAfter(&http.Response{Header: tt.header}, tt.attempt)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("jitter stays below one base backoff", func(t *testing.T) {
		c := NewRateLimitedHTTPClient(WithBaseBackoff(time.Second))
		for i := 0; i < 50; i++ {
			got := c.getRetryAfter(&http.Response{}, 2)
			assert.GreaterOrEqual(t, got, 4*time.Second)
			assert.Less(t, got, 5*time.Second)
		}
	})
}
