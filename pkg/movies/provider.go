package movies

import (
	"context"
	"fmt"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_provider.go github.com/kasuboski/moviez/pkg/movies Provider

const (
	KindLive = "live"
	KindMock = "mock"
)

// Provider supplies the film lists and details shown by the app
type Provider interface {
	// Kind is either KindLive or KindMock
	Kind() string
	Popular(ctx context.Context) ([]FilmSummary, error)
	TopRated(ctx context.Context) ([]FilmSummary, error)
	Upcoming(ctx context.Context) ([]FilmSummary, error)
	// Movie returns ErrNotFound when no film has id
	Movie(ctx context.Context, id int) (Film, error)
}

// List fetches the films of category c from p
func List(ctx context.Context, p Provider, c Category) ([]FilmSummary, error) {
	switch c {
	case CategoryPopular:
		return p.Popular(ctx)
	case CategoryTopRated:
		return p.TopRated(ctx)
	case CategoryUpcoming:
		return p.Upcoming(ctx)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
}
