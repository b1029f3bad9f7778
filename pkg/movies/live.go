package movies

import (
	"context"
	"fmt"

	"github.com/kasuboski/moviez/pkg/logger"
	"github.com/kasuboski/moviez/pkg/tmdb"
)

// Live serves films from TMDB
type Live struct {
	tmdb      tmdb.ITmdb
	imageBase string
}

// NewLive creates a provider backed by client. An empty imageBase uses DefaultImageBase.
func NewLive(client tmdb.ITmdb, imageBase string) *Live {
	if imageBase == "" {
		imageBase = DefaultImageBase
	}
	return &Live{tmdb: client, imageBase: imageBase}
}

func (l *Live) Kind() string {
	return KindLive
}

func (l *Live) Popular(ctx context.Context) ([]FilmSummary, error) {
	return l.list(ctx, CategoryPopular, l.tmdb.Popular)
}

func (l *Live) TopRated(ctx context.Context) ([]FilmSummary, error) {
	return l.list(ctx, CategoryTopRated, l.tmdb.TopRated)
}

func (l *Live) Upcoming(ctx context.Context) ([]FilmSummary, error) {
	return l.list(ctx, CategoryUpcoming, l.tmdb.Upcoming)
}

// Movie fetches the detail record for id. A TMDB 404 becomes ErrNotFound.
func (l *Live) Movie(ctx context.Context, id int) (Film, error) {
	det, err := l.tmdb.MovieDetails(ctx, id)
	if tmdb.IsNotFound(err) {
		return Film{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return Film{}, fmt.Errorf("failed to get movie %d: %w", id, err)
	}

	return FromTMDBMovieDetails(*det, l.imageBase), nil
}

func (l *Live) list(ctx context.Context, c Category, fetch func(context.Context, int) (*tmdb.MovieList, error)) ([]FilmSummary, error) {
	log := logger.FromCtx(ctx)

	res, err := fetch(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s movies: %w", c, err)
	}

	films := make([]FilmSummary, 0, len(res.Results))
	for _, m := range res.Results {
		films = append(films, FromTMDBMovie(m, l.imageBase, c))
	}

	log.Debugw("listed movies", "category", c, "count", len(films))
	return films, nil
}
