package movies

import (
	"context"

	"github.com/kasuboski/moviez/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LoadHome fetches the three home lists concurrently. If any of them fails the
// failure is logged and every list comes back empty, so the page still renders.
func LoadHome(ctx context.Context, p Provider) Home {
	log := logger.FromCtx(ctx)

	var home Home
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		films, err := p.Popular(gctx)
		home.Popular = films
		return err
	})
	g.Go(func() error {
		films, err := p.TopRated(gctx)
		home.TopRated = films
		return err
	})
	g.Go(func() error {
		films, err := p.Upcoming(gctx)
		home.Upcoming = films
		return err
	})

	if err := g.Wait(); err != nil {
		log.Errorw("failed to load home lists", zap.Error(err))
		return Home{Popular: []FilmSummary{}, TopRated: []FilmSummary{}, Upcoming: []FilmSummary{}}
	}

	if home.Popular == nil {
		home.Popular = []FilmSummary{}
	}
	if home.TopRated == nil {
		home.TopRated = []FilmSummary{}
	}
	if home.Upcoming == nil {
		home.Upcoming = []FilmSummary{}
	}

	return home
}
