package movies

import (
	"context"
	"slices"
	"strconv"
	"time"

	"github.com/kasuboski/moviez/pkg/cache"
	"golang.org/x/sync/singleflight"
)

// DefaultStaleTime is how long fetched lists and films are served from memory
const DefaultStaleTime = time.Minute

// upstreamTimeout bounds a shared upstream call, which no single caller can cancel
const upstreamTimeout = 30 * time.Second

// Cached serves results of the wrapped provider until they are stale.
// Concurrent requests for the same data share one upstream call, and
// failures are never cached.
type Cached struct {
	next  Provider
	lists *cache.Cache[Category, []FilmSummary]
	films *cache.Cache[int, Film]
	group singleflight.Group
}

type CachedOption func(*cachedOptions)

type cachedOptions struct {
	staleTime time.Duration
	now       func() time.Time
}

// WithStaleTime overrides DefaultStaleTime
func WithStaleTime(d time.Duration) CachedOption {
	return func(o *cachedOptions) {
		o.staleTime = d
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) CachedOption {
	return func(o *cachedOptions) {
		o.now = now
	}
}

func NewCached(next Provider, opts ...CachedOption) *Cached {
	o := cachedOptions{staleTime: DefaultStaleTime, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &Cached{
		next:  next,
		lists: cache.New(cache.WithTTL[Category, []FilmSummary](o.staleTime), cache.WithClock[Category, []FilmSummary](o.now)),
		films: cache.New(cache.WithTTL[int, Film](o.staleTime), cache.WithClock[int, Film](o.now)),
	}
}

func (c *Cached) Kind() string {
	return c.next.Kind()
}

func (c *Cached) Popular(ctx context.Context) ([]FilmSummary, error) {
	return c.list(ctx, CategoryPopular)
}

func (c *Cached) TopRated(ctx context.Context) ([]FilmSummary, error) {
	return c.list(ctx, CategoryTopRated)
}

func (c *Cached) Upcoming(ctx context.Context) ([]FilmSummary, error) {
	return c.list(ctx, CategoryUpcoming)
}

func (c *Cached) Movie(ctx context.Context, id int) (Film, error) {
	if f, ok := c.films.Get(id); ok {
		return f, nil
	}

	v, err := c.share(ctx, "movie:"+strconv.Itoa(id), func(ctx context.Context) (any, error) {
		f, err := c.next.Movie(ctx, id)
		if err != nil {
			return Film{}, err
		}
		c.films.Set(id, f)
		return f, nil
	})
	if err != nil {
		return Film{}, err
	}

	return v.(Film), nil
}

// Invalidate drops everything cached so the next calls refetch
func (c *Cached) Invalidate() {
	for _, k := range c.lists.Keys() {
		c.lists.Delete(k)
	}
	for _, k := range c.films.Keys() {
		c.films.Delete(k)
	}
}

func (c *Cached) list(ctx context.Context, cat Category) ([]FilmSummary, error) {
	if films, ok := c.lists.Get(cat); ok {
		return slices.Clone(films), nil
	}

	v, err := c.share(ctx, "list:"+string(cat), func(ctx context.Context) (any, error) {
		films, err := List(ctx, c.next, cat)
		if err != nil {
			return nil, err
		}
		c.lists.Set(cat, films)
		return films, nil
	})
	if err != nil {
		return nil, err
	}

	return slices.Clone(v.([]FilmSummary)), nil
}

// share runs fn once for all concurrent callers of key. The upstream call keeps
// the first caller's values but not its cancellation; each caller stops waiting
// when its own ctx is done.
func (c *Cached) share(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	ch := c.group.DoChan(key, func() (any, error) {
		upstream, cancel := context.WithTimeout(context.WithoutCancel(ctx), upstreamTimeout)
		defer cancel()
		return fn(upstream)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}
