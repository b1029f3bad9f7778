package server

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/kasuboski/moviez/pkg/carousel"
	"github.com/kasuboski/moviez/pkg/movies"
	"github.com/kasuboski/moviez/pkg/wishlist"
)

// Carousel geometry in css pixels. The page lays cards out with the same values.
const (
	cardWidth     = 180
	cardGap       = 16
	viewportWidth = 984
)

type filmCard struct {
	movies.FilmSummary
	Wishlisted bool
	Visible    bool
}

type carouselView struct {
	Category  movies.Category
	Label     string
	Cards     []filmCard
	Offset    int
	Behavior  string
	CanPrev   bool
	CanNext   bool
	PrevURL   string
	NextURL   string
	CardWidth int
	CardGap   int
	Viewport  int
}

// buildCarousel pages a virtual track of films. The track offset comes from
// the query parameter named after the category and the prev and next links
// carry the offset the navigation controller scrolls to.
func buildCarousel(r *http.Request, c movies.Category, films []movies.FilmSummary, wish wishlist.State) carouselView {
	reduced := prefersReducedMotion(r)
	track := carousel.NewTrack(len(films), cardWidth, cardGap, viewportWidth)
	track.SetOffset(queryOffset(r.URL.Query(), c))

	nav := carousel.NewNavigation(carousel.WithMotionPreference(carousel.MotionPreferenceFunc(func() bool {
		return reduced
	})))
	detach := nav.Attach(track)
	defer detach()

	current := track.Offset()
	state := nav.State()
	view := carouselView{
		Category:  c,
		Label:     c.Label(),
		Offset:    int(current),
		CanPrev:   state.CanScrollBackward,
		CanNext:   state.CanScrollForward,
		CardWidth: cardWidth,
		CardGap:   cardGap,
		Viewport:  viewportWidth,
	}

	if view.CanNext {
		nav.ScrollByPage(carousel.Forward)
		view.NextURL = offsetURL(r.URL, c, track.Offset())
		track.SetOffset(current)
	}
	if view.CanPrev {
		nav.ScrollByPage(carousel.Backward)
		view.PrevURL = offsetURL(r.URL, c, track.Offset())
		track.SetOffset(current)
	}

	view.Behavior = carousel.BehaviorSmooth.String()
	if last, ok := track.LastScroll(); ok {
		view.Behavior = last.Behavior.String()
	} else if reduced {
		view.Behavior = carousel.BehaviorInstant.String()
	}

	first, last := track.VisibleRange()
	view.Cards = make([]filmCard, 0, len(films))
	for i, f := range films {
		view.Cards = append(view.Cards, filmCard{
			FilmSummary: f,
			Wishlisted:  wish.Has(f.ID),
			Visible:     i >= first && i < last,
		})
	}

	return view
}

func queryOffset(q url.Values, c movies.Category) float64 {
	v, err := strconv.Atoi(q.Get(string(c)))
	if err != nil || v < 0 {
		return 0
	}
	return float64(v)
}

// offsetURL returns the current page with the offset of carousel c replaced
func offsetURL(u *url.URL, c movies.Category, offset float64) string {
	q := u.Query()
	if offset <= 0 {
		q.Del(string(c))
	} else {
		q.Set(string(c), strconv.Itoa(int(offset)))
	}

	next := url.URL{Path: u.Path, RawQuery: q.Encode(), Fragment: string(c)}
	return next.String()
}
