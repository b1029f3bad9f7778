package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/kasuboski/moviez/pkg/carousel"
	"github.com/kasuboski/moviez/pkg/movies"
)

const (
	cardWidth  = 20
	cardHeight = 5
	cardGap    = 2

	// columns taken by the arrow and its padding on each side of a track
	arrowWidth = 2

	// the spring settles once both are below these
	settlePosition = 0.5
	settleVelocity = 0.5
)

// glide is an in-flight smooth scroll of a row
type glide struct {
	pos    float64
	vel    float64
	target float64
	active bool
}

// row is one carousel of the home view. Offsets are in terminal cells.
type row struct {
	category movies.Category
	films    []movies.FilmSummary
	focus    int

	track *carousel.Track
	nav   *carousel.Navigation
	drag  *carousel.Drag

	spring harmonica.Spring
	glide  glide

	detach []func()
}

func newRow(c movies.Category, films []movies.FilmSummary, visible float64, motion carousel.MotionPreference, viewport carousel.Viewport) *row {
	r := &row{
		category: c,
		films:    films,
		track:    carousel.NewTrack(len(films), cardWidth, cardGap, visible),
		nav:      carousel.NewNavigation(carousel.WithMotionPreference(motion), carousel.WithViewport(viewport)),
		drag:     carousel.NewDrag(),
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0),
	}

	r.track.SetAnimator(r.animate)
	r.track.SetScrollOrigin(r.target)
	r.detach = append(r.detach, r.nav.Attach(r.track), r.drag.Attach(r.track))
	return r
}

func (r *row) close() {
	for _, fn := range r.detach {
		fn()
	}
	r.detach = nil
}

// animate starts a spring toward to, keeping the current velocity when a
// glide is already running
func (r *row) animate(from, to float64) {
	vel := 0.0
	if r.glide.active {
		vel = r.glide.vel
	}
	r.glide = glide{pos: from, vel: vel, target: to, active: true}
}

// step advances the glide by one frame and reports whether it is still running
func (r *row) step() bool {
	if !r.glide.active {
		return false
	}

	g := &r.glide
	g.pos, g.vel = r.spring.Update(g.pos, g.vel, g.target)
	if math.Abs(g.pos-g.target) < settlePosition && math.Abs(g.vel) < settleVelocity {
		g.pos = g.target
		g.active = false
	}

	r.track.SetOffset(g.pos)
	return g.active
}

func (r *row) stop() {
	r.glide.active = false
}

// target is where the track is headed: the glide target while one runs,
// otherwise the current offset
func (r *row) target() float64 {
	if r.glide.active {
		return r.glide.target
	}
	return r.track.Offset()
}

func (r *row) stride() float64 {
	return cardWidth + cardGap
}

func (r *row) focused() (movies.FilmSummary, bool) {
	if r.focus < 0 || r.focus >= len(r.films) {
		return movies.FilmSummary{}, false
	}
	return r.films[r.focus], true
}

// moveFocus shifts focus by delta cards and scrolls the focused card into view
func (r *row) moveFocus(delta int, behavior carousel.Behavior) {
	if len(r.films) == 0 {
		return
	}
	r.focus = min(max(r.focus+delta, 0), len(r.films)-1)
	r.reveal(behavior)
}

func (r *row) reveal(behavior carousel.Behavior) {
	start := r.track.OffsetOfItem(r.focus)
	end := start + r.track.ItemExtent()
	cur := r.target()
	visible := r.track.VisibleExtent()

	desired := cur
	switch {
	case start < cur:
		desired = start
	case end > cur+visible:
		desired = end - visible
	}

	if desired != cur {
		r.track.ScrollBy(desired-cur, behavior)
	}
}

// page scrolls one page in d and moves focus to the first card fully shown
// at the destination
func (r *row) page(d carousel.Direction) {
	r.nav.ScrollByPage(d)
	if len(r.films) == 0 {
		return
	}
	first := int(math.Ceil(r.target() / r.stride()))
	r.focus = min(max(first, 0), len(r.films)-1)
}

func (r *row) resize(visible float64) {
	r.stop()
	r.track.SetVisibleExtent(visible)
}

// render draws the label line and the cards line block of the row, clipped to
// the track's visible window
func (r *row) render(s Styles, width int, focusedRow bool, wished func(int) bool) string {
	label := s.RowLabel.Render(r.category.Label())
	if focusedRow {
		label = s.FocusedRow.Render("▸ " + r.category.Label())
	}

	visible := max(width-2*arrowWidth, 0)
	if len(r.films) == 0 {
		body := lipgloss.PlaceVertical(cardHeight, lipgloss.Center,
			strings.Repeat(" ", arrowWidth)+s.Empty.Render("No films to show"))
		return lipgloss.JoinVertical(lipgloss.Left, label, body)
	}

	cards := make([]string, 0, 2*len(r.films))
	for i, f := range r.films {
		if i > 0 {
			cards = append(cards, strings.Repeat(" ", cardGap))
		}
		cards = append(cards, renderCard(s, f, focusedRow && i == r.focus, wished(f.ID)))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	state := r.nav.State()
	prev, next := s.ArrowDim.Render("‹"), s.ArrowDim.Render("›")
	if state.CanScrollBackward {
		prev = s.Arrow.Render("‹")
	}
	if state.CanScrollForward {
		next = s.Arrow.Render("›")
	}

	offset := int(math.Round(r.track.Offset()))
	lines := strings.Split(strip, "\n")
	for i, line := range lines {
		window := ansi.Cut(line, offset, offset+visible)
		pad := max(visible-ansi.StringWidth(window), 0)
		lprev, lnext := " ", " "
		if i == cardHeight/2 {
			lprev, lnext = prev, next
		}
		lines[i] = lprev + " " + window + strings.Repeat(" ", pad) + " " + lnext
	}

	return lipgloss.JoinVertical(lipgloss.Left, label, strings.Join(lines, "\n"))
}

func renderCard(s Styles, f movies.FilmSummary, focused, wished bool) string {
	inner := cardWidth - 2
	title := ansi.Truncate(f.Title, inner, "…")

	meta := f.Year()
	if rating := f.Rating(); rating != "" {
		if meta != "" {
			meta += " · "
		}
		meta += "★ " + rating
	}

	mark := ""
	if wished {
		mark = s.Heart.Render("♥ wishlisted")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		s.CardTitle.Render(title),
		s.CardMeta.Render(ansi.Truncate(meta, inner, "…")),
		mark,
	)

	if focused {
		return s.FocusedCard.Render(body)
	}
	return s.Card.Render(body)
}
