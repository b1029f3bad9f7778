// Package tui is a terminal browser for the film catalogue. Each category is
// a carousel that scrolls with the keyboard, the mouse wheel or by dragging.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kasuboski/moviez/pkg/carousel"
	"github.com/kasuboski/moviez/pkg/logger"
	"github.com/kasuboski/moviez/pkg/movies"
	"github.com/kasuboski/moviez/pkg/wishlist"
	"go.uber.org/zap"
)

const (
	fps = 60

	defaultWidth  = 80
	defaultHeight = 24

	// title line and a blank line above the first carousel
	headerHeight = 2
	// label line, the cards and a blank line
	rowHeight = 1 + cardHeight + 1
)

type view int

const (
	viewHome view = iota
	viewDetail
	viewWishlist
)

type (
	homeLoadedMsg struct {
		home movies.Home
	}

	filmLoadedMsg struct {
		id   int
		film movies.Film
		err  error
	}

	frameMsg struct{}
)

// Model is the bubbletea model of the browser
type Model struct {
	ctx      context.Context
	provider movies.Provider
	store    *wishlist.Store

	keys    KeyMap
	styles  Styles
	help    help.Model
	spinner spinner.Model

	width   int
	height  int
	loading bool
	view    view
	status  string

	reducedMotion bool
	screen        *carousel.Screen

	rows       []*row
	focusedRow int
	// row receiving pointer events between a press and a release, -1 when none
	pressedRow int
	ticking    bool

	detail        *movies.Film
	detailID      int
	detailErr     error
	detailLoading bool
	returnTo      view

	wishCursor int
}

type Option func(*Model)

// WithReducedMotion makes every scroll jump instead of animating
func WithReducedMotion(reduced bool) Option {
	return func(m *Model) {
		m.reducedMotion = reduced
	}
}

// WithContext sets the context used for provider calls and logging
func WithContext(ctx context.Context) Option {
	return func(m *Model) {
		m.ctx = ctx
	}
}

func New(provider movies.Provider, store *wishlist.Store, opts ...Option) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		ctx:        context.Background(),
		provider:   provider,
		store:      store,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		help:       help.New(),
		spinner:    sp,
		width:      defaultWidth,
		height:     defaultHeight,
		loading:    true,
		screen:     &carousel.Screen{},
		pressedRow: -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run starts the program on the terminal and blocks until the user quits
func Run(ctx context.Context, m *Model) error {
	m.ctx = ctx
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadHome())
}

func (m *Model) loadHome() tea.Cmd {
	return func() tea.Msg {
		return homeLoadedMsg{home: movies.LoadHome(m.ctx, m.provider)}
	}
}

func (m *Model) loadFilm(id int) tea.Cmd {
	return func() tea.Msg {
		film, err := m.provider.Movie(m.ctx, id)
		return filmLoadedMsg{id: id, film: film, err: err}
	}
}

func animate() tea.Cmd {
	return tea.Tick(time.Second/fps, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case homeLoadedMsg:
		m.setHome(msg.home)
	case filmLoadedMsg:
		m.setFilm(msg)
	case frameMsg:
		return m, m.frame()
	case spinner.TickMsg:
		if m.loading || m.detailLoading {
			m.spinner, cmd = m.spinner.Update(msg)
		}
		return m, cmd
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}

	return m, tea.Batch(cmd, m.startAnimation())
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	for _, r := range m.rows {
		r.resize(m.trackWidth())
	}
	m.screen.Resize()
}

func (m *Model) trackWidth() float64 {
	return float64(max(m.width-2*arrowWidth, 0))
}

func (m *Model) setHome(home movies.Home) {
	for _, r := range m.rows {
		r.close()
	}

	motion := carousel.MotionPreferenceFunc(func() bool { return m.reducedMotion })
	m.rows = m.rows[:0]
	for _, c := range movies.Categories {
		m.rows = append(m.rows, newRow(c, home.List(c), m.trackWidth(), motion, m.screen))
	}

	m.loading = false
	m.focusedRow = 0
	logger.FromCtx(m.ctx).Debugw("home loaded",
		"popular", len(home.Popular), "topRated", len(home.TopRated), "upcoming", len(home.Upcoming))
}

func (m *Model) setFilm(msg filmLoadedMsg) {
	if m.view != viewDetail || !m.detailLoading || msg.id != m.detailID {
		return
	}

	m.detailLoading = false
	if msg.err != nil {
		m.detailErr = msg.err
		if !errors.Is(msg.err, movies.ErrNotFound) {
			logger.FromCtx(m.ctx).Errorw("failed to load film", "id", msg.id, zap.Error(msg.err))
		}
		return
	}
	film := msg.film
	m.detail = &film
}

// frame advances every running glide by one tick
func (m *Model) frame() tea.Cmd {
	running := false
	for _, r := range m.rows {
		if r.step() {
			running = true
		}
	}

	m.ticking = running
	if running {
		return animate()
	}
	return nil
}

func (m *Model) startAnimation() tea.Cmd {
	if m.ticking {
		return nil
	}
	for _, r := range m.rows {
		if r.glide.active {
			m.ticking = true
			return animate()
		}
	}
	return nil
}

func (m *Model) behavior() carousel.Behavior {
	if m.reducedMotion {
		return carousel.BehaviorInstant
	}
	return carousel.BehaviorSmooth
}

func (m *Model) currentRow() *row {
	if m.focusedRow < 0 || m.focusedRow >= len(m.rows) {
		return nil
	}
	return m.rows[m.focusedRow]
}

func (m *Model) openDetail(id int, from view) tea.Cmd {
	m.view = viewDetail
	m.returnTo = from
	m.detail = nil
	m.detailID = id
	m.detailErr = nil
	m.detailLoading = true
	return tea.Batch(m.spinner.Tick, m.loadFilm(id))
}

func (m *Model) toggle(f movies.FilmSummary) {
	_, on := m.store.Toggle(m.ctx, f)
	if on {
		m.status = fmt.Sprintf("Added %s to your wishlist", f.Title)
	} else {
		m.status = fmt.Sprintf("Removed %s from your wishlist", f.Title)
	}
}
