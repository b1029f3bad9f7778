package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kasuboski/moviez/pkg/carousel"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	switch m.view {
	case viewDetail:
		return m.detailKey(msg)
	case viewWishlist:
		return m.wishlistKey(msg)
	default:
		return m.homeKey(msg)
	}
}

func (m *Model) homeKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Wishlist) {
		m.view = viewWishlist
		m.wishCursor = 0
		return nil
	}

	r := m.currentRow()
	if r == nil {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		r.moveFocus(-1, m.behavior())
	case key.Matches(msg, m.keys.Right):
		r.moveFocus(1, m.behavior())
	case key.Matches(msg, m.keys.PagePrev):
		r.page(carousel.Backward)
	case key.Matches(msg, m.keys.PageNext):
		r.page(carousel.Forward)
	case key.Matches(msg, m.keys.Up):
		m.focusedRow = max(m.focusedRow-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.focusedRow = min(m.focusedRow+1, len(m.rows)-1)
	case key.Matches(msg, m.keys.Open):
		if f, ok := r.focused(); ok {
			return m.openDetail(f.ID, viewHome)
		}
	case key.Matches(msg, m.keys.Toggle):
		if f, ok := r.focused(); ok {
			m.toggle(f)
		}
	}
	return nil
}

func (m *Model) detailKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = m.returnTo
		m.detail = nil
		m.detailErr = nil
		m.detailLoading = false
	case key.Matches(msg, m.keys.Toggle):
		if m.detail != nil {
			m.toggle(m.detail.FilmSummary)
		}
	case key.Matches(msg, m.keys.Wishlist):
		m.view = viewWishlist
		m.wishCursor = 0
	}
	return nil
}

func (m *Model) wishlistKey(msg tea.KeyMsg) tea.Cmd {
	items := m.store.Items()

	switch {
	case key.Matches(msg, m.keys.Back):
		m.view = viewHome
	case key.Matches(msg, m.keys.Up):
		m.wishCursor = max(m.wishCursor-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.wishCursor = min(m.wishCursor+1, max(len(items)-1, 0))
	case key.Matches(msg, m.keys.Open):
		if m.wishCursor < len(items) {
			return m.openDetail(items[m.wishCursor].ID, viewWishlist)
		}
	case key.Matches(msg, m.keys.Remove), key.Matches(msg, m.keys.Toggle):
		if m.wishCursor < len(items) {
			m.toggle(items[m.wishCursor])
			m.wishCursor = min(m.wishCursor, max(len(items)-2, 0))
		}
	case key.Matches(msg, m.keys.Clear):
		m.store.Clear(m.ctx)
		m.wishCursor = 0
		m.status = "Wishlist cleared"
	}
	return nil
}

// rowAt maps a screen line to the carousel whose cards occupy it
func (m *Model) rowAt(y int) (int, bool) {
	rel := y - headerHeight
	if rel < 0 {
		return 0, false
	}
	i, line := rel/rowHeight, rel%rowHeight
	if i >= len(m.rows) || line < 1 || line > cardHeight {
		return 0, false
	}
	return i, true
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.view != viewHome || len(m.rows) == 0 {
		return nil
	}

	x := float64(msg.X - arrowWidth)

	switch {
	case msg.Action == tea.MouseActionRelease:
		return m.release(msg, x)
	case msg.Action == tea.MouseActionMotion && m.pressedRow >= 0:
		m.rows[m.pressedRow].track.DispatchPointer(carousel.PointerEvent{
			Phase: carousel.PointerMove, Kind: carousel.PointerMouse, X: x,
		})
		return nil
	case msg.Action != tea.MouseActionPress:
		return nil
	}

	i, ok := m.rowAt(msg.Y)
	if !ok {
		return nil
	}
	r := m.rows[i]

	switch msg.Button {
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		r.page(carousel.Forward)
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		r.page(carousel.Backward)
	case tea.MouseButtonLeft:
		m.focusedRow = i
		switch {
		case x < 0:
			r.page(carousel.Backward)
		case x >= r.track.VisibleExtent():
			r.page(carousel.Forward)
		default:
			r.stop()
			m.pressedRow = i
			r.track.DispatchPointer(carousel.PointerEvent{
				Phase: carousel.PointerDown, Kind: carousel.PointerMouse, X: x,
			})
		}
	}
	return nil
}

// release ends a press. A release over a card of the pressed row is a click
// and opens the card, unless the drag that just ended swallowed it.
func (m *Model) release(msg tea.MouseMsg, x float64) tea.Cmd {
	if m.pressedRow < 0 {
		return nil
	}
	pressed := m.pressedRow
	m.pressedRow = -1

	r := m.rows[pressed]
	r.track.DispatchPointer(carousel.PointerEvent{
		Phase: carousel.PointerUp, Kind: carousel.PointerMouse, X: x,
	})

	if i, ok := m.rowAt(msg.Y); !ok || i != pressed {
		return nil
	}
	if !r.track.DispatchClick() {
		return nil
	}

	item := r.track.ItemAt(x)
	if item < 0 {
		return nil
	}
	r.focus = item
	return m.openDetail(r.films[item].ID, viewHome)
}
