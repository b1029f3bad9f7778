package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/kasuboski/moviez/pkg/movies"
)

func (m *Model) View() string {
	var body string
	switch m.view {
	case viewDetail:
		body = m.detailView()
	case viewWishlist:
		body = m.wishlistView()
	default:
		body = m.homeView()
	}

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.styles.Status.Render(m.status) + "\n" + footer
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), "", body, "", footer)
}

func (m *Model) header() string {
	count := m.store.Len()
	return m.styles.Title.Render("moviez") + "  " +
		m.styles.Status.Render(fmt.Sprintf("♥ %d in wishlist", count))
}

func (m *Model) homeView() string {
	if m.loading {
		return m.spinner.View() + " Loading films..."
	}

	rows := make([]string, 0, 2*len(m.rows))
	for i, r := range m.rows {
		if i > 0 {
			rows = append(rows, "")
		}
		rows = append(rows, r.render(m.styles, m.width, i == m.focusedRow, m.store.Has))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) detailView() string {
	s := m.styles
	if m.detailLoading {
		return m.spinner.View() + " Loading film..."
	}
	if m.detailErr != nil {
		if errors.Is(m.detailErr, movies.ErrNotFound) {
			return s.Error.Render("Film not found")
		}
		return s.Error.Render("Could not load this film, please try again later")
	}
	if m.detail == nil {
		return ""
	}

	f := m.detail
	title := f.Title
	if year := f.Year(); year != "" {
		title += " (" + year + ")"
	}

	lines := []string{s.Heading.Render(title)}
	if f.Tagline != "" {
		lines = append(lines, s.Tagline.Render(f.Tagline))
	}

	facts := make([]string, 0, 4)
	if rating := f.Rating(); rating != "" {
		facts = append(facts, "★ "+rating)
	}
	if f.Runtime > 0 {
		facts = append(facts, fmt.Sprintf("%dh %dm", f.Runtime/60, f.Runtime%60))
	}
	if f.Status != "" {
		facts = append(facts, f.Status)
	}
	if f.IsAdult() {
		facts = append(facts, "18+")
	}
	if len(facts) > 0 {
		lines = append(lines, strings.Join(facts, " · "))
	}

	if len(f.Genres) > 0 {
		names := make([]string, 0, len(f.Genres))
		for _, g := range f.Genres {
			names = append(names, g.Name)
		}
		lines = append(lines, s.Label.Render("Genres: ")+strings.Join(names, ", "))
	}
	if f.Overview != "" {
		width := max(m.width-2, 20)
		lines = append(lines, "", lipgloss.NewStyle().Width(width).Render(f.Overview))
	}
	if f.Budget > 0 {
		lines = append(lines, s.Label.Render("Budget: ")+"$"+humanize.Comma(f.Budget))
	}
	if f.Revenue > 0 {
		lines = append(lines, s.Label.Render("Revenue: ")+"$"+humanize.Comma(f.Revenue))
	}
	if len(f.ProductionCompanies) > 0 {
		names := make([]string, 0, len(f.ProductionCompanies))
		for _, c := range f.ProductionCompanies {
			names = append(names, c.Name)
		}
		lines = append(lines, s.Label.Render("Produced by: ")+strings.Join(names, ", "))
	}

	mark := "w to add to your wishlist"
	if m.store.Has(f.ID) {
		mark = s.Heart.Render("♥ In your wishlist") + " (w to remove)"
	}
	lines = append(lines, "", mark)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) wishlistView() string {
	s := m.styles
	items := m.store.Items()

	lines := []string{s.Heading.Render(fmt.Sprintf("Your wishlist (%d)", len(items)))}
	if len(items) == 0 {
		lines = append(lines, s.Empty.Render("Nothing here yet. Press w on a film to save it."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, e := range items {
		line := e.Title
		if year := e.Year(); year != "" {
			line += " (" + year + ")"
		}
		if rating := e.Rating(); rating != "" {
			line += "  ★ " + rating
		}

		if i == m.wishCursor {
			lines = append(lines, s.Selected.Render("> "+line))
		} else {
			lines = append(lines, "  "+line)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
