package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#9aa3ad", Dark: "#4a5870"}
	colorText    = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#f2f2f2"}
	colorAccent  = lipgloss.Color("#e53935")
	colorWarning = lipgloss.Color("#FFC107")
)

// Styles holds every style used to render the browser
type Styles struct {
	Title       lipgloss.Style
	Status      lipgloss.Style
	RowLabel    lipgloss.Style
	FocusedRow  lipgloss.Style
	Card        lipgloss.Style
	FocusedCard lipgloss.Style
	CardTitle   lipgloss.Style
	CardMeta    lipgloss.Style
	Heart       lipgloss.Style
	Arrow       lipgloss.Style
	ArrowDim    lipgloss.Style
	Empty       lipgloss.Style
	Heading     lipgloss.Style
	Tagline     lipgloss.Style
	Label       lipgloss.Style
	Selected    lipgloss.Style
	Error       lipgloss.Style
}

func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Width(cardWidth - 2).
		Height(cardHeight - 2)

	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Status:      lipgloss.NewStyle().Foreground(colorMuted),
		RowLabel:    lipgloss.NewStyle().Foreground(colorText),
		FocusedRow:  lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Card:        card,
		FocusedCard: card.BorderForeground(colorPrimary),
		CardTitle:   lipgloss.NewStyle().Bold(true).Foreground(colorText),
		CardMeta:    lipgloss.NewStyle().Foreground(colorMuted),
		Heart:       lipgloss.NewStyle().Foreground(colorAccent),
		Arrow:       lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		ArrowDim:    lipgloss.NewStyle().Foreground(colorMuted).Faint(true),
		Empty:       lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
		Heading:     lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginBottom(1),
		Tagline:     lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
		Label:       lipgloss.NewStyle().Bold(true).Foreground(colorText),
		Selected:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Error:       lipgloss.NewStyle().Foreground(colorWarning),
	}
}
