package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the browser
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PagePrev key.Binding
	PageNext key.Binding
	Open     key.Binding
	Toggle   key.Binding
	Wishlist key.Binding
	Remove   key.Binding
	Clear    key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev film"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next film"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PagePrev: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "page back"),
		),
		PageNext: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "page forward"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle wishlist"),
		),
		Wishlist: key.NewBinding(
			key.WithKeys("W"),
			key.WithHelp("W", "wishlist"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "remove"),
		),
		Clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear wishlist"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.PageNext, k.Open, k.Toggle, k.Wishlist, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PagePrev, k.PageNext, k.Open, k.Back},
		{k.Toggle, k.Wishlist, k.Remove, k.Clear},
		{k.Help, k.Quit},
	}
}
