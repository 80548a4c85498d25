package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// PlaygroundKeyMap holds the playground bindings. It satisfies help.KeyMap so
// the footer and the ? overlay render from the same table.
type PlaygroundKeyMap struct {
	Left         key.Binding
	Down         key.Binding
	Up           key.Binding
	Right        key.Binding
	Next         key.Binding
	Previous     key.Binding
	First        key.Binding
	Last         key.Binding
	ShuffleLeft  key.Binding
	ShuffleDown  key.Binding
	ShuffleUp    key.Binding
	ShuffleRight key.Binding
	ToggleSplit  key.Binding
	Open         key.Binding
	Close        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func (k PlaygroundKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Close, k.ToggleSplit, k.Help, k.Quit}
}

func (k PlaygroundKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Down, k.Up, k.Right},
		{k.ShuffleLeft, k.ShuffleDown, k.ShuffleUp, k.ShuffleRight},
		{k.Next, k.Previous, k.First, k.Last},
		{k.Open, k.Close, k.ToggleSplit},
		{k.Help, k.Quit},
	}
}

// DefaultPlaygroundKeyMap returns vim-style bindings close to wmii's defaults:
// h/j/k/l move the focus and the shifted letters shuffle the focused window.
// Arrow keys work as well for both.
func DefaultPlaygroundKeyMap() PlaygroundKeyMap {
	return PlaygroundKeyMap{
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "focus left"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "focus down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "focus up"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "focus right"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous"),
		),
		First: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "first window"),
		),
		Last: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "last window"),
		),
		ShuffleLeft: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "move left"),
		),
		ShuffleDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
		ShuffleUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		ShuffleRight: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "move right"),
		),
		ToggleSplit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "split/stack"),
		),
		Open: key.NewBinding(
			key.WithKeys("n", "enter"),
			key.WithHelp("n", "new window"),
		),
		Close: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
