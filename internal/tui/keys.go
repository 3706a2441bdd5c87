package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all workbench key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Navigation
	NextSection key.Binding
	PrevSection key.Binding
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	GotoTab     key.Binding

	// Actions
	Reference   key.Binding
	ToggleBit   key.Binding
	ManualMode  key.Binding
	InvertSign  key.Binding
	Method      key.Binding
	NewQuestion key.Binding
	Copy        key.Binding
	BaseUp      key.Binding
	BaseDown    key.Binding
	ClearLog    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("escape", "esc"),
			key.WithHelp("esc", "close/back"),
		),

		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev section"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev tab"),
		),
		GotoTab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "jump to tab"),
		),

		Reference: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reference page"),
		),
		ToggleBit: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "toggle bit"),
		),
		ManualMode: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "manual bit edit"),
		),
		InvertSign: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "invert sign"),
		),
		Method: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "explanation method"),
		),
		NewQuestion: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new question"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy card"),
		),
		BaseUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "base up"),
		),
		BaseDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "base down"),
		),
		ClearLog: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear log"),
		),
	}
}
