package tui

import tea "github.com/charmbracelet/bubbletea"

// Page is one top-level screen owned by the App router. View receives the
// current terminal size on every render.
type Page interface {
	ID() string
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, *PageNav)
	View(width, height int) string
}

// PageNav asks the router to switch to another page.
type PageNav struct {
	PageID string
}
