package tui

import tea "github.com/charmbracelet/bubbletea"

// App routes between top-level pages and tracks the terminal size for them.
// Pages never reach into each other; a page requests a switch by returning a
// PageNav from its Update.
type App struct {
	pages      map[string]Page
	activePage string
	width      int
	height     int
}

// NewApp builds the router. The first page is shown at startup.
func NewApp(pages ...Page) *App {
	byID := make(map[string]Page, len(pages))
	first := ""
	for i, p := range pages {
		byID[p.ID()] = p
		if i == 0 {
			first = p.ID()
		}
	}
	return &App{pages: byID, activePage: first}
}

func (a *App) Init() tea.Cmd {
	if p, ok := a.pages[a.activePage]; ok {
		return p.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = size.Width
		a.height = size.Height
	}

	p, ok := a.pages[a.activePage]
	if !ok {
		return a, nil
	}

	cmd, nav := p.Update(msg)
	if nav == nil {
		return a, cmd
	}

	// Requests for pages the router does not know are dropped.
	next, ok := a.pages[nav.PageID]
	if !ok {
		return a, cmd
	}
	a.activePage = nav.PageID
	return a, tea.Batch(cmd, next.Init())
}

func (a *App) View() string {
	if p, ok := a.pages[a.activePage]; ok {
		return p.View(a.width, a.height)
	}
	return ""
}
