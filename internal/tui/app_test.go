package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp() (*App, *WorkbenchModel) {
	m, _ := newTestModel()
	app := NewApp(NewWorkbenchPage(m), NewReferencePage())
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app, m
}

func TestApp_StartsOnFirstPage(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp()

	if got := app.activePage; got != "workbench" {
		t.Fatalf("active page = %q, want workbench", got)
	}
	if !strings.Contains(app.View(), "Decimal:") {
		t.Fatal("workbench view not rendered at startup")
	}
}

func TestApp_ReferencePageRoundTrip(t *testing.T) {
	t.Parallel()

	app, m := newTestApp()
	m.applyDecimalInput("200")
	m.activeSection = SectionBits
	m.syncFocus()

	app.Update(keyRune('r'))

	if got := app.activePage; got != "reference" {
		t.Fatalf("active page = %q, want reference after r", got)
	}
	view := app.View()
	if !strings.Contains(view, "Number Representation Reference") {
		t.Fatal("reference view missing title")
	}
	if !strings.Contains(view, "2^7 = 128") {
		t.Fatal("reference view missing bit weight table")
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEscape})

	if got := app.activePage; got != "workbench" {
		t.Fatalf("active page = %q, want workbench after esc", got)
	}
	// Workbench state survives the excursion.
	if got := m.value; got != 200 {
		t.Fatalf("value = %d, want 200 preserved across pages", got)
	}
	if !strings.Contains(app.View(), "11001000") {
		t.Fatal("workbench view lost its pattern")
	}
}

func TestApp_TypedRuneDoesNotLeavePage(t *testing.T) {
	t.Parallel()

	app, m := newTestApp()

	// The decimal input starts focused, so r types instead of navigating.
	app.Update(keyRune('r'))

	if got := app.activePage; got != "workbench" {
		t.Fatalf("active page = %q, want workbench while typing", got)
	}
	if m.inputErr == nil {
		t.Fatal("expected parse error from typed r")
	}
}

func TestApp_UnknownPageRequestIgnored(t *testing.T) {
	t.Parallel()

	app, m := newTestApp()
	m.navRequest = "settings"

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if got := app.activePage; got != "workbench" {
		t.Fatalf("active page = %q, want workbench after unknown request", got)
	}
	if got := m.navRequest; got != "" {
		t.Fatalf("nav request = %q, want drained", got)
	}
}

func TestApp_WindowSizeReachesPage(t *testing.T) {
	t.Parallel()

	app, m := newTestApp()

	app.Update(tea.WindowSizeMsg{Width: 72, Height: 24})

	if got := m.width; got != 72 {
		t.Fatalf("model width = %d, want 72", got)
	}
	if got := app.width; got != 72 {
		t.Fatalf("app width = %d, want 72", got)
	}
}

func TestReferencePage_QuitKeys(t *testing.T) {
	t.Parallel()

	p := NewReferencePage()

	cmd, nav := p.Update(keyRune('q'))
	if cmd == nil || nav != nil {
		t.Fatal("q on reference page should quit, not navigate")
	}

	cmd, nav = p.Update(keyRune('r'))
	if cmd != nil || nav == nil || nav.PageID != "workbench" {
		t.Fatalf("r on reference page: cmd=%v nav=%+v, want workbench nav", cmd, nav)
	}
}
