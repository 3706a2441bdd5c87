package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bitlearn/bitvis/internal/quiz"
)

// Modal is an overlay that captures key events until dismissed. The stack
// dedupes by ID so repeated shortcuts never pile up duplicates.
type Modal interface {
	// ID identifies the modal for stack dedup.
	ID() string
	// Update handles a key event. pop reports whether the modal is done.
	Update(msg tea.KeyMsg) (pop bool, cmd tea.Cmd)
	// View renders the modal for the given terminal size.
	View(width, height int) string
}

var modalStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorAccent).
	Padding(1, 2)

// helpModal shows the key reference in a scrollable viewport.
type helpModal struct {
	vp    viewport.Model
	ready bool
}

func newHelpModal() *helpModal {
	return &helpModal{}
}

func (h *helpModal) ID() string { return "help" }

func (h *helpModal) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?", "enter":
		return true, nil
	}
	var cmd tea.Cmd
	h.vp, cmd = h.vp.Update(msg)
	return false, cmd
}

var helpRows = [][2]string{
	{"tab / shift+tab", "cycle sections"},
	{"enter / space", "toggle selected bit"},
	{"h / l, arrows", "move bit cursor or card selection"},
	{"e", "toggle manual bit mode"},
	{"i", "invert sign (two's complement)"},
	{"[ / ]", "previous / next tab"},
	{"1-4", "jump to tab"},
	{"m", "switch explanation method"},
	{"c", "copy selected card value"},
	{"+ / -", "adjust custom base"},
	{"n", "new quiz question"},
	{"r", "number reference page"},
	{"x", "clear event log"},
	{"?", "toggle this help"},
	{"q / ctrl+c", "quit"},
}

func (h *helpModal) View(width, height int) string {
	w := width - 12
	if w > 56 {
		w = 56
	}
	if w < 24 {
		w = 24
	}
	vh := height - 8
	if vh > len(helpRows)+2 {
		vh = len(helpRows) + 2
	}
	if vh < 4 {
		vh = 4
	}

	if !h.ready {
		h.vp = viewport.New(w, vh)
		h.vp.SetContent(helpContent())
		h.ready = true
	} else if h.vp.Width != w || h.vp.Height != vh {
		h.vp.Width = w
		h.vp.Height = vh
	}

	title := cardTitleStyle.Render("Key Reference")
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", h.vp.View(),
		"", captionStyle.Render("esc to close"))
	return modalStyle.Render(body)
}

func helpContent() string {
	var b strings.Builder
	for _, row := range helpRows {
		keys := lipgloss.NewStyle().Foreground(ColorAccent).Width(18).Render(row[0])
		b.WriteString(keys)
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// resultModal reports the outcome of a quiz submission.
type resultModal struct {
	result quiz.Result
}

func newResultModal(res quiz.Result) *resultModal {
	return &resultModal{result: res}
}

func (r *resultModal) ID() string { return "quiz-result" }

func (r *resultModal) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q", " ":
		return true, nil
	}
	return false, nil
}

func (r *resultModal) View(width, height int) string {
	res := r.result

	var verdict string
	if res.Correct {
		verdict = lipgloss.NewStyle().Foreground(ColorBitOn).Bold(true).Render("Correct!")
	} else {
		verdict = errorStyle.Render(fmt.Sprintf("Not quite. The answer was %d.", res.Question.Answer))
	}

	lines := []string{
		cardTitleStyle.Render("Quiz Result"),
		"",
		res.Question.Prompt,
		fmt.Sprintf("Your answer: %d", res.Given),
		verdict,
		"",
		fmt.Sprintf("Score: %s", res.Score),
		"",
		captionStyle.Render("enter to continue"),
	}
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
