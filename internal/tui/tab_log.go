package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderLogTab draws the buffered events, newest at the bottom. logScroll
// counts lines scrolled back from the tail.
func (m *WorkbenchModel) renderLogTab(width, height int) string {
	entries := m.ring.Entries()

	header := cardTitleStyle.Render("Event Log") + "  " +
		helpStyle.Render("↑↓: scroll • x: clear")

	if len(entries) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "",
			captionStyle.Render("No events yet."))
	}

	visible := height - 2
	if visible < 1 {
		visible = 1
	}

	end := len(entries) - m.logScroll
	if end < 1 {
		end = 1
	}
	if end > len(entries) {
		end = len(entries)
	}
	start := end - visible
	if start < 0 {
		start = 0
	}

	lines := make([]string, 0, end-start+2)
	lines = append(lines, header, "")
	for _, e := range entries[start:end] {
		ts := captionStyle.Render(e.Time.Format("15:04:05"))
		level := levelStyle(e.Level).Render(fmt.Sprintf("%-5s", strings.ToUpper(e.Level)))
		msg := e.Message
		// Truncate on rune boundaries; messages carry user-typed input.
		if limit := width - 16; limit > 8 {
			if runes := []rune(msg); len(runes) > limit {
				msg = string(runes[:limit-1]) + "…"
			}
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", ts, level, msg))
	}

	if m.logScroll > 0 {
		lines = append(lines, captionStyle.Render(
			fmt.Sprintf("(%d newer entries below)", m.logScroll)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func levelStyle(level string) lipgloss.Style {
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		return errorStyle
	case "warn":
		return lipgloss.NewStyle().Foreground(ColorWarning)
	default:
		return helpStyle
	}
}
