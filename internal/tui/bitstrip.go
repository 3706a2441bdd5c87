package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bitlearn/bitvis/internal/bits"
)

// compactStripWidth is the terminal width below which the bit strip drops
// the boxed layout for a single-line one.
const compactStripWidth = 68

var bitBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	Align(lipgloss.Center).
	Width(5)

// renderBitStrip draws the 8-bit pattern, MSB first, with the cursor
// highlighted and the active-bit sum underneath.
func (m *WorkbenchModel) renderBitStrip(width int) string {
	var strip string
	if width < compactStripWidth {
		strip = m.renderCompactStrip()
	} else {
		strip = m.renderBoxedStrip()
	}

	sum := sumBarStyle.Render(bits.SumTerms(m.pattern).Expression())

	var caption string
	if m.manualMode {
		caption = captionStyle.Render("manual mode: h/l select, enter toggles")
	} else {
		caption = captionStyle.Render("press e to edit bits directly")
	}

	return lipgloss.JoinVertical(lipgloss.Left, strip, sum, caption)
}

// renderBoxedStrip draws one bordered box per bit with its power above and
// weight below.
func (m *WorkbenchModel) renderBoxedStrip() string {
	boxes := make([]string, len(m.pattern))
	for i, b := range m.pattern {
		valueStyle := bitOffStyle
		if b.Value == 1 {
			valueStyle = bitOnStyle
		}

		box := bitBoxStyle.BorderForeground(ColorMuted)
		if m.activeSection == SectionBits && i == m.bitCursor {
			box = bitBoxStyle.BorderForeground(ColorAccent)
		}

		power := captionStyle.Render(fmt.Sprintf("2^%d", b.Power))
		value := valueStyle.Render(fmt.Sprintf("%d", b.Value))
		weight := helpStyle.Render(fmt.Sprintf("%d", b.Weight()))

		boxes[i] = box.Render(lipgloss.JoinVertical(lipgloss.Center, power, value, weight))
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	msb := captionStyle.Render("MSB")
	lsb := captionStyle.Render("LSB")
	gap := lipgloss.Width(strip) - lipgloss.Width(msb) - lipgloss.Width(lsb)
	if gap < 1 {
		gap = 1
	}
	labels := msb + strings.Repeat(" ", gap) + lsb

	return lipgloss.JoinVertical(lipgloss.Left, strip, labels)
}

// renderCompactStrip draws the pattern on a single line for narrow terminals,
// marking the cursor position with brackets.
func (m *WorkbenchModel) renderCompactStrip() string {
	parts := make([]string, len(m.pattern))
	for i, b := range m.pattern {
		valueStyle := bitOffStyle
		if b.Value == 1 {
			valueStyle = bitOnStyle
		}

		cell := valueStyle.Render(fmt.Sprintf("%d", b.Value))
		if m.activeSection == SectionBits && i == m.bitCursor {
			cell = bitCursorStyle.Render("[") + cell + bitCursorStyle.Render("]")
		} else {
			cell = " " + cell + " "
		}
		parts[i] = cell
	}

	strip := strings.Join(parts, "")
	labels := captionStyle.Render("MSB") + strings.Repeat(" ", 18) + captionStyle.Render("LSB")
	return lipgloss.JoinVertical(lipgloss.Left, strip, labels)
}
