package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bitlearn/bitvis/internal/bits"
)

// chromeHeight is the vertical space the header, input row, bit strip, tab
// bar, and status bar consume around the tab content.
const chromeHeight = 14

// View renders the workbench. A modal on the stack replaces the page.
func (m *WorkbenchModel) View() string {
	if m.width == 0 {
		return "loading..."
	}

	if modal := m.TopModal(); modal != nil {
		return lipgloss.Place(m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			modal.View(m.width, m.height))
	}

	sections := []string{
		m.renderHeader(),
		m.renderInputRow(),
		m.renderBitStrip(m.width),
		m.renderTabBar(),
		m.renderTabContent(),
		m.renderStatusBar(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *WorkbenchModel) renderHeader() string {
	title := cardTitleStyle.Render("bitvis")
	rangeNote := captionStyle.Render(fmt.Sprintf("Range: %d to %d", bits.MinValue, bits.MaxValue))

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(rangeNote) - 2
	if gap < 1 {
		gap = 1
	}
	return " " + title + strings.Repeat(" ", gap) + rangeNote
}

// renderInputRow draws the decimal input with its validation state. In manual
// mode the field shows the derived value read-only.
func (m *WorkbenchModel) renderInputRow() string {
	label := inputLabelStyle.Render("Decimal:")

	var field string
	if m.manualMode {
		field = cardValueStyle.Render(m.decimalInput.Value()) + " " + captionStyle.Render("(read-only)")
	} else {
		field = m.decimalInput.View()
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, label, " ", field)

	style := sectionStyle
	if m.activeSection == SectionInput {
		style = activeSectionStyle
	}
	if m.inputErr != nil {
		style = style.BorderForeground(ColorError)
		row = lipgloss.JoinVertical(lipgloss.Left, row, errorStyle.Render(inputErrText(m.inputErr)))
	}
	return style.Render(row)
}

// inputErrText maps input errors to the short messages shown under the field.
func inputErrText(err error) string {
	switch err.(type) {
	case *bits.RangeError:
		return fmt.Sprintf("value must be between %d and %d", bits.MinValue, bits.MaxValue)
	case *bits.ParseError:
		return "not a whole number"
	default:
		return err.Error()
	}
}

func (m *WorkbenchModel) renderTabBar() string {
	rendered := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.activeTabIdx {
			rendered[i] = activeTabStyle.Render(t.Title)
		} else {
			rendered[i] = tabStyle.Render(t.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
}

func (m *WorkbenchModel) renderTabContent() string {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	height := m.tabContentHeight()

	var content string
	switch m.activeTab().ID {
	case tabConversions:
		content = m.renderCardGrid(width)
	case tabExplanation:
		content = m.renderExplanationTab(height)
	case tabQuiz:
		content = m.renderQuizTab(width, height)
	case tabLog:
		content = m.renderLogTab(width, height)
	}

	style := sectionStyle.Width(m.width - 2)
	if m.activeSection == SectionTab {
		style = activeSectionStyle.Width(m.width - 2)
	}
	return style.Render(content)
}

func (m *WorkbenchModel) renderStatusBar() string {
	var section string
	switch m.activeSection {
	case SectionInput:
		section = "input"
	case SectionBits:
		section = "bits"
	case SectionTab:
		section = m.activeTab().Title
	}

	hints := []string{
		section,
		"tab: sections",
		"[/] 1-4: tabs",
		"e: edit bits",
		"i: invert",
		"r: reference",
		"?: help",
		"q: quit",
	}
	bar := " " + strings.Join(hints, " • ")
	return statusBarStyle.Width(m.width).Render(bar)
}

// tabContentHeight estimates the rows available to tab content. Update uses
// it to clamp scroll offsets, so it must not depend on the rendered output.
func (m *WorkbenchModel) tabContentHeight() int {
	h := m.height - chromeHeight
	if h < 4 {
		h = 4
	}
	return h
}
