package tui

import (
	"fmt"

	"github.com/bitlearn/bitvis/internal/baseconv"

	"github.com/charmbracelet/lipgloss"
)

// Card is one conversion display card on the Base Conversions tab. Value
// receives the current unsigned pattern value (0..255) and returns the
// rendered string for the card's base.
type Card interface {
	ID() string
	Title() string
	Value(unsigned int) string
}

// fixedCard renders a fixed-base conversion.
type fixedCard struct {
	id     string
	title  string
	format func(int) string
}

func (c *fixedCard) ID() string         { return c.id }
func (c *fixedCard) Title() string      { return c.title }
func (c *fixedCard) Value(v int) string { return c.format(v) }

// BaseNCard renders the custom Base-N conversion with an adjustable base.
type BaseNCard struct {
	base int
}

// NewBaseNCard creates the card with the given starting base, clamped to the
// supported range.
func NewBaseNCard(base int) *BaseNCard {
	c := &BaseNCard{base: base}
	c.clamp()
	return c
}

func (c *BaseNCard) ID() string { return "basen" }

func (c *BaseNCard) Title() string { return fmt.Sprintf("Base-%d", c.base) }

func (c *BaseNCard) Value(v int) string {
	s, err := baseconv.ToBase(v, c.base)
	if err != nil {
		return "?"
	}
	return s
}

// Base returns the current base.
func (c *BaseNCard) Base() int { return c.base }

// Adjust shifts the base by delta, clamped to [2, 36].
func (c *BaseNCard) Adjust(delta int) {
	c.base += delta
	c.clamp()
}

func (c *BaseNCard) clamp() {
	if c.base < baseconv.MinBase {
		c.base = baseconv.MinBase
	}
	if c.base > baseconv.MaxBase {
		c.base = baseconv.MaxBase
	}
}

// defaultCards builds the four conversion cards: binary, octal, hex, base-N.
func defaultCards(base int) []Card {
	return []Card{
		&fixedCard{id: "binary", title: "Binary", format: baseconv.BinaryString},
		&fixedCard{id: "octal", title: "Octal", format: baseconv.OctalString},
		&fixedCard{id: "hex", title: "Hexadecimal", format: baseconv.HexString},
		NewBaseNCard(base),
	}
}

// renderCardGrid lays the cards out two per row.
func (m *WorkbenchModel) renderCardGrid(width int) string {
	cardWidth := width/2 - 3
	if cardWidth < 18 {
		cardWidth = 18
	}

	unsigned := m.pattern.Unsigned()

	rendered := make([]string, len(m.cards))
	for i, c := range m.cards {
		rendered[i] = m.renderCard(c, unsigned, cardWidth, i == m.activeCardIdx)
	}

	var rows []string
	for i := 0; i < len(rendered); i += 2 {
		if i+1 < len(rendered) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered[i], " ", rendered[i+1]))
		} else {
			rows = append(rows, rendered[i])
		}
	}

	hint := helpStyle.Render("←→↑↓: select card • c: copy • +/-: adjust Base-N")
	rows = append(rows, hint)

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *WorkbenchModel) renderCard(c Card, unsigned, width int, active bool) string {
	style := sectionStyle.Width(width)
	if active && m.activeSection == SectionTab {
		style = activeSectionStyle.Width(width)
	}

	title := cardTitleStyle.Render(c.Title())
	value := cardValueStyle.Render(c.Value(unsigned))

	footer := helpStyle.Render("c: copy")
	if m.copiedCardID == c.ID() {
		footer = copiedBadgeStyle.Render("Copied!")
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, value, footer))
}

// baseNCard returns the Base-N card, if present.
func (m *WorkbenchModel) baseNCard() *BaseNCard {
	for _, c := range m.cards {
		if bn, ok := c.(*BaseNCard); ok {
			return bn
		}
	}
	return nil
}
