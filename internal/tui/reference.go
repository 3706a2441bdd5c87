package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bitlearn/bitvis/internal/bits"
)

// ReferencePage is a static cheat sheet for the 8-bit model: bit weights,
// the two's-complement rule, and the digit alphabet for high bases. Opened
// from the workbench with 'r'.
type ReferencePage struct{}

func NewReferencePage() *ReferencePage { return &ReferencePage{} }

func (p *ReferencePage) ID() string { return "reference" }

func (p *ReferencePage) Init() tea.Cmd { return nil }

func (p *ReferencePage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return tea.Quit, nil
	case "esc", "r", "enter":
		return nil, &PageNav{PageID: "workbench"}
	}
	return nil, nil
}

func (p *ReferencePage) View(width, height int) string {
	rows := []string{
		cardTitleStyle.Render("Number Representation Reference"),
		"",
		inputLabelStyle.Render("Bit weights (MSB first)"),
	}

	for power := bits.Width - 1; power >= 0; power-- {
		line := fmt.Sprintf("  2^%d = %3d", power, 1<<power)
		if power == bits.Width-1 {
			line += captionStyle.Render("   carries -128 in the signed reading")
		}
		rows = append(rows, line)
	}

	rows = append(rows,
		"",
		inputLabelStyle.Render("Two's complement"),
		"  negate: invert every bit, then add 1",
		fmt.Sprintf("  accepted input range: %d to %d", bits.MinValue, bits.MaxValue),
		"  128..255 enter as unsigned bytes; a set MSB always reads back signed",
		"",
		inputLabelStyle.Render("Digits beyond 9"),
		"  bases 11-36 continue the alphabet with A=10 .. Z=35",
		"",
		helpStyle.Render("esc/r: back • q: quit"),
	)

	body := sectionStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
