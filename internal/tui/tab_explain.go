package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bitlearn/bitvis/internal/explain"
)

// renderExplanationTab draws the current explanation with the scroll window
// applied.
func (m *WorkbenchModel) renderExplanationTab(height int) string {
	lines := m.explanationLines()

	start := m.explainScroll
	if start > len(lines) {
		start = len(lines)
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[start:end]

	var methodName string
	if m.method == MethodPowers {
		methodName = "Powers of 2"
	} else {
		methodName = "Repeated Division"
	}
	header := cardTitleStyle.Render("Method: "+methodName) + "  " +
		helpStyle.Render("m: switch • ↑↓: scroll")

	body := lipgloss.JoinVertical(lipgloss.Left, visible...)
	if len(lines) > height {
		body = lipgloss.JoinVertical(lipgloss.Left, body,
			captionStyle.Render(fmt.Sprintf("(%d-%d of %d lines)", start+1, end, len(lines))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body)
}

// explanationLines builds the explanation text for the current value and
// method. Also used by Update to clamp the scroll offset.
func (m *WorkbenchModel) explanationLines() []string {
	if m.method == MethodDivision {
		return divisionLines(explain.Division(m.value))
	}
	return powersLines(explain.Powers(m.value))
}

func divisionLines(t explain.Trace) []string {
	if t.Negative {
		return []string{
			fmt.Sprintf("Converting %d to binary:", t.Value),
			"",
			"Repeated division applies to non-negative values. Negative",
			"values are stored as two's complement instead:",
			"",
			fmt.Sprintf("  %d & 0xFF gives the 8-bit pattern %s", t.Value, t.MaskedPattern),
			"",
			"Switch to the powers method (m) for the signed breakdown.",
		}
	}

	lines := []string{
		fmt.Sprintf("Converting %d to binary by repeated division:", t.Value),
		"",
	}
	for _, s := range t.Steps {
		lines = append(lines,
			fmt.Sprintf("  %3d ÷ 2 = %3d  remainder %d", s.Dividend, s.Quotient, s.Remainder))
	}
	lines = append(lines,
		"",
		"Reading the remainders bottom to top:",
		"  "+bitOnStyle.Render(t.Binary()),
	)
	return lines
}

func powersLines(b explain.Breakdown) []string {
	if b.Negative {
		return []string{
			fmt.Sprintf("Converting %d to binary (two's complement):", b.Value),
			"",
			fmt.Sprintf("  1. Take the unsigned equivalent: %d & 0xFF = %d", b.Value, b.UnsignedEquivalent),
			fmt.Sprintf("  2. Its 8-bit pattern is %s", bitOnStyle.Render(b.MaskedPattern)),
			"  3. With the sign bit set, the pattern reads as",
			"     -2^7 plus the active lower bits.",
			"",
			"  " + b.Expression(),
		}
	}

	lines := []string{
		fmt.Sprintf("Converting %d to binary by powers of 2:", b.Value),
		"",
	}
	if len(b.Powers) == 0 {
		lines = append(lines, "  0 needs no powers of 2; every bit stays 0.")
	} else {
		remaining := b.Value
		for _, p := range b.Powers {
			weight := 1 << p
			lines = append(lines,
				fmt.Sprintf("  %3d ≥ %3d (2^%d)  →  bit %d on, %d left", remaining, weight, p, p, remaining-weight))
			remaining -= weight
		}
	}
	lines = append(lines, "", "  "+b.Expression())
	return lines
}
