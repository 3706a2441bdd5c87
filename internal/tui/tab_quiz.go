package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// renderQuizTab draws the score line, the outstanding question with its
// answer field, and a correct/incorrect chart once attempts exist.
func (m *WorkbenchModel) renderQuizTab(width, height int) string {
	score := m.session.Score()

	lines := []string{
		cardTitleStyle.Render("Quiz Mode") + "  " +
			inputLabelStyle.Render(fmt.Sprintf("Score: %s", score)),
		"",
	}

	if q, ok := m.session.Current(); ok {
		lines = append(lines,
			q.Prompt,
			"",
			inputLabelStyle.Render("Answer: ")+m.answerInput.View(),
			"",
			helpStyle.Render("enter: submit • n: new question"),
		)
	} else {
		lines = append(lines,
			captionStyle.Render("No question outstanding."),
			"",
			helpStyle.Render("n: new question"),
		)
	}

	if score.Total > 0 {
		lines = append(lines, "", m.renderScoreChart(width, height))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderScoreChart draws correct vs incorrect attempt counts as two bars.
func (m *WorkbenchModel) renderScoreChart(width, height int) string {
	score := m.session.Score()
	incorrect := score.Total - score.Correct

	chartHeight := height - 8
	if chartHeight < 3 {
		chartHeight = 3
	}
	if chartHeight > 8 {
		chartHeight = 8
	}
	chartWidth := width / 2
	if chartWidth < 12 {
		chartWidth = 12
	}

	correctStyle := lipgloss.NewStyle().Foreground(ColorBitOn).Background(ColorBitOn)
	incorrectStyle := lipgloss.NewStyle().Foreground(ColorError).Background(ColorError)

	bc := barchart.New(chartWidth, chartHeight,
		barchart.WithBarGap(2),
		barchart.WithBarWidth(3),
	)
	bc.Push(barchart.BarData{
		Label: "ok",
		Values: []barchart.BarValue{
			{Name: "correct", Value: float64(score.Correct), Style: correctStyle},
		},
	})
	bc.Push(barchart.BarData{
		Label: "miss",
		Values: []barchart.BarValue{
			{Name: "incorrect", Value: float64(incorrect), Style: incorrectStyle},
		},
	})
	bc.Draw()

	legend := lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Foreground(ColorBitOn).Render("■"),
		helpStyle.Render(fmt.Sprintf(" correct %d   ", score.Correct)),
		errorStyle.Render("■"),
		helpStyle.Render(fmt.Sprintf(" incorrect %d", incorrect)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, bc.View(), legend)
}
