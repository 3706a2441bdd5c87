package tui

import "github.com/charmbracelet/lipgloss"

// Colors derived from the active skin. Reassigned by applySkin.
var (
	ColorAccent    lipgloss.Color
	ColorAccentDim lipgloss.Color
	ColorText      lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorError     lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorBitOn     lipgloss.Color
	ColorBitOff    lipgloss.Color
	ColorSurface   lipgloss.Color
	ColorStatusBar lipgloss.Color
)

// Shared styles built from the active skin. Reassigned by applySkin.
var (
	sectionStyle       lipgloss.Style
	activeSectionStyle lipgloss.Style
	cardTitleStyle     lipgloss.Style
	cardValueStyle     lipgloss.Style
	copiedBadgeStyle   lipgloss.Style
	bitOnStyle         lipgloss.Style
	bitOffStyle        lipgloss.Style
	bitCursorStyle     lipgloss.Style
	sumBarStyle        lipgloss.Style
	captionStyle       lipgloss.Style
	helpStyle          lipgloss.Style
	errorStyle         lipgloss.Style
	inputLabelStyle    lipgloss.Style
	tabStyle           lipgloss.Style
	activeTabStyle     lipgloss.Style
	statusBarStyle     lipgloss.Style
)

func init() {
	applySkin(DefaultSkin())
}

func applySkin(s Skin) {
	ColorAccent = lipgloss.Color(s.Accent)
	ColorAccentDim = lipgloss.Color(s.AccentDim)
	ColorText = lipgloss.Color(s.Text)
	ColorMuted = lipgloss.Color(s.Muted)
	ColorError = lipgloss.Color(s.Error)
	ColorWarning = lipgloss.Color(s.Warning)
	ColorBitOn = lipgloss.Color(s.BitOn)
	ColorBitOff = lipgloss.Color(s.BitOff)
	ColorSurface = lipgloss.Color(s.Surface)
	ColorStatusBar = lipgloss.Color(s.StatusBar)

	sectionStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)

	activeSectionStyle = sectionStyle.
		BorderForeground(ColorAccent)

	cardTitleStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)

	cardValueStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorSurface).
		Padding(0, 1)

	copiedBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorAccentDim).
		Bold(true)

	bitOnStyle = lipgloss.NewStyle().
		Foreground(ColorBitOn).
		Bold(true)

	bitOffStyle = lipgloss.NewStyle().
		Foreground(ColorBitOff)

	bitCursorStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true)

	sumBarStyle = lipgloss.NewStyle().
		Foreground(ColorAccentDim).
		Bold(true).
		Padding(0, 1)

	captionStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true)

	helpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	errorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	tabStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Padding(0, 2).
		Underline(true)

	statusBarStyle = lipgloss.NewStyle().
		Background(ColorStatusBar).
		Foreground(ColorText)
}
