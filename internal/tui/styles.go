package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle     lipgloss.Style
	headerBarStyle lipgloss.Style
	labelStyle     lipgloss.Style
	errorStyle     lipgloss.Style
	frameStyle     lipgloss.Style

	statusBarStyle    lipgloss.Style
	statusErrBarStyle lipgloss.Style
	footerStyle       lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
		Background(colorMantle).
		Foreground(colorText)
	labelStyle = lipgloss.NewStyle().Foreground(colorText)
	errorStyle = lipgloss.NewStyle().Foreground(colorError)
	frameStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorSuccess).
		Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
		Foreground(colorError).
		Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().Background(colorMantle)
}
