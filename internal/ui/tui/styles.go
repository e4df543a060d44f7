package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#89b4fa")
	colorMuted   = lipgloss.Color("#7f849c")
	colorError   = lipgloss.Color("#f38ba8")
	colorOK      = lipgloss.Color("#a6e3a1")
	colorSelect  = lipgloss.Color("#f9e2af")
	colorSurface = lipgloss.Color("#313244")

	barStyle       = lipgloss.NewStyle().Background(colorSurface)
	barItemStyle   = lipgloss.NewStyle().Padding(0, 1).Background(colorSurface)
	barActiveStyle = lipgloss.NewStyle().Padding(0, 1).Background(colorAccent).Foreground(lipgloss.Color("#1e1e2e")).Bold(true)

	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	selectStyle = lipgloss.NewStyle().Foreground(colorSelect)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError)
	okStyle     = lipgloss.NewStyle().Foreground(colorOK)
	focusStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)
