package tui

import "github.com/charmbracelet/lipgloss"

// Chrome around the demo screen. The screen itself is styled from the theme
// environment.
var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	loadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle    = lipgloss.NewStyle().MarginTop(1).PaddingLeft(1)
)
