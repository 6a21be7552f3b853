package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the demo screen followed by the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.demo.Loaded() {
		return m.spinner.View() + " " + loadingStyle.Render("waiting for terminal size")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.demo.View(),
		helpStyle.Render(m.help.View(m.keys)),
	)
}
