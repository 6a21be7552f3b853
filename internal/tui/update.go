package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and forwards environment changes to the
// demo.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.demo.Resize(msg.Width, msg.Height)
		m.demo.Load()
		return m, nil

	case spinner.TickMsg:
		if m.demo.Loaded() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.demo.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Theme):
		m.demo.CycleTheme()
	case key.Matches(msg, m.keys.Dark):
		m.demo.ToggleDark()
	case key.Matches(msg, m.keys.Locale):
		m.demo.CycleLocale()
	case key.Matches(msg, m.keys.Size):
		m.demo.CycleContentSize()
	case key.Matches(msg, m.keys.AddRow):
		m.demo.AddRow()
	case key.Matches(msg, m.keys.Press):
		m.demo.TogglePress()
	}
	return m, nil
}
