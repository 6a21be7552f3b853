package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubbletea front end of a Demo. The demo screen is loaded, and
// therefore styled, on the first window size message.
type Model struct {
	demo    *Demo
	keys    keyMap
	help    help.Model
	spinner spinner.Model

	width    int
	height   int
	quitting bool
}

// NewModel wraps demo.
func NewModel(demo *Demo) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle
	return Model{
		demo:    demo,
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: s,
	}
}

// Init starts the loading spinner.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Demo returns the wrapped demo.
func (m Model) Demo() *Demo {
	return m.demo
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}
