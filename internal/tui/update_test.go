package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/theme"
)

func press(t *testing.T, m Model, keys string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
	return updated.(Model)
}

func TestUpdateLoadsOnWindowSize(t *testing.T) {
	m := NewModel(newDemo(t))
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	require.Nil(t, cmd)
	m = updated.(Model)

	require.True(t, m.demo.Loaded())
	require.Equal(t, 40, m.width)
	require.Equal(t, environment.SizeClassCompact, m.demo.Window().Traits().Horizontal)
}

func TestUpdateForwardsEnvironmentKeys(t *testing.T) {
	m := NewModel(newDemo(t))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	m = press(t, m, "t")
	require.Equal(t, theme.Dark, m.demo.Theme().ID)

	m = press(t, m, "d")
	require.True(t, m.demo.Window().Traits().IsDark())

	m = press(t, m, "s")
	require.Equal(t, environment.ContentSizeLarge, m.demo.Window().Traits().ContentSize)

	m = press(t, m, "a")
	require.Equal(t, 1, m.demo.Screen().List().Len())

	m = press(t, m, "?")
	require.True(t, m.help.ShowAll)
}

func TestUpdateQuits(t *testing.T) {
	m := NewModel(newDemo(t))
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	m = updated.(Model)
	require.True(t, m.Quitting())
}
