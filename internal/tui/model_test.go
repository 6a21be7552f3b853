package tui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewModelInitialisesState(t *testing.T) {
	demo := newDemo(t)
	m := NewModel(demo)

	require.Same(t, demo, m.Demo())
	require.False(t, m.Quitting())
	require.False(t, m.help.ShowAll)
}

func TestModelInitReturnsSpinnerTick(t *testing.T) {
	m := NewModel(newDemo(t))
	require.NotNil(t, m.Init())
}
