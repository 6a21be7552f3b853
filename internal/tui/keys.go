package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Theme  key.Binding
	Dark   key.Binding
	Locale key.Binding
	Size   key.Binding
	AddRow key.Binding
	Press  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next theme")),
		Dark:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "light/dark")),
		Locale: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "next locale")),
		Size:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "content size")),
		AddRow: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add row")),
		Press:  key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "press button")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Theme, k.Dark, k.Locale, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Theme, k.Dark, k.Locale, k.Size},
		{k.AddRow, k.Press, k.Help, k.Quit},
	}
}
