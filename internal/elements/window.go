// Package elements provides terminal widgets styled through the style
// runtime. Widgets keep the resources last applied to them and render with
// lipgloss on demand.
package elements

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/reactive"
	"github.com/alexisbeaulieu97/restyle/internal/style"
	"github.com/alexisbeaulieu97/restyle/internal/theme"
)

// Context is a style context over the theme environment.
type Context[E any] = style.Context[E, *theme.Theme]

// EnvStream is the application environment stream widgets are styled from.
type EnvStream = style.EnvStream[*theme.Theme]

// Window is the root trait source. Every widget created for a window follows
// its traits.
type Window struct {
	traits   *reactive.Behavior[environment.Traits]
	renderer *lipgloss.Renderer
}

// NewWindow creates a window rendering to w with the given traits.
func NewWindow(w io.Writer, traits environment.Traits) *Window {
	if w == nil {
		w = io.Discard
	}
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(traits.Profile)
	renderer.SetHasDarkBackground(traits.IsDark())
	return &Window{traits: reactive.NewBehavior(traits), renderer: renderer}
}

// Appearance replays the current traits and every change.
func (w *Window) Appearance() reactive.Observable[environment.Traits] {
	return w.traits.Observable()
}

// Traits returns the current traits.
func (w *Window) Traits() environment.Traits {
	return w.traits.Value()
}

// Renderer returns the lipgloss renderer widgets draw with.
func (w *Window) Renderer() *lipgloss.Renderer {
	return w.renderer
}

// SetTraits publishes traits unless they equal the current ones.
func (w *Window) SetTraits(traits environment.Traits) {
	if traits == w.traits.Value() {
		return
	}
	w.renderer.SetColorProfile(traits.Profile)
	w.renderer.SetHasDarkBackground(traits.IsDark())
	w.traits.Next(traits)
}

// Update applies f to the current traits.
func (w *Window) Update(f func(environment.Traits) environment.Traits) {
	w.SetTraits(f(w.Traits()))
}

// Resize records new window dimensions.
func (w *Window) Resize(width, height int) {
	w.Update(func(t environment.Traits) environment.Traits { return t.ForWindow(width, height) })
}

// ToggleColorScheme flips between light and dark.
func (w *Window) ToggleColorScheme() {
	w.Update(func(t environment.Traits) environment.Traits {
		if t.IsDark() {
			t.ColorScheme = environment.ColorSchemeLight
		} else {
			t.ColorScheme = environment.ColorSchemeDark
		}
		return t
	})
}

// CycleContentSize moves to the next content size category.
func (w *Window) CycleContentSize() {
	w.Update(func(t environment.Traits) environment.Traits {
		t.ContentSize = t.ContentSize.Next()
		return t
	})
}

// DetectTraits reads the color profile and background of out.
func DetectTraits(out *termenv.Output, width, height int) environment.Traits {
	traits := environment.TraitsForWindow(width, height)
	traits.Profile = out.Profile
	if out.HasDarkBackground() {
		traits.ColorScheme = environment.ColorSchemeDark
	}
	return traits
}

// node is embedded by every widget. Its appearance stream never references
// the widget itself so weak bindings can observe collection.
type node struct {
	window     *Window
	appearance reactive.Observable[environment.Traits]
}

func newNode(w *Window, elevated bool) node {
	appearance := w.Appearance()
	if elevated {
		appearance = reactive.Map(appearance, func(t environment.Traits) environment.Traits {
			t.Level = environment.LevelElevated
			return t
		})
	}
	return node{window: w, appearance: appearance}
}

// Appearance implements style.AppearanceSignal.
func (n *node) Appearance() reactive.Observable[environment.Traits] {
	return n.appearance
}

// ElementKind marks widgets as views.
func (n *node) ElementKind() style.ElementKind {
	return style.KindView
}

func (n *node) renderer() *lipgloss.Renderer {
	return n.window.renderer
}
