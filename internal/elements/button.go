package elements

import (
	"github.com/alexisbeaulieu97/restyle/internal/reactive"
	"github.com/alexisbeaulieu97/restyle/internal/richtext"
	"github.com/alexisbeaulieu97/restyle/internal/semantic"
	"github.com/alexisbeaulieu97/restyle/internal/style"
	"github.com/alexisbeaulieu97/restyle/internal/theme"
)

// Button is a labelled control with a pressed state.
type Button struct {
	node
	frame   theme.ViewResources
	label   richtext.Text
	pressed *reactive.Behavior[bool]
}

// NewButton creates a released button in w.
func NewButton(w *Window) *Button {
	return &Button{node: newNode(w, false), pressed: reactive.NewBehavior(false)}
}

// Press holds the button down.
func (b *Button) Press() {
	if !b.pressed.Value() {
		b.pressed.Next(true)
	}
}

// Release lets the button go.
func (b *Button) Release() {
	if b.pressed.Value() {
		b.pressed.Next(false)
	}
}

// IsPressed reports the current state.
func (b *Button) IsPressed() bool {
	return b.pressed.Value()
}

// Pressed replays the pressed state and every change.
func (b *Button) Pressed() reactive.Observable[bool] {
	return b.pressed.Observable()
}

// Label returns the rendered label.
func (b *Button) Label() richtext.Text {
	return b.label
}

// Frame returns the applied frame resources.
func (b *Button) Frame() theme.ViewResources {
	return b.frame
}

// View renders the button.
func (b *Button) View() string {
	r := b.renderer()
	return b.frame.Style(r).Render(b.label.Render(r))
}

func applyButton(b *Button, _ style.TextStyle[*theme.Theme, theme.ButtonResources], r theme.ButtonResources, label richtext.Text) {
	b.frame = r.Frame
	b.label = label
}

// ButtonStyle binds bs to the button of ctx. The pressed variant applies
// while the button is held.
func ButtonStyle(ctx Context[*Button], bs theme.ButtonStyle, title semantic.Text) error {
	binder := style.BindText(ctx, applyButton)
	return style.ApplyTextForState(binder, ctx.Element().Pressed(), func(down bool) style.TextStyle[*theme.Theme, theme.ButtonResources] {
		if down {
			return bs.Pressed()
		}
		return bs
	}, title)
}
