package elements

import (
	"github.com/alexisbeaulieu97/restyle/internal/reactive"
	"github.com/alexisbeaulieu97/restyle/internal/richtext"
	"github.com/alexisbeaulieu97/restyle/internal/semantic"
	"github.com/alexisbeaulieu97/restyle/internal/style"
	"github.com/alexisbeaulieu97/restyle/internal/theme"
)

// Label displays rendered rich text.
type Label struct {
	node
	text    richtext.Text
	updates int
}

// NewLabel creates an empty label in w.
func NewLabel(w *Window) *Label {
	return &Label{node: newNode(w, false)}
}

// SetText replaces the displayed text.
func (l *Label) SetText(t richtext.Text) {
	l.text = t
	l.updates++
}

// Text returns the displayed text.
func (l *Label) Text() richtext.Text {
	return l.text
}

// Updates counts how often the text was replaced.
func (l *Label) Updates() int {
	return l.updates
}

// View renders the label.
func (l *Label) View() string {
	return l.text.Render(l.renderer())
}

func applyLabel(l *Label, _ style.TextStyle[*theme.Theme, theme.TextResources], r theme.TextResources, text richtext.Text) {
	if r.Uppercase {
		text = text.Upper(r.Language)
	}
	l.SetText(text)
}

// LabelText binds ts and text to the label of ctx.
func LabelText(ctx Context[*Label], ts theme.TextStyle, text semantic.Text) error {
	return style.BindText(ctx, applyLabel).ApplyText(ts, text)
}

// LabelTextStream is LabelText for text that changes over time.
func LabelTextStream(ctx Context[*Label], ts theme.TextStyle, texts reactive.Observable[semantic.Text]) error {
	return style.BindText(ctx, applyLabel).ApplyTextStream(ts, texts)
}
