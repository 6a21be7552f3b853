package elements

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/restyle/internal/semantic"
	"github.com/alexisbeaulieu97/restyle/internal/style"
	"github.com/alexisbeaulieu97/restyle/internal/theme"
)

// Panel groups a title, a body and an optional action button on one
// surface.
type Panel struct {
	node
	style.Slot

	look   theme.ViewStyle
	frame  theme.ViewResources
	title  *Label
	body   *Label
	action *Button

	titleText  semantic.Text
	bodyText   semantic.Text
	actionText semantic.Text
	actionLook theme.ButtonStyle
}

// PanelOption configures NewPanel.
type PanelOption func(*Panel)

// WithLook selects the panel surface style.
func WithLook(look theme.ViewStyle) PanelOption {
	return func(p *Panel) { p.look = look }
}

// WithAction adds a button labelled text.
func WithAction(text semantic.Text, look theme.ButtonStyle) PanelOption {
	return func(p *Panel) {
		p.action = NewButton(p.window)
		p.actionText = text
		p.actionLook = look
	}
}

// NewPanel creates a card panel in w. Elevated panels resolve against the
// elevated level.
func NewPanel(w *Window, elevated bool, title, body semantic.Text, opts ...PanelOption) *Panel {
	p := &Panel{
		node:      newNode(w, elevated),
		look:      theme.Card,
		title:     NewLabel(w),
		body:      NewLabel(w),
		titleText: title,
		bodyText:  body,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Title returns the title label.
func (p *Panel) Title() *Label { return p.title }

// Body returns the body label.
func (p *Panel) Body() *Label { return p.body }

// Action returns the action button, or nil.
func (p *Panel) Action() *Button { return p.action }

// Frame returns the applied surface resources.
func (p *Panel) Frame() theme.ViewResources { return p.frame }

// ApplyStylesToChildren implements style.Compound.
func (p *Panel) ApplyStylesToChildren(ctx Context[*Panel]) {
	// Registrations cannot fail while the setup is running.
	_ = PanelStyle(ctx, p.look)
	_ = LabelText(style.Narrow(ctx, p.title), theme.Title, p.titleText)
	_ = LabelText(style.Narrow(ctx, p.body), theme.Body, p.bodyText)
	if p.action != nil {
		_ = ButtonStyle(style.Narrow(ctx, p.action), p.actionLook, p.actionText)
	}
}

// PanelStyle binds look to the panel of ctx.
func PanelStyle(ctx Context[*Panel], look theme.ViewStyle) error {
	return style.ApplyResources(ctx, look, func(p *Panel, r theme.ViewResources) {
		p.frame = r
	})
}

// View renders the panel.
func (p *Panel) View() string {
	rows := []string{p.title.View(), p.body.View()}
	if p.action != nil {
		rows = append(rows, p.action.View())
	}
	return p.frame.Style(p.renderer()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
