package elements

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/restyle/internal/reactive"
	"github.com/alexisbeaulieu97/restyle/internal/semantic"
	"github.com/alexisbeaulieu97/restyle/internal/style"
	"github.com/alexisbeaulieu97/restyle/internal/theme"
)

// Screen is the root widget: a header, panels, a list and a status line. It
// becomes ready once loaded.
type Screen struct {
	node
	style.Slot

	frame  theme.ViewResources
	header *Label
	status *Label
	panels []*Panel
	list   *List

	headerText semantic.Text
	statusText *reactive.Behavior[semantic.Text]

	ready  bool
	loaded *reactive.Subject[struct{}]
}

// NewScreen creates an unloaded screen in w.
func NewScreen(w *Window, header semantic.Text) *Screen {
	return &Screen{
		node:       newNode(w, false),
		header:     NewLabel(w),
		status:     NewLabel(w),
		list:       NewList(w),
		headerText: header,
		statusText: reactive.NewBehavior(semantic.Text{}),
		loaded:     reactive.NewSubject[struct{}](),
	}
}

// AddPanel appends p. Panels added after styling need ApplyStyles again.
func (s *Screen) AddPanel(p *Panel) *Screen {
	s.panels = append(s.panels, p)
	return s
}

// Header returns the header label.
func (s *Screen) Header() *Label { return s.header }

// Status returns the status label.
func (s *Screen) Status() *Label { return s.status }

// Panels returns the panels in display order.
func (s *Screen) Panels() []*Panel { return s.panels }

// List returns the row list.
func (s *Screen) List() *List { return s.list }

// SetStatus replaces the status line.
func (s *Screen) SetStatus(t semantic.Text) {
	s.statusText.Next(t)
}

// Load marks the screen ready.
func (s *Screen) Load() {
	if s.ready {
		return
	}
	s.ready = true
	s.loaded.Next(struct{}{})
}

// IsReady implements style.ReadySignal.
func (s *Screen) IsReady() bool {
	return s.ready
}

// Ready implements style.ReadySignal.
func (s *Screen) Ready() reactive.Observable[struct{}] {
	return s.loaded.Observable()
}

// ApplyStylesToChildren implements style.Compound.
func (s *Screen) ApplyStylesToChildren(ctx Context[*Screen]) {
	// Registrations cannot fail while the setup is running.
	_ = style.ApplyResources(ctx, theme.Surface, func(screen *Screen, r theme.ViewResources) {
		screen.frame = r
	})
	_ = LabelText(style.Narrow(ctx, s.header), theme.Title, s.headerText)
	_ = LabelTextStream(style.Narrow(ctx, s.status), theme.Caption, s.statusText.Observable())
	for _, p := range s.panels {
		_ = style.ApplyChild(style.Narrow(ctx, p))
	}
	_ = style.ApplyChild(style.Narrow(ctx, s.list))
}

// View renders the screen.
func (s *Screen) View() string {
	rows := []string{s.header.View()}
	for _, p := range s.panels {
		rows = append(rows, p.View())
	}
	if s.list.Len() > 0 {
		rows = append(rows, s.list.View())
	}
	rows = append(rows, s.status.View())
	return s.frame.Style(s.renderer()).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
