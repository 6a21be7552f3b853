package elements

import (
	"strings"

	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/semantic"
	"github.com/alexisbeaulieu97/restyle/internal/style"
	"github.com/alexisbeaulieu97/restyle/internal/theme"
)

// List shows rows in cells created on demand. Cells made after the list was
// styled pick up the environment from the list's relay.
type List struct {
	node
	style.Slot

	relay style.Relay[environment.Convertible[*theme.Theme]]
	rows  []semantic.Text
	cells []*Cell
}

// NewList creates an empty list in w.
func NewList(w *Window) *List {
	return &List{node: newNode(w, false)}
}

// EnvironmentRelay implements style.Repeater.
func (l *List) EnvironmentRelay() *style.Relay[environment.Convertible[*theme.Theme]] {
	return &l.relay
}

// ApplyStylesToChildren implements style.Compound. Cells style themselves
// from the relay.
func (l *List) ApplyStylesToChildren(Context[*List]) {}

// Append adds a row. Its cell is created and styled immediately.
func (l *List) Append(row semantic.Text) *Cell {
	l.rows = append(l.rows, row)
	cell := newCell(l.window, len(l.cells), row)
	l.cells = append(l.cells, cell)
	style.ApplyStyles(cell, l.relay.Observable())
	return cell
}

// Len returns the number of rows.
func (l *List) Len() int {
	return len(l.rows)
}

// Cells returns the created cells.
func (l *List) Cells() []*Cell {
	return l.cells
}

// Clear disposes every cell.
func (l *List) Clear() {
	for _, c := range l.cells {
		c.SetStyleSubscription(nil)
	}
	l.cells = nil
	l.rows = nil
}

// View renders every cell on its own line.
func (l *List) View() string {
	lines := make([]string, 0, len(l.cells))
	for _, c := range l.cells {
		lines = append(lines, c.View())
	}
	return strings.Join(lines, "\n")
}

// Cell is one list row.
type Cell struct {
	node
	style.Slot

	index int
	row   semantic.Text
	label *Label
}

func newCell(w *Window, index int, row semantic.Text) *Cell {
	return &Cell{node: newNode(w, false), index: index, row: row, label: NewLabel(w)}
}

// Index returns the row position.
func (c *Cell) Index() int { return c.index }

// Label returns the row label.
func (c *Cell) Label() *Label { return c.label }

// ApplyStylesToChildren implements style.Compound. Odd rows use captions.
func (c *Cell) ApplyStylesToChildren(ctx Context[*Cell]) {
	look := theme.Body
	if c.index%2 == 1 {
		look = theme.Caption
	}
	// Registrations cannot fail while the setup is running.
	_ = LabelText(style.Narrow(ctx, c.label), look, semantic.Concat(semantic.String("• "), c.row))
}

// View renders the row.
func (c *Cell) View() string {
	return c.label.View()
}
