// Package richtext models attributed terminal text: a sequence of runs, each
// carrying a set of presentation attributes, rendered with lipgloss.
package richtext

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Key names one presentation attribute.
type Key string

const (
	Foreground    Key = "foreground"
	Background    Key = "background"
	Bold          Key = "bold"
	Italic        Key = "italic"
	Underline     Key = "underline"
	Strikethrough Key = "strikethrough"
	Faint         Key = "faint"
	Reverse       Key = "reverse"
	Blink         Key = "blink"
)

// Keys lists every known attribute key in rendering order.
var Keys = []Key{Foreground, Background, Bold, Italic, Underline, Strikethrough, Faint, Reverse, Blink}

// Attributes maps keys to values. Colors are lipgloss.TerminalColor values and
// the remaining keys hold bools. Values must be comparable.
type Attributes map[Key]any

// Clone returns an independent copy. A nil receiver yields an empty map.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Merge returns a copy of a with every entry of overlay laid on top.
func (a Attributes) Merge(overlay Attributes) Attributes {
	out := a.Clone()
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// Overrides returns the entries of a that are missing from base or hold a
// different value there.
func (a Attributes) Overrides(base Attributes) Attributes {
	out := Attributes{}
	for k, v := range a {
		if existing, ok := base[k]; ok && existing == v {
			continue
		}
		out[k] = v
	}
	return out
}

// Equal compares both maps entry by entry.
func (a Attributes) Equal(other Attributes) bool {
	if len(a) != len(other) {
		return false
	}
	for k, v := range a {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Color returns the color stored under k.
func (a Attributes) Color(k Key) (lipgloss.TerminalColor, bool) {
	c, ok := a[k].(lipgloss.TerminalColor)
	return c, ok
}

// Flag returns the boolean stored under k.
func (a Attributes) Flag(k Key) bool {
	b, _ := a[k].(bool)
	return b
}

func (a Attributes) String() string {
	if len(a) == 0 {
		return "{}"
	}
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, a[Key(k)]))
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Style converts attributes into a lipgloss style created by r. A nil r uses
// the default renderer.
func Style(r *lipgloss.Renderer, attrs Attributes) lipgloss.Style {
	var style lipgloss.Style
	if r != nil {
		style = r.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}

	if c, ok := attrs.Color(Foreground); ok {
		style = style.Foreground(c)
	}
	if c, ok := attrs.Color(Background); ok {
		style = style.Background(c)
	}
	if _, ok := attrs[Bold]; ok {
		style = style.Bold(attrs.Flag(Bold))
	}
	if _, ok := attrs[Italic]; ok {
		style = style.Italic(attrs.Flag(Italic))
	}
	if _, ok := attrs[Underline]; ok {
		style = style.Underline(attrs.Flag(Underline))
	}
	if _, ok := attrs[Strikethrough]; ok {
		style = style.Strikethrough(attrs.Flag(Strikethrough))
	}
	if _, ok := attrs[Faint]; ok {
		style = style.Faint(attrs.Flag(Faint))
	}
	if _, ok := attrs[Reverse]; ok {
		style = style.Reverse(attrs.Flag(Reverse))
	}
	if _, ok := attrs[Blink]; ok {
		style = style.Blink(attrs.Flag(Blink))
	}
	return style
}
