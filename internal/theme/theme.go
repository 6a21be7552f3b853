// Package theme defines the themes applications publish through the
// environment and the style descriptors resolved against them.
package theme

import (
	"maps"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/richtext"
	"github.com/alexisbeaulieu97/restyle/internal/semantic"
)

// ID identifies a theme in a catalog.
type ID string

// Env is the environment every style of this package resolves against.
// Themes are compared by identity.
type Env = environment.Environment[*Theme]

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
)

const spacingSizeCount = int(SpacingSizeLarge) + 1

type spacingTable [spacingSizeCount]int

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
	}
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

// Spacing returns the cell count for size. Out of range sizes use medium.
func (t *Theme) Spacing(size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(t.spacing) {
		index = int(SpacingSizeMedium)
	}
	return t.spacing[index]
}

// BorderVariant selects one border of a BorderSet.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

func defaultBorders() BorderSet {
	return BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}
}

// Border returns the border for variant.
func (b BorderSet) Border(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return b.Normal
	case BorderVariantThick:
		return b.Thick
	case BorderVariantDouble:
		return b.Double
	case BorderVariantRounded:
		return b.Rounded
	default:
		return b.None
	}
}

// TagStyle describes the attributes a markup tag adds to text.
type TagStyle struct {
	Slot          Slot
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Faint         bool
	Reverse       bool
}

// Attributes resolves the tag style for traits. An empty slot leaves the
// foreground untouched.
func (s TagStyle) Attributes(p Palette, traits environment.Traits) richtext.Attributes {
	attrs := richtext.Attributes{}
	if s.Slot != "" {
		attrs[richtext.Foreground] = Pick(p.Set(s.Slot).Base, traits)
	}
	flags := []struct {
		key richtext.Key
		on  bool
	}{
		{richtext.Bold, s.Bold},
		{richtext.Italic, s.Italic},
		{richtext.Underline, s.Underline},
		{richtext.Strikethrough, s.Strikethrough},
		{richtext.Faint, s.Faint},
		{richtext.Reverse, s.Reverse},
	}
	for _, f := range flags {
		if f.on {
			attrs[f.key] = true
		}
	}
	return attrs
}

func defaultTags() map[semantic.Tag]TagStyle {
	return map[semantic.Tag]TagStyle{
		"b":       {Bold: true},
		"i":       {Italic: true},
		"u":       {Underline: true},
		"s":       {Strikethrough: true},
		"em":      {Italic: true},
		"strong":  {Bold: true},
		"muted":   {Slot: SlotNeutral, Faint: true},
		"accent":  {Slot: SlotPrimary, Bold: true},
		"success": {Slot: SlotSuccess},
		"warning": {Slot: SlotWarning, Bold: true},
		"danger":  {Slot: SlotDanger, Bold: true},
		"code":    {Slot: SlotSecondary},
	}
}

// Theme is one complete set of design tokens.
type Theme struct {
	ID           ID
	Name         string
	Palette      Palette
	Borders      BorderSet
	HighContrast bool

	spacing spacingTable
	tags    map[semantic.Tag]TagStyle
}

// New builds a theme with default borders, spacing and markup tags.
func New(id ID, name string, palette Palette) *Theme {
	return &Theme{
		ID:      id,
		Name:    name,
		Palette: palette,
		Borders: defaultBorders(),
		spacing: defaultSpacingTable(),
		tags:    defaultTags(),
	}
}

// Derive returns an independent copy registered under id.
func (t *Theme) Derive(id ID, name string) *Theme {
	clone := *t
	clone.ID = id
	clone.Name = name
	clone.tags = maps.Clone(t.tags)
	if spacingTableIsZero(clone.spacing) {
		clone.spacing = defaultSpacingTable()
	}
	return &clone
}

// WithTag sets the style of a markup tag. It must be called before the theme
// is published.
func (t *Theme) WithTag(tag semantic.Tag, style TagStyle) *Theme {
	if t.tags == nil {
		t.tags = map[semantic.Tag]TagStyle{}
	}
	t.tags[tag] = style
	return t
}

// Tag returns the style registered for tag.
func (t *Theme) Tag(tag semantic.Tag) (TagStyle, bool) {
	s, ok := t.tags[tag]
	return s, ok
}

// TagAttributes resolves tag for traits. Unknown tags yield no attributes.
func (t *Theme) TagAttributes(tag semantic.Tag, traits environment.Traits) richtext.Attributes {
	s, ok := t.tags[tag]
	if !ok {
		return nil
	}
	attrs := s.Attributes(t.Palette, traits)
	if t.HighContrast && s.Slot != "" {
		attrs[richtext.Bold] = true
	}
	return attrs
}

func (t *Theme) String() string {
	if t == nil {
		return "<none>"
	}
	return string(t.ID)
}
