package theme

import (
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/richtext"
	"github.com/alexisbeaulieu97/restyle/internal/semantic"
)

// ViewResources paint a rectangular surface.
type ViewResources struct {
	Background  lipgloss.TerminalColor
	Foreground  lipgloss.TerminalColor
	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor
	PaddingX    int
	PaddingY    int
}

// Style converts the resources into a lipgloss style created by r.
func (v ViewResources) Style(r *lipgloss.Renderer) lipgloss.Style {
	style := lipgloss.NewStyle()
	if r != nil {
		style = r.NewStyle()
	}
	style = style.Padding(v.PaddingY, v.PaddingX)
	if v.Background != nil {
		style = style.Background(v.Background)
	}
	if v.Foreground != nil {
		style = style.Foreground(v.Foreground)
	}
	if v.Border != (lipgloss.Border{}) {
		style = style.Border(v.Border)
		if v.BorderColor != nil {
			style = style.BorderForeground(v.BorderColor)
		}
	}
	return style
}

// TextResources carry the base attributes of a text element.
type TextResources struct {
	Attributes richtext.Attributes
	Uppercase  bool
	Language   language.Tag
}

// TextAttributes returns the base attributes.
func (t TextResources) TextAttributes() richtext.Attributes {
	return t.Attributes
}

// ButtonResources combine a frame and its label.
type ButtonResources struct {
	Frame ViewResources
	Label TextResources
}

// TextAttributes returns the label attributes.
func (b ButtonResources) TextAttributes() richtext.Attributes {
	return b.Label.Attributes
}

// ViewStyle describes a surface.
type ViewStyle struct {
	Name    string
	Slot    Slot
	Border  BorderVariant
	Padding SpacingSize
}

var (
	Surface = ViewStyle{Name: "surface", Slot: SlotSurface, Padding: SpacingSizeSmall}
	Card    = ViewStyle{Name: "card", Slot: SlotSurface, Border: BorderVariantRounded, Padding: SpacingSizeMedium}
)

// layoutDetector also reacts to size classes, which drive padding and borders.
func layoutDetector() environment.Detector[*Theme] {
	return environment.Either[*Theme](
		environment.ThemeOrAppearanceChanged[*Theme],
		environment.SizeClassChanged[*Theme],
	)
}

// ChangeDetector implements style.DetectorOverride.
func (ViewStyle) ChangeDetector() environment.Detector[*Theme] {
	return layoutDetector()
}

// Resources implements style.Style. Elevated surfaces use the muted shade.
func (s ViewStyle) Resources(env Env) ViewResources {
	t := env.Theme
	if t == nil {
		return ViewResources{}
	}
	set := t.Palette.Set(s.Slot)
	background := set.Base
	if env.Traits.Level == environment.LevelElevated {
		background = set.Muted
	}
	padding := t.Spacing(s.Padding)
	if env.Traits.Horizontal == environment.SizeClassCompact {
		padding = min(padding, t.Spacing(SpacingSizeSmall))
	}
	return ViewResources{
		Background:  Pick(background, env.Traits),
		Foreground:  Pick(set.OnBase, env.Traits),
		Border:      t.Borders.Border(s.Border),
		BorderColor: Pick(t.Palette.Neutral.Base, env.Traits),
		PaddingX:    padding * 2,
		PaddingY:    padding / 2,
	}
}

// TextStyle describes a run of body text.
type TextStyle struct {
	Name      string
	Slot      Slot
	Muted     bool
	Bold      bool
	Italic    bool
	Faint     bool
	Underline bool
	// Uppercase applies from ContentSizeLarge up.
	Uppercase bool
}

var (
	Title   = TextStyle{Name: "title", Slot: SlotPrimary, Bold: true, Uppercase: true}
	Body    = TextStyle{Name: "body", Slot: SlotSurface}
	Caption = TextStyle{Name: "caption", Slot: SlotNeutral, Faint: true}
)

// Resources implements style.Style.
func (s TextStyle) Resources(env Env) TextResources {
	t := env.Theme
	if t == nil {
		return TextResources{}
	}
	set := t.Palette.Set(s.Slot)
	colour := set.Base
	switch {
	case s.Slot == SlotSurface:
		colour = set.OnBase
	case s.Muted:
		colour = set.Muted
	}

	attrs := richtext.Attributes{richtext.Foreground: Pick(colour, env.Traits)}
	if s.Bold || t.HighContrast {
		attrs[richtext.Bold] = true
	}
	if s.Italic {
		attrs[richtext.Italic] = true
	}
	if s.Underline || (s.Bold && env.Traits.ContentSize == environment.ContentSizeExtraLarge) {
		attrs[richtext.Underline] = true
	}
	if s.Faint && !t.HighContrast && env.Traits.ContentSize <= environment.ContentSizeMedium {
		attrs[richtext.Faint] = true
	}
	return TextResources{
		Attributes: attrs,
		Uppercase:  s.Uppercase && env.Traits.ContentSize >= environment.ContentSizeLarge,
		Language:   env.Locale.LookupTag(),
	}
}

// MergeAttributes implements style.TextStyle with the theme's markup tags.
func (s TextStyle) MergeAttributes(tag semantic.Tag, attrs richtext.Attributes, _ []semantic.Tag, env Env) richtext.Attributes {
	return mergeTag(tag, attrs, env)
}

func mergeTag(tag semantic.Tag, attrs richtext.Attributes, env Env) richtext.Attributes {
	if env.Theme == nil {
		return attrs
	}
	return attrs.Merge(env.Theme.TagAttributes(tag, env.Traits))
}

// ButtonStyle describes a pressable control.
type ButtonStyle struct {
	Name    string
	Slot    Slot
	Outline bool
}

var (
	Primary   = ButtonStyle{Name: "primary", Slot: SlotPrimary}
	Secondary = ButtonStyle{Name: "secondary", Slot: SlotSecondary, Outline: true}
	Danger    = ButtonStyle{Name: "danger", Slot: SlotDanger}
)

// Pressed returns the style used while the button is held.
func (s ButtonStyle) Pressed() ButtonStyle {
	s.Name += "-pressed"
	s.Outline = !s.Outline
	return s
}

// ChangeDetector implements style.DetectorOverride. Labels follow the locale.
func (ButtonStyle) ChangeDetector() environment.Detector[*Theme] {
	return environment.Either[*Theme](layoutDetector(), environment.LocaleChanged[*Theme])
}

// Resources implements style.Style.
func (s ButtonStyle) Resources(env Env) ButtonResources {
	t := env.Theme
	if t == nil {
		return ButtonResources{}
	}
	set := t.Palette.Set(s.Slot)
	frame := ViewResources{
		Border:      t.Borders.Border(BorderVariantRounded),
		BorderColor: Pick(set.Muted, env.Traits),
		PaddingX:    t.Spacing(SpacingSizeMedium),
	}
	label := richtext.Attributes{richtext.Bold: true}
	if s.Outline {
		frame.Foreground = Pick(set.Base, env.Traits)
		label[richtext.Foreground] = frame.Foreground
	} else {
		frame.Background = Pick(set.Base, env.Traits)
		frame.Foreground = Pick(set.OnBase, env.Traits)
		label[richtext.Foreground] = frame.Foreground
		label[richtext.Background] = frame.Background
	}
	if env.Traits.Horizontal == environment.SizeClassCompact {
		frame.Border = t.Borders.None
		frame.PaddingX = t.Spacing(SpacingSizeExtraSmall)
	}
	return ButtonResources{Frame: frame, Label: TextResources{Attributes: label, Language: env.Locale.LookupTag()}}
}

// MergeAttributes implements style.TextStyle with the theme's markup tags.
func (s ButtonStyle) MergeAttributes(tag semantic.Tag, attrs richtext.Attributes, _ []semantic.Tag, env Env) richtext.Attributes {
	return mergeTag(tag, attrs, env)
}
