package environment

import (
	"github.com/muesli/termenv"
)

// ColorScheme is the light or dark appearance of a surface.
type ColorScheme int

const (
	ColorSchemeUnspecified ColorScheme = iota
	ColorSchemeLight
	ColorSchemeDark
)

func (c ColorScheme) String() string {
	switch c {
	case ColorSchemeLight:
		return "light"
	case ColorSchemeDark:
		return "dark"
	default:
		return "unspecified"
	}
}

// Level distinguishes base surfaces from elevated ones such as overlays.
type Level int

const (
	LevelBase Level = iota
	LevelElevated
)

// ContentSize is the preferred text size category.
type ContentSize int

const (
	ContentSizeSmall ContentSize = iota
	ContentSizeMedium
	ContentSizeLarge
	ContentSizeExtraLarge
)

func (c ContentSize) String() string {
	switch c {
	case ContentSizeSmall:
		return "small"
	case ContentSizeLarge:
		return "large"
	case ContentSizeExtraLarge:
		return "extra-large"
	default:
		return "medium"
	}
}

// Next returns the following size, wrapping to the smallest.
func (c ContentSize) Next() ContentSize {
	if c >= ContentSizeExtraLarge {
		return ContentSizeSmall
	}
	return c + 1
}

// SizeClass is a coarse width or height bucket.
type SizeClass int

const (
	SizeClassUnspecified SizeClass = iota
	SizeClassCompact
	SizeClassRegular
)

const (
	compactWidthLimit  = 80
	compactHeightLimit = 24
)

// Traits is an immutable appearance snapshot of one element.
type Traits struct {
	ColorScheme ColorScheme
	Level       Level
	ContentSize ContentSize
	Horizontal  SizeClass
	Vertical    SizeClass
	Profile     termenv.Profile
	Width       int
	Height      int
}

// DefaultTraits describes a light, regular size terminal with true color.
func DefaultTraits() Traits {
	return Traits{
		ColorScheme: ColorSchemeLight,
		ContentSize: ContentSizeMedium,
		Horizontal:  SizeClassRegular,
		Vertical:    SizeClassRegular,
		Profile:     termenv.TrueColor,
	}
}

// ForWindow returns t resized to w x h with size classes derived from
// the new dimensions.
func (t Traits) ForWindow(w, h int) Traits {
	t.Width, t.Height = w, h
	t.Horizontal = SizeClassRegular
	if w < compactWidthLimit {
		t.Horizontal = SizeClassCompact
	}
	t.Vertical = SizeClassRegular
	if h < compactHeightLimit {
		t.Vertical = SizeClassCompact
	}
	return t
}

// TraitsForWindow derives traits for a window of w x h cells.
func TraitsForWindow(w, h int) Traits {
	return DefaultTraits().ForWindow(w, h)
}

// IsDark reports whether the scheme is dark.
func (t Traits) IsDark() bool {
	return t.ColorScheme == ColorSchemeDark
}

// HasDifferentColorAppearance reports whether colors resolved against t would
// differ from those resolved against other.
func (t Traits) HasDifferentColorAppearance(other Traits) bool {
	return t.ColorScheme != other.ColorScheme ||
		t.Level != other.Level ||
		t.Profile != other.Profile
}

// Merge overlays the specified fields of override onto t. Zero-valued scheme
// and size classes in override leave t unchanged.
func (t Traits) Merge(override Traits) Traits {
	if override.ColorScheme != ColorSchemeUnspecified {
		t.ColorScheme = override.ColorScheme
	}
	if override.Level != LevelBase {
		t.Level = override.Level
	}
	if override.Horizontal != SizeClassUnspecified {
		t.Horizontal = override.Horizontal
	}
	if override.Vertical != SizeClassUnspecified {
		t.Vertical = override.Vertical
	}
	if override.Width > 0 {
		t.Width = override.Width
	}
	if override.Height > 0 {
		t.Height = override.Height
	}
	return t
}
