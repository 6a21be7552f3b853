package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/restyle/internal/environment"
)

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by styles.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Neutral   ColourSet
}

// Slot names one semantic colour set of a palette.
type Slot string

const (
	SlotPrimary   Slot = "primary"
	SlotSecondary Slot = "secondary"
	SlotSurface   Slot = "surface"
	SlotSuccess   Slot = "success"
	SlotWarning   Slot = "warning"
	SlotDanger    Slot = "danger"
	SlotInfo      Slot = "info"
	SlotNeutral   Slot = "neutral"
)

// Slots lists every slot in declaration order.
var Slots = []Slot{SlotPrimary, SlotSecondary, SlotSurface, SlotSuccess, SlotWarning, SlotDanger, SlotInfo, SlotNeutral}

// Set returns the colour set for slot. Unknown slots fall back to the surface.
func (p Palette) Set(slot Slot) ColourSet {
	switch slot {
	case SlotPrimary:
		return p.Primary
	case SlotSecondary:
		return p.Secondary
	case SlotSuccess:
		return p.Success
	case SlotWarning:
		return p.Warning
	case SlotDanger:
		return p.Danger
	case SlotInfo:
		return p.Info
	case SlotNeutral:
		return p.Neutral
	default:
		return p.Surface
	}
}

// With returns a copy of p with slot replaced.
func (p Palette) With(slot Slot, set ColourSet) Palette {
	switch slot {
	case SlotPrimary:
		p.Primary = set
	case SlotSecondary:
		p.Secondary = set
	case SlotSuccess:
		p.Success = set
	case SlotWarning:
		p.Warning = set
	case SlotDanger:
		p.Danger = set
	case SlotInfo:
		p.Info = set
	case SlotNeutral:
		p.Neutral = set
	default:
		p.Surface = set
	}
	return p
}

// Pick resolves an adaptive colour for traits. Terminals without color
// support get lipgloss.NoColor.
func Pick(c lipgloss.AdaptiveColor, traits environment.Traits) lipgloss.TerminalColor {
	if traits.Profile == termenv.Ascii {
		return lipgloss.NoColor{}
	}
	if traits.IsDark() {
		return lipgloss.Color(c.Dark)
	}
	return lipgloss.Color(c.Light)
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func lightPalette() Palette {
	return Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}
}

func darkPalette() Palette {
	p := lightPalette()
	p.Surface = ColourSet{
		Base:     ac("#111827", "#0b1120"),
		OnBase:   ac("#f9fafb", "#e5e7eb"),
		Muted:    ac("#1f2937", "#111827"),
		Contrast: ac("#3b82f6", "#60a5fa"),
	}
	p.Neutral = ColourSet{
		Base:     ac("#475569", "#334155"),
		OnBase:   ac("#e5e7eb", "#cbd5f5"),
		Muted:    ac("#374151", "#1f2937"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	}
	return p
}

func contrastPalette() Palette {
	black, white := "#000000", "#ffffff"
	bw := ColourSet{
		Base:     ac(white, black),
		OnBase:   ac(black, white),
		Muted:    ac(white, black),
		Contrast: ac(black, white),
	}
	p := Palette{Surface: bw, Neutral: bw}
	p.Primary = ColourSet{Base: ac("#0000ee", "#ffff00"), OnBase: ac(white, black), Muted: ac("#0000ee", "#ffff00"), Contrast: ac(black, white)}
	p.Secondary = p.Primary
	p.Info = p.Primary
	p.Success = ColourSet{Base: ac("#006400", "#00ff00"), OnBase: ac(white, black), Muted: ac("#006400", "#00ff00"), Contrast: ac(black, white)}
	p.Warning = ColourSet{Base: ac("#8b4500", "#ffa500"), OnBase: ac(white, black), Muted: ac("#8b4500", "#ffa500"), Contrast: ac(black, white)}
	p.Danger = ColourSet{Base: ac("#b00000", "#ff5555"), OnBase: ac(white, black), Muted: ac("#b00000", "#ff5555"), Contrast: ac(black, white)}
	return p
}
