package environment

import (
	"github.com/alexisbeaulieu97/restyle/internal/reactive"
)

// Detector decides whether the transition from prev to next is significant.
// Detectors must be pure functions of their two arguments.
type Detector[T comparable] func(prev, next Environment[T]) bool

// AnyChange treats every transition as significant.
func AnyChange[T comparable](Environment[T], Environment[T]) bool {
	return true
}

// TraitsChanged fires when any trait differs.
func TraitsChanged[T comparable](prev, next Environment[T]) bool {
	return prev.Traits != next.Traits
}

// AppearanceChanged fires when the color appearance or the content size
// category differs.
func AppearanceChanged[T comparable](prev, next Environment[T]) bool {
	return prev.Traits.HasDifferentColorAppearance(next.Traits) ||
		prev.Traits.ContentSize != next.Traits.ContentSize
}

// SizeClassChanged fires when either size class differs.
func SizeClassChanged[T comparable](prev, next Environment[T]) bool {
	return prev.Traits.Horizontal != next.Traits.Horizontal ||
		prev.Traits.Vertical != next.Traits.Vertical
}

// ThemeChanged fires when the theme differs.
func ThemeChanged[T comparable](prev, next Environment[T]) bool {
	return prev.Theme != next.Theme
}

// LocaleChanged fires when the locale differs.
func LocaleChanged[T comparable](prev, next Environment[T]) bool {
	return !prev.Locale.Equal(next.Locale)
}

// ThemeOrAppearanceChanged is the default for visual elements.
func ThemeOrAppearanceChanged[T comparable](prev, next Environment[T]) bool {
	return ThemeChanged(prev, next) || AppearanceChanged(prev, next)
}

// LocaleOrThemeOrAppearanceChanged is the default for text on visual elements.
func LocaleOrThemeOrAppearanceChanged[T comparable](prev, next Environment[T]) bool {
	return LocaleChanged(prev, next) || ThemeOrAppearanceChanged(prev, next)
}

// Either fires when any of detectors fires.
func Either[T comparable](detectors ...Detector[T]) Detector[T] {
	return func(prev, next Environment[T]) bool {
		for _, d := range detectors {
			if d != nil && d(prev, next) {
				return true
			}
		}
		return false
	}
}

type retained[T comparable] struct {
	baseline Environment[T]
	has      bool
	emit     bool
}

// Filter suppresses insignificant transitions of src. The first environment
// is always forwarded. Every later one is compared with the last forwarded
// value, so a run of suppressed values never moves the baseline.
func Filter[T comparable](src reactive.Observable[Environment[T]], detector Detector[T]) reactive.Observable[Environment[T]] {
	if detector == nil {
		detector = AnyChange[T]
	}
	folded := reactive.Scan(src, retained[T]{}, func(state retained[T], next Environment[T]) retained[T] {
		if !state.has || detector(state.baseline, next) {
			return retained[T]{baseline: next, has: true, emit: true}
		}
		state.emit = false
		return state
	})
	significant := reactive.Filter(folded, func(state retained[T]) bool { return state.emit })
	return reactive.Map(significant, func(state retained[T]) Environment[T] { return state.baseline })
}
