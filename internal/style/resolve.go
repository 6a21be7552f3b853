package style

import (
	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/reactive"
)

// Style maps an environment to a resource bundle. Implementations are
// typically small comparable values naming one visual variant.
type Style[T comparable, R any] interface {
	Resources(env environment.Environment[T]) R
}

// StyleFunc adapts a function to Style.
type StyleFunc[T comparable, R any] func(env environment.Environment[T]) R

// Resources implements Style.
func (f StyleFunc[T, R]) Resources(env environment.Environment[T]) R {
	return f(env)
}

// DetectorOverride is implemented by styles that decide for themselves which
// environment transitions require new resources.
type DetectorOverride[T comparable] interface {
	ChangeDetector() environment.Detector[T]
}

// Resolved is one resource emission together with the environment it was
// computed from.
type Resolved[T comparable, R any] struct {
	Env       environment.Environment[T]
	Resources R
	Initial   bool
}

func detectorFor[T comparable](style any, fallback environment.Detector[T]) environment.Detector[T] {
	if o, ok := style.(DetectorOverride[T]); ok {
		if d := o.ChangeDetector(); d != nil {
			return d
		}
	}
	return fallback
}

// ResolveIndexed filters env through the style's detector (or detector when
// the style has none) and computes resources for every retained value. The
// first emission is flagged Initial.
func ResolveIndexed[T comparable, R any](env reactive.Observable[environment.Environment[T]], detector environment.Detector[T], style Style[T, R]) reactive.Observable[Resolved[T, R]] {
	filtered := environment.Filter(env, detectorFor(style, detector))
	return reactive.Map(reactive.Enumerate(filtered), func(item reactive.Indexed[environment.Environment[T]]) Resolved[T, R] {
		return Resolved[T, R]{
			Env:       item.Value,
			Resources: style.Resources(item.Value),
			Initial:   item.Initial(),
		}
	})
}

// Resolve is ResolveIndexed without the bookkeeping.
func Resolve[T comparable, R any](env reactive.Observable[environment.Environment[T]], detector environment.Detector[T], style Style[T, R]) reactive.Observable[R] {
	filtered := environment.Filter(env, detectorFor(style, detector))
	return reactive.Map(filtered, style.Resources)
}
