package style

import (
	"weak"

	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/reactive"
)

// BindOption configures Bind and BindText.
type BindOption func(*bindConfig)

type bindConfig struct {
	strong   bool
	detector any
}

// StrongReference keeps the element alive for as long as the binding. Use it
// for elements built off screen that nothing else holds yet.
func StrongReference() BindOption {
	return func(c *bindConfig) {
		c.strong = true
	}
}

// WithDetector replaces the element kind's default change detector.
func WithDetector[T comparable](d func(prev, next environment.Environment[T]) bool) BindOption {
	return func(c *bindConfig) {
		c.detector = environment.Detector[T](d)
	}
}

func newBindConfig(opts []BindOption) bindConfig {
	var cfg bindConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// elementRef holds an element weakly unless a strong reference was asked for.
type elementRef[T any] struct {
	weak   weak.Pointer[T]
	strong *T
}

func newElementRef[T any](ptr *T, strong bool) elementRef[T] {
	if strong {
		return elementRef[T]{strong: ptr}
	}
	return elementRef[T]{weak: weak.Make(ptr)}
}

func (r elementRef[T]) get() *T {
	if r.strong != nil {
		return r.strong
	}
	return r.weak.Value()
}

// Binder applies resolved resources to one element. Emissions arriving after
// the element was collected are dropped.
type Binder[T any, P interface {
	*T
	AppearanceSignal
}, Th comparable, R any] struct {
	ref       elementRef[T]
	env       reactive.Observable[environment.Environment[Th]]
	collector *Collector
	detector  environment.Detector[Th]
	apply     func(P, Style[Th, R], R)
}

// Bind prepares a binding for the element of ctx. apply is invoked with the
// live element for every retained environment.
func Bind[T any, P interface {
	*T
	AppearanceSignal
}, Th comparable, R any](ctx Context[P, Th], apply func(P, Style[Th, R], R), opts ...BindOption) *Binder[T, P, Th, R] {
	cfg := newBindConfig(opts)
	element := ctx.Element()
	detector, ok := cfg.detector.(environment.Detector[Th])
	if !ok {
		detector = DefaultDetector[Th](element)
	}
	return &Binder[T, P, Th, R]{
		ref:       newElementRef((*T)(element), cfg.strong),
		env:       StyleEnvironment(ctx),
		collector: ctx.Collector(),
		detector:  detector,
		apply:     apply,
	}
}

func (b *Binder[T, P, Th, R]) element() (P, bool) {
	ptr := b.ref.get()
	if ptr == nil {
		var zero P
		return zero, false
	}
	return P(ptr), true
}

// Apply subscribes style and registers the subscription with the setup.
func (b *Binder[T, P, Th, R]) Apply(style Style[Th, R]) error {
	d := Resolve(b.env, b.detector, style).Subscribe(func(resources R) {
		if element, ok := b.element(); ok {
			b.apply(element, style, resources)
		}
	})
	return b.collector.Append(d)
}

// ApplyIndexed is Apply with an initial flag that is true only for the
// first application.
func (b *Binder[T, P, Th, R]) ApplyIndexed(style Style[Th, R], apply func(element P, style Style[Th, R], resources R, initial bool)) error {
	d := ResolveIndexed(b.env, b.detector, style).Subscribe(func(r Resolved[Th, R]) {
		if element, ok := b.element(); ok {
			apply(element, style, r.Resources, r.Initial)
		}
	})
	return b.collector.Append(d)
}

type styled[Th comparable, R any] struct {
	style     Style[Th, R]
	resources R
}

// ApplyForState resolves selector(state) for the latest state value. A new
// state cancels the resolution of the previous one before the next starts.
func ApplyForState[T any, P interface {
	*T
	AppearanceSignal
}, Th comparable, R any, S any](b *Binder[T, P, Th, R], state reactive.Observable[S], selector func(S) Style[Th, R]) error {
	resolved := reactive.SwitchMap(state, func(s S) reactive.Observable[styled[Th, R]] {
		style := selector(s)
		return reactive.Map(Resolve(b.env, b.detector, style), func(r R) styled[Th, R] {
			return styled[Th, R]{style: style, resources: r}
		})
	})
	d := resolved.Subscribe(func(s styled[Th, R]) {
		if element, ok := b.element(); ok {
			b.apply(element, s.style, s.resources)
		}
	})
	return b.collector.Append(d)
}

// ApplyResources binds style to the element of ctx with a simpler callback.
func ApplyResources[T any, P interface {
	*T
	AppearanceSignal
}, Th comparable, R any](ctx Context[P, Th], style Style[Th, R], apply func(P, R), opts ...BindOption) error {
	return Bind(ctx, func(element P, _ Style[Th, R], resources R) {
		apply(element, resources)
	}, opts...).Apply(style)
}
