package environment

import (
	"github.com/alexisbeaulieu97/restyle/internal/localization"
	"github.com/alexisbeaulieu97/restyle/internal/reactive"
)

// Publisher broadcasts the current application environment. Construct one at
// startup and pass it to whatever needs it.
type Publisher[T comparable] struct {
	current *reactive.Behavior[App[T]]
}

// NewPublisher creates a publisher holding initial.
func NewPublisher[T comparable](initial App[T]) *Publisher[T] {
	return &Publisher[T]{current: reactive.NewBehavior(initial)}
}

// Current returns the latest app environment.
func (p *Publisher[T]) Current() App[T] {
	return p.current.Value()
}

// Set publishes app unless it equals the current value.
func (p *Publisher[T]) Set(app App[T]) {
	current := p.current.Value()
	if current.Theme == app.Theme && current.Locale.Equal(app.Locale) {
		return
	}
	p.current.Next(app)
}

// SetTheme publishes the current value with theme replaced.
func (p *Publisher[T]) SetTheme(theme T) {
	p.Set(p.Current().WithTheme(theme))
}

// SetLocale publishes the current value with locale replaced.
func (p *Publisher[T]) SetLocale(locale localization.Locale) {
	p.Set(p.Current().WithLocale(locale))
}

// Observable replays the current value and then every change.
func (p *Publisher[T]) Observable() reactive.Observable[App[T]] {
	return p.current.Observable()
}

// Convertibles exposes the publisher as the stream style setups consume.
func (p *Publisher[T]) Convertibles() reactive.Observable[Convertible[T]] {
	return reactive.Map(p.Observable(), func(app App[T]) Convertible[T] { return app })
}
