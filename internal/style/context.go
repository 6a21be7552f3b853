// Package style binds environment driven style descriptors to UI elements.
//
// A style setup runs synchronously inside SetUpStyles. The setup receives a
// Context holding the element, the application environment stream and a
// Collector; every binding made during setup registers its subscription with
// the collector, and the returned Disposable tears all of them down at once.
// Once setup returns the collector is closed and late registrations are
// rejected.
package style

import (
	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/reactive"
	restyleerrors "github.com/alexisbeaulieu97/restyle/pkg/errors"
)

// EnvStream is the application environment stream threaded through a setup.
type EnvStream[T comparable] = reactive.Observable[environment.Convertible[T]]

// Collector gathers the subscriptions created during one style setup.
type Collector struct {
	scope  string
	items  []reactive.Disposable
	closed bool
}

func newCollector() *Collector {
	return &Collector{scope: uuid.NewString()}
}

// Scope returns the identifier of the owning setup.
func (c *Collector) Scope() string {
	return c.scope
}

// Closed reports whether the owning setup has returned.
func (c *Collector) Closed() bool {
	return c.closed
}

// Len returns the number of collected subscriptions.
func (c *Collector) Len() int {
	return len(c.items)
}

// Append registers d. After the setup returned, d is disposed immediately and
// a MisuseError is returned; debug builds panic instead.
func (c *Collector) Append(d reactive.Disposable) error {
	if d == nil {
		return nil
	}
	if !c.closed {
		c.items = append(c.items, d)
		return nil
	}

	d.Dispose()
	err := restyleerrors.NewMisuseError(c.scope, "append subscription", restyleerrors.ErrCollectorClosed)
	log().With("scope_id", c.scope).WarnErr(err, "subscription registered after style setup returned; disposed")
	if failOnMisuse {
		panic(err)
	}
	return err
}

func (c *Collector) close() reactive.Disposable {
	c.closed = true
	items := c.items
	c.items = nil
	return reactive.Join(items...)
}

// Context scopes a style setup to one element.
type Context[E any, T comparable] struct {
	element   E
	env       EnvStream[T]
	collector *Collector
}

// NewContext builds a context around an existing collector.
func NewContext[E any, T comparable](element E, env EnvStream[T], collector *Collector) Context[E, T] {
	return Context[E, T]{element: element, env: env, collector: collector}
}

// Element returns the element the context is scoped to.
func (c Context[E, T]) Element() E {
	return c.element
}

// Env returns the application environment stream.
func (c Context[E, T]) Env() EnvStream[T] {
	return c.env
}

// Collector returns the shared collector.
func (c Context[E, T]) Collector() *Collector {
	return c.collector
}

// Append registers d with the context's collector.
func (c Context[E, T]) Append(d reactive.Disposable) error {
	return c.collector.Append(d)
}

// Narrow scopes ctx to child, sharing the environment stream and collector.
func Narrow[E, C any, T comparable](ctx Context[E, T], child C) Context[C, T] {
	return Context[C, T]{element: child, env: ctx.env, collector: ctx.collector}
}

// MapElement scopes ctx to f(element).
func MapElement[E, C any, T comparable](ctx Context[E, T], f func(E) C) Context[C, T] {
	return Narrow(ctx, f(ctx.element))
}

// MapEnvironment converts every application environment value with f.
func MapEnvironment[E any, T, U comparable](ctx Context[E, T], f func(environment.Convertible[T]) environment.Convertible[U]) Context[E, U] {
	return Context[E, U]{
		element:   ctx.element,
		env:       reactive.Map(ctx.env, f),
		collector: ctx.collector,
	}
}

// SetUpStyles runs setUp with a fresh context for element and returns one
// handle disposing every subscription the setup registered. The environment
// stream is shared between the bindings of the setup.
func SetUpStyles[E any, T comparable](element E, env EnvStream[T], setUp func(Context[E, T])) reactive.Disposable {
	collector := newCollector()
	ctx := Context[E, T]{element: element, env: reactive.ShareReplay(env), collector: collector}
	setUp(ctx)
	count := collector.Len()
	aggregate := collector.close()

	l := log()
	if l.DebugEnabled() {
		l.WithFields(map[string]any{"scope_id": collector.scope, "subscriptions": count}).Debug("style scope opened")
	}
	return reactive.NewDisposable(func() {
		aggregate.Dispose()
		if l.DebugEnabled() {
			l.With("scope_id", collector.scope).Debug("style scope disposed")
		}
	})
}

// SetUpStylesForState re-runs setUp for every value of state. The nested
// setup of the previous value is disposed before the next one starts.
func SetUpStylesForState[E any, T comparable, S any](ctx Context[E, T], state reactive.Observable[S], setUp func(Context[E, T], S)) error {
	nested := &reactive.Serial{}
	element, env := ctx.element, ctx.env
	sub := state.Subscribe(func(s S) {
		nested.Set(nil)
		nested.Set(SetUpStyles(element, env, func(inner Context[E, T]) {
			setUp(inner, s)
		}))
	})
	return ctx.Append(reactive.Join(sub, nested))
}

// StyleEnvironment combines the application environment with the element's
// own appearance traits.
func StyleEnvironment[E AppearanceSignal, T comparable](ctx Context[E, T]) reactive.Observable[environment.Environment[T]] {
	return combineEnvironment(ctx.env, ctx.element.Appearance())
}

func combineEnvironment[T comparable](env EnvStream[T], traits reactive.Observable[environment.Traits]) reactive.Observable[environment.Environment[T]] {
	return reactive.CombineLatest(env, traits, func(app environment.Convertible[T], t environment.Traits) environment.Environment[T] {
		return app.ToStyleEnvironment(t)
	})
}
