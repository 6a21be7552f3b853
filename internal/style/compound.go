package style

import (
	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/reactive"
)

// Compound is an element that owns children and styles them from a context
// scoped to itself.
type Compound[E any, T comparable] interface {
	SubscriptionSlot
	ApplyStylesToChildren(ctx Context[E, T])
}

// ApplyStyles runs el's child setup against env and installs the result in
// el's slot. The previous subscription is disposed before the new setup
// starts, and the slot is cleared once env completes. Repeaters also forward
// env into their relay.
func ApplyStyles[E Compound[E, T], T comparable](el E, env EnvStream[T]) {
	el.SetStyleSubscription(nil)
	installed, completed := false, false
	d := SetUpStyles(el, env, func(ctx Context[E, T]) {
		// The collector is still open here.
		_ = ctx.Append(ctx.Env().SubscribeSink(reactive.Sink[environment.Convertible[T]]{
			Complete: func() {
				completed = true
				if installed {
					el.SetStyleSubscription(nil)
				}
			},
		}))
		if r, ok := any(el).(Repeater[T]); ok {
			relay := r.EnvironmentRelay()
			_ = ctx.Append(ctx.Env().Subscribe(relay.Accept))
		}
		el.ApplyStylesToChildren(ctx)
	})
	if completed {
		d.Dispose()
		return
	}
	installed = true
	el.SetStyleSubscription(d)
}

// ApplyStylesOnLoad is ApplyStyles deferred until el reports ready. An
// element that is already ready is styled synchronously.
func ApplyStylesOnLoad[E interface {
	Compound[E, T]
	ReadySignal
}, T comparable](el E, env EnvStream[T]) {
	if el.IsReady() {
		ApplyStyles(el, env)
		return
	}
	el.SetStyleSubscription(nil)
	wait := reactive.Take(el.Ready(), 1).Subscribe(func(struct{}) {
		ApplyStyles(el, env)
	})
	// Ready may already have fired during Subscribe.
	if !el.IsReady() {
		el.SetStyleSubscription(wait)
	}
}

// ApplyChild styles the compound element of ctx from inside a parent setup.
// The child's subscription is cleared when the parent's setup is disposed.
func ApplyChild[C Compound[C, T], T comparable](ctx Context[C, T]) error {
	child := ctx.Element()
	ApplyStyles(child, ctx.Env())
	return ctx.Append(reactive.NewDisposable(func() {
		child.SetStyleSubscription(nil)
	}))
}
