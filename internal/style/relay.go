package style

import (
	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/reactive"
)

// Relay remembers the latest value it accepted and replays it to every new
// subscriber. The zero value is ready to use; elements declare one as a
// field.
type Relay[T any] struct {
	replay reactive.ReplaySubject[T]
}

// Accept stores v and forwards it to current subscribers.
func (r *Relay[T]) Accept(v T) {
	r.replay.Next(v)
}

// Latest returns the last accepted value.
func (r *Relay[T]) Latest() (T, bool) {
	return r.replay.Latest()
}

// Observable replays the last accepted value, then follows live values.
func (r *Relay[T]) Observable() reactive.Observable[T] {
	return r.replay.Observable()
}

// Repeater is implemented by compound elements that create children after
// their environment was delivered, such as list cells.
type Repeater[T comparable] interface {
	EnvironmentRelay() *Relay[environment.Convertible[T]]
}
