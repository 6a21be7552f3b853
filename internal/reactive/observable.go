// Package reactive provides single-goroutine push observables used to carry
// environment and resource values through the styling runtime.
//
// Emission is synchronous on the caller's goroutine and nothing here locks.
// A subscription disposed in the middle of an emission never observes the
// values that follow.
package reactive

// Sink receives values from an Observable. Either callback may be nil.
type Sink[T any] struct {
	Next     func(T)
	Complete func()
}

// Observable is a cold, push-based stream. The zero value never emits.
type Observable[T any] struct {
	subscribe func(Sink[T]) Disposable
}

// Create builds an Observable from a subscribe function. The function may
// emit synchronously before returning its teardown.
func Create[T any](subscribe func(Sink[T]) Disposable) Observable[T] {
	return Observable[T]{subscribe: subscribe}
}

// Subscribe registers next for every emitted value.
func (o Observable[T]) Subscribe(next func(T)) Disposable {
	return o.SubscribeSink(Sink[T]{Next: next})
}

// SubscribeSink registers sink and returns the handle that stops delivery.
func (o Observable[T]) SubscribeSink(sink Sink[T]) Disposable {
	sub := &subscription[T]{sink: sink}
	if o.subscribe == nil {
		return sub
	}
	teardown := o.subscribe(Sink[T]{Next: sub.next, Complete: sub.complete})
	sub.attach(teardown)
	return sub
}

type subscription[T any] struct {
	sink     Sink[T]
	teardown Disposable
	stopped  bool
}

func (s *subscription[T]) next(v T) {
	if s.stopped || s.sink.Next == nil {
		return
	}
	s.sink.Next(v)
}

func (s *subscription[T]) complete() {
	if s.stopped {
		return
	}
	s.stopped = true
	if s.sink.Complete != nil {
		s.sink.Complete()
	}
	s.release()
}

func (s *subscription[T]) attach(teardown Disposable) {
	if teardown == nil {
		return
	}
	if s.stopped {
		teardown.Dispose()
		return
	}
	s.teardown = teardown
}

func (s *subscription[T]) release() {
	if s.teardown == nil {
		return
	}
	teardown := s.teardown
	s.teardown = nil
	teardown.Dispose()
}

func (s *subscription[T]) Dispose() {
	s.stopped = true
	s.release()
}

// Just emits v and completes.
func Just[T any](v T) Observable[T] {
	return Of(v)
}

// Of emits each value in order and completes.
func Of[T any](values ...T) Observable[T] {
	return Create(func(sink Sink[T]) Disposable {
		for _, v := range values {
			sink.Next(v)
		}
		sink.Complete()
		return nil
	})
}

// Empty completes without emitting.
func Empty[T any]() Observable[T] {
	return Create(func(sink Sink[T]) Disposable {
		sink.Complete()
		return nil
	})
}

// Never neither emits nor completes.
func Never[T any]() Observable[T] {
	return Observable[T]{}
}

// Defer calls factory for every subscriber.
func Defer[T any](factory func() Observable[T]) Observable[T] {
	return Create(func(sink Sink[T]) Disposable {
		return factory().SubscribeSink(sink)
	})
}
