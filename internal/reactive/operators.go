package reactive

// Map transforms every value of src with f.
func Map[T, R any](src Observable[T], f func(T) R) Observable[R] {
	return Create(func(sink Sink[R]) Disposable {
		return src.SubscribeSink(Sink[T]{
			Next:     func(v T) { sink.Next(f(v)) },
			Complete: sink.Complete,
		})
	})
}

// Filter forwards the values for which keep returns true.
func Filter[T any](src Observable[T], keep func(T) bool) Observable[T] {
	return Create(func(sink Sink[T]) Disposable {
		return src.SubscribeSink(Sink[T]{
			Next: func(v T) {
				if keep(v) {
					sink.Next(v)
				}
			},
			Complete: sink.Complete,
		})
	})
}

// Scan folds src into an accumulator and emits every intermediate state.
// Each subscriber folds from its own copy of seed.
func Scan[T, S any](src Observable[T], seed S, step func(S, T) S) Observable[S] {
	return Create(func(sink Sink[S]) Disposable {
		state := seed
		return src.SubscribeSink(Sink[T]{
			Next: func(v T) {
				state = step(state, v)
				sink.Next(state)
			},
			Complete: sink.Complete,
		})
	})
}

// Take forwards the first n values and completes.
func Take[T any](src Observable[T], n int) Observable[T] {
	return Create(func(sink Sink[T]) Disposable {
		if n <= 0 {
			sink.Complete()
			return nil
		}
		seen := 0
		return src.SubscribeSink(Sink[T]{
			Next: func(v T) {
				if seen >= n {
					return
				}
				seen++
				sink.Next(v)
				if seen == n {
					sink.Complete()
				}
			},
			Complete: sink.Complete,
		})
	})
}

// StartWith emits values before subscribing to src.
func StartWith[T any](src Observable[T], values ...T) Observable[T] {
	return Create(func(sink Sink[T]) Disposable {
		for _, v := range values {
			sink.Next(v)
		}
		return src.SubscribeSink(sink)
	})
}

// DistinctUntilChanged drops values equal to their predecessor.
func DistinctUntilChanged[T any](src Observable[T], equal func(a, b T) bool) Observable[T] {
	return Create(func(sink Sink[T]) Disposable {
		var (
			last T
			has  bool
		)
		return src.SubscribeSink(Sink[T]{
			Next: func(v T) {
				if has && equal(last, v) {
					return
				}
				last, has = v, true
				sink.Next(v)
			},
			Complete: sink.Complete,
		})
	})
}

// Indexed pairs a value with its zero-based emission index.
type Indexed[T any] struct {
	Index int
	Value T
}

// Initial reports whether this is the first emission of its stream.
func (i Indexed[T]) Initial() bool {
	return i.Index == 0
}

// Enumerate zips src with the emission index.
func Enumerate[T any](src Observable[T]) Observable[Indexed[T]] {
	return Create(func(sink Sink[Indexed[T]]) Disposable {
		index := 0
		return src.SubscribeSink(Sink[T]{
			Next: func(v T) {
				current := index
				index++
				sink.Next(Indexed[T]{Index: current, Value: v})
			},
			Complete: sink.Complete,
		})
	})
}

// CombineLatest emits combine(a, b) with the latest value of each source once
// both have emitted. It completes when both sources complete.
func CombineLatest[A, B, R any](a Observable[A], b Observable[B], combine func(A, B) R) Observable[R] {
	return Create(func(sink Sink[R]) Disposable {
		var (
			lastA        A
			lastB        B
			hasA, hasB   bool
			doneA, doneB bool
		)
		emit := func() {
			if hasA && hasB {
				sink.Next(combine(lastA, lastB))
			}
		}
		subA := a.SubscribeSink(Sink[A]{
			Next: func(v A) {
				lastA, hasA = v, true
				emit()
			},
			Complete: func() {
				doneA = true
				if doneB || !hasA {
					sink.Complete()
				}
			},
		})
		subB := b.SubscribeSink(Sink[B]{
			Next: func(v B) {
				lastB, hasB = v, true
				emit()
			},
			Complete: func() {
				doneB = true
				if doneA || !hasB {
					sink.Complete()
				}
			},
		})
		return Join(subA, subB)
	})
}

// SwitchMap maps every value of src to an inner stream and forwards only the
// latest one. The previous inner subscription is disposed before the next is
// subscribed.
func SwitchMap[T, R any](src Observable[T], project func(T) Observable[R]) Observable[R] {
	return Create(func(sink Sink[R]) Disposable {
		var (
			inner     Serial
			current   *innerState
			outerDone bool
		)
		outer := src.SubscribeSink(Sink[T]{
			Next: func(v T) {
				inner.Set(nil)
				state := &innerState{active: true}
				current = state
				d := project(v).SubscribeSink(Sink[R]{
					Next: sink.Next,
					Complete: func() {
						state.active = false
						if current == state && outerDone {
							sink.Complete()
						}
					},
				})
				if state.active {
					inner.Set(d)
				}
			},
			Complete: func() {
				outerDone = true
				if current == nil || !current.active {
					sink.Complete()
				}
			},
		})
		return Join(outer, &inner)
	})
}

type innerState struct {
	active bool
}

// ShareReplay multicasts src to every subscriber and replays the latest value
// to late subscribers. The upstream connection opens with the first subscriber
// and closes when the last one leaves.
func ShareReplay[T any](src Observable[T]) Observable[T] {
	var (
		subject *ReplaySubject[T]
		conn    Disposable
		refs    int
	)
	return Create(func(sink Sink[T]) Disposable {
		if subject == nil {
			subject = NewReplaySubject[T]()
		}
		current := subject
		refs++
		inner := current.Observable().SubscribeSink(sink)
		if refs == 1 {
			conn = src.SubscribeSink(Sink[T]{Next: current.Next, Complete: current.Complete})
		}
		return NewDisposable(func() {
			inner.Dispose()
			refs--
			if refs > 0 {
				return
			}
			upstream := conn
			conn = nil
			subject = nil
			if upstream != nil {
				upstream.Dispose()
			}
		})
	})
}
