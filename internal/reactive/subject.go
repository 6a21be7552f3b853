package reactive

type subjectEntry[T any] struct {
	sink     Sink[T]
	disposed bool
}

// Subject multicasts values to its current subscribers.
type Subject[T any] struct {
	entries   []*subjectEntry[T]
	completed bool
}

// NewSubject creates an empty Subject.
func NewSubject[T any]() *Subject[T] {
	return &Subject[T]{}
}

// Next delivers v to every subscriber registered before the call.
func (s *Subject[T]) Next(v T) {
	if s.completed {
		return
	}
	for _, entry := range s.snapshot() {
		if entry.disposed || entry.sink.Next == nil {
			continue
		}
		entry.sink.Next(v)
	}
}

// Complete terminates the subject. Later subscribers complete immediately.
func (s *Subject[T]) Complete() {
	if s.completed {
		return
	}
	s.completed = true
	entries := s.snapshot()
	s.entries = nil
	for _, entry := range entries {
		if entry.disposed || entry.sink.Complete == nil {
			continue
		}
		entry.sink.Complete()
	}
}

// Len reports the number of live subscribers.
func (s *Subject[T]) Len() int {
	return len(s.entries)
}

// Observable exposes the subject as a stream.
func (s *Subject[T]) Observable() Observable[T] {
	return Create(s.subscribe)
}

func (s *Subject[T]) subscribe(sink Sink[T]) Disposable {
	if s.completed {
		if sink.Complete != nil {
			sink.Complete()
		}
		return nil
	}
	entry := &subjectEntry[T]{sink: sink}
	s.entries = append(s.entries, entry)
	return NewDisposable(func() {
		entry.disposed = true
		for i, candidate := range s.entries {
			if candidate == entry {
				s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
				break
			}
		}
	})
}

func (s *Subject[T]) snapshot() []*subjectEntry[T] {
	return append([]*subjectEntry[T](nil), s.entries...)
}

// ReplaySubject is a Subject that remembers its latest value and replays it
// to every new subscriber before live values.
type ReplaySubject[T any] struct {
	subject Subject[T]
	last    T
	has     bool
}

// NewReplaySubject creates a ReplaySubject with an empty buffer.
func NewReplaySubject[T any]() *ReplaySubject[T] {
	return &ReplaySubject[T]{}
}

// Next buffers v and delivers it to current subscribers.
func (r *ReplaySubject[T]) Next(v T) {
	if r.subject.completed {
		return
	}
	r.last, r.has = v, true
	r.subject.Next(v)
}

// Complete terminates the subject; the buffered value is still replayed.
func (r *ReplaySubject[T]) Complete() {
	r.subject.Complete()
}

// Latest returns the buffered value.
func (r *ReplaySubject[T]) Latest() (T, bool) {
	return r.last, r.has
}

// Observable exposes the subject as a stream.
func (r *ReplaySubject[T]) Observable() Observable[T] {
	return Create(func(sink Sink[T]) Disposable {
		if r.has && sink.Next != nil {
			sink.Next(r.last)
		}
		return r.subject.subscribe(sink)
	})
}

// Behavior holds a current value and emits it to every new subscriber.
type Behavior[T any] struct {
	replay ReplaySubject[T]
}

// NewBehavior creates a Behavior holding initial.
func NewBehavior[T any](initial T) *Behavior[T] {
	b := &Behavior[T]{}
	b.replay.Next(initial)
	return b
}

// Value returns the current value.
func (b *Behavior[T]) Value() T {
	v, _ := b.replay.Latest()
	return v
}

// Next replaces the current value and notifies subscribers.
func (b *Behavior[T]) Next(v T) {
	b.replay.Next(v)
}

// Update applies f to the current value and publishes the result.
func (b *Behavior[T]) Update(f func(T) T) {
	b.Next(f(b.Value()))
}

// Observable exposes the behavior as a stream.
func (b *Behavior[T]) Observable() Observable[T] {
	return b.replay.Observable()
}
