package reactive

// Disposable releases a subscription or any other resource bound to a
// subscription's lifetime. Dispose must be safe to call more than once.
type Disposable interface {
	Dispose()
}

type disposeFunc struct {
	fn func()
}

// NewDisposable wraps fn so that it runs at most once.
func NewDisposable(fn func()) Disposable {
	return &disposeFunc{fn: fn}
}

func (d *disposeFunc) Dispose() {
	if d == nil || d.fn == nil {
		return
	}
	fn := d.fn
	d.fn = nil
	fn()
}

type noopDisposable struct{}

func (noopDisposable) Dispose() {}

// NoopDisposable returns a Disposable that does nothing.
func NoopDisposable() Disposable {
	return noopDisposable{}
}

// Join collects the given handles into one aggregate. Disposing the aggregate
// disposes every non-nil handle exactly once.
func Join(ds ...Disposable) Disposable {
	c := &Composite{}
	for _, d := range ds {
		c.Add(d)
	}
	return c
}

// Composite is an append-only bag of disposables.
type Composite struct {
	items    []Disposable
	disposed bool
}

// Add stores d. When the composite is already disposed, d is disposed
// immediately and Add reports false.
func (c *Composite) Add(d Disposable) bool {
	if d == nil {
		return !c.disposed
	}
	if c.disposed {
		d.Dispose()
		return false
	}
	c.items = append(c.items, d)
	return true
}

// Len reports the number of handles currently held.
func (c *Composite) Len() int {
	return len(c.items)
}

// Disposed reports whether Dispose was called.
func (c *Composite) Disposed() bool {
	return c.disposed
}

// Dispose releases every collected handle.
func (c *Composite) Dispose() {
	if c == nil || c.disposed {
		return
	}
	c.disposed = true
	items := c.items
	c.items = nil
	for _, d := range items {
		d.Dispose()
	}
}

// Serial holds at most one disposable. Replacing it disposes the previous
// value before the new one is stored.
type Serial struct {
	current  Disposable
	disposed bool
}

// Set disposes the held value and stores d. A nil d only clears the slot.
func (s *Serial) Set(d Disposable) {
	if s.disposed {
		if d != nil {
			d.Dispose()
		}
		return
	}
	previous := s.current
	s.current = nil
	if previous != nil {
		previous.Dispose()
	}
	if s.disposed {
		if d != nil {
			d.Dispose()
		}
		return
	}
	s.current = d
}

// Current returns the held disposable, if any.
func (s *Serial) Current() Disposable {
	return s.current
}

// Dispose releases the held value; later Set calls dispose their argument.
func (s *Serial) Dispose() {
	if s == nil || s.disposed {
		return
	}
	s.disposed = true
	if s.current != nil {
		current := s.current
		s.current = nil
		current.Dispose()
	}
}
