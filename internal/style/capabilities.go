package style

import (
	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/reactive"
)

// AppearanceSignal is implemented by elements exposing their traits. The
// stream must replay the current traits to new subscribers.
type AppearanceSignal interface {
	Appearance() reactive.Observable[environment.Traits]
}

// SubscriptionSlot stores one style subscription. Setting a new value must
// dispose the previous one; nil clears the slot.
type SubscriptionSlot interface {
	SetStyleSubscription(d reactive.Disposable)
}

// ReadySignal is implemented by elements that become usable after creation.
type ReadySignal interface {
	IsReady() bool
	Ready() reactive.Observable[struct{}]
}

// ElementKind selects default change detectors.
type ElementKind int

const (
	KindGeneric ElementKind = iota
	KindView
)

// KindProvider lets an element declare its kind. Elements without it are
// generic.
type KindProvider interface {
	ElementKind() ElementKind
}

// Slot is an embeddable SubscriptionSlot.
type Slot struct {
	current reactive.Serial
}

// SetStyleSubscription implements SubscriptionSlot.
func (s *Slot) SetStyleSubscription(d reactive.Disposable) {
	s.current.Set(d)
}

// HasStyleSubscription reports whether a subscription is installed.
func (s *Slot) HasStyleSubscription() bool {
	return s.current.Current() != nil
}

func kindOf(element any) ElementKind {
	if k, ok := element.(KindProvider); ok {
		return k.ElementKind()
	}
	return KindGeneric
}

// DefaultDetector returns the detector used for element when neither the
// binding nor the style chooses one.
func DefaultDetector[T comparable](element any) environment.Detector[T] {
	if kindOf(element) == KindView {
		return environment.ThemeOrAppearanceChanged[T]
	}
	return environment.AnyChange[T]
}

// DefaultTextDetector is DefaultDetector for text-bearing bindings, which
// also react to locale changes.
func DefaultTextDetector[T comparable](element any) environment.Detector[T] {
	if kindOf(element) == KindView {
		return environment.LocaleOrThemeOrAppearanceChanged[T]
	}
	return environment.AnyChange[T]
}
