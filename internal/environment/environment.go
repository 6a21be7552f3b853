// Package environment defines the ambient values styles are resolved against
// and the change detectors deciding which transitions matter.
package environment

import (
	"fmt"

	"github.com/alexisbeaulieu97/restyle/internal/localization"
)

// Environment is an immutable snapshot of appearance traits, the application
// theme and the locale.
type Environment[T comparable] struct {
	Traits Traits
	Theme  T
	Locale localization.Locale
}

// Equal reports whether every component of both environments matches.
func (e Environment[T]) Equal(other Environment[T]) bool {
	return e.Traits == other.Traits && e.Theme == other.Theme && e.Locale.Equal(other.Locale)
}

func (e Environment[T]) String() string {
	return fmt.Sprintf("theme=%v locale=%s scheme=%s size=%s", e.Theme, e.Locale, e.Traits.ColorScheme, e.Traits.ContentSize)
}

// Convertible is an application-supplied value that combines with an
// element's live traits into an Environment.
type Convertible[T comparable] interface {
	ToStyleEnvironment(traits Traits) Environment[T]
}

// App is the default Convertible: a theme and a locale.
type App[T comparable] struct {
	Theme  T
	Locale localization.Locale
}

// ToStyleEnvironment implements Convertible.
func (a App[T]) ToStyleEnvironment(traits Traits) Environment[T] {
	return Environment[T]{Traits: traits, Theme: a.Theme, Locale: a.Locale}
}

// WithTheme returns a copy using theme.
func (a App[T]) WithTheme(theme T) App[T] {
	a.Theme = theme
	return a
}

// WithLocale returns a copy using locale.
func (a App[T]) WithLocale(locale localization.Locale) App[T] {
	a.Locale = locale
	return a
}
