package theme

import (
	"fmt"
	"slices"
)

// Built-in theme identifiers.
const (
	Light    ID = "light"
	Dark     ID = "dark"
	Contrast ID = "contrast"
)

// Catalog holds the themes an application can switch between. The first
// theme added is the fallback.
type Catalog struct {
	themes map[ID]*Theme
	order  []ID
}

// NewCatalog builds a catalog from themes. Later themes replace earlier ones
// with the same ID.
func NewCatalog(themes ...*Theme) *Catalog {
	c := &Catalog{themes: map[ID]*Theme{}}
	for _, t := range themes {
		c.Add(t)
	}
	return c
}

// Default returns the built-in light, dark and high contrast themes.
func Default() *Catalog {
	contrast := New(Contrast, "High contrast", contrastPalette())
	contrast.HighContrast = true
	contrast.Borders.Rounded = contrast.Borders.Thick
	return NewCatalog(
		New(Light, "Light", lightPalette()),
		New(Dark, "Dark", darkPalette()),
		contrast,
	)
}

// Add registers t.
func (c *Catalog) Add(t *Theme) {
	if t == nil {
		return
	}
	if _, exists := c.themes[t.ID]; !exists {
		c.order = append(c.order, t.ID)
	}
	c.themes[t.ID] = t
}

// Get returns the theme registered under id.
func (c *Catalog) Get(id ID) (*Theme, bool) {
	t, ok := c.themes[id]
	return t, ok
}

// MustGet is Get for identifiers known to exist.
func (c *Catalog) MustGet(id ID) *Theme {
	t, ok := c.Get(id)
	if !ok {
		panic(fmt.Sprintf("theme %q is not registered", id))
	}
	return t
}

// Lookup returns the theme for id, or the fallback when id is unknown.
func (c *Catalog) Lookup(id ID) *Theme {
	if t, ok := c.Get(id); ok {
		return t
	}
	return c.Fallback()
}

// Fallback returns the first registered theme.
func (c *Catalog) Fallback() *Theme {
	if len(c.order) == 0 {
		return nil
	}
	return c.themes[c.order[0]]
}

// IDs lists registered identifiers in registration order.
func (c *Catalog) IDs() []ID {
	return slices.Clone(c.order)
}

// Next returns the theme registered after current, wrapping around.
func (c *Catalog) Next(current *Theme) *Theme {
	if len(c.order) == 0 {
		return nil
	}
	if current == nil {
		return c.Fallback()
	}
	i := slices.Index(c.order, current.ID)
	return c.themes[c.order[(i+1)%len(c.order)]]
}
