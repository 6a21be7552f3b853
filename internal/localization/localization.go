// Package localization resolves string resources against a locale with
// language fallback. Lookups never fail: the default language and finally the
// resource key itself stand in for missing translations.
package localization

import (
	"reflect"

	"golang.org/x/text/language"
)

// DefaultTable is the table consulted when a Resource names none.
const DefaultTable = "Localizable"

// Locale carries the formatting locale, an optional bundle hint and the
// strings used to localize resources. When Bundle is set it selects the
// language used for string lookup while Tag keeps driving formatting.
type Locale struct {
	Tag     language.Tag
	Bundle  string
	Strings Localizer
}

// NewLocale parses tag into a Locale. Invalid input yields language.Und.
func NewLocale(tag string) Locale {
	parsed, err := language.Parse(tag)
	if err != nil {
		return Locale{Tag: language.Und}
	}
	return Locale{Tag: parsed}
}

// Equal reports whether both locales resolve strings and format identically.
// Strings are compared by identity; a Localizer of an uncomparable type never
// equals another one.
func (l Locale) Equal(other Locale) bool {
	return l.Tag.String() == other.Tag.String() && l.Bundle == other.Bundle && sameLocalizer(l.Strings, other.Strings)
}

func sameLocalizer(a, b Localizer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// WithStrings returns a copy resolving resources through strings.
func (l Locale) WithStrings(strings Localizer) Locale {
	l.Strings = strings
	return l
}

// Localize resolves resource, returning its key when no strings are attached.
func (l Locale) Localize(resource Resource) string {
	if l.Strings == nil {
		return resource.Key
	}
	return l.Strings.Localize(l, resource)
}

// LookupTag returns the tag used for string lookup.
func (l Locale) LookupTag() language.Tag {
	if l.Bundle != "" {
		if tag, err := language.Parse(l.Bundle); err == nil {
			return tag
		}
	}
	return l.Tag
}

func (l Locale) String() string {
	if l.Bundle != "" {
		return l.Tag.String() + "@" + l.Bundle
	}
	return l.Tag.String()
}

// Resource names one localizable string.
type Resource struct {
	Key   string
	Table string
}

// NewResource references key in the default table.
func NewResource(key string) Resource {
	return Resource{Key: key, Table: DefaultTable}
}

func (r Resource) table() string {
	if r.Table == "" {
		return DefaultTable
	}
	return r.Table
}

// Localizer resolves resources for a locale.
type Localizer interface {
	Localize(locale Locale, resource Resource) string
}

// Catalog stores per-language string tables.
type Catalog struct {
	fallback language.Tag
	tags     []language.Tag
	tables   map[string]map[string]map[string]string
	matcher  language.Matcher
}

// NewCatalog creates an empty catalog falling back to the given language.
func NewCatalog(fallback language.Tag) *Catalog {
	return &Catalog{
		fallback: fallback,
		tables:   make(map[string]map[string]map[string]string),
	}
}

// Fallback returns the default language.
func (c *Catalog) Fallback() language.Tag {
	return c.fallback
}

// Languages lists the languages with at least one table.
func (c *Catalog) Languages() []language.Tag {
	return append([]language.Tag(nil), c.tags...)
}

// Add merges entries into table for lang. Later entries replace earlier ones.
func (c *Catalog) Add(lang language.Tag, table string, entries map[string]string) {
	if table == "" {
		table = DefaultTable
	}
	key := lang.String()
	tables, ok := c.tables[key]
	if !ok {
		tables = make(map[string]map[string]string)
		c.tables[key] = tables
		c.tags = append(c.tags, lang)
		c.matcher = nil
	}
	values, ok := tables[table]
	if !ok {
		values = make(map[string]string, len(entries))
		tables[table] = values
	}
	for k, v := range entries {
		values[k] = v
	}
}

// Localize returns the best translation of resource for locale.
func (c *Catalog) Localize(locale Locale, resource Resource) string {
	if c == nil {
		return resource.Key
	}
	if value, ok := c.lookup(c.match(locale.LookupTag()), resource); ok {
		return value
	}
	if value, ok := c.lookup(c.fallback, resource); ok {
		return value
	}
	return resource.Key
}

func (c *Catalog) match(tag language.Tag) language.Tag {
	if len(c.tags) == 0 {
		return c.fallback
	}
	if c.matcher == nil {
		supported := make([]language.Tag, 0, len(c.tags)+1)
		supported = append(supported, c.fallback)
		supported = append(supported, c.tags...)
		c.matcher = language.NewMatcher(supported)
	}
	_, index, confidence := c.matcher.Match(tag)
	if confidence == language.No {
		return c.fallback
	}
	if index == 0 {
		return c.fallback
	}
	return c.tags[index-1]
}

func (c *Catalog) lookup(tag language.Tag, resource Resource) (string, bool) {
	tables, ok := c.tables[tag.String()]
	if !ok {
		return "", false
	}
	value, ok := tables[resource.table()][resource.Key]
	return value, ok
}
