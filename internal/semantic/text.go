// Package semantic implements a locale and style independent text model.
//
// A Text is a flat sequence of components. Each component carries the tags
// applied to it, outermost first, and one content variant: a literal string,
// pre-attributed rich text, a localizable resource with format arguments, or a
// thunk producing more Text for a locale. Text is resolved into styled
// richtext only when rendered against an AttributesProvider.
package semantic

import (
	"strings"

	"github.com/alexisbeaulieu97/restyle/internal/localization"
	"github.com/alexisbeaulieu97/restyle/internal/richtext"
	"github.com/alexisbeaulieu97/restyle/internal/textformat"
)

// Tag names a text style. Unknown tags are valid and simply contribute no
// attributes.
type Tag string

// Kind identifies the content variant of a component.
type Kind int

const (
	KindPlain Kind = iota
	KindRich
	KindLocalized
	KindDynamic
)

func (k Kind) String() string {
	switch k {
	case KindRich:
		return "rich"
	case KindLocalized:
		return "localized"
	case KindDynamic:
		return "dynamic"
	default:
		return "plain"
	}
}

// Content is one of the component variants.
type Content struct {
	kind     Kind
	plain    string
	rich     richtext.Text
	resource localization.Resource
	args     []any
	dynamic  func(localization.Locale) Text
}

// Kind reports the variant.
func (c Content) Kind() Kind {
	return c.kind
}

// PlainText returns the literal string of plain content.
func (c Content) PlainText() string {
	return c.plain
}

// RichText returns the attributed text of rich content.
func (c Content) RichText() richtext.Text {
	return c.rich
}

// Resource returns the localizable resource and its arguments.
func (c Content) Resource() (localization.Resource, []any) {
	return c.resource, c.args
}

// Component is one tagged piece of a Text.
type Component struct {
	Tags    []Tag
	Content Content
}

// Text is an ordered sequence of components. Concatenation is associative
// and the zero value is its identity.
type Text struct {
	components []Component
}

// String creates a text with one literal component.
func String(s string, tags ...Tag) Text {
	return single(tags, Content{kind: KindPlain, plain: s})
}

// Rich wraps pre-attributed text. Its attributes survive rendering except
// where a tag sets the same key.
func Rich(t richtext.Text, tags ...Tag) Text {
	return single(tags, Content{kind: KindRich, rich: t})
}

// Localized references a string resource formatted with args. Arguments may
// be richtext.Text values to keep their attributes.
func Localized(resource localization.Resource, args ...any) Text {
	return single(nil, Content{kind: KindLocalized, resource: resource, args: append([]any(nil), args...)})
}

// Dynamic defers building the text until a locale is known.
func Dynamic(build func(localization.Locale) Text, tags ...Tag) Text {
	return single(tags, Content{kind: KindDynamic, dynamic: build})
}

func single(tags []Tag, content Content) Text {
	return Text{components: []Component{{Tags: cloneTags(tags), Content: content}}}
}

// Styled applies tag outside every tag already present in t.
func Styled(tag Tag, t Text) Text {
	return StyledWith([]Tag{tag}, t)
}

// StyledWith applies tags, outermost first, outside every tag already present.
func StyledWith(tags []Tag, t Text) Text {
	if len(tags) == 0 {
		return t
	}
	out := make([]Component, len(t.components))
	for i, c := range t.components {
		combined := make([]Tag, 0, len(tags)+len(c.Tags))
		combined = append(combined, tags...)
		combined = append(combined, c.Tags...)
		out[i] = Component{Tags: combined, Content: c.Content}
	}
	return Text{components: out}
}

// Concat joins texts in order.
func Concat(texts ...Text) Text {
	n := 0
	for _, t := range texts {
		n += len(t.components)
	}
	out := make([]Component, 0, n)
	for _, t := range texts {
		out = append(out, t.components...)
	}
	return Text{components: out}
}

// Append returns t followed by other.
func (t Text) Append(other Text) Text {
	return Concat(t, other)
}

// AppendString returns t followed by a literal component.
func (t Text) AppendString(s string) Text {
	return Concat(t, String(s))
}

// Components returns a copy of the component sequence.
func (t Text) Components() []Component {
	out := make([]Component, len(t.components))
	for i, c := range t.components {
		out[i] = Component{Tags: cloneTags(c.Tags), Content: c.Content}
	}
	return out
}

// Len returns the number of components.
func (t Text) Len() int {
	return len(t.components)
}

// IsEmpty reports whether t has no components.
func (t Text) IsEmpty() bool {
	return len(t.components) == 0
}

// String resolves t to plain characters for locale.
func (t Text) String(locale localization.Locale) string {
	var b strings.Builder
	for _, c := range t.components {
		b.WriteString(c.Content.resolve(locale).String())
	}
	return b.String()
}

// resolve renders non-dynamic content to rich text without tag attributes.
// Dynamic content is expanded and concatenated.
func (c Content) resolve(locale localization.Locale) richtext.Text {
	switch c.kind {
	case KindRich:
		return c.rich
	case KindLocalized:
		return textformat.FormatRich(locale.Localize(c.resource), c.args...)
	case KindDynamic:
		if c.dynamic == nil {
			return richtext.Text{}
		}
		inner := c.dynamic(locale)
		var out richtext.Text
		for _, ic := range inner.components {
			out = out.Append(ic.Content.resolve(locale))
		}
		return out
	default:
		return richtext.Plain(c.plain)
	}
}

// hasRichArgs reports whether a localized content carries attributed
// arguments.
func (c Content) hasRichArgs() bool {
	for _, arg := range c.args {
		if _, ok := arg.(richtext.Text); ok {
			return true
		}
	}
	return false
}

// Flatten expands every dynamic component for locale, propagating the
// dynamic component's tags onto the produced components. Localized content
// is formatted. The result holds only plain and rich components.
func (t Text) Flatten(locale localization.Locale) Text {
	return Text{components: flatten(t.components, locale, nil)}
}

func flatten(components []Component, locale localization.Locale, outer []Tag) []Component {
	out := make([]Component, 0, len(components))
	for _, c := range components {
		tags := joinTags(outer, c.Tags)
		switch c.Content.kind {
		case KindDynamic:
			if c.Content.dynamic == nil {
				continue
			}
			out = append(out, flatten(c.Content.dynamic(locale).components, locale, tags)...)
		case KindLocalized:
			resolved := c.Content.resolve(locale)
			if c.Content.hasRichArgs() {
				out = append(out, Component{Tags: tags, Content: Content{kind: KindRich, rich: resolved}})
			} else {
				out = append(out, Component{Tags: tags, Content: Content{kind: KindPlain, plain: resolved.String()}})
			}
		default:
			out = append(out, Component{Tags: tags, Content: c.Content})
		}
	}
	return out
}

func joinTags(outer, inner []Tag) []Tag {
	out := make([]Tag, 0, len(outer)+len(inner))
	out = append(out, outer...)
	return append(out, inner...)
}

func cloneTags(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	return append([]Tag(nil), tags...)
}
