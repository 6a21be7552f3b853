package semantic

import (
	"github.com/alexisbeaulieu97/restyle/internal/localization"
	"github.com/alexisbeaulieu97/restyle/internal/richtext"
)

// AttributesProvider supplies the attributes used to render a Text.
type AttributesProvider interface {
	// Locale resolves localized and dynamic content.
	Locale() localization.Locale
	// CommonAttributes apply to every component regardless of tags.
	CommonAttributes() richtext.Attributes
	// MergeAttributes returns attrs updated with whatever tag contributes.
	// applied lists every tag of the component, innermost first. A tag with
	// no attributes returns attrs unchanged.
	MergeAttributes(tag Tag, attrs richtext.Attributes, applied []Tag) richtext.Attributes
}

// ProviderFuncs is an AttributesProvider assembled from plain values.
type ProviderFuncs struct {
	Loc    localization.Locale
	Common richtext.Attributes
	// Lookup returns the attributes of tag, or nil when it has none.
	Lookup func(tag Tag) richtext.Attributes
}

// Locale implements AttributesProvider.
func (p ProviderFuncs) Locale() localization.Locale {
	return p.Loc
}

// CommonAttributes implements AttributesProvider.
func (p ProviderFuncs) CommonAttributes() richtext.Attributes {
	return p.Common
}

// MergeAttributes implements AttributesProvider.
func (p ProviderFuncs) MergeAttributes(tag Tag, attrs richtext.Attributes, _ []Tag) richtext.Attributes {
	if p.Lookup == nil {
		return attrs
	}
	extra := p.Lookup(tag)
	if len(extra) == 0 {
		return attrs
	}
	return attrs.Merge(extra)
}

// TagAttributes builds a provider from a static tag table.
func TagAttributes(locale localization.Locale, common richtext.Attributes, tags map[Tag]richtext.Attributes) ProviderFuncs {
	return ProviderFuncs{
		Loc:    locale,
		Common: common,
		Lookup: func(tag Tag) richtext.Attributes { return tags[tag] },
	}
}

// DefaultProvider renders with no attributes at all.
func DefaultProvider(locale localization.Locale) ProviderFuncs {
	return ProviderFuncs{Loc: locale}
}

// Render resolves t against p.
//
// Every component starts from the common attributes; its tags are then merged
// outermost first so the innermost tag wins a conflicting key. Plain and
// localized content takes the result as is. Rich content keeps its own
// attributes, gains common ones it lacks, and yields only to keys its tags
// set.
func (t Text) Render(p AttributesProvider) richtext.Text {
	locale := p.Locale()
	common := p.CommonAttributes()
	var out richtext.Text
	for _, c := range t.Flatten(locale).components {
		out = out.Append(renderComponent(c, locale, common, p))
	}
	return out
}

func renderComponent(c Component, locale localization.Locale, common richtext.Attributes, p AttributesProvider) richtext.Text {
	running := common.Clone()
	applied := innermostFirst(c.Tags)
	for _, tag := range c.Tags {
		running = p.MergeAttributes(tag, running, applied)
	}

	if c.Content.kind == KindPlain {
		return richtext.New(c.Content.plain, running)
	}
	return c.Content.resolve(locale).
		UnderAttributes(common).
		WithAttributes(tagWritten(c.Tags, applied, running, p))
}

// tagWritten returns the entries of running whose keys some tag sets, even
// when the value matches the common attributes.
func tagWritten(tags, applied []Tag, running richtext.Attributes, p AttributesProvider) richtext.Attributes {
	if len(tags) == 0 {
		return nil
	}
	written := richtext.Attributes{}
	for _, tag := range tags {
		written = p.MergeAttributes(tag, written, applied)
	}
	out := make(richtext.Attributes, len(written))
	for k := range written {
		if v, ok := running[k]; ok {
			out[k] = v
		}
	}
	return out
}

func innermostFirst(tags []Tag) []Tag {
	out := make([]Tag, len(tags))
	for i, tag := range tags {
		out[len(tags)-1-i] = tag
	}
	return out
}

// RenderString is a convenience for rendering with a static tag table.
func RenderString(markup string, locale localization.Locale, common richtext.Attributes, tags map[Tag]richtext.Attributes) richtext.Text {
	return XMLString(markup).Render(TagAttributes(locale, common, tags))
}
