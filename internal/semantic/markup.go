package semantic

import (
	"regexp"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/restyle/internal/localization"
	"github.com/alexisbeaulieu97/restyle/internal/richtext"
)

var (
	tagRegex = regexp.MustCompile(`<\/?([^<>\s/]*)>`)

	entityReplacer = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")
)

// XML wraps t so that inline <tag>...</tag> markup in its content is turned
// into tagged components when the text is resolved for a locale.
//
// Tags pair last-in-first-out per name. Closing tags with no open tag of the
// same name, and tags still open at the end, are removed from the output and
// apply no style. The entities &lt; &gt; and &amp; produce literal characters.
func XML(t Text) Text {
	source := t
	return Dynamic(func(locale localization.Locale) Text {
		return Parse(source, locale)
	})
}

// XMLString is XML(String(s)).
func XMLString(s string) Text {
	return XML(String(s))
}

// XMLResource parses the localized and formatted resource as markup.
func XMLResource(resource localization.Resource, args ...any) Text {
	return XML(Localized(resource, args...))
}

type tagToken struct {
	name      string
	start     int
	end       int
	opening   bool
	component int
	balanced  bool
}

type flatComponent struct {
	tags []Tag
	text richtext.Text
	rich bool
}

// Parse resolves t for locale and replaces markup tokens with tags. The
// result contains only plain and rich components.
func Parse(t Text, locale localization.Locale) Text {
	flat := flattenForMarkup(t, locale)
	tokens := scanTags(flat)
	balance(tokens)

	var (
		components []Component
		active     []Tag
		next       int
	)
	for i, fc := range flat {
		begin := 0
		for ; next < len(tokens) && tokens[next].component == i; next++ {
			tok := tokens[next]
			components = appendSegment(components, fc, begin, tok.start, active)
			if tok.balanced {
				if tok.opening {
					active = append(active, Tag(tok.name))
				} else {
					active = removeLast(active, Tag(tok.name))
				}
			}
			begin = tok.end
		}
		components = appendSegment(components, fc, begin, fc.text.Len(), active)
	}

	return Text{components: components}
}

func flattenForMarkup(t Text, locale localization.Locale) []flatComponent {
	resolved := t.Flatten(locale)
	out := make([]flatComponent, 0, len(resolved.components))
	for _, c := range resolved.components {
		switch c.Content.kind {
		case KindRich:
			out = append(out, flatComponent{tags: c.Tags, text: c.Content.rich, rich: true})
		default:
			out = append(out, flatComponent{tags: c.Tags, text: richtext.Plain(c.Content.plain)})
		}
	}
	return out
}

func scanTags(flat []flatComponent) []tagToken {
	var tokens []tagToken
	for i, fc := range flat {
		for _, m := range tagRegex.FindAllStringSubmatchIndex(fc.text.String(), -1) {
			nameLen := m[3] - m[2]
			tokens = append(tokens, tagToken{
				name:      fc.text.String()[m[2]:m[3]],
				start:     m[0],
				end:       m[1],
				opening:   nameLen+2 == m[1]-m[0],
				component: i,
			})
		}
	}
	sort.SliceStable(tokens, func(a, b int) bool {
		if tokens[a].component != tokens[b].component {
			return tokens[a].component < tokens[b].component
		}
		return tokens[a].start < tokens[b].start
	})
	return tokens
}

// balance pairs every closing token with the most recent unmatched opening
// token of the same name.
func balance(tokens []tagToken) {
	open := make(map[string][]int)
	for i := range tokens {
		tok := &tokens[i]
		if tok.opening {
			open[tok.name] = append(open[tok.name], i)
			continue
		}
		stack := open[tok.name]
		if len(stack) == 0 {
			continue
		}
		opener := stack[len(stack)-1]
		open[tok.name] = stack[:len(stack)-1]
		tokens[opener].balanced = true
		tok.balanced = true
	}
}

func appendSegment(components []Component, fc flatComponent, start, end int, active []Tag) []Component {
	if start >= end {
		return components
	}
	segment := fc.text.Slice(start, end).MapText(entityReplacer.Replace)
	if segment.IsEmpty() {
		return components
	}
	tags := joinTags(fc.tags, active)
	if fc.rich {
		return append(components, Component{Tags: tags, Content: Content{kind: KindRich, rich: segment}})
	}
	return append(components, Component{Tags: tags, Content: Content{kind: KindPlain, plain: segment.String()}})
}

func removeLast(tags []Tag, tag Tag) []Tag {
	for i := len(tags) - 1; i >= 0; i-- {
		if tags[i] == tag {
			out := make([]Tag, 0, len(tags)-1)
			out = append(out, tags[:i]...)
			return append(out, tags[i+1:]...)
		}
	}
	return tags
}
