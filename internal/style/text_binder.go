package style

import (
	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/localization"
	"github.com/alexisbeaulieu97/restyle/internal/reactive"
	"github.com/alexisbeaulieu97/restyle/internal/richtext"
	"github.com/alexisbeaulieu97/restyle/internal/semantic"
)

// TextResources are resources carrying base text attributes.
type TextResources interface {
	TextAttributes() richtext.Attributes
}

// TextStyle is a Style that also resolves markup tags.
type TextStyle[T comparable, R TextResources] interface {
	Style[T, R]
	// MergeAttributes returns attrs updated with the attributes of tag.
	// applied lists the component's tags innermost first.
	MergeAttributes(tag semantic.Tag, attrs richtext.Attributes, applied []semantic.Tag, env environment.Environment[T]) richtext.Attributes
}

type attributesProvider[T comparable, R TextResources] struct {
	style     TextStyle[T, R]
	env       environment.Environment[T]
	resources R
}

// NewAttributesProvider adapts style resolved against env to the provider
// semantic text renders with.
func NewAttributesProvider[T comparable, R TextResources](style TextStyle[T, R], env environment.Environment[T]) semantic.AttributesProvider {
	return attributesProvider[T, R]{style: style, env: env, resources: style.Resources(env)}
}

func (p attributesProvider[T, R]) Locale() localization.Locale {
	return p.env.Locale
}

func (p attributesProvider[T, R]) CommonAttributes() richtext.Attributes {
	return p.resources.TextAttributes()
}

func (p attributesProvider[T, R]) MergeAttributes(tag semantic.Tag, attrs richtext.Attributes, applied []semantic.Tag) richtext.Attributes {
	return p.style.MergeAttributes(tag, attrs, applied, p.env)
}

// TextBinder applies resources and rendered text to one element. The text is
// rendered from the same environment emission that produced the resources.
type TextBinder[T any, P interface {
	*T
	AppearanceSignal
}, Th comparable, R TextResources] struct {
	ref       elementRef[T]
	env       reactive.Observable[environment.Environment[Th]]
	collector *Collector
	detector  environment.Detector[Th]
	apply     func(P, TextStyle[Th, R], R, richtext.Text)
}

// BindText prepares a text binding for the element of ctx.
func BindText[T any, P interface {
	*T
	AppearanceSignal
}, Th comparable, R TextResources](ctx Context[P, Th], apply func(P, TextStyle[Th, R], R, richtext.Text), opts ...BindOption) *TextBinder[T, P, Th, R] {
	cfg := newBindConfig(opts)
	element := ctx.Element()
	detector, ok := cfg.detector.(environment.Detector[Th])
	if !ok {
		detector = DefaultTextDetector[Th](element)
	}
	return &TextBinder[T, P, Th, R]{
		ref:       newElementRef((*T)(element), cfg.strong),
		env:       StyleEnvironment(ctx),
		collector: ctx.Collector(),
		detector:  detector,
		apply:     apply,
	}
}

func (b *TextBinder[T, P, Th, R]) deliver(style TextStyle[Th, R], resolved Resolved[Th, R], text semantic.Text) {
	ptr := b.ref.get()
	if ptr == nil {
		return
	}
	provider := attributesProvider[Th, R]{style: style, env: resolved.Env, resources: resolved.Resources}
	b.apply(P(ptr), style, resolved.Resources, text.Render(provider))
}

// Apply binds style with empty text.
func (b *TextBinder[T, P, Th, R]) Apply(style TextStyle[Th, R]) error {
	return b.ApplyText(style, semantic.Text{})
}

// ApplyText binds style and renders text for every retained environment.
func (b *TextBinder[T, P, Th, R]) ApplyText(style TextStyle[Th, R], text semantic.Text) error {
	d := ResolveIndexed(b.env, b.detector, style).Subscribe(func(r Resolved[Th, R]) {
		b.deliver(style, r, text)
	})
	return b.collector.Append(d)
}

// ApplyTextStream renders the latest text against the latest retained
// environment whenever either changes.
func (b *TextBinder[T, P, Th, R]) ApplyTextStream(style TextStyle[Th, R], texts reactive.Observable[semantic.Text]) error {
	type pair struct {
		resolved Resolved[Th, R]
		text     semantic.Text
	}
	combined := reactive.CombineLatest(ResolveIndexed(b.env, b.detector, style), texts, func(r Resolved[Th, R], t semantic.Text) pair {
		return pair{resolved: r, text: t}
	})
	d := combined.Subscribe(func(p pair) {
		b.deliver(style, p.resolved, p.text)
	})
	return b.collector.Append(d)
}

// ApplyTextForState switches to selector(state) on every state value and
// renders text with the selected style.
func ApplyTextForState[T any, P interface {
	*T
	AppearanceSignal
}, Th comparable, R TextResources, S any](b *TextBinder[T, P, Th, R], state reactive.Observable[S], selector func(S) TextStyle[Th, R], text semantic.Text) error {
	type selected struct {
		style    TextStyle[Th, R]
		resolved Resolved[Th, R]
	}
	resolved := reactive.SwitchMap(state, func(s S) reactive.Observable[selected] {
		style := selector(s)
		return reactive.Map(ResolveIndexed(b.env, b.detector, style), func(r Resolved[Th, R]) selected {
			return selected{style: style, resolved: r}
		})
	})
	d := resolved.Subscribe(func(s selected) {
		b.deliver(s.style, s.resolved, text)
	})
	return b.collector.Append(d)
}
