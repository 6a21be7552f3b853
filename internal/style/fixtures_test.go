package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/localization"
	"github.com/alexisbeaulieu97/restyle/internal/reactive"
	"github.com/alexisbeaulieu97/restyle/internal/richtext"
	"github.com/alexisbeaulieu97/restyle/internal/semantic"
)

type theme string

type palette struct {
	Label string
}

// paletteStyle labels resources with the theme and color scheme they were
// computed for.
var paletteStyle = StyleFunc[theme, palette](func(env environment.Environment[theme]) palette {
	return palette{Label: string(env.Theme) + "/" + env.Traits.ColorScheme.String()}
})

type localeOnlyStyle struct{}

func (localeOnlyStyle) Resources(env environment.Environment[theme]) palette {
	return palette{Label: env.Locale.String()}
}

func (localeOnlyStyle) ChangeDetector() environment.Detector[theme] {
	return environment.LocaleChanged[theme]
}

type view struct {
	traits  *reactive.Behavior[environment.Traits]
	kind    ElementKind
	applied []string
	text    []richtext.Text
}

func newView(kind ElementKind) *view {
	return &view{traits: reactive.NewBehavior(environment.DefaultTraits()), kind: kind}
}

// Appearance must not capture the view itself.
func (v *view) Appearance() reactive.Observable[environment.Traits] {
	return v.traits.Observable()
}

func (v *view) ElementKind() ElementKind {
	return v.kind
}

func (v *view) setScheme(scheme environment.ColorScheme) {
	v.traits.Update(func(t environment.Traits) environment.Traits {
		t.ColorScheme = scheme
		return t
	})
}

func recordLabel(v *view, _ Style[theme, palette], p palette) {
	v.applied = append(v.applied, p.Label)
}

type textPalette struct {
	Foreground string
}

func (p textPalette) TextAttributes() richtext.Attributes {
	return richtext.Attributes{richtext.Foreground: lipgloss.Color(p.Foreground)}
}

type emphasisStyle struct{}

func (emphasisStyle) Resources(env environment.Environment[theme]) textPalette {
	return textPalette{Foreground: string(env.Theme)}
}

func (emphasisStyle) MergeAttributes(tag semantic.Tag, attrs richtext.Attributes, _ []semantic.Tag, env environment.Environment[theme]) richtext.Attributes {
	switch tag {
	case "em":
		return attrs.Merge(richtext.Attributes{richtext.Bold: true})
	case "accent":
		return attrs.Merge(richtext.Attributes{richtext.Foreground: lipgloss.Color("accent-" + string(env.Theme))})
	}
	return attrs
}

func recordText(v *view, _ TextStyle[theme, textPalette], _ textPalette, text richtext.Text) {
	v.text = append(v.text, text)
}

func newPublisher() *environment.Publisher[theme] {
	return environment.NewPublisher(environment.App[theme]{Theme: "light", Locale: localization.NewLocale("en")})
}

type panel struct {
	Slot
	traits *reactive.Behavior[environment.Traits]
	events *[]string
	setUp  func(ctx Context[*panel, theme])
}

func newPanel(events *[]string, setUp func(ctx Context[*panel, theme])) *panel {
	return &panel{traits: reactive.NewBehavior(environment.DefaultTraits()), events: events, setUp: setUp}
}

func (p *panel) Appearance() reactive.Observable[environment.Traits] {
	return p.traits.Observable()
}

func (p *panel) ApplyStylesToChildren(ctx Context[*panel, theme]) {
	if p.setUp != nil {
		p.setUp(ctx)
	}
}

type loadingPanel struct {
	*panel
	loaded *reactive.Subject[struct{}]
	ready  bool
}

func newLoadingPanel(events *[]string, setUp func(ctx Context[*panel, theme])) *loadingPanel {
	return &loadingPanel{panel: newPanel(events, setUp), loaded: reactive.NewSubject[struct{}]()}
}

func (p *loadingPanel) IsReady() bool {
	return p.ready
}

func (p *loadingPanel) Ready() reactive.Observable[struct{}] {
	return p.loaded.Observable()
}

func (p *loadingPanel) load() {
	p.ready = true
	p.loaded.Next(struct{}{})
}

func (p *loadingPanel) ApplyStylesToChildren(ctx Context[*loadingPanel, theme]) {
	p.panel.ApplyStylesToChildren(Narrow(ctx, p.panel))
}

type list struct {
	Slot
	relay Relay[environment.Convertible[theme]]
}

func (l *list) EnvironmentRelay() *Relay[environment.Convertible[theme]] {
	return &l.relay
}

func (l *list) ApplyStylesToChildren(Context[*list, theme]) {}
