package style

import (
	"runtime"
	"testing"
	"weak"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/localization"
	"github.com/alexisbeaulieu97/restyle/internal/reactive"
	"github.com/alexisbeaulieu97/restyle/internal/richtext"
	"github.com/alexisbeaulieu97/restyle/internal/semantic"
)

func TestDefaultDetectorByKind(t *testing.T) {
	t.Parallel()

	base := environment.App[theme]{Theme: "light", Locale: localization.NewLocale("en")}.ToStyleEnvironment(environment.DefaultTraits())
	relocalized := base
	relocalized.Locale = localization.NewLocale("fr")
	resized := base
	resized.Traits.Width = 120

	tests := []struct {
		name     string
		element  any
		text     bool
		next     environment.Environment[theme]
		expected bool
	}{
		{name: "view ignores locale", element: newView(KindView), next: relocalized, expected: false},
		{name: "view ignores window size", element: newView(KindView), next: resized, expected: false},
		{name: "generic reacts to locale", element: newView(KindGeneric), next: relocalized, expected: true},
		{name: "generic reacts to window size", element: "plain value", next: resized, expected: true},
		{name: "text view reacts to locale", element: newView(KindView), text: true, next: relocalized, expected: true},
		{name: "text view ignores window size", element: newView(KindView), text: true, next: resized, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			detector := DefaultDetector[theme](tt.element)
			if tt.text {
				detector = DefaultTextDetector[theme](tt.element)
			}
			assert.Equal(t, tt.expected, detector(base, tt.next))
		})
	}
}

func TestBinderAppliesRetainedEnvironments(t *testing.T) {
	t.Parallel()

	publisher := newPublisher()
	v := newView(KindView)
	handle := SetUpStyles(v, publisher.Convertibles(), func(ctx Context[*view, theme]) {
		require.NoError(t, Bind(ctx, recordLabel).Apply(paletteStyle))
	})
	defer handle.Dispose()

	publisher.SetLocale(localization.NewLocale("fr"))
	publisher.SetTheme("dark")
	v.setScheme(environment.ColorSchemeDark)

	assert.Equal(t, []string{"light/light", "dark/light", "dark/dark"}, v.applied)
}

func TestBinderStopsAfterDispose(t *testing.T) {
	t.Parallel()

	publisher := newPublisher()
	v := newView(KindGeneric)
	handle := SetUpStyles(v, publisher.Convertibles(), func(ctx Context[*view, theme]) {
		require.NoError(t, Bind(ctx, recordLabel).Apply(paletteStyle))
	})

	handle.Dispose()
	publisher.SetTheme("dark")
	v.setScheme(environment.ColorSchemeDark)

	assert.Equal(t, []string{"light/light"}, v.applied)
}

func TestStyleDetectorOverridesElementDefault(t *testing.T) {
	t.Parallel()

	publisher := newPublisher()
	v := newView(KindView)
	handle := SetUpStyles(v, publisher.Convertibles(), func(ctx Context[*view, theme]) {
		require.NoError(t, Bind(ctx, recordLabel).Apply(localeOnlyStyle{}))
	})
	defer handle.Dispose()

	publisher.SetTheme("dark")
	publisher.SetLocale(localization.NewLocale("fr"))

	assert.Equal(t, []string{"en", "fr"}, v.applied)
}

func TestWithDetectorOverridesElementDefault(t *testing.T) {
	t.Parallel()

	publisher := newPublisher()
	v := newView(KindGeneric)
	handle := SetUpStyles(v, publisher.Convertibles(), func(ctx Context[*view, theme]) {
		b := Bind(ctx, recordLabel, WithDetector(environment.ThemeChanged[theme]))
		require.NoError(t, b.Apply(paletteStyle))
	})
	defer handle.Dispose()

	v.setScheme(environment.ColorSchemeDark)
	publisher.SetTheme("dark")

	assert.Equal(t, []string{"light/light", "dark/dark"}, v.applied)
}

// bindDetached binds a view nothing else references and returns a weak
// pointer to it together with its trait source.
func bindDetached(t *testing.T, publisher *environment.Publisher[theme], applied *int, opts ...BindOption) (weak.Pointer[view], *reactive.Behavior[environment.Traits], reactive.Disposable) {
	t.Helper()

	v := newView(KindGeneric)
	traits := v.traits
	handle := SetUpStyles(v, publisher.Convertibles(), func(ctx Context[*view, theme]) {
		b := Bind(ctx, func(_ *view, _ Style[theme, palette], _ palette) { *applied++ }, opts...)
		require.NoError(t, b.Apply(paletteStyle))
	})
	return weak.Make(v), traits, handle
}

func TestBinderDropsEmissionsForCollectedElement(t *testing.T) {
	t.Parallel()

	publisher := newPublisher()
	applied := 0
	ref, traits, handle := bindDetached(t, publisher, &applied)
	defer handle.Dispose()
	require.Equal(t, 1, applied)

	runtime.GC()
	runtime.GC()
	require.Nil(t, ref.Value())

	publisher.SetTheme("dark")
	traits.Next(environment.TraitsForWindow(40, 10))
	assert.Equal(t, 1, applied)
}

func TestStrongReferenceKeepsElementAlive(t *testing.T) {
	t.Parallel()

	publisher := newPublisher()
	applied := 0
	ref, _, handle := bindDetached(t, publisher, &applied, StrongReference())
	defer handle.Dispose()

	runtime.GC()
	runtime.GC()
	require.NotNil(t, ref.Value())

	publisher.SetTheme("dark")
	assert.Equal(t, 2, applied)
}

func TestApplyIndexedFlagsFirstEmission(t *testing.T) {
	t.Parallel()

	publisher := newPublisher()
	v := newView(KindView)
	var initial []bool
	handle := SetUpStyles(v, publisher.Convertibles(), func(ctx Context[*view, theme]) {
		b := Bind(ctx, recordLabel)
		require.NoError(t, b.ApplyIndexed(paletteStyle, func(_ *view, _ Style[theme, palette], _ palette, first bool) {
			initial = append(initial, first)
		}))
	})
	defer handle.Dispose()

	publisher.SetTheme("dark")
	publisher.SetTheme("contrast")

	assert.Equal(t, []bool{true, false, false}, initial)
}

func TestApplyForStateSwitchesStyle(t *testing.T) {
	t.Parallel()

	publisher := newPublisher()
	state := reactive.NewBehavior(false)
	v := newView(KindView)
	pressed := StyleFunc[theme, palette](func(env environment.Environment[theme]) palette {
		return palette{Label: "pressed/" + string(env.Theme)}
	})

	handle := SetUpStyles(v, publisher.Convertibles(), func(ctx Context[*view, theme]) {
		b := Bind(ctx, recordLabel)
		require.NoError(t, ApplyForState(b, state.Observable(), func(down bool) Style[theme, palette] {
			if down {
				return pressed
			}
			return paletteStyle
		}))
	})
	defer handle.Dispose()

	state.Next(true)
	publisher.SetTheme("dark")
	state.Next(false)

	assert.Equal(t, []string{"light/light", "pressed/light", "pressed/dark", "dark/light"}, v.applied)
}

func TestTextBinderRendersAgainstSameEmission(t *testing.T) {
	t.Parallel()

	publisher := newPublisher()
	v := newView(KindView)
	var themes []string
	handle := SetUpStyles(v, publisher.Convertibles(), func(ctx Context[*view, theme]) {
		b := BindText(ctx, func(el *view, style TextStyle[theme, textPalette], p textPalette, text richtext.Text) {
			themes = append(themes, p.Foreground)
			recordText(el, style, p, text)
		})
		require.NoError(t, b.ApplyText(emphasisStyle{}, semantic.XMLString("hi <accent>there</accent>")))
	})
	defer handle.Dispose()

	publisher.SetTheme("dark")

	require.Len(t, v.text, 2)
	assert.Equal(t, []string{"light", "dark"}, themes)
	want := richtext.FromRuns(
		richtext.Run{Text: "hi ", Attrs: richtext.Attributes{richtext.Foreground: lipgloss.Color("dark")}},
		richtext.Run{Text: "there", Attrs: richtext.Attributes{richtext.Foreground: lipgloss.Color("accent-dark")}},
	)
	assert.Empty(t, cmp.Diff(want.Runs(), v.text[1].Runs()))
}

func TestTextBinderFollowsLocale(t *testing.T) {
	t.Parallel()

	catalog := localization.NewCatalog(localization.NewLocale("en").Tag)
	catalog.Add(localization.NewLocale("en").Tag, localization.DefaultTable, map[string]string{"greeting": "Hello <em>%@</em>"})
	catalog.Add(localization.NewLocale("fr").Tag, localization.DefaultTable, map[string]string{"greeting": "Bonjour <em>%@</em>"})

	publisher := environment.NewPublisher(environment.App[theme]{Theme: "light", Locale: localization.NewLocale("en").WithStrings(catalog)})
	v := newView(KindView)
	handle := SetUpStyles(v, publisher.Convertibles(), func(ctx Context[*view, theme]) {
		b := BindText(ctx, recordText)
		require.NoError(t, b.ApplyText(emphasisStyle{}, semantic.XMLResource(localization.NewResource("greeting"), "Ada")))
	})
	defer handle.Dispose()

	publisher.SetLocale(localization.NewLocale("fr").WithStrings(catalog))

	require.Len(t, v.text, 2)
	assert.Equal(t, "Hello Ada", v.text[0].String())
	assert.Equal(t, "Bonjour Ada", v.text[1].String())
	attrs, ok := v.text[1].AttributesAt(len("Bonjour "))
	require.True(t, ok)
	assert.True(t, attrs.Flag(richtext.Bold))
}

func TestApplyTextStreamCombinesLatest(t *testing.T) {
	t.Parallel()

	publisher := newPublisher()
	texts := reactive.NewBehavior(semantic.String("one"))
	v := newView(KindView)
	handle := SetUpStyles(v, publisher.Convertibles(), func(ctx Context[*view, theme]) {
		require.NoError(t, BindText(ctx, recordText).ApplyTextStream(emphasisStyle{}, texts.Observable()))
	})
	defer handle.Dispose()

	texts.Next(semantic.String("two"))
	publisher.SetTheme("dark")

	got := make([]string, 0, len(v.text))
	for _, text := range v.text {
		fg, _ := text.Runs()[0].Attrs.Color(richtext.Foreground)
		got = append(got, text.String()+"@"+string(fg.(lipgloss.Color)))
	}
	assert.Equal(t, []string{"one@light", "two@light", "two@dark"}, got)
}

func TestApplyTextForStateSwitchesStyle(t *testing.T) {
	t.Parallel()

	publisher := newPublisher()
	state := reactive.NewBehavior("plain")
	v := newView(KindView)
	handle := SetUpStyles(v, publisher.Convertibles(), func(ctx Context[*view, theme]) {
		b := BindText(ctx, recordText)
		require.NoError(t, ApplyTextForState(b, state.Observable(), func(s string) TextStyle[theme, textPalette] {
			return emphasisStyle{}
		}, semantic.String("x", "em")))
	})
	defer handle.Dispose()

	state.Next("selected")

	require.Len(t, v.text, 2)
	attrs, ok := v.text[1].AttributesAt(0)
	require.True(t, ok)
	assert.True(t, attrs.Flag(richtext.Bold))
}

func TestNewAttributesProviderUsesResolvedResources(t *testing.T) {
	t.Parallel()

	env := environment.App[theme]{Theme: "ink", Locale: localization.NewLocale("en")}.ToStyleEnvironment(environment.DefaultTraits())
	provider := NewAttributesProvider[theme, textPalette](emphasisStyle{}, env)

	assert.Equal(t, "en", provider.Locale().String())
	assert.Equal(t, richtext.Attributes{richtext.Foreground: lipgloss.Color("ink")}, provider.CommonAttributes())
	merged := provider.MergeAttributes("em", provider.CommonAttributes(), []semantic.Tag{"em"})
	assert.True(t, merged.Flag(richtext.Bold))
}
