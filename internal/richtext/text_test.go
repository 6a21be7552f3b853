package richtext

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var (
	red  = lipgloss.Color("#ff0000")
	blue = lipgloss.Color("#0000ff")
)

func TestAppendCoalescesEqualRuns(t *testing.T) {
	t.Parallel()

	bold := Attributes{Bold: true}
	text := Concat(New("a", bold), New("b", Attributes{Bold: true}), Plain(""), Plain("c"))

	want := []Run{
		{Text: "ab", Attrs: Attributes{Bold: true}},
		{Text: "c"},
	}
	if diff := cmp.Diff(want, text.Runs()); diff != "" {
		t.Fatalf("runs mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "abc", text.String())
	require.Equal(t, 3, text.Len())
}

func TestConcatIsAssociative(t *testing.T) {
	t.Parallel()

	a := New("a", Attributes{Foreground: red})
	b := Plain("b")
	c := New("c", Attributes{Foreground: red})

	left := a.Append(b.Append(c))
	right := a.Append(b).Append(c)
	require.True(t, left.Equal(right))
	require.True(t, Concat().Append(a).Equal(a))
}

func TestSliceKeepsAttributes(t *testing.T) {
	t.Parallel()

	text := Concat(Plain("hello "), New("world", Attributes{Bold: true}), Plain("!"))

	tests := []struct {
		name       string
		start, end int
		want       []Run
	}{
		{name: "inside run", start: 6, end: 9, want: []Run{{Text: "wor", Attrs: Attributes{Bold: true}}}},
		{name: "across runs", start: 4, end: 8, want: []Run{{Text: "o "}, {Text: "wo", Attrs: Attributes{Bold: true}}}},
		{name: "clamped", start: -3, end: 100, want: text.Runs()},
		{name: "empty", start: 5, end: 5, want: []Run{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := text.Slice(tt.start, tt.end).Runs()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("slice mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWithAndUnderAttributes(t *testing.T) {
	t.Parallel()

	text := Concat(New("a", Attributes{Foreground: red}), Plain("b"))

	over := text.WithAttributes(Attributes{Foreground: blue, Bold: true})
	require.Len(t, over.Runs(), 1)
	assert.Equal(t, Attributes{Foreground: blue, Bold: true}, over.Runs()[0].Attrs)

	under := text.UnderAttributes(Attributes{Foreground: blue})
	runs := under.Runs()
	require.Len(t, runs, 2)
	assert.Equal(t, lipgloss.TerminalColor(red), runs[0].Attrs[Foreground])
	assert.Equal(t, lipgloss.TerminalColor(blue), runs[1].Attrs[Foreground])
}

func TestAttributesOverrides(t *testing.T) {
	t.Parallel()

	common := Attributes{Foreground: red, Bold: false}
	running := Attributes{Foreground: red, Bold: true, Italic: true}

	require.Equal(t, Attributes{Bold: true, Italic: true}, running.Overrides(common))
	require.Equal(t, Attributes{}, common.Overrides(common))
	require.Equal(t, "{bold=true foreground=#ff0000 italic=true}", running.String())
}

func TestCaseMappingUsesLanguage(t *testing.T) {
	t.Parallel()

	text := New("istanbul", Attributes{Bold: true})
	require.Equal(t, "İSTANBUL", text.Upper(language.Turkish).String())
	require.Equal(t, "ISTANBUL", text.Upper(language.English).String())
	require.Equal(t, "istanbul", Plain("ISTANBUL").Lower(language.English).String())
	require.True(t, text.Upper(language.English).Runs()[0].Attrs.Flag(Bold))
}

func TestRenderRespectsProfile(t *testing.T) {
	t.Parallel()

	text := Concat(Plain("plain "), New("bold", Attributes{Bold: true, Foreground: red}))

	ascii := lipgloss.NewRenderer(io.Discard)
	ascii.SetColorProfile(termenv.Ascii)
	require.Equal(t, "plain bold", text.Render(ascii))

	color := lipgloss.NewRenderer(io.Discard)
	color.SetColorProfile(termenv.TrueColor)
	rendered := text.Render(color)
	require.True(t, strings.HasPrefix(rendered, "plain "))
	require.Contains(t, rendered, "\x1b[")
}

func TestAttributesAt(t *testing.T) {
	t.Parallel()

	text := Concat(Plain("ab"), New("cd", Attributes{Italic: true}))
	attrs, ok := text.AttributesAt(2)
	require.True(t, ok)
	require.True(t, attrs.Flag(Italic))

	_, ok = text.AttributesAt(10)
	require.False(t, ok)
}
