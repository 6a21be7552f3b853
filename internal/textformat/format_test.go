package textformat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/restyle/internal/richtext"
)

func TestSplitRecognisesSpecifiers(t *testing.T) {
	t.Parallel()

	got := Split("%@ items, %ld left of %LU (%%)")
	want := []Segment{
		{Text: "%@", Specifier: true},
		{Text: " items, "},
		{Text: "%ld", Specifier: true},
		{Text: " left of "},
		{Text: "%LU", Specifier: true},
		{Text: " (%%)"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("segments mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 3, Count("%@ items, %ld left of %LU (%%)"))
}

func TestFormatSubstitutesPositionally(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		args     []any
		want     string
	}{
		{name: "string and int", template: "%@ items, %d left", args: []any{"apples", 3}, want: "apples items, 3 left"},
		{name: "hex", template: "0x%x / 0x%X", args: []any{255, 255}, want: "0xff / 0xFF"},
		{name: "octal and char", template: "%o %c", args: []any{8, 'z'}, want: "10 z"},
		{name: "floats", template: "%f %e %g", args: []any{1.5, 1500.0, 0.25}, want: "1.500000 1.500000e+03 0.25"},
		{name: "long variants", template: "%ld %lu %lx", args: []any{int64(-4), uint64(4), int64(31)}, want: "-4 4 1f"},
		{name: "missing argument stays literal", template: "%@ and %d", args: []any{"one"}, want: "one and %d"},
		{name: "surplus arguments ignored", template: "%s", args: []any{"a", "b"}, want: "a"},
		{name: "no arguments", template: "100%d", args: nil, want: "100%d"},
		{name: "unknown specifier untouched", template: "%q %s", args: []any{"x"}, want: "%q x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Format(tt.template, tt.args...))
		})
	}
}

func TestFormatRichKeepsArgumentAttributes(t *testing.T) {
	t.Parallel()

	bold := richtext.New("apples", richtext.Attributes{richtext.Bold: true})
	got := FormatRich("%@ items, %d left", bold, 3)

	want := []richtext.Run{
		{Text: "apples", Attrs: richtext.Attributes{richtext.Bold: true}},
		{Text: " items, 3 left"},
	}
	if diff := cmp.Diff(want, got.Runs()); diff != "" {
		t.Fatalf("runs mismatch (-want +got):\n%s", diff)
	}
}
