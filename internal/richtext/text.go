package richtext

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Run is a contiguous span of text sharing one attribute set.
type Run struct {
	Text  string
	Attrs Attributes
}

// Text is an immutable sequence of runs. Adjacent runs with equal attributes
// are coalesced and empty runs are dropped. The zero value is empty text.
type Text struct {
	runs []Run
}

// Plain creates unattributed text.
func Plain(s string) Text {
	return New(s, nil)
}

// New creates text with a single run.
func New(s string, attrs Attributes) Text {
	var t Text
	return t.appendRun(Run{Text: s, Attrs: attrs})
}

// FromRuns builds text from runs, coalescing as needed.
func FromRuns(runs ...Run) Text {
	var t Text
	for _, r := range runs {
		t = t.appendRun(r)
	}
	return t
}

func (t Text) appendRun(r Run) Text {
	if r.Text == "" {
		return t
	}
	runs := make([]Run, len(t.runs), len(t.runs)+1)
	copy(runs, t.runs)
	if n := len(runs); n > 0 && runs[n-1].Attrs.Equal(r.Attrs) {
		runs[n-1] = Run{Text: runs[n-1].Text + r.Text, Attrs: runs[n-1].Attrs}
		return Text{runs: runs}
	}
	return Text{runs: append(runs, Run{Text: r.Text, Attrs: normalize(r.Attrs)})}
}

func normalize(a Attributes) Attributes {
	if len(a) == 0 {
		return nil
	}
	return a.Clone()
}

// Append returns t followed by other.
func (t Text) Append(other Text) Text {
	for _, r := range other.runs {
		t = t.appendRun(r)
	}
	return t
}

// Concat joins texts in order.
func Concat(texts ...Text) Text {
	var out Text
	for _, t := range texts {
		out = out.Append(t)
	}
	return out
}

// Len returns the length in bytes.
func (t Text) Len() int {
	n := 0
	for _, r := range t.runs {
		n += len(r.Text)
	}
	return n
}

// IsEmpty reports whether t holds no characters.
func (t Text) IsEmpty() bool {
	return len(t.runs) == 0
}

func (t Text) String() string {
	var b strings.Builder
	for _, r := range t.runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Runs returns a copy of the runs.
func (t Text) Runs() []Run {
	out := make([]Run, len(t.runs))
	for i, r := range t.runs {
		out[i] = Run{Text: r.Text, Attrs: normalize(r.Attrs)}
	}
	return out
}

// Slice returns the bytes in [start, end) with their attributes. Offsets are
// clamped to the text bounds.
func (t Text) Slice(start, end int) Text {
	if start < 0 {
		start = 0
	}
	if total := t.Len(); end > total {
		end = total
	}
	var out Text
	if start >= end {
		return out
	}
	offset := 0
	for _, r := range t.runs {
		runStart, runEnd := offset, offset+len(r.Text)
		offset = runEnd
		if runEnd <= start || runStart >= end {
			continue
		}
		from := max(start, runStart) - runStart
		to := min(end, runEnd) - runStart
		out = out.appendRun(Run{Text: r.Text[from:to], Attrs: r.Attrs})
	}
	return out
}

// WithAttributes lays attrs over every run; attrs win on conflicts.
func (t Text) WithAttributes(attrs Attributes) Text {
	if len(attrs) == 0 {
		return t
	}
	var out Text
	for _, r := range t.runs {
		out = out.appendRun(Run{Text: r.Text, Attrs: r.Attrs.Merge(attrs)})
	}
	return out
}

// UnderAttributes fills in attrs wherever a run does not set the key already.
func (t Text) UnderAttributes(attrs Attributes) Text {
	if len(attrs) == 0 {
		return t
	}
	var out Text
	for _, r := range t.runs {
		out = out.appendRun(Run{Text: r.Text, Attrs: attrs.Merge(r.Attrs)})
	}
	return out
}

// MapText transforms the characters of every run, keeping attributes.
func (t Text) MapText(f func(string) string) Text {
	var out Text
	for _, r := range t.runs {
		out = out.appendRun(Run{Text: f(r.Text), Attrs: r.Attrs})
	}
	return out
}

// Upper upper-cases t using the casing rules of tag.
func (t Text) Upper(tag language.Tag) Text {
	caser := cases.Upper(tag)
	return t.MapText(caser.String)
}

// Lower lower-cases t using the casing rules of tag.
func (t Text) Lower(tag language.Tag) Text {
	caser := cases.Lower(tag)
	return t.MapText(caser.String)
}

// Equal compares characters and attributes.
func (t Text) Equal(other Text) bool {
	if len(t.runs) != len(other.runs) {
		return false
	}
	for i, r := range t.runs {
		o := other.runs[i]
		if r.Text != o.Text || !r.Attrs.Equal(o.Attrs) {
			return false
		}
	}
	return true
}

// AttributesAt returns the attributes of the byte at offset.
func (t Text) AttributesAt(offset int) (Attributes, bool) {
	pos := 0
	for _, r := range t.runs {
		if offset >= pos && offset < pos+len(r.Text) {
			return r.Attrs.Clone(), true
		}
		pos += len(r.Text)
	}
	return nil, false
}

// Render produces the ANSI representation of t using r.
func (t Text) Render(r *lipgloss.Renderer) string {
	var b strings.Builder
	for _, run := range t.runs {
		if len(run.Attrs) == 0 {
			b.WriteString(run.Text)
			continue
		}
		b.WriteString(Style(r, run.Attrs).Render(run.Text))
	}
	return b.String()
}
