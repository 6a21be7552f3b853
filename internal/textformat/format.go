// Package textformat substitutes positional printf-style specifiers in
// localized templates.
package textformat

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexisbeaulieu97/restyle/internal/richtext"
)

var specifierRegex = regexp.MustCompile(`(?i)%@|%d|%x|%o|%ld|%lx|%lu|%f|%e|%g|%c|%s|%a`)

// Segment is either literal text or a format specifier such as "%d".
type Segment struct {
	Text      string
	Specifier bool
}

// Split cuts template into literal segments and specifiers, in order.
// Empty literal segments are omitted.
func Split(template string) []Segment {
	matches := specifierRegex.FindAllStringIndex(template, -1)
	segments := make([]Segment, 0, 2*len(matches)+1)
	prev := 0
	for _, m := range matches {
		if m[0] > prev {
			segments = append(segments, Segment{Text: template[prev:m[0]]})
		}
		segments = append(segments, Segment{Text: template[m[0]:m[1]], Specifier: true})
		prev = m[1]
	}
	if prev < len(template) {
		segments = append(segments, Segment{Text: template[prev:]})
	}
	return segments
}

// Count returns the number of specifiers in template.
func Count(template string) int {
	return len(specifierRegex.FindAllStringIndex(template, -1))
}

// Format replaces the specifiers of template with args in order. Specifiers
// without a matching argument are kept verbatim; surplus arguments are
// ignored.
func Format(template string, args ...any) string {
	if len(args) == 0 {
		return template
	}
	var b strings.Builder
	next := 0
	for _, segment := range Split(template) {
		if !segment.Specifier || next >= len(args) {
			b.WriteString(segment.Text)
			continue
		}
		b.WriteString(formatArg(segment.Text, args[next]))
		next++
	}
	return b.String()
}

// FormatRich is Format for attributed output. richtext.Text arguments keep
// their attributes; everything else is formatted into plain runs.
func FormatRich(template string, args ...any) richtext.Text {
	var out richtext.Text
	next := 0
	for _, segment := range Split(template) {
		if !segment.Specifier || next >= len(args) {
			out = out.Append(richtext.Plain(segment.Text))
			continue
		}
		arg := args[next]
		next++
		if rich, ok := arg.(richtext.Text); ok {
			out = out.Append(rich)
			continue
		}
		out = out.Append(richtext.Plain(formatArg(segment.Text, arg)))
	}
	return out
}

func formatArg(specifier string, arg any) string {
	verb := specifier[len(specifier)-1]
	upper := verb >= 'A' && verb <= 'Z'
	if upper {
		verb += 'a' - 'A'
	}
	switch verb {
	case '@', 's':
		return fmt.Sprint(arg)
	case 'd', 'u':
		return fmt.Sprintf("%d", arg)
	case 'x':
		if upper {
			return fmt.Sprintf("%X", arg)
		}
		return fmt.Sprintf("%x", arg)
	case 'o':
		return fmt.Sprintf("%o", arg)
	case 'f':
		return fmt.Sprintf("%f", arg)
	case 'e':
		if upper {
			return fmt.Sprintf("%E", arg)
		}
		return fmt.Sprintf("%e", arg)
	case 'g':
		if upper {
			return fmt.Sprintf("%G", arg)
		}
		return fmt.Sprintf("%g", arg)
	case 'c':
		return fmt.Sprintf("%c", arg)
	case 'a':
		if upper {
			return fmt.Sprintf("%X", arg)
		}
		return fmt.Sprintf("%x", arg)
	default:
		return fmt.Sprint(arg)
	}
}
