package main

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/restyle/internal/elements"
	"github.com/alexisbeaulieu97/restyle/internal/environment"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// colorMode forces or disables colors regardless of the terminal.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func parseColorMode(value string) (colorMode, error) {
	switch mode := colorMode(value); mode {
	case colorAuto, colorAlways, colorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown color mode %q", value)
	}
}

func terminalFD(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

func isTerminal(w io.Writer) bool {
	_, ok := terminalFD(w)
	return ok
}

// detectTraits reads size, color profile and background from w. Writers
// that are not terminals get a colorless default sized window.
func detectTraits(w io.Writer, mode colorMode) environment.Traits {
	width, height := defaultWidth, defaultHeight
	var traits environment.Traits
	if fd, ok := terminalFD(w); ok {
		if cols, rows, err := term.GetSize(fd); err == nil {
			width, height = cols, rows
		}
		traits = elements.DetectTraits(termenv.NewOutput(w), width, height)
	} else {
		traits = environment.TraitsForWindow(width, height)
		traits.Profile = termenv.Ascii
	}

	switch mode {
	case colorNever:
		traits.Profile = termenv.Ascii
	case colorAlways:
		if traits.Profile == termenv.Ascii {
			traits.Profile = termenv.TrueColor
		}
	}
	return traits
}
