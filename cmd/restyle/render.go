package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/restyle/internal/elements"
	"github.com/alexisbeaulieu97/restyle/internal/semantic"
	"github.com/alexisbeaulieu97/restyle/internal/style"
	"github.com/alexisbeaulieu97/restyle/internal/theme"
	"github.com/alexisbeaulieu97/restyle/internal/tui"
)

var textStyles = map[string]theme.TextStyle{
	"title":   theme.Title,
	"body":    theme.Body,
	"caption": theme.Caption,
}

type renderOptions struct {
	color string
	style string
	width int
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [markup...]",
		Short: "Render markup, or the demo screen when no markup is given",
		Example: `  restyle render "Build <success>passed</success> in <b>3s</b>"
  restyle render --theme dark --color always`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.color, "color", string(colorAuto), "Color output: auto, always or never")
	cmd.Flags().StringVar(&opts.style, "style", "body", "Text style for markup: "+strings.Join(styleNames(), ", "))
	cmd.Flags().IntVar(&opts.width, "width", 0, "Window width used for size classes (defaults to the terminal width)")

	return cmd
}

func styleNames() []string {
	names := make([]string, 0, len(textStyles))
	for name := range textStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions, args []string) error {
	mode, err := parseColorMode(opts.color)
	if err != nil {
		return newCommandError("render", "parsing flags", err, "Use --color auto, always or never.")
	}
	textStyle, ok := textStyles[opts.style]
	if !ok {
		return newCommandError("render", "parsing flags", fmt.Errorf("unknown style %q", opts.style), "Use one of "+strings.Join(styleNames(), ", ")+".")
	}

	app, err := loadAppContext(cmd, flags)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	traits := app.cfg.Traits(detectTraits(out, mode))
	if opts.width > 0 {
		traits = traits.ForWindow(opts.width, traits.Height)
	}
	p := newProgress(app.log)

	if len(args) == 0 {
		demo, err := tui.NewDemo(app.demoOptions(traits, out))
		if err != nil {
			return newCommandError("render", "building the demo screen", err, "Check the configured themes.")
		}
		defer demo.Close()
		demo.Load()
		fmt.Fprintln(out, demo.View())
		p.done("rendered demo screen")
		return nil
	}

	window := elements.NewWindow(out, traits)
	provider := style.NewAttributesProvider(textStyle, app.environment(traits))
	for _, markup := range args {
		fmt.Fprintln(out, semantic.XMLString(markup).Render(provider).Render(window.Renderer()))
	}
	p.done(fmt.Sprintf("rendered %d markup strings", len(args)))
	return nil
}
