package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/theme"
	"github.com/alexisbeaulieu97/restyle/internal/tui"
	"github.com/alexisbeaulieu97/restyle/pkg/diff"
)

var contentSizes = map[string]environment.ContentSize{
	"small":       environment.ContentSizeSmall,
	"medium":      environment.ContentSizeMedium,
	"large":       environment.ContentSizeLarge,
	"extra-large": environment.ContentSizeExtraLarge,
}

// screenSpec selects the environment one side of a comparison renders with:
// theme[:locale[:size]].
type screenSpec struct {
	raw    string
	theme  theme.ID
	locale language.Tag
	size   environment.ContentSize
}

func parseScreenSpec(raw string, fallback language.Tag) (screenSpec, error) {
	parts := strings.Split(raw, ":")
	if len(parts) > 3 || parts[0] == "" {
		return screenSpec{}, fmt.Errorf("invalid screen %q, expected theme[:locale[:size]]", raw)
	}
	spec := screenSpec{raw: raw, theme: theme.ID(parts[0]), locale: fallback, size: environment.ContentSizeMedium}
	if len(parts) > 1 && parts[1] != "" {
		tag, err := language.Parse(parts[1])
		if err != nil {
			return screenSpec{}, fmt.Errorf("invalid locale in %q: %w", raw, err)
		}
		spec.locale = tag
	}
	if len(parts) > 2 {
		size, ok := contentSizes[parts[2]]
		if !ok {
			return screenSpec{}, fmt.Errorf("invalid content size in %q", raw)
		}
		spec.size = size
	}
	return spec, nil
}

func newCompareCmd(flags *rootFlags) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "compare <from> <to>",
		Short: "Diff the demo screen rendered in two environments",
		Long: `Compare renders the demo screen without colors once per environment and
prints a unified diff. Each environment is written theme[:locale[:size]].`,
		Example: `  restyle compare light contrast
  restyle compare light:en light:fr:large`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, flags, args[0], args[1], width)
		},
	}

	cmd.Flags().IntVar(&width, "width", defaultWidth, "Window width used for size classes")

	return cmd
}

func runCompare(cmd *cobra.Command, flags *rootFlags, from, to string, width int) error {
	app, err := loadAppContext(cmd, flags)
	if err != nil {
		return err
	}

	views := make([]string, 0, 2)
	for _, raw := range []string{from, to} {
		spec, err := parseScreenSpec(raw, app.locale().Tag)
		if err != nil {
			return newCommandError("compare", "parsing environments", err, "Write each environment as theme[:locale[:size]], e.g. dark:fr:large.")
		}
		if _, ok := app.themes.Get(spec.theme); !ok {
			return newCommandError("compare", "selecting theme", fmt.Errorf("unknown theme %q", spec.theme), "Run 'restyle themes' to list available themes.")
		}
		view, err := renderScreen(app, spec, width)
		if err != nil {
			return newCommandError("compare", "rendering "+raw, err, "Check the configured themes.")
		}
		views = append(views, view)
	}

	unified := diff.Lines(views[0], views[1], from, to)
	if unified == "" {
		app.log.Info("screens are identical", "from", from, "to", to)
		return nil
	}
	added, removed := diff.Changed(unified)
	app.log.Debug("screens differ", "added", added, "removed", removed)
	fmt.Fprint(cmd.OutOrStdout(), unified)
	return nil
}

func renderScreen(app *appContext, spec screenSpec, width int) (string, error) {
	traits := app.cfg.Traits(environment.TraitsForWindow(width, defaultHeight))
	traits.ContentSize = spec.size
	traits.Profile = termenv.Ascii

	opts := app.demoOptions(traits, nil)
	opts.Theme = spec.theme
	opts.Locales = []language.Tag{spec.locale}
	demo, err := tui.NewDemo(opts)
	if err != nil {
		return "", err
	}
	defer demo.Close()
	demo.Load()
	return demo.View() + "\n", nil
}
