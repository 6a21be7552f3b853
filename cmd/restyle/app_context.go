package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/restyle/internal/config"
	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/localization"
	"github.com/alexisbeaulieu97/restyle/internal/logger"
	"github.com/alexisbeaulieu97/restyle/internal/style"
	"github.com/alexisbeaulieu97/restyle/internal/theme"
	"github.com/alexisbeaulieu97/restyle/internal/tui"
)

// appContext bundles what every command derives from flags and the
// configuration file.
type appContext struct {
	cfg     *config.Config
	themes  *theme.Catalog
	strings *localization.Catalog
	runtime *logger.Logger
	log     *log.Logger
}

func loadAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	operation := cmd.Name()
	cli := loggerFromContext(cmd.Context())

	cfg := config.Default()
	if path := strings.TrimSpace(flags.configPath); path != "" {
		parsed, err := config.ParseConfig(path)
		if err != nil {
			return nil, newCommandError(operation, "loading configuration", err, "Check the configuration file syntax and field values.")
		}
		cfg = parsed
		cli.Debug("configuration loaded", "path", path)
	}

	applyFlagOverrides(cfg, flags)
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, newCommandError(operation, "validating flags", err, "Theme identifiers are lower-case and locales are BCP 47 tags such as fr-CA.")
	}

	runtime, err := newRuntimeLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "Use one of trace, debug, info, warn or error as logging level.")
	}
	style.UseLogger(runtime)

	catalog, err := tui.BuiltinStrings()
	if err != nil {
		return nil, fmt.Errorf("load builtin strings: %w", err)
	}
	if err := cfg.LoadStrings(catalog); err != nil {
		return nil, newCommandError(operation, "loading string tables", err, "Check the paths listed under 'strings' in the configuration.")
	}

	themes := cfg.Catalog(theme.Default())
	if _, ok := themes.Get(theme.ID(cfg.Environment.Theme)); cfg.Environment.Theme != "" && !ok {
		return nil, newCommandError(operation, "selecting theme", fmt.Errorf("unknown theme %q", cfg.Environment.Theme), "Run 'restyle themes' to list available themes.")
	}

	cli.Debug("environment ready", "themes", len(themes.IDs()), "languages", len(catalog.Languages()))
	return &appContext{cfg: cfg, themes: themes, strings: catalog, runtime: runtime, log: cli}, nil
}

func applyFlagOverrides(cfg *config.Config, flags *rootFlags) {
	if flags.verbose {
		cfg.Logging.Level = "debug"
	}
	if flags.theme != "" {
		cfg.Environment.Theme = flags.theme
	}
	if flags.locale != "" {
		locales := slices.DeleteFunc(slices.Clone(cfg.Environment.Locales), func(l string) bool {
			return strings.EqualFold(l, flags.locale)
		})
		cfg.Environment.Locales = append([]string{flags.locale}, locales...)
	}
}

func newRuntimeLogger(cfg *config.Config, w io.Writer) (*logger.Logger, error) {
	opts := cfg.LoggerOptions()
	opts.Writer = w
	return logger.New(opts)
}

// theme returns the configured initial theme.
func (a *appContext) theme() *theme.Theme {
	return a.themes.Lookup(theme.ID(a.cfg.Environment.Theme))
}

// locale returns the first configured locale bound to the string tables.
func (a *appContext) locale() localization.Locale {
	tags := a.cfg.LocaleTags()
	locale := localization.Locale{Tag: a.strings.Fallback()}
	if len(tags) > 0 {
		locale.Tag = tags[0]
	}
	return locale.WithStrings(a.strings)
}

// environment is the snapshot one-shot renders resolve against.
func (a *appContext) environment(traits environment.Traits) theme.Env {
	return theme.Env{Traits: traits, Theme: a.theme(), Locale: a.locale()}
}

func (a *appContext) demoOptions(traits environment.Traits, out io.Writer) tui.Options {
	return tui.Options{
		Themes:  a.themes,
		Strings: a.strings,
		Theme:   a.theme().ID,
		Locales: a.cfg.LocaleTags(),
		Traits:  traits,
		Output:  out,
		Logger:  a.runtime,
	}
}
