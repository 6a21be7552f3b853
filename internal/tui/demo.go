package tui

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/restyle/internal/elements"
	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/localization"
	"github.com/alexisbeaulieu97/restyle/internal/logger"
	"github.com/alexisbeaulieu97/restyle/internal/semantic"
	"github.com/alexisbeaulieu97/restyle/internal/style"
	"github.com/alexisbeaulieu97/restyle/internal/theme"
)

//go:embed strings/*.yaml
var builtinStrings embed.FS

// BuiltinStrings returns the demo's own string tables.
func BuiltinStrings() (*localization.Catalog, error) {
	catalog := localization.NewCatalog(language.English)
	paths, err := fs.Glob(builtinStrings, "strings/*.yaml")
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		data, err := builtinStrings.ReadFile(path)
		if err != nil {
			return nil, err
		}
		file, err := localization.ParseStrings(path, data)
		if err != nil {
			return nil, err
		}
		catalog.AddFile(file)
	}
	return catalog, nil
}

// Options configure a Demo.
type Options struct {
	Themes  *theme.Catalog
	Strings *localization.Catalog
	Theme   theme.ID
	Locales []language.Tag
	Traits  environment.Traits
	Output  io.Writer
	Logger  *logger.Logger
}

// Demo is a styled screen together with the environment driving it.
type Demo struct {
	themes    *theme.Catalog
	strings   *localization.Catalog
	locales   []language.Tag
	locale    int
	publisher *environment.Publisher[*theme.Theme]
	window    *elements.Window
	screen    *elements.Screen
	checks    *elements.Panel
	log       *logger.Logger
}

// NewDemo builds the demo screen. The screen is styled once Load is called.
func NewDemo(opts Options) (*Demo, error) {
	if opts.Themes == nil {
		opts.Themes = theme.Default()
	}
	if opts.Strings == nil {
		builtin, err := BuiltinStrings()
		if err != nil {
			return nil, fmt.Errorf("load builtin strings: %w", err)
		}
		opts.Strings = builtin
	}
	if len(opts.Locales) == 0 {
		opts.Locales = []language.Tag{language.English, language.French}
	}
	if opts.Traits == (environment.Traits{}) {
		opts.Traits = environment.DefaultTraits()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	initial, ok := opts.Themes.Get(opts.Theme)
	if !ok {
		initial = opts.Themes.Fallback()
	}
	if initial == nil {
		return nil, errors.New("theme catalog is empty")
	}

	d := &Demo{
		themes:  opts.Themes,
		strings: opts.Strings,
		locales: opts.Locales,
		window:  elements.NewWindow(opts.Output, opts.Traits),
		log:     opts.Logger,
	}
	d.publisher = environment.NewPublisher(environment.App[*theme.Theme]{Theme: initial, Locale: d.localeAt(0)})

	res := localization.NewResource
	welcome := elements.NewPanel(d.window, false,
		semantic.Localized(res("welcome.title")),
		semantic.XMLResource(res("welcome.body")),
	)
	d.checks = elements.NewPanel(d.window, true,
		semantic.Localized(res("alerts.title")),
		semantic.XMLResource(res("alerts.body"), 1, 12),
		elements.WithAction(semantic.Localized(res("alerts.action")), theme.Danger),
	)
	d.screen = elements.NewScreen(d.window, semantic.XMLResource(res("header"))).
		AddPanel(welcome).
		AddPanel(d.checks)

	style.ApplyStylesOnLoad(d.screen, d.publisher.Convertibles())
	d.refreshStatus()
	return d, nil
}

func (d *Demo) localeAt(i int) localization.Locale {
	return localization.Locale{Tag: d.locales[i]}.WithStrings(d.strings)
}

// Load marks the screen ready, which styles it.
func (d *Demo) Load() {
	d.screen.Load()
}

// Loaded reports whether the screen was loaded.
func (d *Demo) Loaded() bool {
	return d.screen.IsReady()
}

// Screen returns the root widget.
func (d *Demo) Screen() *elements.Screen {
	return d.screen
}

// Window returns the trait source.
func (d *Demo) Window() *elements.Window {
	return d.window
}

// Publisher returns the application environment publisher.
func (d *Demo) Publisher() *environment.Publisher[*theme.Theme] {
	return d.publisher
}

// Theme returns the active theme.
func (d *Demo) Theme() *theme.Theme {
	return d.publisher.Current().Theme
}

// Locale returns the active locale.
func (d *Demo) Locale() localization.Locale {
	return d.publisher.Current().Locale
}

// CycleTheme switches to the next theme of the catalog.
func (d *Demo) CycleTheme() {
	next := d.themes.Next(d.Theme())
	d.log.With("theme", string(next.ID)).Debug("switching theme")
	d.publisher.SetTheme(next)
	d.refreshStatus()
}

// CycleLocale switches to the next configured locale.
func (d *Demo) CycleLocale() {
	d.locale = (d.locale + 1) % len(d.locales)
	locale := d.localeAt(d.locale)
	d.log.With("locale", locale.String()).Debug("switching locale")
	d.publisher.SetLocale(locale)
	d.refreshStatus()
}

// ToggleDark flips the window color scheme.
func (d *Demo) ToggleDark() {
	d.window.ToggleColorScheme()
	d.refreshStatus()
}

// CycleContentSize moves to the next content size.
func (d *Demo) CycleContentSize() {
	d.window.CycleContentSize()
	d.refreshStatus()
}

// Resize records new window dimensions.
func (d *Demo) Resize(width, height int) {
	d.window.Resize(width, height)
}

// AddRow appends a list row describing the current content size.
func (d *Demo) AddRow() {
	list := d.screen.List()
	row := semantic.XMLResource(localization.NewResource("row"), list.Len()+1, d.window.Traits().ContentSize.String())
	list.Append(row)
}

// TogglePress presses or releases the action button.
func (d *Demo) TogglePress() {
	button := d.checks.Action()
	if button.IsPressed() {
		button.Release()
		return
	}
	button.Press()
}

func (d *Demo) refreshStatus() {
	traits := d.window.Traits()
	d.screen.SetStatus(semantic.XMLResource(localization.NewResource("status"),
		d.Theme().Name,
		d.Locale().Tag.String(),
		traits.ColorScheme.String(),
		traits.ContentSize.String(),
	))
}

// View renders the screen.
func (d *Demo) View() string {
	return d.screen.View()
}

// Close tears down every style subscription.
func (d *Demo) Close() {
	d.screen.List().Clear()
	d.screen.SetStyleSubscription(nil)
}
