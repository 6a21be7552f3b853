package config

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/restyle/internal/environment"
	"github.com/alexisbeaulieu97/restyle/internal/localization"
	"github.com/alexisbeaulieu97/restyle/internal/logger"
	"github.com/alexisbeaulieu97/restyle/internal/semantic"
	"github.com/alexisbeaulieu97/restyle/internal/theme"
	"github.com/alexisbeaulieu97/restyle/internal/validation"
)

// LoggerOptions maps the logging section onto logger options.
func (c *Config) LoggerOptions() logger.Options {
	return logger.Options{Level: c.Logging.Level, HumanReadable: c.Logging.HumanReadable}
}

// Catalog returns base extended with every theme override, in declaration
// order. base is not modified.
func (c *Config) Catalog(base *theme.Catalog) *theme.Catalog {
	catalog := theme.NewCatalog()
	for _, id := range base.IDs() {
		catalog.Add(base.MustGet(id))
	}
	for _, override := range c.Themes {
		from := catalog.Lookup(theme.ID(override.Base))
		name := override.Name
		if name == "" {
			name = override.ID
		}
		derived := from.Derive(theme.ID(override.ID), name)
		derived.HighContrast = derived.HighContrast || override.HighContrast
		for slot, colour := range override.Colours {
			set := derived.Palette.Set(theme.Slot(slot))
			set.Base = lipgloss.AdaptiveColor{Light: colour.Light, Dark: colour.Dark}
			derived.Palette = derived.Palette.With(theme.Slot(slot), set)
		}
		for tag, style := range override.Tags {
			derived.WithTag(semantic.Tag(tag), style.TagStyle())
		}
		catalog.Add(derived)
	}
	return catalog
}

// LocaleTags returns the configured locales. Entries were validated on load.
func (c *Config) LocaleTags() []language.Tag {
	tags := make([]language.Tag, 0, len(c.Environment.Locales))
	for _, locale := range c.Environment.Locales {
		tags = append(tags, language.Make(locale))
	}
	return tags
}

// Traits applies the appearance and content size settings to detected.
func (c *Config) Traits(detected environment.Traits) environment.Traits {
	switch c.Environment.Appearance {
	case "light":
		detected.ColorScheme = environment.ColorSchemeLight
	case "dark":
		detected.ColorScheme = environment.ColorSchemeDark
	}
	switch c.Environment.ContentSize {
	case "small":
		detected.ContentSize = environment.ContentSizeSmall
	case "medium":
		detected.ContentSize = environment.ContentSizeMedium
	case "large":
		detected.ContentSize = environment.ContentSizeLarge
	case "extra-large":
		detected.ContentSize = environment.ContentSizeExtraLarge
	}
	return detected
}

// StringPaths returns the string table paths resolved against the directory
// of the loaded file.
func (c *Config) StringPaths() []string {
	paths := make([]string, 0, len(c.Strings))
	for _, path := range c.Strings {
		if !filepath.IsAbs(path) && c.dir != "" {
			path = filepath.Join(c.dir, path)
		}
		paths = append(paths, path)
	}
	return paths
}

// LoadStrings merges the configured string tables into catalog.
func (c *Config) LoadStrings(catalog *localization.Catalog) error {
	for _, path := range c.StringPaths() {
		if err := validation.CheckFileExists(path); err != nil {
			return fmt.Errorf("strings: %w", err)
		}
		file, err := localization.ParseStringsFile(path)
		if err != nil {
			return err
		}
		catalog.AddFile(file)
	}
	return nil
}
