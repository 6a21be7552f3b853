// Package config loads the restyle configuration document: logging, the
// initial environment, extra string tables and theme overrides.
package config

import (
	"github.com/alexisbeaulieu97/restyle/internal/theme"
)

// Config represents the full restyle configuration document.
type Config struct {
	Version     string          `yaml:"version" toml:"version" validate:"omitempty,semver"`
	Logging     Logging         `yaml:"logging,omitempty" toml:"logging"`
	Environment Environment     `yaml:"environment,omitempty" toml:"environment"`
	Strings     []string        `yaml:"strings,omitempty" toml:"strings" validate:"omitempty,dive,required"`
	Themes      []ThemeOverride `yaml:"themes,omitempty" toml:"themes" validate:"omitempty,dive"`

	// dir is the directory of the loaded file; relative string paths resolve
	// against it.
	dir string
}

// Logging configures the runtime logger.
type Logging struct {
	Level         string `yaml:"level,omitempty" toml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human_readable,omitempty" toml:"human_readable"`
}

// Environment is the initial application environment.
type Environment struct {
	Theme       string   `yaml:"theme,omitempty" toml:"theme" validate:"omitempty,theme_id"`
	Locales     []string `yaml:"locales,omitempty" toml:"locales" validate:"omitempty,dive,bcp47"`
	Appearance  string   `yaml:"appearance,omitempty" toml:"appearance" validate:"omitempty,oneof=auto light dark"`
	ContentSize string   `yaml:"content_size,omitempty" toml:"content_size" validate:"omitempty,oneof=small medium large extra-large"`
}

// ThemeOverride derives a theme from a registered one.
type ThemeOverride struct {
	ID           string                 `yaml:"id" toml:"id" validate:"required,theme_id"`
	Name         string                 `yaml:"name,omitempty" toml:"name" validate:"omitempty,max=64"`
	Base         string                 `yaml:"base,omitempty" toml:"base" validate:"omitempty,theme_id"`
	HighContrast bool                   `yaml:"high_contrast,omitempty" toml:"high_contrast"`
	Colours      map[string]Colour      `yaml:"colours,omitempty" toml:"colours" validate:"omitempty,dive,keys,slot,endkeys"`
	Tags         map[string]TagOverride `yaml:"tags,omitempty" toml:"tags" validate:"omitempty,dive,keys,markup_tag,endkeys"`
}

// Colour replaces the base colour of one palette slot.
type Colour struct {
	Light string `yaml:"light" toml:"light" validate:"required,hexcolor"`
	Dark  string `yaml:"dark" toml:"dark" validate:"required,hexcolor"`
}

// TagOverride replaces the style of one markup tag.
type TagOverride struct {
	Slot          string `yaml:"slot,omitempty" toml:"slot" validate:"omitempty,slot"`
	Bold          bool   `yaml:"bold,omitempty" toml:"bold"`
	Italic        bool   `yaml:"italic,omitempty" toml:"italic"`
	Underline     bool   `yaml:"underline,omitempty" toml:"underline"`
	Strikethrough bool   `yaml:"strikethrough,omitempty" toml:"strikethrough"`
	Faint         bool   `yaml:"faint,omitempty" toml:"faint"`
	Reverse       bool   `yaml:"reverse,omitempty" toml:"reverse"`
}

// TagStyle converts the override into a theme tag style.
func (o TagOverride) TagStyle() theme.TagStyle {
	return theme.TagStyle{
		Slot:          theme.Slot(o.Slot),
		Bold:          o.Bold,
		Italic:        o.Italic,
		Underline:     o.Underline,
		Strikethrough: o.Strikethrough,
		Faint:         o.Faint,
		Reverse:       o.Reverse,
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version: "1.0.0",
		Logging: Logging{Level: "info"},
		Environment: Environment{
			Theme:       string(theme.Light),
			Locales:     []string{"en", "fr"},
			Appearance:  "auto",
			ContentSize: "medium",
		},
	}
}
