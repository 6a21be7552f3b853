package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	restyleerrors "github.com/alexisbeaulieu97/restyle/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0.0"
logging:
  level: debug
environment:
  theme: ocean
  locales: [fr, en]
  appearance: dark
themes:
  - id: ocean
    name: Ocean
    base: dark
    colours:
      primary: {light: "#0369a1", dark: "#38bdf8"}
    tags:
      accent: {slot: info, bold: true}
`

	validTOML := `version = "1.0.0"
strings = ["strings/de.yaml"]

[environment]
theme = "dark"
content_size = "large"

[[themes]]
id = "paper"
base = "light"

[themes.tags.warning]
slot = "warning"
underline = true
`

	brokenTOML := `version = "1.0.0"
[environment
theme = "dark"
`

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "yaml configuration is parsed",
			file:     "restyle.yaml",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "debug", cfg.Logging.Level)
				require.Equal(t, "ocean", cfg.Environment.Theme)
				require.Equal(t, []string{"fr", "en"}, cfg.Environment.Locales)
				require.Equal(t, "medium", cfg.Environment.ContentSize)
				require.Len(t, cfg.Themes, 1)
				require.Equal(t, "#38bdf8", cfg.Themes[0].Colours["primary"].Dark)
				require.True(t, cfg.Themes[0].Tags["accent"].Bold)
			},
		},
		{
			name:     "toml configuration is parsed",
			file:     "restyle.toml",
			contents: validTOML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "dark", cfg.Environment.Theme)
				require.Equal(t, "large", cfg.Environment.ContentSize)
				require.Equal(t, []string{"en", "fr"}, cfg.Environment.Locales)
				require.Len(t, cfg.Themes, 1)
				require.True(t, cfg.Themes[0].Tags["warning"].Underline)
				require.Equal(t, []string{"strings/de.yaml"}, cfg.Strings)
				require.True(t, filepath.IsAbs(cfg.StringPaths()[0]))
			},
		},
		{
			name:     "invalid yaml reports line",
			file:     "broken.yaml",
			contents: "version: [1, 0\nlogging: {}\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				require.Nil(t, cfg)
				var parseErr *restyleerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
		{
			name:     "invalid toml reports line",
			file:     "broken.toml",
			contents: brokenTOML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var parseErr *restyleerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "validation errors are surfaced",
			file:     "bad.yaml",
			contents: "environment:\n  appearance: sepia\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Error(t, err)
				var validationErr *restyleerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "environment.appearance", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), tc.file)
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	var parseErr *restyleerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestFormatFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, FormatTOML, FormatFor("restyle.TOML"))
	require.Equal(t, FormatYAML, FormatFor("restyle.yml"))
	require.Equal(t, FormatYAML, FormatFor("restyle"))
}

func TestParseEmptyDocumentKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse("empty", FormatYAML, nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}
