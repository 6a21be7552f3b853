package config

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/restyle/internal/theme"
	"github.com/alexisbeaulieu97/restyle/internal/validation"
	restyleerrors "github.com/alexisbeaulieu97/restyle/pkg/errors"
)

func init() {
	_ = validation.Instance().RegisterValidation("slot", func(fl validator.FieldLevel) bool {
		return slices.Contains(theme.Slots, theme.Slot(fl.Field().String()))
	})
}

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return restyleerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validation.Struct("", cfg); err != nil {
		return err
	}

	seen := make(map[string]int, len(cfg.Themes))
	for i, override := range cfg.Themes {
		if _, exists := seen[override.ID]; exists {
			return restyleerrors.NewValidationError(fieldForTheme(i, "id"), fmt.Sprintf("duplicate theme id %q", override.ID), nil)
		}
		if override.Base == override.ID {
			return restyleerrors.NewValidationError(fieldForTheme(i, "base"), fmt.Sprintf("theme %q cannot derive from itself", override.ID), nil)
		}
		// Bases resolve against built-in themes and earlier overrides only.
		if _, ok := seen[override.Base]; override.Base != "" && !ok && !builtinTheme(override.Base) {
			return restyleerrors.NewValidationError(fieldForTheme(i, "base"), fmt.Sprintf("references unknown theme %q", override.Base), nil)
		}
		seen[override.ID] = i
	}

	return nil
}

func builtinTheme(id string) bool {
	return slices.Contains(theme.Default().IDs(), theme.ID(id))
}

func fieldForTheme(index int, field string) string {
	return fmt.Sprintf("themes[%d].%s", index, field)
}
