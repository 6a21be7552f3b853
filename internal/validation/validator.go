// Package validation owns the shared struct validator used by configuration
// and string catalog loading.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	restyleerrors "github.com/alexisbeaulieu97/restyle/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	themeIDPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	tagNamePattern = regexp.MustCompile(`^[^<>\s/]+$`)
)

// Instance configures and returns the shared validator.
//
// Registered tags:
//   - theme_id: lower-case identifiers such as "high-contrast"
//   - bcp47: language tags accepted by golang.org/x/text/language
//   - markup_tag: names usable inside <tag> markup
//   - semver: document versions such as "1.0.0"
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_id", func(fl validator.FieldLevel) bool {
			return themeIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("bcp47", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return true
			}
			_, err := language.Parse(value)
			return err == nil
		})

		_ = v.RegisterValidation("markup_tag", func(fl validator.FieldLevel) bool {
			return tagNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates s and converts the first failure into a ValidationError.
// prefix is prepended to the reported field path.
func Struct(prefix string, s any) error {
	if err := Instance().Struct(s); err != nil {
		return Convert(prefix, err)
	}
	return nil
}

// Convert maps validator errors onto the typed ValidationError.
func Convert(prefix string, err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := FieldName(prefix, ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return restyleerrors.NewValidationError(field, msg, err)
	}

	field := prefix
	if field == "" {
		field = "config"
	}
	return restyleerrors.NewValidationError(field, err.Error(), err)
}

// FieldName renders a validator namespace as a lower-case dotted path without
// the root struct name.
func FieldName(prefix string, fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts)+1)
	if prefix != "" {
		lowered = append(lowered, prefix)
	}
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
