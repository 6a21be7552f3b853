package errors

import (
	"errors"
	"fmt"
)

// ErrCollectorClosed is matched by MisuseError values reporting a subscription
// appended after its style setup returned.
var ErrCollectorClosed = errors.New("style collector already closed")

// ParseError represents a configuration or catalog parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MisuseError reports programmer misuse of the styling runtime, such as
// registering a subscription on a context whose setup already finished.
type MisuseError struct {
	Scope  string
	Action string
	Err    error
}

// NewMisuseError constructs a MisuseError for the given style scope.
func NewMisuseError(scope, action string, err error) error {
	return &MisuseError{Scope: scope, Action: action, Err: err}
}

func (e *MisuseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Scope != "" {
		return fmt.Sprintf("misuse in style scope %s: %s: %v", e.Scope, e.Action, e.Err)
	}
	return fmt.Sprintf("misuse: %s: %v", e.Action, e.Err)
}

// Unwrap exposes the root error.
func (e *MisuseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
