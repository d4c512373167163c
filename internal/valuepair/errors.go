// Package valuepair holds the harness around the ValuePair fixture: operand
// parsing, evaluation and the error type shared by its subpackages.
package valuepair

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType categorizes harness errors.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeNotFound
	ErrTypeInvalidInput
	ErrTypeConfiguration
	ErrTypeFixture
)

// Error provides structured error information
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Hint    string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithHint sets the hint and returns the error.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// FormatWithHint returns the message followed by the hint, if any.
func (e *Error) FormatWithHint() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s\n  Hint: %s", e.Error(), e.Hint)
	}
	return e.Error()
}

// ErrInvalidKind is returned for an unknown numeric kind.
func ErrInvalidKind(kind string) *Error {
	return &Error{
		Type:    ErrTypeInvalidInput,
		Message: fmt.Sprintf("invalid kind: %q", kind),
		Hint:    fmt.Sprintf("Use one of: %s", strings.Join(ValidKinds(), ", ")),
	}
}

// ErrInvalidOperand is returned when an operand cannot be parsed.
func ErrInvalidOperand(name, value string, cause error) *Error {
	return &Error{
		Type:    ErrTypeInvalidInput,
		Message: fmt.Sprintf("invalid operand %s: %q", name, value),
		Cause:   cause,
		Hint:    "Operands must be decimal numbers; use --kind float for fractional values.",
	}
}

// ErrFileNotFound is returned when an input file does not exist.
func ErrFileNotFound(path string) *Error {
	return &Error{
		Type:    ErrTypeNotFound,
		Message: fmt.Sprintf("file not found: %s", path),
		Hint:    "Check the path and try again.",
	}
}

// ErrUnsupportedFormat is returned for a file extension no loader handles.
func ErrUnsupportedFormat(path string, supported []string) *Error {
	return &Error{
		Type:    ErrTypeInvalidInput,
		Message: fmt.Sprintf("unsupported file format: %s", path),
		Hint:    fmt.Sprintf("Supported extensions: %v", supported),
	}
}

// FormatError returns err with its hint when it is an *Error.
func FormatError(err error) string {
	var vpErr *Error
	if errors.As(err, &vpErr) {
		return vpErr.FormatWithHint()
	}
	return err.Error()
}

// IsType reports whether err is an *Error of type t.
func IsType(err error, t ErrorType) bool {
	var vpErr *Error
	return errors.As(err, &vpErr) && vpErr.Type == t
}
