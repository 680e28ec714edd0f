// Package errors provides structured error handling with message keys and HTTP status code mapping.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/linaank/web1/internal/platform/i18n"
)

// ErrorType represents the category of error for metrics and response formatting.
type ErrorType string

const (
	// TypeMethodNotAllowed indicates an unsupported method or GET action (HTTP 405)
	TypeMethodNotAllowed ErrorType = "method_not_allowed"
	// TypeMissingParameter indicates a required form field is absent (HTTP 400)
	TypeMissingParameter ErrorType = "missing_parameter"
	// TypeParse indicates input that could not be decoded or parsed (HTTP 400)
	TypeParse ErrorType = "parse_error"
	// TypeRange indicates a parsed value outside its allowed bounds (HTTP 400)
	TypeRange ErrorType = "range_violation"
	// TypeInternal indicates server-side error (HTTP 500)
	TypeInternal ErrorType = "internal"
)

// Error represents a structured error. Message is an i18n message key and
// Args are its format arguments; the text is localized when rendered.
type Error struct {
	Type    ErrorType
	Message string
	Args    []any
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if len(e.Args) > 0 {
		msg = fmt.Sprintf("%s %v", e.Message, e.Args)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, msg)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for this error type.
func (e *Error) HTTPStatus() int {
	switch e.Type {
	case TypeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case TypeMissingParameter, TypeParse, TypeRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// IsClientError reports whether the error was caused by the request itself.
func (e *Error) IsClientError() bool {
	return e.HTTPStatus() < http.StatusInternalServerError
}

// MethodNotAllowedError creates a new method-not-allowed error (HTTP 405).
func MethodNotAllowedError() *Error {
	return newError(TypeMethodNotAllowed, i18n.MsgExpectedPost, nil)
}

// MissingParameterError creates a new missing-parameter error (HTTP 400).
func MissingParameterError() *Error {
	return newError(TypeMissingParameter, i18n.MsgMissingParameters, nil)
}

// NotANumberError creates a parse error naming the offending field (HTTP 400).
func NotANumberError(field string, cause error) *Error {
	err := newError(TypeParse, i18n.MsgNotANumber, cause, field)
	return err.WithField("field", field)
}

// MalformedFormError creates a parse error for an undecodable body (HTTP 400).
func MalformedFormError(cause error) *Error {
	return newError(TypeParse, i18n.MsgMalformedForm, cause)
}

// RangeError creates a new range violation error (HTTP 400).
// message is the i18n key naming the violated bound.
func RangeError(message string) *Error {
	return newError(TypeRange, message, nil)
}

// InternalError creates a new internal error (HTTP 500).
// The rendered message names only the error type; the cause is for logs.
func InternalError(cause error) *Error {
	return newError(TypeInternal, i18n.MsgServerError, cause, string(TypeInternal))
}

func newError(t ErrorType, message string, cause error, args ...any) *Error {
	return &Error{
		Type:    t,
		Message: message,
		Args:    args,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// WithContext adds context fields to the error (chainable).
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// WithField is an alias for WithContext (chainable).
func (e *Error) WithField(key string, value any) *Error {
	return e.WithContext(key, value)
}

// AsStructuredError converts any error into a structured Error.
// If err is already an *Error, returns it unchanged.
// Otherwise wraps it as an internal error.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}

	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr
	}

	return InternalError(err)
}
