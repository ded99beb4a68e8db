package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrKeyNotFound is returned by key-value repositories when a key is absent.
var ErrKeyNotFound = errors.New("key not found")

// Error represents a typed domain error with HTTP awareness. Fields carries
// per-field validation messages keyed by the JSON field name.
type Error struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Status  int               `json:"status"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches errors carrying the same code so predefined values can be used
// with errors.Is after Clone or Wrap.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrNotFound         = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrUnauthorized     = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrConflict         = New("CONFLICT", http.StatusConflict, "conflict")
	ErrValidation       = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrCodeRequired     = New("CODE_REQUIRED", http.StatusBadRequest, "Verification code is required.")
	ErrCodeExpired      = New("CODE_EXPIRED", http.StatusGone, "Code expired. Please resend.")
	ErrInvalidStage     = New("INVALID_STAGE", http.StatusConflict, "action not allowed at this step")
	ErrRemoteAuthFailed = New("REMOTE_AUTH_FAILED", http.StatusBadGateway, "authentication service failed")
	ErrInternal         = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	clone.Fields = nil
	return &clone
}

// Validation builds a VALIDATION_ERROR carrying inline field messages.
func Validation(fields map[string]string) *Error {
	e := Clone(ErrValidation, "")
	if len(fields) > 0 {
		e.Fields = fields
	}
	return e
}

// WithFields returns a copy of err with the given field messages attached.
func WithFields(err *Error, fields map[string]string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	clone.Fields = fields
	return &clone
}
