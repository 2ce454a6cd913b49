package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Docket  string `json:"docket,omitempty"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if e.Docket != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Docket)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
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
	ErrNotFound     = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrForbidden    = New("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrUnauthorized = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrConflict     = New("CONFLICT", http.StatusConflict, "conflict")
	ErrValidation   = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal     = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")

	ErrInvalidCredentials = New("INVALID_CREDENTIALS", http.StatusUnauthorized, "invalid username or password")
)

// ErrCacheMiss reports an absent cache entry. It never reaches API
// responses; callers fall through to the underlying store.
var ErrCacheMiss = errors.New("cache miss")

// Fatal identity error codes raised while deriving a case status. The caller
// is expected to skip or report the affected case, not retry.
const (
	CodeNoDocket        = "NO_DOCKET"
	CodeBadDocketNumber = "BAD_DOCKET_NUMBER"
	CodeCaseType        = "CASE_TYPE"
	CodeCaseName        = "CASE_NAME"
	CodeBadEvent        = "BAD_EVENT"
)

// NoDocket signals that no docket information was found.
func NoDocket(docket string) *Error {
	return &Error{Code: CodeNoDocket, Status: http.StatusNotFound, Message: "no docket info found", Docket: docket}
}

// BadDocketNumber signals an unparseable case-number string.
func BadDocketNumber(docket string) *Error {
	return &Error{Code: CodeBadDocketNumber, Status: http.StatusUnprocessableEntity, Message: "unparseable docket number", Docket: docket}
}

// CaseTypeError signals that the case type could not be determined.
func CaseTypeError(docket string) *Error {
	return &Error{Code: CodeCaseType, Status: http.StatusUnprocessableEntity, Message: "unable to determine case type", Docket: docket}
}

// CaseNameError signals that the canonical case name could not be built.
func CaseNameError(docket string) *Error {
	return &Error{Code: CodeCaseName, Status: http.StatusUnprocessableEntity, Message: "unable to create case name", Docket: docket}
}

// WrapDocket wraps a construction failure with the owning docket identifier.
func WrapDocket(err error, docket string) *Error {
	return &Error{Code: CodeBadEvent, Status: http.StatusUnprocessableEntity, Message: "unable to parse docket events", Docket: docket, Err: err}
}

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
	return &clone
}
