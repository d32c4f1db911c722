package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a typed client error carrying the backend status when one exists.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
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

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors covering the client failure taxonomy: the request never
// completed, the backend answered with an error payload, or the session is
// not (or no longer) authorized.
var (
	ErrNetwork      = New("NETWORK_ERROR", 0, "request could not complete")
	ErrBackend      = New("BACKEND_ERROR", http.StatusBadGateway, "backend rejected the request")
	ErrUnauthorized = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrValidation   = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal     = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal error")
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
	return &clone
}

// IsNetwork reports whether the error is a transport-level failure rather
// than a backend-supplied one.
func IsNetwork(err error) bool {
	return FromError(err) != nil && FromError(err).Code == ErrNetwork.Code
}

// BackendMessage extracts the backend-supplied message when the error is an
// application-level failure, or returns fallback. Network failures never
// expose internal detail to the user.
func BackendMessage(err error, fallback string) string {
	e := FromError(err)
	if e == nil {
		return fallback
	}
	if e.Code == ErrBackend.Code && e.Message != "" && e.Message != ErrBackend.Message {
		return e.Message
	}
	return fallback
}
