// Package apierr defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages. This enables better error categorization, logging,
// and user experience by providing context-aware error information.
//
// The package supports wrapping underlying errors while maintaining error kind information,
// making it easier to handle different types of failures appropriately.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// InvalidInputLocal indicates a field failed local validation; the
	// request was never sent to the backend.
	InvalidInputLocal Kind = "invalid_input"
	// Unauthorized indicates the bearer token was missing, expired or
	// invalid (HTTP 401). Callers are expected to force a logout.
	Unauthorized Kind = "unauthorized"
	// Conflict indicates the backend rejected a duplicate (HTTP 409),
	// e.g. an already-registered email or an already-booked seat.
	Conflict Kind = "conflict"
	// ValidationFailed indicates the backend rejected the payload
	// (HTTP 400/422).
	ValidationFailed Kind = "validation_failed"
	// NotFound indicates the resource does not exist (HTTP 404).
	NotFound Kind = "not_found"
	// NetworkUnreachable indicates the request never reached a server
	// or timed out.
	NetworkUnreachable Kind = "network_unreachable"
	// ServerError indicates an HTTP 5xx response.
	ServerError Kind = "server_error"
	// Unknown covers everything else.
	Unknown Kind = "unknown"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// FromStatus maps an HTTP status code to an error kind.
func FromStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return Unauthorized
	case status == http.StatusNotFound:
		return NotFound
	case status == http.StatusConflict:
		return Conflict
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return ValidationFailed
	case status >= 500:
		return ServerError
	default:
		return Unknown
	}
}

// KindOf extracts the Kind from an error chain. Plain errors report Unknown;
// nil reports an empty kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *E
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool { return KindOf(err) == kind }

// MessageOf returns the human-friendly message from an error chain, falling
// back to the plain Error() text.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var e *E
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}
