package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports a failure detected client-side, before any
// request is dispatched. Fields maps a field name to its messages.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + joinFieldErrors(e.Fields)
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}

// RequestError is a backend-reported failure, usually a 4xx with a
// structured body. Fields carries per-field errors when the backend
// sent them; Message is its top-level message, if any.
type RequestError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
}

func (e *RequestError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("request failed (%d): %s", e.StatusCode, joinFieldErrors(e.Fields))
	}
	if e.Message != "" {
		return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed (%d)", e.StatusCode)
}

// AuthError reports invalid or expired credentials.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}
	return e.Message
}

// NotFoundError reports an operation on an id the backend no longer
// knows, typically a stale row acted on after a concurrent delete.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NetworkError wraps a transport-level failure: unreachable backend,
// timeout, connection reset.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: backend unreachable: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UserMessage renders an error as the single line shown to the user.
// Structured field errors win over the generic message, which wins over
// the fallback.
func UserMessage(err error, fallback string) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return joinFieldErrors(ve.Fields)
	}
	var re *RequestError
	if errors.As(err, &re) {
		if len(re.Fields) > 0 {
			return joinFieldErrors(re.Fields)
		}
		if re.Message != "" {
			return re.Message
		}
		return fallback
	}
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Error()
	}
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	var ne *NetworkError
	if errors.As(err, &ne) {
		return "Cannot reach the server. Please check your connection and try again."
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}

func joinFieldErrors(fields map[string][]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(fields[name], ", ")))
	}
	return strings.Join(parts, "; ")
}
