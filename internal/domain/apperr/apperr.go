// internal/domain/apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies every rejected command so callers can pick a transport
// status without the domain knowing about HTTP.
type Kind int

const (
	// KindUnknown is the zero value; treat as internal.
	KindUnknown Kind = iota
	// KindValidation: missing or empty required input.
	KindValidation
	// KindNotFound: aggregate or nested entry absent where lookup is required.
	KindNotFound
	// KindUnauthorized: identity mismatch against an ownership-gated field.
	KindUnauthorized
	// KindConflict: state-dependent rule violation (duplicate like, unlike
	// without like, duplicate email).
	KindConflict
	// KindPersistence: opaque store failure, including concurrency-conflict
	// exhaustion after retries. The only kind considered fatal to a request.
	KindPersistence
)

// String returns a short lowercase label for the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindConflict:
		return "conflict"
	case KindPersistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Error is the domain error carried across the command boundary.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a KindValidation error.
func Validation(msg string) error { return &Error{Kind: KindValidation, Message: msg} }

// NotFound builds a KindNotFound error.
func NotFound(msg string) error { return &Error{Kind: KindNotFound, Message: msg} }

// Unauthorized builds a KindUnauthorized error.
func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Message: msg} }

// Conflict builds a KindConflict error.
func Conflict(msg string) error { return &Error{Kind: KindConflict, Message: msg} }

// Persistence wraps a store failure.
func Persistence(msg string, err error) error {
	return &Error{Kind: KindPersistence, Message: msg, Err: err}
}

// KindOf extracts the kind from err, or KindUnknown if err is not (and does
// not wrap) an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool { return KindOf(err) == k }
