package core

import (
	"errors"
	"fmt"
)

// ErrorKind tags a core error so the transport layer can map it to a
// response without string matching.
type ErrorKind string

const (
	KindNotFound             ErrorKind = "not_found"
	KindPermissionDenied     ErrorKind = "permission_denied"
	KindInvalidTransition    ErrorKind = "invalid_transition"
	KindInvalidState         ErrorKind = "invalid_state"
	KindValidation           ErrorKind = "validation"
	KindDuplicateRequest     ErrorKind = "duplicate_request"
	KindInsufficientCapacity ErrorKind = "insufficient_capacity"
	KindCapacityViolation    ErrorKind = "capacity_violation"
	KindConflict             ErrorKind = "conflict"
)

// Error is the result type every core operation returns on failure.
// All validation happens before any mutation, so a returned Error means
// no state changed.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Errorf builds a tagged core error.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from err, or "" if err is not a core error.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// IsKind reports whether err is a core error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
