// Package errs defines the error taxonomy shared by the schema registry,
// the integrity checker, and the storage layer.
//
// Four kinds of failure exist. StructuralViolation and RelationshipViolation
// are caller errors: the input must be corrected, retrying is pointless.
// ConcurrencyConflict and StoreUnavailable are transient and safe to retry
// with backoff.
package errs

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// KindStructural marks a per-document schema failure: a missing required
	// field, a wrong type, an enum mismatch, a pattern or bound failure.
	KindStructural Kind = iota + 1

	// KindRelationship marks a cross-entity invariant failure: a dangling
	// reference, a role-type mismatch, a broken cardinality rule.
	KindRelationship

	// KindConflict marks an optimistic-lock failure or transaction abort
	// caused by a concurrent writer on the same invariant scope.
	KindConflict

	// KindUnavailable marks a transient infrastructure failure.
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "StructuralViolation"
	case KindRelationship:
		return "RelationshipViolation"
	case KindConflict:
		return "ConcurrencyConflict"
	case KindUnavailable:
		return "StoreUnavailable"
	}
	return "Unknown"
}

// Error carries enough identifiers for a human-actionable fix: the
// collection, the offending field (structural) or invariant (relationship),
// and the rule that failed. Nothing is silently dropped or auto-corrected.
type Error struct {
	Kind       Kind
	Collection string
	Field      string // set for structural violations
	Rule       string // e.g. "required", "enum", "pattern", "one-subscriber-per-coverage"
	Message    string
	Err        error // wrapped cause, if any
}

func (e *Error) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s: %s.%s: %s: %s", e.Kind, e.Collection, e.Field, e.Rule, e.Message)
	case e.Collection != "":
		return fmt.Sprintf("%s: %s: %s: %s", e.Kind, e.Collection, e.Rule, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Structural reports a per-document schema violation on a named field.
func Structural(collection, field, rule, format string, args ...interface{}) *Error {
	return &Error{
		Kind:       KindStructural,
		Collection: collection,
		Field:      field,
		Rule:       rule,
		Message:    fmt.Sprintf(format, args...),
	}
}

// Relationship reports a cross-entity invariant violation.
func Relationship(collection, rule, format string, args ...interface{}) *Error {
	return &Error{
		Kind:       KindRelationship,
		Collection: collection,
		Rule:       rule,
		Message:    fmt.Sprintf(format, args...),
	}
}

// Conflict reports a concurrent-writer collision on an invariant scope.
func Conflict(collection, format string, args ...interface{}) *Error {
	return &Error{
		Kind:       KindConflict,
		Collection: collection,
		Rule:       "concurrent-write",
		Message:    fmt.Sprintf(format, args...),
	}
}

// Unavailable wraps a transient store failure.
func Unavailable(err error) *Error {
	return &Error{
		Kind:    KindUnavailable,
		Message: err.Error(),
		Err:     err,
	}
}

// KindOf returns the taxonomy kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Retryable reports whether err may succeed on retry. Only concurrency
// conflicts and store outages qualify; structural and relationship
// violations require corrected input.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindConflict, KindUnavailable:
		return true
	}
	return false
}
