// Package lifecycle holds the status vocabularies shared across domains:
// the usability status carried by identifiers and contacts, and the
// active/termination-date consistency rule every dated record follows.
package lifecycle

import "time"

// UsabilityStatus tracks whether a data element is trustworthy for use.
type UsabilityStatus string

const (
	UsabilityActive     UsabilityStatus = "ACTIVE"
	UsabilityInactive   UsabilityStatus = "INACTIVE"
	UsabilityArchived   UsabilityStatus = "ARCHIVED"
	UsabilityKnownError UsabilityStatus = "KNOWN_ERROR"
)

var usabilityStatuses = map[UsabilityStatus]bool{
	UsabilityActive:     true,
	UsabilityInactive:   true,
	UsabilityArchived:   true,
	UsabilityKnownError: true,
}

func (s UsabilityStatus) Valid() bool { return usabilityStatuses[s] }

// CanTransitionTo reports whether the status may move to next. The normal
// path is ACTIVE -> INACTIVE -> ARCHIVED; KNOWN_ERROR is reachable from any
// state to flag bad data without losing it. ARCHIVED only admits the
// KNOWN_ERROR annotation.
func (s UsabilityStatus) CanTransitionTo(next UsabilityStatus) bool {
	if !s.Valid() || !next.Valid() || s == next {
		return false
	}
	if next == UsabilityKnownError {
		return true
	}
	switch s {
	case UsabilityActive:
		return next == UsabilityInactive
	case UsabilityInactive:
		return next == UsabilityArchived
	case UsabilityKnownError:
		return next == UsabilityInactive || next == UsabilityArchived
	}
	return false
}

// DatesConsistent enforces the activity rule shared by roles,
// relationships, contracts, structures and memberships: an active record
// has no termination date in the past, and a terminated date never precedes
// the effective date.
func DatesConsistent(isActive bool, effective time.Time, termination *time.Time, now time.Time) bool {
	if termination != nil && termination.Before(effective) {
		return false
	}
	if isActive && termination != nil && termination.Before(now) {
		return false
	}
	return true
}
