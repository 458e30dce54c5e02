package lifecycle

import (
	"testing"
	"time"
)

func TestUsabilityTransitions(t *testing.T) {
	cases := []struct {
		from, to UsabilityStatus
		want     bool
	}{
		{UsabilityActive, UsabilityInactive, true},
		{UsabilityActive, UsabilityArchived, false},
		{UsabilityActive, UsabilityKnownError, true},
		{UsabilityInactive, UsabilityArchived, true},
		{UsabilityInactive, UsabilityActive, false},
		{UsabilityInactive, UsabilityKnownError, true},
		{UsabilityArchived, UsabilityActive, false},
		{UsabilityArchived, UsabilityInactive, false},
		{UsabilityArchived, UsabilityKnownError, true},
		{UsabilityKnownError, UsabilityInactive, true},
		{UsabilityKnownError, UsabilityArchived, true},
		{UsabilityKnownError, UsabilityActive, false},
		{UsabilityActive, UsabilityActive, false},
		{UsabilityStatus("BOGUS"), UsabilityInactive, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestDatesConsistent(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	eff := now.AddDate(-1, 0, 0)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)
	beforeEff := eff.AddDate(0, -1, 0)

	if !DatesConsistent(true, eff, nil, now) {
		t.Error("active with no termination should be consistent")
	}
	if !DatesConsistent(true, eff, &future, now) {
		t.Error("active with future termination should be consistent")
	}
	if DatesConsistent(true, eff, &past, now) {
		t.Error("active with past termination should be inconsistent")
	}
	if !DatesConsistent(false, eff, &past, now) {
		t.Error("inactive with past termination should be consistent")
	}
	if DatesConsistent(false, eff, &beforeEff, now) {
		t.Error("termination before effective should be inconsistent")
	}
}
