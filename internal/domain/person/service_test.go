package person

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wellnecity/edm/internal/domain/lifecycle"
	"github.com/wellnecity/edm/internal/errs"
	"github.com/wellnecity/edm/internal/platform/db"
)

func newTestService(t *testing.T) (*Service, Repository) {
	t.Helper()
	repo := NewInMemoryRepository()
	return NewService(repo, db.NopTransactor{}, zerolog.Nop()), repo
}

func seedPerson(t *testing.T, repo Repository) *Person {
	t.Helper()
	now := time.Now()
	p := &Person{ID: uuid.New(), FirstName: "Ada", LastName: "Smith",
		IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := repo.CreatePerson(context.Background(), p); err != nil {
		t.Fatalf("seed person: %v", err)
	}
	return p
}

func wantRule(t *testing.T, err error, rule string) {
	t.Helper()
	e, ok := err.(*errs.Error)
	if !ok || e.Rule != rule {
		t.Fatalf("expected rule %q, got %v", rule, err)
	}
}

func TestEmploymentStatusTransitions(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	p := seedPerson(t, repo)
	now := time.Now()

	e := &Employee{ID: uuid.New(), PersonID: p.ID, EmployerOrgID: uuid.New(),
		HireDate: now.AddDate(-2, 0, 0), EmploymentStatus: EmploymentActive,
		IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := repo.CreateEmployee(ctx, e); err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	if err := svc.SetEmploymentStatus(ctx, e.ID, EmploymentLOA, now); err != nil {
		t.Fatalf("ACTIVE -> LOA: %v", err)
	}
	got, _ := repo.GetEmployee(ctx, e.ID)
	if got.IsActive {
		t.Error("is_active should be false on LOA")
	}

	// Return from leave.
	if err := svc.SetEmploymentStatus(ctx, e.ID, EmploymentActive, now); err != nil {
		t.Fatalf("LOA -> ACTIVE: %v", err)
	}
	got, _ = repo.GetEmployee(ctx, e.ID)
	if !got.IsActive || got.TerminationDate != nil {
		t.Errorf("return from leave not normalized: %+v", got)
	}

	if err := svc.SetEmploymentStatus(ctx, e.ID, EmploymentTerminated, now); err != nil {
		t.Fatalf("ACTIVE -> TERMINATED: %v", err)
	}
	got, _ = repo.GetEmployee(ctx, e.ID)
	if got.IsActive || got.TerminationDate == nil {
		t.Errorf("termination not recorded: %+v", got)
	}

	// TERMINATED is terminal.
	wantRule(t, svc.SetEmploymentStatus(ctx, e.ID, EmploymentActive, now), "status-transition")
}

func TestSetPreferredContactSingleWinner(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	p := seedPerson(t, repo)
	now := time.Now()

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		c := &Contact{ID: uuid.New(), PersonID: p.ID, ContactType: ContactPhone,
			Label: "MOBILE", IsPreferred: i == 1,
			UsabilityStatus: lifecycle.UsabilityActive, UsabilityStatusDate: now,
			CreatedAt: now, UpdatedAt: now}
		if err := repo.CreateContact(ctx, c); err != nil {
			t.Fatalf("seed contact: %v", err)
		}
		ids = append(ids, c.ID)
	}

	if err := svc.SetPreferredContact(ctx, p.ID, ContactPhone, ids[0]); err != nil {
		t.Fatalf("set preferred: %v", err)
	}
	all, _ := repo.ContactsForPersonType(ctx, p.ID, ContactPhone)
	winners := 0
	for _, c := range all {
		if c.IsPreferred {
			winners++
			if c.ID != ids[0] {
				t.Errorf("wrong winner: %s", c.ID)
			}
		}
	}
	if winners != 1 {
		t.Fatalf("expected one preferred contact, got %d", winners)
	}
}

func TestConcurrentPreferredContactOneWinner(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, &db.SerialTransactor{}, zerolog.Nop())
	ctx := context.Background()
	p := seedPerson(t, repo)
	now := time.Now()

	var ids []uuid.UUID
	for i := 0; i < 4; i++ {
		c := &Contact{ID: uuid.New(), PersonID: p.ID, ContactType: ContactPhone,
			Label: "MOBILE", IsPreferred: i == 0,
			UsabilityStatus: lifecycle.UsabilityActive, UsabilityStatusDate: now,
			CreatedAt: now, UpdatedAt: now}
		if err := repo.CreateContact(ctx, c); err != nil {
			t.Fatalf("seed contact: %v", err)
		}
		ids = append(ids, c.ID)
	}

	// Every writer promotes a different contact at once. Whichever commit
	// lands last wins; the point is that none of the interleavings may
	// leave two preferred rows behind.
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(winner uuid.UUID) {
			defer wg.Done()
			if err := svc.SetPreferredContact(ctx, p.ID, ContactPhone, winner); err != nil {
				t.Errorf("set preferred %s: %v", winner, err)
			}
		}(id)
	}
	wg.Wait()

	all, _ := repo.ContactsForPersonType(ctx, p.ID, ContactPhone)
	winners := 0
	for _, c := range all {
		if c.IsPreferred {
			winners++
		}
	}
	if winners != 1 {
		t.Fatalf("concurrent writers left %d preferred contacts", winners)
	}
}

func TestConcurrentPrimaryIdentifierOneWinner(t *testing.T) {
	repo := NewInMemoryRepository()
	svc := NewService(repo, &db.SerialTransactor{}, zerolog.Nop())
	ctx := context.Background()
	p := seedPerson(t, repo)
	now := time.Now()

	var ids []uuid.UUID
	for i := 0; i < 2; i++ {
		id := &Identifier{ID: uuid.New(), PersonID: p.ID, IdentifierType: IdentifierMemberID,
			IdentifierValue: fmt.Sprintf("W-100%d", i+1), IsPrimary: i == 0,
			UsabilityStatus: lifecycle.UsabilityActive, UsabilityStatusDate: now,
			CreatedAt: now, UpdatedAt: now}
		if err := repo.CreateIdentifier(ctx, id); err != nil {
			t.Fatalf("seed identifier: %v", err)
		}
		ids = append(ids, id.ID)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(winner uuid.UUID) {
			defer wg.Done()
			if err := svc.SetPrimaryIdentifier(ctx, p.ID, IdentifierMemberID, winner); err != nil {
				t.Errorf("set primary %s: %v", winner, err)
			}
		}(id)
	}
	wg.Wait()

	all, _ := repo.IdentifiersForPersonType(ctx, p.ID, IdentifierMemberID)
	winners := 0
	for _, id := range all {
		if id.IsPrimary {
			winners++
		}
	}
	if winners != 1 {
		t.Fatalf("concurrent writers left %d primary identifiers", winners)
	}
}

func TestSetPrimaryIdentifierWinnerMustBelong(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	p := seedPerson(t, repo)
	now := time.Now()

	i := &Identifier{ID: uuid.New(), PersonID: p.ID, IdentifierType: IdentifierMemberID,
		IdentifierValue: "W-1001", UsabilityStatus: lifecycle.UsabilityActive,
		UsabilityStatusDate: now, CreatedAt: now, UpdatedAt: now}
	if err := repo.CreateIdentifier(ctx, i); err != nil {
		t.Fatalf("seed identifier: %v", err)
	}

	// An SSN row cannot win the MEMBER_ID slot.
	wantRule(t, svc.SetPrimaryIdentifier(ctx, p.ID, IdentifierSSN, i.ID), "single-primary")

	if err := svc.SetPrimaryIdentifier(ctx, p.ID, IdentifierMemberID, i.ID); err != nil {
		t.Fatalf("set primary: %v", err)
	}
}

func TestSetPrimaryAffiliation(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	p := seedPerson(t, repo)
	now := time.Now()

	prov := &Provider{ID: uuid.New(), PersonID: p.ID, IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := repo.CreateProvider(ctx, prov); err != nil {
		t.Fatalf("seed provider: %v", err)
	}
	var ids []uuid.UUID
	for i := 0; i < 2; i++ {
		a := &Affiliation{ID: uuid.New(), ProviderID: prov.ID, ProviderOrgID: uuid.New(),
			AffiliationType: "EMPLOYED", EffectiveDate: now, IsPrimary: i == 0,
			IsActive: true, CreatedAt: now, UpdatedAt: now}
		if err := svc.AddAffiliation(ctx, a); err != nil {
			t.Fatalf("add affiliation: %v", err)
		}
		ids = append(ids, a.ID)
	}

	if err := svc.SetPrimaryAffiliation(ctx, prov.ID, ids[1]); err != nil {
		t.Fatalf("set primary affiliation: %v", err)
	}
	affs, _ := repo.AffiliationsForProvider(ctx, prov.ID)
	winners := 0
	for _, a := range affs {
		if a.IsPrimary {
			winners++
			if a.ID != ids[1] {
				t.Errorf("wrong winner: %s", a.ID)
			}
		}
	}
	if winners != 1 {
		t.Fatalf("expected one primary affiliation, got %d", winners)
	}
}

func TestAddParticipantUnique(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	p := seedPerson(t, repo)
	now := time.Now()

	h := &Household{ID: uuid.New(), IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := repo.CreateHousehold(ctx, h); err != nil {
		t.Fatalf("seed household: %v", err)
	}

	first := &HouseholdParticipant{ID: uuid.New(), HouseholdID: h.ID, PersonID: p.ID,
		RelationshipType: "MOTHER", EffectiveDate: now, IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := svc.AddParticipant(ctx, first); err != nil {
		t.Fatalf("add participant: %v", err)
	}

	dup := &HouseholdParticipant{ID: uuid.New(), HouseholdID: h.ID, PersonID: p.ID,
		RelationshipType: "MOTHER", EffectiveDate: now, IsActive: true, CreatedAt: now, UpdatedAt: now}
	wantRule(t, svc.AddParticipant(ctx, dup), "unique-participation")

	orphan := &HouseholdParticipant{ID: uuid.New(), HouseholdID: uuid.New(), PersonID: p.ID,
		RelationshipType: "CHILD", EffectiveDate: now, IsActive: true, CreatedAt: now, UpdatedAt: now}
	wantRule(t, svc.AddParticipant(ctx, orphan), "fk-existence")
}
