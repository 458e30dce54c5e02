package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wellnecity/edm/internal/errs"
	"github.com/wellnecity/edm/internal/platform/db"
)

func newTestService(t *testing.T) (*Service, Repository) {
	t.Helper()
	repo := NewInMemoryRepository()
	return NewService(repo, db.NopTransactor{}, zerolog.Nop()), repo
}

func seedPortfolio(t *testing.T, repo Repository, parent *uuid.UUID) *Portfolio {
	t.Helper()
	now := time.Now()
	p := &Portfolio{
		ID: uuid.New(), Name: "book of business", PortfolioType: TypeBroker,
		ParentPortfolioID: parent, EffectiveDate: now, IsActive: true,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("seed portfolio: %v", err)
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

func TestCreateRejectsDualOwner(t *testing.T) {
	svc, _ := newTestService(t)
	now := time.Now()
	orgID, personID := uuid.New(), uuid.New()

	p := &Portfolio{ID: uuid.New(), Name: "x", PortfolioType: TypeWellnecity,
		OwnerOrgID: &orgID, OwnerPersonID: &personID,
		EffectiveDate: now, IsActive: true, CreatedAt: now, UpdatedAt: now}
	wantRule(t, svc.Create(context.Background(), p), "owner-exclusive")
}

func TestCreateAcceptsEachOwnerVariant(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	now := time.Now()
	orgID, personID := uuid.New(), uuid.New()

	variants := []*Portfolio{
		{ID: uuid.New(), Name: "org-owned", PortfolioType: TypeEmployer, OwnerOrgID: &orgID},
		{ID: uuid.New(), Name: "person-owned", PortfolioType: TypeUser, OwnerPersonID: &personID},
		{ID: uuid.New(), Name: "unowned", PortfolioType: TypeWellnecity},
	}
	for _, p := range variants {
		p.EffectiveDate = now
		p.IsActive = true
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := svc.Create(ctx, p); err != nil {
			t.Errorf("%s rejected: %v", p.Name, err)
		}
	}
}

func TestOwnerTaggedAccess(t *testing.T) {
	orgID := uuid.New()
	p := &Portfolio{OwnerOrgID: &orgID}
	kind, id := p.Owner()
	if kind != OwnerOrg || id != orgID {
		t.Fatalf("expected org owner, got %v %s", kind, id)
	}
	kind, _ = (&Portfolio{}).Owner()
	if kind != OwnerNone {
		t.Fatalf("expected no owner, got %v", kind)
	}
}

func TestReparentRejectsCycle(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	root := seedPortfolio(t, repo, nil)
	mid := seedPortfolio(t, repo, &root.ID)
	leaf := seedPortfolio(t, repo, &mid.ID)

	wantRule(t, svc.Reparent(ctx, root.ID, &leaf.ID), "acyclic")
	wantRule(t, svc.Reparent(ctx, mid.ID, &mid.ID), "acyclic")

	if err := svc.Reparent(ctx, leaf.ID, &root.ID); err != nil {
		t.Fatalf("valid reparent rejected: %v", err)
	}
}

func TestCreateRejectsMissingParent(t *testing.T) {
	svc, _ := newTestService(t)
	now := time.Now()
	ghost := uuid.New()
	p := &Portfolio{ID: uuid.New(), Name: "x", PortfolioType: TypeVendor,
		ParentPortfolioID: &ghost, EffectiveDate: now, IsActive: true,
		CreatedAt: now, UpdatedAt: now}
	wantRule(t, svc.Create(context.Background(), p), "fk-existence")
}

func TestAddMemberUnique(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	p := seedPortfolio(t, repo, nil)
	now := time.Now()
	orgID := uuid.New()

	m := &Member{ID: uuid.New(), PortfolioID: p.ID, OrgID: orgID,
		EffectiveDate: now, IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := svc.AddMember(ctx, m); err != nil {
		t.Fatalf("add member: %v", err)
	}

	dup := &Member{ID: uuid.New(), PortfolioID: p.ID, OrgID: orgID,
		EffectiveDate: now, IsActive: true, CreatedAt: now, UpdatedAt: now}
	wantRule(t, svc.AddMember(ctx, dup), "unique-membership")

	orphan := &Member{ID: uuid.New(), PortfolioID: uuid.New(), OrgID: orgID,
		EffectiveDate: now, IsActive: true, CreatedAt: now, UpdatedAt: now}
	wantRule(t, svc.AddMember(ctx, orphan), "fk-existence")
}
