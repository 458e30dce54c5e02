package org

import (
	"context"
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
	svc := NewService(repo, db.NopTransactor{}, zerolog.Nop())
	return svc, repo
}

func seedOrg(t *testing.T, repo Repository) *Org {
	t.Helper()
	now := time.Now()
	o := &Org{ID: uuid.New(), Name: "Acme Health", IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := repo.CreateOrg(context.Background(), o); err != nil {
		t.Fatalf("seed org: %v", err)
	}
	return o
}

func seedRole(t *testing.T, repo Repository, orgID uuid.UUID, rt RoleType) *OrgRole {
	t.Helper()
	now := time.Now()
	role := &OrgRole{
		ID: uuid.New(), OrgID: orgID, RoleType: rt,
		EffectiveDate: now.AddDate(-1, 0, 0), IsActive: true,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := repo.CreateRole(context.Background(), role); err != nil {
		t.Fatalf("seed role: %v", err)
	}
	return role
}

func wantRelationshipRule(t *testing.T, err error, rule string) {
	t.Helper()
	if errs.KindOf(err) != errs.KindRelationship {
		t.Fatalf("expected relationship violation, got %v", err)
	}
	var e *errs.Error
	if !errsAs(err, &e) || e.Rule != rule {
		t.Fatalf("expected rule %q, got %v", rule, err)
	}
}

func errsAs(err error, target **errs.Error) bool {
	e, ok := err.(*errs.Error)
	if ok {
		*target = e
	}
	return ok
}

// ===== Role details =====

func TestAttachDetailsRequiresMatchingRole(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	o := seedOrg(t, repo)
	employer := seedRole(t, repo, o.ID, RoleEmployer)
	carrier := seedRole(t, repo, o.ID, RoleCarrier)
	now := time.Now()

	good := &EmployerDetails{ID: uuid.New(), OrgRoleID: employer.ID, CreatedAt: now, UpdatedAt: now}
	if err := svc.AttachEmployerDetails(ctx, good); err != nil {
		t.Fatalf("matching role rejected: %v", err)
	}

	bad := &EmployerDetails{ID: uuid.New(), OrgRoleID: carrier.ID, CreatedAt: now, UpdatedAt: now}
	wantRelationshipRule(t, svc.AttachEmployerDetails(ctx, bad), "role-detail-match")

	missing := &CarrierDetails{ID: uuid.New(), OrgRoleID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	wantRelationshipRule(t, svc.AttachCarrierDetails(ctx, missing), "fk-existence")
}

func TestAssignRoleValidation(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	o := seedOrg(t, repo)
	now := time.Now()

	bogus := &OrgRole{ID: uuid.New(), OrgID: o.ID, RoleType: "JANITOR", EffectiveDate: now, IsActive: true}
	if errs.KindOf(svc.AssignRole(ctx, bogus)) != errs.KindStructural {
		t.Error("unknown role type accepted")
	}

	orphan := &OrgRole{ID: uuid.New(), OrgID: uuid.New(), RoleType: RoleClient, EffectiveDate: now, IsActive: true}
	wantRelationshipRule(t, svc.AssignRole(ctx, orphan), "fk-existence")

	past := now.AddDate(0, -1, 0)
	stale := &OrgRole{ID: uuid.New(), OrgID: o.ID, RoleType: RoleClient,
		EffectiveDate: now.AddDate(-1, 0, 0), TerminationDate: &past, IsActive: true}
	wantRelationshipRule(t, svc.AssignRole(ctx, stale), "date-activity")
}

// ===== Contract lifecycle =====

func TestContractTransitions(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	now := time.Now()

	c := &Contract{ID: uuid.New(), OrgRelationshipID: uuid.New(),
		EffectiveDate: now, Status: ContractDraft, CreatedAt: now, UpdatedAt: now}
	if err := repo.CreateContract(ctx, c); err != nil {
		t.Fatalf("seed contract: %v", err)
	}

	// DRAFT cannot expire.
	wantRelationshipRule(t, svc.TransitionContract(ctx, c.ID, ContractExpired, now), "status-transition")

	if err := svc.TransitionContract(ctx, c.ID, ContractActive, now); err != nil {
		t.Fatalf("DRAFT -> ACTIVE: %v", err)
	}
	if err := svc.TransitionContract(ctx, c.ID, ContractTerminated, now); err != nil {
		t.Fatalf("ACTIVE -> TERMINATED: %v", err)
	}

	got, err := repo.GetContract(ctx, c.ID)
	if err != nil {
		t.Fatalf("get contract: %v", err)
	}
	if got.Status != ContractTerminated || got.TerminationDate == nil {
		t.Fatalf("termination not recorded: %+v", got)
	}

	// Terminal state admits nothing.
	wantRelationshipRule(t, svc.TransitionContract(ctx, c.ID, ContractActive, now), "status-transition")
}

// ===== Structure hierarchy =====

func seedStructureWithChain(t *testing.T, repo Repository, depth int) []*OrgStructureNode {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	structureID := uuid.New()
	var nodes []*OrgStructureNode
	var parent *uuid.UUID
	for i := 0; i < depth; i++ {
		n := &OrgStructureNode{
			ID: uuid.New(), OrgStructureID: structureID, ParentNodeID: parent,
			Name: "node", Level: i, EffectiveDate: now, IsActive: true,
			CreatedAt: now, UpdatedAt: now,
		}
		if err := repo.CreateNode(ctx, n); err != nil {
			t.Fatalf("seed node: %v", err)
		}
		nodes = append(nodes, n)
		parent = &n.ID
	}
	return nodes
}

func TestAddNodeLevelRules(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	now := time.Now()
	chain := seedStructureWithChain(t, repo, 2)
	root := chain[0]

	badRoot := &OrgStructureNode{ID: uuid.New(), OrgStructureID: root.OrgStructureID,
		Name: "n", Level: 1, EffectiveDate: now, IsActive: true}
	wantRelationshipRule(t, svc.AddNode(ctx, badRoot), "node-level")

	badChild := &OrgStructureNode{ID: uuid.New(), OrgStructureID: root.OrgStructureID,
		ParentNodeID: &root.ID, Name: "n", Level: 3, EffectiveDate: now, IsActive: true}
	wantRelationshipRule(t, svc.AddNode(ctx, badChild), "node-level")

	crossStructure := &OrgStructureNode{ID: uuid.New(), OrgStructureID: uuid.New(),
		ParentNodeID: &root.ID, Name: "n", Level: 1, EffectiveDate: now, IsActive: true}
	wantRelationshipRule(t, svc.AddNode(ctx, crossStructure), "structure-uniform")

	goodChild := &OrgStructureNode{ID: uuid.New(), OrgStructureID: root.OrgStructureID,
		ParentNodeID: &root.ID, Name: "n", Level: 1, EffectiveDate: now, IsActive: true}
	if err := svc.AddNode(ctx, goodChild); err != nil {
		t.Fatalf("valid child rejected: %v", err)
	}
}

func TestReparentNodeRejectsCycle(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	chain := seedStructureWithChain(t, repo, 3)

	// Moving the root under its grandchild closes a cycle.
	wantRelationshipRule(t, svc.ReparentNode(ctx, chain[0].ID, &chain[2].ID), "acyclic")
	wantRelationshipRule(t, svc.ReparentNode(ctx, chain[1].ID, &chain[1].ID), "acyclic")
}

func TestReparentNodeRelevelsSubtree(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	chain := seedStructureWithChain(t, repo, 3)

	// Detach the middle node to root level; its child must follow.
	if err := svc.ReparentNode(ctx, chain[1].ID, nil); err != nil {
		t.Fatalf("reparent: %v", err)
	}
	mid, _ := repo.GetNode(ctx, chain[1].ID)
	leaf, _ := repo.GetNode(ctx, chain[2].ID)
	if mid.Level != 0 || mid.ParentNodeID != nil {
		t.Fatalf("mid not rerooted: %+v", mid)
	}
	if leaf.Level != 1 {
		t.Fatalf("leaf level not recomputed: %d", leaf.Level)
	}
}

// ===== Single-winner resolution =====

func TestSetPreferredContactSingleWinner(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	o := seedOrg(t, repo)
	now := time.Now()

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		c := &OrgContact{ID: uuid.New(), OrgID: o.ID, ContactType: ContactEmail,
			Label: "BILLING", IsPreferred: i == 0,
			UsabilityStatus: lifecycle.UsabilityActive, UsabilityStatusDate: now,
			CreatedAt: now, UpdatedAt: now}
		if err := repo.CreateContact(ctx, c); err != nil {
			t.Fatalf("seed contact: %v", err)
		}
		ids = append(ids, c.ID)
	}

	if err := svc.SetPreferredContact(ctx, o.ID, ContactEmail, ids[2]); err != nil {
		t.Fatalf("set preferred: %v", err)
	}
	all, _ := repo.ContactsForOrgType(ctx, o.ID, ContactEmail)
	winners := 0
	for _, c := range all {
		if c.IsPreferred {
			winners++
			if c.ID != ids[2] {
				t.Errorf("wrong winner: %s", c.ID)
			}
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one preferred contact, got %d", winners)
	}

	wantRelationshipRule(t, svc.SetPreferredContact(ctx, o.ID, ContactEmail, uuid.New()), "single-preferred")
}

func TestSetPrimaryIdentifierSingleWinner(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	o := seedOrg(t, repo)
	now := time.Now()

	a := &OrgIdentifier{ID: uuid.New(), OrgID: o.ID, IdentifierType: OrgIdentifierFEIN,
		IdentifierValue: "12-3456789", UsabilityStatus: lifecycle.UsabilityActive,
		UsabilityStatusDate: now, IsPrimary: true, CreatedAt: now, UpdatedAt: now}
	b := &OrgIdentifier{ID: uuid.New(), OrgID: o.ID, IdentifierType: OrgIdentifierFEIN,
		IdentifierValue: "98-7654321", UsabilityStatus: lifecycle.UsabilityActive,
		UsabilityStatusDate: now, CreatedAt: now, UpdatedAt: now}
	for _, i := range []*OrgIdentifier{a, b} {
		if err := repo.CreateIdentifier(ctx, i); err != nil {
			t.Fatalf("seed identifier: %v", err)
		}
	}

	if err := svc.SetPrimaryIdentifier(ctx, o.ID, OrgIdentifierFEIN, b.ID); err != nil {
		t.Fatalf("set primary: %v", err)
	}
	all, _ := repo.IdentifiersForOrgType(ctx, o.ID, OrgIdentifierFEIN)
	winners := 0
	for _, i := range all {
		if i.IsPrimary {
			winners++
		}
	}
	if winners != 1 {
		t.Fatalf("expected exactly one primary identifier, got %d", winners)
	}
}

// ===== Usability =====

func TestUpdateContactUsability(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	o := seedOrg(t, repo)
	now := time.Now()

	c := &OrgContact{ID: uuid.New(), OrgID: o.ID, ContactType: ContactPhone,
		Label: "OTHER", UsabilityStatus: lifecycle.UsabilityActive,
		UsabilityStatusDate: now, CreatedAt: now, UpdatedAt: now}
	if err := repo.CreateContact(ctx, c); err != nil {
		t.Fatalf("seed contact: %v", err)
	}

	wantRelationshipRule(t, svc.UpdateContactUsability(ctx, c.ID, lifecycle.UsabilityArchived, now), "status-transition")

	if err := svc.UpdateContactUsability(ctx, c.ID, lifecycle.UsabilityInactive, now); err != nil {
		t.Fatalf("ACTIVE -> INACTIVE: %v", err)
	}
	if err := svc.UpdateContactUsability(ctx, c.ID, lifecycle.UsabilityArchived, now); err != nil {
		t.Fatalf("INACTIVE -> ARCHIVED: %v", err)
	}
	got, _ := repo.GetContact(ctx, c.ID)
	if got.UsabilityStatus != lifecycle.UsabilityArchived {
		t.Fatalf("status not persisted: %s", got.UsabilityStatus)
	}
}
