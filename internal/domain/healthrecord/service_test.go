package healthrecord

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

func wantRule(t *testing.T, err error, rule string) {
	t.Helper()
	e, ok := err.(*errs.Error)
	if !ok || e.Rule != rule {
		t.Fatalf("expected rule %q, got %v", rule, err)
	}
}

func testActor() Actor {
	name := "Dr. Chen"
	return Actor{Type: "author", ID: "practitioner-117", Name: &name}
}

func newComposition(memberID uuid.UUID) *Composition {
	return &Composition{
		ID:               uuid.New(),
		MemberID:         memberID,
		EmployerID:       uuid.New(),
		ArchetypeID:      "openEHR-EHR-COMPOSITION.encounter.v1",
		CompositionType:  CompositionEncounter,
		Category:         CategoryEvent,
		ContextStartTime: time.Now().Add(-time.Hour),
	}
}

func seedComposition(t *testing.T, svc *Service) *Composition {
	t.Helper()
	c := newComposition(uuid.New())
	if err := svc.CreateComposition(context.Background(), c, testActor()); err != nil {
		t.Fatalf("seed composition: %v", err)
	}
	return c
}

func TestCreateCompositionStartsChain(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	c := seedComposition(t, svc)

	got, err := repo.GetComposition(ctx, c.ID)
	if err != nil {
		t.Fatalf("get composition: %v", err)
	}
	if got.VersionNumber != 1 || !got.IsCurrent || got.Status != CompositionActive {
		t.Fatalf("new chain head = v%d current=%v status=%s", got.VersionNumber, got.IsCurrent, got.Status)
	}
	if got.PrecedingVersionID != nil {
		t.Fatal("first version must not reference a predecessor")
	}

	trail, err := svc.History(ctx, "HEALTH_RECORD_COMPOSITION", c.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(trail) != 1 || trail[0].Activity != ActivityCreate {
		t.Fatalf("expected one CREATE provenance entry, got %v", trail)
	}
}

func TestCreateCompositionRejectsBadEnums(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	c := newComposition(uuid.New())
	c.CompositionType = "SHOPPING_LIST"
	wantRule(t, svc.CreateComposition(ctx, c, testActor()), "enum")

	c = newComposition(uuid.New())
	c.Category = "EVENTUAL"
	wantRule(t, svc.CreateComposition(ctx, c, testActor()), "enum")

	c = newComposition(uuid.New())
	wantRule(t, svc.CreateComposition(ctx, c, Actor{Type: "bystander", ID: "x"}), "enum")
}

func TestSupersedeCompositionKeepsOneCurrent(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	v1 := seedComposition(t, svc)

	v2 := newComposition(v1.MemberID)
	if err := svc.SupersedeComposition(ctx, v1.ID, v2, testActor()); err != nil {
		t.Fatalf("supersede v1: %v", err)
	}
	v3 := newComposition(v1.MemberID)
	if err := svc.SupersedeComposition(ctx, v2.ID, v3, testActor()); err != nil {
		t.Fatalf("supersede v2: %v", err)
	}

	chain, err := repo.CompositionsForMember(ctx, v1.MemberID)
	if err != nil {
		t.Fatalf("list chain: %v", err)
	}
	if len(chain) != 3 {
		t.Fatalf("expected 3 versions, got %d", len(chain))
	}
	var current *Composition
	for _, c := range chain {
		if c.IsCurrent {
			if current != nil {
				t.Fatalf("two current versions: %s and %s", current.ID, c.ID)
			}
			current = c
		}
	}
	if current == nil || current.ID != v3.ID {
		t.Fatalf("current version should be v3, got %v", current)
	}
	if current.VersionNumber != 3 {
		t.Fatalf("head version = %d, want 3", current.VersionNumber)
	}
	if current.PrecedingVersionID == nil || *current.PrecedingVersionID != v2.ID {
		t.Fatal("head must point at its predecessor")
	}

	old, _ := repo.GetComposition(ctx, v1.ID)
	if old.Status != CompositionSuperseded || old.IsCurrent {
		t.Fatalf("v1 = status=%s current=%v, want SUPERSEDED non-current", old.Status, old.IsCurrent)
	}

	// Superseding a non-head version must fail.
	wantRule(t, svc.SupersedeComposition(ctx, v1.ID, newComposition(v1.MemberID), testActor()), "version-chain")
}

func TestSupersedeUnknownComposition(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.SupersedeComposition(context.Background(), uuid.New(), newComposition(uuid.New()), testActor())
	wantRule(t, err, "fk-existence")
}

func TestMarkCompositionDeletedIsTerminal(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	c := seedComposition(t, svc)
	if err := svc.MarkCompositionDeleted(ctx, c.ID, testActor()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ := repo.GetComposition(ctx, c.ID)
	if got.Status != CompositionDeleted {
		t.Fatalf("status = %s, want DELETED", got.Status)
	}

	// Terminal: cannot delete again, cannot supersede.
	wantRule(t, svc.MarkCompositionDeleted(ctx, c.ID, testActor()), "status-transition")
	wantRule(t, svc.SupersedeComposition(ctx, c.ID, newComposition(c.MemberID), testActor()), "status-transition")
}

func TestRecordProblemLinksAndProvenance(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	comp := seedComposition(t, svc)
	p := &Problem{
		ID:             uuid.New(),
		CompositionID:  &comp.ID,
		MemberID:       comp.MemberID,
		ArchetypeID:    "openEHR-EHR-EVALUATION.problem_diagnosis.v1",
		ProblemName:    "Essential hypertension",
		ClinicalStatus: "active",
		RecordedDate:   time.Now(),
	}
	if err := svc.RecordProblem(ctx, p, testActor()); err != nil {
		t.Fatalf("record problem: %v", err)
	}
	trail, err := svc.History(ctx, "PROBLEM", p.ID)
	if err != nil || len(trail) != 1 {
		t.Fatalf("expected one provenance entry, got %v (%v)", trail, err)
	}

	// Dangling composition reference.
	missing := uuid.New()
	bad := &Problem{ID: uuid.New(), CompositionID: &missing, MemberID: comp.MemberID,
		ArchetypeID: "openEHR-EHR-EVALUATION.problem_diagnosis.v1",
		ProblemName: "Migraine", ClinicalStatus: "active", RecordedDate: time.Now()}
	wantRule(t, svc.RecordProblem(ctx, bad, testActor()), "fk-existence")

	bad = &Problem{ID: uuid.New(), MemberID: comp.MemberID,
		ArchetypeID: "openEHR-EHR-EVALUATION.problem_diagnosis.v1",
		ProblemName: "Migraine", ClinicalStatus: "chronic", RecordedDate: time.Now()}
	wantRule(t, svc.RecordProblem(ctx, bad, testActor()), "enum")
}

func TestRecordVitalSignEncounterLink(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	enc := &EncounterRecord{
		ID:             uuid.New(),
		MemberID:       uuid.New(),
		ArchetypeID:    "openEHR-EHR-COMPOSITION.encounter.v1",
		EncounterClass: "ambulatory",
		Status:         "finished",
		PeriodStart:    time.Now().Add(-2 * time.Hour),
	}
	if err := svc.RecordEncounter(ctx, enc, testActor()); err != nil {
		t.Fatalf("record encounter: %v", err)
	}

	v := &VitalSign{
		ID:                uuid.New(),
		MemberID:          enc.MemberID,
		ArchetypeID:       "openEHR-EHR-OBSERVATION.blood_pressure.v2",
		VitalType:         VitalBloodPressure,
		Status:            "final",
		EffectiveDatetime: time.Now(),
		EncounterID:       &enc.ID,
	}
	if err := svc.RecordVitalSign(ctx, v, testActor()); err != nil {
		t.Fatalf("record vital: %v", err)
	}

	missing := uuid.New()
	bad := &VitalSign{ID: uuid.New(), MemberID: enc.MemberID,
		ArchetypeID: "openEHR-EHR-OBSERVATION.pulse.v2", VitalType: VitalPulse,
		Status: "final", EffectiveDatetime: time.Now(), EncounterID: &missing}
	wantRule(t, svc.RecordVitalSign(ctx, bad, testActor()), "fk-existence")

	bad = &VitalSign{ID: uuid.New(), MemberID: enc.MemberID,
		ArchetypeID: "openEHR-EHR-OBSERVATION.pulse.v2", VitalType: "SHOE_SIZE",
		Status: "final", EffectiveDatetime: time.Now()}
	wantRule(t, svc.RecordVitalSign(ctx, bad, testActor()), "enum")
}

func TestRecordEncounterPeriodOrder(t *testing.T) {
	svc, _ := newTestService(t)

	start := time.Now()
	end := start.Add(-time.Hour)
	e := &EncounterRecord{ID: uuid.New(), MemberID: uuid.New(),
		ArchetypeID: "openEHR-EHR-COMPOSITION.encounter.v1",
		EncounterClass: "emergency", Status: "finished",
		PeriodStart: start, PeriodEnd: &end}
	wantRule(t, svc.RecordEncounter(context.Background(), e, testActor()), "date-activity")
}

func TestRecordMedicationEntryType(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	m := &Medication{
		ID:             uuid.New(),
		MemberID:       uuid.New(),
		ArchetypeID:    "openEHR-EHR-INSTRUCTION.medication_order.v3",
		EntryType:      EntryInstruction,
		MedicationName: "Lisinopril 10mg",
		Status:         "active",
		AuthoredOn:     time.Now(),
	}
	if err := svc.RecordMedication(ctx, m, testActor()); err != nil {
		t.Fatalf("record medication: %v", err)
	}

	m = &Medication{ID: uuid.New(), MemberID: uuid.New(),
		ArchetypeID: "openEHR-EHR-INSTRUCTION.medication_order.v3",
		EntryType: "SUGGESTION", MedicationName: "Ibuprofen", Status: "active", AuthoredOn: time.Now()}
	wantRule(t, svc.RecordMedication(ctx, m, testActor()), "enum")
}
