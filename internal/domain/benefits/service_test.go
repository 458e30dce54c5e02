package benefits

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

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

func seedPlanChain(t *testing.T, repo Repository) (*BenefitPlan, *CoverageType, *Coverage) {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	plan := &BenefitPlan{ID: uuid.New(), SponsorOrgID: uuid.New(), PlanName: "Acme PPO 2026",
		PlanType: PlanPPO, BenefitType: BenefitMedical, EffectiveDate: now,
		IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := repo.CreatePlan(ctx, plan); err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	tier := &CoverageType{ID: uuid.New(), BenefitPlanID: plan.ID, Name: TierFamily,
		EffectiveDate: now, IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := repo.CreateCoverageType(ctx, tier); err != nil {
		t.Fatalf("seed coverage type: %v", err)
	}
	cov := &Coverage{ID: uuid.New(), CoverageTypeID: tier.ID, BenefitPlanID: plan.ID,
		EffectiveDate: now, Status: CoverageActive, CreatedAt: now, UpdatedAt: now}
	if err := repo.CreateCoverage(ctx, cov); err != nil {
		t.Fatalf("seed coverage: %v", err)
	}
	return plan, tier, cov
}

func seedSubscriber(t *testing.T, svc *Service, coverageID uuid.UUID) *PlanMember {
	t.Helper()
	now := time.Now()
	rel := RelationshipSelf
	sub := &PlanMember{ID: uuid.New(), PersonID: uuid.New(), CoverageID: coverageID,
		MemberType: MemberSubscriber, SubscriberRelationshipType: &rel,
		EffectiveDate: now, IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := svc.EnrollMember(context.Background(), sub); err != nil {
		t.Fatalf("enroll subscriber: %v", err)
	}
	return sub
}

func TestCoverageStatusTransitions(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	now := time.Now()

	cov := &Coverage{ID: uuid.New(), CoverageTypeID: uuid.New(), BenefitPlanID: uuid.New(),
		EffectiveDate: now, Status: CoveragePending, CreatedAt: now, UpdatedAt: now}
	if err := repo.CreateCoverage(ctx, cov); err != nil {
		t.Fatalf("seed coverage: %v", err)
	}

	// PENDING cannot jump straight to COBRA.
	wantRule(t, svc.TransitionCoverage(ctx, cov.ID, CoverageCOBRA, now), "status-transition")

	if err := svc.TransitionCoverage(ctx, cov.ID, CoverageActive, now); err != nil {
		t.Fatalf("PENDING -> ACTIVE: %v", err)
	}
	if err := svc.TransitionCoverage(ctx, cov.ID, CoverageCOBRA, now); err != nil {
		t.Fatalf("ACTIVE -> COBRA: %v", err)
	}
	if err := svc.TransitionCoverage(ctx, cov.ID, CoverageTerminated, now); err != nil {
		t.Fatalf("COBRA -> TERMINATED: %v", err)
	}
	got, _ := repo.GetCoverage(ctx, cov.ID)
	if got.TerminationDate == nil {
		t.Error("termination date not recorded")
	}
	wantRule(t, svc.TransitionCoverage(ctx, cov.ID, CoverageActive, now), "status-transition")
}

func TestEnrollMemberSubscriberInvariant(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, _, cov := seedPlanChain(t, svc.repo)
	now := time.Now()

	sub := seedSubscriber(t, svc, cov.ID)

	// A second subscriber on the same coverage is rejected.
	second := &PlanMember{ID: uuid.New(), PersonID: uuid.New(), CoverageID: cov.ID,
		MemberType: MemberSubscriber, EffectiveDate: now, IsActive: true, CreatedAt: now, UpdatedAt: now}
	wantRule(t, svc.EnrollMember(ctx, second), "single-subscriber")

	// Dependents must point at the coverage's subscriber.
	rel := RelationshipChild
	dep := &PlanMember{ID: uuid.New(), PersonID: uuid.New(), CoverageID: cov.ID,
		MemberType: MemberDependent, SubscriberRelationshipType: &rel,
		SubscriberPlanMemberID: &sub.ID,
		EffectiveDate:          now, IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := svc.EnrollMember(ctx, dep); err != nil {
		t.Fatalf("enroll dependent: %v", err)
	}

	strangerID := uuid.New()
	bad := &PlanMember{ID: uuid.New(), PersonID: uuid.New(), CoverageID: cov.ID,
		MemberType: MemberDependent, SubscriberPlanMemberID: &strangerID,
		EffectiveDate: now, IsActive: true, CreatedAt: now, UpdatedAt: now}
	wantRule(t, svc.EnrollMember(ctx, bad), "subscriber-link")
}

func TestEnrollDependentWithoutSubscriber(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, _, cov := seedPlanChain(t, svc.repo)
	now := time.Now()

	other := uuid.New()
	dep := &PlanMember{ID: uuid.New(), PersonID: uuid.New(), CoverageID: cov.ID,
		MemberType: MemberDependent, SubscriberPlanMemberID: &other,
		EffectiveDate: now, IsActive: true, CreatedAt: now, UpdatedAt: now}
	wantRule(t, svc.EnrollMember(ctx, dep), "single-subscriber")
}

func TestEnrollMemberUnknownCoverage(t *testing.T) {
	svc, _ := newTestService(t)
	now := time.Now()
	m := &PlanMember{ID: uuid.New(), PersonID: uuid.New(), CoverageID: uuid.New(),
		MemberType: MemberSubscriber, EffectiveDate: now, IsActive: true, CreatedAt: now, UpdatedAt: now}
	wantRule(t, svc.EnrollMember(context.Background(), m), "fk-existence")
}

func seedAccumulator(t *testing.T, svc *Service) *Accumulator {
	t.Helper()
	ctx := context.Background()
	plan, _, cov := seedPlanChain(t, svc.repo)
	sub := seedSubscriber(t, svc, cov.ID)
	now := time.Now()

	amount := decimal.RequireFromString("3000")
	limit := &PlanLimit{ID: uuid.New(), BenefitPlanID: plan.ID, LimitType: LimitDeductible,
		NetworkType: NetworkIn, Level: LevelIndividual, LimitAmount: &amount,
		PeriodType: PeriodPlanYear, EffectiveDate: now, IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := svc.repo.CreatePlanLimit(ctx, limit); err != nil {
		t.Fatalf("seed plan limit: %v", err)
	}

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	acc := &Accumulator{ID: uuid.New(), PlanLimitID: limit.ID, PlanMemberID: &sub.ID,
		AccumulatedAmount: decimal.Zero, PeriodStart: start, PeriodEnd: start.AddDate(1, 0, 0),
		CreatedAt: now, UpdatedAt: now}
	if err := svc.OpenAccumulator(ctx, acc); err != nil {
		t.Fatalf("open accumulator: %v", err)
	}
	return acc
}

func TestApplyAccumulatorEventIdempotent(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	acc := seedAccumulator(t, svc)
	svcDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	apply := func() error {
		return svc.ApplyAccumulatorEvent(ctx, "claim-789", acc.ID,
			decimal.RequireFromString("125.50"), 1, svcDate)
	}
	if err := apply(); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	// Replays are no-ops.
	if err := apply(); err != nil {
		t.Fatalf("replay: %v", err)
	}
	if err := apply(); err != nil {
		t.Fatalf("second replay: %v", err)
	}

	got, _ := repo.GetAccumulator(ctx, acc.ID)
	if !got.AccumulatedAmount.Equal(decimal.RequireFromString("125.50")) {
		t.Errorf("amount double-counted: %s", got.AccumulatedAmount)
	}
	if got.AccumulatedCount != 1 {
		t.Errorf("count double-counted: %d", got.AccumulatedCount)
	}
}

func TestApplyAccumulatorEventRejectsDecrement(t *testing.T) {
	svc, _ := newTestService(t)
	acc := seedAccumulator(t, svc)
	svcDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	err := svc.ApplyAccumulatorEvent(context.Background(), "claim-neg", acc.ID,
		decimal.RequireFromString("-10"), 0, svcDate)
	wantRule(t, err, "minimum")
	if errs.KindOf(err) != errs.KindStructural {
		t.Errorf("expected structural violation, got %v", err)
	}
}

func TestApplyAccumulatorEventPeriodContainment(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	acc := seedAccumulator(t, svc)
	one := decimal.RequireFromString("1")

	// period_end is exclusive.
	wantRule(t, svc.ApplyAccumulatorEvent(ctx, "claim-late", acc.ID, one, 0, acc.PeriodEnd), "period-containment")
	wantRule(t, svc.ApplyAccumulatorEvent(ctx, "claim-early", acc.ID, one, 0,
		acc.PeriodStart.Add(-time.Hour)), "period-containment")
	if err := svc.ApplyAccumulatorEvent(ctx, "claim-first-day", acc.ID, one, 0, acc.PeriodStart); err != nil {
		t.Fatalf("period_start should be inclusive: %v", err)
	}
}

func TestRolloverAccumulator(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	acc := seedAccumulator(t, svc)

	if err := svc.ApplyAccumulatorEvent(ctx, "claim-2026", acc.ID,
		decimal.RequireFromString("500"), 2, acc.PeriodStart); err != nil {
		t.Fatalf("apply: %v", err)
	}

	// Overlapping period is rejected.
	if _, err := svc.RolloverAccumulator(ctx, acc.ID, acc.PeriodStart.AddDate(0, 6, 0), acc.PeriodEnd.AddDate(1, 0, 0)); err == nil {
		t.Fatal("expected overlap rejection")
	}

	next, err := svc.RolloverAccumulator(ctx, acc.ID, acc.PeriodEnd, acc.PeriodEnd.AddDate(1, 0, 0))
	if err != nil {
		t.Fatalf("rollover: %v", err)
	}
	if !next.AccumulatedAmount.IsZero() || next.AccumulatedCount != 0 {
		t.Errorf("rollover row should start at zero: %+v", next)
	}
	if next.PlanMemberID == nil || *next.PlanMemberID != *acc.PlanMemberID {
		t.Error("rollover row should keep the member scope")
	}

	// The old row keeps its totals.
	old, _ := repo.GetAccumulator(ctx, acc.ID)
	if !old.AccumulatedAmount.Equal(decimal.RequireFromString("500")) {
		t.Errorf("prior totals disturbed: %s", old.AccumulatedAmount)
	}
}

func TestOpenAccumulatorScope(t *testing.T) {
	svc, _ := newTestService(t)
	now := time.Now()
	memberID := uuid.New()
	coverageID := uuid.New()

	both := &Accumulator{ID: uuid.New(), PlanLimitID: uuid.New(),
		PlanMemberID: &memberID, CoverageID: &coverageID,
		PeriodStart: now, PeriodEnd: now.AddDate(1, 0, 0), CreatedAt: now, UpdatedAt: now}
	wantRule(t, svc.OpenAccumulator(context.Background(), both), "scope-exclusive")

	neither := &Accumulator{ID: uuid.New(), PlanLimitID: uuid.New(),
		PeriodStart: now, PeriodEnd: now.AddDate(1, 0, 0), CreatedAt: now, UpdatedAt: now}
	wantRule(t, svc.OpenAccumulator(context.Background(), neither), "scope-exclusive")

	backwards := &Accumulator{ID: uuid.New(), PlanLimitID: uuid.New(), PlanMemberID: &memberID,
		PeriodStart: now, PeriodEnd: now.AddDate(-1, 0, 0), CreatedAt: now, UpdatedAt: now}
	wantRule(t, svc.OpenAccumulator(context.Background(), backwards), "period-order")
}

func TestRecordEligibility(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	plan, _, _ := seedPlanChain(t, svc.repo)
	now := time.Now()

	bad := &Eligibility{ID: uuid.New(), EmployeeID: uuid.New(), BenefitPlanID: plan.ID,
		Status: "MAYBE", EffectiveDate: now, CreatedAt: now, UpdatedAt: now}
	wantRule(t, svc.RecordEligibility(ctx, bad), "enum")

	orphan := &Eligibility{ID: uuid.New(), EmployeeID: uuid.New(), BenefitPlanID: uuid.New(),
		Status: EligibleEnrolled, EffectiveDate: now, CreatedAt: now, UpdatedAt: now}
	wantRule(t, svc.RecordEligibility(ctx, orphan), "fk-existence")

	ok := &Eligibility{ID: uuid.New(), EmployeeID: uuid.New(), BenefitPlanID: plan.ID,
		Status: EligibleNotEnrolled, EffectiveDate: now, CreatedAt: now, UpdatedAt: now}
	if err := svc.RecordEligibility(ctx, ok); err != nil {
		t.Fatalf("record eligibility: %v", err)
	}
}
