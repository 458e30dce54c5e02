package benefits

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

type Repository interface {
	CreatePlan(ctx context.Context, p *BenefitPlan) error
	GetPlan(ctx context.Context, id uuid.UUID) (*BenefitPlan, error)

	CreateCoverageType(ctx context.Context, ct *CoverageType) error
	GetCoverageType(ctx context.Context, id uuid.UUID) (*CoverageType, error)

	CreatePlanLimit(ctx context.Context, pl *PlanLimit) error
	GetPlanLimit(ctx context.Context, id uuid.UUID) (*PlanLimit, error)

	CreateEligibility(ctx context.Context, e *Eligibility) error
	EligibilitiesForEmployee(ctx context.Context, employeeID uuid.UUID) ([]*Eligibility, error)

	CreateCoverage(ctx context.Context, c *Coverage) error
	GetCoverage(ctx context.Context, id uuid.UUID) (*Coverage, error)
	UpdateCoverage(ctx context.Context, c *Coverage) error

	CreateMember(ctx context.Context, m *PlanMember) error
	GetMember(ctx context.Context, id uuid.UUID) (*PlanMember, error)
	MembersForCoverage(ctx context.Context, coverageID uuid.UUID) ([]*PlanMember, error)
	SubscriberForCoverage(ctx context.Context, coverageID uuid.UUID) (*PlanMember, error)

	CreateAccumulator(ctx context.Context, a *Accumulator) error
	GetAccumulator(ctx context.Context, id uuid.UUID) (*Accumulator, error)
	UpdateAccumulator(ctx context.Context, a *Accumulator) error
	MemberAccumulator(ctx context.Context, planLimitID, planMemberID uuid.UUID, periodStart time.Time) (*Accumulator, error)
	CoverageAccumulator(ctx context.Context, planLimitID, coverageID uuid.UUID, periodStart time.Time) (*Accumulator, error)

	GetEventByID(ctx context.Context, eventID string) (*AccumulatorEvent, error)
	AppendEvent(ctx context.Context, ev *AccumulatorEvent) error
}
