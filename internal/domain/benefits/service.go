package benefits

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/wellnecity/edm/internal/errs"
	"github.com/wellnecity/edm/internal/platform/db"
)

type Service struct {
	repo Repository
	tx   db.Transactor
	log  zerolog.Logger
}

func NewService(repo Repository, tx db.Transactor, log zerolog.Logger) *Service {
	return &Service{repo: repo, tx: tx, log: log.With().Str("component", "benefits").Logger()}
}

// TransitionCoverage moves a coverage through its lifecycle. Termination
// records the date.
func (s *Service) TransitionCoverage(ctx context.Context, coverageID uuid.UUID, next CoverageStatus, when time.Time) error {
	return s.tx.InTransaction(ctx, "coverage", func(ctx context.Context) error {
		c, err := s.repo.GetCoverage(ctx, coverageID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship("coverage", "fk-existence", "coverage %s does not exist", coverageID)
			}
			return err
		}
		if !c.Status.CanTransitionTo(next) {
			return errs.Relationship("coverage", "status-transition",
				"coverage %s cannot move %s -> %s", coverageID, c.Status, next)
		}
		c.Status = next
		if next == CoverageTerminated {
			c.TerminationDate = &when
		}
		c.UpdatedAt = when
		return s.repo.UpdateCoverage(ctx, c)
	})
}

// EnrollMember adds a person to a coverage. A coverage holds exactly one
// SUBSCRIBER; every DEPENDENT must point at that subscriber.
func (s *Service) EnrollMember(ctx context.Context, m *PlanMember) error {
	if !m.MemberType.valid() {
		return errs.Structural("plan_member", "member_type", "enum",
			"%q is not a valid member type", m.MemberType)
	}
	return s.tx.InTransaction(ctx, "plan_member", func(ctx context.Context) error {
		if _, err := s.repo.GetCoverage(ctx, m.CoverageID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship("plan_member", "fk-existence",
					"coverage %s does not exist", m.CoverageID)
			}
			return err
		}
		subscriber, err := s.repo.SubscriberForCoverage(ctx, m.CoverageID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		switch m.MemberType {
		case MemberSubscriber:
			if m.SubscriberPlanMemberID != nil {
				return errs.Relationship("plan_member", "subscriber-link",
					"subscriber %s must not reference another subscriber", m.ID)
			}
			if subscriber != nil {
				return errs.Relationship("plan_member", "single-subscriber",
					"coverage %s already has subscriber %s", m.CoverageID, subscriber.ID)
			}
		case MemberDependent:
			if subscriber == nil {
				return errs.Relationship("plan_member", "single-subscriber",
					"coverage %s has no subscriber to attach dependent %s to", m.CoverageID, m.ID)
			}
			if m.SubscriberPlanMemberID == nil || *m.SubscriberPlanMemberID != subscriber.ID {
				return errs.Relationship("plan_member", "subscriber-link",
					"dependent %s must reference subscriber %s of coverage %s", m.ID, subscriber.ID, m.CoverageID)
			}
		}
		return s.repo.CreateMember(ctx, m)
	})
}

func (t MemberType) valid() bool {
	return t == MemberSubscriber || t == MemberDependent
}

// OpenAccumulator creates a fresh accumulator row for a plan limit. The row
// tracks either a plan member or a coverage, never both, over an ordered
// half-open period.
func (s *Service) OpenAccumulator(ctx context.Context, a *Accumulator) error {
	if a.Scope() == ScopeNone {
		return errs.Relationship("accumulator", "scope-exclusive",
			"accumulator %s must reference exactly one of plan_member_id, coverage_id", a.ID)
	}
	if !a.PeriodStart.Before(a.PeriodEnd) {
		return errs.Relationship("accumulator", "period-order",
			"accumulator %s period must start before it ends", a.ID)
	}
	return s.tx.InTransaction(ctx, "accumulator", func(ctx context.Context) error {
		if _, err := s.repo.GetPlanLimit(ctx, a.PlanLimitID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship("accumulator", "fk-existence",
					"plan limit %s does not exist", a.PlanLimitID)
			}
			return err
		}
		return s.repo.CreateAccumulator(ctx, a)
	})
}

// ApplyAccumulatorEvent adds a contribution to an accumulator. Contributions
// are keyed by a caller-supplied event ID; replaying an already-applied
// event is a no-op, so at-least-once delivery never double-counts. Totals
// only grow: negative contributions are rejected, and the service date must
// fall inside the accumulator's period.
func (s *Service) ApplyAccumulatorEvent(ctx context.Context, eventID string, accumulatorID uuid.UUID, amount decimal.Decimal, count int32, serviceDate time.Time) error {
	if eventID == "" {
		return errs.Structural("accumulator_event", "event_id", "required", "event_id is required")
	}
	if amount.IsNegative() || count < 0 {
		return errs.Structural("accumulator_event", "amount", "minimum",
			"event %s would decrement the accumulator", eventID)
	}
	return s.tx.InTransaction(ctx, "accumulator", func(ctx context.Context) error {
		if prior, err := s.repo.GetEventByID(ctx, eventID); err != nil {
			if !errors.Is(err, ErrNotFound) {
				return err
			}
		} else if prior != nil {
			s.log.Debug().Str("event_id", eventID).Msg("accumulator event already applied")
			return nil
		}
		acc, err := s.repo.GetAccumulator(ctx, accumulatorID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship("accumulator_event", "fk-existence",
					"accumulator %s does not exist", accumulatorID)
			}
			return err
		}
		if !acc.ContainsDate(serviceDate) {
			return errs.Relationship("accumulator_event", "period-containment",
				"service date %s is outside accumulation period [%s, %s)",
				serviceDate.Format("2006-01-02"), acc.PeriodStart.Format("2006-01-02"), acc.PeriodEnd.Format("2006-01-02"))
		}
		now := time.Now().UTC()
		acc.AccumulatedAmount = acc.AccumulatedAmount.Add(amount)
		acc.AccumulatedCount += count
		acc.UpdatedAt = now
		if err := s.repo.UpdateAccumulator(ctx, acc); err != nil {
			return err
		}
		return s.repo.AppendEvent(ctx, &AccumulatorEvent{
			ID:            uuid.New(),
			EventID:       eventID,
			AccumulatorID: acc.ID,
			Amount:        amount,
			Count:         count,
			ServiceDate:   serviceDate,
			AppliedAt:     now,
		})
	})
}

// RolloverAccumulator closes out a period by opening a zeroed row for the
// next one. The old row and its totals are left untouched.
func (s *Service) RolloverAccumulator(ctx context.Context, accumulatorID uuid.UUID, newStart, newEnd time.Time) (*Accumulator, error) {
	if !newStart.Before(newEnd) {
		return nil, errs.Relationship("accumulator", "period-order",
			"rollover period must start before it ends")
	}
	var next *Accumulator
	err := s.tx.InTransaction(ctx, "accumulator", func(ctx context.Context) error {
		prior, err := s.repo.GetAccumulator(ctx, accumulatorID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship("accumulator", "fk-existence",
					"accumulator %s does not exist", accumulatorID)
			}
			return err
		}
		if newStart.Before(prior.PeriodEnd) {
			return errs.Relationship("accumulator", "period-order",
				"rollover period overlaps accumulator %s", prior.ID)
		}
		now := time.Now().UTC()
		next = &Accumulator{
			ID:                uuid.New(),
			PlanLimitID:       prior.PlanLimitID,
			PlanMemberID:      prior.PlanMemberID,
			CoverageID:        prior.CoverageID,
			AccumulatedAmount: decimal.Zero,
			AccumulatedCount:  0,
			PeriodStart:       newStart,
			PeriodEnd:         newEnd,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		return s.repo.CreateAccumulator(ctx, next)
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}

// RecordEligibility stores an employee's standing against a plan. Whether
// an ELIGIBLE_ENROLLED employee actually holds a membership is reported by
// the integrity checker, never enforced here.
func (s *Service) RecordEligibility(ctx context.Context, e *Eligibility) error {
	switch e.Status {
	case NotEligible, EligibleEnrolled, EligibleNotEnrolled:
	default:
		return errs.Structural("eligibility", "status", "enum",
			"%q is not a valid eligibility status", e.Status)
	}
	return s.tx.InTransaction(ctx, "eligibility", func(ctx context.Context) error {
		if _, err := s.repo.GetPlan(ctx, e.BenefitPlanID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship("eligibility", "fk-existence",
					"benefit plan %s does not exist", e.BenefitPlanID)
			}
			return err
		}
		return s.repo.CreateEligibility(ctx, e)
	})
}
