package benefits

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wellnecity/edm/internal/errs"
)

type memRepo struct {
	mu            sync.RWMutex
	plans         map[uuid.UUID]*BenefitPlan
	coverageTypes map[uuid.UUID]*CoverageType
	planLimits    map[uuid.UUID]*PlanLimit
	eligibilities map[uuid.UUID]*Eligibility
	coverages     map[uuid.UUID]*Coverage
	members       map[uuid.UUID]*PlanMember
	accumulators  map[uuid.UUID]*Accumulator
	events        map[string]*AccumulatorEvent
}

func NewInMemoryRepository() Repository {
	return &memRepo{
		plans:         make(map[uuid.UUID]*BenefitPlan),
		coverageTypes: make(map[uuid.UUID]*CoverageType),
		planLimits:    make(map[uuid.UUID]*PlanLimit),
		eligibilities: make(map[uuid.UUID]*Eligibility),
		coverages:     make(map[uuid.UUID]*Coverage),
		members:       make(map[uuid.UUID]*PlanMember),
		accumulators:  make(map[uuid.UUID]*Accumulator),
		events:        make(map[string]*AccumulatorEvent),
	}
}

func (r *memRepo) CreatePlan(_ context.Context, p *BenefitPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.plans[p.ID] = &cp
	return nil
}

func (r *memRepo) GetPlan(_ context.Context, id uuid.UUID) (*BenefitPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memRepo) CreateCoverageType(_ context.Context, ct *CoverageType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *ct
	r.coverageTypes[ct.ID] = &cp
	return nil
}

func (r *memRepo) GetCoverageType(_ context.Context, id uuid.UUID) (*CoverageType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ct, ok := r.coverageTypes[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *ct
	return &cp, nil
}

func (r *memRepo) CreatePlanLimit(_ context.Context, pl *PlanLimit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *pl
	r.planLimits[pl.ID] = &cp
	return nil
}

func (r *memRepo) GetPlanLimit(_ context.Context, id uuid.UUID) (*PlanLimit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pl, ok := r.planLimits[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *pl
	return &cp, nil
}

func (r *memRepo) CreateEligibility(_ context.Context, e *Eligibility) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.eligibilities[e.ID] = &cp
	return nil
}

func (r *memRepo) EligibilitiesForEmployee(_ context.Context, employeeID uuid.UUID) ([]*Eligibility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Eligibility
	for _, e := range r.eligibilities {
		if e.EmployeeID == employeeID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRepo) CreateCoverage(_ context.Context, c *Coverage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.coverages[c.ID] = &cp
	return nil
}

func (r *memRepo) GetCoverage(_ context.Context, id uuid.UUID) (*Coverage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.coverages[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memRepo) UpdateCoverage(_ context.Context, c *Coverage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.coverages[c.ID]; !ok {
		return ErrNotFound
	}
	cp := *c
	r.coverages[c.ID] = &cp
	return nil
}

func (r *memRepo) CreateMember(_ context.Context, m *PlanMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *memRepo) GetMember(_ context.Context, id uuid.UUID) (*PlanMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.members[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *memRepo) MembersForCoverage(_ context.Context, coverageID uuid.UUID) ([]*PlanMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*PlanMember
	for _, m := range r.members {
		if m.CoverageID == coverageID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRepo) SubscriberForCoverage(_ context.Context, coverageID uuid.UUID) (*PlanMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members {
		if m.CoverageID == coverageID && m.MemberType == MemberSubscriber {
			cp := *m
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) CreateAccumulator(_ context.Context, a *Accumulator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.accumulators[a.ID] = &cp
	return nil
}

func (r *memRepo) GetAccumulator(_ context.Context, id uuid.UUID) (*Accumulator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accumulators[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memRepo) UpdateAccumulator(_ context.Context, a *Accumulator) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accumulators[a.ID]; !ok {
		return ErrNotFound
	}
	cp := *a
	r.accumulators[a.ID] = &cp
	return nil
}

func (r *memRepo) MemberAccumulator(_ context.Context, planLimitID, planMemberID uuid.UUID, periodStart time.Time) (*Accumulator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accumulators {
		if a.PlanLimitID == planLimitID && a.PlanMemberID != nil && *a.PlanMemberID == planMemberID && a.PeriodStart.Equal(periodStart) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) CoverageAccumulator(_ context.Context, planLimitID, coverageID uuid.UUID, periodStart time.Time) (*Accumulator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accumulators {
		if a.PlanLimitID == planLimitID && a.CoverageID != nil && *a.CoverageID == coverageID && a.PeriodStart.Equal(periodStart) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) GetEventByID(_ context.Context, eventID string) (*AccumulatorEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ev, ok := r.events[eventID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *ev
	return &cp, nil
}

func (r *memRepo) AppendEvent(_ context.Context, ev *AccumulatorEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[ev.EventID]; ok {
		return errs.Conflict("accumulator_event", "event %s applied concurrently", ev.EventID)
	}
	cp := *ev
	r.events[ev.EventID] = &cp
	return nil
}
