package portfolio

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memRepo struct {
	mu         sync.RWMutex
	portfolios map[uuid.UUID]*Portfolio
	members    map[uuid.UUID]*Member
}

func NewInMemoryRepository() Repository {
	return &memRepo{
		portfolios: make(map[uuid.UUID]*Portfolio),
		members:    make(map[uuid.UUID]*Member),
	}
}

func (r *memRepo) Create(_ context.Context, p *Portfolio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.portfolios[p.ID] = &cp
	return nil
}

func (r *memRepo) Get(_ context.Context, id uuid.UUID) (*Portfolio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.portfolios[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memRepo) Update(_ context.Context, p *Portfolio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.portfolios[p.ID]; !ok {
		return ErrNotFound
	}
	cp := *p
	r.portfolios[p.ID] = &cp
	return nil
}

func (r *memRepo) AddMember(_ context.Context, m *Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *memRepo) MemberByPortfolioOrg(_ context.Context, portfolioID, orgID uuid.UUID) (*Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members {
		if m.PortfolioID == portfolioID && m.OrgID == orgID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) MembersForPortfolio(_ context.Context, portfolioID uuid.UUID) ([]*Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Member
	for _, m := range r.members {
		if m.PortfolioID == portfolioID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}
