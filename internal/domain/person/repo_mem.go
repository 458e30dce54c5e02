package person

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memRepo struct {
	mu           sync.RWMutex
	persons      map[uuid.UUID]*Person
	identifiers  map[uuid.UUID]*Identifier
	contacts     map[uuid.UUID]*Contact
	employees    map[uuid.UUID]*Employee
	providers    map[uuid.UUID]*Provider
	affiliations map[uuid.UUID]*Affiliation
	households   map[uuid.UUID]*Household
	participants map[uuid.UUID]*HouseholdParticipant
}

func NewInMemoryRepository() Repository {
	return &memRepo{
		persons:      make(map[uuid.UUID]*Person),
		identifiers:  make(map[uuid.UUID]*Identifier),
		contacts:     make(map[uuid.UUID]*Contact),
		employees:    make(map[uuid.UUID]*Employee),
		providers:    make(map[uuid.UUID]*Provider),
		affiliations: make(map[uuid.UUID]*Affiliation),
		households:   make(map[uuid.UUID]*Household),
		participants: make(map[uuid.UUID]*HouseholdParticipant),
	}
}

func (r *memRepo) CreatePerson(_ context.Context, p *Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.persons[p.ID] = &cp
	return nil
}

func (r *memRepo) GetPerson(_ context.Context, id uuid.UUID) (*Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.persons[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memRepo) CreateIdentifier(_ context.Context, i *Identifier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *i
	r.identifiers[i.ID] = &cp
	return nil
}

func (r *memRepo) IdentifiersForPersonType(_ context.Context, personID uuid.UUID, identifierType IdentifierType) ([]*Identifier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Identifier
	for _, i := range r.identifiers {
		if i.PersonID == personID && i.IdentifierType == identifierType {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRepo) SetIdentifierPrimary(_ context.Context, id uuid.UUID, primary bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.identifiers[id]
	if !ok {
		return ErrNotFound
	}
	i.IsPrimary = primary
	return nil
}

func (r *memRepo) CreateContact(_ context.Context, c *Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.contacts[c.ID] = &cp
	return nil
}

func (r *memRepo) ContactsForPersonType(_ context.Context, personID uuid.UUID, contactType ContactType) ([]*Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Contact
	for _, c := range r.contacts {
		if c.PersonID == personID && c.ContactType == contactType {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRepo) SetContactPreferred(_ context.Context, id uuid.UUID, preferred bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contacts[id]
	if !ok {
		return ErrNotFound
	}
	c.IsPreferred = preferred
	return nil
}

func (r *memRepo) CreateEmployee(_ context.Context, e *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *memRepo) GetEmployee(_ context.Context, id uuid.UUID) (*Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.employees[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memRepo) UpdateEmployee(_ context.Context, e *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[e.ID]; !ok {
		return ErrNotFound
	}
	cp := *e
	r.employees[e.ID] = &cp
	return nil
}

func (r *memRepo) CreateProvider(_ context.Context, p *Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.providers[p.ID] = &cp
	return nil
}

func (r *memRepo) GetProvider(_ context.Context, id uuid.UUID) (*Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memRepo) CreateAffiliation(_ context.Context, a *Affiliation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.affiliations[a.ID] = &cp
	return nil
}

func (r *memRepo) AffiliationsForProvider(_ context.Context, providerID uuid.UUID) ([]*Affiliation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Affiliation
	for _, a := range r.affiliations {
		if a.ProviderID == providerID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRepo) SetAffiliationPrimary(_ context.Context, id uuid.UUID, primary bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.affiliations[id]
	if !ok {
		return ErrNotFound
	}
	a.IsPrimary = primary
	return nil
}

func (r *memRepo) CreateHousehold(_ context.Context, h *Household) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *h
	r.households[h.ID] = &cp
	return nil
}

func (r *memRepo) GetHousehold(_ context.Context, id uuid.UUID) (*Household, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.households[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *h
	return &cp, nil
}

func (r *memRepo) AddParticipant(_ context.Context, p *HouseholdParticipant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.participants[p.ID] = &cp
	return nil
}

func (r *memRepo) ParticipantByHouseholdPerson(_ context.Context, householdID, personID uuid.UUID) (*HouseholdParticipant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.participants {
		if p.HouseholdID == householdID && p.PersonID == personID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}
