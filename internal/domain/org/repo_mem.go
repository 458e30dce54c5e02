package org

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// memRepo is an in-memory Repository for service tests and advisory-mode
// integrity runs without a live database.
type memRepo struct {
	mu          sync.RWMutex
	orgs        map[uuid.UUID]*Org
	roles       map[uuid.UUID]*OrgRole
	details     map[string][]interface{}
	rels        map[uuid.UUID]*OrgRelationship
	contracts   map[uuid.UUID]*Contract
	structures  map[uuid.UUID]*OrgStructure
	nodes       map[uuid.UUID]*OrgStructureNode
	identifiers map[uuid.UUID]*OrgIdentifier
	contacts    map[uuid.UUID]*OrgContact
}

func NewInMemoryRepository() Repository {
	return &memRepo{
		orgs:        make(map[uuid.UUID]*Org),
		roles:       make(map[uuid.UUID]*OrgRole),
		details:     make(map[string][]interface{}),
		rels:        make(map[uuid.UUID]*OrgRelationship),
		contracts:   make(map[uuid.UUID]*Contract),
		structures:  make(map[uuid.UUID]*OrgStructure),
		nodes:       make(map[uuid.UUID]*OrgStructureNode),
		identifiers: make(map[uuid.UUID]*OrgIdentifier),
		contacts:    make(map[uuid.UUID]*OrgContact),
	}
}

func (r *memRepo) CreateOrg(_ context.Context, o *Org) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.orgs[o.ID] = &cp
	return nil
}

func (r *memRepo) GetOrg(_ context.Context, id uuid.UUID) (*Org, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orgs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *memRepo) CreateRole(_ context.Context, role *OrgRole) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *role
	r.roles[role.ID] = &cp
	return nil
}

func (r *memRepo) GetRole(_ context.Context, id uuid.UUID) (*OrgRole, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	role, ok := r.roles[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *role
	return &cp, nil
}

func (r *memRepo) RolesForOrg(_ context.Context, orgID uuid.UUID) ([]*OrgRole, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*OrgRole
	for _, role := range r.roles {
		if role.OrgID == orgID {
			cp := *role
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRepo) InsertRoleDetail(_ context.Context, collection string, detail interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.details[collection] = append(r.details[collection], detail)
	return nil
}

func (r *memRepo) CreateRelationship(_ context.Context, rel *OrgRelationship) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rel
	r.rels[rel.ID] = &cp
	return nil
}

func (r *memRepo) GetRelationship(_ context.Context, id uuid.UUID) (*OrgRelationship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rel, ok := r.rels[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rel
	return &cp, nil
}

func (r *memRepo) CreateContract(_ context.Context, c *Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.contracts[c.ID] = &cp
	return nil
}

func (r *memRepo) GetContract(_ context.Context, id uuid.UUID) (*Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contracts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memRepo) UpdateContract(_ context.Context, c *Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contracts[c.ID]; !ok {
		return ErrNotFound
	}
	cp := *c
	r.contracts[c.ID] = &cp
	return nil
}

func (r *memRepo) CreateStructure(_ context.Context, s *OrgStructure) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.structures[s.ID] = &cp
	return nil
}

func (r *memRepo) GetStructure(_ context.Context, id uuid.UUID) (*OrgStructure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.structures[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memRepo) CreateNode(_ context.Context, n *OrgStructureNode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *n
	r.nodes[n.ID] = &cp
	return nil
}

func (r *memRepo) GetNode(_ context.Context, id uuid.UUID) (*OrgStructureNode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.nodes[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *n
	return &cp, nil
}

func (r *memRepo) UpdateNode(_ context.Context, n *OrgStructureNode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.nodes[n.ID]; !ok {
		return ErrNotFound
	}
	cp := *n
	r.nodes[n.ID] = &cp
	return nil
}

func (r *memRepo) NodesForStructure(_ context.Context, structureID uuid.UUID) ([]*OrgStructureNode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*OrgStructureNode
	for _, n := range r.nodes {
		if n.OrgStructureID == structureID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRepo) CreateIdentifier(_ context.Context, i *OrgIdentifier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *i
	r.identifiers[i.ID] = &cp
	return nil
}

func (r *memRepo) GetIdentifier(_ context.Context, id uuid.UUID) (*OrgIdentifier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.identifiers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *i
	return &cp, nil
}

func (r *memRepo) IdentifiersForOrgType(_ context.Context, orgID uuid.UUID, identifierType OrgIdentifierType) ([]*OrgIdentifier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*OrgIdentifier
	for _, i := range r.identifiers {
		if i.OrgID == orgID && i.IdentifierType == identifierType {
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

func (r *memRepo) CreateContact(_ context.Context, c *OrgContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.contacts[c.ID] = &cp
	return nil
}

func (r *memRepo) GetContact(_ context.Context, id uuid.UUID) (*OrgContact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contacts[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memRepo) ContactsForOrgType(_ context.Context, orgID uuid.UUID, contactType ContactType) ([]*OrgContact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*OrgContact
	for _, c := range r.contacts {
		if c.OrgID == orgID && c.ContactType == contactType {
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

func (r *memRepo) UpdateContactUsability(_ context.Context, c *OrgContact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contacts[c.ID]; !ok {
		return ErrNotFound
	}
	cp := *c
	r.contacts[c.ID] = &cp
	return nil
}
