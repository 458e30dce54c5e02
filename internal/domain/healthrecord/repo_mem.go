package healthrecord

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memRepo struct {
	mu            sync.RWMutex
	compositions  map[uuid.UUID]*Composition
	problems      map[uuid.UUID]*Problem
	allergies     map[uuid.UUID]*Allergy
	medications   map[uuid.UUID]*Medication
	vitals        map[uuid.UUID]*VitalSign
	labs          map[uuid.UUID]*LabResult
	procedures    map[uuid.UUID]*ProcedureRecord
	immunizations map[uuid.UUID]*Immunization
	notes         map[uuid.UUID]*ClinicalNote
	carePlans     map[uuid.UUID]*CarePlan
	encounters    map[uuid.UUID]*EncounterRecord
	provenance    []*Provenance
}

func NewInMemoryRepository() Repository {
	return &memRepo{
		compositions:  make(map[uuid.UUID]*Composition),
		problems:      make(map[uuid.UUID]*Problem),
		allergies:     make(map[uuid.UUID]*Allergy),
		medications:   make(map[uuid.UUID]*Medication),
		vitals:        make(map[uuid.UUID]*VitalSign),
		labs:          make(map[uuid.UUID]*LabResult),
		procedures:    make(map[uuid.UUID]*ProcedureRecord),
		immunizations: make(map[uuid.UUID]*Immunization),
		notes:         make(map[uuid.UUID]*ClinicalNote),
		carePlans:     make(map[uuid.UUID]*CarePlan),
		encounters:    make(map[uuid.UUID]*EncounterRecord),
	}
}

func (r *memRepo) CreateComposition(_ context.Context, c *Composition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.compositions[c.ID] = &cp
	return nil
}

func (r *memRepo) GetComposition(_ context.Context, id uuid.UUID) (*Composition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.compositions[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memRepo) UpdateComposition(_ context.Context, c *Composition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.compositions[c.ID]; !ok {
		return ErrNotFound
	}
	cp := *c
	r.compositions[c.ID] = &cp
	return nil
}

func (r *memRepo) CompositionsForMember(_ context.Context, memberID uuid.UUID) ([]*Composition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Composition
	for _, c := range r.compositions {
		if c.MemberID == memberID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRepo) CreateProblem(_ context.Context, p *Problem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.problems[p.ID] = &cp
	return nil
}

func (r *memRepo) GetProblem(_ context.Context, id uuid.UUID) (*Problem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.problems[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memRepo) CreateAllergy(_ context.Context, a *Allergy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.allergies[a.ID] = &cp
	return nil
}

func (r *memRepo) CreateMedication(_ context.Context, m *Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.medications[m.ID] = &cp
	return nil
}

func (r *memRepo) CreateVitalSign(_ context.Context, v *VitalSign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *v
	r.vitals[v.ID] = &cp
	return nil
}

func (r *memRepo) CreateLabResult(_ context.Context, l *LabResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *l
	r.labs[l.ID] = &cp
	return nil
}

func (r *memRepo) CreateProcedure(_ context.Context, p *ProcedureRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.procedures[p.ID] = &cp
	return nil
}

func (r *memRepo) CreateImmunization(_ context.Context, im *Immunization) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *im
	r.immunizations[im.ID] = &cp
	return nil
}

func (r *memRepo) CreateClinicalNote(_ context.Context, n *ClinicalNote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *n
	r.notes[n.ID] = &cp
	return nil
}

func (r *memRepo) CreateCarePlan(_ context.Context, cp *CarePlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *cp
	r.carePlans[cp.ID] = &c
	return nil
}

func (r *memRepo) CreateEncounter(_ context.Context, e *EncounterRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.encounters[e.ID] = &cp
	return nil
}

func (r *memRepo) GetEncounter(_ context.Context, id uuid.UUID) (*EncounterRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.encounters[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memRepo) AppendProvenance(_ context.Context, p *Provenance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.provenance = append(r.provenance, &cp)
	return nil
}

func (r *memRepo) ProvenanceForTarget(_ context.Context, targetType string, targetID uuid.UUID) ([]*Provenance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Provenance
	for _, p := range r.provenance {
		if p.TargetType == targetType && p.TargetID == targetID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}
