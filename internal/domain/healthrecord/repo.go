package healthrecord

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("healthrecord: not found")

type Repository interface {
	CreateComposition(ctx context.Context, c *Composition) error
	GetComposition(ctx context.Context, id uuid.UUID) (*Composition, error)
	UpdateComposition(ctx context.Context, c *Composition) error
	CompositionsForMember(ctx context.Context, memberID uuid.UUID) ([]*Composition, error)

	CreateProblem(ctx context.Context, p *Problem) error
	GetProblem(ctx context.Context, id uuid.UUID) (*Problem, error)
	CreateAllergy(ctx context.Context, a *Allergy) error
	CreateMedication(ctx context.Context, m *Medication) error
	CreateVitalSign(ctx context.Context, v *VitalSign) error
	CreateLabResult(ctx context.Context, l *LabResult) error
	CreateProcedure(ctx context.Context, p *ProcedureRecord) error
	CreateImmunization(ctx context.Context, im *Immunization) error
	CreateClinicalNote(ctx context.Context, n *ClinicalNote) error
	CreateCarePlan(ctx context.Context, cp *CarePlan) error

	CreateEncounter(ctx context.Context, e *EncounterRecord) error
	GetEncounter(ctx context.Context, id uuid.UUID) (*EncounterRecord, error)

	AppendProvenance(ctx context.Context, p *Provenance) error
	ProvenanceForTarget(ctx context.Context, targetType string, targetID uuid.UUID) ([]*Provenance, error)
}
