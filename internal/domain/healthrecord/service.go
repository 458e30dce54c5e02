package healthrecord

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wellnecity/edm/internal/errs"
	"github.com/wellnecity/edm/internal/platform/db"
)

// Actor identifies who performed a mutation, for the provenance trail.
type Actor struct {
	Type string
	ID   string
	Name *string
}

func (a Actor) valid() bool {
	switch a.Type {
	case "author", "informant", "verifier", "enterer", "performer", "custodian":
		return a.ID != ""
	}
	return false
}

type Service struct {
	repo Repository
	tx   db.Transactor
	log  zerolog.Logger
}

func NewService(repo Repository, tx db.Transactor, log zerolog.Logger) *Service {
	return &Service{repo: repo, tx: tx, log: log.With().Str("component", "healthrecord").Logger()}
}

func (s *Service) provenance(ctx context.Context, targetType string, targetID uuid.UUID, act ProvenanceActivity, actor Actor, now time.Time) error {
	return s.repo.AppendProvenance(ctx, &Provenance{
		ID:         uuid.New(),
		TargetType: targetType,
		TargetID:   targetID,
		Recorded:   now,
		Activity:   act,
		AgentType:  actor.Type,
		AgentID:    actor.ID,
		AgentName:  actor.Name,
		CreatedAt:  now,
	})
}

// checkLinks verifies the optional composition and encounter references of a
// clinical entry.
func (s *Service) checkLinks(ctx context.Context, collection string, compositionID, encounterID *uuid.UUID) error {
	if compositionID != nil {
		if _, err := s.repo.GetComposition(ctx, *compositionID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship(collection, "fk-existence",
					"composition %s does not exist", *compositionID)
			}
			return err
		}
	}
	if encounterID != nil {
		if _, err := s.repo.GetEncounter(ctx, *encounterID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship(collection, "fk-existence",
					"encounter %s does not exist", *encounterID)
			}
			return err
		}
	}
	return nil
}

func (t CompositionType) valid() bool {
	switch t {
	case CompositionEncounter, CompositionDischargeSummary, CompositionProblemList,
		CompositionMedicationList, CompositionLabReport, CompositionVitalSigns:
		return true
	}
	return false
}

func (c CompositionCategory) valid() bool {
	return c == CategoryEvent || c == CategoryPersistent || c == CategoryEpisodic
}

// CreateComposition opens a new version chain. The first version is number 1,
// current, and ACTIVE.
func (s *Service) CreateComposition(ctx context.Context, c *Composition, actor Actor) error {
	if !c.CompositionType.valid() {
		return errs.Structural("health_record_composition", "composition_type", "enum",
			"%q is not a valid composition type", c.CompositionType)
	}
	if !c.Category.valid() {
		return errs.Structural("health_record_composition", "category", "enum",
			"%q is not a valid composition category", c.Category)
	}
	if !actor.valid() {
		return errs.Structural("health_record_provenance", "agent_type", "enum",
			"%q is not a valid agent", actor.Type)
	}
	return s.tx.InTransaction(ctx, "composition", func(ctx context.Context) error {
		now := time.Now().UTC()
		c.VersionNumber = 1
		c.IsCurrent = true
		c.PrecedingVersionID = nil
		c.Status = CompositionActive
		c.CreatedAt = now
		c.UpdatedAt = now
		if err := s.repo.CreateComposition(ctx, c); err != nil {
			return err
		}
		return s.provenance(ctx, "HEALTH_RECORD_COMPOSITION", c.ID, ActivityCreate, actor, now)
	})
}

// SupersedeComposition appends a revision to a version chain. The prior
// version must be the current ACTIVE head; it is flipped to SUPERSEDED and
// the new version takes over as current with the next version number, so at
// every commit boundary the chain has exactly one current version.
func (s *Service) SupersedeComposition(ctx context.Context, priorID uuid.UUID, next *Composition, actor Actor) error {
	if !actor.valid() {
		return errs.Structural("health_record_provenance", "agent_type", "enum",
			"%q is not a valid agent", actor.Type)
	}
	return s.tx.InTransaction(ctx, "composition", func(ctx context.Context) error {
		prior, err := s.repo.GetComposition(ctx, priorID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship("health_record_composition", "fk-existence",
					"composition %s does not exist", priorID)
			}
			return err
		}
		if !prior.IsCurrent {
			return errs.Relationship("health_record_composition", "version-chain",
				"composition %s is not the current version of its chain", priorID)
		}
		if !prior.Status.CanTransitionTo(CompositionSuperseded) {
			return errs.Relationship("health_record_composition", "status-transition",
				"composition %s cannot move %s -> %s", priorID, prior.Status, CompositionSuperseded)
		}
		now := time.Now().UTC()
		next.MemberID = prior.MemberID
		next.EmployerID = prior.EmployerID
		next.VersionNumber = prior.VersionNumber + 1
		next.IsCurrent = true
		next.PrecedingVersionID = &prior.ID
		next.Status = CompositionActive
		next.CreatedAt = now
		next.UpdatedAt = now
		if err := s.repo.CreateComposition(ctx, next); err != nil {
			return err
		}
		prior.IsCurrent = false
		prior.Status = CompositionSuperseded
		prior.UpdatedAt = now
		if err := s.repo.UpdateComposition(ctx, prior); err != nil {
			return err
		}
		if err := s.provenance(ctx, "HEALTH_RECORD_COMPOSITION", prior.ID, ActivityUpdate, actor, now); err != nil {
			return err
		}
		return s.provenance(ctx, "HEALTH_RECORD_COMPOSITION", next.ID, ActivityCreate, actor, now)
	})
}

// MarkCompositionDeleted tombstones the head of a chain. The row stays
// current so the chain remains addressable, but its status is terminal.
func (s *Service) MarkCompositionDeleted(ctx context.Context, id uuid.UUID, actor Actor) error {
	if !actor.valid() {
		return errs.Structural("health_record_provenance", "agent_type", "enum",
			"%q is not a valid agent", actor.Type)
	}
	return s.tx.InTransaction(ctx, "composition", func(ctx context.Context) error {
		c, err := s.repo.GetComposition(ctx, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship("health_record_composition", "fk-existence",
					"composition %s does not exist", id)
			}
			return err
		}
		if !c.Status.CanTransitionTo(CompositionDeleted) {
			return errs.Relationship("health_record_composition", "status-transition",
				"composition %s cannot move %s -> %s", id, c.Status, CompositionDeleted)
		}
		now := time.Now().UTC()
		c.Status = CompositionDeleted
		c.UpdatedAt = now
		if err := s.repo.UpdateComposition(ctx, c); err != nil {
			return err
		}
		return s.provenance(ctx, "HEALTH_RECORD_COMPOSITION", c.ID, ActivityDelete, actor, now)
	})
}

// RecordProblem stores a diagnosis or condition entry.
func (s *Service) RecordProblem(ctx context.Context, p *Problem, actor Actor) error {
	switch p.ClinicalStatus {
	case "active", "recurrence", "relapse", "inactive", "remission", "resolved":
	default:
		return errs.Structural("problem", "clinical_status", "enum",
			"%q is not a valid clinical status", p.ClinicalStatus)
	}
	return s.tx.InTransaction(ctx, "problem", func(ctx context.Context) error {
		if err := s.checkLinks(ctx, "problem", p.CompositionID, p.EncounterID); err != nil {
			return err
		}
		now := time.Now().UTC()
		p.CreatedAt, p.UpdatedAt = now, now
		if err := s.repo.CreateProblem(ctx, p); err != nil {
			return err
		}
		return s.provenance(ctx, "PROBLEM", p.ID, ActivityCreate, actor, now)
	})
}

// RecordAllergy stores an allergy or intolerance entry.
func (s *Service) RecordAllergy(ctx context.Context, a *Allergy, actor Actor) error {
	switch a.ClinicalStatus {
	case "active", "inactive", "resolved":
	default:
		return errs.Structural("allergy", "clinical_status", "enum",
			"%q is not a valid clinical status", a.ClinicalStatus)
	}
	return s.tx.InTransaction(ctx, "allergy", func(ctx context.Context) error {
		if err := s.checkLinks(ctx, "allergy", a.CompositionID, nil); err != nil {
			return err
		}
		now := time.Now().UTC()
		a.CreatedAt, a.UpdatedAt = now, now
		if err := s.repo.CreateAllergy(ctx, a); err != nil {
			return err
		}
		return s.provenance(ctx, "ALLERGY", a.ID, ActivityCreate, actor, now)
	})
}

// RecordMedication stores a medication order or administration entry.
func (s *Service) RecordMedication(ctx context.Context, m *Medication, actor Actor) error {
	if m.EntryType != EntryInstruction && m.EntryType != EntryAction {
		return errs.Structural("medication", "entry_type", "enum",
			"%q is not a valid entry type", m.EntryType)
	}
	return s.tx.InTransaction(ctx, "medication", func(ctx context.Context) error {
		if err := s.checkLinks(ctx, "medication", m.CompositionID, nil); err != nil {
			return err
		}
		now := time.Now().UTC()
		m.CreatedAt, m.UpdatedAt = now, now
		if err := s.repo.CreateMedication(ctx, m); err != nil {
			return err
		}
		return s.provenance(ctx, "MEDICATION", m.ID, ActivityCreate, actor, now)
	})
}

func (t VitalType) valid() bool {
	switch t {
	case VitalBloodPressure, VitalPulse, VitalTemperature, VitalRespiratoryRate,
		VitalOxygenSaturation, VitalHeight, VitalWeight, VitalBMI:
		return true
	}
	return false
}

// RecordVitalSign stores a vital sign observation.
func (s *Service) RecordVitalSign(ctx context.Context, v *VitalSign, actor Actor) error {
	if !v.VitalType.valid() {
		return errs.Structural("vital_sign", "vital_type", "enum",
			"%q is not a valid vital type", v.VitalType)
	}
	return s.tx.InTransaction(ctx, "vital_sign", func(ctx context.Context) error {
		if err := s.checkLinks(ctx, "vital_sign", v.CompositionID, v.EncounterID); err != nil {
			return err
		}
		now := time.Now().UTC()
		v.CreatedAt, v.UpdatedAt = now, now
		if err := s.repo.CreateVitalSign(ctx, v); err != nil {
			return err
		}
		return s.provenance(ctx, "VITAL_SIGN", v.ID, ActivityCreate, actor, now)
	})
}

// RecordLabResult stores a laboratory observation.
func (s *Service) RecordLabResult(ctx context.Context, l *LabResult, actor Actor) error {
	return s.tx.InTransaction(ctx, "lab_result", func(ctx context.Context) error {
		if err := s.checkLinks(ctx, "lab_result", l.CompositionID, l.EncounterID); err != nil {
			return err
		}
		now := time.Now().UTC()
		l.CreatedAt, l.UpdatedAt = now, now
		if err := s.repo.CreateLabResult(ctx, l); err != nil {
			return err
		}
		return s.provenance(ctx, "LAB_RESULT", l.ID, ActivityCreate, actor, now)
	})
}

// RecordProcedure stores a performed-procedure entry.
func (s *Service) RecordProcedure(ctx context.Context, p *ProcedureRecord, actor Actor) error {
	return s.tx.InTransaction(ctx, "procedure_record", func(ctx context.Context) error {
		if err := s.checkLinks(ctx, "procedure_record", p.CompositionID, p.EncounterID); err != nil {
			return err
		}
		now := time.Now().UTC()
		p.CreatedAt, p.UpdatedAt = now, now
		if err := s.repo.CreateProcedure(ctx, p); err != nil {
			return err
		}
		return s.provenance(ctx, "PROCEDURE_RECORD", p.ID, ActivityCreate, actor, now)
	})
}

// RecordImmunization stores a vaccination entry.
func (s *Service) RecordImmunization(ctx context.Context, im *Immunization, actor Actor) error {
	return s.tx.InTransaction(ctx, "immunization", func(ctx context.Context) error {
		if err := s.checkLinks(ctx, "immunization", im.CompositionID, im.EncounterID); err != nil {
			return err
		}
		now := time.Now().UTC()
		im.CreatedAt, im.UpdatedAt = now, now
		if err := s.repo.CreateImmunization(ctx, im); err != nil {
			return err
		}
		return s.provenance(ctx, "IMMUNIZATION", im.ID, ActivityCreate, actor, now)
	})
}

// RecordClinicalNote stores a clinical document entry.
func (s *Service) RecordClinicalNote(ctx context.Context, n *ClinicalNote, actor Actor) error {
	return s.tx.InTransaction(ctx, "clinical_note", func(ctx context.Context) error {
		if err := s.checkLinks(ctx, "clinical_note", n.CompositionID, n.EncounterID); err != nil {
			return err
		}
		now := time.Now().UTC()
		n.CreatedAt, n.UpdatedAt = now, now
		if err := s.repo.CreateClinicalNote(ctx, n); err != nil {
			return err
		}
		return s.provenance(ctx, "CLINICAL_NOTE", n.ID, ActivityCreate, actor, now)
	})
}

// RecordCarePlan stores a care plan entry with its goals and activities.
func (s *Service) RecordCarePlan(ctx context.Context, cp *CarePlan, actor Actor) error {
	return s.tx.InTransaction(ctx, "care_plan", func(ctx context.Context) error {
		if err := s.checkLinks(ctx, "care_plan", cp.CompositionID, cp.EncounterID); err != nil {
			return err
		}
		now := time.Now().UTC()
		cp.CreatedAt, cp.UpdatedAt = now, now
		if err := s.repo.CreateCarePlan(ctx, cp); err != nil {
			return err
		}
		return s.provenance(ctx, "CARE_PLAN", cp.ID, ActivityCreate, actor, now)
	})
}

// RecordEncounter stores a clinical encounter entry.
func (s *Service) RecordEncounter(ctx context.Context, e *EncounterRecord, actor Actor) error {
	if e.PeriodEnd != nil && e.PeriodEnd.Before(e.PeriodStart) {
		return errs.Relationship("encounter_record", "date-activity",
			"encounter %s ends before it starts", e.ID)
	}
	return s.tx.InTransaction(ctx, "encounter_record", func(ctx context.Context) error {
		if err := s.checkLinks(ctx, "encounter_record", e.CompositionID, nil); err != nil {
			return err
		}
		now := time.Now().UTC()
		e.CreatedAt, e.UpdatedAt = now, now
		if err := s.repo.CreateEncounter(ctx, e); err != nil {
			return err
		}
		return s.provenance(ctx, "ENCOUNTER_RECORD", e.ID, ActivityCreate, actor, now)
	})
}

// History returns the provenance trail for one entity, most useful for
// audits of a composition chain.
func (s *Service) History(ctx context.Context, targetType string, targetID uuid.UUID) ([]*Provenance, error) {
	return s.repo.ProvenanceForTarget(ctx, targetType, targetID)
}
