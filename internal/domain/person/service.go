package person

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wellnecity/edm/internal/errs"
	"github.com/wellnecity/edm/internal/platform/db"
)

type Service struct {
	repo Repository
	tx   db.Transactor
	log  zerolog.Logger
}

func NewService(repo Repository, tx db.Transactor, log zerolog.Logger) *Service {
	return &Service{repo: repo, tx: tx, log: log.With().Str("component", "person").Logger()}
}

// SetEmploymentStatus moves an employment through its lifecycle and keeps
// the derived fields in step: is_active mirrors status==ACTIVE, and
// termination records the date.
func (s *Service) SetEmploymentStatus(ctx context.Context, employeeID uuid.UUID, next EmploymentStatus, when time.Time) error {
	return s.tx.InTransaction(ctx, "employee", func(ctx context.Context) error {
		e, err := s.repo.GetEmployee(ctx, employeeID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship("employee", "fk-existence", "employee %s does not exist", employeeID)
			}
			return err
		}
		if !e.EmploymentStatus.CanTransitionTo(next) {
			return errs.Relationship("employee", "status-transition",
				"employee %s cannot move %s -> %s", employeeID, e.EmploymentStatus, next)
		}
		e.EmploymentStatus = next
		e.IsActive = next == EmploymentActive
		if next == EmploymentTerminated || next == EmploymentRetired {
			e.TerminationDate = &when
		}
		if next == EmploymentActive {
			e.TerminationDate = nil
		}
		e.UpdatedAt = when
		return s.repo.UpdateEmployee(ctx, e)
	})
}

// SetPrimaryIdentifier makes one identifier the primary of its type for a
// person, clearing siblings in the same transaction.
func (s *Service) SetPrimaryIdentifier(ctx context.Context, personID uuid.UUID, identifierType IdentifierType, winnerID uuid.UUID) error {
	return s.tx.InTransaction(ctx, "person_identifier", func(ctx context.Context) error {
		siblings, err := s.repo.IdentifiersForPersonType(ctx, personID, identifierType)
		if err != nil {
			return err
		}
		winnerSeen := false
		for _, sib := range siblings {
			if sib.ID == winnerID {
				winnerSeen = true
				continue
			}
			if sib.IsPrimary {
				if err := s.repo.SetIdentifierPrimary(ctx, sib.ID, false); err != nil {
					return err
				}
			}
		}
		if !winnerSeen {
			return errs.Relationship("person_identifier", "single-primary",
				"identifier %s is not a %s identifier of person %s", winnerID, identifierType, personID)
		}
		return s.repo.SetIdentifierPrimary(ctx, winnerID, true)
	})
}

// SetPreferredContact makes one contact the preferred of its type for a
// person, clearing siblings atomically.
func (s *Service) SetPreferredContact(ctx context.Context, personID uuid.UUID, contactType ContactType, winnerID uuid.UUID) error {
	return s.tx.InTransaction(ctx, "person_contact", func(ctx context.Context) error {
		siblings, err := s.repo.ContactsForPersonType(ctx, personID, contactType)
		if err != nil {
			return err
		}
		winnerSeen := false
		for _, sib := range siblings {
			if sib.ID == winnerID {
				winnerSeen = true
				continue
			}
			if sib.IsPreferred {
				if err := s.repo.SetContactPreferred(ctx, sib.ID, false); err != nil {
					return err
				}
			}
		}
		if !winnerSeen {
			return errs.Relationship("person_contact", "single-preferred",
				"contact %s is not a %s contact of person %s", winnerID, contactType, personID)
		}
		return s.repo.SetContactPreferred(ctx, winnerID, true)
	})
}

// SetPrimaryAffiliation makes one affiliation the provider's primary,
// clearing every other affiliation of the same provider.
func (s *Service) SetPrimaryAffiliation(ctx context.Context, providerID, winnerID uuid.UUID) error {
	return s.tx.InTransaction(ctx, "provider_affiliation", func(ctx context.Context) error {
		affs, err := s.repo.AffiliationsForProvider(ctx, providerID)
		if err != nil {
			return err
		}
		winnerSeen := false
		for _, a := range affs {
			if a.ID == winnerID {
				winnerSeen = true
				continue
			}
			if a.IsPrimary {
				if err := s.repo.SetAffiliationPrimary(ctx, a.ID, false); err != nil {
					return err
				}
			}
		}
		if !winnerSeen {
			return errs.Relationship("provider_affiliation", "single-primary",
				"affiliation %s does not belong to provider %s", winnerID, providerID)
		}
		return s.repo.SetAffiliationPrimary(ctx, winnerID, true)
	})
}

// AddAffiliation links a provider to a provider organization.
func (s *Service) AddAffiliation(ctx context.Context, a *Affiliation) error {
	if _, err := s.repo.GetProvider(ctx, a.ProviderID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return errs.Relationship("provider_affiliation", "fk-existence",
				"provider %s does not exist", a.ProviderID)
		}
		return err
	}
	return s.repo.CreateAffiliation(ctx, a)
}

// AddParticipant links a person into a household. The (household, person)
// pair is unique.
func (s *Service) AddParticipant(ctx context.Context, p *HouseholdParticipant) error {
	return s.tx.InTransaction(ctx, "household_participant", func(ctx context.Context) error {
		if _, err := s.repo.GetHousehold(ctx, p.HouseholdID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship("household_participant", "fk-existence",
					"household %s does not exist", p.HouseholdID)
			}
			return err
		}
		if _, err := s.repo.GetPerson(ctx, p.PersonID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship("household_participant", "fk-existence",
					"person %s does not exist", p.PersonID)
			}
			return err
		}
		existing, err := s.repo.ParticipantByHouseholdPerson(ctx, p.HouseholdID, p.PersonID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		if existing != nil {
			return errs.Relationship("household_participant", "unique-participation",
				"person %s already participates in household %s", p.PersonID, p.HouseholdID)
		}
		return s.repo.AddParticipant(ctx, p)
	})
}
