package person

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

type Repository interface {
	CreatePerson(ctx context.Context, p *Person) error
	GetPerson(ctx context.Context, id uuid.UUID) (*Person, error)

	CreateIdentifier(ctx context.Context, i *Identifier) error
	IdentifiersForPersonType(ctx context.Context, personID uuid.UUID, identifierType IdentifierType) ([]*Identifier, error)
	SetIdentifierPrimary(ctx context.Context, id uuid.UUID, primary bool) error

	CreateContact(ctx context.Context, c *Contact) error
	ContactsForPersonType(ctx context.Context, personID uuid.UUID, contactType ContactType) ([]*Contact, error)
	SetContactPreferred(ctx context.Context, id uuid.UUID, preferred bool) error

	CreateEmployee(ctx context.Context, e *Employee) error
	GetEmployee(ctx context.Context, id uuid.UUID) (*Employee, error)
	UpdateEmployee(ctx context.Context, e *Employee) error

	CreateProvider(ctx context.Context, p *Provider) error
	GetProvider(ctx context.Context, id uuid.UUID) (*Provider, error)

	CreateAffiliation(ctx context.Context, a *Affiliation) error
	AffiliationsForProvider(ctx context.Context, providerID uuid.UUID) ([]*Affiliation, error)
	SetAffiliationPrimary(ctx context.Context, id uuid.UUID, primary bool) error

	CreateHousehold(ctx context.Context, h *Household) error
	GetHousehold(ctx context.Context, id uuid.UUID) (*Household, error)
	AddParticipant(ctx context.Context, p *HouseholdParticipant) error
	ParticipantByHouseholdPerson(ctx context.Context, householdID, personID uuid.UUID) (*HouseholdParticipant, error)
}
