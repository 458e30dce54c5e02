package portfolio

import (
	"time"

	"github.com/google/uuid"
)

type PortfolioType string

const (
	TypeUser              PortfolioType = "USER"
	TypeWellnecity        PortfolioType = "WELLNECITY"
	TypeBroker            PortfolioType = "BROKER"
	TypeVendor            PortfolioType = "VENDOR"
	TypeEmployer          PortfolioType = "EMPLOYER"
	TypeCarrier           PortfolioType = "CARRIER"
	TypeHealthPlanSponsor PortfolioType = "HEALTH_PLAN_SPONSOR"
)

var portfolioTypes = map[PortfolioType]bool{
	TypeUser: true, TypeWellnecity: true, TypeBroker: true, TypeVendor: true,
	TypeEmployer: true, TypeCarrier: true, TypeHealthPlanSponsor: true,
}

func (t PortfolioType) Valid() bool { return portfolioTypes[t] }

// OwnerKind tags the ownership variant of a portfolio.
type OwnerKind int

const (
	OwnerNone OwnerKind = iota
	OwnerOrg
	OwnerPerson
)

type Portfolio struct {
	ID                uuid.UUID     `bson:"_id"`
	Name              string        `bson:"name"`
	Description       *string       `bson:"description,omitempty"`
	PortfolioType     PortfolioType `bson:"portfolio_type"`
	OwnerOrgID        *uuid.UUID    `bson:"owner_org_id,omitempty"`
	OwnerPersonID     *uuid.UUID    `bson:"owner_person_id,omitempty"`
	ParentPortfolioID *uuid.UUID    `bson:"parent_portfolio_id,omitempty"`
	EffectiveDate     time.Time     `bson:"effective_date"`
	TerminationDate   *time.Time    `bson:"termination_date,omitempty"`
	IsActive          bool          `bson:"is_active"`
	CreatedAt         time.Time     `bson:"created_at"`
	UpdatedAt         time.Time     `bson:"updated_at"`
}

// Owner returns the ownership variant and the owning ID, if any. The two
// FK columns are storage detail; callers switch on the kind instead of
// null-checking both.
func (p *Portfolio) Owner() (OwnerKind, uuid.UUID) {
	switch {
	case p.OwnerOrgID != nil:
		return OwnerOrg, *p.OwnerOrgID
	case p.OwnerPersonID != nil:
		return OwnerPerson, *p.OwnerPersonID
	default:
		return OwnerNone, uuid.Nil
	}
}

// OwnerValid reports whether at most one owner column is set.
func (p *Portfolio) OwnerValid() bool {
	return p.OwnerOrgID == nil || p.OwnerPersonID == nil
}

type Member struct {
	ID              uuid.UUID  `bson:"_id"`
	PortfolioID     uuid.UUID  `bson:"portfolio_id"`
	OrgID           uuid.UUID  `bson:"org_id"`
	EffectiveDate   time.Time  `bson:"effective_date"`
	TerminationDate *time.Time `bson:"termination_date,omitempty"`
	IsActive        bool       `bson:"is_active"`
	CreatedAt       time.Time  `bson:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at"`
}
