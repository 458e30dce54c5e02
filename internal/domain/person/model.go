package person

import (
	"time"

	"github.com/google/uuid"

	"github.com/wellnecity/edm/internal/domain/lifecycle"
)

// Person is the base entity for all individuals: employees, members,
// dependents, providers.
type Person struct {
	ID          uuid.UUID  `bson:"_id"`
	FirstName   string     `bson:"first_name"`
	LastName    string     `bson:"last_name"`
	MiddleName  *string    `bson:"middle_name,omitempty"`
	DateOfBirth *time.Time `bson:"date_of_birth,omitempty"`
	Gender      *string    `bson:"gender,omitempty"`
	IsActive    bool       `bson:"is_active"`
	CreatedAt   time.Time  `bson:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at"`
}

type IdentifierType string

const (
	IdentifierSSN            IdentifierType = "SSN"
	IdentifierMRN            IdentifierType = "MRN"
	IdentifierMemberID       IdentifierType = "MEMBER_ID"
	IdentifierEmployeeID     IdentifierType = "EMPLOYEE_ID"
	IdentifierNPI            IdentifierType = "NPI"
	IdentifierDriversLicense IdentifierType = "DRIVERS_LICENSE"
	IdentifierPassport       IdentifierType = "PASSPORT"
	IdentifierOther          IdentifierType = "OTHER"
)

type Identifier struct {
	ID                  uuid.UUID                 `bson:"_id"`
	PersonID            uuid.UUID                 `bson:"person_id"`
	IdentifierType      IdentifierType            `bson:"identifier_type"`
	IdentifierValue     string                    `bson:"identifier_value"`
	IssuingAuthority    *string                   `bson:"issuing_authority,omitempty"`
	IssueDate           *time.Time                `bson:"issue_date,omitempty"`
	ExpirationDate      *time.Time                `bson:"expiration_date,omitempty"`
	UsabilityStatus     lifecycle.UsabilityStatus `bson:"usability_status"`
	UsabilityStatusDate time.Time                 `bson:"usability_status_date"`
	IsPrimary           bool                      `bson:"is_primary"`
	CreatedAt           time.Time                 `bson:"created_at"`
	UpdatedAt           time.Time                 `bson:"updated_at"`
}

type ContactType string

const (
	ContactEmail   ContactType = "EMAIL"
	ContactPhone   ContactType = "PHONE"
	ContactAddress ContactType = "ADDRESS"
)

type Contact struct {
	ID                  uuid.UUID                 `bson:"_id"`
	PersonID            uuid.UUID                 `bson:"person_id"`
	ContactType         ContactType               `bson:"contact_type"`
	Email               *string                   `bson:"email,omitempty"`
	Phone               *string                   `bson:"phone,omitempty"`
	AddressLine1        *string                   `bson:"address_line_1,omitempty"`
	AddressLine2        *string                   `bson:"address_line_2,omitempty"`
	City                *string                   `bson:"city,omitempty"`
	State               *string                   `bson:"state,omitempty"`
	ZipCode             *string                   `bson:"zip_code,omitempty"`
	Country             *string                   `bson:"country,omitempty"`
	Label               string                    `bson:"label"`
	IsPreferred         bool                      `bson:"is_preferred"`
	UsabilityStatus     lifecycle.UsabilityStatus `bson:"usability_status"`
	UsabilityStatusDate time.Time                 `bson:"usability_status_date"`
	CreatedAt           time.Time                 `bson:"created_at"`
	UpdatedAt           time.Time                 `bson:"updated_at"`
}

type EmploymentStatus string

const (
	EmploymentActive     EmploymentStatus = "ACTIVE"
	EmploymentTerminated EmploymentStatus = "TERMINATED"
	EmploymentLOA        EmploymentStatus = "LOA"
	EmploymentRetired    EmploymentStatus = "RETIRED"
)

// CanTransitionTo encodes the employment lifecycle. Leave of absence is the
// only state with a way back to ACTIVE.
func (s EmploymentStatus) CanTransitionTo(next EmploymentStatus) bool {
	switch s {
	case EmploymentActive:
		return next == EmploymentTerminated || next == EmploymentLOA || next == EmploymentRetired
	case EmploymentLOA:
		return next == EmploymentActive || next == EmploymentTerminated || next == EmploymentRetired
	}
	return false
}

// Employee links a person to an employer organization.
type Employee struct {
	ID               uuid.UUID        `bson:"_id"`
	PersonID         uuid.UUID        `bson:"person_id"`
	EmployerOrgID    uuid.UUID        `bson:"employer_org_id"`
	EmployeeNumber   *string          `bson:"employee_number,omitempty"`
	HireDate         time.Time        `bson:"hire_date"`
	TerminationDate  *time.Time       `bson:"termination_date,omitempty"`
	EmploymentStatus EmploymentStatus `bson:"employment_status"`
	EmploymentType   *string          `bson:"employment_type,omitempty"`
	JobTitle         *string          `bson:"job_title,omitempty"`
	Department       *string          `bson:"department,omitempty"`
	IsActive         bool             `bson:"is_active"`
	CreatedAt        time.Time        `bson:"created_at"`
	UpdatedAt        time.Time        `bson:"updated_at"`
}

// Provider links a person to the healthcare provider role.
type Provider struct {
	ID            uuid.UUID `bson:"_id"`
	PersonID      uuid.UUID `bson:"person_id"`
	NPI           *string   `bson:"npi,omitempty"`
	ProviderType  *string   `bson:"provider_type,omitempty"`
	Specialty     *string   `bson:"specialty,omitempty"`
	TaxonomyCode  *string   `bson:"taxonomy_code,omitempty"`
	LicenseNumber *string   `bson:"license_number,omitempty"`
	LicenseState  *string   `bson:"license_state,omitempty"`
	DEANumber     *string   `bson:"dea_number,omitempty"`
	IsActive      bool      `bson:"is_active"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

// Affiliation links a provider to a provider organization.
type Affiliation struct {
	ID              uuid.UUID  `bson:"_id"`
	ProviderID      uuid.UUID  `bson:"provider_id"`
	ProviderOrgID   uuid.UUID  `bson:"provider_org_id"`
	AffiliationType string     `bson:"affiliation_type"`
	EffectiveDate   time.Time  `bson:"effective_date"`
	TerminationDate *time.Time `bson:"termination_date,omitempty"`
	IsPrimary       bool       `bson:"is_primary"`
	IsActive        bool       `bson:"is_active"`
	CreatedAt       time.Time  `bson:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at"`
}

type Household struct {
	ID            uuid.UUID `bson:"_id"`
	HouseholdName *string   `bson:"household_name,omitempty"`
	AddressLine1  *string   `bson:"address_line_1,omitempty"`
	AddressLine2  *string   `bson:"address_line_2,omitempty"`
	City          *string   `bson:"city,omitempty"`
	State         *string   `bson:"state,omitempty"`
	ZipCode       *string   `bson:"zip_code,omitempty"`
	Country       *string   `bson:"country,omitempty"`
	IsActive      bool      `bson:"is_active"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

type HouseholdParticipant struct {
	ID               uuid.UUID  `bson:"_id"`
	HouseholdID      uuid.UUID  `bson:"household_id"`
	PersonID         uuid.UUID  `bson:"person_id"`
	RelationshipType string     `bson:"relationship_type"`
	EffectiveDate    time.Time  `bson:"effective_date"`
	TerminationDate  *time.Time `bson:"termination_date,omitempty"`
	IsActive         bool       `bson:"is_active"`
	CreatedAt        time.Time  `bson:"created_at"`
	UpdatedAt        time.Time  `bson:"updated_at"`
}
