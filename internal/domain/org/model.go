package org

import (
	"time"

	"github.com/google/uuid"

	"github.com/wellnecity/edm/internal/domain/lifecycle"
)

// Org is the base entity for all business organizations.
type Org struct {
	ID        uuid.UUID `bson:"_id"`
	Name      string    `bson:"name"`
	LegalName *string   `bson:"legal_name,omitempty"`
	Website   *string   `bson:"website,omitempty"`
	IsActive  bool      `bson:"is_active"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// ===== Identifiers and contacts =====

type OrgIdentifierType string

const (
	OrgIdentifierTaxID OrgIdentifierType = "TAX_ID"
	OrgIdentifierFEIN  OrgIdentifierType = "FEIN"
	OrgIdentifierNPI   OrgIdentifierType = "NPI"
	OrgIdentifierNAIC  OrgIdentifierType = "NAIC"
	OrgIdentifierDUNS  OrgIdentifierType = "DUNS"
	OrgIdentifierLEI   OrgIdentifierType = "LEI"
	OrgIdentifierOther OrgIdentifierType = "OTHER"
)

type OrgIdentifier struct {
	ID                  uuid.UUID                 `bson:"_id"`
	OrgID               uuid.UUID                 `bson:"org_id"`
	IdentifierType      OrgIdentifierType         `bson:"identifier_type"`
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

type OrgContact struct {
	ID                  uuid.UUID                 `bson:"_id"`
	OrgID               uuid.UUID                 `bson:"org_id"`
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

// ===== Roles and role details =====

type RoleType string

const (
	RoleEmployer          RoleType = "EMPLOYER"
	RoleClient            RoleType = "CLIENT"
	RoleVendor            RoleType = "VENDOR"
	RoleBroker            RoleType = "BROKER"
	RoleCarrier           RoleType = "CARRIER"
	RoleHealthPlanSponsor RoleType = "HEALTH_PLAN_SPONSOR"
	RoleProviderOrg       RoleType = "PROVIDER_ORG"
)

var roleTypes = map[RoleType]bool{
	RoleEmployer: true, RoleClient: true, RoleVendor: true, RoleBroker: true,
	RoleCarrier: true, RoleHealthPlanSponsor: true, RoleProviderOrg: true,
}

func (r RoleType) Valid() bool { return roleTypes[r] }

type OrgRole struct {
	ID              uuid.UUID  `bson:"_id"`
	OrgID           uuid.UUID  `bson:"org_id"`
	RoleType        RoleType   `bson:"role_type"`
	EffectiveDate   time.Time  `bson:"effective_date"`
	TerminationDate *time.Time `bson:"termination_date,omitempty"`
	IsActive        bool       `bson:"is_active"`
	CreatedAt       time.Time  `bson:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at"`
}

// DetailCollectionForRole maps a role type to its detail collection.
var DetailCollectionForRole = map[RoleType]string{
	RoleEmployer:          "employer_details",
	RoleClient:            "client_details",
	RoleVendor:            "vendor_details",
	RoleBroker:            "broker_details",
	RoleCarrier:           "carrier_details",
	RoleHealthPlanSponsor: "health_plan_sponsor_details",
	RoleProviderOrg:       "provider_org_details",
}

// RoleForDetailCollection is the inverse of DetailCollectionForRole.
var RoleForDetailCollection = func() map[string]RoleType {
	m := make(map[string]RoleType, len(DetailCollectionForRole))
	for role, col := range DetailCollectionForRole {
		m[col] = role
	}
	return m
}()

type EmployerDetails struct {
	ID            uuid.UUID `bson:"_id"`
	OrgRoleID     uuid.UUID `bson:"org_role_id"`
	NAICSCode     *string   `bson:"naics_code,omitempty"`
	SICCode       *string   `bson:"sic_code,omitempty"`
	Industry      *string   `bson:"industry,omitempty"`
	SizeTier      *string   `bson:"size_tier,omitempty"`
	EmployeeCount *int      `bson:"employee_count,omitempty"`
	FEIN          *string   `bson:"fein,omitempty"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

type ClientDetails struct {
	ID                 uuid.UUID  `bson:"_id"`
	OrgRoleID          uuid.UUID  `bson:"org_role_id"`
	ClientCode         *string    `bson:"client_code,omitempty"`
	AccountManager     *string    `bson:"account_manager,omitempty"`
	ImplementationDate *time.Time `bson:"implementation_date,omitempty"`
	ClientTier         *string    `bson:"client_tier,omitempty"`
	CreatedAt          time.Time  `bson:"created_at"`
	UpdatedAt          time.Time  `bson:"updated_at"`
}

type VendorDetails struct {
	ID              uuid.UUID `bson:"_id"`
	OrgRoleID       uuid.UUID `bson:"org_role_id"`
	VendorType      *string   `bson:"vendor_type,omitempty"`
	ServiceCategory *string   `bson:"service_category,omitempty"`
	IntegrationType *string   `bson:"integration_type,omitempty"`
	CreatedAt       time.Time `bson:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

type BrokerDetails struct {
	ID            uuid.UUID `bson:"_id"`
	OrgRoleID     uuid.UUID `bson:"org_role_id"`
	LicenseNumber *string   `bson:"license_number,omitempty"`
	LicenseState  *string   `bson:"license_state,omitempty"`
	BrokerType    *string   `bson:"broker_type,omitempty"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

type CarrierDetails struct {
	ID           uuid.UUID `bson:"_id"`
	OrgRoleID    uuid.UUID `bson:"org_role_id"`
	NAICCode     *string   `bson:"naic_code,omitempty"`
	CarrierType  *string   `bson:"carrier_type,omitempty"`
	AMBestRating *string   `bson:"am_best_rating,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

type HealthPlanSponsorDetails struct {
	ID                 uuid.UUID `bson:"_id"`
	OrgRoleID          uuid.UUID `bson:"org_role_id"`
	SponsorType        *string   `bson:"sponsor_type,omitempty"`
	FundingArrangement *string   `bson:"funding_arrangement,omitempty"`
	CreatedAt          time.Time `bson:"created_at"`
	UpdatedAt          time.Time `bson:"updated_at"`
}

type ProviderOrgDetails struct {
	ID            uuid.UUID `bson:"_id"`
	OrgRoleID     uuid.UUID `bson:"org_role_id"`
	NPI           *string   `bson:"npi,omitempty"`
	FacilityType  *string   `bson:"facility_type,omitempty"`
	Specialty     *string   `bson:"specialty,omitempty"`
	TaxonomyCode  *string   `bson:"taxonomy_code,omitempty"`
	LicenseNumber *string   `bson:"license_number,omitempty"`
	LicenseState  *string   `bson:"license_state,omitempty"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

// ===== Relationships and contracts =====

type RelationshipType string

const (
	RelWellnecityClient  RelationshipType = "WELLNECITY_CLIENT"
	RelBrokerClient      RelationshipType = "BROKER_CLIENT"
	RelCarrierClient     RelationshipType = "CARRIER_CLIENT"
	RelVendorClient      RelationshipType = "VENDOR_CLIENT"
	RelProviderOrgClient RelationshipType = "PROVIDER_ORG_CLIENT"
)

type OrgRelationship struct {
	ID               uuid.UUID        `bson:"_id"`
	OrgIDSource      uuid.UUID        `bson:"org_id_source"`
	OrgIDTarget      uuid.UUID        `bson:"org_id_target"`
	RelationshipType RelationshipType `bson:"relationship_type"`
	EffectiveDate    time.Time        `bson:"effective_date"`
	TerminationDate  *time.Time       `bson:"termination_date,omitempty"`
	IsActive         bool             `bson:"is_active"`
	CreatedAt        time.Time        `bson:"created_at"`
	UpdatedAt        time.Time        `bson:"updated_at"`
}

type ContractStatus string

const (
	ContractDraft      ContractStatus = "DRAFT"
	ContractActive     ContractStatus = "ACTIVE"
	ContractExpired    ContractStatus = "EXPIRED"
	ContractTerminated ContractStatus = "TERMINATED"
	ContractRenewed    ContractStatus = "RENEWED"
)

// CanTransitionTo encodes the contract lifecycle: DRAFT activates, ACTIVE
// expires, terminates or renews. EXPIRED and TERMINATED are terminal.
// RENEWED carries no successor link; the renewal is a new contract row.
func (s ContractStatus) CanTransitionTo(next ContractStatus) bool {
	switch s {
	case ContractDraft:
		return next == ContractActive
	case ContractActive:
		return next == ContractExpired || next == ContractTerminated || next == ContractRenewed
	}
	return false
}

type Contract struct {
	ID                uuid.UUID      `bson:"_id"`
	OrgRelationshipID uuid.UUID      `bson:"org_relationship_id"`
	ContractType      *string        `bson:"contract_type,omitempty"`
	ContractNumber    *string        `bson:"contract_number,omitempty"`
	EffectiveDate     time.Time      `bson:"effective_date"`
	TerminationDate   *time.Time     `bson:"termination_date,omitempty"`
	Status            ContractStatus `bson:"status"`
	Terms             *string        `bson:"terms,omitempty"`
	CreatedAt         time.Time      `bson:"created_at"`
	UpdatedAt         time.Time      `bson:"updated_at"`
}

// ===== Internal structures =====

type OrgStructure struct {
	ID              uuid.UUID  `bson:"_id"`
	OrgID           uuid.UUID  `bson:"org_id"`
	StructureType   string     `bson:"structure_type"`
	Name            string     `bson:"name"`
	Description     *string    `bson:"description,omitempty"`
	EffectiveDate   time.Time  `bson:"effective_date"`
	TerminationDate *time.Time `bson:"termination_date,omitempty"`
	IsActive        bool       `bson:"is_active"`
	CreatedAt       time.Time  `bson:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at"`
}

type OrgStructureNode struct {
	ID              uuid.UUID  `bson:"_id"`
	OrgStructureID  uuid.UUID  `bson:"org_structure_id"`
	ParentNodeID    *uuid.UUID `bson:"parent_node_id,omitempty"`
	NodeCode        *string    `bson:"node_code,omitempty"`
	Name            string     `bson:"name"`
	Description     *string    `bson:"description,omitempty"`
	Level           int        `bson:"level"`
	SortOrder       *int       `bson:"sort_order,omitempty"`
	EffectiveDate   time.Time  `bson:"effective_date"`
	TerminationDate *time.Time `bson:"termination_date,omitempty"`
	IsActive        bool       `bson:"is_active"`
	CreatedAt       time.Time  `bson:"created_at"`
	UpdatedAt       time.Time  `bson:"updated_at"`
}
