package benefits

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlanType string

const (
	PlanHMO       PlanType = "HMO"
	PlanPPO       PlanType = "PPO"
	PlanHDHP      PlanType = "HDHP"
	PlanEPO       PlanType = "EPO"
	PlanPOS       PlanType = "POS"
	PlanIndemnity PlanType = "INDEMNITY"
)

type BenefitType string

const (
	BenefitMedical        BenefitType = "MEDICAL"
	BenefitDental         BenefitType = "DENTAL"
	BenefitVision         BenefitType = "VISION"
	BenefitPharmacy       BenefitType = "PHARMACY"
	BenefitLifeDisability BenefitType = "LIFE_DISABILITY"
)

// BenefitPlan is a health plan offered by a health plan sponsor org,
// optionally pinned to a node of the sponsor's org structure.
type BenefitPlan struct {
	ID                 uuid.UUID   `bson:"_id"`
	SponsorOrgID       uuid.UUID   `bson:"sponsor_org_id"`
	OrgStructureNodeID *uuid.UUID  `bson:"org_structure_node_id,omitempty"`
	PlanName           string      `bson:"plan_name"`
	PlanCode           *string     `bson:"plan_code,omitempty"`
	PlanType           PlanType    `bson:"plan_type"`
	BenefitType        BenefitType `bson:"benefit_type"`
	EffectiveDate      time.Time   `bson:"effective_date"`
	TerminationDate    *time.Time  `bson:"termination_date,omitempty"`
	IsActive           bool        `bson:"is_active"`
	CreatedAt          time.Time   `bson:"created_at"`
	UpdatedAt          time.Time   `bson:"updated_at"`
}

type CoverageTierName string

const (
	TierSingle          CoverageTierName = "SINGLE"
	TierSingleDependent CoverageTierName = "SINGLE_DEPENDENT"
	TierSingleSpouse    CoverageTierName = "SINGLE_SPOUSE"
	TierFamily          CoverageTierName = "FAMILY"
	TierSpouseOnly      CoverageTierName = "SPOUSE_ONLY"
	TierDependentOnly   CoverageTierName = "DEPENDENT_ONLY"
)

// CoverageType is a tier within a plan (Single, Family, ...) carrying the
// tier's financial limits. One tier name per plan.
type CoverageType struct {
	ID                               uuid.UUID        `bson:"_id"`
	BenefitPlanID                    uuid.UUID        `bson:"benefit_plan_id"`
	Name                             CoverageTierName `bson:"name"`
	InNetworkDeductibleIndividual    *decimal.Decimal `bson:"in_network_deductible_individual,omitempty"`
	InNetworkDeductibleFamily        *decimal.Decimal `bson:"in_network_deductible_family,omitempty"`
	InNetworkCoinsurance             *decimal.Decimal `bson:"in_network_coinsurance,omitempty"`
	InNetworkOOPMaxIndividual        *decimal.Decimal `bson:"in_network_oop_max_individual,omitempty"`
	InNetworkOOPMaxFamily            *decimal.Decimal `bson:"in_network_oop_max_family,omitempty"`
	OutOfNetworkDeductibleIndividual *decimal.Decimal `bson:"out_of_network_deductible_individual,omitempty"`
	OutOfNetworkDeductibleFamily     *decimal.Decimal `bson:"out_of_network_deductible_family,omitempty"`
	OutOfNetworkCoinsurance          *decimal.Decimal `bson:"out_of_network_coinsurance,omitempty"`
	OutOfNetworkOOPMaxIndividual     *decimal.Decimal `bson:"out_of_network_oop_max_individual,omitempty"`
	OutOfNetworkOOPMaxFamily         *decimal.Decimal `bson:"out_of_network_oop_max_family,omitempty"`
	CopayPrimaryCare                 *decimal.Decimal `bson:"copay_primary_care,omitempty"`
	CopaySpecialist                  *decimal.Decimal `bson:"copay_specialist,omitempty"`
	CopayEmergency                   *decimal.Decimal `bson:"copay_emergency,omitempty"`
	CopayUrgentCare                  *decimal.Decimal `bson:"copay_urgent_care,omitempty"`
	EffectiveDate                    time.Time        `bson:"effective_date"`
	TerminationDate                  *time.Time       `bson:"termination_date,omitempty"`
	IsActive                         bool             `bson:"is_active"`
	CreatedAt                        time.Time        `bson:"created_at"`
	UpdatedAt                        time.Time        `bson:"updated_at"`
}

type LimitType string

const (
	LimitDeductible LimitType = "DEDUCTIBLE"
	LimitOOPMax     LimitType = "OOP_MAX"
	LimitVisit      LimitType = "VISIT_LIMIT"
	LimitRxSpending LimitType = "RX_SPENDING"
	LimitBenefitMax LimitType = "BENEFIT_MAX"
)

type NetworkType string

const (
	NetworkIn       NetworkType = "IN_NETWORK"
	NetworkOut      NetworkType = "OUT_OF_NETWORK"
	NetworkCombined NetworkType = "COMBINED"
)

type LimitLevel string

const (
	LevelIndividual LimitLevel = "INDIVIDUAL"
	LevelFamily     LimitLevel = "FAMILY"
)

type PeriodType string

const (
	PeriodPlanYear     PeriodType = "PLAN_YEAR"
	PeriodCalendarYear PeriodType = "CALENDAR_YEAR"
	PeriodLifetime     PeriodType = "LIFETIME"
)

// PlanLimit is the template a limit instance accumulates against: what kind
// of limit, which network, at which level, over which period.
type PlanLimit struct {
	ID              uuid.UUID        `bson:"_id"`
	BenefitPlanID   uuid.UUID        `bson:"benefit_plan_id"`
	LimitType       LimitType        `bson:"limit_type"`
	NetworkType     NetworkType      `bson:"network_type"`
	Level           LimitLevel       `bson:"level"`
	BenefitCategory *string          `bson:"benefit_category,omitempty"`
	LimitAmount     *decimal.Decimal `bson:"limit_amount,omitempty"`
	LimitCount      *int32           `bson:"limit_count,omitempty"`
	PeriodType      PeriodType       `bson:"period_type"`
	EffectiveDate   time.Time        `bson:"effective_date"`
	TerminationDate *time.Time       `bson:"termination_date,omitempty"`
	IsActive        bool             `bson:"is_active"`
	CreatedAt       time.Time        `bson:"created_at"`
	UpdatedAt       time.Time        `bson:"updated_at"`
}

type EligibilityStatus string

const (
	NotEligible         EligibilityStatus = "NOT_ELIGIBLE"
	EligibleEnrolled    EligibilityStatus = "ELIGIBLE_ENROLLED"
	EligibleNotEnrolled EligibilityStatus = "ELIGIBLE_NOT_ENROLLED"
)

// Eligibility links an employee to a benefit plan. Whether an
// ELIGIBLE_ENROLLED employee actually holds a plan membership is checked
// advisorily, never enforced.
type Eligibility struct {
	ID              uuid.UUID         `bson:"_id"`
	EmployeeID      uuid.UUID         `bson:"employee_id"`
	BenefitPlanID   uuid.UUID         `bson:"benefit_plan_id"`
	Status          EligibilityStatus `bson:"status"`
	EffectiveDate   time.Time         `bson:"effective_date"`
	TerminationDate *time.Time        `bson:"termination_date,omitempty"`
	CreatedAt       time.Time         `bson:"created_at"`
	UpdatedAt       time.Time         `bson:"updated_at"`
}

type CoverageStatus string

const (
	CoveragePending    CoverageStatus = "PENDING"
	CoverageActive     CoverageStatus = "ACTIVE"
	CoverageTerminated CoverageStatus = "TERMINATED"
	CoverageCOBRA      CoverageStatus = "COBRA"
)

// CanTransitionTo encodes the coverage lifecycle. COBRA continuation is only
// reachable from an active coverage, and TERMINATED is terminal.
func (s CoverageStatus) CanTransitionTo(next CoverageStatus) bool {
	switch s {
	case CoveragePending:
		return next == CoverageActive || next == CoverageTerminated
	case CoverageActive:
		return next == CoverageTerminated || next == CoverageCOBRA
	case CoverageCOBRA:
		return next == CoverageTerminated
	}
	return false
}

// Coverage is an instance of enrollment in a CoverageType.
type Coverage struct {
	ID              uuid.UUID      `bson:"_id"`
	CoverageTypeID  uuid.UUID      `bson:"coverage_type_id"`
	BenefitPlanID   uuid.UUID      `bson:"benefit_plan_id"`
	EffectiveDate   time.Time      `bson:"effective_date"`
	TerminationDate *time.Time     `bson:"termination_date,omitempty"`
	Status          CoverageStatus `bson:"status"`
	CreatedAt       time.Time      `bson:"created_at"`
	UpdatedAt       time.Time      `bson:"updated_at"`
}

type MemberType string

const (
	MemberSubscriber MemberType = "SUBSCRIBER"
	MemberDependent  MemberType = "DEPENDENT"
)

type SubscriberRelationship string

const (
	RelationshipSelf            SubscriberRelationship = "SELF"
	RelationshipSpouse          SubscriberRelationship = "SPOUSE"
	RelationshipChild           SubscriberRelationship = "CHILD"
	RelationshipDomesticPartner SubscriberRelationship = "DOMESTIC_PARTNER"
)

// PlanMember is a person enrolled in a coverage. Each coverage has exactly
// one SUBSCRIBER; every DEPENDENT points at that subscriber through
// SubscriberPlanMemberID, which is nil on the subscriber itself.
type PlanMember struct {
	ID                         uuid.UUID               `bson:"_id"`
	PersonID                   uuid.UUID               `bson:"person_id"`
	CoverageID                 uuid.UUID               `bson:"coverage_id"`
	SubscriberPlanMemberID     *uuid.UUID              `bson:"subscriber_plan_member_id,omitempty"`
	MemberType                 MemberType              `bson:"member_type"`
	SubscriberRelationshipType *SubscriberRelationship `bson:"subscriber_relationship_type,omitempty"`
	WellnecityID               *string                 `bson:"wellnecity_id,omitempty"`
	SubscriberID               *string                 `bson:"subscriber_id,omitempty"`
	EffectiveDate              time.Time               `bson:"effective_date"`
	TerminationDate            *time.Time              `bson:"termination_date,omitempty"`
	IsActive                   bool                    `bson:"is_active"`
	CreatedAt                  time.Time               `bson:"created_at"`
	UpdatedAt                  time.Time               `bson:"updated_at"`
}

// AccumulatorScope says which side of the member/coverage split an
// accumulator tracks.
type AccumulatorScope int

const (
	ScopeNone AccumulatorScope = iota
	ScopeMember
	ScopeCoverage
)

// Accumulator tracks spending or usage against a PlanLimit for one period.
// Individual-level accumulators carry PlanMemberID, family-level ones carry
// CoverageID; never both.
type Accumulator struct {
	ID                uuid.UUID       `bson:"_id"`
	PlanLimitID       uuid.UUID       `bson:"plan_limit_id"`
	PlanMemberID      *uuid.UUID      `bson:"plan_member_id,omitempty"`
	CoverageID        *uuid.UUID      `bson:"coverage_id,omitempty"`
	AccumulatedAmount decimal.Decimal `bson:"accumulated_amount"`
	AccumulatedCount  int32           `bson:"accumulated_count"`
	PeriodStart       time.Time       `bson:"period_start"`
	PeriodEnd         time.Time       `bson:"period_end"`
	CreatedAt         time.Time       `bson:"created_at"`
	UpdatedAt         time.Time       `bson:"updated_at"`
}

// Scope reports the accumulator's subject. ScopeNone means the row is
// malformed (neither or both subjects set).
func (a *Accumulator) Scope() AccumulatorScope {
	switch {
	case a.PlanMemberID != nil && a.CoverageID == nil:
		return ScopeMember
	case a.PlanMemberID == nil && a.CoverageID != nil:
		return ScopeCoverage
	}
	return ScopeNone
}

// ContainsDate reports whether t falls in the accumulation period. The
// period is half-open: period_start inclusive, period_end exclusive.
func (a *Accumulator) ContainsDate(t time.Time) bool {
	return !t.Before(a.PeriodStart) && t.Before(a.PeriodEnd)
}

// AccumulatorEvent is one applied contribution to an accumulator. The
// ledger row is what makes ApplyAccumulatorEvent idempotent: replaying an
// event ID that is already recorded is a no-op.
type AccumulatorEvent struct {
	ID            uuid.UUID       `bson:"_id"`
	EventID       string          `bson:"event_id"`
	AccumulatorID uuid.UUID       `bson:"accumulator_id"`
	Amount        decimal.Decimal `bson:"amount"`
	Count         int32           `bson:"count"`
	ServiceDate   time.Time       `bson:"service_date"`
	AppliedAt     time.Time       `bson:"applied_at"`
}
