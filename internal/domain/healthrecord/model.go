package healthrecord

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CompositionType string

const (
	CompositionEncounter        CompositionType = "ENCOUNTER"
	CompositionDischargeSummary CompositionType = "DISCHARGE_SUMMARY"
	CompositionProblemList      CompositionType = "PROBLEM_LIST"
	CompositionMedicationList   CompositionType = "MEDICATION_LIST"
	CompositionLabReport        CompositionType = "LAB_REPORT"
	CompositionVitalSigns       CompositionType = "VITAL_SIGNS"
)

type CompositionCategory string

const (
	CategoryEvent      CompositionCategory = "EVENT"
	CategoryPersistent CompositionCategory = "PERSISTENT"
	CategoryEpisodic   CompositionCategory = "EPISODIC"
)

type CompositionStatus string

const (
	CompositionActive     CompositionStatus = "ACTIVE"
	CompositionSuperseded CompositionStatus = "SUPERSEDED"
	CompositionDeleted    CompositionStatus = "DELETED"
)

// CanTransitionTo encodes the composition lifecycle. SUPERSEDED and DELETED
// are terminal; only the active head of a chain can move.
func (s CompositionStatus) CanTransitionTo(next CompositionStatus) bool {
	return s == CompositionActive && (next == CompositionSuperseded || next == CompositionDeleted)
}

// Composition is the container grouping related clinical entries, versioned
// as a chain: each revision points at its predecessor and exactly one
// version per chain carries is_current.
type Composition struct {
	ID                 uuid.UUID           `bson:"_id"`
	MemberID           uuid.UUID           `bson:"member_id"`
	EmployerID         uuid.UUID           `bson:"employer_id"`
	ArchetypeID        string              `bson:"archetype_id"`
	TemplateID         *string             `bson:"template_id,omitempty"`
	CompositionType    CompositionType     `bson:"composition_type"`
	Category           CompositionCategory `bson:"category"`
	ContextStartTime   time.Time           `bson:"context_start_time"`
	ContextEndTime     *time.Time          `bson:"context_end_time,omitempty"`
	ContextSetting     *string             `bson:"context_setting,omitempty"`
	ContextLocation    *string             `bson:"context_location,omitempty"`
	ComposerID         *string             `bson:"composer_id,omitempty"`
	ComposerName       *string             `bson:"composer_name,omitempty"`
	Language           *string             `bson:"language,omitempty"`
	Territory          *string             `bson:"territory,omitempty"`
	VersionNumber      int32               `bson:"version_number"`
	IsCurrent          bool                `bson:"is_current"`
	PrecedingVersionID *uuid.UUID          `bson:"preceding_version_id,omitempty"`
	Status             CompositionStatus   `bson:"status"`
	FHIRBundleID       *string             `bson:"fhir_bundle_id,omitempty"`
	Source             *string             `bson:"source,omitempty"`
	SourceID           *string             `bson:"source_id,omitempty"`
	CreatedAt          time.Time           `bson:"created_at"`
	UpdatedAt          time.Time           `bson:"updated_at"`
}

// Problem is a diagnosis, health problem, or clinical condition.
type Problem struct {
	ID                 uuid.UUID  `bson:"_id"`
	CompositionID      *uuid.UUID `bson:"composition_id,omitempty"`
	MemberID           uuid.UUID  `bson:"member_id"`
	ArchetypeID        string     `bson:"archetype_id"`
	ProblemName        string     `bson:"problem_name"`
	ProblemCode        *string    `bson:"problem_code,omitempty"`
	ProblemCodeSystem  *string    `bson:"problem_code_system,omitempty"`
	ProblemCodeDisplay *string    `bson:"problem_code_display,omitempty"`
	ClinicalStatus     string     `bson:"clinical_status"`
	VerificationStatus *string    `bson:"verification_status,omitempty"`
	Category           *string    `bson:"category,omitempty"`
	Severity           *string    `bson:"severity,omitempty"`
	BodySite           *string    `bson:"body_site,omitempty"`
	BodySiteCode       *string    `bson:"body_site_code,omitempty"`
	OnsetDate          *time.Time `bson:"onset_date,omitempty"`
	OnsetAge           *string    `bson:"onset_age,omitempty"`
	AbatementDate      *time.Time `bson:"abatement_date,omitempty"`
	RecordedDate       time.Time  `bson:"recorded_date"`
	RecorderID         *string    `bson:"recorder_id,omitempty"`
	AsserterID         *string    `bson:"asserter_id,omitempty"`
	EncounterID        *uuid.UUID `bson:"encounter_id,omitempty"`
	ClinicalNote       *string    `bson:"clinical_note,omitempty"`
	FHIRConditionID    *string    `bson:"fhir_condition_id,omitempty"`
	Source             *string    `bson:"source,omitempty"`
	SourceID           *string    `bson:"source_id,omitempty"`
	CreatedAt          time.Time  `bson:"created_at"`
	UpdatedAt          time.Time  `bson:"updated_at"`
}

// Manifestation is one coded reaction manifestation on an allergy.
type Manifestation struct {
	Code    *string `bson:"code,omitempty"`
	System  *string `bson:"system,omitempty"`
	Display *string `bson:"display,omitempty"`
	Text    *string `bson:"text,omitempty"`
}

// Allergy is an allergy, intolerance, or adverse reaction risk.
type Allergy struct {
	ID                    uuid.UUID       `bson:"_id"`
	CompositionID         *uuid.UUID      `bson:"composition_id,omitempty"`
	MemberID              uuid.UUID       `bson:"member_id"`
	ArchetypeID           string          `bson:"archetype_id"`
	SubstanceName         string          `bson:"substance_name"`
	SubstanceCode         *string         `bson:"substance_code,omitempty"`
	SubstanceCodeSystem   *string         `bson:"substance_code_system,omitempty"`
	SubstanceCodeDisplay  *string         `bson:"substance_code_display,omitempty"`
	Category              *string         `bson:"category,omitempty"`
	AllergyType           *string         `bson:"allergy_type,omitempty"`
	Criticality           *string         `bson:"criticality,omitempty"`
	ClinicalStatus        string          `bson:"clinical_status"`
	VerificationStatus    *string         `bson:"verification_status,omitempty"`
	OnsetDate             *time.Time      `bson:"onset_date,omitempty"`
	RecordedDate          time.Time       `bson:"recorded_date"`
	RecorderID            *string         `bson:"recorder_id,omitempty"`
	AsserterID            *string         `bson:"asserter_id,omitempty"`
	LastOccurrence        *time.Time      `bson:"last_occurrence,omitempty"`
	ReactionManifestation []Manifestation `bson:"reaction_manifestation,omitempty"`
	ReactionSeverity      *string         `bson:"reaction_severity,omitempty"`
	ReactionOnset         *string         `bson:"reaction_onset,omitempty"`
	ReactionDescription   *string         `bson:"reaction_description,omitempty"`
	ReactionExposureRoute *string         `bson:"reaction_exposure_route,omitempty"`
	ClinicalNote          *string         `bson:"clinical_note,omitempty"`
	FHIRAllergyID         *string         `bson:"fhir_allergy_id,omitempty"`
	Source                *string         `bson:"source,omitempty"`
	SourceID              *string         `bson:"source_id,omitempty"`
	CreatedAt             time.Time       `bson:"created_at"`
	UpdatedAt             time.Time       `bson:"updated_at"`
}

type MedicationEntryType string

const (
	EntryInstruction MedicationEntryType = "INSTRUCTION"
	EntryAction      MedicationEntryType = "ACTION"
)

// Medication is a medication order, prescription, or administration record.
// RxClaimID is an opaque reference into the claims system.
type Medication struct {
	ID                    uuid.UUID           `bson:"_id"`
	CompositionID         *uuid.UUID          `bson:"composition_id,omitempty"`
	MemberID              uuid.UUID           `bson:"member_id"`
	ArchetypeID           string              `bson:"archetype_id"`
	EntryType             MedicationEntryType `bson:"entry_type"`
	MedicationName        string              `bson:"medication_name"`
	MedicationCode        *string             `bson:"medication_code,omitempty"`
	MedicationCodeSystem  *string             `bson:"medication_code_system,omitempty"`
	MedicationCodeDisplay *string             `bson:"medication_code_display,omitempty"`
	Status                string              `bson:"status"`
	Intent                *string             `bson:"intent,omitempty"`
	Category              *string             `bson:"category,omitempty"`
	DosageText            *string             `bson:"dosage_text,omitempty"`
	DoseQuantity          *decimal.Decimal    `bson:"dose_quantity,omitempty"`
	DoseUnit              *string             `bson:"dose_unit,omitempty"`
	Route                 *string             `bson:"route,omitempty"`
	RouteCode             *string             `bson:"route_code,omitempty"`
	FrequencyText         *string             `bson:"frequency_text,omitempty"`
	FrequencyPeriod       *decimal.Decimal    `bson:"frequency_period,omitempty"`
	FrequencyPeriodUnit   *string             `bson:"frequency_period_unit,omitempty"`
	AsNeeded              *bool               `bson:"as_needed,omitempty"`
	AsNeededReason        *string             `bson:"as_needed_reason,omitempty"`
	StartDate             *time.Time          `bson:"start_date,omitempty"`
	EndDate               *time.Time          `bson:"end_date,omitempty"`
	AuthoredOn            time.Time           `bson:"authored_on"`
	PrescriberID          *string             `bson:"prescriber_id,omitempty"`
	PrescriberName        *string             `bson:"prescriber_name,omitempty"`
	DispenseQuantity      *decimal.Decimal    `bson:"dispense_quantity,omitempty"`
	DispenseUnit          *string             `bson:"dispense_unit,omitempty"`
	RefillsAllowed        *int32              `bson:"refills_allowed,omitempty"`
	SubstitutionAllowed   *bool               `bson:"substitution_allowed,omitempty"`
	ReasonCode            *string             `bson:"reason_code,omitempty"`
	ReasonText            *string             `bson:"reason_text,omitempty"`
	ClinicalNote          *string             `bson:"clinical_note,omitempty"`
	FHIRMedicationID      *string             `bson:"fhir_medication_id,omitempty"`
	RxClaimID             *uuid.UUID          `bson:"rx_claim_id,omitempty"`
	Source                *string             `bson:"source,omitempty"`
	SourceID              *string             `bson:"source_id,omitempty"`
	CreatedAt             time.Time           `bson:"created_at"`
	UpdatedAt             time.Time           `bson:"updated_at"`
}

type VitalType string

const (
	VitalBloodPressure    VitalType = "BLOOD_PRESSURE"
	VitalPulse            VitalType = "PULSE"
	VitalTemperature      VitalType = "TEMPERATURE"
	VitalRespiratoryRate  VitalType = "RESPIRATORY_RATE"
	VitalOxygenSaturation VitalType = "OXYGEN_SATURATION"
	VitalHeight           VitalType = "HEIGHT"
	VitalWeight           VitalType = "WEIGHT"
	VitalBMI              VitalType = "BMI"
)

// VitalSign is a single vital sign observation.
type VitalSign struct {
	ID                uuid.UUID        `bson:"_id"`
	CompositionID     *uuid.UUID       `bson:"composition_id,omitempty"`
	MemberID          uuid.UUID        `bson:"member_id"`
	ArchetypeID       string           `bson:"archetype_id"`
	VitalType         VitalType        `bson:"vital_type"`
	VitalCode         *string          `bson:"vital_code,omitempty"`
	VitalCodeSystem   *string          `bson:"vital_code_system,omitempty"`
	VitalCodeDisplay  *string          `bson:"vital_code_display,omitempty"`
	Status            string           `bson:"status"`
	EffectiveDatetime time.Time        `bson:"effective_datetime"`
	ValueQuantity     *decimal.Decimal `bson:"value_quantity,omitempty"`
	ValueUnit         *string          `bson:"value_unit,omitempty"`
	ValueSystolic     *decimal.Decimal `bson:"value_systolic,omitempty"`
	ValueDiastolic    *decimal.Decimal `bson:"value_diastolic,omitempty"`
	ValueText         *string          `bson:"value_text,omitempty"`
	Interpretation    *string          `bson:"interpretation,omitempty"`
	BodySite          *string          `bson:"body_site,omitempty"`
	BodySiteCode      *string          `bson:"body_site_code,omitempty"`
	Method            *string          `bson:"method,omitempty"`
	Device            *string          `bson:"device,omitempty"`
	PerformerID       *string          `bson:"performer_id,omitempty"`
	PerformerName     *string          `bson:"performer_name,omitempty"`
	EncounterID       *uuid.UUID       `bson:"encounter_id,omitempty"`
	ClinicalNote      *string          `bson:"clinical_note,omitempty"`
	FHIRObservationID *string          `bson:"fhir_observation_id,omitempty"`
	Source            *string          `bson:"source,omitempty"`
	SourceID          *string          `bson:"source_id,omitempty"`
	CreatedAt         time.Time        `bson:"created_at"`
	UpdatedAt         time.Time        `bson:"updated_at"`
}

// LabResult is a laboratory test result. MedicalClaimID is an opaque
// reference into the claims system.
type LabResult struct {
	ID                   uuid.UUID        `bson:"_id"`
	CompositionID        *uuid.UUID       `bson:"composition_id,omitempty"`
	MemberID             uuid.UUID        `bson:"member_id"`
	DiagnosticReportID   *uuid.UUID       `bson:"diagnostic_report_id,omitempty"`
	ArchetypeID          string           `bson:"archetype_id"`
	TestName             string           `bson:"test_name"`
	TestCode             *string          `bson:"test_code,omitempty"`
	TestCodeSystem       *string          `bson:"test_code_system,omitempty"`
	TestCodeDisplay      *string          `bson:"test_code_display,omitempty"`
	Category             *string          `bson:"category,omitempty"`
	Status               string           `bson:"status"`
	EffectiveDatetime    time.Time        `bson:"effective_datetime"`
	Issued               *time.Time       `bson:"issued,omitempty"`
	ValueQuantity        *decimal.Decimal `bson:"value_quantity,omitempty"`
	ValueUnit            *string          `bson:"value_unit,omitempty"`
	ValueString          *string          `bson:"value_string,omitempty"`
	ValueCodeableConcept *string          `bson:"value_codeable_concept,omitempty"`
	ValueCodeableSystem  *string          `bson:"value_codeable_system,omitempty"`
	ReferenceRangeLow    *decimal.Decimal `bson:"reference_range_low,omitempty"`
	ReferenceRangeHigh   *decimal.Decimal `bson:"reference_range_high,omitempty"`
	ReferenceRangeText   *string          `bson:"reference_range_text,omitempty"`
	Interpretation       *string          `bson:"interpretation,omitempty"`
	SpecimenType         *string          `bson:"specimen_type,omitempty"`
	SpecimenCode         *string          `bson:"specimen_code,omitempty"`
	PerformingLab        *string          `bson:"performing_lab,omitempty"`
	PerformingLabID      *string          `bson:"performing_lab_id,omitempty"`
	OrderingProviderID   *string          `bson:"ordering_provider_id,omitempty"`
	EncounterID          *uuid.UUID       `bson:"encounter_id,omitempty"`
	ClinicalNote         *string          `bson:"clinical_note,omitempty"`
	FHIRObservationID    *string          `bson:"fhir_observation_id,omitempty"`
	MedicalClaimID       *uuid.UUID       `bson:"medical_claim_id,omitempty"`
	Source               *string          `bson:"source,omitempty"`
	SourceID             *string          `bson:"source_id,omitempty"`
	CreatedAt            time.Time        `bson:"created_at"`
	UpdatedAt            time.Time        `bson:"updated_at"`
}

// ProcedureRecord is a clinical procedure performed on the member.
type ProcedureRecord struct {
	ID                   uuid.UUID  `bson:"_id"`
	CompositionID        *uuid.UUID `bson:"composition_id,omitempty"`
	MemberID             uuid.UUID  `bson:"member_id"`
	ArchetypeID          string     `bson:"archetype_id"`
	ProcedureName        string     `bson:"procedure_name"`
	ProcedureCode        *string    `bson:"procedure_code,omitempty"`
	ProcedureCodeSystem  *string    `bson:"procedure_code_system,omitempty"`
	ProcedureCodeDisplay *string    `bson:"procedure_code_display,omitempty"`
	Status               string     `bson:"status"`
	StatusReason         *string    `bson:"status_reason,omitempty"`
	Category             *string    `bson:"category,omitempty"`
	PerformedDatetime    *time.Time `bson:"performed_datetime,omitempty"`
	PerformedPeriodStart *time.Time `bson:"performed_period_start,omitempty"`
	PerformedPeriodEnd   *time.Time `bson:"performed_period_end,omitempty"`
	BodySite             *string    `bson:"body_site,omitempty"`
	BodySiteCode         *string    `bson:"body_site_code,omitempty"`
	Laterality           *string    `bson:"laterality,omitempty"`
	PerformerID          *string    `bson:"performer_id,omitempty"`
	PerformerName        *string    `bson:"performer_name,omitempty"`
	PerformerRole        *string    `bson:"performer_role,omitempty"`
	LocationID           *string    `bson:"location_id,omitempty"`
	LocationName         *string    `bson:"location_name,omitempty"`
	EncounterID          *uuid.UUID `bson:"encounter_id,omitempty"`
	ReasonCode           *string    `bson:"reason_code,omitempty"`
	ReasonText           *string    `bson:"reason_text,omitempty"`
	Outcome              *string    `bson:"outcome,omitempty"`
	Complication         *string    `bson:"complication,omitempty"`
	ClinicalNote         *string    `bson:"clinical_note,omitempty"`
	FHIRProcedureID      *string    `bson:"fhir_procedure_id,omitempty"`
	MedicalClaimID       *uuid.UUID `bson:"medical_claim_id,omitempty"`
	Source               *string    `bson:"source,omitempty"`
	SourceID             *string    `bson:"source_id,omitempty"`
	CreatedAt            time.Time  `bson:"created_at"`
	UpdatedAt            time.Time  `bson:"updated_at"`
}

// Immunization is a vaccination record.
type Immunization struct {
	ID                 uuid.UUID        `bson:"_id"`
	CompositionID      *uuid.UUID       `bson:"composition_id,omitempty"`
	MemberID           uuid.UUID        `bson:"member_id"`
	ArchetypeID        string           `bson:"archetype_id"`
	VaccineName        string           `bson:"vaccine_name"`
	VaccineCode        *string          `bson:"vaccine_code,omitempty"`
	VaccineCodeSystem  *string          `bson:"vaccine_code_system,omitempty"`
	VaccineCodeDisplay *string          `bson:"vaccine_code_display,omitempty"`
	Status             string           `bson:"status"`
	StatusReason       *string          `bson:"status_reason,omitempty"`
	OccurrenceDatetime time.Time        `bson:"occurrence_datetime"`
	RecordedDate       *time.Time       `bson:"recorded_date,omitempty"`
	PrimarySource      *bool            `bson:"primary_source,omitempty"`
	ReportOrigin       *string          `bson:"report_origin,omitempty"`
	LotNumber          *string          `bson:"lot_number,omitempty"`
	ExpirationDate     *time.Time       `bson:"expiration_date,omitempty"`
	Site               *string          `bson:"site,omitempty"`
	SiteCode           *string          `bson:"site_code,omitempty"`
	Route              *string          `bson:"route,omitempty"`
	RouteCode          *string          `bson:"route_code,omitempty"`
	DoseQuantity       *decimal.Decimal `bson:"dose_quantity,omitempty"`
	DoseUnit           *string          `bson:"dose_unit,omitempty"`
	PerformerID        *string          `bson:"performer_id,omitempty"`
	PerformerName      *string          `bson:"performer_name,omitempty"`
	LocationID         *string          `bson:"location_id,omitempty"`
	EncounterID        *uuid.UUID       `bson:"encounter_id,omitempty"`
	ClinicalNote       *string          `bson:"clinical_note,omitempty"`
	FHIRImmunizationID *string          `bson:"fhir_immunization_id,omitempty"`
	Source             *string          `bson:"source,omitempty"`
	SourceID           *string          `bson:"source_id,omitempty"`
	CreatedAt          time.Time        `bson:"created_at"`
	UpdatedAt          time.Time        `bson:"updated_at"`
}

// ClinicalNote is a clinical narrative or document.
type ClinicalNote struct {
	ID               uuid.UUID  `bson:"_id"`
	CompositionID    *uuid.UUID `bson:"composition_id,omitempty"`
	MemberID         uuid.UUID  `bson:"member_id"`
	ArchetypeID      string     `bson:"archetype_id"`
	DocumentType     string     `bson:"document_type"`
	DocumentTypeCode *string    `bson:"document_type_code,omitempty"`
	DocumentStatus   string     `bson:"document_status"`
	DocStatus        *string    `bson:"doc_status,omitempty"`
	Title            *string    `bson:"title,omitempty"`
	ContentText      *string    `bson:"content_text,omitempty"`
	ContentFormat    *string    `bson:"content_format,omitempty"`
	ContentURL       *string    `bson:"content_url,omitempty"`
	ContentSize      *int32     `bson:"content_size,omitempty"`
	ContentHash      *string    `bson:"content_hash,omitempty"`
	CreatedDatetime  time.Time  `bson:"created_datetime"`
	AuthorID         *string    `bson:"author_id,omitempty"`
	AuthorName       *string    `bson:"author_name,omitempty"`
	AuthenticatorID  *string    `bson:"authenticator_id,omitempty"`
	CustodianID      *string    `bson:"custodian_id,omitempty"`
	EncounterID      *uuid.UUID `bson:"encounter_id,omitempty"`
	ClinicalContext  *string    `bson:"clinical_context,omitempty"`
	FHIRDocumentID   *string    `bson:"fhir_document_id,omitempty"`
	Source           *string    `bson:"source,omitempty"`
	SourceID         *string    `bson:"source_id,omitempty"`
	CreatedAt        time.Time  `bson:"created_at"`
	UpdatedAt        time.Time  `bson:"updated_at"`
}

// Goal is one target on a care plan.
type Goal struct {
	Description *string    `bson:"description,omitempty"`
	TargetDate  *time.Time `bson:"target_date,omitempty"`
	Status      *string    `bson:"status,omitempty"`
}

// Activity is one planned activity on a care plan.
type Activity struct {
	Description   *string    `bson:"description,omitempty"`
	Status        *string    `bson:"status,omitempty"`
	ScheduledDate *time.Time `bson:"scheduled_date,omitempty"`
}

// CarePlan is a care or treatment plan with goals and activities.
type CarePlan struct {
	ID                  uuid.UUID   `bson:"_id"`
	CompositionID       *uuid.UUID  `bson:"composition_id,omitempty"`
	MemberID            uuid.UUID   `bson:"member_id"`
	ArchetypeID         string      `bson:"archetype_id"`
	PlanTitle           string      `bson:"plan_title"`
	PlanDescription     *string     `bson:"plan_description,omitempty"`
	Status              string      `bson:"status"`
	Intent              string      `bson:"intent"`
	Category            *string     `bson:"category,omitempty"`
	PeriodStart         *time.Time  `bson:"period_start,omitempty"`
	PeriodEnd           *time.Time  `bson:"period_end,omitempty"`
	CreatedDatetime     time.Time   `bson:"created_datetime"`
	AuthorID            *string     `bson:"author_id,omitempty"`
	AuthorName          *string     `bson:"author_name,omitempty"`
	ContributorIDs      []string    `bson:"contributor_ids,omitempty"`
	AddressesConditions []uuid.UUID `bson:"addresses_conditions,omitempty"`
	Goals               []Goal      `bson:"goals,omitempty"`
	Activities          []Activity  `bson:"activities,omitempty"`
	EncounterID         *uuid.UUID  `bson:"encounter_id,omitempty"`
	ClinicalNote        *string     `bson:"clinical_note,omitempty"`
	FHIRCarePlanID      *string     `bson:"fhir_careplan_id,omitempty"`
	Source              *string     `bson:"source,omitempty"`
	SourceID            *string     `bson:"source_id,omitempty"`
	CreatedAt           time.Time   `bson:"created_at"`
	UpdatedAt           time.Time   `bson:"updated_at"`
}

// Participant is one participant on an encounter.
type Participant struct {
	ID   *string `bson:"id,omitempty"`
	Role *string `bson:"role,omitempty"`
	Name *string `bson:"name,omitempty"`
}

// EncounterRecord is a clinical encounter, visit, or admission.
// ClinicalAdmissionID is an opaque reference into the clinical system.
type EncounterRecord struct {
	ID                                  uuid.UUID     `bson:"_id"`
	CompositionID                       *uuid.UUID    `bson:"composition_id,omitempty"`
	MemberID                            uuid.UUID     `bson:"member_id"`
	ArchetypeID                         string        `bson:"archetype_id"`
	EncounterClass                      string        `bson:"encounter_class"`
	EncounterClassCode                  *string       `bson:"encounter_class_code,omitempty"`
	EncounterType                       *string       `bson:"encounter_type,omitempty"`
	EncounterTypeCode                   *string       `bson:"encounter_type_code,omitempty"`
	Status                              string        `bson:"status"`
	Priority                            *string       `bson:"priority,omitempty"`
	PeriodStart                         time.Time     `bson:"period_start"`
	PeriodEnd                           *time.Time    `bson:"period_end,omitempty"`
	LengthMinutes                       *int32        `bson:"length_minutes,omitempty"`
	ReasonCode                          *string       `bson:"reason_code,omitempty"`
	ReasonText                          *string       `bson:"reason_text,omitempty"`
	AdmissionSource                     *string       `bson:"admission_source,omitempty"`
	DischargeDisposition                *string       `bson:"discharge_disposition,omitempty"`
	ParticipantIDs                      []Participant `bson:"participant_ids,omitempty"`
	LocationID                          *string       `bson:"location_id,omitempty"`
	LocationName                        *string       `bson:"location_name,omitempty"`
	ServiceProviderID                   *string       `bson:"service_provider_id,omitempty"`
	DiagnosisIDs                        []uuid.UUID   `bson:"diagnosis_ids,omitempty"`
	HospitalizationAdmitSource          *string       `bson:"hospitalization_admit_source,omitempty"`
	HospitalizationDischargeDisposition *string       `bson:"hospitalization_discharge_disposition,omitempty"`
	ClinicalAdmissionID                 *uuid.UUID    `bson:"clinical_admission_id,omitempty"`
	FHIREncounterID                     *string       `bson:"fhir_encounter_id,omitempty"`
	Source                              *string       `bson:"source,omitempty"`
	SourceID                            *string       `bson:"source_id,omitempty"`
	CreatedAt                           time.Time     `bson:"created_at"`
	UpdatedAt                           time.Time     `bson:"updated_at"`
}

type ProvenanceActivity string

const (
	ActivityCreate ProvenanceActivity = "CREATE"
	ActivityUpdate ProvenanceActivity = "UPDATE"
	ActivityDelete ProvenanceActivity = "DELETE"
	ActivityVerify ProvenanceActivity = "VERIFY"
	ActivitySign   ProvenanceActivity = "SIGN"
)

// Provenance is one append-only audit entry recording who did what to a
// health record entity. Rows are never updated or deleted.
type Provenance struct {
	ID               uuid.UUID          `bson:"_id"`
	TargetType       string             `bson:"target_type"`
	TargetID         uuid.UUID          `bson:"target_id"`
	Recorded         time.Time          `bson:"recorded"`
	OccurredDatetime *time.Time         `bson:"occurred_datetime,omitempty"`
	Activity         ProvenanceActivity `bson:"activity"`
	ActivityCode     *string            `bson:"activity_code,omitempty"`
	Reason           *string            `bson:"reason,omitempty"`
	AgentType        string             `bson:"agent_type"`
	AgentID          string             `bson:"agent_id"`
	AgentName        *string            `bson:"agent_name,omitempty"`
	AgentRole        *string            `bson:"agent_role,omitempty"`
	OnBehalfOfID     *string            `bson:"on_behalf_of_id,omitempty"`
	LocationID       *string            `bson:"location_id,omitempty"`
	Signature        *string            `bson:"signature,omitempty"`
	SignatureType    *string            `bson:"signature_type,omitempty"`
	Policy           *string            `bson:"policy,omitempty"`
	FHIRProvenanceID *string            `bson:"fhir_provenance_id,omitempty"`
	CreatedAt        time.Time          `bson:"created_at"`
}
