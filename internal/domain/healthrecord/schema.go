package healthrecord

import "github.com/wellnecity/edm/internal/schema"

func pk(desc string) schema.Field {
	return schema.Field{Name: "_id", Type: schema.TypeUUID, Required: true, Description: desc}
}

func timestamps() []schema.Field {
	return []schema.Field{
		{Name: "created_at", Type: schema.TypeDate, Required: true, Description: "Record creation timestamp"},
		{Name: "updated_at", Type: schema.TypeDate, Required: true, Description: "Last update timestamp"},
	}
}

func str(name string, maxLen int, desc string) schema.Field {
	return schema.Field{Name: name, Type: schema.TypeString, MaxLength: maxLen, Description: desc}
}

// entryHeader is the shared front matter of every clinical entry: the
// optional composition link, the member, and the openEHR archetype.
func entryHeader() []schema.Field {
	return []schema.Field{
		{Name: "composition_id", Type: schema.TypeUUID, Ref: "health_record_composition",
			Description: "FK to HEALTH_RECORD_COMPOSITION (optional)"},
		{Name: "member_id", Type: schema.TypeUUID, Required: true,
			Description: "Opaque reference to the core member"},
		str("archetype_id", 255, "openEHR archetype ID"),
	}
}

func sourceFields() []schema.Field {
	return []schema.Field{
		str("source", 50, "Source system"),
		str("source_id", 100, "Source record ID"),
	}
}

func requireArchetype(fields []schema.Field) []schema.Field {
	for i := range fields {
		if fields[i].Name == "archetype_id" {
			fields[i].Required = true
		}
	}
	return fields
}

// Collections returns the health-record-domain collection contracts.
func Collections() []schema.Collection {
	return []schema.Collection{
		compositionCollection(),
		problemCollection(),
		allergyCollection(),
		medicationCollection(),
		vitalSignCollection(),
		labResultCollection(),
		procedureRecordCollection(),
		immunizationCollection(),
		clinicalNoteCollection(),
		carePlanCollection(),
		encounterRecordCollection(),
		provenanceCollection(),
	}
}

func compositionCollection() schema.Collection {
	fields := []schema.Field{
		pk("UUID primary key (composition_id)"),
		{Name: "member_id", Type: schema.TypeUUID, Required: true,
			Description: "Opaque reference to the core member"},
		{Name: "employer_id", Type: schema.TypeUUID, Required: true, Ref: "org", Description: "FK to ORG (employer)"},
		{Name: "archetype_id", Type: schema.TypeString, Required: true, MaxLength: 255,
			Description: "openEHR archetype ID (e.g., openEHR-EHR-COMPOSITION.encounter.v1)"},
		str("template_id", 255, "Template ID if using operational template"),
		{Name: "composition_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"ENCOUNTER", "DISCHARGE_SUMMARY", "PROBLEM_LIST", "MEDICATION_LIST", "LAB_REPORT", "VITAL_SIGNS"},
			Description: "Type of composition"},
		{Name: "category", Type: schema.TypeString, Required: true,
			Enum:        []string{"EVENT", "PERSISTENT", "EPISODIC"},
			Description: "openEHR category"},
		{Name: "context_start_time", Type: schema.TypeDate, Required: true, Description: "Start time of clinical context"},
		{Name: "context_end_time", Type: schema.TypeDate, Description: "End time of context"},
		str("context_setting", 100, "Care setting code (home, primary_care, emergency, inpatient)"),
		str("context_location", 255, "Location of care"),
		str("composer_id", 100, "Author/composer identifier"),
		str("composer_name", 255, "Author name"),
		{Name: "language", Type: schema.TypeString, Pattern: "^[a-z]{2}$", Description: "Language code (ISO 639-1)"},
		{Name: "territory", Type: schema.TypeString, Pattern: "^[A-Z]{2}$", Description: "Territory code (ISO 3166-1)"},
		{Name: "version_number", Type: schema.TypeInt, Required: true, Minimum: schema.IntMin(1),
			Description: "Version of this composition (starts at 1)"},
		{Name: "is_current", Type: schema.TypeBool, Required: true, Description: "True if this is the current version"},
		{Name: "preceding_version_id", Type: schema.TypeUUID, Ref: "health_record_composition",
			Description: "FK to previous version"},
		{Name: "status", Type: schema.TypeString, Required: true,
			Enum:        []string{"ACTIVE", "SUPERSEDED", "DELETED"},
			Description: "Composition status"},
		str("fhir_bundle_id", 100, "FHIR Bundle identifier for mapping"),
	}
	fields = append(fields, sourceFields()...)
	return schema.Collection{
		Name:        "health_record_composition",
		Title:       "HEALTH_RECORD_COMPOSITION",
		Description: "Container that groups related clinical entries following the openEHR COMPOSITION pattern",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"member_id"}},
			{Keys: []string{"employer_id"}},
			{Keys: []string{"composition_type"}},
			{Keys: []string{"context_start_time"}},
			{Keys: []string{"status"}},
			{Keys: []string{"is_current"}},
			{Keys: []string{"fhir_bundle_id"}, Sparse: true},
		},
	}
}

func problemCollection() schema.Collection {
	fields := append([]schema.Field{pk("UUID primary key (problem_id)")}, requireArchetype(entryHeader())...)
	fields = append(fields,
		schema.Field{Name: "problem_name", Type: schema.TypeString, Required: true, MaxLength: 500,
			Description: "Problem/diagnosis name (text)"},
		str("problem_code", 20, "ICD-10-CM or SNOMED CT code"),
		str("problem_code_system", 100, "Code system URI (http://hl7.org/fhir/sid/icd-10-cm)"),
		str("problem_code_display", 500, "Code display text"),
		schema.Field{Name: "clinical_status", Type: schema.TypeString, Required: true,
			Enum:        []string{"active", "recurrence", "relapse", "inactive", "remission", "resolved"},
			Description: "Clinical status of the problem"},
		schema.Field{Name: "verification_status", Type: schema.TypeString,
			Enum:        []string{"unconfirmed", "provisional", "differential", "confirmed", "refuted", "entered-in-error"},
			Description: "Verification status"},
		schema.Field{Name: "category", Type: schema.TypeString,
			Enum:        []string{"problem-list-item", "encounter-diagnosis", "health-concern"},
			Description: "Problem category"},
		schema.Field{Name: "severity", Type: schema.TypeString,
			Enum:        []string{"mild", "moderate", "severe"},
			Description: "Problem severity"},
		str("body_site", 255, "Anatomical location"),
		str("body_site_code", 20, "SNOMED body site code"),
		schema.Field{Name: "onset_date", Type: schema.TypeDate, Description: "Date of onset"},
		str("onset_age", 50, "Age at onset (e.g., '45 years')"),
		schema.Field{Name: "abatement_date", Type: schema.TypeDate, Description: "Date resolved/inactive"},
		schema.Field{Name: "recorded_date", Type: schema.TypeDate, Required: true, Description: "When recorded in system"},
		str("recorder_id", 100, "Who recorded (practitioner ID)"),
		str("asserter_id", 100, "Who asserted the condition"),
		schema.Field{Name: "encounter_id", Type: schema.TypeUUID, Ref: "encounter_record", Description: "FK to ENCOUNTER_RECORD"},
		schema.Field{Name: "clinical_note", Type: schema.TypeString, Description: "Additional clinical notes"},
		str("fhir_condition_id", 100, "FHIR Condition identifier"),
	)
	fields = append(fields, sourceFields()...)
	return schema.Collection{
		Name:        "problem",
		Title:       "PROBLEM",
		Description: "Diagnoses, health problems, and clinical conditions",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"member_id"}},
			{Keys: []string{"composition_id"}},
			{Keys: []string{"clinical_status"}},
			{Keys: []string{"problem_code"}},
			{Keys: []string{"recorded_date"}},
			{Keys: []string{"encounter_id"}},
			{Keys: []string{"fhir_condition_id"}, Sparse: true},
		},
	}
}

func allergyCollection() schema.Collection {
	fields := append([]schema.Field{pk("UUID primary key (allergy_id)")}, requireArchetype(entryHeader())...)
	fields = append(fields,
		schema.Field{Name: "substance_name", Type: schema.TypeString, Required: true, MaxLength: 255,
			Description: "Causative agent name"},
		str("substance_code", 50, "RxNorm, SNOMED, or UNII code"),
		str("substance_code_system", 100, "Code system URI"),
		str("substance_code_display", 255, "Code display text"),
		schema.Field{Name: "category", Type: schema.TypeString,
			Enum:        []string{"food", "medication", "environment", "biologic"},
			Description: "Allergy category"},
		schema.Field{Name: "allergy_type", Type: schema.TypeString,
			Enum:        []string{"allergy", "intolerance"},
			Description: "Allergy vs intolerance"},
		schema.Field{Name: "criticality", Type: schema.TypeString,
			Enum:        []string{"low", "high", "unable-to-assess"},
			Description: "Criticality assessment"},
		schema.Field{Name: "clinical_status", Type: schema.TypeString, Required: true,
			Enum:        []string{"active", "inactive", "resolved"},
			Description: "Clinical status"},
		schema.Field{Name: "verification_status", Type: schema.TypeString,
			Enum:        []string{"unconfirmed", "presumed", "confirmed", "refuted", "entered-in-error"},
			Description: "Verification status"},
		schema.Field{Name: "onset_date", Type: schema.TypeDate, Description: "When allergy began"},
		schema.Field{Name: "recorded_date", Type: schema.TypeDate, Required: true, Description: "When recorded in system"},
		str("recorder_id", 100, "Who recorded"),
		str("asserter_id", 100, "Who asserted"),
		schema.Field{Name: "last_occurrence", Type: schema.TypeDate, Description: "Date of last reaction"},
		schema.Field{Name: "reaction_manifestation", Type: schema.TypeArray,
			Description: "Array of manifestation codes/descriptions",
			Items: &schema.Field{Name: "manifestation", Type: schema.TypeObject, Properties: []schema.Field{
				{Name: "code", Type: schema.TypeString},
				{Name: "system", Type: schema.TypeString},
				{Name: "display", Type: schema.TypeString},
				{Name: "text", Type: schema.TypeString},
			}}},
		schema.Field{Name: "reaction_severity", Type: schema.TypeString,
			Enum:        []string{"mild", "moderate", "severe"},
			Description: "Reaction severity"},
		str("reaction_onset", 50, "Onset timing of reaction"),
		schema.Field{Name: "reaction_description", Type: schema.TypeString, Description: "Narrative description of reaction"},
		str("reaction_exposure_route", 100, "Route of exposure"),
		schema.Field{Name: "clinical_note", Type: schema.TypeString, Description: "Additional notes"},
		str("fhir_allergy_id", 100, "FHIR AllergyIntolerance identifier"),
	)
	fields = append(fields, sourceFields()...)
	return schema.Collection{
		Name:        "allergy",
		Title:       "ALLERGY",
		Description: "Allergies, intolerances, and adverse reaction risks",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"member_id"}},
			{Keys: []string{"composition_id"}},
			{Keys: []string{"clinical_status"}},
			{Keys: []string{"substance_code"}},
			{Keys: []string{"category"}},
			{Keys: []string{"criticality"}},
			{Keys: []string{"fhir_allergy_id"}, Sparse: true},
		},
	}
}

func medicationCollection() schema.Collection {
	fields := append([]schema.Field{pk("UUID primary key (medication_id)")}, requireArchetype(entryHeader())...)
	fields = append(fields,
		schema.Field{Name: "entry_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"INSTRUCTION", "ACTION"},
			Description: "INSTRUCTION (order) or ACTION (administration)"},
		schema.Field{Name: "medication_name", Type: schema.TypeString, Required: true, MaxLength: 500,
			Description: "Medication name (generic or brand)"},
		str("medication_code", 20, "NDC or RxNorm code"),
		str("medication_code_system", 100, "Code system URI"),
		str("medication_code_display", 500, "Code display text"),
		schema.Field{Name: "status", Type: schema.TypeString, Required: true,
			Enum:        []string{"active", "completed", "cancelled", "stopped", "on-hold", "draft", "entered-in-error"},
			Description: "Medication status"},
		schema.Field{Name: "intent", Type: schema.TypeString,
			Enum:        []string{"order", "plan", "proposal", "instance-order"},
			Description: "Medication intent"},
		schema.Field{Name: "category", Type: schema.TypeString,
			Enum:        []string{"inpatient", "outpatient", "community", "discharge"},
			Description: "Medication category"},
		str("dosage_text", 500, "Free-text dosage instructions"),
		schema.Field{Name: "dose_quantity", Type: schema.TypeDecimal, Description: "Dose amount"},
		str("dose_unit", 50, "Dose unit (mg, ml, tablet, etc.)"),
		str("route", 100, "Administration route (oral, IV, topical, etc.)"),
		str("route_code", 20, "SNOMED route code"),
		str("frequency_text", 100, "Frequency description (BID, TID, PRN)"),
		schema.Field{Name: "frequency_period", Type: schema.TypeDecimal, Description: "Frequency period value"},
		str("frequency_period_unit", 20, "Frequency period unit (h, d, wk)"),
		schema.Field{Name: "as_needed", Type: schema.TypeBool, Description: "PRN flag"},
		str("as_needed_reason", 255, "PRN reason"),
		schema.Field{Name: "start_date", Type: schema.TypeDate, Description: "Medication start date"},
		schema.Field{Name: "end_date", Type: schema.TypeDate, Description: "Medication end date"},
		schema.Field{Name: "authored_on", Type: schema.TypeDate, Required: true, Description: "When prescribed/ordered"},
		str("prescriber_id", 100, "Prescriber NPI or identifier"),
		str("prescriber_name", 255, "Prescriber name"),
		schema.Field{Name: "dispense_quantity", Type: schema.TypeDecimal, Description: "Quantity to dispense"},
		str("dispense_unit", 50, "Dispense unit"),
		schema.Field{Name: "refills_allowed", Type: schema.TypeInt, Description: "Number of refills"},
		schema.Field{Name: "substitution_allowed", Type: schema.TypeBool, Description: "Generic substitution allowed"},
		str("reason_code", 20, "Reason for medication (ICD-10)"),
		str("reason_text", 500, "Reason description"),
		schema.Field{Name: "clinical_note", Type: schema.TypeString, Description: "Additional notes"},
		str("fhir_medication_id", 100, "FHIR MedicationRequest identifier"),
		schema.Field{Name: "rx_claim_id", Type: schema.TypeUUID, Description: "Opaque reference to the pharmacy claim"},
	)
	fields = append(fields, sourceFields()...)
	return schema.Collection{
		Name:        "medication",
		Title:       "MEDICATION",
		Description: "Medication orders, prescriptions, and administration records",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"member_id"}},
			{Keys: []string{"composition_id"}},
			{Keys: []string{"status"}},
			{Keys: []string{"medication_code"}},
			{Keys: []string{"entry_type"}},
			{Keys: []string{"authored_on"}},
			{Keys: []string{"rx_claim_id"}},
			{Keys: []string{"fhir_medication_id"}, Sparse: true},
		},
	}
}

func vitalSignCollection() schema.Collection {
	fields := append([]schema.Field{pk("UUID primary key (vital_sign_id)")}, requireArchetype(entryHeader())...)
	fields = append(fields,
		schema.Field{Name: "vital_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"BLOOD_PRESSURE", "PULSE", "TEMPERATURE", "RESPIRATORY_RATE", "OXYGEN_SATURATION", "HEIGHT", "WEIGHT", "BMI"},
			Description: "Type of vital sign"},
		str("vital_code", 20, "LOINC code"),
		str("vital_code_system", 100, "Code system (http://loinc.org)"),
		str("vital_code_display", 255, "Code display text"),
		schema.Field{Name: "status", Type: schema.TypeString, Required: true,
			Enum:        []string{"registered", "preliminary", "final", "amended", "corrected", "cancelled", "entered-in-error"},
			Description: "Observation status"},
		schema.Field{Name: "effective_datetime", Type: schema.TypeDate, Required: true, Description: "When measured"},
		schema.Field{Name: "value_quantity", Type: schema.TypeDecimal, Description: "Primary numeric value"},
		str("value_unit", 30, "Unit of measure"),
		schema.Field{Name: "value_systolic", Type: schema.TypeDecimal, Description: "Systolic BP (mmHg)"},
		schema.Field{Name: "value_diastolic", Type: schema.TypeDecimal, Description: "Diastolic BP (mmHg)"},
		str("value_text", 255, "Text value if non-numeric"),
		str("interpretation", 50, "N (normal), H (high), L (low), HH, LL, etc."),
		str("body_site", 100, "Body site of measurement"),
		str("body_site_code", 20, "SNOMED body site code"),
		str("method", 100, "Method of measurement"),
		str("device", 255, "Device used"),
		str("performer_id", 100, "Who performed measurement"),
		str("performer_name", 255, "Performer name"),
		schema.Field{Name: "encounter_id", Type: schema.TypeUUID, Ref: "encounter_record", Description: "FK to ENCOUNTER_RECORD"},
		schema.Field{Name: "clinical_note", Type: schema.TypeString, Description: "Additional notes"},
		str("fhir_observation_id", 100, "FHIR Observation identifier"),
	)
	fields = append(fields, sourceFields()...)
	return schema.Collection{
		Name:        "vital_sign",
		Title:       "VITAL_SIGN",
		Description: "Vital sign observations (BP, pulse, temperature, etc.)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"member_id"}},
			{Keys: []string{"composition_id"}},
			{Keys: []string{"vital_type"}},
			{Keys: []string{"effective_datetime"}},
			{Keys: []string{"status"}},
			{Keys: []string{"encounter_id"}},
			{Keys: []string{"fhir_observation_id"}, Sparse: true},
		},
	}
}

func labResultCollection() schema.Collection {
	fields := append([]schema.Field{pk("UUID primary key (lab_result_id)")}, requireArchetype(entryHeader())...)
	fields = append(fields,
		schema.Field{Name: "diagnostic_report_id", Type: schema.TypeUUID,
			Description: "Parent DiagnosticReport (for panel results)"},
		schema.Field{Name: "test_name", Type: schema.TypeString, Required: true, MaxLength: 500, Description: "Test name"},
		str("test_code", 20, "LOINC code"),
		str("test_code_system", 100, "Code system URI"),
		str("test_code_display", 500, "Code display text"),
		str("category", 50, "Laboratory category (chemistry, hematology, etc.)"),
		schema.Field{Name: "status", Type: schema.TypeString, Required: true,
			Enum:        []string{"registered", "preliminary", "final", "amended", "corrected", "cancelled", "entered-in-error"},
			Description: "Result status"},
		schema.Field{Name: "effective_datetime", Type: schema.TypeDate, Required: true, Description: "Specimen collection time"},
		schema.Field{Name: "issued", Type: schema.TypeDate, Description: "Result issue time"},
		schema.Field{Name: "value_quantity", Type: schema.TypeDecimal, Description: "Numeric result value"},
		str("value_unit", 50, "Result unit"),
		str("value_string", 1000, "String result"),
		str("value_codeable_concept", 100, "Coded result"),
		str("value_codeable_system", 100, "Coded result system"),
		schema.Field{Name: "reference_range_low", Type: schema.TypeDecimal, Description: "Low normal value"},
		schema.Field{Name: "reference_range_high", Type: schema.TypeDecimal, Description: "High normal value"},
		str("reference_range_text", 255, "Reference range as text"),
		str("interpretation", 50, "N, H, L, HH, LL, A (abnormal), AA, etc."),
		str("specimen_type", 100, "Specimen type (blood, urine, etc.)"),
		str("specimen_code", 20, "SNOMED specimen code"),
		str("performing_lab", 255, "Performing laboratory name"),
		str("performing_lab_id", 100, "Lab identifier (CLIA, etc.)"),
		str("ordering_provider_id", 100, "Ordering provider NPI"),
		schema.Field{Name: "encounter_id", Type: schema.TypeUUID, Ref: "encounter_record", Description: "FK to ENCOUNTER_RECORD"},
		schema.Field{Name: "clinical_note", Type: schema.TypeString, Description: "Comments/notes"},
		str("fhir_observation_id", 100, "FHIR Observation identifier"),
		schema.Field{Name: "medical_claim_id", Type: schema.TypeUUID, Description: "Opaque reference to the medical claim"},
	)
	fields = append(fields, sourceFields()...)
	return schema.Collection{
		Name:        "lab_result",
		Title:       "LAB_RESULT",
		Description: "Laboratory test results and diagnostic observations",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"member_id"}},
			{Keys: []string{"composition_id"}},
			{Keys: []string{"test_code"}},
			{Keys: []string{"effective_datetime"}},
			{Keys: []string{"status"}},
			{Keys: []string{"diagnostic_report_id"}},
			{Keys: []string{"encounter_id"}},
			{Keys: []string{"medical_claim_id"}},
			{Keys: []string{"fhir_observation_id"}, Sparse: true},
		},
	}
}

func procedureRecordCollection() schema.Collection {
	fields := append([]schema.Field{pk("UUID primary key (procedure_record_id)")}, requireArchetype(entryHeader())...)
	fields = append(fields,
		schema.Field{Name: "procedure_name", Type: schema.TypeString, Required: true, MaxLength: 500, Description: "Procedure name"},
		str("procedure_code", 20, "CPT, SNOMED, or ICD-10-PCS code"),
		str("procedure_code_system", 100, "Code system URI"),
		str("procedure_code_display", 500, "Code display text"),
		schema.Field{Name: "status", Type: schema.TypeString, Required: true,
			Enum:        []string{"preparation", "in-progress", "not-done", "on-hold", "stopped", "completed", "entered-in-error", "unknown"},
			Description: "Procedure status"},
		str("status_reason", 255, "Reason for status (especially if not-done)"),
		str("category", 50, "Procedure category"),
		schema.Field{Name: "performed_datetime", Type: schema.TypeDate, Description: "When performed (point in time)"},
		schema.Field{Name: "performed_period_start", Type: schema.TypeDate, Description: "Start of procedure"},
		schema.Field{Name: "performed_period_end", Type: schema.TypeDate, Description: "End of procedure"},
		str("body_site", 255, "Body site"),
		str("body_site_code", 20, "SNOMED body site code"),
		schema.Field{Name: "laterality", Type: schema.TypeString,
			Enum:        []string{"left", "right", "bilateral"},
			Description: "Laterality"},
		str("performer_id", 100, "Primary performer NPI"),
		str("performer_name", 255, "Performer name"),
		str("performer_role", 100, "Performer role (surgeon, assistant, etc.)"),
		str("location_id", 100, "Where performed"),
		str("location_name", 255, "Location name"),
		schema.Field{Name: "encounter_id", Type: schema.TypeUUID, Ref: "encounter_record", Description: "FK to ENCOUNTER_RECORD"},
		str("reason_code", 20, "Reason code (ICD-10)"),
		str("reason_text", 500, "Reason description"),
		str("outcome", 255, "Procedure outcome"),
		str("complication", 500, "Complications"),
		schema.Field{Name: "clinical_note", Type: schema.TypeString, Description: "Additional notes"},
		str("fhir_procedure_id", 100, "FHIR Procedure identifier"),
		schema.Field{Name: "medical_claim_id", Type: schema.TypeUUID, Description: "Opaque reference to the medical claim"},
	)
	fields = append(fields, sourceFields()...)
	return schema.Collection{
		Name:        "procedure_record",
		Title:       "PROCEDURE_RECORD",
		Description: "Clinical procedures performed on the patient",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"member_id"}},
			{Keys: []string{"composition_id"}},
			{Keys: []string{"procedure_code"}},
			{Keys: []string{"performed_datetime"}},
			{Keys: []string{"status"}},
			{Keys: []string{"encounter_id"}},
			{Keys: []string{"medical_claim_id"}},
			{Keys: []string{"fhir_procedure_id"}, Sparse: true},
		},
	}
}

func immunizationCollection() schema.Collection {
	fields := append([]schema.Field{pk("UUID primary key (immunization_id)")}, requireArchetype(entryHeader())...)
	fields = append(fields,
		schema.Field{Name: "vaccine_name", Type: schema.TypeString, Required: true, MaxLength: 500,
			Description: "Vaccine product name"},
		str("vaccine_code", 20, "CVX code"),
		str("vaccine_code_system", 100, "Code system (http://hl7.org/fhir/sid/cvx)"),
		str("vaccine_code_display", 500, "Code display text"),
		schema.Field{Name: "status", Type: schema.TypeString, Required: true,
			Enum:        []string{"completed", "entered-in-error", "not-done"},
			Description: "Immunization status"},
		str("status_reason", 255, "Reason if not-done"),
		schema.Field{Name: "occurrence_datetime", Type: schema.TypeDate, Required: true, Description: "When administered"},
		schema.Field{Name: "recorded_date", Type: schema.TypeDate, Description: "When recorded in system"},
		schema.Field{Name: "primary_source", Type: schema.TypeBool, Description: "True if from administering provider"},
		str("report_origin", 100, "Source of reported immunization"),
		str("lot_number", 50, "Vaccine lot number"),
		schema.Field{Name: "expiration_date", Type: schema.TypeDate, Description: "Vaccine expiration date"},
		str("site", 100, "Body site of administration"),
		str("site_code", 20, "SNOMED site code"),
		str("route", 100, "Administration route"),
		str("route_code", 20, "SNOMED route code"),
		schema.Field{Name: "dose_quantity", Type: schema.TypeDecimal, Description: "Dose amount"},
		str("dose_unit", 50, "Dose unit"),
		str("performer_id", 100, "Administering provider"),
		str("performer_name", 255, "Provider name"),
		str("location_id", 100, "Administration location"),
		schema.Field{Name: "encounter_id", Type: schema.TypeUUID, Ref: "encounter_record", Description: "FK to ENCOUNTER_RECORD"},
		schema.Field{Name: "clinical_note", Type: schema.TypeString, Description: "Additional notes"},
		str("fhir_immunization_id", 100, "FHIR Immunization identifier"),
	)
	fields = append(fields, sourceFields()...)
	return schema.Collection{
		Name:        "immunization",
		Title:       "IMMUNIZATION",
		Description: "Vaccination and immunization records",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"member_id"}},
			{Keys: []string{"composition_id"}},
			{Keys: []string{"vaccine_code"}},
			{Keys: []string{"occurrence_datetime"}},
			{Keys: []string{"status"}},
			{Keys: []string{"encounter_id"}},
			{Keys: []string{"fhir_immunization_id"}, Sparse: true},
		},
	}
}

func clinicalNoteCollection() schema.Collection {
	fields := append([]schema.Field{pk("UUID primary key (clinical_note_id)")}, requireArchetype(entryHeader())...)
	fields = append(fields,
		schema.Field{Name: "document_type", Type: schema.TypeString, Required: true,
			Enum: []string{"progress_note", "discharge_summary", "consultation", "history_physical",
				"procedure_note", "operative_note", "radiology_report", "pathology_report", "other"},
			Description: "Type of clinical document"},
		str("document_type_code", 20, "LOINC document type code"),
		schema.Field{Name: "document_status", Type: schema.TypeString, Required: true,
			Enum:        []string{"current", "superseded", "entered-in-error"},
			Description: "Document status"},
		schema.Field{Name: "doc_status", Type: schema.TypeString,
			Enum:        []string{"preliminary", "final", "amended", "corrected"},
			Description: "Composition status"},
		str("title", 500, "Document title"),
		schema.Field{Name: "content_text", Type: schema.TypeString, Description: "Plain text content"},
		schema.Field{Name: "content_format", Type: schema.TypeString,
			Enum:        []string{"text/plain", "text/html", "application/pdf"},
			Description: "Content format"},
		str("content_url", 1000, "URL to document content"),
		schema.Field{Name: "content_size", Type: schema.TypeInt, Description: "Content size in bytes"},
		str("content_hash", 64, "SHA-256 hash of content"),
		schema.Field{Name: "created_datetime", Type: schema.TypeDate, Required: true, Description: "When document was created"},
		str("author_id", 100, "Author identifier"),
		str("author_name", 255, "Author name"),
		str("authenticator_id", 100, "Authenticator/signer"),
		str("custodian_id", 100, "Custodian organization"),
		schema.Field{Name: "encounter_id", Type: schema.TypeUUID, Ref: "encounter_record", Description: "FK to ENCOUNTER_RECORD"},
		str("clinical_context", 255, "Clinical context"),
		str("fhir_document_id", 100, "FHIR DocumentReference identifier"),
	)
	fields = append(fields, sourceFields()...)
	return schema.Collection{
		Name:        "clinical_note",
		Title:       "CLINICAL_NOTE",
		Description: "Clinical narratives, summaries, and documentation",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"member_id"}},
			{Keys: []string{"composition_id"}},
			{Keys: []string{"document_type"}},
			{Keys: []string{"created_datetime"}},
			{Keys: []string{"document_status"}},
			{Keys: []string{"encounter_id"}},
			{Keys: []string{"fhir_document_id"}, Sparse: true},
		},
	}
}

func carePlanCollection() schema.Collection {
	fields := append([]schema.Field{pk("UUID primary key (care_plan_id)")}, requireArchetype(entryHeader())...)
	fields = append(fields,
		schema.Field{Name: "plan_title", Type: schema.TypeString, Required: true, MaxLength: 500, Description: "Care plan title"},
		schema.Field{Name: "plan_description", Type: schema.TypeString, Description: "Plan description"},
		schema.Field{Name: "status", Type: schema.TypeString, Required: true,
			Enum:        []string{"draft", "active", "on-hold", "revoked", "completed", "entered-in-error", "unknown"},
			Description: "Care plan status"},
		schema.Field{Name: "intent", Type: schema.TypeString, Required: true,
			Enum:        []string{"proposal", "plan", "order", "option"},
			Description: "Care plan intent"},
		str("category", 50, "assess-plan, discharge, longitudinal, etc."),
		schema.Field{Name: "period_start", Type: schema.TypeDate, Description: "Plan start date"},
		schema.Field{Name: "period_end", Type: schema.TypeDate, Description: "Plan end date"},
		schema.Field{Name: "created_datetime", Type: schema.TypeDate, Required: true, Description: "When plan was created"},
		str("author_id", 100, "Author identifier"),
		str("author_name", 255, "Author name"),
		schema.Field{Name: "contributor_ids", Type: schema.TypeArray,
			Description: "Array of contributor identifiers",
			Items:       &schema.Field{Name: "contributor", Type: schema.TypeString}},
		schema.Field{Name: "addresses_conditions", Type: schema.TypeArray,
			Description: "Array of condition IDs this plan addresses",
			Items:       &schema.Field{Name: "condition", Type: schema.TypeUUID}},
		schema.Field{Name: "goals", Type: schema.TypeArray,
			Description: "Array of goal descriptions",
			Items: &schema.Field{Name: "goal", Type: schema.TypeObject, Properties: []schema.Field{
				{Name: "description", Type: schema.TypeString},
				{Name: "target_date", Type: schema.TypeDate},
				{Name: "status", Type: schema.TypeString},
			}}},
		schema.Field{Name: "activities", Type: schema.TypeArray,
			Description: "Array of planned activities",
			Items: &schema.Field{Name: "activity", Type: schema.TypeObject, Properties: []schema.Field{
				{Name: "description", Type: schema.TypeString},
				{Name: "status", Type: schema.TypeString},
				{Name: "scheduled_date", Type: schema.TypeDate},
			}}},
		schema.Field{Name: "encounter_id", Type: schema.TypeUUID, Ref: "encounter_record", Description: "FK to ENCOUNTER_RECORD"},
		schema.Field{Name: "clinical_note", Type: schema.TypeString, Description: "Additional notes"},
		str("fhir_careplan_id", 100, "FHIR CarePlan identifier"),
	)
	fields = append(fields, sourceFields()...)
	return schema.Collection{
		Name:        "care_plan",
		Title:       "CARE_PLAN",
		Description: "Care plans, treatment plans, and goals",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"member_id"}},
			{Keys: []string{"composition_id"}},
			{Keys: []string{"status"}},
			{Keys: []string{"period_start", "period_end"}},
			{Keys: []string{"encounter_id"}},
			{Keys: []string{"fhir_careplan_id"}, Sparse: true},
		},
	}
}

func encounterRecordCollection() schema.Collection {
	fields := append([]schema.Field{pk("UUID primary key (encounter_id)")}, requireArchetype(entryHeader())...)
	fields = append(fields,
		schema.Field{Name: "encounter_class", Type: schema.TypeString, Required: true,
			Enum:        []string{"ambulatory", "emergency", "field", "home", "inpatient", "short-stay", "virtual"},
			Description: "Class of encounter"},
		str("encounter_class_code", 20, "ActCode system code"),
		str("encounter_type", 100, "Specific encounter type"),
		str("encounter_type_code", 20, "SNOMED encounter type code"),
		schema.Field{Name: "status", Type: schema.TypeString, Required: true,
			Enum: []string{"planned", "arrived", "triaged", "in-progress", "onleave", "finished",
				"cancelled", "entered-in-error", "unknown"},
			Description: "Encounter status"},
		str("priority", 30, "Urgency level"),
		schema.Field{Name: "period_start", Type: schema.TypeDate, Required: true, Description: "Encounter start time"},
		schema.Field{Name: "period_end", Type: schema.TypeDate, Description: "Encounter end time"},
		schema.Field{Name: "length_minutes", Type: schema.TypeInt, Description: "Duration in minutes"},
		str("reason_code", 20, "Reason for visit (ICD-10)"),
		str("reason_text", 500, "Reason description"),
		str("admission_source", 100, "Where patient came from"),
		str("discharge_disposition", 100, "Discharge disposition"),
		schema.Field{Name: "participant_ids", Type: schema.TypeArray,
			Description: "Array of participant identifiers",
			Items: &schema.Field{Name: "participant", Type: schema.TypeObject, Properties: []schema.Field{
				{Name: "id", Type: schema.TypeString},
				{Name: "role", Type: schema.TypeString},
				{Name: "name", Type: schema.TypeString},
			}}},
		str("location_id", 100, "Facility/location ID"),
		str("location_name", 255, "Location name"),
		str("service_provider_id", 100, "Service provider organization"),
		schema.Field{Name: "diagnosis_ids", Type: schema.TypeArray,
			Description: "Array of diagnosis/problem IDs",
			Items:       &schema.Field{Name: "diagnosis", Type: schema.TypeUUID}},
		str("hospitalization_admit_source", 100, "Admit source for inpatient"),
		str("hospitalization_discharge_disposition", 100, "Discharge status"),
		schema.Field{Name: "clinical_admission_id", Type: schema.TypeUUID,
			Description: "Opaque reference to the clinical admission"},
		str("fhir_encounter_id", 100, "FHIR Encounter identifier"),
	)
	fields = append(fields, sourceFields()...)
	return schema.Collection{
		Name:        "encounter_record",
		Title:       "ENCOUNTER_RECORD",
		Description: "Clinical encounters, visits, and admissions",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"member_id"}},
			{Keys: []string{"composition_id"}},
			{Keys: []string{"encounter_class"}},
			{Keys: []string{"status"}},
			{Keys: []string{"period_start", "period_end"}},
			{Keys: []string{"clinical_admission_id"}},
			{Keys: []string{"fhir_encounter_id"}, Sparse: true},
		},
	}
}

func provenanceCollection() schema.Collection {
	fields := []schema.Field{
		pk("UUID primary key (provenance_id)"),
		{Name: "target_type", Type: schema.TypeString, Required: true,
			Enum: []string{"HEALTH_RECORD_COMPOSITION", "PROBLEM", "ALLERGY", "MEDICATION", "VITAL_SIGN",
				"LAB_RESULT", "PROCEDURE_RECORD", "IMMUNIZATION", "CLINICAL_NOTE", "CARE_PLAN", "ENCOUNTER_RECORD"},
			Description: "Target entity type"},
		{Name: "target_id", Type: schema.TypeUUID, Required: true, Description: "Target entity ID"},
		{Name: "recorded", Type: schema.TypeDate, Required: true, Description: "When provenance was recorded"},
		{Name: "occurred_datetime", Type: schema.TypeDate, Description: "When the activity occurred"},
		{Name: "activity", Type: schema.TypeString, Required: true,
			Enum:        []string{"CREATE", "UPDATE", "DELETE", "VERIFY", "SIGN"},
			Description: "Activity type"},
		str("activity_code", 20, "Provenance activity code"),
		str("reason", 500, "Reason for activity"),
		{Name: "agent_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"author", "informant", "verifier", "enterer", "performer", "custodian"},
			Description: "Agent type"},
		{Name: "agent_id", Type: schema.TypeString, Required: true, MaxLength: 100,
			Description: "Agent identifier (user ID, system ID)"},
		str("agent_name", 255, "Agent name"),
		str("agent_role", 100, "Agent role"),
		str("on_behalf_of_id", 100, "Acting on behalf of (organization)"),
		str("location_id", 100, "Location of activity"),
		{Name: "signature", Type: schema.TypeString, Description: "Digital signature (if signed)"},
		str("signature_type", 50, "Signature type"),
		str("policy", 500, "Policy/consent reference"),
		str("fhir_provenance_id", 100, "FHIR Provenance identifier"),
		{Name: "created_at", Type: schema.TypeDate, Required: true, Description: "Record creation timestamp"},
	}
	return schema.Collection{
		Name:        "health_record_provenance",
		Title:       "HEALTH_RECORD_PROVENANCE",
		Description: "Audit trail and data lineage tracking for all health record changes",
		Fields:      fields,
		Indexes: []schema.Index{
			{Keys: []string{"target_type", "target_id"}},
			{Keys: []string{"recorded"}},
			{Keys: []string{"agent_id"}},
			{Keys: []string{"activity"}},
			{Keys: []string{"fhir_provenance_id"}, Sparse: true},
		},
	}
}
