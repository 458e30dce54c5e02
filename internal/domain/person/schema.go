package person

import "github.com/wellnecity/edm/internal/schema"

func pk() schema.Field {
	return schema.Field{Name: "_id", Type: schema.TypeUUID, Required: true, Description: "UUID primary key"}
}

func timestamps() []schema.Field {
	return []schema.Field{
		{Name: "created_at", Type: schema.TypeDate, Required: true, Description: "Record creation timestamp"},
		{Name: "updated_at", Type: schema.TypeDate, Required: true, Description: "Record last update timestamp"},
	}
}

func usabilityFields(subject string) []schema.Field {
	return []schema.Field{
		{Name: "usability_status", Type: schema.TypeString, Required: true,
			Enum:        []string{"ACTIVE", "INACTIVE", "ARCHIVED", "KNOWN_ERROR"},
			Description: "Usability status of the " + subject},
		{Name: "usability_status_date", Type: schema.TypeDate, Required: true,
			Description: "Date the usability status was set"},
	}
}

// Collections returns the person-domain collection contracts.
func Collections() []schema.Collection {
	return []schema.Collection{
		personCollection(),
		personIdentifierCollection(),
		personContactCollection(),
		employeeCollection(),
		providerCollection(),
		providerAffiliationCollection(),
		householdCollection(),
		householdParticipantCollection(),
	}
}

func personCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "first_name", Type: schema.TypeString, Required: true, Description: "First name"},
		{Name: "last_name", Type: schema.TypeString, Required: true, Description: "Last name"},
		{Name: "middle_name", Type: schema.TypeString, Description: "Middle name"},
		{Name: "date_of_birth", Type: schema.TypeDate, Description: "Date of birth"},
		{Name: "gender", Type: schema.TypeString,
			Enum:        []string{"MALE", "FEMALE", "OTHER", "UNKNOWN"},
			Description: "Gender"},
		{Name: "is_active", Type: schema.TypeBool, Required: true, Description: "Whether the person is currently active"},
	}
	return schema.Collection{
		Name:        "person",
		Title:       "PERSON",
		Description: "Base entity for all individuals (employees, members, dependents, providers)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"last_name", "first_name"}},
			{Keys: []string{"date_of_birth"}},
			{Keys: []string{"is_active"}},
		},
	}
}

func personIdentifierCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "person_id", Type: schema.TypeUUID, Required: true, Ref: "person", Description: "FK to PERSON"},
		{Name: "identifier_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"SSN", "MRN", "MEMBER_ID", "EMPLOYEE_ID", "NPI", "DRIVERS_LICENSE", "PASSPORT", "OTHER"},
			Description: "Type of identifier"},
		{Name: "identifier_value", Type: schema.TypeString, Required: true, Description: "The identifier value"},
		{Name: "issuing_authority", Type: schema.TypeString, Description: "Organization or system that issued the ID"},
		{Name: "issue_date", Type: schema.TypeDate, Description: "Date the identifier was issued"},
		{Name: "expiration_date", Type: schema.TypeDate, Description: "Date the identifier expires"},
	}
	fields = append(fields, usabilityFields("identifier")...)
	fields = append(fields, schema.Field{Name: "is_primary", Type: schema.TypeBool, Description: "Whether this is the primary identifier of its type"})
	return schema.Collection{
		Name:        "person_identifier",
		Title:       "PERSON_IDENTIFIER",
		Description: "Identifier for a PERSON (SSN, MRN, Member ID, etc.) with usability status",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"person_id"}},
			{Keys: []string{"person_id", "identifier_type"}},
			{Keys: []string{"identifier_type", "identifier_value"}},
			{Keys: []string{"usability_status"}},
		},
	}
}

func personContactCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "person_id", Type: schema.TypeUUID, Required: true, Ref: "person", Description: "FK to PERSON"},
		{Name: "contact_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"EMAIL", "PHONE", "ADDRESS"},
			Description: "Type of contact information"},
		{Name: "email", Type: schema.TypeString, Description: "Email address (for EMAIL type)"},
		{Name: "phone", Type: schema.TypeString, Description: "Phone number (for PHONE type)"},
		{Name: "address_line_1", Type: schema.TypeString, Description: "Primary address line (for ADDRESS type)"},
		{Name: "address_line_2", Type: schema.TypeString, Description: "Secondary address line (for ADDRESS type)"},
		{Name: "city", Type: schema.TypeString, Description: "City name (for ADDRESS type)"},
		{Name: "state", Type: schema.TypeString, Pattern: "^[A-Z]{2}$", Description: "Two-letter state code (for ADDRESS type)"},
		{Name: "zip_code", Type: schema.TypeString, Pattern: "^[0-9]{5}(-[0-9]{4})?$", Description: "ZIP code (for ADDRESS type)"},
		{Name: "country", Type: schema.TypeString, Description: "Country code ISO 3166-1 alpha-2 (for ADDRESS type)"},
		{Name: "label", Type: schema.TypeString, Required: true,
			Enum:        []string{"HOME", "WORK", "MOBILE", "OTHER"},
			Description: "Label for the contact"},
		{Name: "is_preferred", Type: schema.TypeBool, Required: true, Description: "Whether this is the preferred contact of its type"},
	}
	fields = append(fields, usabilityFields("contact")...)
	return schema.Collection{
		Name:        "person_contact",
		Title:       "PERSON_CONTACT",
		Description: "Contact information for a PERSON (email, phone, address) with usability status",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"person_id"}},
			{Keys: []string{"person_id", "contact_type"}},
			{Keys: []string{"person_id", "contact_type", "is_preferred"}},
			{Keys: []string{"email"}, Sparse: true},
			{Keys: []string{"usability_status"}},
		},
	}
}

func employeeCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "person_id", Type: schema.TypeUUID, Required: true, Ref: "person", Description: "FK to PERSON"},
		{Name: "employer_org_id", Type: schema.TypeUUID, Required: true, Ref: "org", Description: "FK to ORG (must have EMPLOYER role)"},
		{Name: "employee_number", Type: schema.TypeString, Description: "Employer-assigned employee identifier"},
		{Name: "hire_date", Type: schema.TypeDate, Required: true, Description: "Date of hire"},
		{Name: "termination_date", Type: schema.TypeDate, Description: "Date of termination (null if active)"},
		{Name: "employment_status", Type: schema.TypeString, Required: true,
			Enum:        []string{"ACTIVE", "TERMINATED", "LOA", "RETIRED"},
			Description: "Current employment status"},
		{Name: "employment_type", Type: schema.TypeString,
			Enum:        []string{"FULL_TIME", "PART_TIME", "CONTRACTOR"},
			Description: "Type of employment"},
		{Name: "job_title", Type: schema.TypeString, Description: "Job title"},
		{Name: "department", Type: schema.TypeString, Description: "Department name"},
		{Name: "is_active", Type: schema.TypeBool, Required: true, Description: "Whether the employment is currently active"},
	}
	return schema.Collection{
		Name:        "employee",
		Title:       "EMPLOYEE",
		Description: "Links PERSON to an EMPLOYER ORG",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"person_id"}},
			{Keys: []string{"employer_org_id"}},
			{Keys: []string{"employee_number"}},
			{Keys: []string{"employer_org_id", "employee_number"}, Unique: true, Sparse: true},
			{Keys: []string{"employment_status"}},
			{Keys: []string{"is_active"}},
		},
	}
}

func providerCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "person_id", Type: schema.TypeUUID, Required: true, Ref: "person", Description: "FK to PERSON"},
		{Name: "npi", Type: schema.TypeString, Pattern: "^[0-9]{10}$", Description: "National Provider Identifier (10 digits)"},
		{Name: "provider_type", Type: schema.TypeString,
			Enum:        []string{"PHYSICIAN", "NURSE", "THERAPIST", "PHARMACIST", "OTHER"},
			Description: "Type of provider"},
		{Name: "specialty", Type: schema.TypeString, Description: "Primary specialty"},
		{Name: "taxonomy_code", Type: schema.TypeString, Pattern: "^[0-9A-Z]{10}$", Description: "Healthcare Provider Taxonomy Code"},
		{Name: "license_number", Type: schema.TypeString, Description: "Professional license number"},
		{Name: "license_state", Type: schema.TypeString, Pattern: "^[A-Z]{2}$", Description: "State where license is held"},
		{Name: "dea_number", Type: schema.TypeString, Description: "DEA registration number"},
		{Name: "is_active", Type: schema.TypeBool, Required: true, Description: "Whether the provider is currently active"},
	}
	return schema.Collection{
		Name:        "provider",
		Title:       "PROVIDER",
		Description: "Links PERSON to healthcare provider role (replaces PRACTITIONER)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"person_id"}},
			{Keys: []string{"npi"}, Unique: true, Sparse: true},
			{Keys: []string{"provider_type"}},
			{Keys: []string{"specialty"}},
			{Keys: []string{"taxonomy_code"}},
			{Keys: []string{"is_active"}},
		},
	}
}

func providerAffiliationCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "provider_id", Type: schema.TypeUUID, Required: true, Ref: "provider", Description: "FK to PROVIDER"},
		{Name: "provider_org_id", Type: schema.TypeUUID, Required: true, Ref: "org", Description: "FK to ORG (must have PROVIDER_ORG role)"},
		{Name: "affiliation_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"EMPLOYED", "CONTRACTED", "PRIVILEGED"},
			Description: "Type of affiliation with the organization"},
		{Name: "effective_date", Type: schema.TypeDate, Required: true, Description: "Date the affiliation became effective"},
		{Name: "termination_date", Type: schema.TypeDate, Description: "Date the affiliation was terminated (null if active)"},
		{Name: "is_primary", Type: schema.TypeBool, Description: "Whether this is the provider's primary affiliation"},
		{Name: "is_active", Type: schema.TypeBool, Required: true, Description: "Whether the affiliation is currently active"},
	}
	return schema.Collection{
		Name:        "provider_affiliation",
		Title:       "PROVIDER_AFFILIATION",
		Description: "Links PROVIDER (person) to PROVIDER_ORG with affiliation type",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"provider_id"}},
			{Keys: []string{"provider_org_id"}},
			{Keys: []string{"provider_id", "provider_org_id"}},
			{Keys: []string{"affiliation_type"}},
			{Keys: []string{"is_active"}},
		},
	}
}

func householdCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "household_name", Type: schema.TypeString, Description: "Name for the household (e.g., 'Smith Family')"},
		{Name: "address_line_1", Type: schema.TypeString, Description: "Primary address line"},
		{Name: "address_line_2", Type: schema.TypeString, Description: "Secondary address line"},
		{Name: "city", Type: schema.TypeString, Description: "City name"},
		{Name: "state", Type: schema.TypeString, Pattern: "^[A-Z]{2}$", Description: "Two-letter state code"},
		{Name: "zip_code", Type: schema.TypeString, Pattern: "^[0-9]{5}(-[0-9]{4})?$", Description: "ZIP code (5 or 9 digit)"},
		{Name: "country", Type: schema.TypeString, Description: "Country code (ISO 3166-1 alpha-2)"},
		{Name: "is_active", Type: schema.TypeBool, Required: true, Description: "Whether the household is currently active"},
	}
	return schema.Collection{
		Name:        "household",
		Title:       "HOUSEHOLD",
		Description: "Grouping of persons living together",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"household_name"}},
			{Keys: []string{"zip_code"}},
			{Keys: []string{"is_active"}},
		},
	}
}

func householdParticipantCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "household_id", Type: schema.TypeUUID, Required: true, Ref: "household", Description: "FK to HOUSEHOLD"},
		{Name: "person_id", Type: schema.TypeUUID, Required: true, Ref: "person", Description: "FK to PERSON"},
		{Name: "relationship_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"FATHER", "MOTHER", "CHILD", "HUSBAND", "WIFE", "DOMESTIC_PARTNER"},
			Description: "Relationship type within the household"},
		{Name: "effective_date", Type: schema.TypeDate, Required: true, Description: "Date the participation became effective"},
		{Name: "termination_date", Type: schema.TypeDate, Description: "Date the participation was terminated (null if active)"},
		{Name: "is_active", Type: schema.TypeBool, Required: true, Description: "Whether the participation is currently active"},
	}
	return schema.Collection{
		Name:        "household_participant",
		Title:       "HOUSEHOLD_PARTICIPANT",
		Description: "Links PERSON to HOUSEHOLD with relationship type",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"household_id"}},
			{Keys: []string{"person_id"}},
			{Keys: []string{"household_id", "person_id"}, Unique: true},
			{Keys: []string{"relationship_type"}},
			{Keys: []string{"is_active"}},
		},
	}
}
