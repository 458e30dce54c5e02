package org

import "github.com/wellnecity/edm/internal/schema"

func pk() schema.Field {
	return schema.Field{Name: "_id", Type: schema.TypeUUID, Required: true, Description: "UUID primary key"}
}

func fk(name, ref, desc string, required bool) schema.Field {
	return schema.Field{Name: name, Type: schema.TypeUUID, Required: required, Ref: ref, Description: desc}
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

func addressFields() []schema.Field {
	return []schema.Field{
		{Name: "address_line_1", Type: schema.TypeString, Description: "Primary address line (for ADDRESS type)"},
		{Name: "address_line_2", Type: schema.TypeString, Description: "Secondary address line (for ADDRESS type)"},
		{Name: "city", Type: schema.TypeString, Description: "City name (for ADDRESS type)"},
		{Name: "state", Type: schema.TypeString, Pattern: "^[A-Z]{2}$", Description: "Two-letter state code (for ADDRESS type)"},
		{Name: "zip_code", Type: schema.TypeString, Pattern: "^[0-9]{5}(-[0-9]{4})?$", Description: "ZIP code (for ADDRESS type)"},
		{Name: "country", Type: schema.TypeString, Description: "Country code ISO 3166-1 alpha-2 (for ADDRESS type)"},
	}
}

// Collections returns the organization-domain collection contracts.
func Collections() []schema.Collection {
	return []schema.Collection{
		orgCollection(),
		orgIdentifierCollection(),
		orgContactCollection(),
		orgRoleCollection(),
		employerDetailsCollection(),
		clientDetailsCollection(),
		vendorDetailsCollection(),
		brokerDetailsCollection(),
		carrierDetailsCollection(),
		healthPlanSponsorDetailsCollection(),
		providerOrgDetailsCollection(),
		orgRelationshipCollection(),
		contractCollection(),
		orgStructureCollection(),
		orgStructureNodeCollection(),
	}
}

func orgCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "name", Type: schema.TypeString, Required: true, Description: "Organization display name"},
		{Name: "legal_name", Type: schema.TypeString, Description: "Legal/registered name of the organization"},
		{Name: "website", Type: schema.TypeString, Description: "Organization website URL"},
		{Name: "is_active", Type: schema.TypeBool, Required: true, Description: "Whether the organization is currently active"},
	}
	return schema.Collection{
		Name:        "org",
		Title:       "ORG",
		Description: "Base entity for all business organizations (employers, clients, vendors, brokers, carriers, health plan sponsors, provider organizations)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"name"}},
			{Keys: []string{"is_active"}},
		},
	}
}

func orgIdentifierCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		fk("org_id", "org", "FK to ORG", true),
		{Name: "identifier_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"TAX_ID", "FEIN", "NPI", "NAIC", "DUNS", "LEI", "OTHER"},
			Description: "Type of identifier"},
		{Name: "identifier_value", Type: schema.TypeString, Required: true, Description: "The identifier value"},
		{Name: "issuing_authority", Type: schema.TypeString, Description: "Organization or system that issued the ID"},
		{Name: "issue_date", Type: schema.TypeDate, Description: "Date the identifier was issued"},
		{Name: "expiration_date", Type: schema.TypeDate, Description: "Date the identifier expires"},
	}
	fields = append(fields, usabilityFields("identifier")...)
	fields = append(fields, schema.Field{Name: "is_primary", Type: schema.TypeBool, Description: "Whether this is the primary identifier of its type"})
	return schema.Collection{
		Name:        "org_identifier",
		Title:       "ORG_IDENTIFIER",
		Description: "Identifier for an ORG (Tax ID, FEIN, NPI, NAIC, DUNS, etc.) with usability status",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"org_id"}},
			{Keys: []string{"org_id", "identifier_type"}},
			{Keys: []string{"identifier_type", "identifier_value"}},
			{Keys: []string{"usability_status"}},
		},
	}
}

func orgContactCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		fk("org_id", "org", "FK to ORG", true),
		{Name: "contact_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"EMAIL", "PHONE", "ADDRESS"},
			Description: "Type of contact information"},
		{Name: "email", Type: schema.TypeString, Description: "Email address (for EMAIL type)"},
		{Name: "phone", Type: schema.TypeString, Description: "Phone number (for PHONE type)"},
	}
	fields = append(fields, addressFields()...)
	fields = append(fields,
		schema.Field{Name: "label", Type: schema.TypeString, Required: true,
			Enum:        []string{"HEADQUARTERS", "BILLING", "MAILING", "BRANCH", "OTHER"},
			Description: "Label for the contact"},
		schema.Field{Name: "is_preferred", Type: schema.TypeBool, Required: true, Description: "Whether this is the preferred contact of its type"},
	)
	fields = append(fields, usabilityFields("contact")...)
	return schema.Collection{
		Name:        "org_contact",
		Title:       "ORG_CONTACT",
		Description: "Contact information for an ORG (email, phone, address) with usability status",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"org_id"}},
			{Keys: []string{"org_id", "contact_type"}},
			{Keys: []string{"org_id", "contact_type", "is_preferred"}},
			{Keys: []string{"email"}, Sparse: true},
			{Keys: []string{"usability_status"}},
		},
	}
}

func orgRoleCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		fk("org_id", "org", "FK to ORG", true),
		{Name: "role_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"EMPLOYER", "CLIENT", "VENDOR", "BROKER", "CARRIER", "HEALTH_PLAN_SPONSOR", "PROVIDER_ORG"},
			Description: "Type of role assigned to the organization"},
		{Name: "effective_date", Type: schema.TypeDate, Required: true, Description: "Date the role became effective"},
		{Name: "termination_date", Type: schema.TypeDate, Description: "Date the role was terminated (null if active)"},
		{Name: "is_active", Type: schema.TypeBool, Required: true, Description: "Whether the role is currently active"},
	}
	return schema.Collection{
		Name:        "org_role",
		Title:       "ORG_ROLE",
		Description: "Role assignment for an ORG (EMPLOYER, CLIENT, VENDOR, BROKER, CARRIER, HEALTH_PLAN_SPONSOR, PROVIDER_ORG)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"org_id"}},
			{Keys: []string{"role_type"}},
			{Keys: []string{"org_id", "role_type"}},
			{Keys: []string{"is_active"}},
		},
	}
}

func employerDetailsCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		fk("org_role_id", "org_role", "FK to ORG_ROLE (must be EMPLOYER role)", true),
		{Name: "naics_code", Type: schema.TypeString, Pattern: "^[0-9]{2,6}$", Description: "North American Industry Classification System code"},
		{Name: "sic_code", Type: schema.TypeString, Pattern: "^[0-9]{4}$", Description: "Standard Industrial Classification code"},
		{Name: "industry", Type: schema.TypeString, Description: "Industry description"},
		{Name: "size_tier", Type: schema.TypeString,
			Enum:        []string{"SMALL", "MEDIUM", "LARGE", "ENTERPRISE"},
			Description: "Organization size tier"},
		{Name: "employee_count", Type: schema.TypeInt, Minimum: schema.IntMin(0), Description: "Number of employees"},
		{Name: "fein", Type: schema.TypeString, Description: "Federal Employer Identification Number"},
	}
	return schema.Collection{
		Name:        "employer_details",
		Title:       "EMPLOYER_DETAILS",
		Description: "Role-specific attributes for EMPLOYER (NAICS, SIC, industry, size)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"org_role_id"}, Unique: true},
			{Keys: []string{"naics_code"}},
			{Keys: []string{"size_tier"}},
		},
	}
}

func clientDetailsCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		fk("org_role_id", "org_role", "FK to ORG_ROLE (must be CLIENT role)", true),
		{Name: "client_code", Type: schema.TypeString, Description: "Unique client identifier code"},
		{Name: "account_manager", Type: schema.TypeString, Description: "Name of assigned account manager"},
		{Name: "implementation_date", Type: schema.TypeDate, Description: "Date client was implemented"},
		{Name: "client_tier", Type: schema.TypeString,
			Enum:        []string{"STANDARD", "PREMIUM", "ENTERPRISE"},
			Description: "Client service tier"},
	}
	return schema.Collection{
		Name:        "client_details",
		Title:       "CLIENT_DETAILS",
		Description: "Role-specific attributes for CLIENT (client code, tier, account manager)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"org_role_id"}, Unique: true},
			{Keys: []string{"client_code"}, Unique: true, Sparse: true},
			{Keys: []string{"client_tier"}},
		},
	}
}

func vendorDetailsCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		fk("org_role_id", "org_role", "FK to ORG_ROLE (must be VENDOR role)", true),
		{Name: "vendor_type", Type: schema.TypeString,
			Enum:        []string{"TPA", "PBM", "LAB", "CLEARINGHOUSE", "OTHER"},
			Description: "Type of vendor"},
		{Name: "service_category", Type: schema.TypeString, Description: "Category of services provided"},
		{Name: "integration_type", Type: schema.TypeString,
			Enum:        []string{"API", "SFTP", "MANUAL"},
			Description: "Type of data integration"},
	}
	return schema.Collection{
		Name:        "vendor_details",
		Title:       "VENDOR_DETAILS",
		Description: "Role-specific attributes for VENDOR (vendor type, integration type)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"org_role_id"}, Unique: true},
			{Keys: []string{"vendor_type"}},
			{Keys: []string{"integration_type"}},
		},
	}
}

func brokerDetailsCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		fk("org_role_id", "org_role", "FK to ORG_ROLE (must be BROKER role)", true),
		{Name: "license_number", Type: schema.TypeString, Description: "Broker license number"},
		{Name: "license_state", Type: schema.TypeString, Pattern: "^[A-Z]{2}$", Description: "State where license is held"},
		{Name: "broker_type", Type: schema.TypeString,
			Enum:        []string{"GENERAL_AGENT", "BROKER", "CONSULTANT"},
			Description: "Type of broker"},
	}
	return schema.Collection{
		Name:        "broker_details",
		Title:       "BROKER_DETAILS",
		Description: "Role-specific attributes for BROKER (license, broker type)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"org_role_id"}, Unique: true},
			{Keys: []string{"license_number", "license_state"}},
			{Keys: []string{"broker_type"}},
		},
	}
}

func carrierDetailsCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		fk("org_role_id", "org_role", "FK to ORG_ROLE (must be CARRIER role)", true),
		{Name: "naic_code", Type: schema.TypeString, Pattern: "^[0-9]{5}$", Description: "National Association of Insurance Commissioners code"},
		{Name: "carrier_type", Type: schema.TypeString,
			Enum:        []string{"COMMERCIAL", "MEDICARE", "MEDICAID", "OTHER"},
			Description: "Type of insurance carrier"},
		{Name: "am_best_rating", Type: schema.TypeString, Description: "AM Best financial strength rating"},
	}
	return schema.Collection{
		Name:        "carrier_details",
		Title:       "CARRIER_DETAILS",
		Description: "Role-specific attributes for CARRIER (NAIC code, carrier type, rating)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"org_role_id"}, Unique: true},
			{Keys: []string{"naic_code"}},
			{Keys: []string{"carrier_type"}},
		},
	}
}

func healthPlanSponsorDetailsCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		fk("org_role_id", "org_role", "FK to ORG_ROLE (must be HEALTH_PLAN_SPONSOR role)", true),
		{Name: "sponsor_type", Type: schema.TypeString,
			Enum:        []string{"SELF_INSURED", "FULLY_INSURED", "LEVEL_FUNDED"},
			Description: "Type of health plan sponsorship"},
		{Name: "funding_arrangement", Type: schema.TypeString, Description: "Description of funding arrangement"},
	}
	return schema.Collection{
		Name:        "health_plan_sponsor_details",
		Title:       "HEALTH_PLAN_SPONSOR_DETAILS",
		Description: "Role-specific attributes for HEALTH_PLAN_SPONSOR (sponsor type, funding)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"org_role_id"}, Unique: true},
			{Keys: []string{"sponsor_type"}},
		},
	}
}

func providerOrgDetailsCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		fk("org_role_id", "org_role", "FK to ORG_ROLE (must be PROVIDER_ORG role)", true),
		{Name: "npi", Type: schema.TypeString, Pattern: "^[0-9]{10}$", Description: "National Provider Identifier (10 digits)"},
		{Name: "facility_type", Type: schema.TypeString,
			Enum:        []string{"HOSPITAL", "CLINIC", "LAB", "PHARMACY", "IMAGING", "OTHER"},
			Description: "Type of healthcare facility"},
		{Name: "specialty", Type: schema.TypeString, Description: "Primary specialty of the facility"},
		{Name: "taxonomy_code", Type: schema.TypeString, Pattern: "^[0-9A-Z]{10}$", Description: "Healthcare Provider Taxonomy Code"},
		{Name: "license_number", Type: schema.TypeString, Description: "Facility license number"},
		{Name: "license_state", Type: schema.TypeString, Pattern: "^[A-Z]{2}$", Description: "State where license is held"},
	}
	return schema.Collection{
		Name:        "provider_org_details",
		Title:       "PROVIDER_ORG_DETAILS",
		Description: "Role-specific attributes for PROVIDER_ORG (NPI, facility type, specialty)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"org_role_id"}, Unique: true},
			{Keys: []string{"npi"}, Unique: true, Sparse: true},
			{Keys: []string{"facility_type"}},
			{Keys: []string{"taxonomy_code"}},
		},
	}
}

func orgRelationshipCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		fk("org_id_source", "org", "FK to ORG (source organization)", true),
		fk("org_id_target", "org", "FK to ORG (target organization)", true),
		{Name: "relationship_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"WELLNECITY_CLIENT", "BROKER_CLIENT", "CARRIER_CLIENT", "VENDOR_CLIENT", "PROVIDER_ORG_CLIENT"},
			Description: "Type of relationship between organizations"},
		{Name: "effective_date", Type: schema.TypeDate, Required: true, Description: "Date the relationship became effective"},
		{Name: "termination_date", Type: schema.TypeDate, Description: "Date the relationship was terminated (null if active)"},
		{Name: "is_active", Type: schema.TypeBool, Required: true, Description: "Whether the relationship is currently active"},
	}
	return schema.Collection{
		Name:        "org_relationship",
		Title:       "ORG_RELATIONSHIP",
		Description: "Relationship between two ORGs (WELLNECITY_CLIENT, BROKER_CLIENT, CARRIER_CLIENT, VENDOR_CLIENT, PROVIDER_ORG_CLIENT)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"org_id_source"}},
			{Keys: []string{"org_id_target"}},
			{Keys: []string{"relationship_type"}},
			{Keys: []string{"org_id_source", "org_id_target", "relationship_type"}},
			{Keys: []string{"is_active"}},
		},
	}
}

func contractCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		fk("org_relationship_id", "org_relationship", "FK to ORG_RELATIONSHIP", true),
		{Name: "contract_type", Type: schema.TypeString, Description: "Type of contract (e.g., 'Analytics Services', 'TPA Agreement')"},
		{Name: "contract_number", Type: schema.TypeString, Description: "Unique contract identifier"},
		{Name: "effective_date", Type: schema.TypeDate, Required: true, Description: "Date the contract became effective"},
		{Name: "termination_date", Type: schema.TypeDate, Description: "Date the contract was terminated (null if active)"},
		{Name: "status", Type: schema.TypeString, Required: true,
			Enum:        []string{"DRAFT", "ACTIVE", "EXPIRED", "TERMINATED", "RENEWED"},
			Description: "Current status of the contract"},
		{Name: "terms", Type: schema.TypeString, Description: "Contract terms and conditions (text or reference)"},
	}
	return schema.Collection{
		Name:        "contract",
		Title:       "CONTRACT",
		Description: "Legal agreement tied to an ORG_RELATIONSHIP",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"org_relationship_id"}},
			{Keys: []string{"contract_number"}, Unique: true, Sparse: true},
			{Keys: []string{"status"}},
			{Keys: []string{"effective_date"}},
		},
	}
}

func orgStructureCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		fk("org_id", "org", "FK to ORG", true),
		{Name: "structure_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"FINANCIAL", "BENEFIT_ADMIN", "REPORTING", "GEOGRAPHIC", "OPERATIONAL", "OTHER"},
			Description: "Type of organizational structure"},
		{Name: "name", Type: schema.TypeString, Required: true, Description: "Name of the structure"},
		{Name: "description", Type: schema.TypeString, Description: "Description of the structure purpose"},
		{Name: "effective_date", Type: schema.TypeDate, Required: true, Description: "Date the structure became effective"},
		{Name: "termination_date", Type: schema.TypeDate, Description: "Date the structure was terminated"},
		{Name: "is_active", Type: schema.TypeBool, Required: true, Description: "Whether the structure is currently active"},
	}
	return schema.Collection{
		Name:        "org_structure",
		Title:       "ORG_STRUCTURE",
		Description: "Internal organizational structure definition (e.g., Financial Divisions, Benefit Administration)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"org_id"}},
			{Keys: []string{"org_id", "structure_type"}},
			{Keys: []string{"structure_type"}},
			{Keys: []string{"is_active"}},
		},
	}
}

func orgStructureNodeCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		fk("org_structure_id", "org_structure", "FK to ORG_STRUCTURE", true),
		fk("parent_node_id", "org_structure_node", "FK to parent ORG_STRUCTURE_NODE (NULL for root nodes)", false),
		{Name: "node_code", Type: schema.TypeString, Description: "Code identifier for the node"},
		{Name: "name", Type: schema.TypeString, Required: true, Description: "Name of the node"},
		{Name: "description", Type: schema.TypeString, Description: "Description of the node"},
		{Name: "level", Type: schema.TypeInt, Required: true, Minimum: schema.IntMin(0), Description: "Depth in hierarchy (0 = root)"},
		{Name: "sort_order", Type: schema.TypeInt, Description: "Sort order among siblings"},
		{Name: "effective_date", Type: schema.TypeDate, Required: true, Description: "Date the node became effective"},
		{Name: "termination_date", Type: schema.TypeDate, Description: "Date the node was terminated"},
		{Name: "is_active", Type: schema.TypeBool, Required: true, Description: "Whether the node is currently active"},
	}
	return schema.Collection{
		Name:        "org_structure_node",
		Title:       "ORG_STRUCTURE_NODE",
		Description: "Hierarchical node within an ORG_STRUCTURE",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"org_structure_id"}},
			{Keys: []string{"org_structure_id", "parent_node_id"}},
			{Keys: []string{"parent_node_id"}},
			{Keys: []string{"org_structure_id", "node_code"}},
			{Keys: []string{"level"}},
			{Keys: []string{"is_active"}},
		},
	}
}
