package benefits

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

func activityWindow(subject string) []schema.Field {
	return []schema.Field{
		{Name: "effective_date", Type: schema.TypeDate, Required: true,
			Description: "Date the " + subject + " became effective"},
		{Name: "termination_date", Type: schema.TypeDate,
			Description: "Date the " + subject + " was terminated (null if active)"},
	}
}

// Collections returns the benefits-domain collection contracts, including
// the accumulator event ledger that backs idempotent accumulator updates.
func Collections() []schema.Collection {
	return []schema.Collection{
		benefitPlanCollection(),
		coverageTypeCollection(),
		planLimitCollection(),
		eligibilityCollection(),
		coverageCollection(),
		planMemberCollection(),
		accumulatorCollection(),
		accumulatorEventCollection(),
	}
}

func benefitPlanCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "sponsor_org_id", Type: schema.TypeUUID, Required: true, Ref: "org",
			Description: "FK to ORG (must have HEALTH_PLAN_SPONSOR role)"},
		{Name: "org_structure_node_id", Type: schema.TypeUUID, Ref: "org_structure_node",
			Description: "FK to ORG_STRUCTURE_NODE for plan assignment (optional)"},
		{Name: "plan_name", Type: schema.TypeString, Required: true, Description: "Name of the benefit plan"},
		{Name: "plan_code", Type: schema.TypeString, Description: "Unique plan identifier code"},
		{Name: "plan_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"HMO", "PPO", "HDHP", "EPO", "POS", "INDEMNITY"},
			Description: "Type of health plan"},
		{Name: "benefit_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"MEDICAL", "DENTAL", "VISION", "PHARMACY", "LIFE_DISABILITY"},
			Description: "Category of benefits provided"},
	}
	fields = append(fields, activityWindow("plan")...)
	fields = append(fields, schema.Field{Name: "is_active", Type: schema.TypeBool, Required: true,
		Description: "Whether the plan is currently active"})
	return schema.Collection{
		Name:        "benefit_plan",
		Title:       "BENEFIT_PLAN",
		Description: "Health plan offered by a HEALTH_PLAN_SPONSOR ORG; optionally linked to ORG_STRUCTURE_NODE",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"sponsor_org_id"}},
			{Keys: []string{"sponsor_org_id", "org_structure_node_id"}},
			{Keys: []string{"org_structure_node_id"}, Sparse: true},
			{Keys: []string{"plan_code"}, Unique: true, Sparse: true},
			{Keys: []string{"plan_type"}},
			{Keys: []string{"benefit_type"}},
			{Keys: []string{"is_active"}},
		},
	}
}

func coverageTypeCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "benefit_plan_id", Type: schema.TypeUUID, Required: true, Ref: "benefit_plan", Description: "FK to BENEFIT_PLAN"},
		{Name: "name", Type: schema.TypeString, Required: true,
			Enum:        []string{"SINGLE", "SINGLE_DEPENDENT", "SINGLE_SPOUSE", "FAMILY", "SPOUSE_ONLY", "DEPENDENT_ONLY"},
			Description: "Coverage tier name"},
	}
	for _, f := range []struct{ name, desc string }{
		{"in_network_deductible_individual", "In-network individual deductible amount"},
		{"in_network_deductible_family", "In-network family deductible amount"},
		{"in_network_coinsurance", "In-network coinsurance percentage (0-100)"},
		{"in_network_oop_max_individual", "In-network individual out-of-pocket maximum"},
		{"in_network_oop_max_family", "In-network family out-of-pocket maximum"},
		{"out_of_network_deductible_individual", "Out-of-network individual deductible amount"},
		{"out_of_network_deductible_family", "Out-of-network family deductible amount"},
		{"out_of_network_coinsurance", "Out-of-network coinsurance percentage (0-100)"},
		{"out_of_network_oop_max_individual", "Out-of-network individual out-of-pocket maximum"},
		{"out_of_network_oop_max_family", "Out-of-network family out-of-pocket maximum"},
		{"copay_primary_care", "Copay for primary care visits"},
		{"copay_specialist", "Copay for specialist visits"},
		{"copay_emergency", "Copay for emergency room visits"},
		{"copay_urgent_care", "Copay for urgent care visits"},
	} {
		fields = append(fields, schema.Field{Name: f.name, Type: schema.TypeDecimal, Description: f.desc})
	}
	fields = append(fields, activityWindow("coverage type")...)
	fields = append(fields, schema.Field{Name: "is_active", Type: schema.TypeBool, Required: true,
		Description: "Whether the coverage type is currently active"})
	return schema.Collection{
		Name:        "coverage_type",
		Title:       "COVERAGE_TYPE",
		Description: "Tier within a plan (Single, Family, etc.) with financial limits",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"benefit_plan_id"}},
			{Keys: []string{"benefit_plan_id", "name"}, Unique: true},
			{Keys: []string{"name"}},
			{Keys: []string{"is_active"}},
		},
	}
}

func planLimitCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "benefit_plan_id", Type: schema.TypeUUID, Required: true, Ref: "benefit_plan", Description: "FK to BENEFIT_PLAN"},
		{Name: "limit_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"DEDUCTIBLE", "OOP_MAX", "VISIT_LIMIT", "RX_SPENDING", "BENEFIT_MAX"},
			Description: "Type of limit"},
		{Name: "network_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"IN_NETWORK", "OUT_OF_NETWORK", "COMBINED"},
			Description: "Network applicability"},
		{Name: "level", Type: schema.TypeString, Required: true,
			Enum:        []string{"INDIVIDUAL", "FAMILY"},
			Description: "Level at which the limit applies"},
		{Name: "benefit_category", Type: schema.TypeString,
			Enum:        []string{"MEDICAL", "DENTAL", "VISION", "PHARMACY", "PHYSICAL_THERAPY", "MENTAL_HEALTH"},
			Description: "Category of benefits this limit applies to"},
		{Name: "limit_amount", Type: schema.TypeDecimal, Description: "Dollar amount for the limit"},
		{Name: "limit_count", Type: schema.TypeInt, Description: "Count limit (e.g., number of visits)"},
		{Name: "period_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"PLAN_YEAR", "CALENDAR_YEAR", "LIFETIME"},
			Description: "Period over which the limit applies"},
	}
	fields = append(fields, activityWindow("limit")...)
	fields = append(fields, schema.Field{Name: "is_active", Type: schema.TypeBool, Required: true,
		Description: "Whether the limit is currently active"})
	return schema.Collection{
		Name:        "plan_limit",
		Title:       "PLAN_LIMIT",
		Description: "Template defining limits for a plan (deductible, OOP max, visit limits, etc.)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"benefit_plan_id"}},
			{Keys: []string{"limit_type"}},
			{Keys: []string{"network_type"}},
			{Keys: []string{"level"}},
			{Keys: []string{"benefit_plan_id", "limit_type", "network_type", "level"}},
			{Keys: []string{"is_active"}},
		},
	}
}

func eligibilityCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "employee_id", Type: schema.TypeUUID, Required: true, Ref: "employee", Description: "FK to EMPLOYEE"},
		{Name: "benefit_plan_id", Type: schema.TypeUUID, Required: true, Ref: "benefit_plan", Description: "FK to BENEFIT_PLAN"},
		{Name: "status", Type: schema.TypeString, Required: true,
			Enum:        []string{"NOT_ELIGIBLE", "ELIGIBLE_ENROLLED", "ELIGIBLE_NOT_ENROLLED"},
			Description: "Eligibility status"},
	}
	fields = append(fields, activityWindow("eligibility")...)
	return schema.Collection{
		Name:        "eligibility",
		Title:       "ELIGIBILITY",
		Description: "Links EMPLOYEE to BENEFIT_PLAN with eligibility status",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"employee_id"}},
			{Keys: []string{"benefit_plan_id"}},
			{Keys: []string{"employee_id", "benefit_plan_id"}},
			{Keys: []string{"status"}},
		},
	}
}

func coverageCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "coverage_type_id", Type: schema.TypeUUID, Required: true, Ref: "coverage_type", Description: "FK to COVERAGE_TYPE"},
		{Name: "benefit_plan_id", Type: schema.TypeUUID, Required: true, Ref: "benefit_plan", Description: "FK to BENEFIT_PLAN"},
	}
	fields = append(fields, activityWindow("coverage")...)
	fields = append(fields, schema.Field{Name: "status", Type: schema.TypeString, Required: true,
		Enum:        []string{"ACTIVE", "TERMINATED", "COBRA", "PENDING"},
		Description: "Current status of the coverage"})
	return schema.Collection{
		Name:        "coverage",
		Title:       "COVERAGE",
		Description: "Instance of enrollment in a COVERAGE_TYPE",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"coverage_type_id"}},
			{Keys: []string{"benefit_plan_id"}},
			{Keys: []string{"status"}},
			{Keys: []string{"effective_date"}},
		},
	}
}

func planMemberCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "person_id", Type: schema.TypeUUID, Required: true, Ref: "person", Description: "FK to PERSON"},
		{Name: "coverage_id", Type: schema.TypeUUID, Required: true, Ref: "coverage", Description: "FK to COVERAGE"},
		{Name: "subscriber_plan_member_id", Type: schema.TypeUUID, Ref: "plan_member",
			Description: "FK to PLAN_MEMBER (null if this member is the subscriber)"},
		{Name: "member_type", Type: schema.TypeString, Required: true,
			Enum:        []string{"SUBSCRIBER", "DEPENDENT"},
			Description: "Whether this is a subscriber or dependent"},
		{Name: "subscriber_relationship_type", Type: schema.TypeString,
			Enum:        []string{"SELF", "SPOUSE", "CHILD", "DOMESTIC_PARTNER"},
			Description: "Relationship to the subscriber"},
		{Name: "wellnecity_id", Type: schema.TypeString, Description: "Wellnecity-assigned member identifier"},
		{Name: "subscriber_id", Type: schema.TypeString, Description: "Subscriber ID from the carrier/TPA"},
	}
	fields = append(fields, activityWindow("membership")...)
	fields = append(fields, schema.Field{Name: "is_active", Type: schema.TypeBool, Required: true,
		Description: "Whether the membership is currently active"})
	return schema.Collection{
		Name:        "plan_member",
		Title:       "PLAN_MEMBER",
		Description: "Person enrolled in a COVERAGE (SUBSCRIBER or DEPENDENT)",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"person_id"}},
			{Keys: []string{"coverage_id"}},
			{Keys: []string{"subscriber_plan_member_id"}},
			{Keys: []string{"wellnecity_id"}, Unique: true, Sparse: true},
			{Keys: []string{"subscriber_id"}},
			{Keys: []string{"member_type"}},
			{Keys: []string{"is_active"}},
		},
	}
}

func accumulatorCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "plan_limit_id", Type: schema.TypeUUID, Required: true, Ref: "plan_limit", Description: "FK to PLAN_LIMIT"},
		{Name: "plan_member_id", Type: schema.TypeUUID, Ref: "plan_member",
			Description: "FK to PLAN_MEMBER (for individual-level accumulators)"},
		{Name: "coverage_id", Type: schema.TypeUUID, Ref: "coverage",
			Description: "FK to COVERAGE (for family-level accumulators)"},
		{Name: "accumulated_amount", Type: schema.TypeDecimal, Description: "Current accumulated dollar amount"},
		{Name: "accumulated_count", Type: schema.TypeInt, Description: "Current accumulated count (e.g., visits)"},
		{Name: "period_start", Type: schema.TypeDate, Required: true, Description: "Start date of the accumulation period"},
		{Name: "period_end", Type: schema.TypeDate, Required: true, Description: "End date of the accumulation period"},
	}
	return schema.Collection{
		Name:        "accumulator",
		Title:       "ACCUMULATOR",
		Description: "Tracks spending/usage against PLAN_LIMIT for a PLAN_MEMBER or COVERAGE",
		Fields:      append(fields, timestamps()...),
		Indexes: []schema.Index{
			{Keys: []string{"plan_limit_id"}},
			{Keys: []string{"plan_member_id"}},
			{Keys: []string{"coverage_id"}},
			{Keys: []string{"period_start", "period_end"}},
			{Keys: []string{"plan_limit_id", "plan_member_id", "period_start"}},
			{Keys: []string{"plan_limit_id", "coverage_id", "period_start"}},
		},
	}
}

func accumulatorEventCollection() schema.Collection {
	fields := []schema.Field{
		pk(),
		{Name: "event_id", Type: schema.TypeString, Required: true,
			Description: "Caller-supplied idempotency key for the contribution"},
		{Name: "accumulator_id", Type: schema.TypeUUID, Required: true, Ref: "accumulator", Description: "FK to ACCUMULATOR"},
		{Name: "amount", Type: schema.TypeDecimal, Required: true, Description: "Dollar amount contributed"},
		{Name: "count", Type: schema.TypeInt, Required: true, Description: "Usage count contributed"},
		{Name: "service_date", Type: schema.TypeDate, Required: true, Description: "Date of service for the contribution"},
		{Name: "applied_at", Type: schema.TypeDate, Required: true, Description: "Timestamp the contribution was applied"},
	}
	return schema.Collection{
		Name:        "accumulator_event",
		Title:       "ACCUMULATOR_EVENT",
		Description: "Append-only ledger of contributions applied to accumulators",
		Fields:      fields,
		Indexes: []schema.Index{
			{Keys: []string{"event_id"}, Unique: true},
			{Keys: []string{"accumulator_id"}},
			{Keys: []string{"accumulator_id", "applied_at"}},
		},
	}
}
