package portfolio

import "github.com/wellnecity/edm/internal/schema"

// Collections returns the portfolio-domain collection contracts.
func Collections() []schema.Collection {
	return []schema.Collection{portfolioCollection(), portfolioMemberCollection()}
}

func portfolioCollection() schema.Collection {
	return schema.Collection{
		Name:        "portfolio",
		Title:       "PORTFOLIO",
		Description: "Flexible grouping of organizations; can be nested and owned by ORG or PERSON",
		Fields: []schema.Field{
			{Name: "_id", Type: schema.TypeUUID, Required: true, Description: "UUID primary key"},
			{Name: "name", Type: schema.TypeString, Required: true, Description: "Portfolio name"},
			{Name: "description", Type: schema.TypeString, Description: "Portfolio description"},
			{Name: "portfolio_type", Type: schema.TypeString, Required: true,
				Enum:        []string{"USER", "WELLNECITY", "BROKER", "VENDOR", "EMPLOYER", "CARRIER", "HEALTH_PLAN_SPONSOR"},
				Description: "Type of portfolio"},
			{Name: "owner_org_id", Type: schema.TypeUUID, Ref: "org", Description: "FK to ORG that owns this portfolio (nullable)"},
			{Name: "owner_person_id", Type: schema.TypeUUID, Ref: "person", Description: "FK to PERSON that owns this portfolio (nullable)"},
			{Name: "parent_portfolio_id", Type: schema.TypeUUID, Ref: "portfolio", Description: "FK to parent PORTFOLIO for nesting (nullable)"},
			{Name: "effective_date", Type: schema.TypeDate, Required: true, Description: "Date the portfolio became effective"},
			{Name: "termination_date", Type: schema.TypeDate, Description: "Date the portfolio was terminated (null if active)"},
			{Name: "is_active", Type: schema.TypeBool, Required: true, Description: "Whether the portfolio is currently active"},
			{Name: "created_at", Type: schema.TypeDate, Required: true, Description: "Record creation timestamp"},
			{Name: "updated_at", Type: schema.TypeDate, Required: true, Description: "Record last update timestamp"},
		},
		Indexes: []schema.Index{
			{Keys: []string{"name"}},
			{Keys: []string{"portfolio_type"}},
			{Keys: []string{"owner_org_id"}},
			{Keys: []string{"owner_person_id"}},
			{Keys: []string{"parent_portfolio_id"}},
			{Keys: []string{"is_active"}},
		},
	}
}

func portfolioMemberCollection() schema.Collection {
	return schema.Collection{
		Name:        "portfolio_member",
		Title:       "PORTFOLIO_MEMBER",
		Description: "Links a PORTFOLIO to an ORG (any org, not just clients)",
		Fields: []schema.Field{
			{Name: "_id", Type: schema.TypeUUID, Required: true, Description: "UUID primary key"},
			{Name: "portfolio_id", Type: schema.TypeUUID, Required: true, Ref: "portfolio", Description: "FK to PORTFOLIO"},
			{Name: "org_id", Type: schema.TypeUUID, Required: true, Ref: "org", Description: "FK to ORG (any organization)"},
			{Name: "effective_date", Type: schema.TypeDate, Required: true, Description: "Date the membership became effective"},
			{Name: "termination_date", Type: schema.TypeDate, Description: "Date the membership was terminated (null if active)"},
			{Name: "is_active", Type: schema.TypeBool, Required: true, Description: "Whether the membership is currently active"},
			{Name: "created_at", Type: schema.TypeDate, Required: true, Description: "Record creation timestamp"},
			{Name: "updated_at", Type: schema.TypeDate, Required: true, Description: "Record last update timestamp"},
		},
		Indexes: []schema.Index{
			{Keys: []string{"portfolio_id"}},
			{Keys: []string{"org_id"}},
			{Keys: []string{"portfolio_id", "org_id"}, Unique: true},
			{Keys: []string{"is_active"}},
		},
	}
}
