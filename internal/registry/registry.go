// Package registry assembles the full enterprise data model: every domain
// contributes its collection contracts, compiled into one schema.Registry.
package registry

import (
	"github.com/wellnecity/edm/internal/domain/benefits"
	"github.com/wellnecity/edm/internal/domain/healthrecord"
	"github.com/wellnecity/edm/internal/domain/org"
	"github.com/wellnecity/edm/internal/domain/person"
	"github.com/wellnecity/edm/internal/domain/portfolio"
	"github.com/wellnecity/edm/internal/schema"
)

// New builds the registry. Registration order follows reference direction:
// organizations first, then the people and portfolios that point at them,
// then benefits, then health records.
func New() *schema.Registry {
	r := schema.NewRegistry()
	r.MustRegister(org.Collections()...)
	r.MustRegister(portfolio.Collections()...)
	r.MustRegister(person.Collections()...)
	r.MustRegister(benefits.Collections()...)
	r.MustRegister(healthrecord.Collections()...)
	return r
}
