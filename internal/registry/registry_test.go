package registry

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/wellnecity/edm/internal/errs"
)

func TestRegistryAssemblesEveryCollection(t *testing.T) {
	r := New()

	if got := len(r.Names()); got != 45 {
		t.Fatalf("registered %d collections, want 45", got)
	}

	for _, name := range []string{
		"org", "org_role", "employer_details", "contract", "org_structure_node",
		"portfolio", "portfolio_member",
		"person", "employee", "provider_affiliation", "household_participant",
		"benefit_plan", "coverage", "plan_member", "accumulator", "accumulator_event",
		"health_record_composition", "problem", "care_plan", "health_record_provenance",
	} {
		if _, ok := r.Collection(name); !ok {
			t.Errorf("collection %q is not registered", name)
		}
	}
}

func TestRegistryReferencesResolveToRegisteredCollections(t *testing.T) {
	r := New()
	for _, name := range r.Names() {
		c, _ := r.Collection(name)
		for _, ref := range c.References() {
			if _, ok := r.Collection(ref.Ref); !ok {
				t.Errorf("%s.%s references unregistered collection %q", name, ref.Name, ref.Ref)
			}
		}
	}
}

func TestRegistryValidatesAcrossDomains(t *testing.T) {
	r := New()

	err := r.ValidateDocument("org", bson.M{
		"_id":        uuid.New(),
		"name":       "Wellnecity Analytics",
		"is_active":  true,
		"created_at": time.Now(),
		"updated_at": time.Now(),
	})
	if err != nil {
		t.Fatalf("valid org rejected: %v", err)
	}

	err = r.ValidateDocument("vital_sign", bson.M{
		"_id":                uuid.New(),
		"member_id":          uuid.New(),
		"archetype_id":       "openEHR-EHR-OBSERVATION.blood_pressure.v2",
		"vital_type":         "MOOD",
		"status":             "final",
		"effective_datetime": time.Now(),
		"created_at":         time.Now(),
		"updated_at":         time.Now(),
	})
	e, ok := err.(*errs.Error)
	if !ok || e.Rule != "enum" || e.Field != "vital_type" {
		t.Fatalf("expected enum violation on vital_type, got %v", err)
	}

	err = r.ValidateDocument("claims_ledger", bson.M{})
	if e, ok := err.(*errs.Error); !ok || e.Rule != "unknown-collection" {
		t.Fatalf("expected unknown-collection, got %v", err)
	}
}
