package schema

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/wellnecity/edm/internal/errs"
)

func testCollection() Collection {
	return Collection{
		Name:  "org_contact",
		Title: "Organization Contact",
		Fields: []Field{
			{Name: "_id", Type: TypeUUID, Required: true},
			{Name: "org_id", Type: TypeUUID, Required: true, Ref: "org"},
			{Name: "contact_type", Type: TypeString, Required: true,
				Enum: []string{"EMAIL", "PHONE", "FAX", "ADDRESS"}},
			{Name: "state", Type: TypeString, Pattern: "^[A-Z]{2}$"},
			{Name: "zip", Type: TypeString, Pattern: "^[0-9]{5}(-[0-9]{4})?$"},
			{Name: "label", Type: TypeString, MaxLength: 100},
			{Name: "is_preferred", Type: TypeBool, Required: true},
			{Name: "rank", Type: TypeInt, Minimum: IntMin(1)},
			{Name: "verified_at", Type: TypeDate},
			{Name: "monthly_cost", Type: TypeDecimal},
			{Name: "tags", Type: TypeArray, Items: &Field{Name: "tag", Type: TypeString, MaxLength: 50}},
			{Name: "meta", Type: TypeObject, Properties: []Field{
				{Name: "source", Type: TypeString},
				{Name: "weight", Type: TypeInt, Minimum: IntMin(0)},
			}},
		},
		Indexes: []Index{
			{Keys: []string{"org_id", "contact_type"}},
			{Keys: []string{"zip"}, Unique: true, Sparse: true},
		},
	}
}

func validDoc() bson.M {
	return bson.M{
		"_id":          uuid.New(),
		"org_id":       uuid.New(),
		"contact_type": "EMAIL",
		"is_preferred": true,
	}
}

func assertStructural(t *testing.T, err error, field, rule string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected structural violation on %s/%s, got nil", field, rule)
	}
	var e *errs.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *errs.Error, got %T: %v", err, err)
	}
	if e.Kind != errs.KindStructural {
		t.Fatalf("expected KindStructural, got %v", e.Kind)
	}
	if e.Field != field || e.Rule != rule {
		t.Fatalf("expected violation %s/%s, got %s/%s", field, rule, e.Field, e.Rule)
	}
}

// ===== Registration =====

func TestRegistryRejectsBadDeclarations(t *testing.T) {
	cases := []struct {
		name string
		col  Collection
	}{
		{"empty name", Collection{}},
		{"duplicate field", Collection{Name: "x", Fields: []Field{
			{Name: "a", Type: TypeString}, {Name: "a", Type: TypeString},
		}}},
		{"bad pattern", Collection{Name: "x", Fields: []Field{
			{Name: "a", Type: TypeString, Pattern: "["},
		}}},
		{"ref on non-uuid", Collection{Name: "x", Fields: []Field{
			{Name: "a", Type: TypeString, Ref: "org"},
		}}},
		{"index on undeclared field", Collection{Name: "x", Fields: []Field{
			{Name: "a", Type: TypeString},
		}, Indexes: []Index{{Keys: []string{"b"}}}}},
	}
	for _, tc := range cases {
		r := NewRegistry()
		if err := r.Register(tc.col); err == nil {
			t.Errorf("%s: expected registration error", tc.name)
		}
	}
}

func TestRegistryRejectsDuplicateCollection(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(testCollection()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := r.Register(testCollection()); err == nil {
		t.Fatal("expected duplicate-collection error")
	}
}

func TestRegistryNamesPreserveOrder(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(
		Collection{Name: "org", Fields: []Field{{Name: "_id", Type: TypeUUID, Required: true}}},
		Collection{Name: "contract", Fields: []Field{{Name: "_id", Type: TypeUUID, Required: true}}},
	)
	names := r.Names()
	if len(names) != 2 || names[0] != "org" || names[1] != "contract" {
		t.Fatalf("unexpected order: %v", names)
	}
	sorted := r.SortedNames()
	if sorted[0] != "contract" || sorted[1] != "org" {
		t.Fatalf("unexpected sorted names: %v", sorted)
	}
}

// ===== Document validation =====

func TestValidateDocumentAcceptsValid(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(testCollection())

	doc := validDoc()
	doc["state"] = "NC"
	doc["zip"] = "27601-1234"
	doc["label"] = "main office"
	doc["rank"] = 1
	doc["verified_at"] = time.Now()
	doc["monthly_cost"] = decimal.NewFromFloat(12.50)
	doc["tags"] = bson.A{"billing", "primary"}
	doc["meta"] = bson.M{"source": "import", "weight": 3}

	if err := r.ValidateDocument("org_contact", doc); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}
}

func TestValidateDocumentMissingRequired(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(testCollection())

	doc := validDoc()
	delete(doc, "contact_type")
	assertStructural(t, r.ValidateDocument("org_contact", doc), "contact_type", "required")
}

func TestValidateDocumentEnum(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(testCollection())

	doc := validDoc()
	doc["contact_type"] = "CARRIER_PIGEON"
	assertStructural(t, r.ValidateDocument("org_contact", doc), "contact_type", "enum")
}

func TestValidateDocumentPattern(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(testCollection())

	doc := validDoc()
	doc["zip"] = "2760"
	assertStructural(t, r.ValidateDocument("org_contact", doc), "zip", "pattern")

	doc["zip"] = "27601"
	if err := r.ValidateDocument("org_contact", doc); err != nil {
		t.Fatalf("five-digit zip rejected: %v", err)
	}
}

func TestValidateDocumentMaxLength(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(testCollection())

	doc := validDoc()
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'x'
	}
	doc["label"] = string(long)
	assertStructural(t, r.ValidateDocument("org_contact", doc), "label", "maxLength")
}

func TestValidateDocumentMinimum(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(testCollection())

	doc := validDoc()
	doc["rank"] = 0
	assertStructural(t, r.ValidateDocument("org_contact", doc), "rank", "minimum")
}

func TestValidateDocumentTypeMismatches(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(testCollection())

	cases := []struct {
		field string
		value interface{}
	}{
		{"_id", "not-a-uuid"},
		{"contact_type", 7},
		{"is_preferred", "yes"},
		{"rank", "first"},
		{"verified_at", "2026-01-01"},
		{"monthly_cost", 12.5},
		{"tags", "billing"},
		{"meta", "source"},
	}
	for _, tc := range cases {
		doc := validDoc()
		doc[tc.field] = tc.value
		assertStructural(t, r.ValidateDocument("org_contact", doc), tc.field, "type")
	}
}

func TestValidateDocumentArrayItems(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(testCollection())

	doc := validDoc()
	doc["tags"] = bson.A{"ok", 42}
	assertStructural(t, r.ValidateDocument("org_contact", doc), "tags[1]", "type")
}

func TestValidateDocumentNestedObject(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(testCollection())

	doc := validDoc()
	doc["meta"] = bson.M{"weight": -1}
	assertStructural(t, r.ValidateDocument("org_contact", doc), "meta.weight", "minimum")
}

func TestValidateDocumentUndeclaredField(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(testCollection())

	doc := validDoc()
	doc["nickname"] = "hq"
	assertStructural(t, r.ValidateDocument("org_contact", doc), "nickname", "undeclared")
}

func TestValidateDocumentUUIDForms(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(testCollection())

	// Both the Go uuid.UUID form and the wire bson.Binary form must pass.
	doc := validDoc()
	id := uuid.New()
	doc["_id"] = bson.Binary{Subtype: bson.TypeBinaryUUID, Data: id[:]}
	if err := r.ValidateDocument("org_contact", doc); err != nil {
		t.Fatalf("binData subtype 4 rejected: %v", err)
	}

	doc["_id"] = bson.Binary{Subtype: 0, Data: id[:]}
	assertStructural(t, r.ValidateDocument("org_contact", doc), "_id", "type")
}

func TestValidateDocumentUnknownCollection(t *testing.T) {
	r := NewRegistry()
	err := r.ValidateDocument("ghost", bson.M{})
	if errs.KindOf(err) != errs.KindStructural {
		t.Fatalf("expected structural violation, got %v", err)
	}
}

// ===== Materialization =====

func TestJSONSchemaCarriesContract(t *testing.T) {
	c := testCollection()
	if err := c.compile(); err != nil {
		t.Fatalf("compile: %v", err)
	}
	s := c.JSONSchema()

	if s["title"] != "Organization Contact" {
		t.Errorf("title missing: %v", s["title"])
	}
	required, ok := s["required"].([]string)
	if !ok {
		t.Fatalf("required is %T", s["required"])
	}
	want := map[string]bool{"_id": true, "org_id": true, "contact_type": true, "is_preferred": true}
	if len(required) != len(want) {
		t.Fatalf("required = %v", required)
	}
	for _, f := range required {
		if !want[f] {
			t.Errorf("unexpected required field %q", f)
		}
	}

	props := s["properties"].(bson.M)
	ct := props["contact_type"].(bson.M)
	if ct["bsonType"] != "string" {
		t.Errorf("contact_type bsonType = %v", ct["bsonType"])
	}
	if enum, ok := ct["enum"].([]string); !ok || len(enum) != 4 {
		t.Errorf("contact_type enum = %v", ct["enum"])
	}
	zip := props["zip"].(bson.M)
	if zip["pattern"] != "^[0-9]{5}(-[0-9]{4})?$" {
		t.Errorf("zip pattern = %v", zip["pattern"])
	}
	label := props["label"].(bson.M)
	if label["maxLength"] != 100 {
		t.Errorf("label maxLength = %v", label["maxLength"])
	}
	rank := props["rank"].(bson.M)
	if rank["minimum"] != 1 {
		t.Errorf("rank minimum = %v", rank["minimum"])
	}
	tags := props["tags"].(bson.M)
	items := tags["items"].(bson.M)
	if items["bsonType"] != "string" {
		t.Errorf("tags items = %v", items)
	}
	meta := props["meta"].(bson.M)
	nested := meta["properties"].(bson.M)
	if _, ok := nested["source"]; !ok {
		t.Errorf("meta nested properties missing source: %v", nested)
	}

	v := c.Validator()
	if _, ok := v["$jsonSchema"]; !ok {
		t.Error("validator does not wrap $jsonSchema")
	}
}

func TestIndexModelsPreserveOrderAndFlags(t *testing.T) {
	c := testCollection()
	if err := c.compile(); err != nil {
		t.Fatalf("compile: %v", err)
	}
	models := c.IndexModels()
	if len(models) != 2 {
		t.Fatalf("expected 2 index models, got %d", len(models))
	}

	keys := models[0].Keys.(bson.D)
	if keys[0].Key != "org_id" || keys[1].Key != "contact_type" {
		t.Errorf("composite order not preserved: %v", keys)
	}
	first := applyIndexOptions(t, models[0].Options)
	if first.Unique != nil {
		t.Error("non-unique index got unique option")
	}

	second := applyIndexOptions(t, models[1].Options)
	if second.Unique == nil || !*second.Unique {
		t.Error("unique flag dropped")
	}
	if second.Sparse == nil || !*second.Sparse {
		t.Error("sparse flag dropped")
	}
}

func applyIndexOptions(t *testing.T, b *options.IndexOptionsBuilder) options.IndexOptions {
	t.Helper()
	var io options.IndexOptions
	for _, set := range b.Opts {
		if err := set(&io); err != nil {
			t.Fatalf("apply index option: %v", err)
		}
	}
	return io
}

func TestReferencesListsForeignKeys(t *testing.T) {
	c := testCollection()
	if err := c.compile(); err != nil {
		t.Fatalf("compile: %v", err)
	}
	refs := c.References()
	if len(refs) != 1 || refs[0].Name != "org_id" || refs[0].Ref != "org" {
		t.Fatalf("unexpected references: %+v", refs)
	}
}
