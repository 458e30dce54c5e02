// Package schema declares the collection contracts of the enterprise data
// model: field names, BSON types, enumerations, required sets, string
// patterns, numeric bounds, and secondary indexes. The declarations are
// consumed two ways: materialized into MongoDB $jsonSchema validators and
// index models at database-initialization time, and evaluated directly by
// ValidateDocument as a pre-write structural check.
package schema

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/wellnecity/edm/internal/errs"
)

// FieldType is the declared BSON type of a field.
type FieldType string

const (
	TypeUUID    FieldType = "binData" // 128-bit identifier, binData subtype 4
	TypeString  FieldType = "string"
	TypeDate    FieldType = "date"
	TypeDecimal FieldType = "decimal"
	TypeInt     FieldType = "int"
	TypeBool    FieldType = "bool"
	TypeArray   FieldType = "array"
	TypeObject  FieldType = "object"
)

// Field declares one property of a collection's document contract.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Description string

	// Ref names the collection this UUID field references. Referential
	// integrity is never enforced by the store; the integrity checker
	// walks these declarations instead.
	Ref string

	Enum      []string // string fields: allowed values
	Pattern   string   // string fields: anchored regular expression
	MaxLength int      // string fields: 0 means unbounded
	Minimum   *int     // int fields: inclusive lower bound

	Items      *Field  // array fields: element contract
	Properties []Field // object fields: nested contract (all optional)

	pattern *regexp.Regexp // compiled at registration
}

// IntMin is a convenience for Field.Minimum literals.
func IntMin(n int) *int { return &n }

// Index declares one secondary access path. Keys are in composite order;
// order matters and must be preserved when materialized.
type Index struct {
	Keys   []string
	Unique bool
	Sparse bool
}

// Collection is the full declared contract for one entity type.
type Collection struct {
	Name        string
	Title       string
	Description string
	Fields      []Field
	Indexes     []Index

	byName map[string]*Field
}

// compile validates the declaration itself and builds lookup state.
func (c *Collection) compile() error {
	if c.Name == "" {
		return fmt.Errorf("collection with empty name")
	}
	c.byName = make(map[string]*Field, len(c.Fields))
	for i := range c.Fields {
		f := &c.Fields[i]
		if f.Name == "" {
			return fmt.Errorf("%s: field with empty name", c.Name)
		}
		if _, dup := c.byName[f.Name]; dup {
			return fmt.Errorf("%s: duplicate field %q", c.Name, f.Name)
		}
		if f.Pattern != "" {
			re, err := regexp.Compile(f.Pattern)
			if err != nil {
				return fmt.Errorf("%s.%s: bad pattern: %w", c.Name, f.Name, err)
			}
			f.pattern = re
		}
		if f.Ref != "" && f.Type != TypeUUID {
			return fmt.Errorf("%s.%s: Ref requires binData type", c.Name, f.Name)
		}
		c.byName[f.Name] = f
	}
	for _, idx := range c.Indexes {
		if len(idx.Keys) == 0 {
			return fmt.Errorf("%s: index with no keys", c.Name)
		}
		for _, k := range idx.Keys {
			if _, ok := c.byName[k]; !ok {
				return fmt.Errorf("%s: index key %q is not a declared field", c.Name, k)
			}
		}
	}
	return nil
}

// Field returns the declaration for name, or nil.
func (c *Collection) Field(name string) *Field {
	return c.byName[name]
}

// ValidateDocument checks doc against the collection contract. The first
// failing rule aborts with a StructuralViolation naming the field and rule;
// there is no partial acceptance.
func (c *Collection) ValidateDocument(doc bson.M) error {
	for i := range c.Fields {
		f := &c.Fields[i]
		val, present := doc[f.Name]
		if !present || val == nil {
			if f.Required {
				return errs.Structural(c.Name, f.Name, "required", "required field is missing")
			}
			continue
		}
		if err := c.validateValue(f, f.Name, val); err != nil {
			return err
		}
	}
	for name := range doc {
		if _, declared := c.byName[name]; !declared {
			return errs.Structural(c.Name, name, "undeclared", "field is not part of the %s contract", c.Name)
		}
	}
	return nil
}

func (c *Collection) validateValue(f *Field, path string, val interface{}) error {
	switch f.Type {
	case TypeUUID:
		if !isUUIDValue(val) {
			return errs.Structural(c.Name, path, "type", "expected UUID binData, got %T", val)
		}
	case TypeString:
		s, ok := val.(string)
		if !ok {
			return errs.Structural(c.Name, path, "type", "expected string, got %T", val)
		}
		if f.MaxLength > 0 && len(s) > f.MaxLength {
			return errs.Structural(c.Name, path, "maxLength", "length %d exceeds maximum %d", len(s), f.MaxLength)
		}
		if len(f.Enum) > 0 && !contains(f.Enum, s) {
			return errs.Structural(c.Name, path, "enum", "value %q is not one of %v", s, f.Enum)
		}
		if f.pattern != nil && !f.pattern.MatchString(s) {
			return errs.Structural(c.Name, path, "pattern", "value %q does not match %s", s, f.Pattern)
		}
	case TypeDate:
		switch val.(type) {
		case time.Time, bson.DateTime:
		default:
			return errs.Structural(c.Name, path, "type", "expected date, got %T", val)
		}
	case TypeDecimal:
		switch val.(type) {
		case bson.Decimal128, decimal.Decimal:
		default:
			return errs.Structural(c.Name, path, "type", "expected decimal, got %T", val)
		}
	case TypeInt:
		n, ok := intValue(val)
		if !ok {
			return errs.Structural(c.Name, path, "type", "expected int, got %T", val)
		}
		if f.Minimum != nil && n < *f.Minimum {
			return errs.Structural(c.Name, path, "minimum", "value %d is below minimum %d", n, *f.Minimum)
		}
	case TypeBool:
		if _, ok := val.(bool); !ok {
			return errs.Structural(c.Name, path, "type", "expected bool, got %T", val)
		}
	case TypeArray:
		items, ok := arrayValue(val)
		if !ok {
			return errs.Structural(c.Name, path, "type", "expected array, got %T", val)
		}
		if f.Items != nil {
			for i, item := range items {
				if err := c.validateValue(f.Items, fmt.Sprintf("%s[%d]", path, i), item); err != nil {
					return err
				}
			}
		}
	case TypeObject:
		obj, ok := objectValue(val)
		if !ok {
			return errs.Structural(c.Name, path, "type", "expected object, got %T", val)
		}
		for i := range f.Properties {
			p := &f.Properties[i]
			if pv, present := obj[p.Name]; present && pv != nil {
				if err := c.validateValue(p, path+"."+p.Name, pv); err != nil {
					return err
				}
			}
		}
	default:
		return errs.Structural(c.Name, path, "type", "unknown declared type %q", f.Type)
	}
	return nil
}

// References returns the declared foreign-key fields in declaration order.
func (c *Collection) References() []Field {
	var refs []Field
	for _, f := range c.Fields {
		if f.Ref != "" {
			refs = append(refs, f)
		}
	}
	return refs
}

func isUUIDValue(val interface{}) bool {
	switch v := val.(type) {
	case uuid.UUID:
		return true
	case bson.Binary:
		return v.Subtype == bson.TypeBinaryUUID && len(v.Data) == 16
	case [16]byte:
		return true
	default:
		return false
	}
}

func intValue(val interface{}) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	default:
		return 0, false
	}
}

func arrayValue(val interface{}) ([]interface{}, bool) {
	switch v := val.(type) {
	case bson.A:
		return v, true
	case []interface{}:
		return v, true
	default:
		return nil, false
	}
}

func objectValue(val interface{}) (map[string]interface{}, bool) {
	switch v := val.(type) {
	case bson.M:
		return v, true
	case map[string]interface{}:
		return v, true
	default:
		return nil, false
	}
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// Registry holds the full declared entity set, keyed by collection name.
type Registry struct {
	order  []string
	byName map[string]*Collection
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*Collection)}
}

// Register compiles and adds a collection declaration.
func (r *Registry) Register(c Collection) error {
	if err := c.compile(); err != nil {
		return err
	}
	if _, dup := r.byName[c.Name]; dup {
		return fmt.Errorf("collection %q registered twice", c.Name)
	}
	cc := c
	r.byName[c.Name] = &cc
	r.order = append(r.order, c.Name)
	return nil
}

// MustRegister is Register for static declarations assembled at startup.
func (r *Registry) MustRegister(cs ...Collection) {
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
}

// Collection returns the registered declaration for name.
func (r *Registry) Collection(name string) (*Collection, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Names returns all registered collection names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// SortedNames returns collection names sorted, for stable reporting.
func (r *Registry) SortedNames() []string {
	out := r.Names()
	sort.Strings(out)
	return out
}

// ValidateDocument validates doc against the named collection's contract.
func (r *Registry) ValidateDocument(collection string, doc bson.M) error {
	c, ok := r.byName[collection]
	if !ok {
		return errs.Structural(collection, "", "unknown-collection", "collection is not registered")
	}
	return c.ValidateDocument(doc)
}
