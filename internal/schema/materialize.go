package schema

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// JSONSchema materializes the collection contract as a MongoDB $jsonSchema
// validator document, the form consumed by createCollection.
func (c *Collection) JSONSchema() bson.M {
	props := bson.M{}
	var required []string
	for i := range c.Fields {
		f := &c.Fields[i]
		props[f.Name] = fieldSchema(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}
	schema := bson.M{
		"bsonType":   "object",
		"properties": props,
	}
	if c.Title != "" {
		schema["title"] = c.Title
	}
	if c.Description != "" {
		schema["description"] = c.Description
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Validator wraps JSONSchema in the $jsonSchema operator for use as the
// collection validator.
func (c *Collection) Validator() bson.M {
	return bson.M{"$jsonSchema": c.JSONSchema()}
}

// CreateOptions returns the createCollection options carrying the validator.
func (c *Collection) CreateOptions() *options.CreateCollectionOptionsBuilder {
	return options.CreateCollection().SetValidator(c.Validator())
}

func fieldSchema(f *Field) bson.M {
	s := bson.M{"bsonType": string(f.Type)}
	if f.Description != "" {
		s["description"] = f.Description
	}
	switch f.Type {
	case TypeString:
		if len(f.Enum) > 0 {
			s["enum"] = f.Enum
		}
		if f.Pattern != "" {
			s["pattern"] = f.Pattern
		}
		if f.MaxLength > 0 {
			s["maxLength"] = f.MaxLength
		}
	case TypeInt:
		if f.Minimum != nil {
			s["minimum"] = *f.Minimum
		}
	case TypeArray:
		if f.Items != nil {
			s["items"] = fieldSchema(f.Items)
		}
	case TypeObject:
		if len(f.Properties) > 0 {
			props := bson.M{}
			for i := range f.Properties {
				p := &f.Properties[i]
				props[p.Name] = fieldSchema(p)
			}
			s["properties"] = props
		}
	}
	return s
}

// IndexModels materializes the declared secondary indexes. Composite key
// order is preserved by using bson.D keys; all declared keys ascend.
func (c *Collection) IndexModels() []mongo.IndexModel {
	models := make([]mongo.IndexModel, 0, len(c.Indexes))
	for _, idx := range c.Indexes {
		keys := make(bson.D, 0, len(idx.Keys))
		for _, k := range idx.Keys {
			keys = append(keys, bson.E{Key: k, Value: 1})
		}
		opts := options.Index().SetName(indexName(idx))
		if idx.Unique {
			opts.SetUnique(true)
		}
		if idx.Sparse {
			opts.SetSparse(true)
		}
		models = append(models, mongo.IndexModel{Keys: keys, Options: opts})
	}
	return models
}

// IndexNames returns the materialized index names in declaration order, for
// drift comparison against a live collection.
func (c *Collection) IndexNames() []string {
	names := make([]string, 0, len(c.Indexes))
	for _, idx := range c.Indexes {
		names = append(names, indexName(idx))
	}
	return names
}

func indexName(idx Index) string {
	parts := make([]string, 0, len(idx.Keys))
	for _, k := range idx.Keys {
		parts = append(parts, fmt.Sprintf("%s_1", k))
	}
	return strings.Join(parts, "_")
}
