package integrity

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/wellnecity/edm/internal/errs"
)

// Source yields the record set a check runs over.
type Source interface {
	All(ctx context.Context, collection string) ([]bson.M, error)
}

type mongoSource struct{ database *mongo.Database }

// NewMongoSource reads the live database.
func NewMongoSource(database *mongo.Database) Source {
	return &mongoSource{database: database}
}

func (s *mongoSource) All(ctx context.Context, collection string) ([]bson.M, error) {
	cur, err := s.database.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, errs.Unavailable(err)
	}
	defer cur.Close(ctx)
	var docs []bson.M
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, errs.Unavailable(err)
		}
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, errs.Unavailable(err)
	}
	return docs, nil
}

// Dataset is an in-memory Source for tests and offline linting.
type Dataset map[string][]bson.M

func (d Dataset) All(_ context.Context, collection string) ([]bson.M, error) {
	return d[collection], nil
}

// Add appends a document to a collection.
func (d Dataset) Add(collection string, doc bson.M) {
	d[collection] = append(d[collection], doc)
}
