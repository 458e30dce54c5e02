package org

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/wellnecity/edm/internal/errs"
)

type mongoRepo struct{ database *mongo.Database }

func NewMongoRepository(database *mongo.Database) Repository {
	return &mongoRepo{database: database}
}

func (r *mongoRepo) col(name string) *mongo.Collection {
	return r.database.Collection(name)
}

func insertOne(ctx context.Context, col *mongo.Collection, doc interface{}) error {
	if _, err := col.InsertOne(ctx, doc); err != nil {
		return errs.Unavailable(err)
	}
	return nil
}

func findByID[T any](ctx context.Context, col *mongo.Collection, id uuid.UUID) (*T, error) {
	var out T
	err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errs.Unavailable(err)
	}
	return &out, nil
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M) ([]*T, error) {
	cur, err := col.Find(ctx, filter)
	if err != nil {
		return nil, errs.Unavailable(err)
	}
	defer cur.Close(ctx)
	var items []*T
	for cur.Next(ctx) {
		var item T
		if err := cur.Decode(&item); err != nil {
			return nil, errs.Unavailable(err)
		}
		items = append(items, &item)
	}
	if err := cur.Err(); err != nil {
		return nil, errs.Unavailable(err)
	}
	return items, nil
}

func replaceByID(ctx context.Context, col *mongo.Collection, id uuid.UUID, doc interface{}) error {
	res, err := col.ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return errs.Unavailable(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func setField(ctx context.Context, col *mongo.Collection, id uuid.UUID, field string, value interface{}) error {
	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return errs.Unavailable(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepo) CreateOrg(ctx context.Context, o *Org) error {
	return insertOne(ctx, r.col("org"), o)
}

func (r *mongoRepo) GetOrg(ctx context.Context, id uuid.UUID) (*Org, error) {
	return findByID[Org](ctx, r.col("org"), id)
}

func (r *mongoRepo) CreateRole(ctx context.Context, role *OrgRole) error {
	return insertOne(ctx, r.col("org_role"), role)
}

func (r *mongoRepo) GetRole(ctx context.Context, id uuid.UUID) (*OrgRole, error) {
	return findByID[OrgRole](ctx, r.col("org_role"), id)
}

func (r *mongoRepo) RolesForOrg(ctx context.Context, orgID uuid.UUID) ([]*OrgRole, error) {
	return findAll[OrgRole](ctx, r.col("org_role"), bson.M{"org_id": orgID})
}

func (r *mongoRepo) InsertRoleDetail(ctx context.Context, collection string, detail interface{}) error {
	return insertOne(ctx, r.col(collection), detail)
}

func (r *mongoRepo) CreateRelationship(ctx context.Context, rel *OrgRelationship) error {
	return insertOne(ctx, r.col("org_relationship"), rel)
}

func (r *mongoRepo) GetRelationship(ctx context.Context, id uuid.UUID) (*OrgRelationship, error) {
	return findByID[OrgRelationship](ctx, r.col("org_relationship"), id)
}

func (r *mongoRepo) CreateContract(ctx context.Context, c *Contract) error {
	return insertOne(ctx, r.col("contract"), c)
}

func (r *mongoRepo) GetContract(ctx context.Context, id uuid.UUID) (*Contract, error) {
	return findByID[Contract](ctx, r.col("contract"), id)
}

func (r *mongoRepo) UpdateContract(ctx context.Context, c *Contract) error {
	return replaceByID(ctx, r.col("contract"), c.ID, c)
}

func (r *mongoRepo) CreateStructure(ctx context.Context, s *OrgStructure) error {
	return insertOne(ctx, r.col("org_structure"), s)
}

func (r *mongoRepo) GetStructure(ctx context.Context, id uuid.UUID) (*OrgStructure, error) {
	return findByID[OrgStructure](ctx, r.col("org_structure"), id)
}

func (r *mongoRepo) CreateNode(ctx context.Context, n *OrgStructureNode) error {
	return insertOne(ctx, r.col("org_structure_node"), n)
}

func (r *mongoRepo) GetNode(ctx context.Context, id uuid.UUID) (*OrgStructureNode, error) {
	return findByID[OrgStructureNode](ctx, r.col("org_structure_node"), id)
}

func (r *mongoRepo) UpdateNode(ctx context.Context, n *OrgStructureNode) error {
	return replaceByID(ctx, r.col("org_structure_node"), n.ID, n)
}

func (r *mongoRepo) NodesForStructure(ctx context.Context, structureID uuid.UUID) ([]*OrgStructureNode, error) {
	return findAll[OrgStructureNode](ctx, r.col("org_structure_node"), bson.M{"org_structure_id": structureID})
}

func (r *mongoRepo) CreateIdentifier(ctx context.Context, i *OrgIdentifier) error {
	return insertOne(ctx, r.col("org_identifier"), i)
}

func (r *mongoRepo) GetIdentifier(ctx context.Context, id uuid.UUID) (*OrgIdentifier, error) {
	return findByID[OrgIdentifier](ctx, r.col("org_identifier"), id)
}

func (r *mongoRepo) IdentifiersForOrgType(ctx context.Context, orgID uuid.UUID, identifierType OrgIdentifierType) ([]*OrgIdentifier, error) {
	return findAll[OrgIdentifier](ctx, r.col("org_identifier"),
		bson.M{"org_id": orgID, "identifier_type": string(identifierType)})
}

func (r *mongoRepo) SetIdentifierPrimary(ctx context.Context, id uuid.UUID, primary bool) error {
	return setField(ctx, r.col("org_identifier"), id, "is_primary", primary)
}

func (r *mongoRepo) CreateContact(ctx context.Context, c *OrgContact) error {
	return insertOne(ctx, r.col("org_contact"), c)
}

func (r *mongoRepo) GetContact(ctx context.Context, id uuid.UUID) (*OrgContact, error) {
	return findByID[OrgContact](ctx, r.col("org_contact"), id)
}

func (r *mongoRepo) ContactsForOrgType(ctx context.Context, orgID uuid.UUID, contactType ContactType) ([]*OrgContact, error) {
	return findAll[OrgContact](ctx, r.col("org_contact"),
		bson.M{"org_id": orgID, "contact_type": string(contactType)})
}

func (r *mongoRepo) SetContactPreferred(ctx context.Context, id uuid.UUID, preferred bool) error {
	return setField(ctx, r.col("org_contact"), id, "is_preferred", preferred)
}

func (r *mongoRepo) UpdateContactUsability(ctx context.Context, c *OrgContact) error {
	return replaceByID(ctx, r.col("org_contact"), c.ID, c)
}
