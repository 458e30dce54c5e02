package person

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

func findOne[T any](ctx context.Context, col *mongo.Collection, filter bson.M) (*T, error) {
	var out T
	err := col.FindOne(ctx, filter).Decode(&out)
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

func (r *mongoRepo) CreatePerson(ctx context.Context, p *Person) error {
	return insertOne(ctx, r.col("person"), p)
}

func (r *mongoRepo) GetPerson(ctx context.Context, id uuid.UUID) (*Person, error) {
	return findOne[Person](ctx, r.col("person"), bson.M{"_id": id})
}

func (r *mongoRepo) CreateIdentifier(ctx context.Context, i *Identifier) error {
	return insertOne(ctx, r.col("person_identifier"), i)
}

func (r *mongoRepo) IdentifiersForPersonType(ctx context.Context, personID uuid.UUID, identifierType IdentifierType) ([]*Identifier, error) {
	return findAll[Identifier](ctx, r.col("person_identifier"),
		bson.M{"person_id": personID, "identifier_type": string(identifierType)})
}

func (r *mongoRepo) SetIdentifierPrimary(ctx context.Context, id uuid.UUID, primary bool) error {
	return setField(ctx, r.col("person_identifier"), id, "is_primary", primary)
}

func (r *mongoRepo) CreateContact(ctx context.Context, c *Contact) error {
	return insertOne(ctx, r.col("person_contact"), c)
}

func (r *mongoRepo) ContactsForPersonType(ctx context.Context, personID uuid.UUID, contactType ContactType) ([]*Contact, error) {
	return findAll[Contact](ctx, r.col("person_contact"),
		bson.M{"person_id": personID, "contact_type": string(contactType)})
}

func (r *mongoRepo) SetContactPreferred(ctx context.Context, id uuid.UUID, preferred bool) error {
	return setField(ctx, r.col("person_contact"), id, "is_preferred", preferred)
}

func (r *mongoRepo) CreateEmployee(ctx context.Context, e *Employee) error {
	return insertOne(ctx, r.col("employee"), e)
}

func (r *mongoRepo) GetEmployee(ctx context.Context, id uuid.UUID) (*Employee, error) {
	return findOne[Employee](ctx, r.col("employee"), bson.M{"_id": id})
}

func (r *mongoRepo) UpdateEmployee(ctx context.Context, e *Employee) error {
	res, err := r.col("employee").ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	if err != nil {
		return errs.Unavailable(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepo) CreateProvider(ctx context.Context, p *Provider) error {
	return insertOne(ctx, r.col("provider"), p)
}

func (r *mongoRepo) GetProvider(ctx context.Context, id uuid.UUID) (*Provider, error) {
	return findOne[Provider](ctx, r.col("provider"), bson.M{"_id": id})
}

func (r *mongoRepo) CreateAffiliation(ctx context.Context, a *Affiliation) error {
	return insertOne(ctx, r.col("provider_affiliation"), a)
}

func (r *mongoRepo) AffiliationsForProvider(ctx context.Context, providerID uuid.UUID) ([]*Affiliation, error) {
	return findAll[Affiliation](ctx, r.col("provider_affiliation"), bson.M{"provider_id": providerID})
}

func (r *mongoRepo) SetAffiliationPrimary(ctx context.Context, id uuid.UUID, primary bool) error {
	return setField(ctx, r.col("provider_affiliation"), id, "is_primary", primary)
}

func (r *mongoRepo) CreateHousehold(ctx context.Context, h *Household) error {
	return insertOne(ctx, r.col("household"), h)
}

func (r *mongoRepo) GetHousehold(ctx context.Context, id uuid.UUID) (*Household, error) {
	return findOne[Household](ctx, r.col("household"), bson.M{"_id": id})
}

func (r *mongoRepo) AddParticipant(ctx context.Context, p *HouseholdParticipant) error {
	if _, err := r.col("household_participant").InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.Relationship("household_participant", "unique-participation",
				"person %s already participates in household %s", p.PersonID, p.HouseholdID)
		}
		return errs.Unavailable(err)
	}
	return nil
}

func (r *mongoRepo) ParticipantByHouseholdPerson(ctx context.Context, householdID, personID uuid.UUID) (*HouseholdParticipant, error) {
	return findOne[HouseholdParticipant](ctx, r.col("household_participant"),
		bson.M{"household_id": householdID, "person_id": personID})
}
