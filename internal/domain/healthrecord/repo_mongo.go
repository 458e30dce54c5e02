package healthrecord

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

func (r *mongoRepo) CreateComposition(ctx context.Context, c *Composition) error {
	return insertOne(ctx, r.col("health_record_composition"), c)
}

func (r *mongoRepo) GetComposition(ctx context.Context, id uuid.UUID) (*Composition, error) {
	return findOne[Composition](ctx, r.col("health_record_composition"), bson.M{"_id": id})
}

func (r *mongoRepo) UpdateComposition(ctx context.Context, c *Composition) error {
	return replaceByID(ctx, r.col("health_record_composition"), c.ID, c)
}

func (r *mongoRepo) CompositionsForMember(ctx context.Context, memberID uuid.UUID) ([]*Composition, error) {
	return findAll[Composition](ctx, r.col("health_record_composition"), bson.M{"member_id": memberID})
}

func (r *mongoRepo) CreateProblem(ctx context.Context, p *Problem) error {
	return insertOne(ctx, r.col("problem"), p)
}

func (r *mongoRepo) GetProblem(ctx context.Context, id uuid.UUID) (*Problem, error) {
	return findOne[Problem](ctx, r.col("problem"), bson.M{"_id": id})
}

func (r *mongoRepo) CreateAllergy(ctx context.Context, a *Allergy) error {
	return insertOne(ctx, r.col("allergy"), a)
}

func (r *mongoRepo) CreateMedication(ctx context.Context, m *Medication) error {
	return insertOne(ctx, r.col("medication"), m)
}

func (r *mongoRepo) CreateVitalSign(ctx context.Context, v *VitalSign) error {
	return insertOne(ctx, r.col("vital_sign"), v)
}

func (r *mongoRepo) CreateLabResult(ctx context.Context, l *LabResult) error {
	return insertOne(ctx, r.col("lab_result"), l)
}

func (r *mongoRepo) CreateProcedure(ctx context.Context, p *ProcedureRecord) error {
	return insertOne(ctx, r.col("procedure_record"), p)
}

func (r *mongoRepo) CreateImmunization(ctx context.Context, im *Immunization) error {
	return insertOne(ctx, r.col("immunization"), im)
}

func (r *mongoRepo) CreateClinicalNote(ctx context.Context, n *ClinicalNote) error {
	return insertOne(ctx, r.col("clinical_note"), n)
}

func (r *mongoRepo) CreateCarePlan(ctx context.Context, cp *CarePlan) error {
	return insertOne(ctx, r.col("care_plan"), cp)
}

func (r *mongoRepo) CreateEncounter(ctx context.Context, e *EncounterRecord) error {
	return insertOne(ctx, r.col("encounter_record"), e)
}

func (r *mongoRepo) GetEncounter(ctx context.Context, id uuid.UUID) (*EncounterRecord, error) {
	return findOne[EncounterRecord](ctx, r.col("encounter_record"), bson.M{"_id": id})
}

func (r *mongoRepo) AppendProvenance(ctx context.Context, p *Provenance) error {
	return insertOne(ctx, r.col("health_record_provenance"), p)
}

func (r *mongoRepo) ProvenanceForTarget(ctx context.Context, targetType string, targetID uuid.UUID) ([]*Provenance, error) {
	return findAll[Provenance](ctx, r.col("health_record_provenance"),
		bson.M{"target_type": targetType, "target_id": targetID})
}
