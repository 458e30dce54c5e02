package benefits

import (
	"context"
	"errors"
	"time"

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

func (r *mongoRepo) CreatePlan(ctx context.Context, p *BenefitPlan) error {
	return insertOne(ctx, r.col("benefit_plan"), p)
}

func (r *mongoRepo) GetPlan(ctx context.Context, id uuid.UUID) (*BenefitPlan, error) {
	return findOne[BenefitPlan](ctx, r.col("benefit_plan"), bson.M{"_id": id})
}

func (r *mongoRepo) CreateCoverageType(ctx context.Context, ct *CoverageType) error {
	if _, err := r.col("coverage_type").InsertOne(ctx, ct); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.Relationship("coverage_type", "unique-tier",
				"plan %s already has a %s tier", ct.BenefitPlanID, ct.Name)
		}
		return errs.Unavailable(err)
	}
	return nil
}

func (r *mongoRepo) GetCoverageType(ctx context.Context, id uuid.UUID) (*CoverageType, error) {
	return findOne[CoverageType](ctx, r.col("coverage_type"), bson.M{"_id": id})
}

func (r *mongoRepo) CreatePlanLimit(ctx context.Context, pl *PlanLimit) error {
	return insertOne(ctx, r.col("plan_limit"), pl)
}

func (r *mongoRepo) GetPlanLimit(ctx context.Context, id uuid.UUID) (*PlanLimit, error) {
	return findOne[PlanLimit](ctx, r.col("plan_limit"), bson.M{"_id": id})
}

func (r *mongoRepo) CreateEligibility(ctx context.Context, e *Eligibility) error {
	return insertOne(ctx, r.col("eligibility"), e)
}

func (r *mongoRepo) EligibilitiesForEmployee(ctx context.Context, employeeID uuid.UUID) ([]*Eligibility, error) {
	return findAll[Eligibility](ctx, r.col("eligibility"), bson.M{"employee_id": employeeID})
}

func (r *mongoRepo) CreateCoverage(ctx context.Context, c *Coverage) error {
	return insertOne(ctx, r.col("coverage"), c)
}

func (r *mongoRepo) GetCoverage(ctx context.Context, id uuid.UUID) (*Coverage, error) {
	return findOne[Coverage](ctx, r.col("coverage"), bson.M{"_id": id})
}

func (r *mongoRepo) UpdateCoverage(ctx context.Context, c *Coverage) error {
	return replaceByID(ctx, r.col("coverage"), c.ID, c)
}

func (r *mongoRepo) CreateMember(ctx context.Context, m *PlanMember) error {
	if _, err := r.col("plan_member").InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.Relationship("plan_member", "unique-membership",
				"member %s collides with an existing membership", m.ID)
		}
		return errs.Unavailable(err)
	}
	return nil
}

func (r *mongoRepo) GetMember(ctx context.Context, id uuid.UUID) (*PlanMember, error) {
	return findOne[PlanMember](ctx, r.col("plan_member"), bson.M{"_id": id})
}

func (r *mongoRepo) MembersForCoverage(ctx context.Context, coverageID uuid.UUID) ([]*PlanMember, error) {
	return findAll[PlanMember](ctx, r.col("plan_member"), bson.M{"coverage_id": coverageID})
}

func (r *mongoRepo) SubscriberForCoverage(ctx context.Context, coverageID uuid.UUID) (*PlanMember, error) {
	return findOne[PlanMember](ctx, r.col("plan_member"),
		bson.M{"coverage_id": coverageID, "member_type": string(MemberSubscriber)})
}

func (r *mongoRepo) CreateAccumulator(ctx context.Context, a *Accumulator) error {
	return insertOne(ctx, r.col("accumulator"), a)
}

func (r *mongoRepo) GetAccumulator(ctx context.Context, id uuid.UUID) (*Accumulator, error) {
	return findOne[Accumulator](ctx, r.col("accumulator"), bson.M{"_id": id})
}

func (r *mongoRepo) UpdateAccumulator(ctx context.Context, a *Accumulator) error {
	return replaceByID(ctx, r.col("accumulator"), a.ID, a)
}

func (r *mongoRepo) MemberAccumulator(ctx context.Context, planLimitID, planMemberID uuid.UUID, periodStart time.Time) (*Accumulator, error) {
	return findOne[Accumulator](ctx, r.col("accumulator"),
		bson.M{"plan_limit_id": planLimitID, "plan_member_id": planMemberID, "period_start": periodStart})
}

func (r *mongoRepo) CoverageAccumulator(ctx context.Context, planLimitID, coverageID uuid.UUID, periodStart time.Time) (*Accumulator, error) {
	return findOne[Accumulator](ctx, r.col("accumulator"),
		bson.M{"plan_limit_id": planLimitID, "coverage_id": coverageID, "period_start": periodStart})
}

func (r *mongoRepo) GetEventByID(ctx context.Context, eventID string) (*AccumulatorEvent, error) {
	return findOne[AccumulatorEvent](ctx, r.col("accumulator_event"), bson.M{"event_id": eventID})
}

func (r *mongoRepo) AppendEvent(ctx context.Context, ev *AccumulatorEvent) error {
	if _, err := r.col("accumulator_event").InsertOne(ctx, ev); err != nil {
		// A concurrent replay of the same event ID won the race after our
		// ledger check. Abort so the retry finds the ledger row and no-ops.
		if mongo.IsDuplicateKeyError(err) {
			return errs.Conflict("accumulator_event", "event %s applied concurrently", ev.EventID)
		}
		return errs.Unavailable(err)
	}
	return nil
}
