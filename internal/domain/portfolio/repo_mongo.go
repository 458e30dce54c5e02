package portfolio

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

func (r *mongoRepo) Create(ctx context.Context, p *Portfolio) error {
	if _, err := r.database.Collection("portfolio").InsertOne(ctx, p); err != nil {
		return errs.Unavailable(err)
	}
	return nil
}

func (r *mongoRepo) Get(ctx context.Context, id uuid.UUID) (*Portfolio, error) {
	var p Portfolio
	err := r.database.Collection("portfolio").FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errs.Unavailable(err)
	}
	return &p, nil
}

func (r *mongoRepo) Update(ctx context.Context, p *Portfolio) error {
	res, err := r.database.Collection("portfolio").ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return errs.Unavailable(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepo) AddMember(ctx context.Context, m *Member) error {
	if _, err := r.database.Collection("portfolio_member").InsertOne(ctx, m); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errs.Relationship("portfolio_member", "unique-membership",
				"org %s is already a member of portfolio %s", m.OrgID, m.PortfolioID)
		}
		return errs.Unavailable(err)
	}
	return nil
}

func (r *mongoRepo) MemberByPortfolioOrg(ctx context.Context, portfolioID, orgID uuid.UUID) (*Member, error) {
	var m Member
	err := r.database.Collection("portfolio_member").
		FindOne(ctx, bson.M{"portfolio_id": portfolioID, "org_id": orgID}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errs.Unavailable(err)
	}
	return &m, nil
}

func (r *mongoRepo) MembersForPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]*Member, error) {
	cur, err := r.database.Collection("portfolio_member").Find(ctx, bson.M{"portfolio_id": portfolioID})
	if err != nil {
		return nil, errs.Unavailable(err)
	}
	defer cur.Close(ctx)
	var out []*Member
	for cur.Next(ctx) {
		var m Member
		if err := cur.Decode(&m); err != nil {
			return nil, errs.Unavailable(err)
		}
		out = append(out, &m)
	}
	if err := cur.Err(); err != nil {
		return nil, errs.Unavailable(err)
	}
	return out, nil
}
