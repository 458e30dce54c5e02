package portfolio

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

type Repository interface {
	Create(ctx context.Context, p *Portfolio) error
	Get(ctx context.Context, id uuid.UUID) (*Portfolio, error)
	Update(ctx context.Context, p *Portfolio) error

	AddMember(ctx context.Context, m *Member) error
	MemberByPortfolioOrg(ctx context.Context, portfolioID, orgID uuid.UUID) (*Member, error)
	MembersForPortfolio(ctx context.Context, portfolioID uuid.UUID) ([]*Member, error)
}
