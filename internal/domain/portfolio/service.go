package portfolio

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wellnecity/edm/internal/errs"
	"github.com/wellnecity/edm/internal/platform/db"
)

type Service struct {
	repo Repository
	tx   db.Transactor
	log  zerolog.Logger
}

func NewService(repo Repository, tx db.Transactor, log zerolog.Logger) *Service {
	return &Service{repo: repo, tx: tx, log: log.With().Str("component", "portfolio").Logger()}
}

// Create validates the ownership variant and nesting before inserting. A
// portfolio is owned by an org, by a person, or by nobody; never both.
func (s *Service) Create(ctx context.Context, p *Portfolio) error {
	if !p.PortfolioType.Valid() {
		return errs.Structural("portfolio", "portfolio_type", "enum", "unknown portfolio type %q", p.PortfolioType)
	}
	if !p.OwnerValid() {
		return errs.Relationship("portfolio", "owner-exclusive",
			"portfolio %s sets both owner_org_id and owner_person_id", p.ID)
	}
	if p.ParentPortfolioID != nil {
		if err := s.checkNesting(ctx, p.ID, *p.ParentPortfolioID); err != nil {
			return err
		}
	}
	return s.repo.Create(ctx, p)
}

// Reparent moves a portfolio under a new parent, refusing cycles.
func (s *Service) Reparent(ctx context.Context, portfolioID uuid.UUID, newParentID *uuid.UUID) error {
	return s.tx.InTransaction(ctx, "portfolio", func(ctx context.Context) error {
		p, err := s.repo.Get(ctx, portfolioID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship("portfolio", "fk-existence", "portfolio %s does not exist", portfolioID)
			}
			return err
		}
		if newParentID != nil {
			if err := s.checkNesting(ctx, portfolioID, *newParentID); err != nil {
				return err
			}
		}
		p.ParentPortfolioID = newParentID
		p.UpdatedAt = time.Now()
		return s.repo.Update(ctx, p)
	})
}

// checkNesting verifies the parent exists and that portfolioID is not among
// the parent's ancestors.
func (s *Service) checkNesting(ctx context.Context, portfolioID, parentID uuid.UUID) error {
	if parentID == portfolioID {
		return errs.Relationship("portfolio", "acyclic", "portfolio %s cannot be its own parent", portfolioID)
	}
	visited := make(map[uuid.UUID]bool)
	cur, err := s.repo.Get(ctx, parentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return errs.Relationship("portfolio", "fk-existence", "parent portfolio %s does not exist", parentID)
		}
		return err
	}
	for {
		if cur.ID == portfolioID || visited[cur.ID] {
			return errs.Relationship("portfolio", "acyclic",
				"nesting %s under %s closes a cycle", portfolioID, parentID)
		}
		visited[cur.ID] = true
		if cur.ParentPortfolioID == nil {
			return nil
		}
		cur, err = s.repo.Get(ctx, *cur.ParentPortfolioID)
		if err != nil {
			return err
		}
	}
}

// AddMember links an org into a portfolio. The (portfolio, org) pair is
// unique; re-adding an existing member is rejected rather than duplicated.
func (s *Service) AddMember(ctx context.Context, m *Member) error {
	return s.tx.InTransaction(ctx, "portfolio_member", func(ctx context.Context) error {
		if _, err := s.repo.Get(ctx, m.PortfolioID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship("portfolio_member", "fk-existence",
					"portfolio %s does not exist", m.PortfolioID)
			}
			return err
		}
		existing, err := s.repo.MemberByPortfolioOrg(ctx, m.PortfolioID, m.OrgID)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
		if existing != nil {
			return errs.Relationship("portfolio_member", "unique-membership",
				"org %s is already a member of portfolio %s", m.OrgID, m.PortfolioID)
		}
		return s.repo.AddMember(ctx, m)
	})
}
