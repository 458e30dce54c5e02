package org

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wellnecity/edm/internal/domain/lifecycle"
	"github.com/wellnecity/edm/internal/errs"
	"github.com/wellnecity/edm/internal/platform/db"
)

type Service struct {
	repo Repository
	tx   db.Transactor
	log  zerolog.Logger
}

func NewService(repo Repository, tx db.Transactor, log zerolog.Logger) *Service {
	return &Service{repo: repo, tx: tx, log: log.With().Str("component", "org").Logger()}
}

// AssignRole records a new role for an organization.
func (s *Service) AssignRole(ctx context.Context, r *OrgRole) error {
	if !r.RoleType.Valid() {
		return errs.Structural("org_role", "role_type", "enum", "unknown role type %q", r.RoleType)
	}
	if _, err := s.repo.GetOrg(ctx, r.OrgID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return errs.Relationship("org_role", "fk-existence", "org %s does not exist", r.OrgID)
		}
		return err
	}
	if !lifecycle.DatesConsistent(r.IsActive, r.EffectiveDate, r.TerminationDate, time.Now()) {
		return errs.Relationship("org_role", "date-activity", "is_active conflicts with termination_date")
	}
	return s.repo.CreateRole(ctx, r)
}

// roleMatches verifies the role row exists and carries the expected type.
// Every *_details attach goes through this; a detail row hanging off the
// wrong role type is the classic silent-corruption bug this model forbids.
func (s *Service) roleMatches(ctx context.Context, collection string, orgRoleID uuid.UUID, want RoleType) error {
	role, err := s.repo.GetRole(ctx, orgRoleID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return errs.Relationship(collection, "fk-existence", "org_role %s does not exist", orgRoleID)
		}
		return err
	}
	if role.RoleType != want {
		return errs.Relationship(collection, "role-detail-match",
			"org_role %s has type %s, detail requires %s", orgRoleID, role.RoleType, want)
	}
	return nil
}

func (s *Service) AttachEmployerDetails(ctx context.Context, d *EmployerDetails) error {
	if err := s.roleMatches(ctx, "employer_details", d.OrgRoleID, RoleEmployer); err != nil {
		return err
	}
	return s.repo.InsertRoleDetail(ctx, "employer_details", d)
}

func (s *Service) AttachClientDetails(ctx context.Context, d *ClientDetails) error {
	if err := s.roleMatches(ctx, "client_details", d.OrgRoleID, RoleClient); err != nil {
		return err
	}
	return s.repo.InsertRoleDetail(ctx, "client_details", d)
}

func (s *Service) AttachVendorDetails(ctx context.Context, d *VendorDetails) error {
	if err := s.roleMatches(ctx, "vendor_details", d.OrgRoleID, RoleVendor); err != nil {
		return err
	}
	return s.repo.InsertRoleDetail(ctx, "vendor_details", d)
}

func (s *Service) AttachBrokerDetails(ctx context.Context, d *BrokerDetails) error {
	if err := s.roleMatches(ctx, "broker_details", d.OrgRoleID, RoleBroker); err != nil {
		return err
	}
	return s.repo.InsertRoleDetail(ctx, "broker_details", d)
}

func (s *Service) AttachCarrierDetails(ctx context.Context, d *CarrierDetails) error {
	if err := s.roleMatches(ctx, "carrier_details", d.OrgRoleID, RoleCarrier); err != nil {
		return err
	}
	return s.repo.InsertRoleDetail(ctx, "carrier_details", d)
}

func (s *Service) AttachHealthPlanSponsorDetails(ctx context.Context, d *HealthPlanSponsorDetails) error {
	if err := s.roleMatches(ctx, "health_plan_sponsor_details", d.OrgRoleID, RoleHealthPlanSponsor); err != nil {
		return err
	}
	return s.repo.InsertRoleDetail(ctx, "health_plan_sponsor_details", d)
}

func (s *Service) AttachProviderOrgDetails(ctx context.Context, d *ProviderOrgDetails) error {
	if err := s.roleMatches(ctx, "provider_org_details", d.OrgRoleID, RoleProviderOrg); err != nil {
		return err
	}
	return s.repo.InsertRoleDetail(ctx, "provider_org_details", d)
}

// TransitionContract moves a contract through its lifecycle. Terminal
// states reject any further movement.
func (s *Service) TransitionContract(ctx context.Context, contractID uuid.UUID, next ContractStatus, when time.Time) error {
	return s.tx.InTransaction(ctx, "contract", func(ctx context.Context) error {
		c, err := s.repo.GetContract(ctx, contractID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship("contract", "fk-existence", "contract %s does not exist", contractID)
			}
			return err
		}
		if !c.Status.CanTransitionTo(next) {
			return errs.Relationship("contract", "status-transition",
				"contract %s cannot move %s -> %s", contractID, c.Status, next)
		}
		c.Status = next
		if next == ContractExpired || next == ContractTerminated {
			c.TerminationDate = &when
		}
		c.UpdatedAt = when
		return s.repo.UpdateContract(ctx, c)
	})
}

// AddNode inserts a hierarchy node. Roots sit at level 0 with no parent;
// children sit exactly one level below a parent in the same structure.
func (s *Service) AddNode(ctx context.Context, n *OrgStructureNode) error {
	if n.ParentNodeID == nil {
		if n.Level != 0 {
			return errs.Relationship("org_structure_node", "node-level",
				"root node %s must be level 0, got %d", n.ID, n.Level)
		}
		return s.repo.CreateNode(ctx, n)
	}
	parent, err := s.repo.GetNode(ctx, *n.ParentNodeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return errs.Relationship("org_structure_node", "fk-existence",
				"parent node %s does not exist", *n.ParentNodeID)
		}
		return err
	}
	if parent.OrgStructureID != n.OrgStructureID {
		return errs.Relationship("org_structure_node", "structure-uniform",
			"node %s and parent %s belong to different structures", n.ID, parent.ID)
	}
	if n.Level != parent.Level+1 {
		return errs.Relationship("org_structure_node", "node-level",
			"node %s must be level %d (parent+1), got %d", n.ID, parent.Level+1, n.Level)
	}
	return s.repo.CreateNode(ctx, n)
}

// ReparentNode moves a node (and its subtree) under a new parent, refusing
// any move that would close a cycle. Levels across the subtree are
// recomputed in the same transaction.
func (s *Service) ReparentNode(ctx context.Context, nodeID uuid.UUID, newParentID *uuid.UUID) error {
	return s.tx.InTransaction(ctx, "org_structure_node", func(ctx context.Context) error {
		node, err := s.repo.GetNode(ctx, nodeID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return errs.Relationship("org_structure_node", "fk-existence", "node %s does not exist", nodeID)
			}
			return err
		}

		newLevel := 0
		if newParentID != nil {
			if *newParentID == nodeID {
				return errs.Relationship("org_structure_node", "acyclic", "node %s cannot be its own parent", nodeID)
			}
			parent, err := s.repo.GetNode(ctx, *newParentID)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					return errs.Relationship("org_structure_node", "fk-existence",
						"parent node %s does not exist", *newParentID)
				}
				return err
			}
			if parent.OrgStructureID != node.OrgStructureID {
				return errs.Relationship("org_structure_node", "structure-uniform",
					"cannot reparent across structures")
			}
			// Walk up from the new parent; hitting the node means the move
			// would close a cycle. The visited set also guards against a
			// pre-existing cycle in stored data.
			visited := make(map[uuid.UUID]bool)
			for cur := parent; ; {
				if cur.ID == nodeID || visited[cur.ID] {
					return errs.Relationship("org_structure_node", "acyclic",
						"reparenting %s under %s closes a cycle", nodeID, *newParentID)
				}
				visited[cur.ID] = true
				if cur.ParentNodeID == nil {
					break
				}
				cur, err = s.repo.GetNode(ctx, *cur.ParentNodeID)
				if err != nil {
					return err
				}
			}
			newLevel = parent.Level + 1
		}

		delta := newLevel - node.Level
		node.ParentNodeID = newParentID
		node.Level = newLevel
		node.UpdatedAt = time.Now()
		if err := s.repo.UpdateNode(ctx, node); err != nil {
			return err
		}
		if delta == 0 {
			return nil
		}
		return s.relevelSubtree(ctx, node, delta)
	})
}

func (s *Service) relevelSubtree(ctx context.Context, root *OrgStructureNode, delta int) error {
	all, err := s.repo.NodesForStructure(ctx, root.OrgStructureID)
	if err != nil {
		return err
	}
	children := make(map[uuid.UUID][]*OrgStructureNode)
	for _, n := range all {
		if n.ParentNodeID != nil {
			children[*n.ParentNodeID] = append(children[*n.ParentNodeID], n)
		}
	}
	queue := children[root.ID]
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		n.Level += delta
		n.UpdatedAt = time.Now()
		if err := s.repo.UpdateNode(ctx, n); err != nil {
			return err
		}
		queue = append(queue, children[n.ID]...)
	}
	return nil
}

// SetPrimaryIdentifier makes one identifier the primary of its type for an
// org, clearing the flag on every sibling in the same transaction so a
// single winner holds after commit.
func (s *Service) SetPrimaryIdentifier(ctx context.Context, orgID uuid.UUID, identifierType OrgIdentifierType, winnerID uuid.UUID) error {
	return s.tx.InTransaction(ctx, "org_identifier", func(ctx context.Context) error {
		siblings, err := s.repo.IdentifiersForOrgType(ctx, orgID, identifierType)
		if err != nil {
			return err
		}
		winnerSeen := false
		for _, sib := range siblings {
			if sib.ID == winnerID {
				winnerSeen = true
				continue
			}
			if sib.IsPrimary {
				if err := s.repo.SetIdentifierPrimary(ctx, sib.ID, false); err != nil {
					return err
				}
			}
		}
		if !winnerSeen {
			return errs.Relationship("org_identifier", "single-primary",
				"identifier %s is not a %s identifier of org %s", winnerID, identifierType, orgID)
		}
		return s.repo.SetIdentifierPrimary(ctx, winnerID, true)
	})
}

// SetPreferredContact makes one contact the preferred of its type for an
// org, clearing siblings atomically.
func (s *Service) SetPreferredContact(ctx context.Context, orgID uuid.UUID, contactType ContactType, winnerID uuid.UUID) error {
	return s.tx.InTransaction(ctx, "org_contact", func(ctx context.Context) error {
		siblings, err := s.repo.ContactsForOrgType(ctx, orgID, contactType)
		if err != nil {
			return err
		}
		winnerSeen := false
		for _, sib := range siblings {
			if sib.ID == winnerID {
				winnerSeen = true
				continue
			}
			if sib.IsPreferred {
				if err := s.repo.SetContactPreferred(ctx, sib.ID, false); err != nil {
					return err
				}
			}
		}
		if !winnerSeen {
			return errs.Relationship("org_contact", "single-preferred",
				"contact %s is not a %s contact of org %s", winnerID, contactType, orgID)
		}
		return s.repo.SetContactPreferred(ctx, winnerID, true)
	})
}

// UpdateContactUsability moves a contact's usability status, enforcing the
// shared state machine.
func (s *Service) UpdateContactUsability(ctx context.Context, contactID uuid.UUID, next lifecycle.UsabilityStatus, when time.Time) error {
	c, err := s.repo.GetContact(ctx, contactID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return errs.Relationship("org_contact", "fk-existence", "contact %s does not exist", contactID)
		}
		return err
	}
	if !c.UsabilityStatus.CanTransitionTo(next) {
		return errs.Relationship("org_contact", "status-transition",
			"contact %s cannot move %s -> %s", contactID, c.UsabilityStatus, next)
	}
	c.UsabilityStatus = next
	c.UsabilityStatusDate = when
	c.UpdatedAt = when
	return s.repo.UpdateContactUsability(ctx, c)
}
