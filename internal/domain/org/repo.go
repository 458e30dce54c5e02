package org

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when a row does not exist.
var ErrNotFound = errors.New("not found")

type Repository interface {
	CreateOrg(ctx context.Context, o *Org) error
	GetOrg(ctx context.Context, id uuid.UUID) (*Org, error)

	CreateRole(ctx context.Context, r *OrgRole) error
	GetRole(ctx context.Context, id uuid.UUID) (*OrgRole, error)
	RolesForOrg(ctx context.Context, orgID uuid.UUID) ([]*OrgRole, error)

	// InsertRoleDetail writes a typed *_details row into its collection.
	InsertRoleDetail(ctx context.Context, collection string, detail interface{}) error

	CreateRelationship(ctx context.Context, r *OrgRelationship) error
	GetRelationship(ctx context.Context, id uuid.UUID) (*OrgRelationship, error)

	CreateContract(ctx context.Context, c *Contract) error
	GetContract(ctx context.Context, id uuid.UUID) (*Contract, error)
	UpdateContract(ctx context.Context, c *Contract) error

	CreateStructure(ctx context.Context, s *OrgStructure) error
	GetStructure(ctx context.Context, id uuid.UUID) (*OrgStructure, error)
	CreateNode(ctx context.Context, n *OrgStructureNode) error
	GetNode(ctx context.Context, id uuid.UUID) (*OrgStructureNode, error)
	UpdateNode(ctx context.Context, n *OrgStructureNode) error
	NodesForStructure(ctx context.Context, structureID uuid.UUID) ([]*OrgStructureNode, error)

	CreateIdentifier(ctx context.Context, i *OrgIdentifier) error
	GetIdentifier(ctx context.Context, id uuid.UUID) (*OrgIdentifier, error)
	IdentifiersForOrgType(ctx context.Context, orgID uuid.UUID, identifierType OrgIdentifierType) ([]*OrgIdentifier, error)
	SetIdentifierPrimary(ctx context.Context, id uuid.UUID, primary bool) error

	CreateContact(ctx context.Context, c *OrgContact) error
	GetContact(ctx context.Context, id uuid.UUID) (*OrgContact, error)
	ContactsForOrgType(ctx context.Context, orgID uuid.UUID, contactType ContactType) ([]*OrgContact, error)
	SetContactPreferred(ctx context.Context, id uuid.UUID, preferred bool) error
	UpdateContactUsability(ctx context.Context, c *OrgContact) error
}
