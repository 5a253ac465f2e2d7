// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"context"

	"github.com/canonical/team-access-service/internal/access"
	"github.com/canonical/team-access-service/internal/types"
)

type ServiceInterface interface {
	RequestMembership(ctx context.Context, user *types.User, tenantID string, requestedRoleID *string) (*types.Membership, error)
	ApproveMembership(ctx context.Context, actx *access.Context, membershipID, roleID string) (*types.Membership, error)
	RejectMembership(ctx context.Context, actx *access.Context, membershipID, reason string) (*types.Membership, error)
	ListMyMemberships(ctx context.Context, user *types.User) ([]*types.Membership, error)
	ListPendingMemberships(ctx context.Context, actx *access.Context) ([]*types.Membership, error)
	ListUnassignedUsers(ctx context.Context, actx *access.Context) ([]*types.User, error)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetRoleByID(ctx context.Context, id string) (*types.Role, error)
	ListUnassignedUsers(ctx context.Context) ([]*types.User, error)

	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	GetMembershipByID(ctx context.Context, id string) (*types.Membership, error)
	ListMembershipsByUserID(ctx context.Context, userID string) ([]*types.Membership, error)
	ListPendingMembershipsByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	ApproveMembership(ctx context.Context, id, approverID string) error
	RejectMembership(ctx context.Context, id, approverID, reason string) error
	AssignUserTenantRole(ctx context.Context, userID, tenantID, roleID string) error
}

type DBClientInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}
