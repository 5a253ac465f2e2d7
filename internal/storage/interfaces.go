// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/team-access-service/internal/types"
)

type StorageInterface interface {
	// users
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	InsertUser(ctx context.Context, id, email string) (*types.User, error)
	AssignUserTenantRole(ctx context.Context, userID, tenantID, roleID string) error
	ListUnassignedUsers(ctx context.Context) ([]*types.User, error)

	// tenants
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context, discoverableOnly bool) ([]*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, enabled bool) error

	// roles and permissions
	ListRoleTemplates(ctx context.Context) ([]*types.RoleTemplate, error)
	ListTemplatePermissionKeys(ctx context.Context, templateID string) ([]string, error)
	CreateRole(ctx context.Context, r *types.Role) (*types.Role, error)
	GetRoleByID(ctx context.Context, id string) (*types.Role, error)
	ListRolesByTenantID(ctx context.Context, tenantID string) ([]*types.Role, error)
	ListPermissions(ctx context.Context) ([]*types.Permission, error)
	ListPermissionKeysByRoleID(ctx context.Context, roleID string) ([]string, error)
	ReplaceRolePermissions(ctx context.Context, roleID string, keys []string) error

	// memberships
	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	GetMembershipByID(ctx context.Context, id string) (*types.Membership, error)
	GetActiveMembership(ctx context.Context, userID, tenantID string) (*types.Membership, error)
	ListMembershipsByUserID(ctx context.Context, userID string) ([]*types.Membership, error)
	ListPendingMembershipsByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error)
	ApproveMembership(ctx context.Context, id, approverID string) error
	RejectMembership(ctx context.Context, id, approverID, reason string) error
}
