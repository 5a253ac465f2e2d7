// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/canonical/team-access-service/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, creator *types.User, name string, discoverable bool) (*types.Tenant, error)
	GetTenant(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context, user *types.User) ([]*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, enabled bool) (*types.Tenant, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context, discoverableOnly bool) ([]*types.Tenant, error)
	SetTenantStatus(ctx context.Context, id string, enabled bool) error

	ListRoleTemplates(ctx context.Context) ([]*types.RoleTemplate, error)
	ListTemplatePermissionKeys(ctx context.Context, templateID string) ([]string, error)
	CreateRole(ctx context.Context, r *types.Role) (*types.Role, error)
	ReplaceRolePermissions(ctx context.Context, roleID string, keys []string) error

	CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error)
	ApproveMembership(ctx context.Context, id, approverID string) error
	AssignUserTenantRole(ctx context.Context, userID, tenantID, roleID string) error
}

type DBClientInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}
