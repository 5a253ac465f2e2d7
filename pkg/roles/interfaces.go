// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"

	"github.com/canonical/team-access-service/internal/access"
	"github.com/canonical/team-access-service/internal/types"
)

type ServiceInterface interface {
	ListRoles(ctx context.Context, actx *access.Context) ([]*types.Role, error)
	ListPermissions(ctx context.Context) ([]*types.Permission, error)
	GetRolePermissions(ctx context.Context, actx *access.Context, roleID string) ([]string, error)
	UpdateRolePermissions(ctx context.Context, actx *access.Context, roleID string, keys []string) ([]string, error)
}

type StorageInterface interface {
	GetRoleByID(ctx context.Context, id string) (*types.Role, error)
	ListRolesByTenantID(ctx context.Context, tenantID string) ([]*types.Role, error)
	ListPermissions(ctx context.Context) ([]*types.Permission, error)
	ListPermissionKeysByRoleID(ctx context.Context, roleID string) ([]string, error)
	ReplaceRolePermissions(ctx context.Context, roleID string, keys []string) error
}

type DBClientInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}
