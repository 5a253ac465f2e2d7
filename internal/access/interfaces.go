// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/team-access-service/internal/types"
)

// StorageInterface is the check-exempt read surface of the trusted kernel.
// It spans exactly the relations authorization decisions are made from; no
// other code path may read them without going through the guard.
type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	InsertUser(ctx context.Context, id, email string) (*types.User, error)
	GetRoleByID(ctx context.Context, id string) (*types.Role, error)
	GetActiveMembership(ctx context.Context, userID, tenantID string) (*types.Membership, error)
	ListPermissionKeysByRoleID(ctx context.Context, roleID string) ([]string, error)
}

type IdentityResolverInterface interface {
	Resolve(ctx context.Context, accountID string) (*types.User, error)
	Provision(ctx context.Context, accountID, email string) (*types.User, error)
}

type ContextResolverInterface interface {
	Resolve(ctx context.Context, user *types.User, requestedTenantID string) (*Context, error)
}

type EvaluatorInterface interface {
	Check(ctx context.Context, user *types.User, permissionKey string) (bool, error)
	Invalidate(roleID string)
}

type GuardInterface interface {
	Identify(ctx context.Context, accountID string) (*types.User, error)
	Authorize(ctx context.Context, accountID, requestedTenantID, permissionKey string) (*Context, error)
}
