// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/canonical/team-access-service/internal/logging"
	"github.com/canonical/team-access-service/internal/monitoring"
	"github.com/canonical/team-access-service/internal/tracing"
	"github.com/canonical/team-access-service/internal/types"
)

// PermissionEvaluator answers permission checks from the role permission
// set. Per-role sets are cached with a short TTL so stale grants converge
// without restarts; role edits invalidate eagerly on the mutating node.
type PermissionEvaluator struct {
	storage StorageInterface
	cache   *ristretto.Cache[string, []string]
	ttl     time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (e *PermissionEvaluator) Check(ctx context.Context, user *types.User, permissionKey string) (bool, error) {
	ctx, span := e.tracer.Start(ctx, "access.PermissionEvaluator.Check")
	defer span.End()

	if user == nil || permissionKey == "" {
		return false, nil
	}
	if user.MasterAdmin {
		return true, nil
	}
	if user.RoleID == nil {
		return false, nil
	}

	keys, err := e.permissionKeys(ctx, *user.RoleID)
	if err != nil {
		return false, err
	}

	return slices.Contains(keys, permissionKey), nil
}

func (e *PermissionEvaluator) permissionKeys(ctx context.Context, roleID string) ([]string, error) {
	if keys, ok := e.cache.Get(roleID); ok {
		return keys, nil
	}

	keys, err := e.storage.ListPermissionKeysByRoleID(ctx, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load role permissions: %w", err)
	}

	e.cache.SetWithTTL(roleID, keys, 1, e.ttl)

	return keys, nil
}

// Invalidate drops the cached permission set for a role. Called after role
// permission edits so the change takes effect immediately on this node.
func (e *PermissionEvaluator) Invalidate(roleID string) {
	e.cache.Del(roleID)
}

func NewPermissionEvaluator(storage StorageInterface, ttl time.Duration, maxCost int64, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *PermissionEvaluator {
	e := new(PermissionEvaluator)

	cache, err := ristretto.NewCache(&ristretto.Config[string, []string]{
		NumCounters: 10 * maxCost,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		logger.Fatalf("failed to create permission cache: %v", err)
	}

	e.storage = storage
	e.cache = cache
	e.ttl = ttl
	e.tracer = tracer
	e.monitor = monitor
	e.logger = logger

	return e
}

var _ EvaluatorInterface = (*PermissionEvaluator)(nil)
