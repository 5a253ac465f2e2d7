// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/team-access-service/internal/access"
	"github.com/canonical/team-access-service/internal/logging"
	"github.com/canonical/team-access-service/internal/monitoring"
	"github.com/canonical/team-access-service/internal/storage"
	"github.com/canonical/team-access-service/internal/tracing"
	"github.com/canonical/team-access-service/internal/types"
)

type Service struct {
	storage   StorageInterface
	db        DBClientInterface
	evaluator access.EvaluatorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListRoles(ctx context.Context, actx *access.Context) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.ListRoles")
	defer span.End()

	if actx == nil {
		return nil, access.ErrUnauthenticated
	}
	if actx.TenantID == "" {
		return nil, fmt.Errorf("%w: a team is required", access.ErrInvalidArgument)
	}

	return s.storage.ListRolesByTenantID(ctx, actx.TenantID)
}

func (s *Service) ListPermissions(ctx context.Context) ([]*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.ListPermissions")
	defer span.End()

	return s.storage.ListPermissions(ctx)
}

func (s *Service) GetRolePermissions(ctx context.Context, actx *access.Context, roleID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.GetRolePermissions")
	defer span.End()

	if _, err := s.loadScoped(ctx, actx, roleID); err != nil {
		return nil, err
	}

	return s.storage.ListPermissionKeysByRoleID(ctx, roleID)
}

// UpdateRolePermissions replaces the permission set of a role and drops the
// cached set so the change applies to the next check on this node.
func (s *Service) UpdateRolePermissions(ctx context.Context, actx *access.Context, roleID string, keys []string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.UpdateRolePermissions")
	defer span.End()

	if _, err := s.loadScoped(ctx, actx, roleID); err != nil {
		return nil, err
	}

	catalog, err := s.storage.ListPermissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load permission catalog: %w", err)
	}
	known := make(map[string]struct{}, len(catalog))
	for _, p := range catalog {
		known[p.Key] = struct{}{}
	}
	for _, key := range keys {
		if _, ok := known[key]; !ok {
			return nil, fmt.Errorf("%w: unknown permission key %q", access.ErrNotFound, key)
		}
	}

	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		return s.storage.ReplaceRolePermissions(ctx, roleID, keys)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update role permissions: %w", err)
	}

	s.evaluator.Invalidate(roleID)
	s.logger.Infof("role %s permissions updated by %s", roleID, actx.User.ID)

	return s.storage.ListPermissionKeysByRoleID(ctx, roleID)
}

// loadScoped fetches a role and hides roles outside the caller's team
// behind a not-found error.
func (s *Service) loadScoped(ctx context.Context, actx *access.Context, roleID string) (*types.Role, error) {
	if actx == nil || actx.User == nil {
		return nil, access.ErrUnauthenticated
	}

	role, err := s.storage.GetRoleByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, access.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load role: %w", err)
	}

	if !actx.MasterAdmin && role.TenantID != actx.TenantID {
		s.logger.Security().AuthzFailure(actx.User.ID, "role access outside team")
		return nil, access.ErrNotFound
	}

	return role, nil
}

func NewService(
	storage StorageInterface,
	db DBClientInterface,
	evaluator access.EvaluatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.db = db
	s.evaluator = evaluator
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

var _ ServiceInterface = (*Service)(nil)
