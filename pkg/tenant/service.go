// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

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
	storage StorageInterface
	db      DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateTenant provisions a team and its roles from the global templates in
// one transaction. A non master-admin creator joins immediately with the
// admin role, skipping the pending state.
func (s *Service) CreateTenant(ctx context.Context, creator *types.User, name string, discoverable bool) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	if creator == nil {
		return nil, access.ErrUnauthenticated
	}
	if !creator.MasterAdmin && creator.TenantID != nil {
		return nil, fmt.Errorf("%w: already a member of a team", access.ErrConflict)
	}

	var created *types.Tenant

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		t, err := s.storage.CreateTenant(ctx, &types.Tenant{
			Name:         name,
			Discoverable: discoverable,
			Enabled:      true,
		})
		if err != nil {
			if storage.IsDuplicateKeyError(err) {
				return fmt.Errorf("%w: team name already taken", access.ErrConflict)
			}
			return fmt.Errorf("failed to create team: %w", err)
		}

		templates, err := s.storage.ListRoleTemplates(ctx)
		if err != nil {
			return fmt.Errorf("failed to list role templates: %w", err)
		}
		if len(templates) == 0 {
			// No templates means no admin role can exist, abort the whole
			// creation rather than leave an unmanageable team.
			s.logger.Security().InconsistentState(creator.ID, "no role templates configured")
			return access.ErrInconsistent
		}

		var adminRole *types.Role
		for _, tpl := range templates {
			role, err := s.storage.CreateRole(ctx, &types.Role{
				TenantID: t.ID,
				Name:     tpl.Name,
				IsAdmin:  tpl.IsAdmin,
			})
			if err != nil {
				return fmt.Errorf("failed to create role %q: %w", tpl.Name, err)
			}

			keys, err := s.storage.ListTemplatePermissionKeys(ctx, tpl.ID)
			if err != nil {
				return fmt.Errorf("failed to list template permissions: %w", err)
			}
			if len(keys) > 0 {
				if err := s.storage.ReplaceRolePermissions(ctx, role.ID, keys); err != nil {
					return fmt.Errorf("failed to seed role permissions: %w", err)
				}
			}

			if tpl.IsAdmin && adminRole == nil {
				adminRole = role
			}
		}
		if adminRole == nil {
			s.logger.Security().InconsistentState(creator.ID, "no admin role template configured")
			return access.ErrInconsistent
		}

		if !creator.MasterAdmin {
			m, err := s.storage.CreateMembership(ctx, &types.Membership{
				UserID:   creator.ID,
				TenantID: t.ID,
				Status:   types.MembershipStatusPending,
			})
			if err != nil {
				return fmt.Errorf("failed to create membership: %w", err)
			}
			if err := s.storage.ApproveMembership(ctx, m.ID, creator.ID); err != nil {
				return fmt.Errorf("failed to approve creator membership: %w", err)
			}
			if err := s.storage.AssignUserTenantRole(ctx, creator.ID, t.ID, adminRole.ID); err != nil {
				return fmt.Errorf("failed to assign admin role: %w", err)
			}
		}

		created = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("created team %s (%s)", created.Name, created.ID)

	return created, nil
}

func (s *Service) GetTenant(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	t, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, access.ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

// ListTenants returns all teams for master admins and only discoverable
// enabled ones for everybody else.
func (s *Service) ListTenants(ctx context.Context, user *types.User) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	discoverableOnly := user == nil || !user.MasterAdmin

	return s.storage.ListTenants(ctx, discoverableOnly)
}

func (s *Service) SetTenantStatus(ctx context.Context, id string, enabled bool) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.SetTenantStatus")
	defer span.End()

	if err := s.storage.SetTenantStatus(ctx, id, enabled); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, access.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update team status: %w", err)
	}

	t, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated team: %w", err)
	}

	return t, nil
}

func NewService(
	storage StorageInterface,
	db DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.db = db
	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

var _ ServiceInterface = (*Service)(nil)
