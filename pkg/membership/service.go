// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

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

// RequestMembership files a join request against a team. The requested role
// is advisory, the approver assigns the effective role at approval time.
func (s *Service) RequestMembership(ctx context.Context, user *types.User, tenantID string, requestedRoleID *string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.RequestMembership")
	defer span.End()

	if user == nil {
		return nil, access.ErrUnauthenticated
	}
	if user.MasterAdmin {
		return nil, fmt.Errorf("%w: master admins do not join teams", access.ErrInvalidArgument)
	}
	if user.TenantID != nil {
		return nil, fmt.Errorf("%w: already a member of a team", access.ErrConflict)
	}

	tenant, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, access.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	if !tenant.Enabled {
		// Disabled teams are indistinguishable from missing ones.
		return nil, access.ErrNotFound
	}

	if requestedRoleID != nil {
		role, err := s.storage.GetRoleByID(ctx, *requestedRoleID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown requested role", access.ErrInvalidArgument)
			}
			return nil, fmt.Errorf("failed to load requested role: %w", err)
		}
		if role.TenantID != tenantID {
			return nil, fmt.Errorf("%w: requested role belongs to another team", access.ErrInvalidArgument)
		}
	}

	created, err := s.storage.CreateMembership(ctx, &types.Membership{
		UserID:          user.ID,
		TenantID:        tenantID,
		Status:          types.MembershipStatusPending,
		RequestedRoleID: requestedRoleID,
	})
	if err != nil {
		if storage.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: a membership request already exists", access.ErrConflict)
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	s.logger.Infof("membership %s requested by %s for team %s", created.ID, user.ID, tenantID)

	return created, nil
}

// ApproveMembership decides a pending request and assigns the member role in
// the same transaction. Losing a decision race returns a conflict, the
// record keeps its first decision.
func (s *Service) ApproveMembership(ctx context.Context, actx *access.Context, membershipID, roleID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ApproveMembership")
	defer span.End()

	m, err := s.loadScoped(ctx, actx, membershipID)
	if err != nil {
		return nil, err
	}

	if roleID == "" {
		if m.RequestedRoleID == nil {
			return nil, fmt.Errorf("%w: a role is required to approve", access.ErrInvalidArgument)
		}
		roleID = *m.RequestedRoleID
	}

	role, err := s.storage.GetRoleByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown role", access.ErrInvalidArgument)
		}
		return nil, fmt.Errorf("failed to load role: %w", err)
	}
	if role.TenantID != m.TenantID {
		return nil, fmt.Errorf("%w: role belongs to another team", access.ErrInvalidArgument)
	}

	if !CanTransition(m.Status, types.MembershipStatusApproved) {
		return nil, fmt.Errorf("%w: membership already decided", access.ErrConflict)
	}

	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.ApproveMembership(ctx, m.ID, actx.User.ID); err != nil {
			return err
		}
		return s.storage.AssignUserTenantRole(ctx, m.UserID, m.TenantID, role.ID)
	})
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: membership already decided", access.ErrConflict)
		}
		return nil, fmt.Errorf("failed to approve membership: %w", err)
	}

	s.logger.Infof("membership %s approved by %s", m.ID, actx.User.ID)

	return s.storage.GetMembershipByID(ctx, m.ID)
}

func (s *Service) RejectMembership(ctx context.Context, actx *access.Context, membershipID, reason string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.RejectMembership")
	defer span.End()

	if reason == "" {
		return nil, fmt.Errorf("%w: a reason is required to reject", access.ErrInvalidArgument)
	}

	m, err := s.loadScoped(ctx, actx, membershipID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(m.Status, types.MembershipStatusRejected) {
		return nil, fmt.Errorf("%w: membership already decided", access.ErrConflict)
	}

	if err := s.storage.RejectMembership(ctx, m.ID, actx.User.ID, reason); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: membership already decided", access.ErrConflict)
		}
		return nil, fmt.Errorf("failed to reject membership: %w", err)
	}

	s.logger.Infof("membership %s rejected by %s", m.ID, actx.User.ID)

	return s.storage.GetMembershipByID(ctx, m.ID)
}

func (s *Service) ListMyMemberships(ctx context.Context, user *types.User) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ListMyMemberships")
	defer span.End()

	if user == nil {
		return nil, access.ErrUnauthenticated
	}

	return s.storage.ListMembershipsByUserID(ctx, user.ID)
}

func (s *Service) ListPendingMemberships(ctx context.Context, actx *access.Context) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ListPendingMemberships")
	defer span.End()

	if actx == nil {
		return nil, access.ErrUnauthenticated
	}
	if actx.TenantID == "" {
		return nil, fmt.Errorf("%w: a team is required", access.ErrInvalidArgument)
	}

	return s.storage.ListPendingMembershipsByTenantID(ctx, actx.TenantID)
}

// ListUnassignedUsers returns accounts that signed in but belong to no team
// yet. Master admins use it to chase stalled onboarding.
func (s *Service) ListUnassignedUsers(ctx context.Context, actx *access.Context) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "membership.Service.ListUnassignedUsers")
	defer span.End()

	if actx == nil || actx.User == nil {
		return nil, access.ErrUnauthenticated
	}
	if !actx.MasterAdmin {
		s.logger.Security().AuthzFailure(actx.User.ID, "users.unassigned")
		return nil, access.ErrForbidden
	}

	return s.storage.ListUnassignedUsers(ctx)
}

// loadScoped fetches a membership and hides records outside the caller's
// team behind a not-found error.
func (s *Service) loadScoped(ctx context.Context, actx *access.Context, membershipID string) (*types.Membership, error) {
	if actx == nil || actx.User == nil {
		return nil, access.ErrUnauthenticated
	}

	m, err := s.storage.GetMembershipByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, access.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load membership: %w", err)
	}

	if !actx.MasterAdmin && m.TenantID != actx.TenantID {
		s.logger.Security().AuthzFailure(actx.User.ID, "membership access outside team")
		return nil, access.ErrNotFound
	}

	return m, nil
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
