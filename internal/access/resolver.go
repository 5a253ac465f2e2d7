// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/team-access-service/internal/logging"
	"github.com/canonical/team-access-service/internal/monitoring"
	"github.com/canonical/team-access-service/internal/storage"
	"github.com/canonical/team-access-service/internal/tracing"
	"github.com/canonical/team-access-service/internal/types"
)

// ContextResolver derives the authorization Context for a user. Every
// outcome is either a fully resolved Context or an error, there is no
// partially trusted middle ground.
type ContextResolver struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *ContextResolver) Resolve(ctx context.Context, user *types.User, requestedTenantID string) (*Context, error) {
	ctx, span := r.tracer.Start(ctx, "access.ContextResolver.Resolve")
	defer span.End()

	if user == nil {
		return nil, ErrUnauthenticated
	}

	if user.MasterAdmin {
		// Master admins may scope into any tenant or stay unscoped.
		return &Context{
			User:               user,
			TenantID:           requestedTenantID,
			MasterAdmin:        true,
			MembershipApproved: true,
		}, nil
	}

	if requestedTenantID != "" && (user.TenantID == nil || *user.TenantID != requestedTenantID) {
		r.logger.Security().AuthzFailure(user.ID, "tenant override rejected")
		return nil, ErrForbidden
	}

	if user.TenantID == nil {
		return nil, ErrNoTenantAssigned
	}
	tenantID := *user.TenantID

	tenantAdmin := false
	if user.RoleID != nil {
		role, err := r.storage.GetRoleByID(ctx, *user.RoleID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				r.logger.Security().InconsistentState(user.ID, "assigned role does not exist")
				return nil, ErrInconsistent
			}
			return nil, fmt.Errorf("failed to resolve role: %w", err)
		}
		if role.TenantID != tenantID {
			r.logger.Security().InconsistentState(user.ID, "assigned role belongs to another tenant")
			return nil, ErrInconsistent
		}
		tenantAdmin = role.IsAdmin
	}

	approved := false
	membership, err := r.storage.GetActiveMembership(ctx, user.ID, tenantID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// Record predates membership tracking, the direct tenant assignment
		// counts as approved.
		approved = true
	case err != nil:
		return nil, fmt.Errorf("failed to resolve membership: %w", err)
	case membership.Status == types.MembershipStatusApproved:
		if user.RoleID == nil {
			r.logger.Security().InconsistentState(user.ID, "approved membership without a role")
			return nil, ErrInconsistent
		}
		approved = true
	case membership.Status == types.MembershipStatusPending:
		approved = false
	default:
		r.logger.Security().InconsistentState(user.ID, fmt.Sprintf("unexpected membership status %q", membership.Status))
		return nil, ErrInconsistent
	}

	return &Context{
		User:               user,
		TenantID:           tenantID,
		TenantAdmin:        tenantAdmin,
		MembershipApproved: approved,
	}, nil
}

func NewContextResolver(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ContextResolver {
	r := new(ContextResolver)

	r.storage = storage
	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}

var _ ContextResolverInterface = (*ContextResolver)(nil)
