// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/team-access-service/internal/logging"
	"github.com/canonical/team-access-service/internal/monitoring"
	"github.com/canonical/team-access-service/internal/tracing"
	"github.com/canonical/team-access-service/internal/types"
)

// Guard composes identity, tenant context and permission checks in a fixed
// order. It is the single entry point for request authorization, any error
// denies the request, a failed stage never substitutes a broader context.
type Guard struct {
	identity  IdentityResolverInterface
	resolver  ContextResolverInterface
	evaluator EvaluatorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Identify performs the identity stage only. Used by onboarding endpoints
// that must work before a tenant or membership exists.
func (g *Guard) Identify(ctx context.Context, accountID string) (*types.User, error) {
	ctx, span := g.tracer.Start(ctx, "access.Guard.Identify")
	defer span.End()

	return g.identity.Resolve(ctx, accountID)
}

// Authorize runs identity, tenant context and, when permissionKey is not
// empty, the permission check. An empty permissionKey authorizes scoped
// read access to the caller's own context only.
func (g *Guard) Authorize(ctx context.Context, accountID, requestedTenantID, permissionKey string) (*Context, error) {
	ctx, span := g.tracer.Start(ctx, "access.Guard.Authorize")
	defer span.End()

	user, err := g.identity.Resolve(ctx, accountID)
	if err != nil {
		return nil, err
	}

	actx, err := g.resolver.Resolve(ctx, user, requestedTenantID)
	if err != nil {
		return nil, err
	}

	if permissionKey == "" || actx.MasterAdmin {
		return actx, nil
	}

	if !actx.MembershipApproved {
		g.logger.Security().AuthzFailure(user.ID, permissionKey)
		return nil, ErrForbidden
	}

	if IsMembershipManagement(permissionKey) {
		if !actx.TenantAdmin {
			g.logger.Security().AuthzFailure(user.ID, permissionKey)
			return nil, ErrForbidden
		}
		return actx, nil
	}

	ok, err := g.evaluator.Check(ctx, user, permissionKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		g.logger.Security().AuthzFailure(user.ID, permissionKey)
		return nil, ErrForbidden
	}

	return actx, nil
}

func NewGuard(identity IdentityResolverInterface, resolver ContextResolverInterface, evaluator EvaluatorInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Guard {
	g := new(Guard)

	g.identity = identity
	g.resolver = resolver
	g.evaluator = evaluator
	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}

var _ GuardInterface = (*Guard)(nil)
