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

// IdentityResolver maps an authenticated account ID to the local user record.
// It never creates records implicitly, provisioning is an explicit call.
type IdentityResolver struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *IdentityResolver) Resolve(ctx context.Context, accountID string) (*types.User, error) {
	ctx, span := r.tracer.Start(ctx, "access.IdentityResolver.Resolve")
	defer span.End()

	if accountID == "" {
		r.logger.Security().AuthnFailure("empty account id")
		return nil, ErrUnauthenticated
	}

	user, err := r.storage.GetUserByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrIncompleteProvisioning
		}
		return nil, fmt.Errorf("failed to resolve identity: %w", err)
	}

	return user, nil
}

// Provision creates the user record for a first sign-in. Concurrent first
// sign-ins race on the insert, the loser reads the winner's row.
func (r *IdentityResolver) Provision(ctx context.Context, accountID, email string) (*types.User, error) {
	ctx, span := r.tracer.Start(ctx, "access.IdentityResolver.Provision")
	defer span.End()

	if accountID == "" {
		return nil, ErrUnauthenticated
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidArgument)
	}

	user, err := r.storage.InsertUser(ctx, accountID, email)
	if err != nil {
		if storage.IsDuplicateKeyError(err) {
			return r.storage.GetUserByID(ctx, accountID)
		}
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	r.logger.Infof("provisioned user %s", user.ID)

	return user, nil
}

func NewIdentityResolver(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *IdentityResolver {
	r := new(IdentityResolver)

	r.storage = storage
	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}

var _ IdentityResolverInterface = (*IdentityResolver)(nil)
