// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package me

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/team-access-service/internal/access"
	htypes "github.com/canonical/team-access-service/internal/http/types"
	"github.com/canonical/team-access-service/internal/logging"
	"github.com/canonical/team-access-service/internal/monitoring"
	"github.com/canonical/team-access-service/internal/tracing"
	"github.com/canonical/team-access-service/pkg/authentication"
)

type API struct {
	guard    access.GuardInterface
	identity access.IdentityResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type meResponse struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	MasterAdmin        bool   `json:"master_admin"`
	TenantID           string `json:"tenant_id,omitempty"`
	TenantAdmin        bool   `json:"tenant_admin"`
	MembershipApproved bool   `json:"membership_approved"`
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Get("/api/v0/me", a.handleMe)
}

// handleMe returns the caller's account and team context. A first sign-in
// has no local account yet, it is provisioned here from the verified token
// before the context is resolved.
func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "me.API.handleMe")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		htypes.WriteErrorResponse(w, access.ErrUnauthenticated, a.logger)
		return
	}

	user, err := a.guard.Identify(ctx, principal.ID)
	if errors.Is(err, access.ErrIncompleteProvisioning) {
		user, err = a.identity.Provision(ctx, principal.ID, principal.Email)
	}
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	resp := meResponse{
		ID:          user.ID,
		Email:       user.Email,
		MasterAdmin: user.MasterAdmin,
	}

	actx, err := a.guard.Authorize(ctx, principal.ID, "", "")
	switch {
	case errors.Is(err, access.ErrNoTenantAssigned):
		// Fresh accounts have no team yet, the identity alone is the answer.
	case err != nil:
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	default:
		resp.TenantID = actx.TenantID
		resp.TenantAdmin = actx.TenantAdmin
		resp.MembershipApproved = actx.MembershipApproved
	}

	htypes.WriteJSONResponse(w, http.StatusOK, &resp, a.logger)
}

func NewAPI(
	guard access.GuardInterface,
	identity access.IdentityResolverInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.guard = guard
	a.identity = identity
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
