// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/team-access-service/internal/access"
	htypes "github.com/canonical/team-access-service/internal/http/types"
	"github.com/canonical/team-access-service/internal/logging"
	"github.com/canonical/team-access-service/internal/monitoring"
	"github.com/canonical/team-access-service/internal/tracing"
	"github.com/canonical/team-access-service/internal/types"
	"github.com/canonical/team-access-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	guard    access.GuardInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type createTenantRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Discoverable bool   `json:"discoverable"`
}

type setTenantStatusRequest struct {
	Enabled bool `json:"enabled"`
}

type tenantResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Discoverable bool      `json:"discoverable"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Post("/api/v0/tenants", a.handleCreate)
	router.Get("/api/v0/tenants", a.handleList)
	router.Get("/api/v0/tenants/{id}", a.handleGet)
	router.Patch("/api/v0/tenants/{id}/status", a.handleSetStatus)
}

// handleCreate is reachable by any provisioned user, it is the entry point
// for users that have no team yet.
func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.handleCreate")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		htypes.WriteErrorResponse(w, access.ErrUnauthenticated, a.logger)
		return
	}

	user, err := a.guard.Identify(ctx, principal.ID)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	req := createTenantRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		htypes.WriteErrorResponse(w, access.ErrInvalidArgument, a.logger)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		htypes.WriteErrorResponse(w, access.ErrInvalidArgument, a.logger)
		return
	}

	created, err := a.service.CreateTenant(ctx, user, req.Name, req.Discoverable)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	htypes.WriteJSONResponse(w, http.StatusCreated, mapTenant(created), a.logger)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.handleList")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		htypes.WriteErrorResponse(w, access.ErrUnauthenticated, a.logger)
		return
	}

	user, err := a.guard.Identify(ctx, principal.ID)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	tenants, err := a.service.ListTenants(ctx, user)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	resp := make([]*tenantResponse, len(tenants))
	for i, t := range tenants {
		resp[i] = mapTenant(t)
	}

	htypes.WriteJSONResponse(w, http.StatusOK, resp, a.logger)
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.handleGet")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		htypes.WriteErrorResponse(w, access.ErrUnauthenticated, a.logger)
		return
	}

	id := chi.URLParam(r, "id")

	if _, err := a.guard.Authorize(ctx, principal.ID, id, ""); err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	t, err := a.service.GetTenant(ctx, id)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	htypes.WriteJSONResponse(w, http.StatusOK, mapTenant(t), a.logger)
}

// handleSetStatus enables or disables a team, master admin only.
func (a *API) handleSetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.handleSetStatus")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		htypes.WriteErrorResponse(w, access.ErrUnauthenticated, a.logger)
		return
	}

	user, err := a.guard.Identify(ctx, principal.ID)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}
	if !user.MasterAdmin {
		a.logger.Security().AuthzFailure(user.ID, "tenants.status")
		htypes.WriteErrorResponse(w, access.ErrForbidden, a.logger)
		return
	}

	req := setTenantStatusRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		htypes.WriteErrorResponse(w, access.ErrInvalidArgument, a.logger)
		return
	}

	t, err := a.service.SetTenantStatus(ctx, chi.URLParam(r, "id"), req.Enabled)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	htypes.WriteJSONResponse(w, http.StatusOK, mapTenant(t), a.logger)
}

func mapTenant(t *types.Tenant) *tenantResponse {
	return &tenantResponse{
		ID:           t.ID,
		Name:         t.Name,
		Discoverable: t.Discoverable,
		Enabled:      t.Enabled,
		CreatedAt:    t.CreatedAt,
	}
}

func NewAPI(
	service ServiceInterface,
	guard access.GuardInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.service = service
	a.guard = guard
	a.validate = validator.New()
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
