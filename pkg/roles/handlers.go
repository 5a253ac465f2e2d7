// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/team-access-service/internal/access"
	htypes "github.com/canonical/team-access-service/internal/http/types"
	"github.com/canonical/team-access-service/internal/logging"
	"github.com/canonical/team-access-service/internal/monitoring"
	"github.com/canonical/team-access-service/internal/tracing"
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

type updateRolePermissionsRequest struct {
	Keys []string `json:"keys" validate:"required,dive,min=3,max=100"`
}

type roleResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

type permissionResponse struct {
	Key         string `json:"key"`
	Description string `json:"description"`
}

type rolePermissionsResponse struct {
	RoleID string   `json:"role_id"`
	Keys   []string `json:"keys"`
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Get("/api/v0/roles", a.handleList)
	router.Get("/api/v0/permissions", a.handleListPermissions)
	router.Get("/api/v0/roles/{id}/permissions", a.handleGetPermissions)
	router.Put("/api/v0/roles/{id}/permissions", a.handleUpdatePermissions)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.handleList")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		htypes.WriteErrorResponse(w, access.ErrUnauthenticated, a.logger)
		return
	}

	actx, err := a.guard.Authorize(ctx, principal.ID, htypes.RequestedTenantID(r), "")
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	roles, err := a.service.ListRoles(ctx, actx)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	resp := make([]*roleResponse, len(roles))
	for i, role := range roles {
		resp[i] = &roleResponse{ID: role.ID, Name: role.Name, IsAdmin: role.IsAdmin}
	}

	htypes.WriteJSONResponse(w, http.StatusOK, resp, a.logger)
}

// handleListPermissions serves the global permission catalog, it is not
// tenant scoped.
func (a *API) handleListPermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.handleListPermissions")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		htypes.WriteErrorResponse(w, access.ErrUnauthenticated, a.logger)
		return
	}

	if _, err := a.guard.Identify(ctx, principal.ID); err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	permissions, err := a.service.ListPermissions(ctx)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	resp := make([]*permissionResponse, len(permissions))
	for i, p := range permissions {
		resp[i] = &permissionResponse{Key: p.Key, Description: p.Description}
	}

	htypes.WriteJSONResponse(w, http.StatusOK, resp, a.logger)
}

func (a *API) handleGetPermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.handleGetPermissions")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		htypes.WriteErrorResponse(w, access.ErrUnauthenticated, a.logger)
		return
	}

	actx, err := a.guard.Authorize(ctx, principal.ID, "", "")
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	roleID := chi.URLParam(r, "id")

	keys, err := a.service.GetRolePermissions(ctx, actx, roleID)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	htypes.WriteJSONResponse(w, http.StatusOK, &rolePermissionsResponse{RoleID: roleID, Keys: keys}, a.logger)
}

func (a *API) handleUpdatePermissions(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "roles.API.handleUpdatePermissions")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		htypes.WriteErrorResponse(w, access.ErrUnauthenticated, a.logger)
		return
	}

	actx, err := a.guard.Authorize(ctx, principal.ID, "", access.PermRolesEdit)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	req := updateRolePermissionsRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		htypes.WriteErrorResponse(w, access.ErrInvalidArgument, a.logger)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		htypes.WriteErrorResponse(w, access.ErrInvalidArgument, a.logger)
		return
	}

	roleID := chi.URLParam(r, "id")

	keys, err := a.service.UpdateRolePermissions(ctx, actx, roleID, req.Keys)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	htypes.WriteJSONResponse(w, http.StatusOK, &rolePermissionsResponse{RoleID: roleID, Keys: keys}, a.logger)
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
