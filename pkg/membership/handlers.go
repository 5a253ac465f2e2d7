// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

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

type requestMembershipRequest struct {
	TenantID        string  `json:"tenant_id" validate:"required,uuid"`
	RequestedRoleID *string `json:"requested_role_id" validate:"omitempty,uuid"`
}

type approveMembershipRequest struct {
	RoleID string `json:"role_id" validate:"omitempty,uuid"`
}

type rejectMembershipRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type membershipResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	TenantID        string     `json:"tenant_id"`
	Status          string     `json:"status"`
	RequestedRoleID *string    `json:"requested_role_id,omitempty"`
	RequestedAt     time.Time  `json:"requested_at"`
	ApproverID      *string    `json:"approver_id,omitempty"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Post("/api/v0/memberships", a.handleRequest)
	router.Get("/api/v0/memberships", a.handleListMine)
	router.Get("/api/v0/memberships/pending", a.handleListPending)
	router.Post("/api/v0/memberships/{id}/approve", a.handleApprove)
	router.Post("/api/v0/memberships/{id}/reject", a.handleReject)
	router.Get("/api/v0/users/unassigned", a.handleListUnassigned)
}

// handleRequest accepts join requests from users that are provisioned but
// have no team yet, so it runs the identity stage only.
func (a *API) handleRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.handleRequest")
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

	req := requestMembershipRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		htypes.WriteErrorResponse(w, access.ErrInvalidArgument, a.logger)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		htypes.WriteErrorResponse(w, access.ErrInvalidArgument, a.logger)
		return
	}

	created, err := a.service.RequestMembership(ctx, user, req.TenantID, req.RequestedRoleID)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	htypes.WriteJSONResponse(w, http.StatusCreated, mapMembership(created), a.logger)
}

func (a *API) handleListMine(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.handleListMine")
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

	memberships, err := a.service.ListMyMemberships(ctx, user)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	grouped := map[string][]*membershipResponse{}
	for _, m := range memberships {
		grouped[string(m.Status)] = append(grouped[string(m.Status)], mapMembership(m))
	}

	htypes.WriteJSONResponse(w, http.StatusOK, grouped, a.logger)
}

// handleListPending serves the approver queue. Master admins select a team
// with the X-Requested-Tenant-ID header or the tenant_id query parameter.
func (a *API) handleListPending(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.handleListPending")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		htypes.WriteErrorResponse(w, access.ErrUnauthenticated, a.logger)
		return
	}

	actx, err := a.guard.Authorize(ctx, principal.ID, htypes.RequestedTenantID(r), access.PermMembersApprove)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	memberships, err := a.service.ListPendingMemberships(ctx, actx)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	htypes.WriteJSONResponse(w, http.StatusOK, mapMemberships(memberships), a.logger)
}

func (a *API) handleListUnassigned(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.handleListUnassigned")
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

	users, err := a.service.ListUnassignedUsers(ctx, actx)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	resp := make([]*userResponse, len(users))
	for i, u := range users {
		resp[i] = &userResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
	}

	htypes.WriteJSONResponse(w, http.StatusOK, resp, a.logger)
}

func (a *API) handleApprove(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.handleApprove")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		htypes.WriteErrorResponse(w, access.ErrUnauthenticated, a.logger)
		return
	}

	actx, err := a.guard.Authorize(ctx, principal.ID, "", access.PermMembersApprove)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	req := approveMembershipRequest{}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			htypes.WriteErrorResponse(w, access.ErrInvalidArgument, a.logger)
			return
		}
		if err := a.validate.Struct(req); err != nil {
			htypes.WriteErrorResponse(w, access.ErrInvalidArgument, a.logger)
			return
		}
	}

	m, err := a.service.ApproveMembership(ctx, actx, chi.URLParam(r, "id"), req.RoleID)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	htypes.WriteJSONResponse(w, http.StatusOK, mapMembership(m), a.logger)
}

func (a *API) handleReject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.handleReject")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		htypes.WriteErrorResponse(w, access.ErrUnauthenticated, a.logger)
		return
	}

	actx, err := a.guard.Authorize(ctx, principal.ID, "", access.PermMembersReject)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	req := rejectMembershipRequest{}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			htypes.WriteErrorResponse(w, access.ErrInvalidArgument, a.logger)
			return
		}
		if err := a.validate.Struct(req); err != nil {
			htypes.WriteErrorResponse(w, access.ErrInvalidArgument, a.logger)
			return
		}
	}

	m, err := a.service.RejectMembership(ctx, actx, chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		htypes.WriteErrorResponse(w, err, a.logger)
		return
	}

	htypes.WriteJSONResponse(w, http.StatusOK, mapMembership(m), a.logger)
}

func mapMembership(m *types.Membership) *membershipResponse {
	return &membershipResponse{
		ID:              m.ID,
		UserID:          m.UserID,
		TenantID:        m.TenantID,
		Status:          string(m.Status),
		RequestedRoleID: m.RequestedRoleID,
		RequestedAt:     m.RequestedAt,
		ApproverID:      m.ApproverID,
		DecidedAt:       m.DecidedAt,
		RejectionReason: m.RejectionReason,
	}
}

func mapMemberships(memberships []*types.Membership) []*membershipResponse {
	resp := make([]*membershipResponse, len(memberships))
	for i, m := range memberships {
		resp[i] = mapMembership(m)
	}
	return resp
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
