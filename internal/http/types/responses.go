// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/team-access-service/internal/access"
	"github.com/canonical/team-access-service/internal/logging"
)

type Response struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"status"`
}

// ErrorResponse is the envelope for all error payloads. Redirect carries a
// client routing hint for onboarding states, it is not an HTTP redirect.
type ErrorResponse struct {
	Status   int    `json:"status"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

const (
	RedirectOnboarding      = "/onboarding"
	RedirectTenantSelection = "/tenants/select"

	// HeaderRequestedTenant lets a caller ask for a specific team scope.
	// Only master admins may scope into a foreign team, the guard rejects
	// everyone else on mismatch.
	HeaderRequestedTenant = "X-Requested-Tenant-ID"
)

// RequestedTenantID extracts the team scope requested by the caller, the
// header wins over the tenant_id query parameter.
func RequestedTenantID(r *http.Request) string {
	if id := r.Header.Get(HeaderRequestedTenant); id != "" {
		return id
	}
	return r.URL.Query().Get("tenant_id")
}

func WriteJSONResponse(w http.ResponseWriter, status int, body any, logger logging.LoggerInterface) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Errorf("failed to encode response: %v", err)
	}
}

// WriteErrorResponse maps authorization failures to their HTTP shape.
// Forbidden and inconsistent states share one opaque 403 so responses do
// not reveal whether a resource exists in another tenant.
func WriteErrorResponse(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	resp := ErrorResponse{}

	switch {
	case errors.Is(err, access.ErrUnauthenticated):
		resp.Status = http.StatusUnauthorized
		resp.Message = "authentication required"
	case errors.Is(err, access.ErrIncompleteProvisioning):
		resp.Status = http.StatusConflict
		resp.Message = "user record not provisioned"
		resp.Redirect = RedirectOnboarding
	case errors.Is(err, access.ErrNoTenantAssigned):
		resp.Status = http.StatusConflict
		resp.Message = "no team assigned"
		resp.Redirect = RedirectTenantSelection
	case errors.Is(err, access.ErrForbidden), errors.Is(err, access.ErrInconsistent):
		resp.Status = http.StatusForbidden
		resp.Message = "forbidden"
	case errors.Is(err, access.ErrConflict):
		resp.Status = http.StatusConflict
		resp.Message = "conflicting concurrent update"
	case errors.Is(err, access.ErrNotFound):
		resp.Status = http.StatusNotFound
		resp.Message = "not found"
	case errors.Is(err, access.ErrInvalidArgument):
		resp.Status = http.StatusBadRequest
		resp.Message = err.Error()
	default:
		logger.Errorf("internal error: %v", err)
		resp.Status = http.StatusInternalServerError
		resp.Message = "internal server error"
	}

	WriteJSONResponse(w, resp.Status, resp, logger)
}
