// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/team-access-service/internal/access"
	"github.com/canonical/team-access-service/internal/logging"
)

func TestWriteErrorResponse(t *testing.T) {
	testCases := []struct {
		name             string
		err              error
		expectedStatus   int
		expectedRedirect string
	}{
		{"unauthenticated", access.ErrUnauthenticated, http.StatusUnauthorized, ""},
		{"incomplete provisioning", access.ErrIncompleteProvisioning, http.StatusConflict, RedirectOnboarding},
		{"no tenant assigned", access.ErrNoTenantAssigned, http.StatusConflict, RedirectTenantSelection},
		{"forbidden", access.ErrForbidden, http.StatusForbidden, ""},
		{"inconsistent maps to opaque forbidden", access.ErrInconsistent, http.StatusForbidden, ""},
		{"conflict", access.ErrConflict, http.StatusConflict, ""},
		{"not found", access.ErrNotFound, http.StatusNotFound, ""},
		{"invalid argument", fmt.Errorf("%w: bad status", access.ErrInvalidArgument), http.StatusBadRequest, ""},
		{"wrapped sentinel", fmt.Errorf("context: %w", access.ErrForbidden), http.StatusForbidden, ""},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			WriteErrorResponse(rr, tc.err, logging.NewNoopLogger())

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}

			resp := ErrorResponse{}
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tc.expectedStatus {
				t.Errorf("expected body status %d, got %d", tc.expectedStatus, resp.Status)
			}
			if resp.Redirect != tc.expectedRedirect {
				t.Errorf("expected redirect %q, got %q", tc.expectedRedirect, resp.Redirect)
			}
		})
	}
}

func TestWriteErrorResponse_OpaqueForbidden(t *testing.T) {
	// Inconsistent state must not be distinguishable from a plain denial.
	forbidden := httptest.NewRecorder()
	inconsistent := httptest.NewRecorder()

	WriteErrorResponse(forbidden, access.ErrForbidden, logging.NewNoopLogger())
	WriteErrorResponse(inconsistent, access.ErrInconsistent, logging.NewNoopLogger())

	if forbidden.Body.String() != inconsistent.Body.String() {
		t.Fatalf("expected identical bodies, got %q and %q", forbidden.Body.String(), inconsistent.Body.String())
	}
}
