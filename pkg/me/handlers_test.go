// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package me

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/team-access-service/internal/access"
	"github.com/canonical/team-access-service/internal/types"
	"github.com/canonical/team-access-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package me -destination ./mock_access.go github.com/canonical/team-access-service/internal/access GuardInterface
//go:generate mockgen -build_flags=--mod=mod -package me -destination ./mock_identity.go github.com/canonical/team-access-service/internal/access IdentityResolverInterface
//go:generate mockgen -build_flags=--mod=mod -package me -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package me -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package me -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestAPI_handleMe(t *testing.T) {
	tenantID := "tenant-1"
	member := &types.User{ID: "user-1", Email: "u@example.com", TenantID: &tenantID}
	fresh := &types.User{ID: "user-2", Email: "new@example.com"}

	testCases := []struct {
		name           string
		principalID    string
		setupMocks     func(*MockGuardInterface, *MockIdentityResolverInterface)
		expectedStatus int
		check          func(*testing.T, meResponse)
	}{
		{
			name:        "member with approved team context",
			principalID: "user-1",
			setupMocks: func(mockGuard *MockGuardInterface, _ *MockIdentityResolverInterface) {
				mockGuard.EXPECT().Identify(gomock.Any(), "user-1").Return(member, nil)
				mockGuard.EXPECT().Authorize(gomock.Any(), "user-1", "", "").
					Return(&access.Context{User: member, TenantID: tenantID, TenantAdmin: true, MembershipApproved: true}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp meResponse) {
				if resp.ID != "user-1" || resp.TenantID != tenantID || !resp.TenantAdmin || !resp.MembershipApproved {
					t.Fatalf("unexpected response %+v", resp)
				}
			},
		},
		{
			name:        "first sign-in provisions the account",
			principalID: "user-2",
			setupMocks: func(mockGuard *MockGuardInterface, mockIdentity *MockIdentityResolverInterface) {
				mockGuard.EXPECT().Identify(gomock.Any(), "user-2").Return(nil, access.ErrIncompleteProvisioning)
				mockIdentity.EXPECT().Provision(gomock.Any(), "user-2", "new@example.com").Return(fresh, nil)
				mockGuard.EXPECT().Authorize(gomock.Any(), "user-2", "", "").Return(nil, access.ErrNoTenantAssigned)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp meResponse) {
				if resp.ID != "user-2" || resp.TenantID != "" || resp.MembershipApproved {
					t.Fatalf("unexpected response %+v", resp)
				}
			},
		},
		{
			name:        "pending membership is visible but not approved",
			principalID: "user-1",
			setupMocks: func(mockGuard *MockGuardInterface, _ *MockIdentityResolverInterface) {
				mockGuard.EXPECT().Identify(gomock.Any(), "user-1").Return(member, nil)
				mockGuard.EXPECT().Authorize(gomock.Any(), "user-1", "", "").
					Return(&access.Context{User: member, TenantID: tenantID}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, resp meResponse) {
				if resp.TenantID != tenantID || resp.MembershipApproved || resp.TenantAdmin {
					t.Fatalf("unexpected response %+v", resp)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			mockGuard := NewMockGuardInterface(ctrl)
			mockIdentity := NewMockIdentityResolverInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "me.API.handleMe").DoAndReturn(
				func(ctx context.Context, _ string) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tc.setupMocks(mockGuard, mockIdentity)

			a := NewAPI(mockGuard, mockIdentity, mockTracer, mockMonitor, mockLogger)
			router := chi.NewRouter()
			a.RegisterEndpoints(router)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/me", nil)
			req = req.WithContext(authentication.WithPrincipal(req.Context(), &authentication.Principal{ID: tc.principalID, Email: "new@example.com"}))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
			resp := meResponse{}
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			tc.check(t, resp)
		})
	}
}
