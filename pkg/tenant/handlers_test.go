// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/team-access-service/internal/access"
	"github.com/canonical/team-access-service/internal/types"
	"github.com/canonical/team-access-service/pkg/authentication"
)

func TestAPI_handleCreate(t *testing.T) {
	user := &types.User{ID: "user-1", Email: "u@example.com"}
	created := &types.Tenant{ID: "tenant-1", Name: "Acme", Enabled: true}

	testCases := []struct {
		name           string
		principal      *authentication.Principal
		body           string
		setupMocks     func(*MockGuardInterface, *MockServiceInterface)
		expectedStatus int
	}{
		{
			name:      "success",
			principal: &authentication.Principal{ID: "user-1"},
			body:      `{"name": "Acme"}`,
			setupMocks: func(mockGuard *MockGuardInterface, mockService *MockServiceInterface) {
				mockGuard.EXPECT().Identify(gomock.Any(), "user-1").Return(user, nil)
				mockService.EXPECT().CreateTenant(gomock.Any(), user, "Acme", false).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "no principal",
			body:           `{"name": "Acme"}`,
			setupMocks:     func(_ *MockGuardInterface, _ *MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:      "unprovisioned user",
			principal: &authentication.Principal{ID: "user-1"},
			body:      `{"name": "Acme"}`,
			setupMocks: func(mockGuard *MockGuardInterface, _ *MockServiceInterface) {
				mockGuard.EXPECT().Identify(gomock.Any(), "user-1").Return(nil, access.ErrIncompleteProvisioning)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:      "name too short",
			principal: &authentication.Principal{ID: "user-1"},
			body:      `{"name": "A"}`,
			setupMocks: func(mockGuard *MockGuardInterface, _ *MockServiceInterface) {
				mockGuard.EXPECT().Identify(gomock.Any(), "user-1").Return(user, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "malformed body",
			principal: &authentication.Principal{ID: "user-1"},
			body:      `{`,
			setupMocks: func(mockGuard *MockGuardInterface, _ *MockServiceInterface) {
				mockGuard.EXPECT().Identify(gomock.Any(), "user-1").Return(user, nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockGuard := NewMockGuardInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.API.handleCreate").DoAndReturn(
				func(ctx context.Context, _ string) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			).AnyTimes()
			tc.setupMocks(mockGuard, mockService)

			a := NewAPI(mockService, mockGuard, mockTracer, mockMonitor, mockLogger)

			router := chi.NewRouter()
			a.RegisterEndpoints(router)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants", strings.NewReader(tc.body))
			if tc.principal != nil {
				req = req.WithContext(authentication.WithPrincipal(req.Context(), tc.principal))
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
			if tc.expectedStatus == http.StatusCreated {
				resp := tenantResponse{}
				if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.ID != created.ID || resp.Name != created.Name {
					t.Fatalf("unexpected response %+v", resp)
				}
			}
		})
	}
}

func TestAPI_handleGet(t *testing.T) {
	tenantID := "tenant-1"
	expected := &types.Tenant{ID: tenantID, Name: "Acme", Enabled: true}

	testCases := []struct {
		name           string
		setupMocks     func(*MockGuardInterface, *MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "member reads own team",
			setupMocks: func(mockGuard *MockGuardInterface, mockService *MockServiceInterface) {
				mockGuard.EXPECT().Authorize(gomock.Any(), "user-1", tenantID, "").Return(&access.Context{TenantID: tenantID}, nil)
				mockService.EXPECT().GetTenant(gomock.Any(), tenantID).Return(expected, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "foreign team is forbidden",
			setupMocks: func(mockGuard *MockGuardInterface, _ *MockServiceInterface) {
				mockGuard.EXPECT().Authorize(gomock.Any(), "user-1", tenantID, "").Return(nil, access.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockGuard := NewMockGuardInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.API.handleGet").DoAndReturn(
				func(ctx context.Context, _ string) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tc.setupMocks(mockGuard, mockService)

			a := NewAPI(mockService, mockGuard, mockTracer, mockMonitor, mockLogger)

			router := chi.NewRouter()
			a.RegisterEndpoints(router)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/"+tenantID, nil)
			req = req.WithContext(authentication.WithPrincipal(req.Context(), &authentication.Principal{ID: "user-1"}))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_handleSetStatus(t *testing.T) {
	masterAdmin := &types.User{ID: "root-1", MasterAdmin: true}
	regular := &types.User{ID: "user-1"}
	disabled := &types.Tenant{ID: "tenant-1", Name: "Acme", Enabled: false}

	testCases := []struct {
		name           string
		setupMocks     func(*MockGuardInterface, *MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
	}{
		{
			name: "master admin disables team",
			setupMocks: func(mockGuard *MockGuardInterface, mockService *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockGuard.EXPECT().Identify(gomock.Any(), "root-1").Return(masterAdmin, nil)
				mockService.EXPECT().SetTenantStatus(gomock.Any(), "tenant-1", false).Return(disabled, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "regular user is forbidden",
			setupMocks: func(mockGuard *MockGuardInterface, _ *MockServiceInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockGuard.EXPECT().Identify(gomock.Any(), "root-1").Return(regular, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure("user-1", "tenants.status")
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockGuard := NewMockGuardInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.API.handleSetStatus").DoAndReturn(
				func(ctx context.Context, _ string) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tc.setupMocks(mockGuard, mockService, mockLogger, mockSecurity)

			a := NewAPI(mockService, mockGuard, mockTracer, mockMonitor, mockLogger)

			router := chi.NewRouter()
			a.RegisterEndpoints(router)

			req := httptest.NewRequest(http.MethodPatch, "/api/v0/tenants/tenant-1/status", strings.NewReader(`{"enabled": false}`))
			req = req.WithContext(authentication.WithPrincipal(req.Context(), &authentication.Principal{ID: "root-1"}))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}
