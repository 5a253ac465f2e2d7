// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/team-access-service/internal/access"
	"github.com/canonical/team-access-service/internal/storage"
	"github.com/canonical/team-access-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_roles.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_access.go github.com/canonical/team-access-service/internal/access GuardInterface
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_evaluator.go github.com/canonical/team-access-service/internal/access EvaluatorInterface
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_ListRoles(t *testing.T) {
	tenantID := "tenant-1"
	admin := &types.User{ID: "admin-1"}
	expected := []*types.Role{{ID: "role-1", TenantID: tenantID, Name: "Administrator", IsAdmin: true}}

	testCases := []struct {
		name        string
		actx        *access.Context
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			actx: &access.Context{User: admin, TenantID: tenantID, MembershipApproved: true},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListRolesByTenantID(gomock.Any(), tenantID).Return(expected, nil)
			},
		},
		{
			name:        "unscoped master admin needs a team",
			actx:        &access.Context{User: &types.User{ID: "root-1", MasterAdmin: true}, MasterAdmin: true},
			setupMocks:  func(_ *MockStorageInterface) {},
			expectedErr: access.ErrInvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockDB := NewMockDBClientInterface(ctrl)
			mockEvaluator := NewMockEvaluatorInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "roles.Service.ListRoles").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			s := NewService(mockStorage, mockDB, mockEvaluator, mockTracer, mockMonitor, mockLogger)

			got, err := s.ListRoles(context.Background(), tc.actx)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(got) != 1 || got[0] != expected[0] {
				t.Fatalf("expected %v, got %v", expected, got)
			}
		})
	}
}

func TestService_UpdateRolePermissions(t *testing.T) {
	tenantID := "tenant-1"
	roleID := "role-1"
	admin := &types.User{ID: "admin-1"}
	adminCtx := &access.Context{User: admin, TenantID: tenantID, TenantAdmin: true, MembershipApproved: true}
	role := &types.Role{ID: roleID, TenantID: tenantID, Name: "Recruiter"}
	catalog := []*types.Permission{
		{Key: "candidates.view"},
		{Key: "candidates.edit"},
		{Key: "invoices.approve"},
	}

	testCases := []struct {
		name        string
		actx        *access.Context
		keys        []string
		setupMocks  func(*MockStorageInterface, *MockDBClientInterface, *MockEvaluatorInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name: "success",
			actx: adminCtx,
			keys: []string{"candidates.view", "candidates.edit"},
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockEvaluator *MockEvaluatorInterface, mockLogger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(role, nil)
				mockStorage.EXPECT().ListPermissions(gomock.Any()).Return(catalog, nil)
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						return fn(ctx)
					})
				mockStorage.EXPECT().ReplaceRolePermissions(gomock.Any(), roleID, []string{"candidates.view", "candidates.edit"}).Return(nil)
				mockEvaluator.EXPECT().Invalidate(roleID)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().ListPermissionKeysByRoleID(gomock.Any(), roleID).Return([]string{"candidates.view", "candidates.edit"}, nil)
			},
		},
		{
			name: "unknown permission key",
			actx: adminCtx,
			keys: []string{"candidates.view", "nonsense.key"},
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockDBClientInterface, _ *MockEvaluatorInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(role, nil)
				mockStorage.EXPECT().ListPermissions(gomock.Any()).Return(catalog, nil)
			},
			expectedErr: access.ErrNotFound,
		},
		{
			name: "cross-team role looks missing",
			actx: &access.Context{User: admin, TenantID: "tenant-9", TenantAdmin: true, MembershipApproved: true},
			keys: []string{"candidates.view"},
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockDBClientInterface, _ *MockEvaluatorInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(role, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(admin.ID, "role access outside team")
			},
			expectedErr: access.ErrNotFound,
		},
		{
			name: "unknown role",
			actx: adminCtx,
			keys: []string{"candidates.view"},
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockDBClientInterface, _ *MockEvaluatorInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: access.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockDB := NewMockDBClientInterface(ctrl)
			mockEvaluator := NewMockEvaluatorInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "roles.Service.UpdateRolePermissions").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockDB, mockEvaluator, mockLogger, mockSecurity)

			s := NewService(mockStorage, mockDB, mockEvaluator, mockTracer, mockMonitor, mockLogger)

			got, err := s.UpdateRolePermissions(context.Background(), tc.actx, roleID, tc.keys)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(got) != 2 {
				t.Fatalf("expected 2 keys, got %v", got)
			}
		})
	}
}

func TestService_GetRolePermissions(t *testing.T) {
	tenantID := "tenant-1"
	roleID := "role-1"
	actx := &access.Context{User: &types.User{ID: "user-1"}, TenantID: tenantID, MembershipApproved: true}
	role := &types.Role{ID: roleID, TenantID: tenantID, Name: "Recruiter"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockDB := NewMockDBClientInterface(ctrl)
	mockEvaluator := NewMockEvaluatorInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "roles.Service.GetRolePermissions").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(role, nil)
	mockStorage.EXPECT().ListPermissionKeysByRoleID(gomock.Any(), roleID).Return([]string{"candidates.view"}, nil)

	s := NewService(mockStorage, mockDB, mockEvaluator, mockTracer, mockMonitor, mockLogger)

	got, err := s.GetRolePermissions(context.Background(), actx, roleID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0] != "candidates.view" {
		t.Fatalf("unexpected keys %v", got)
	}
}
