// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/team-access-service/internal/access"
	"github.com/canonical/team-access-service/internal/storage"
	"github.com/canonical/team-access-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tenant.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_access.go github.com/canonical/team-access-service/internal/access GuardInterface
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func passthroughTx(mockDB *MockDBClientInterface) {
	mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestService_CreateTenant(t *testing.T) {
	tenantID := "tenant-1"
	creator := &types.User{ID: "user-1", Email: "u@example.com"}
	masterAdmin := &types.User{ID: "root-1", MasterAdmin: true}
	createdTenant := &types.Tenant{ID: tenantID, Name: "Acme", Enabled: true}
	adminTemplate := &types.RoleTemplate{ID: "tpl-1", Name: "Administrator", IsAdmin: true}
	recruiterTemplate := &types.RoleTemplate{ID: "tpl-2", Name: "Recruiter"}
	adminRole := &types.Role{ID: "role-1", TenantID: tenantID, Name: "Administrator", IsAdmin: true}
	recruiterRole := &types.Role{ID: "role-2", TenantID: tenantID, Name: "Recruiter"}
	membership := &types.Membership{ID: "m-1", UserID: creator.ID, TenantID: tenantID}

	testCases := []struct {
		name        string
		creator     *types.User
		setupMocks  func(*MockStorageInterface, *MockDBClientInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:    "creator joins as admin",
			creator: creator,
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockLogger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				passthroughTx(mockDB)
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(createdTenant, nil)
				mockStorage.EXPECT().ListRoleTemplates(gomock.Any()).Return([]*types.RoleTemplate{adminTemplate, recruiterTemplate}, nil)
				mockStorage.EXPECT().CreateRole(gomock.Any(), gomock.Any()).Return(adminRole, nil)
				mockStorage.EXPECT().ListTemplatePermissionKeys(gomock.Any(), "tpl-1").Return([]string{"candidates.view", "roles.edit"}, nil)
				mockStorage.EXPECT().ReplaceRolePermissions(gomock.Any(), "role-1", []string{"candidates.view", "roles.edit"}).Return(nil)
				mockStorage.EXPECT().CreateRole(gomock.Any(), gomock.Any()).Return(recruiterRole, nil)
				mockStorage.EXPECT().ListTemplatePermissionKeys(gomock.Any(), "tpl-2").Return([]string{"candidates.view"}, nil)
				mockStorage.EXPECT().ReplaceRolePermissions(gomock.Any(), "role-2", []string{"candidates.view"}).Return(nil)
				mockStorage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *types.Membership) (*types.Membership, error) {
						if m.Status != types.MembershipStatusPending {
							return nil, fmt.Errorf("expected pending status, got %q", m.Status)
						}
						return membership, nil
					})
				mockStorage.EXPECT().ApproveMembership(gomock.Any(), "m-1", creator.ID).Return(nil)
				mockStorage.EXPECT().AssignUserTenantRole(gomock.Any(), creator.ID, tenantID, "role-1").Return(nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:    "master admin does not join",
			creator: masterAdmin,
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockLogger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				passthroughTx(mockDB)
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(createdTenant, nil)
				mockStorage.EXPECT().ListRoleTemplates(gomock.Any()).Return([]*types.RoleTemplate{adminTemplate}, nil)
				mockStorage.EXPECT().CreateRole(gomock.Any(), gomock.Any()).Return(adminRole, nil)
				mockStorage.EXPECT().ListTemplatePermissionKeys(gomock.Any(), "tpl-1").Return(nil, nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name: "existing member cannot create",
			creator: &types.User{ID: "user-2", TenantID: &tenantID},
			setupMocks:  func(_ *MockStorageInterface, _ *MockDBClientInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {},
			expectedErr: access.ErrConflict,
		},
		{
			name:    "duplicate team name",
			creator: creator,
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				passthroughTx(mockDB)
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: access.ErrConflict,
		},
		{
			name:    "no templates aborts creation",
			creator: creator,
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				passthroughTx(mockDB)
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(createdTenant, nil)
				mockStorage.EXPECT().ListRoleTemplates(gomock.Any()).Return([]*types.RoleTemplate{}, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().InconsistentState(creator.ID, "no role templates configured")
			},
			expectedErr: access.ErrInconsistent,
		},
		{
			name:    "no admin template aborts creation",
			creator: creator,
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				passthroughTx(mockDB)
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(createdTenant, nil)
				mockStorage.EXPECT().ListRoleTemplates(gomock.Any()).Return([]*types.RoleTemplate{recruiterTemplate}, nil)
				mockStorage.EXPECT().CreateRole(gomock.Any(), gomock.Any()).Return(recruiterRole, nil)
				mockStorage.EXPECT().ListTemplatePermissionKeys(gomock.Any(), "tpl-2").Return(nil, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().InconsistentState(creator.ID, "no admin role template configured")
			},
			expectedErr: access.ErrInconsistent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockDB := NewMockDBClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.CreateTenant").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockDB, mockLogger, mockSecurity)

			s := NewService(mockStorage, mockDB, mockTracer, mockMonitor, mockLogger)

			created, err := s.CreateTenant(context.Background(), tc.creator, "Acme", false)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if created != createdTenant {
				t.Fatalf("expected tenant %v, got %v", createdTenant, created)
			}
		})
	}
}

func TestService_ListTenants(t *testing.T) {
	expected := []*types.Tenant{{ID: "tenant-1", Name: "Acme"}}

	testCases := []struct {
		name             string
		user             *types.User
		discoverableOnly bool
	}{
		{"master admin sees all", &types.User{ID: "root-1", MasterAdmin: true}, false},
		{"regular user sees discoverable", &types.User{ID: "user-1"}, true},
		{"nil user sees discoverable", nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockDB := NewMockDBClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.ListTenants").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStorage.EXPECT().ListTenants(gomock.Any(), tc.discoverableOnly).Return(expected, nil)

			s := NewService(mockStorage, mockDB, mockTracer, mockMonitor, mockLogger)

			got, err := s.ListTenants(context.Background(), tc.user)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(got) != 1 || got[0] != expected[0] {
				t.Fatalf("expected %v, got %v", expected, got)
			}
		})
	}
}

func TestService_GetTenant(t *testing.T) {
	expected := &types.Tenant{ID: "tenant-1", Name: "Acme"}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(expected, nil)
			},
		},
		{
			name: "not found",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(nil, storage.ErrNotFound)
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
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.GetTenant").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			s := NewService(mockStorage, mockDB, mockTracer, mockMonitor, mockLogger)

			got, err := s.GetTenant(context.Background(), "tenant-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != expected {
				t.Fatalf("expected %v, got %v", expected, got)
			}
		})
	}
}

func TestService_SetTenantStatus(t *testing.T) {
	disabled := &types.Tenant{ID: "tenant-1", Name: "Acme", Enabled: false}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().SetTenantStatus(gomock.Any(), "tenant-1", false).Return(nil)
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), "tenant-1").Return(disabled, nil)
			},
		},
		{
			name: "not found",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().SetTenantStatus(gomock.Any(), "tenant-1", false).Return(storage.ErrNotFound)
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
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.SetTenantStatus").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			s := NewService(mockStorage, mockDB, mockTracer, mockMonitor, mockLogger)

			got, err := s.SetTenantStatus(context.Background(), "tenant-1", false)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != disabled {
				t.Fatalf("expected %v, got %v", disabled, got)
			}
		})
	}
}
