// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/team-access-service/internal/storage"
	"github.com/canonical/team-access-service/internal/types"
)

func TestContextResolver_Resolve(t *testing.T) {
	tenantID := "tenant-1"
	roleID := "role-1"
	adminRole := &types.Role{ID: roleID, TenantID: tenantID, Name: "Administrator", IsAdmin: true}
	memberRole := &types.Role{ID: roleID, TenantID: tenantID, Name: "Recruiter"}
	dbErr := errors.New("db error")

	member := func(masterAdmin bool, withRole bool) *types.User {
		u := &types.User{ID: "user-1", Email: "u@example.com", MasterAdmin: masterAdmin}
		if !masterAdmin {
			u.TenantID = &tenantID
		}
		if withRole {
			u.RoleID = &roleID
		}
		return u
	}
	approvedMembership := &types.Membership{ID: "m-1", UserID: "user-1", TenantID: tenantID, Status: types.MembershipStatusApproved}
	pendingMembership := &types.Membership{ID: "m-1", UserID: "user-1", TenantID: tenantID, Status: types.MembershipStatusPending}

	testCases := []struct {
		name            string
		user            *types.User
		requestedTenant string
		setupMocks      func(*MockStorageInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expected        *Context
		expectedErr     error
	}{
		{
			name:            "master admin scoped",
			user:            &types.User{ID: "root-1", MasterAdmin: true},
			requestedTenant: tenantID,
			setupMocks:      func(_ *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {},
			expected:        &Context{TenantID: tenantID, MasterAdmin: true, MembershipApproved: true},
		},
		{
			name:       "master admin unscoped",
			user:       &types.User{ID: "root-1", MasterAdmin: true},
			setupMocks: func(_ *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {},
			expected:   &Context{MasterAdmin: true, MembershipApproved: true},
		},
		{
			name:            "tenant override rejected",
			user:            member(false, true),
			requestedTenant: "tenant-other",
			setupMocks: func(_ *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure("user-1", "tenant override rejected")
			},
			expectedErr: ErrForbidden,
		},
		{
			name:        "no tenant assigned",
			user:        &types.User{ID: "user-1"},
			setupMocks:  func(_ *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {},
			expectedErr: ErrNoTenantAssigned,
		},
		{
			name: "approved admin member",
			user: member(false, true),
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(adminRole, nil)
				mockStorage.EXPECT().GetActiveMembership(gomock.Any(), "user-1", tenantID).Return(approvedMembership, nil)
			},
			expected: &Context{TenantID: tenantID, TenantAdmin: true, MembershipApproved: true},
		},
		{
			name: "approved regular member",
			user: member(false, true),
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(memberRole, nil)
				mockStorage.EXPECT().GetActiveMembership(gomock.Any(), "user-1", tenantID).Return(approvedMembership, nil)
			},
			expected: &Context{TenantID: tenantID, MembershipApproved: true},
		},
		{
			name: "membership predates tracking",
			user: member(false, true),
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(memberRole, nil)
				mockStorage.EXPECT().GetActiveMembership(gomock.Any(), "user-1", tenantID).Return(nil, storage.ErrNotFound)
			},
			expected: &Context{TenantID: tenantID, MembershipApproved: true},
		},
		{
			name: "pending membership",
			user: member(false, false),
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetActiveMembership(gomock.Any(), "user-1", tenantID).Return(pendingMembership, nil)
			},
			expected: &Context{TenantID: tenantID},
		},
		{
			name: "approved membership without role",
			user: member(false, false),
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetActiveMembership(gomock.Any(), "user-1", tenantID).Return(approvedMembership, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().InconsistentState("user-1", "approved membership without a role")
			},
			expectedErr: ErrInconsistent,
		},
		{
			name: "dangling role",
			user: member(false, true),
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().InconsistentState("user-1", "assigned role does not exist")
			},
			expectedErr: ErrInconsistent,
		},
		{
			name: "role from another tenant",
			user: member(false, true),
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				foreign := &types.Role{ID: roleID, TenantID: "tenant-other", Name: "Administrator", IsAdmin: true}
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(foreign, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().InconsistentState("user-1", "assigned role belongs to another tenant")
			},
			expectedErr: ErrInconsistent,
		},
		{
			name: "membership lookup error",
			user: member(false, true),
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(memberRole, nil)
				mockStorage.EXPECT().GetActiveMembership(gomock.Any(), "user-1", tenantID).Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "access.ContextResolver.Resolve").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger, mockSecurity)

			r := NewContextResolver(mockStorage, mockTracer, mockMonitor, mockLogger)

			got, err := r.Resolve(context.Background(), tc.user, tc.requestedTenant)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got.TenantID != tc.expected.TenantID {
				t.Errorf("expected tenant %q, got %q", tc.expected.TenantID, got.TenantID)
			}
			if got.MasterAdmin != tc.expected.MasterAdmin {
				t.Errorf("expected master admin %v, got %v", tc.expected.MasterAdmin, got.MasterAdmin)
			}
			if got.TenantAdmin != tc.expected.TenantAdmin {
				t.Errorf("expected tenant admin %v, got %v", tc.expected.TenantAdmin, got.TenantAdmin)
			}
			if got.MembershipApproved != tc.expected.MembershipApproved {
				t.Errorf("expected membership approved %v, got %v", tc.expected.MembershipApproved, got.MembershipApproved)
			}
			if got.User != tc.user {
				t.Errorf("expected user carried through, got %v", got.User)
			}
		})
	}
}
