// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

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

//go:generate mockgen -build_flags=--mod=mod -package membership -destination ./mock_membership.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package membership -destination ./mock_access.go github.com/canonical/team-access-service/internal/access GuardInterface
//go:generate mockgen -build_flags=--mod=mod -package membership -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package membership -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package membership -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func passthroughTx(mockDB *MockDBClientInterface) {
	mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestService_RequestMembership(t *testing.T) {
	tenantID := "tenant-1"
	otherTenantID := "tenant-2"
	roleID := "role-1"
	requester := &types.User{ID: "user-1", Email: "u@example.com"}
	enabledTenant := &types.Tenant{ID: tenantID, Name: "Acme", Enabled: true, Discoverable: true}
	disabledTenant := &types.Tenant{ID: tenantID, Name: "Acme", Enabled: false}
	created := &types.Membership{ID: "m-1", UserID: requester.ID, TenantID: tenantID, Status: types.MembershipStatusPending}

	testCases := []struct {
		name          string
		user          *types.User
		requestedRole *string
		setupMocks    func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr   error
	}{
		{
			name: "success",
			user: requester,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(enabledTenant, nil)
				mockStorage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *types.Membership) (*types.Membership, error) {
						if m.Status != types.MembershipStatusPending {
							return nil, fmt.Errorf("expected pending status, got %q", m.Status)
						}
						return created, nil
					})
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:          "success with requested role",
			user:          requester,
			requestedRole: &roleID,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(enabledTenant, nil)
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(&types.Role{ID: roleID, TenantID: tenantID}, nil)
				mockStorage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *types.Membership) (*types.Membership, error) {
						if m.Status != types.MembershipStatusPending {
							return nil, fmt.Errorf("expected pending status, got %q", m.Status)
						}
						if m.RequestedRoleID == nil || *m.RequestedRoleID != roleID {
							return nil, fmt.Errorf("expected requested role %q", roleID)
						}
						return created, nil
					})
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "master admin cannot request",
			user:        &types.User{ID: "root-1", MasterAdmin: true},
			setupMocks:  func(_ *MockStorageInterface, _ *MockLoggerInterface) {},
			expectedErr: access.ErrInvalidArgument,
		},
		{
			name:        "existing member cannot request",
			user:        &types.User{ID: "user-2", TenantID: &otherTenantID},
			setupMocks:  func(_ *MockStorageInterface, _ *MockLoggerInterface) {},
			expectedErr: access.ErrConflict,
		},
		{
			name: "unknown team",
			user: requester,
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: access.ErrNotFound,
		},
		{
			name: "disabled team looks missing",
			user: requester,
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(disabledTenant, nil)
			},
			expectedErr: access.ErrNotFound,
		},
		{
			name:          "requested role from another team",
			user:          requester,
			requestedRole: &roleID,
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(enabledTenant, nil)
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(&types.Role{ID: roleID, TenantID: otherTenantID}, nil)
			},
			expectedErr: access.ErrInvalidArgument,
		},
		{
			name: "duplicate request",
			user: requester,
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), tenantID).Return(enabledTenant, nil)
				mockStorage.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: access.ErrConflict,
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

			mockTracer.EXPECT().Start(gomock.Any(), "membership.Service.RequestMembership").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			s := NewService(mockStorage, mockDB, mockTracer, mockMonitor, mockLogger)

			got, err := s.RequestMembership(context.Background(), tc.user, tenantID, tc.requestedRole)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != created {
				t.Fatalf("expected membership %v, got %v", created, got)
			}
		})
	}
}

func TestService_ApproveMembership(t *testing.T) {
	tenantID := "tenant-1"
	roleID := "role-1"
	requestedRoleID := "role-2"
	approver := &types.User{ID: "admin-1"}
	adminCtx := &access.Context{User: approver, TenantID: tenantID, TenantAdmin: true, MembershipApproved: true}
	masterCtx := &access.Context{User: &types.User{ID: "root-1", MasterAdmin: true}, MasterAdmin: true, MembershipApproved: true}
	pending := &types.Membership{ID: "m-1", UserID: "user-1", TenantID: tenantID, Status: types.MembershipStatusPending}
	pendingWithRole := &types.Membership{ID: "m-1", UserID: "user-1", TenantID: tenantID, Status: types.MembershipStatusPending, RequestedRoleID: &requestedRoleID}
	approved := &types.Membership{ID: "m-1", UserID: "user-1", TenantID: tenantID, Status: types.MembershipStatusApproved}
	role := &types.Role{ID: roleID, TenantID: tenantID, Name: "Recruiter"}

	testCases := []struct {
		name        string
		actx        *access.Context
		roleID      string
		setupMocks  func(*MockStorageInterface, *MockDBClientInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name:   "success",
			actx:   adminCtx,
			roleID: roleID,
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockLogger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(pending, nil)
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(role, nil)
				passthroughTx(mockDB)
				mockStorage.EXPECT().ApproveMembership(gomock.Any(), "m-1", approver.ID).Return(nil)
				mockStorage.EXPECT().AssignUserTenantRole(gomock.Any(), "user-1", tenantID, roleID).Return(nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(approved, nil)
			},
		},
		{
			name:   "requested role used as default",
			actx:   adminCtx,
			roleID: "",
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockLogger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(pendingWithRole, nil)
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), requestedRoleID).Return(&types.Role{ID: requestedRoleID, TenantID: tenantID}, nil)
				passthroughTx(mockDB)
				mockStorage.EXPECT().ApproveMembership(gomock.Any(), "m-1", approver.ID).Return(nil)
				mockStorage.EXPECT().AssignUserTenantRole(gomock.Any(), "user-1", tenantID, requestedRoleID).Return(nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(approved, nil)
			},
		},
		{
			name:   "no role to assign",
			actx:   adminCtx,
			roleID: "",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockDBClientInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(pending, nil)
			},
			expectedErr: access.ErrInvalidArgument,
		},
		{
			name:   "master admin approves any team",
			actx:   masterCtx,
			roleID: roleID,
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, mockLogger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(pending, nil)
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(role, nil)
				passthroughTx(mockDB)
				mockStorage.EXPECT().ApproveMembership(gomock.Any(), "m-1", "root-1").Return(nil)
				mockStorage.EXPECT().AssignUserTenantRole(gomock.Any(), "user-1", tenantID, roleID).Return(nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(approved, nil)
			},
		},
		{
			name:   "cross-team membership looks missing",
			actx:   &access.Context{User: approver, TenantID: "tenant-9", TenantAdmin: true, MembershipApproved: true},
			roleID: roleID,
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockDBClientInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(pending, nil)
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(approver.ID, "membership access outside team")
			},
			expectedErr: access.ErrNotFound,
		},
		{
			name:   "already decided",
			actx:   adminCtx,
			roleID: roleID,
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockDBClientInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(approved, nil)
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(role, nil)
			},
			expectedErr: access.ErrConflict,
		},
		{
			name:   "decision race returns conflict",
			actx:   adminCtx,
			roleID: roleID,
			setupMocks: func(mockStorage *MockStorageInterface, mockDB *MockDBClientInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(pending, nil)
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(role, nil)
				passthroughTx(mockDB)
				mockStorage.EXPECT().ApproveMembership(gomock.Any(), "m-1", approver.ID).Return(storage.ErrConflict)
			},
			expectedErr: access.ErrConflict,
		},
		{
			name:   "role from another team",
			actx:   adminCtx,
			roleID: roleID,
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockDBClientInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(pending, nil)
				mockStorage.EXPECT().GetRoleByID(gomock.Any(), roleID).Return(&types.Role{ID: roleID, TenantID: "tenant-9"}, nil)
			},
			expectedErr: access.ErrInvalidArgument,
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

			mockTracer.EXPECT().Start(gomock.Any(), "membership.Service.ApproveMembership").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockDB, mockLogger, mockSecurity)

			s := NewService(mockStorage, mockDB, mockTracer, mockMonitor, mockLogger)

			got, err := s.ApproveMembership(context.Background(), tc.actx, "m-1", tc.roleID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got.Status != types.MembershipStatusApproved {
				t.Fatalf("expected approved membership, got %v", got.Status)
			}
		})
	}
}

func TestService_RejectMembership(t *testing.T) {
	tenantID := "tenant-1"
	approver := &types.User{ID: "admin-1"}
	adminCtx := &access.Context{User: approver, TenantID: tenantID, TenantAdmin: true, MembershipApproved: true}
	pending := &types.Membership{ID: "m-1", UserID: "user-1", TenantID: tenantID, Status: types.MembershipStatusPending}
	rejected := &types.Membership{ID: "m-1", UserID: "user-1", TenantID: tenantID, Status: types.MembershipStatusRejected}

	testCases := []struct {
		name        string
		reason      string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name:   "success",
			reason: "not a fit",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(pending, nil)
				mockStorage.EXPECT().RejectMembership(gomock.Any(), "m-1", approver.ID, "not a fit").Return(nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(rejected, nil)
			},
		},
		{
			name:        "empty reason",
			reason:      "",
			setupMocks:  func(_ *MockStorageInterface, _ *MockLoggerInterface) {},
			expectedErr: access.ErrInvalidArgument,
		},
		{
			name:   "already decided",
			reason: "not a fit",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface) {
				mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(rejected, nil)
			},
			expectedErr: access.ErrConflict,
		},
		{
			name:   "decision race returns conflict",
			reason: "not a fit",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface) {
				mockStorage.EXPECT().GetMembershipByID(gomock.Any(), "m-1").Return(pending, nil)
				mockStorage.EXPECT().RejectMembership(gomock.Any(), "m-1", approver.ID, "not a fit").Return(storage.ErrConflict)
			},
			expectedErr: access.ErrConflict,
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

			mockTracer.EXPECT().Start(gomock.Any(), "membership.Service.RejectMembership").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			s := NewService(mockStorage, mockDB, mockTracer, mockMonitor, mockLogger)

			got, err := s.RejectMembership(context.Background(), adminCtx, "m-1", tc.reason)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got.Status != types.MembershipStatusRejected {
				t.Fatalf("expected rejected membership, got %v", got.Status)
			}
		})
	}
}

func TestService_ListPendingMemberships(t *testing.T) {
	tenantID := "tenant-1"
	expected := []*types.Membership{{ID: "m-1", TenantID: tenantID, Status: types.MembershipStatusPending}}

	testCases := []struct {
		name        string
		actx        *access.Context
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success",
			actx: &access.Context{User: &types.User{ID: "admin-1"}, TenantID: tenantID, TenantAdmin: true},
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListPendingMembershipsByTenantID(gomock.Any(), tenantID).Return(expected, nil)
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
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "membership.Service.ListPendingMemberships").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			s := NewService(mockStorage, mockDB, mockTracer, mockMonitor, mockLogger)

			got, err := s.ListPendingMemberships(context.Background(), tc.actx)

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

func TestService_ListUnassignedUsers(t *testing.T) {
	expected := []*types.User{{ID: "user-7", Email: "stalled@example.com"}}

	testCases := []struct {
		name        string
		actx        *access.Context
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
	}{
		{
			name: "master admin lists the backlog",
			actx: &access.Context{User: &types.User{ID: "root-1", MasterAdmin: true}, MasterAdmin: true, MembershipApproved: true},
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				mockStorage.EXPECT().ListUnassignedUsers(gomock.Any()).Return(expected, nil)
			},
		},
		{
			name: "team admin is denied",
			actx: &access.Context{User: &types.User{ID: "admin-1"}, TenantID: "tenant-1", TenantAdmin: true, MembershipApproved: true},
			setupMocks: func(_ *MockStorageInterface, mockLogger *MockLoggerInterface, mockSecurity *MockSecurityLoggerInterface) {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure("admin-1", "users.unassigned")
			},
			expectedErr: access.ErrForbidden,
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

			mockTracer.EXPECT().Start(gomock.Any(), "membership.Service.ListUnassignedUsers").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger, mockSecurity)

			s := NewService(mockStorage, mockDB, mockTracer, mockMonitor, mockLogger)

			got, err := s.ListUnassignedUsers(context.Background(), tc.actx)

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

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		from, to types.MembershipStatus
		expected bool
	}{
		{types.MembershipStatusPending, types.MembershipStatusApproved, true},
		{types.MembershipStatusPending, types.MembershipStatusRejected, true},
		{types.MembershipStatusApproved, types.MembershipStatusRejected, false},
		{types.MembershipStatusApproved, types.MembershipStatusPending, false},
		{types.MembershipStatusRejected, types.MembershipStatusApproved, false},
		{types.MembershipStatusRejected, types.MembershipStatusPending, false},
	}

	for _, tc := range testCases {
		if got := CanTransition(tc.from, tc.to); got != tc.expected {
			t.Errorf("CanTransition(%s, %s) = %v, expected %v", tc.from, tc.to, got, tc.expected)
		}
	}
}
