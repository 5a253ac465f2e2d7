// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/team-access-service/internal/types"
)

func TestPermissionEvaluator_Check(t *testing.T) {
	roleID := "role-1"
	dbErr := errors.New("db error")

	withRole := &types.User{ID: "user-1", RoleID: &roleID}

	testCases := []struct {
		name          string
		user          *types.User
		permissionKey string
		setupMocks    func(*MockStorageInterface)
		expected      bool
		expectedErr   error
	}{
		{
			name:          "master admin always allowed",
			user:          &types.User{ID: "root-1", MasterAdmin: true},
			permissionKey: "candidates.delete",
			setupMocks:    func(_ *MockStorageInterface) {},
			expected:      true,
		},
		{
			name:          "nil user denied",
			user:          nil,
			permissionKey: "candidates.view",
			setupMocks:    func(_ *MockStorageInterface) {},
		},
		{
			name:          "empty key denied",
			user:          withRole,
			permissionKey: "",
			setupMocks:    func(_ *MockStorageInterface) {},
		},
		{
			name:          "no role denied",
			user:          &types.User{ID: "user-1"},
			permissionKey: "candidates.view",
			setupMocks:    func(_ *MockStorageInterface) {},
		},
		{
			name:          "granted key",
			user:          withRole,
			permissionKey: "candidates.view",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListPermissionKeysByRoleID(gomock.Any(), roleID).Return([]string{"candidates.view", "candidates.edit"}, nil)
			},
			expected: true,
		},
		{
			name:          "missing key denied",
			user:          withRole,
			permissionKey: "invoices.approve",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListPermissionKeysByRoleID(gomock.Any(), roleID).Return([]string{"candidates.view"}, nil)
			},
		},
		{
			name:          "storage error",
			user:          withRole,
			permissionKey: "candidates.view",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListPermissionKeysByRoleID(gomock.Any(), roleID).Return(nil, dbErr)
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

			mockTracer.EXPECT().Start(gomock.Any(), "access.PermissionEvaluator.Check").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			e := NewPermissionEvaluator(mockStorage, 30*time.Second, 1<<20, mockTracer, mockMonitor, mockLogger)

			got, err := e.Check(context.Background(), tc.user, tc.permissionKey)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestPermissionEvaluator_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roleID := "role-1"
	user := &types.User{ID: "user-1", RoleID: &roleID}

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "access.PermissionEvaluator.Check").Return(context.Background(), trace.SpanFromContext(context.Background())).Times(2)
	// Invalidation forces a reload on the next check.
	mockStorage.EXPECT().ListPermissionKeysByRoleID(gomock.Any(), roleID).Return([]string{"candidates.view"}, nil).Times(2)

	e := NewPermissionEvaluator(mockStorage, time.Minute, 1<<20, mockTracer, mockMonitor, mockLogger)

	if ok, err := e.Check(context.Background(), user, "candidates.view"); err != nil || !ok {
		t.Fatalf("expected grant, got %v %v", ok, err)
	}

	e.cache.Wait()
	e.Invalidate(roleID)
	e.cache.Wait()

	if ok, err := e.Check(context.Background(), user, "candidates.view"); err != nil || !ok {
		t.Fatalf("expected grant after invalidation, got %v %v", ok, err)
	}
}
