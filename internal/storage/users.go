// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/team-access-service/internal/types"
)

const userColumns = "id, email, tenant_id, role_id, master_admin, created_at"

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "email", "tenant_id", "role_id", "master_admin", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.TenantID, &u.RoleID, &u.MasterAdmin, &u.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// InsertUser provisions a user record for an externally authenticated account.
// Tenant and role stay null until onboarding completes.
func (s *Storage) InsertUser(ctx context.Context, id, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertUser")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email").
		Values(id, email).
		Suffix("RETURNING " + userColumns).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.TenantID, &u.RoleID, &u.MasterAdmin, &u.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("user already provisioned: %w", ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &u, nil
}

// AssignUserTenantRole sets tenant and role together. They are never written
// separately, a record with one of the two set is an integrity violation.
func (s *Storage) AssignUserTenantRole(ctx context.Context, userID, tenantID, roleID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AssignUserTenantRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("tenant_id", tenantID).
		Set("role_id", roleID).
		Where(sq.Eq{"id": userID, "master_admin": false}).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("tenant or role does not exist: %w", ErrForeignKeyViolation)
		}
		return fmt.Errorf("failed to assign tenant and role: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ListUnassignedUsers returns non master-admin users with neither tenant nor
// role, i.e. accounts stuck before or outside onboarding. Operator visibility
// for the recurring half-provisioned state; remediation is manual.
func (s *Storage) ListUnassignedUsers(ctx context.Context) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUnassignedUsers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "email", "tenant_id", "role_id", "master_admin", "created_at").
		From("users").
		Where(sq.Eq{"master_admin": false, "tenant_id": nil, "role_id": nil}).
		OrderBy("created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list unassigned users: %w", err)
	}
	defer rows.Close()

	var users []*types.User
	for rows.Next() {
		var u types.User
		if err := rows.Scan(&u.ID, &u.Email, &u.TenantID, &u.RoleID, &u.MasterAdmin, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}
