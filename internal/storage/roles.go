// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/team-access-service/internal/types"
)

func (s *Storage) ListRoleTemplates(ctx context.Context) ([]*types.RoleTemplate, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRoleTemplates")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "is_admin").
		From("role_templates").
		OrderBy("name").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list role templates: %w", err)
	}
	defer rows.Close()

	var templates []*types.RoleTemplate
	for rows.Next() {
		var t types.RoleTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.IsAdmin); err != nil {
			return nil, fmt.Errorf("failed to scan role template: %w", err)
		}
		templates = append(templates, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return templates, nil
}

func (s *Storage) ListTemplatePermissionKeys(ctx context.Context, templateID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTemplatePermissionKeys")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("permission_key").
		From("template_permissions").
		Where(sq.Eq{"template_id": templateID}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list template permissions: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan permission key: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return keys, nil
}

func (s *Storage) CreateRole(ctx context.Context, r *types.Role) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateRole")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate role ID: %w", err)
	}

	var newRole types.Role
	err = s.db.Statement(ctx).
		Insert("roles").
		Columns("id", "tenant_id", "name", "is_admin").
		Values(id.String(), r.TenantID, r.Name, r.IsAdmin).
		Suffix("RETURNING id, tenant_id, name, is_admin, created_at").
		QueryRowContext(ctx).
		Scan(&newRole.ID, &newRole.TenantID, &newRole.Name, &newRole.IsAdmin, &newRole.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("role name taken within tenant: %w", ErrDuplicateKey)
		}
		if IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("tenant does not exist: %w", ErrForeignKeyViolation)
		}
		return nil, fmt.Errorf("failed to insert role: %w", err)
	}

	return &newRole, nil
}

func (s *Storage) GetRoleByID(ctx context.Context, id string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRoleByID")
	defer span.End()

	var r types.Role
	err := s.db.Statement(ctx).
		Select("id", "tenant_id", "name", "is_admin", "created_at").
		From("roles").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&r.ID, &r.TenantID, &r.Name, &r.IsAdmin, &r.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return &r, nil
}

func (s *Storage) ListRolesByTenantID(ctx context.Context, tenantID string) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRolesByTenantID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "tenant_id", "name", "is_admin", "created_at").
		From("roles").
		Where(sq.Eq{"tenant_id": tenantID}).
		OrderBy("name").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []*types.Role
	for rows.Next() {
		var r types.Role
		if err := rows.Scan(&r.ID, &r.TenantID, &r.Name, &r.IsAdmin, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

func (s *Storage) ListPermissions(ctx context.Context) ([]*types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPermissions")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("key", "description").
		From("permissions").
		OrderBy("key").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	var permissions []*types.Permission
	for rows.Next() {
		var p types.Permission
		if err := rows.Scan(&p.Key, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		permissions = append(permissions, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return permissions, nil
}

func (s *Storage) ListPermissionKeysByRoleID(ctx context.Context, roleID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPermissionKeysByRoleID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("permission_key").
		From("role_permissions").
		Where(sq.Eq{"role_id": roleID}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list role permissions: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan permission key: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return keys, nil
}

// ReplaceRolePermissions swaps the full link set of a role. Callers wrap it in
// a transaction together with whatever made the change necessary.
func (s *Storage) ReplaceRolePermissions(ctx context.Context, roleID string, keys []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ReplaceRolePermissions")
	defer span.End()

	if _, err := s.db.Statement(ctx).
		Delete("role_permissions").
		Where(sq.Eq{"role_id": roleID}).
		ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to clear role permissions: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	insert := s.db.Statement(ctx).
		Insert("role_permissions").
		Columns("role_id", "permission_key")
	for _, key := range keys {
		insert = insert.Values(roleID, key)
	}

	if _, err := insert.ExecContext(ctx); err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("unknown permission key: %w", ErrForeignKeyViolation)
		}
		return fmt.Errorf("failed to insert role permissions: %w", err)
	}

	return nil
}
