// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/team-access-service/internal/types"
)

var membershipColumns = []string{
	"id", "user_id", "tenant_id", "status", "requested_role_id",
	"requested_at", "approver_id", "decided_at", "rejection_reason",
}

func scanMembership(row sq.RowScanner) (*types.Membership, error) {
	var m types.Membership
	var rawStatus string
	err := row.Scan(
		&m.ID, &m.UserID, &m.TenantID, &rawStatus, &m.RequestedRoleID,
		&m.RequestedAt, &m.ApproverID, &m.DecidedAt, &m.RejectionReason,
	)
	if err != nil {
		return nil, err
	}

	status, err := types.ParseMembershipStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("membership %s: %w", m.ID, err)
	}
	m.Status = status

	return &m, nil
}

// CreateMembership inserts a new pending request. The partial unique index on
// non-rejected (user_id, tenant_id) pairs rejects duplicates, historical
// rejected rows are untouched.
func (s *Storage) CreateMembership(ctx context.Context, m *types.Membership) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateMembership")
	defer span.End()

	if !m.Status.Valid() {
		return nil, fmt.Errorf("invalid membership status %q", m.Status)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "user_id", "tenant_id", "status", "requested_role_id", "approver_id", "decided_at").
		Values(id.String(), m.UserID, m.TenantID, string(m.Status), m.RequestedRoleID, m.ApproverID, m.DecidedAt).
		Suffix("RETURNING " + strings.Join(membershipColumns, ", ")).
		QueryRowContext(ctx)

	created, err := scanMembership(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("active membership already exists: %w", ErrDuplicateKey)
		}
		if IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("user or tenant does not exist: %w", ErrForeignKeyViolation)
		}
		return nil, fmt.Errorf("failed to insert membership: %w", err)
	}

	return created, nil
}

func (s *Storage) GetMembershipByID(ctx context.Context, id string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("memberships").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	m, err := scanMembership(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return m, nil
}

// GetActiveMembership returns the single non-rejected membership of a user in
// a tenant, or ErrNotFound.
func (s *Storage) GetActiveMembership(ctx context.Context, userID, tenantID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetActiveMembership")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("memberships").
		Where(sq.Eq{"user_id": userID, "tenant_id": tenantID}).
		Where(sq.NotEq{"status": string(types.MembershipStatusRejected)}).
		QueryRowContext(ctx)

	m, err := scanMembership(row)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active membership: %w", err)
	}

	return m, nil
}

func (s *Storage) ListMembershipsByUserID(ctx context.Context, userID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipsByUserID")
	defer span.End()

	return s.listMemberships(ctx, sq.Eq{"user_id": userID})
}

func (s *Storage) ListPendingMembershipsByTenantID(ctx context.Context, tenantID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingMembershipsByTenantID")
	defer span.End()

	return s.listMemberships(ctx, sq.Eq{
		"tenant_id": tenantID,
		"status":    string(types.MembershipStatusPending),
	})
}

func (s *Storage) listMemberships(ctx context.Context, pred interface{}) ([]*types.Membership, error) {
	rows, err := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("memberships").
		Where(pred).
		OrderBy("requested_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var memberships []*types.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return memberships, nil
}

// ApproveMembership flips a pending membership to approved. The status guard
// in the predicate serializes concurrent deciders: the loser of the race sees
// zero rows updated and gets ErrConflict.
func (s *Storage) ApproveMembership(ctx context.Context, id, approverID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ApproveMembership")
	defer span.End()

	return s.decideMembership(ctx, id, approverID, types.MembershipStatusApproved, nil)
}

// RejectMembership flips a pending membership to rejected, recording the
// reason. Same compare-and-set semantics as ApproveMembership.
func (s *Storage) RejectMembership(ctx context.Context, id, approverID, reason string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RejectMembership")
	defer span.End()

	return s.decideMembership(ctx, id, approverID, types.MembershipStatusRejected, &reason)
}

func (s *Storage) decideMembership(ctx context.Context, id, approverID string, to types.MembershipStatus, reason *string) error {
	update := s.db.Statement(ctx).
		Update("memberships").
		Set("status", string(to)).
		Set("approver_id", approverID).
		Set("decided_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "status": string(types.MembershipStatusPending)})

	if reason != nil {
		update = update.Set("rejection_reason", *reason)
	}

	res, err := update.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update membership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 1 {
		return nil
	}

	// Nothing matched: either the row is gone or it is no longer pending.
	if _, err := s.GetMembershipByID(ctx, id); err != nil {
		return err
	}
	return ErrConflict
}
