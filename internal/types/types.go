// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
	"time"
)

// MembershipStatus is a closed set. Unknown values coming from storage or the
// wire must be rejected at the boundary, never defaulted.
type MembershipStatus string

const (
	MembershipStatusPending  MembershipStatus = "pending"
	MembershipStatusApproved MembershipStatus = "approved"
	MembershipStatusRejected MembershipStatus = "rejected"
)

func (s MembershipStatus) Valid() bool {
	switch s {
	case MembershipStatusPending, MembershipStatusApproved, MembershipStatusRejected:
		return true
	}
	return false
}

func ParseMembershipStatus(raw string) (MembershipStatus, error) {
	s := MembershipStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown membership status %q", raw)
	}
	return s, nil
}

// User is this system's view of an externally owned account. TenantID and
// RoleID are nil until onboarding completes; master admins never carry either.
type User struct {
	ID          string    `db:"id"`
	Email       string    `db:"email"`
	TenantID    *string   `db:"tenant_id"`
	RoleID      *string   `db:"role_id"`
	MasterAdmin bool      `db:"master_admin"`
	CreatedAt   time.Time `db:"created_at"`
}

type Tenant struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Discoverable bool      `db:"discoverable"`
	Enabled      bool      `db:"enabled"`
	CreatedAt    time.Time `db:"created_at"`
}

// Role is a permission bundle scoped to exactly one tenant. IsAdmin marks the
// role whose holders manage memberships and roles for that tenant.
type Role struct {
	ID        string    `db:"id"`
	TenantID  string    `db:"tenant_id"`
	Name      string    `db:"name"`
	IsAdmin   bool      `db:"is_admin"`
	CreatedAt time.Time `db:"created_at"`
}

// RoleTemplate is tenant independent seed data cloned into concrete roles
// when a tenant is created. Read-only at runtime.
type RoleTemplate struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	IsAdmin bool   `db:"is_admin"`
}

type Permission struct {
	Key         string `db:"key"`
	Description string `db:"description"`
}

// Membership tracks a user's relationship to a tenant. Multiple historical
// rows per (user, tenant) may exist but at most one is non-rejected.
type Membership struct {
	ID              string           `db:"id"`
	UserID          string           `db:"user_id"`
	TenantID        string           `db:"tenant_id"`
	Status          MembershipStatus `db:"status"`
	RequestedRoleID *string          `db:"requested_role_id"`
	RequestedAt     time.Time        `db:"requested_at"`
	ApproverID      *string          `db:"approver_id"`
	DecidedAt       *time.Time       `db:"decided_at"`
	RejectionReason *string          `db:"rejection_reason"`
}
