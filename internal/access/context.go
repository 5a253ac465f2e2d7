// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"github.com/canonical/team-access-service/internal/types"
)

// Context is the resolved authorization scope of one request. It is passed
// explicitly to every function that needs it, there is no ambient session
// state anywhere in this subsystem.
type Context struct {
	User *types.User

	// TenantID the request may operate on. Empty only for master admins that
	// did not select a tenant.
	TenantID string

	MasterAdmin bool
	// TenantAdmin gates membership management (approve, reject, role edits)
	// for TenantID. It grants nothing on business data permissions.
	TenantAdmin bool
	// MembershipApproved is true for approved memberships and for records
	// predating membership tracking (tenant set directly, no membership row).
	MembershipApproved bool
}
