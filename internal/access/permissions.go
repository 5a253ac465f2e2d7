// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

// Membership management actions are gated by the tenant-admin flag, not by
// the role permission set. Keeping the two apart is deliberate: a tenant
// admin is not an implicit superuser over business data.
const (
	PermMembersApprove = "members.approve"
	PermMembersReject  = "members.reject"
	PermRolesEdit      = "roles.edit"
)

func IsMembershipManagement(key string) bool {
	switch key {
	case PermMembersApprove, PermMembersReject, PermRolesEdit:
		return true
	}
	return false
}
