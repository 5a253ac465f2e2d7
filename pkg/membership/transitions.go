// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import "github.com/canonical/team-access-service/internal/types"

// Approved and rejected are terminal. Re-joining after a rejection creates
// a new membership record, it never reuses the old one.
var validTransitions = map[types.MembershipStatus][]types.MembershipStatus{
	types.MembershipStatusPending:  {types.MembershipStatusApproved, types.MembershipStatusRejected},
	types.MembershipStatusApproved: {},
	types.MembershipStatusRejected: {},
}

func CanTransition(from, to types.MembershipStatus) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
