// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import "errors"

// Failure taxonomy of the authorization subsystem. All of them are terminal
// for the current request, none are retried internally.
var (
	// ErrUnauthenticated means no valid credential was presented.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrIncompleteProvisioning means the credential is valid but no user
	// record exists yet. Callers route to onboarding, not to an error page.
	ErrIncompleteProvisioning = errors.New("user record not provisioned")
	// ErrNoTenantAssigned means a valid non master-admin user has no tenant.
	// Callers route to tenant selection, never to business endpoints.
	ErrNoTenantAssigned = errors.New("no tenant assigned")
	// ErrForbidden covers insufficient permission and cross-tenant attempts.
	ErrForbidden = errors.New("forbidden")
	// ErrInconsistent flags a data integrity violation, e.g. an approved
	// membership with a null role. It indicates a bug, not a denial, and is
	// never coerced into a permissive default.
	ErrInconsistent = errors.New("inconsistent authorization state")
	// ErrConflict signals a concurrent state-transition race.
	ErrConflict = errors.New("conflicting concurrent update")
	// ErrNotFound is returned for entities outside the caller's scope as well
	// as genuinely missing ones, to avoid leaking tenant structure.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument rejects malformed input that survived transport
	// validation.
	ErrInvalidArgument = errors.New("invalid argument")
)
