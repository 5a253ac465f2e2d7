// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
)

// Principal is the authenticated account as asserted by the identity
// provider. It carries no local authorization state.
type Principal struct {
	ID    string
	Email string
}

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and validates authorization claims
	// Returns the authenticated principal if the token is valid and authorized
	VerifyToken(ctx context.Context, rawToken string) (*Principal, error)
}
