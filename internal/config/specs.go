// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the environment configuration needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// AuthenticationEnabled disables JWT verification when false. Only meant
	// for local development, the noop verifier treats the bearer token as the
	// account id.
	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"true"`
	OIDCIssuer            string   `envconfig:"oidc_issuer"`
	JWKSURL               string   `envconfig:"jwks_url"`
	AllowedSubjects       []string `envconfig:"allowed_subjects"`
	RequiredScope         string   `envconfig:"required_scope" default:"team-access:api"`

	PermissionCacheTTL     time.Duration `envconfig:"permission_cache_ttl" default:"30s"`
	PermissionCacheMaxCost int64         `envconfig:"permission_cache_max_cost" default:"1048576"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
}
