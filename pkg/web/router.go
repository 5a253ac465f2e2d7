// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/team-access-service/internal/access"
	"github.com/canonical/team-access-service/internal/db"
	"github.com/canonical/team-access-service/internal/logging"
	"github.com/canonical/team-access-service/internal/monitoring"
	"github.com/canonical/team-access-service/internal/storage"
	"github.com/canonical/team-access-service/internal/tracing"
	"github.com/canonical/team-access-service/pkg/authentication"
	"github.com/canonical/team-access-service/pkg/me"
	"github.com/canonical/team-access-service/pkg/membership"
	"github.com/canonical/team-access-service/pkg/metrics"
	"github.com/canonical/team-access-service/pkg/roles"
	"github.com/canonical/team-access-service/pkg/status"
	"github.com/canonical/team-access-service/pkg/tenant"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	guard access.GuardInterface,
	identity access.IdentityResolverInterface,
	evaluator access.EvaluatorInterface,
	authn *authentication.Middleware,
	corsOrigins []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// Everything below requires a verified principal.
	router.Group(func(r chi.Router) {
		if authn != nil {
			r.Use(authn.Authenticate())
		}

		me.NewAPI(guard, identity, tracer, monitor, logger).RegisterEndpoints(r)
		tenant.NewAPI(
			tenant.NewService(s, dbClient, tracer, monitor, logger),
			guard, tracer, monitor, logger,
		).RegisterEndpoints(r)
		membership.NewAPI(
			membership.NewService(s, dbClient, tracer, monitor, logger),
			guard, tracer, monitor, logger,
		).RegisterEndpoints(r)
		roles.NewAPI(
			roles.NewService(s, dbClient, evaluator, tracer, monitor, logger),
			guard, tracer, monitor, logger,
		).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
