// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	htypes "github.com/canonical/team-access-service/internal/http/types"
	"github.com/canonical/team-access-service/internal/logging"
	"github.com/canonical/team-access-service/internal/monitoring"
	"github.com/canonical/team-access-service/internal/tracing"
	"github.com/canonical/team-access-service/internal/version"
)

type API struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

type statusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Get("/api/v0/status", a.alive)
	router.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	htypes.WriteJSONResponse(w, http.StatusOK, &statusResponse{Status: "ok", Version: version.Version}, a.logger)
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.version")
	defer span.End()

	htypes.WriteJSONResponse(w, http.StatusOK, &statusResponse{Status: "ok", Version: version.Version}, a.logger)
}

func NewAPI(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
