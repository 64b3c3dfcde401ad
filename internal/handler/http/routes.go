// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	EarlyAccessPath    = "/api/early-access"
	FrontendEventsPath = "/api/frontend-events"
	VersionPath        = "/api/version"
	MetricsPath        = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5, "application/json"))

		r.Post(EarlyAccessPath, h.submitEarlyAccess)
		r.Post(FrontendEventsPath, h.trackFrontendEvent)
	})
	router.Get(VersionPath, h.getServerVersion)
	router.Method(http.MethodGet, MetricsPath, h.metrics.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
