// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/regulatrix/early-access/internal/config"
	"github.com/regulatrix/early-access/internal/handler/http"
	"github.com/regulatrix/early-access/internal/logger"
	"github.com/regulatrix/early-access/internal/validators"
)

// Handlers groups the transport handlers of the stub backend.
type Handlers struct {
	HTTP    *http.Handler
	Metrics *http.Metrics
}

// NewHandlers builds the HTTP handler with its validator and a private
// metrics registry.
func NewHandlers(cfg *config.ServerConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg == nil || cfg.Address == "" {
		return nil, errNoHandlersAreCreated
	}

	metrics := http.NewMetrics()
	return &Handlers{
		HTTP:    http.NewHandler(cfg, validators.NewEarlyAccessValidator(), metrics, logger),
		Metrics: metrics,
	}, nil
}
