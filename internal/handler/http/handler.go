// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/regulatrix/early-access/internal/config"
	"github.com/regulatrix/early-access/internal/logger"
	"github.com/regulatrix/early-access/internal/utils"
	"github.com/regulatrix/early-access/internal/validators"
)

// Handler serves the stub backend routes.
type Handler struct {
	validator validators.Validator
	metrics   *Metrics
	ids       *utils.UUIDGenerator

	release        string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(cfg *config.ServerConfig, validator validators.Validator, metrics *Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		validator:      validator,
		metrics:        metrics,
		ids:            utils.NewUUIDGenerator(),
		release:        cfg.Release,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
