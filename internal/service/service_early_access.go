// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"

	"github.com/regulatrix/early-access/internal/adapter"
	"github.com/regulatrix/early-access/internal/logger"
	"github.com/regulatrix/early-access/internal/validators"
	"github.com/regulatrix/early-access/models"
)

// EarlyAccessPath is the lead submission endpoint.
const EarlyAccessPath = "/api/early-access"

type earlyAccessService struct {
	client adapter.APIClient

	logger *logger.Logger
}

// NewEarlyAccessService constructs an [EarlyAccessService] sending through
// client.
func NewEarlyAccessService(client adapter.APIClient, log *logger.Logger) EarlyAccessService {
	return &earlyAccessService{client: client, logger: log}
}

// Submit implements [EarlyAccessService].
func (s *earlyAccessService) Submit(ctx context.Context, req models.EarlyAccessRequest) (models.EarlyAccessResponse, error) {
	resp, err := adapter.Request(ctx, s.client, adapter.RequestOptions{
		Path:   EarlyAccessPath,
		Method: http.MethodPost,
		Body:   req,
	}, validators.ValidateEarlyAccessResponse)
	if err != nil {
		s.logger.Debug().Err(err).Str(logger.RequestIDField, RequestIDFromError(err)).Msg("early access submit failed")
		return models.EarlyAccessResponse{}, err
	}

	return resp, nil
}
