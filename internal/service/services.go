// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/regulatrix/early-access/internal/adapter"
	"github.com/regulatrix/early-access/internal/logger"
	"github.com/regulatrix/early-access/internal/telemetry"
	"github.com/regulatrix/early-access/internal/validators"
)

// ClientServices groups the services used by the terminal client.
type ClientServices struct {
	EarlyAccessService EarlyAccessService
	FormService        FormService
}

func NewClientServices(apiClient adapter.APIClient, tracker telemetry.Tracker, log *logger.Logger) *ClientServices {
	earlyAccessSvc := NewEarlyAccessService(apiClient, log)

	return &ClientServices{
		EarlyAccessService: earlyAccessSvc,
		FormService:        NewFormService(validators.NewEarlyAccessValidator(), earlyAccessSvc, tracker, log),
	}
}
