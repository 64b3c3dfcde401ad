// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/regulatrix/early-access/internal/logger"
	"github.com/regulatrix/early-access/internal/telemetry"
	"github.com/regulatrix/early-access/internal/validators"
	"github.com/regulatrix/early-access/models"
)

type formService struct {
	validator   validators.Validator
	earlyAccess EarlyAccessService
	tracker     telemetry.Tracker

	inFlight atomic.Bool

	logger *logger.Logger
}

// NewFormService constructs a [FormService].
func NewFormService(
	validator validators.Validator,
	earlyAccess EarlyAccessService,
	tracker telemetry.Tracker,
	log *logger.Logger,
) FormService {
	return &formService{
		validator:   validator,
		earlyAccess: earlyAccess,
		tracker:     tracker,
		logger:      log,
	}
}

// Submit implements [FormService].
func (s *formService) Submit(ctx context.Context, input models.FormInput) models.SubmitOutcome {
	if !s.inFlight.CompareAndSwap(false, true) {
		return models.SubmitOutcome{State: models.FormStateSubmitting, Message: MsgSubmitInFlight}
	}
	defer s.inFlight.Store(false)

	req, err := validators.BuildEarlyAccessRequest(ctx, s.validator, input)
	if err != nil {
		return s.validationFailed(err)
	}

	s.tracker.Track(models.EventEarlyAccessSubmitAttempt, map[string]any{"role": string(req.Role)})

	resp, err := s.earlyAccess.Submit(ctx, req)
	if err != nil {
		msg := ToUserMessage(err)
		requestID := RequestIDFromError(err)

		s.logger.Warn().Err(err).Str(logger.RequestIDField, requestID).Msg("early access request failed")
		s.tracker.Track(models.EventEarlyAccessSubmitFailure, withRequestID(map[string]any{"reason": msg}, requestID))

		return models.SubmitOutcome{State: models.FormStateError, Message: msg, RequestID: requestID}
	}

	requestID := resp.RequestIDValue()

	if !resp.Success {
		s.logger.Warn().Str(logger.RequestIDField, requestID).Str("error", resp.ErrorOr("")).Msg("early access request rejected")
		s.tracker.Track(models.EventEarlyAccessSubmitFailure,
			withRequestID(map[string]any{"reason": resp.ErrorOr(ReasonUnknown)}, requestID))

		return models.SubmitOutcome{State: models.FormStateError, Message: resp.ErrorOr(MsgSubmitFailed), RequestID: requestID}
	}

	s.logger.Info().Str(logger.RequestIDField, requestID).Str("role", string(req.Role)).Msg("early access request accepted")
	s.tracker.Track(models.EventEarlyAccessSubmitSuccess, withRequestID(map[string]any{}, requestID))

	return models.SubmitOutcome{State: models.FormStateSuccess, Message: resp.MessageOr(MsgRequestReceived), RequestID: requestID}
}

func (s *formService) validationFailed(err error) models.SubmitOutcome {
	var fieldErrs validators.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		s.logger.Error().Err(err).Msg("form validation could not run")
		s.tracker.Track(models.EventEarlyAccessSubmitFailure, map[string]any{"reason": MsgGeneric})
		return models.SubmitOutcome{State: models.FormStateError, Message: MsgGeneric}
	}

	s.tracker.Track(models.EventEarlyAccessSubmitFailure, map[string]any{"reason": ReasonClientValidation})
	return models.SubmitOutcome{
		State:       models.FormStateError,
		Message:     MsgCorrectFields,
		FieldErrors: fieldErrs,
	}
}

// withRequestID adds request_id to payload when id is known.
func withRequestID(payload map[string]any, id string) map[string]any {
	if id != "" {
		payload["request_id"] = id
	}
	return payload
}
