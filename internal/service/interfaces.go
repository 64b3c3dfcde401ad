// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the early-access use cases on top of the
// adapter, validators and telemetry packages.
//
// EarlyAccessService is the thin endpoint wrapper: one POST, response shape
// check, typed envelope out. FormService is the form session pipeline the
// UI drives: validate, submit, classify the outcome and mirror it to
// telemetry. ToUserMessage turns any submission error into the single
// sentence shown to the user.
package service

import (
	"context"

	"github.com/regulatrix/early-access/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EarlyAccessService submits a normalized lead to the backend.
type EarlyAccessService interface {
	// Submit posts req to /api/early-access and returns the decoded
	// envelope. Errors are *adapter.APIError values; a body that fails the
	// response schema is reported as INVALID_RESPONSE.
	Submit(ctx context.Context, req models.EarlyAccessRequest) (models.EarlyAccessResponse, error)
}

// FormService runs one submit attempt of the early-access form.
type FormService interface {
	// Submit validates input, sends it when valid and returns the outcome
	// to display. It never returns an error: every failure is folded into
	// the outcome. Only one submission runs at a time; a concurrent call
	// returns a submitting outcome without doing anything.
	Submit(ctx context.Context, input models.FormInput) models.SubmitOutcome
}
