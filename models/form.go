// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FormState is the submission state of the early-access form.
type FormState string

const (
	FormStateIdle       FormState = "idle"
	FormStateSubmitting FormState = "submitting"
	FormStateSuccess    FormState = "success"
	FormStateError      FormState = "error"
)

// SubmitOutcome is what the form shows after a submit attempt.
type SubmitOutcome struct {
	State FormState

	// Message is the feedback line under the form. Empty while idle.
	Message string

	// FieldErrors maps field name to message; set only for client-side
	// validation failures.
	FieldErrors map[string]string

	// RequestID is the backend correlation id, when one is known.
	RequestID string
}
