// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// User-facing messages.
const (
	MsgCheckForm          = "Please check your form details and try again."
	MsgServerError        = "Server error. Please try again in a moment."
	MsgConnection         = "Could not connect to the server. Please try again."
	MsgUnexpectedResponse = "Unexpected server response. Please try again."
	MsgGeneric            = "Could not submit your request. Please try again."

	MsgCorrectFields   = "Please correct the highlighted fields."
	MsgSubmitFailed    = "Could not submit your request."
	MsgRequestReceived = "Request received. Our team will contact you."
	MsgSubmitInFlight  = "Your request is already being submitted."
)

// Telemetry failure reasons that are not user messages.
const (
	ReasonClientValidation = "client_validation"
	ReasonUnknown          = "unknown_error"
)
