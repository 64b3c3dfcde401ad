// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/regulatrix/early-access/internal/logger"
	"github.com/regulatrix/early-access/internal/utils"
	"github.com/regulatrix/early-access/models"
)

// Error codes written in the "code" field of models.ErrorResponse. The
// client prefers them over its own HTTP_<status> codes.
const (
	CodeBadRequest = "BAD_REQUEST"
	CodeValidation = "VALIDATION_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

const (
	MsgMalformedBody   = "Request body must be a JSON object."
	MsgValidation      = "Some fields are invalid."
	MsgInternal        = "Internal server error."
	MsgUnknownEvent    = "Event name is required."
	MsgLeadReceived    = "Request received. Our team will contact you."
	maxRequestIDLength = 128
)

// writeError writes resp with status, filling the request id from the
// request context.
func writeError(w http.ResponseWriter, r *http.Request, status int, resp models.ErrorResponse) {
	resp.Success = false
	if requestID, ok := utils.GetRequestIDFromContext(r.Context()); ok {
		resp.RequestID = requestID
	}

	if _, err := utils.WriteJSON(w, resp, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}
