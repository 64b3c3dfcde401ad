// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/regulatrix/early-access/internal/logger"
	"github.com/regulatrix/early-access/internal/utils"
	"github.com/regulatrix/early-access/internal/validators"
	"github.com/regulatrix/early-access/models"
)

// submitEarlyAccess accepts a lead. The body is validated with the same
// rules the client applies before sending, so a well-behaved client only
// sees 422 when it was bypassed.
func (h *Handler) submitEarlyAccess(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EarlyAccessRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Debug().Err(err).Msg("malformed early-access body")
		writeError(w, r, http.StatusBadRequest, models.ErrorResponse{
			Code:  CodeBadRequest,
			Error: MsgMalformedBody,
		})
		return
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		var fieldErrors validators.ValidationErrors
		if errors.As(err, &fieldErrors) {
			log.Debug().Err(err).Msg("early-access lead rejected")
			writeError(w, r, http.StatusUnprocessableEntity, models.ErrorResponse{
				Code:    CodeValidation,
				Error:   MsgValidation,
				Details: fieldErrors,
			})
			return
		}

		log.Err(err).Msg("error validating early-access lead")
		writeError(w, r, http.StatusInternalServerError, models.ErrorResponse{
			Code:  CodeInternal,
			Error: MsgInternal,
		})
		return
	}

	h.metrics.leadAccepted(req.Role)
	log.Info().
		Str("company", req.Company).
		Str("role", string(req.Role)).
		Bool("has_website", req.Website != nil).
		Msg("early-access lead received")

	message := MsgLeadReceived
	resp := models.EarlyAccessResponse{Success: true, Message: &message}
	if requestID, ok := utils.GetRequestIDFromContext(r.Context()); ok {
		resp.RequestID = &requestID
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing early-access response")
	}
}
