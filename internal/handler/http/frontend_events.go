// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/regulatrix/early-access/internal/logger"
	"github.com/regulatrix/early-access/internal/utils"
	"github.com/regulatrix/early-access/models"
)

func (h *Handler) trackFrontendEvent(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var event models.FrontendEvent
	if err := utils.DecodeJSON(r, &event); err != nil {
		log.Debug().Err(err).Msg("malformed frontend event")
		writeError(w, r, http.StatusBadRequest, models.ErrorResponse{
			Code:  CodeBadRequest,
			Error: MsgMalformedBody,
		})
		return
	}
	if event.Event == "" {
		writeError(w, r, http.StatusBadRequest, models.ErrorResponse{
			Code:  CodeBadRequest,
			Error: MsgUnknownEvent,
		})
		return
	}

	h.metrics.eventReceived(event.Event)
	log.Debug().
		Str("event", string(event.Event)).
		Str("route", event.Route).
		Str("release", event.Release).
		Str("timestamp", event.Timestamp).
		Interface("payload", event.Payload).
		Msg("frontend event")

	w.WriteHeader(http.StatusAccepted)
}
