// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package telemetry emits best-effort frontend events to the backend's
// /api/frontend-events endpoint.
//
// Tracking never blocks the caller and never reports errors: events are
// queued for a background dispatcher, sent on a detached goroutine when the
// queue is full, and dropped when neither is possible.
package telemetry

import (
	"github.com/regulatrix/early-access/internal/workers"
	"github.com/regulatrix/early-access/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/tracker_mock.go -package=mock

// Tracker records a named event with an optional payload.
// Implementations must be safe for concurrent use.
type Tracker interface {
	Track(name models.EventName, payload map[string]any)
}

// Emitter is a Tracker with a background delivery lifecycle.
type Emitter interface {
	Tracker
	workers.Worker
}
