// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EventName identifies a telemetry event emitted by the client.
type EventName string

const (
	EventPageView                 EventName = "page_view"
	EventEarlyAccessSubmitAttempt EventName = "early_access_submit_attempt"
	EventEarlyAccessSubmitSuccess EventName = "early_access_submit_success"
	EventEarlyAccessSubmitFailure EventName = "early_access_submit_failure"
	EventFrontendError            EventName = "frontend_error"
)

// EventNames lists every event the client emits.
var EventNames = []EventName{
	EventPageView,
	EventEarlyAccessSubmitAttempt,
	EventEarlyAccessSubmitSuccess,
	EventEarlyAccessSubmitFailure,
	EventFrontendError,
}

// Known reports whether e is one of EventNames.
func (e EventName) Known() bool {
	for _, known := range EventNames {
		if e == known {
			return true
		}
	}
	return false
}

// FrontendEvent is the body of POST /api/frontend-events.
type FrontendEvent struct {
	Event EventName `json:"event"`

	// Timestamp is the capture time in ISO-8601 (UTC, millisecond precision).
	Timestamp string `json:"timestamp"`

	// Route is the path (and query) of the screen the event was raised on.
	Route string `json:"route"`

	Release string         `json:"release,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}
