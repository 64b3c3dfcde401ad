// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import (
	"github.com/regulatrix/early-access/models"
)

// TrackPageView records a page_view event for the screen titled title.
func TrackPageView(t Tracker, title string) {
	if title == "" {
		title = "unknown"
	}
	t.Track(models.EventPageView, map[string]any{"title": title})
}

// TrackError records a frontend_error event. stack is included when
// non-empty. A nil err is ignored.
func TrackError(t Tracker, err error, stack []byte) {
	if err == nil {
		return
	}

	payload := map[string]any{"message": err.Error()}
	if len(stack) > 0 {
		payload["stack"] = string(stack)
	}
	t.Track(models.EventFrontendError, payload)
}
