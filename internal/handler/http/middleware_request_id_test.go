// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/regulatrix/early-access/internal/logger"
	"github.com/regulatrix/early-access/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeWithRequestID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, EarlyAccessPath, nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withRequestID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithRequestID_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		incoming     string
		wantSameID   bool
		wantUUIDv7ID bool
	}{
		{name: "header honoured", incoming: "req-123", wantSameID: true},
		{name: "uuid header honoured", incoming: "0190b3b2-8a3e-7c2d-9f1a-5b6c7d8e9f00", wantSameID: true},
		{name: "missing header generates uuidv7", wantUUIDv7ID: true},
		{name: "oversized header is replaced", incoming: strings.Repeat("x", maxRequestIDLength+1), wantUUIDv7ID: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{ids: utils.NewUUIDGenerator(), logger: logger.Nop()}

			rr, req := executeWithRequestID(h, tt.incoming)

			require.NotNil(t, req)
			got := rr.Header().Get(RequestIDHeader)
			require.NotEmpty(t, got)

			if tt.wantSameID {
				assert.Equal(t, tt.incoming, got)
			}
			if tt.wantUUIDv7ID {
				parsed, err := uuid.Parse(got)
				require.NoError(t, err)
				assert.Equal(t, uuid.Version(7), parsed.Version())
			}

			fromCtx, ok := utils.GetRequestIDFromContext(req.Context())
			assert.True(t, ok)
			assert.Equal(t, got, fromCtx)
		})
	}
}

func TestWithRequestID_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := &logger.Logger{Logger: zerolog.New(&buf)}
	h := &Handler{ids: utils.NewUUIDGenerator(), logger: base}

	_, req := executeWithRequestID(h, "req-log")
	logger.FromRequest(req).Info().Msg("inside handler")

	assert.Contains(t, buf.String(), `"request_id":"req-log"`)
	assert.Contains(t, buf.String(), "inside handler")
}

func TestWithRequestID_GeneratesDistinctIDs(t *testing.T) {
	h := &Handler{ids: utils.NewUUIDGenerator(), logger: logger.Nop()}

	rr1, _ := executeWithRequestID(h, "")
	rr2, _ := executeWithRequestID(h, "")

	assert.NotEqual(t, rr1.Header().Get(RequestIDHeader), rr2.Header().Get(RequestIDHeader))
}
