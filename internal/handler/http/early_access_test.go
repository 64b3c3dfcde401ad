// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/regulatrix/early-access/internal/logger"
	"github.com/regulatrix/early-access/internal/mock"
	"github.com/regulatrix/early-access/internal/validators"
	"github.com/regulatrix/early-access/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validLeadBody = `{"name":"Ada Lovelace","email":"ada@example.com","company":"Analytical Engines","role":"agency"}`

func TestSubmitEarlyAccess_Success(t *testing.T) {
	// Arrange
	h := newTestHandler(t)

	// Act
	rr := serve(h.Init(), http.MethodPost, EarlyAccessPath, validLeadBody, map[string]string{RequestIDHeader: "req-123"})

	// Assert
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "req-123", rr.Header().Get(RequestIDHeader))

	var resp models.EarlyAccessResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, MsgLeadReceived, resp.MessageOr(""))
	assert.Equal(t, "req-123", resp.RequestIDValue())
	assert.Nil(t, resp.Error)

	assert.Equal(t, float64(1), testutil.ToFloat64(h.metrics.leads.WithLabelValues("agency")))
	assert.Equal(t, float64(0), testutil.ToFloat64(h.metrics.leads.WithLabelValues("merchant")))
}

func TestSubmitEarlyAccess_GeneratedRequestIDInBody(t *testing.T) {
	h := newTestHandler(t)

	rr := serve(h.Init(), http.MethodPost, EarlyAccessPath, validLeadBody, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	headerID := rr.Header().Get(RequestIDHeader)
	require.NotEmpty(t, headerID)

	var resp models.EarlyAccessResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, headerID, resp.RequestIDValue())
}

func TestSubmitEarlyAccess_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantCode    string
		wantError   string
		wantDetails []string
	}{
		{
			name:        "invalid fields",
			body:        `{"name":"A","email":"not-an-email","company":"Analytical Engines","role":"agency"}`,
			wantStatus:  http.StatusUnprocessableEntity,
			wantCode:    CodeValidation,
			wantError:   MsgValidation,
			wantDetails: []string{validators.FieldName, validators.FieldEmail},
		},
		{
			name:        "unknown role and bad website",
			body:        `{"name":"Ada","email":"ada@example.com","company":"AE","website":"nope","role":"admin"}`,
			wantStatus:  http.StatusUnprocessableEntity,
			wantCode:    CodeValidation,
			wantError:   MsgValidation,
			wantDetails: []string{validators.FieldWebsite, validators.FieldRole},
		},
		{
			name:       "malformed json",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeBadRequest,
			wantError:  MsgMalformedBody,
		},
		{
			name:       "empty body",
			body:       "",
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeBadRequest,
			wantError:  MsgMalformedBody,
		},
		{
			name:       "trailing data",
			body:       validLeadBody + `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeBadRequest,
			wantError:  MsgMalformedBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t)

			rr := serve(h.Init(), http.MethodPost, EarlyAccessPath, tt.body, map[string]string{RequestIDHeader: "req-400"})

			require.Equal(t, tt.wantStatus, rr.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.Equal(t, "req-400", resp.RequestID)
			assert.Len(t, resp.Details, len(tt.wantDetails))
			for _, field := range tt.wantDetails {
				assert.Contains(t, resp.Details, field)
			}

			assert.Equal(t, 0, testutil.CollectAndCount(h.metrics.leads))
		})
	}
}

func TestSubmitEarlyAccess_ValidatorFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := mock.NewMockValidator(ctrl)
	validator.EXPECT().
		Validate(gomock.Any(), gomock.Any()).
		Return(errors.New("validator exploded"))

	h := NewHandler(newTestConfig(), validator, NewMetrics(), logger.Nop())

	rr := serve(h.Init(), http.MethodPost, EarlyAccessPath, validLeadBody, nil)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, CodeInternal, resp.Code)
	assert.Equal(t, MsgInternal, resp.Error)
}

func TestSubmitEarlyAccess_GzipResponse(t *testing.T) {
	h := newTestHandler(t)

	rr := serve(h.Init(), http.MethodPost, EarlyAccessPath, validLeadBody, map[string]string{"Accept-Encoding": "gzip"})

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	require.NoError(t, err)

	var resp models.EarlyAccessResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.True(t, resp.Success)
}

func TestSubmitEarlyAccess_WrongMethodIsNotFound(t *testing.T) {
	h := newTestHandler(t)

	rr := serve(h.Init(), http.MethodGet, EarlyAccessPath, "", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
