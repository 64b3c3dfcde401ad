// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Code: "HTTP_400", Message: "Bad Request", HTTPStatus: 400, RequestID: "req-400"}
	assert.Equal(t, "HTTP_400 (status 400, request req-400): Bad Request", err.Error())

	err.RequestID = ""
	assert.Equal(t, "HTTP_400 (status 400): Bad Request", err.Error())
}

func TestAPIError_IsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", &APIError{Code: CodeTimeout, HTTPStatus: http.StatusRequestTimeout})

	assert.ErrorIs(t, wrapped, ErrTimeout)
	assert.NotErrorIs(t, wrapped, ErrHTTP)
}

func TestMapTransportError(t *testing.T) {
	cause := errors.New("dial tcp: refused")

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	<-ctx.Done()
	assert.Equal(t, CodeTimeout, mapTransportError(ctx, cause).Code)

	assert.Equal(t, CodeNetworkError, mapTransportError(context.Background(), cause).Code)

	canceled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	apiErr := mapTransportError(canceled, cause)
	assert.Equal(t, CodeNetworkError, apiErr.Code)
	assert.ErrorIs(t, apiErr, cause)
}

func TestDecodeBody(t *testing.T) {
	assert.Nil(t, decodeBody(nil))
	assert.Equal(t, "plain", decodeBody([]byte("plain")))
	assert.Equal(t, []any{float64(1)}, decodeBody([]byte("[1]")))
	assert.Equal(t, map[string]any{"a": "b"}, decodeBody([]byte(`{"a":"b"}`)))
}

func TestExtractRequestID(t *testing.T) {
	h := http.Header{}
	body := map[string]any{"request_id": "from-body"}

	assert.Equal(t, "from-body", extractRequestID(h, body))

	h.Set("X-Request-Id", "from-header")
	assert.Equal(t, "from-header", extractRequestID(h, body))

	assert.Empty(t, extractRequestID(http.Header{}, "text"))
	assert.Empty(t, extractRequestID(http.Header{}, map[string]any{"request_id": 7}))
}
