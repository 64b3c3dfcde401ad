// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

// decodeBody returns the JSON value of raw, the raw text when it is not
// JSON, or nil when raw is empty.
func decodeBody(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return string(raw)
	}
	return payload
}

// extractRequestID prefers the x-request-id header over a request_id field
// of an object body.
func extractRequestID(header http.Header, payload any) string {
	if id := header.Get("X-Request-Id"); id != "" {
		return id
	}

	if obj, ok := payload.(map[string]any); ok {
		if id, ok := obj["request_id"].(string); ok {
			return id
		}
	}
	return ""
}

// mapHTTPError builds the *APIError for a non-2xx response.
func mapHTTPError(status int, payload any, requestID string) *APIError {
	apiErr := &APIError{
		Code:       httpCode(status),
		Message:    fallbackMessage(status),
		HTTPStatus: status,
		RequestID:  requestID,
		Details:    payload,
	}

	switch body := payload.(type) {
	case map[string]any:
		if code, ok := body["code"].(string); ok {
			apiErr.Code = code
		}
		if msg, ok := firstPresent(body, "message", "error").(string); ok {
			apiErr.Message = msg
		} else if detail, ok := firstPresent(body, "detail", "details").(string); ok {
			apiErr.Message = detail
		}
	case string:
		if msg := strings.TrimSpace(body); msg != "" {
			apiErr.Message = msg
		}
	}

	return apiErr
}

// firstPresent returns the value of the first key that is present and not
// JSON null. A present key of the wrong type still wins.
func firstPresent(obj map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := obj[key]; ok && v != nil {
			return v
		}
	}
	return nil
}

func fallbackMessage(status int) string {
	if status >= http.StatusInternalServerError {
		return MsgServerError
	}
	return MsgRequestFailed
}

// mapTransportError classifies a failure that produced no response. A
// deadline on reqCtx is a timeout; everything else, including cancellation
// by the caller, is a network error.
func mapTransportError(reqCtx context.Context, err error) *APIError {
	if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
		return &APIError{
			Code:       CodeTimeout,
			Message:    MsgTimeout,
			HTTPStatus: http.StatusRequestTimeout,
			Err:        err,
		}
	}

	return &APIError{
		Code:       CodeNetworkError,
		Message:    MsgNetworkError,
		HTTPStatus: 0,
		Details:    err,
		Err:        err,
	}
}

func invalidResponse(resp *Response, cause error) *APIError {
	return &APIError{
		Code:       CodeInvalidResponse,
		Message:    MsgInvalidResponse,
		HTTPStatus: resp.Status,
		RequestID:  resp.RequestID,
		Details:    cause,
		Err:        cause,
	}
}
