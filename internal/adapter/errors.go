// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"strconv"
)

// Error codes that are not derived from an HTTP status.
const (
	CodeTimeout         = "TIMEOUT"
	CodeNetworkError    = "NETWORK_ERROR"
	CodeInvalidResponse = "INVALID_RESPONSE"
)

const (
	MsgServerError     = "Server error. Please try again later."
	MsgRequestFailed   = "Request failed."
	MsgInvalidResponse = "Unexpected response format from server."
	MsgTimeout         = "The request timed out."
	MsgNetworkError    = "Could not reach the server."
)

var (
	ErrTimeout         = errors.New("request timed out")
	ErrNetwork         = errors.New("network error")
	ErrInvalidResponse = errors.New("invalid response")

	// ErrHTTP matches every *APIError produced from a non-2xx response.
	ErrHTTP = errors.New("http error response")
)

// APIError is the single error type returned by APIClient.
type APIError struct {
	// Code is the server-supplied code, "HTTP_<status>", or one of the
	// Code* constants.
	Code    string
	Message string

	// HTTPStatus is the response status; 408 for client timeouts and 0 when
	// no response was received.
	HTTPStatus int
	RequestID  string

	// Details is the decoded error body, or the parse error for
	// INVALID_RESPONSE.
	Details any

	// Err is the underlying cause, if any.
	Err error
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("%s (status %d, request %s): %s", e.Code, e.HTTPStatus, e.RequestID, e.Message)
	}
	return fmt.Sprintf("%s (status %d): %s", e.Code, e.HTTPStatus, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) Is(target error) bool {
	switch target {
	case ErrTimeout:
		return e.Code == CodeTimeout
	case ErrNetwork:
		return e.Code == CodeNetworkError
	case ErrInvalidResponse:
		return e.Code == CodeInvalidResponse
	case ErrHTTP:
		return e.fromResponse()
	}
	return false
}

func (e *APIError) fromResponse() bool {
	switch e.Code {
	case CodeTimeout, CodeNetworkError, CodeInvalidResponse:
		return false
	}
	return e.HTTPStatus > 0
}

func httpCode(status int) string {
	return "HTTP_" + strconv.Itoa(status)
}
