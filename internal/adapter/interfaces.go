// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the HTTP transport used to talk to the
// early-access backend.
//
// The primary abstraction is [APIClient], which performs exactly one HTTP
// exchange per call and normalises every failure into an [*APIError]:
// non-2xx responses (code "HTTP_<status>" or the server-supplied code),
// client-side timeouts ("TIMEOUT"), transport failures ("NETWORK_ERROR")
// and bodies rejected by the caller's parser ("INVALID_RESPONSE").
//
// Callers can branch on the sentinel values in errors.go with [errors.Is]
// (e.g. [ErrTimeout]) or extract the full [*APIError] with [errors.As].
package adapter

import (
	"context"
	"net/http"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_client_mock.go -package=mock

// APIClient performs JSON requests against the backend base URL.
type APIClient interface {
	// Do sends one request described by opts and returns the decoded
	// response for 2xx statuses. Any other outcome is an *APIError.
	Do(ctx context.Context, opts RequestOptions) (*Response, error)
}

// RequestOptions describes a single API call.
type RequestOptions struct {
	// Path is appended to the base URL, e.g. "/api/early-access".
	Path string

	// Method defaults to GET.
	Method string

	// Body is serialised as JSON when non-nil.
	Body any

	// Headers are merged over the default JSON content type; caller values win.
	Headers map[string]string

	// Timeout overrides the client default when positive.
	Timeout time.Duration
}

// Response is a successfully received 2xx response.
type Response struct {
	Status int
	Header http.Header

	// Body is the decoded JSON value, the raw text when the body is not
	// JSON, or nil when the body is empty.
	Body any

	// RequestID is the correlation id from the x-request-id header or the
	// request_id body field, if any.
	RequestID string
}
