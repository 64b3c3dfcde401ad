// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/regulatrix/early-access/internal/config"
	"github.com/regulatrix/early-access/internal/logger"
	"github.com/regulatrix/early-access/internal/utils"
)

// DefaultTimeout bounds a request when neither the options nor the config
// set one.
const DefaultTimeout = 8 * time.Second

type httpAPIClient struct {
	client  *utils.HTTPClient
	timeout time.Duration

	logger *logger.Logger
}

// NewHTTPAPIClient constructs the resty-backed [APIClient] rooted at
// cfg.APIBaseURL. cfg.Client.RequestTimeout becomes the default per-request
// timeout.
func NewHTTPAPIClient(cfg *config.EnvConfig, log *logger.Logger) APIClient {
	timeout := cfg.Client.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &httpAPIClient{
		client:  utils.NewHTTPClient(cfg.APIBaseURL, log),
		timeout: timeout,
		logger:  log,
	}
}

// Do implements [APIClient].
func (h *httpAPIClient) Do(ctx context.Context, opts RequestOptions) (*Response, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = h.timeout
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := h.client.R().
		SetContext(reqCtx).
		SetHeader("Content-Type", "application/json").
		SetHeaders(opts.Headers)

	if opts.Body != nil {
		body, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		req.SetBody(body)
	}

	started := time.Now()
	resp, err := req.Execute(method, opts.Path)
	if err != nil {
		apiErr := mapTransportError(reqCtx, err)
		h.logger.Debug().
			Str("method", method).
			Str("path", opts.Path).
			Str("code", apiErr.Code).
			Dur("duration", time.Since(started)).
			Err(err).
			Msg("api request failed")
		return nil, apiErr
	}

	payload := decodeBody(resp.Body())
	requestID := extractRequestID(resp.Header(), payload)

	h.logger.Debug().
		Str("method", method).
		Str("path", opts.Path).
		Int("status", resp.StatusCode()).
		Str(logger.RequestIDField, requestID).
		Dur("duration", time.Since(started)).
		Msg("api request")

	if !isSuccess(resp.StatusCode()) {
		return nil, mapHTTPError(resp.StatusCode(), payload, requestID)
	}

	return &Response{
		Status:    resp.StatusCode(),
		Header:    resp.Header(),
		Body:      payload,
		RequestID: requestID,
	}, nil
}

// Request performs opts through c and converts the 2xx body with parse.
// A parse failure becomes an INVALID_RESPONSE *APIError that keeps the
// status and request id. A nil parse asserts the body to T directly; an
// empty body then yields the zero T.
func Request[T any](ctx context.Context, c APIClient, opts RequestOptions, parse func(any) (T, error)) (T, error) {
	var zero T

	resp, err := c.Do(ctx, opts)
	if err != nil {
		return zero, err
	}

	if parse == nil {
		if resp.Body == nil {
			return zero, nil
		}
		v, ok := resp.Body.(T)
		if !ok {
			return zero, invalidResponse(resp, fmt.Errorf("unexpected body type %T", resp.Body))
		}
		return v, nil
	}

	v, err := parse(resp.Body)
	if err != nil {
		return zero, invalidResponse(resp, err)
	}
	return v, nil
}
