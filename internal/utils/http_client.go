// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"

	"github.com/regulatrix/early-access/internal/logger"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client rooted at baseURL.
//
// Retries are disabled: every request is exactly one network call. Timeouts
// are left to the request context, so the client carries none of its own.
// resty's internal warnings go to log at debug level.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, log *logger.Logger) *HTTPClient {
	cli := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetLogger(restyLogger{log: log})

	return &HTTPClient{Client: cli}
}

// restyLogger adapts *logger.Logger to resty.Logger.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) { l.log.Debug().Msgf("resty error: "+format, v...) }
func (l restyLogger) Warnf(format string, v ...any)  { l.log.Debug().Msgf("resty warn: "+format, v...) }
func (l restyLogger) Debugf(format string, v ...any) { l.log.Debug().Msgf(format, v...) }
