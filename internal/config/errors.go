// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"strings"
)

// ErrConfigValidation is matched by every error returned from ParseConfig.
// Startup must abort when it is returned.
var ErrConfigValidation = errors.New("config validation failed")

// Validation errors reported inside a [ValidationError].
var (
	// ErrInvalidAPIBaseURL indicates the API base URL is not an absolute URL.
	ErrInvalidAPIBaseURL = errors.New("invalid api base url")
	// ErrInvalidAppEnv indicates an app environment outside
	// development/staging/production.
	ErrInvalidAppEnv = errors.New("invalid app env")
	// ErrEmptyRelease indicates an empty release tag.
	ErrEmptyRelease = errors.New("release must not be empty")
	// ErrInvalidTunables indicates a client or telemetry tunable that cannot
	// be decoded or is out of range.
	ErrInvalidTunables = errors.New("invalid client tunables")
	// ErrInvalidServerConfigs indicates invalid stub backend settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

// ValidationError collects every problem found while parsing the raw config,
// so a misconfigured deployment reports all of them at once.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Error())
	}
	return ErrConfigValidation.Error() + ": " + strings.Join(msgs, "; ")
}

// Unwrap exposes ErrConfigValidation and each individual problem to
// errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return append([]error{ErrConfigValidation}, e.Problems...)
}
