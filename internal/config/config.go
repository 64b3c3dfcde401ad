// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Keys recognised in the raw configuration map. They double as environment
// variable names.
const (
	KeyAPIBaseURL            = "API_BASE_URL"
	KeyAppEnv                = "APP_ENV"
	KeyRelease               = "RELEASE"
	KeyRequestTimeout        = "REQUEST_TIMEOUT"
	KeyTelemetryEnabled      = "TELEMETRY_ENABLED"
	KeyTelemetryQueueSize    = "TELEMETRY_QUEUE_SIZE"
	KeyTelemetryFlushTimeout = "TELEMETRY_FLUSH_TIMEOUT"
	KeyTelemetryRoute        = "TELEMETRY_ROUTE"

	// KeyConfigFile points at an optional JSON config file. It is consumed by
	// the builder and never reaches ParseConfig.
	KeyConfigFile = "CONFIG"
)

var knownKeys = []string{
	KeyAPIBaseURL,
	KeyAppEnv,
	KeyRelease,
	KeyRequestTimeout,
	KeyTelemetryEnabled,
	KeyTelemetryQueueSize,
	KeyTelemetryFlushTimeout,
	KeyTelemetryRoute,
	KeyConfigFile,
}

// Defaults applied by ParseConfig when a key is missing.
const (
	DefaultAPIBaseURL     = "http://localhost:8000"
	DefaultAppEnv         = AppEnvDevelopment
	DefaultRelease        = "dev"
	DefaultRequestTimeout = 8 * time.Second
)

// AppEnv names the deployment environment the client runs against.
type AppEnv string

const (
	AppEnvDevelopment AppEnv = "development"
	AppEnvStaging     AppEnv = "staging"
	AppEnvProduction  AppEnv = "production"
)

// Valid reports whether e is one of the recognised environments.
func (e AppEnv) Valid() bool {
	switch e {
	case AppEnvDevelopment, AppEnvStaging, AppEnvProduction:
		return true
	default:
		return false
	}
}

// EnvConfig is the process-wide client configuration. It is built once at
// startup and treated as read-only afterwards, so it can be shared between
// goroutines without locking.
type EnvConfig struct {
	// APIBaseURL is an absolute URL without a trailing slash, so endpoint
	// paths can be appended directly.
	APIBaseURL string

	// AppEnv is one of development, staging or production.
	AppEnv AppEnv

	// Release tags telemetry events and the UI footer. Never empty.
	Release string

	Client    Client
	Telemetry Telemetry
}

// Client holds tunables of the outbound API client.
type Client struct {
	// RequestTimeout bounds a single API call end to end.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"8s"`
}

// Telemetry holds tunables of the best-effort event emitter.
type Telemetry struct {
	// Enabled switches event delivery on. When false a no-op tracker is used.
	// Env: TELEMETRY_ENABLED
	Enabled bool `env:"ENABLED" envDefault:"true"`

	// QueueSize is the capacity of the in-memory event queue.
	// Env: TELEMETRY_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE" envDefault:"64"`

	// FlushTimeout bounds how long shutdown waits for queued events.
	// Env: TELEMETRY_FLUSH_TIMEOUT
	FlushTimeout time.Duration `env:"FLUSH_TIMEOUT" envDefault:"2s"`

	// Route is reported as the route of every event. The client has a single
	// screen, so the value is static for the process.
	// Env: TELEMETRY_ROUTE
	Route string `env:"ROUTE" envDefault:"/"`
}

type tunables struct {
	Client    Client
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`
}

// ParseConfig builds an [EnvConfig] from a raw key-value map.
//
// Missing keys fall back to the documented defaults before validation; a key
// that is present but empty is validated as-is. The function reads nothing
// but raw, which keeps it deterministic under test.
//
// Returns a *[ValidationError] (matching [ErrConfigValidation] via errors.Is)
// when the API base URL is not absolute, the app environment is unknown, the
// release tag is empty, or a tunable cannot be decoded.
func ParseConfig(raw map[string]string) (*EnvConfig, error) {
	if raw == nil {
		// env.Options treats a nil Environment as "read the process env".
		raw = map[string]string{}
	}

	var problems []error

	baseURL, err := normalizeBaseURL(valueOr(raw, KeyAPIBaseURL, DefaultAPIBaseURL))
	if err != nil {
		problems = append(problems, err)
	}

	appEnv := AppEnv(valueOr(raw, KeyAppEnv, string(DefaultAppEnv)))
	if !appEnv.Valid() {
		problems = append(problems, fmt.Errorf("%w: %q", ErrInvalidAppEnv, appEnv))
	}

	release := valueOr(raw, KeyRelease, DefaultRelease)
	if release == "" {
		problems = append(problems, ErrEmptyRelease)
	}

	var t tunables
	if err = env.ParseWithOptions(&t, env.Options{Environment: raw}); err != nil {
		problems = append(problems, fmt.Errorf("%w: %w", ErrInvalidTunables, err))
	} else if err = t.validate(); err != nil {
		problems = append(problems, err)
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	return &EnvConfig{
		APIBaseURL: baseURL,
		AppEnv:     appEnv,
		Release:    release,
		Client:     t.Client,
		Telemetry:  t.Telemetry,
	}, nil
}

// EarlyAccessURL returns the absolute URL of the lead submission endpoint.
func (c *EnvConfig) EarlyAccessURL() string {
	return c.APIBaseURL + "/api/early-access"
}

func valueOr(raw map[string]string, key, fallback string) string {
	v, ok := raw[key]
	if !ok {
		return fallback
	}
	return v
}

func normalizeBaseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidAPIBaseURL, raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q must include scheme and host", ErrInvalidAPIBaseURL, raw)
	}

	return strings.TrimSuffix(raw, "/"), nil
}
