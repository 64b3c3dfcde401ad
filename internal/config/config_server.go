// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig configures the local stub backend.
type ServerConfig struct {
	// Address is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	Address string `env:"SERVER_ADDRESS" envDefault:":8000"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" envDefault:"10s"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Release is echoed by the version endpoint.
	// Env: RELEASE
	Release string `env:"RELEASE" envDefault:"dev"`
}

// GetServerConfig loads the stub backend config from environ and args.
// The -a host:port flag overrides SERVER_ADDRESS.
func GetServerConfig(environ []string, args []string) (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	var address NetAddress
	fs := flag.NewFlagSet("early-access-server", flag.ContinueOnError)
	fs.Var(&address, "a", "Net address host:port")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if a := address.String(); a != "" {
		cfg.Address = a
	}

	return cfg, cfg.validate()
}
