// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

func (t tunables) validate() error {
	if t.Client.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidTunables)
	}
	if t.Telemetry.QueueSize <= 0 {
		return fmt.Errorf("%w: telemetry queue size must be positive", ErrInvalidTunables)
	}
	if t.Telemetry.FlushTimeout <= 0 {
		return fmt.Errorf("%w: telemetry flush timeout must be positive", ErrInvalidTunables)
	}
	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Address == "" || cfg.RequestTimeout <= 0 || cfg.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}
