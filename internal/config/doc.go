// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the early-access client and the local stub backend.
//
// Client configuration is assembled from multiple sources in the following
// priority order (later sources override earlier values):
//  1. .env file in the working directory (optional)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Every layer is a flat key-value map keyed by environment variable name.
// The merged map is handed to [ParseConfig], which is pure and therefore the
// one place defaults and validation rules live.
//
// The main entry points are [GetClientConfig] for the client and
// [GetServerConfig] for the stub backend.
package config
