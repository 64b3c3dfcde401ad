// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the development stub of the early-access backend.
//
// It serves POST /api/early-access and POST /api/frontend-events with the
// same contract the client expects from production, validates leads with the
// client's own rules, and exposes Prometheus counters on GET /metrics.
// Nothing is persisted: accepted leads are only logged and counted.
package http
