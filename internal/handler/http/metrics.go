// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/regulatrix/early-access/models"
)

// otherEvent labels frontend events whose name the backend does not know,
// keeping the label set bounded.
const otherEvent = "other"

// Metrics owns a private Prometheus registry so that several handlers (one
// per test, for instance) never collide on the default registerer.
type Metrics struct {
	registry *prometheus.Registry

	leads           *prometheus.CounterVec
	events          *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics registers the stub backend collectors on a fresh registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		leads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "early_access_leads_total",
				Help: "Total number of accepted early-access leads",
			},
			[]string{"role"},
		),
		events: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "frontend_events_total",
				Help: "Total number of frontend telemetry events received",
			},
			[]string{"event"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency by route and status",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) leadAccepted(role models.Role) {
	m.leads.WithLabelValues(string(role)).Inc()
}

func (m *Metrics) eventReceived(event models.EventName) {
	label := string(event)
	if !event.Known() {
		label = otherEvent
	}
	m.events.WithLabelValues(label).Inc()
}

func (m *Metrics) observeRequest(method, route string, status int, duration time.Duration) {
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}
