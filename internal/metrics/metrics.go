// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the blog server.
// Collectors are registered on the default registry and exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goblog_http_requests_total",
			Help: "Total number of handled HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "goblog_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "goblog_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// ExpiredSessionsRemoved counts sessions deleted by the cleanup worker.
	ExpiredSessionsRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "goblog_expired_sessions_removed_total",
			Help: "Total number of expired sessions removed by the cleanup worker",
		},
	)
)

// RecordHTTPRequest records a finished request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func RecordExpiredSessionsRemoved(n int64) {
	if n > 0 {
		ExpiredSessionsRemoved.Add(float64(n))
	}
}
