// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes the terminal's Prometheus counters.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "healthenclave"

// Direction labels of DocumentsTransferred.
const (
	DirectionToDevice   = "to_device"
	DirectionToTerminal = "to_terminal"
)

var (
	sessions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Number of session lifecycle events by outcome",
		},
		[]string{"outcome"},
	)
	documentsTransferred = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_transferred_total",
			Help:      "Number of document bodies transferred",
		},
		[]string{"direction"},
	)
	keysReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "keys_received_total",
			Help:      "Number of document keys received from the device",
		},
		[]string{"kind"},
	)
	transferErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfer_errors_total",
			Help:      "Number of failed document or key transfers",
		},
		[]string{"reason"},
	)
	operatorRequests = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operator_request_duration_seconds",
			Help:      "Latency of operator API requests by route and status",
			Buckets:   []float64{.005, .025, .1, .5, 1, 5, 15, 30, 60},
		},
		[]string{"route", "status"},
	)
	pendingRetrievals = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pending_retrievals",
			Help:      "Number of document retrievals waiting on the device",
		},
	)
)

func init() {
	prometheus.MustRegister(sessions)
	prometheus.MustRegister(documentsTransferred)
	prometheus.MustRegister(keysReceived)
	prometheus.MustRegister(transferErrors)
	prometheus.MustRegister(operatorRequests)
	prometheus.MustRegister(pendingRetrievals)
}

// Session counts a session event ("started", "closed", "lost", "rejected").
func Session(outcome string) {
	sessions.WithLabelValues(outcome).Inc()
}

// DocumentTransferred counts a completed body transfer.
func DocumentTransferred(direction string) {
	documentsTransferred.WithLabelValues(direction).Inc()
}

// KeyReceived counts a key of the given kind ("onefold", "twofold", "denied").
func KeyReceived(kind string) {
	keysReceived.WithLabelValues(kind).Inc()
}

// TransferError counts a failed transfer.
func TransferError(reason string) {
	transferErrors.WithLabelValues(reason).Inc()
}

// SetPendingRetrievals records the current number of waiting retrievals.
func SetPendingRetrievals(n int) {
	pendingRetrievals.Set(float64(n))
}

// OperatorRequest observes one operator API request. route is the route
// pattern, not the raw path, to keep the label set bounded.
func OperatorRequest(route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	operatorRequests.WithLabelValues(route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
