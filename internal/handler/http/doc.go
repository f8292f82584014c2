// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the terminal's operator API.
//
// The operator enters the SharedKey, adds documents for the connected device
// and opens documents the device holds. Request tracing and access logging
// are handled here before requests are delegated to the service layer.
// Prometheus metrics are served on /metrics.
package http
