// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the terminal's transport servers.
//
// The gRPC server accepts devices over TLS with the certificate the device
// pins; the HTTP server exposes the operator API. Both are started together
// and shut down together when the run context ends.
package server
