// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the binaries:
// typed context keys, JSON responses, the resty HTTP client and identifier
// generation.
package utils

import (
	"context"

	"github.com/MKhiriev/health-enclave/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// DeviceIdentityCtxKey stores the authorized device identity of a call.
var DeviceIdentityCtxKey = contextKey("deviceIdentity")

// TraceIDCtxKey stores the per-request trace identifier.
var TraceIDCtxKey = contextKey("traceID")

// WithDeviceIdentity returns a copy of ctx carrying identity.
func WithDeviceIdentity(ctx context.Context, identity models.DeviceIdentity) context.Context {
	return context.WithValue(ctx, DeviceIdentityCtxKey, identity)
}

// GetDeviceIdentityFromContext retrieves the device identity from the
// context.
//
// Returns ok == false when the value is missing or has an unexpected type.
func GetDeviceIdentityFromContext(ctx context.Context) (models.DeviceIdentity, bool) {
	identity, ok := ctx.Value(DeviceIdentityCtxKey).(models.DeviceIdentity)
	return identity, ok
}

// GetTraceIDFromContext retrieves the trace identifier, or "" when absent.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
