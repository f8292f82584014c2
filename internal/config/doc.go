// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the terminal, the device and the operator CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Explicit overrides (cobra flags of the device and enclavectl)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//  5. Built-in defaults
//
// The entry points are [GetTerminalConfig], [GetDeviceConfig] and
// [GetOperatorConfig], each returning a validated view of [StructuredConfig].
package config
