// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo is reported by the binaries on start and by the operator API.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// SessionInfo is the operator-facing snapshot of the terminal session.
type SessionInfo struct {
	State    string `json:"state"`
	Identity string `json:"identity,omitempty"`
	Since    string `json:"since,omitempty"`
}
