// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command enclavectl drives a HealthEnclave terminal through its operator API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().rootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
