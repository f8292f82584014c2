// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command device runs the holder's side of HealthEnclave: it keeps the
// device's documents and keys, syncs them with the terminal and asks the
// holder before any document is opened.
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

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
