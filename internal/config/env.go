// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variables follow the
// envPrefix/env tags of [StructuredConfig], e.g. SESSION_HEARTBEAT_TIMEOUT or
// STORAGE_DB_DSN; durations use time.ParseDuration syntax.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
