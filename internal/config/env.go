// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from WALLET_*, SERVER_*, STORAGE_*, WINDOWS_* and
// WORKERS_* environment variables via caarlos0/env. The mapping lives in
// the `env`/`envPrefix` tags on [StructuredConfig]; variables left unset
// keep the struct's zero values so file and default layers can fill them.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment config: %w", err)
	}

	return nil
}
