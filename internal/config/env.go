// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from REPOSITORY_URL, REPOSITORY_REQUEST_TIMEOUT,
// REPOSITORY_RETRY_COUNT, LOG_LEVEL and CONFIG. Unset variables leave the
// field at its zero value so lower layers show through the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("read tfinspect environment (REPOSITORY_*, LOG_LEVEL, CONFIG): %w", err)
	}
	return nil
}
