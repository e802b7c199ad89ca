package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment according to its `env`
// and `envPrefix` tags. Unset variables leave fields at their zero value so
// that lower-priority sources can supply them later.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err == nil {
		return nil
	}

	var aggErr env.AggregateError
	if errors.As(err, &aggErr) && len(aggErr.Errors) > 1 {
		return fmt.Errorf("error getting env configs (%d invalid variables): %w", len(aggErr.Errors), err)
	}
	return fmt.Errorf("error getting env configs: %w", err)
}
