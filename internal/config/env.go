package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "MANACHESS_"

// LoadEnv overlays MANACHESS_* environment variables onto cfg. Unset
// variables leave the current values in place.
func LoadEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
