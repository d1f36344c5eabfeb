package config

import (
	"fmt"

	"github.com/lgbarn/manachess-go/internal/errors"
)

// AbilityConfig tunes the two abilities. Cooldowns and durations are in
// turns, counted from the turn the ability was cast.
type AbilityConfig struct {
	ChargeCost     int `env:"CHARGE_COST"`
	ChargeCooldown int `env:"CHARGE_COOLDOWN"`
	RootDuration   int `env:"ROOT_DURATION"`

	BulwarkCost     int `env:"BULWARK_COST"`
	BulwarkCooldown int `env:"BULWARK_COOLDOWN"`
	ShieldDuration  int `env:"SHIELD_DURATION"`
}

// NewAbilityConfig creates an AbilityConfig with default values.
func NewAbilityConfig() *AbilityConfig {
	return &AbilityConfig{
		ChargeCost:      2,
		ChargeCooldown:  2,
		RootDuration:    2,
		BulwarkCost:     1,
		BulwarkCooldown: 3,
		ShieldDuration:  2,
	}
}

// Validate checks that the ability configuration is valid.
func (a *AbilityConfig) Validate() error {
	costs := map[string]int{"charge cost": a.ChargeCost, "bulwark cost": a.BulwarkCost,
		"charge cooldown": a.ChargeCooldown, "bulwark cooldown": a.BulwarkCooldown}
	for name, v := range costs {
		if v < 0 {
			return fmt.Errorf("%s %d: %w", name, v, errors.ErrInvalidConfig)
		}
	}
	if a.RootDuration < 1 {
		return fmt.Errorf("root duration %d: %w", a.RootDuration, errors.ErrInvalidConfig)
	}
	if a.ShieldDuration < 1 {
		return fmt.Errorf("shield duration %d: %w", a.ShieldDuration, errors.ErrInvalidConfig)
	}
	return nil
}
