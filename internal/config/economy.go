package config

import (
	"fmt"

	"github.com/lgbarn/manachess-go/internal/errors"
)

// EconomyConfig holds the mana settings shared by both sides.
type EconomyConfig struct {
	// StartingMana is each side's mana when the game begins.
	StartingMana int `env:"STARTING_MANA"`

	// MaxMana caps each side's mana.
	MaxMana int `env:"MAX_MANA"`

	// RegenPerTurn is added to the side about to act after every turn.
	RegenPerTurn int `env:"REGEN"`
}

// NewEconomyConfig creates an EconomyConfig with default values.
func NewEconomyConfig() *EconomyConfig {
	return &EconomyConfig{
		StartingMana: 2,
		MaxMana:      3,
		RegenPerTurn: 1,
	}
}

// Validate checks that the economy configuration is valid.
func (e *EconomyConfig) Validate() error {
	switch {
	case e.MaxMana < 1:
		return fmt.Errorf("max mana %d: %w", e.MaxMana, errors.ErrInvalidConfig)
	case e.StartingMana < 0 || e.StartingMana > e.MaxMana:
		return fmt.Errorf("starting mana %d outside 0..%d: %w", e.StartingMana, e.MaxMana, errors.ErrInvalidConfig)
	case e.RegenPerTurn < 0:
		return fmt.Errorf("regen %d: %w", e.RegenPerTurn, errors.ErrInvalidConfig)
	}
	return nil
}
