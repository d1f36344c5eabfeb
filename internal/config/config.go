// Package config holds the tunable rules and runtime settings of a game.
package config

import (
	"fmt"

	"github.com/apex/log"

	"github.com/lgbarn/manachess-go/internal/engine"
	"github.com/lgbarn/manachess-go/internal/errors"
)

// DefaultLogCapacity is the number of entries kept in the game log.
const DefaultLogCapacity = 10

// Config holds all game configuration. Sub-configs group the economy and
// ability tuning; the remaining fields cover the session itself.
type Config struct {
	Economy EconomyConfig
	Ability AbilityConfig

	// LogCapacity bounds the most-recent-first game log.
	LogCapacity int `env:"LOG_CAPACITY"`

	// StartFEN is the position the game starts from.
	StartFEN string `env:"START_FEN"`

	// LogLevel is an apex/log level name (debug, info, warn, error, fatal).
	LogLevel string `env:"LOG_LEVEL"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Economy:     *NewEconomyConfig(),
		Ability:     *NewAbilityConfig(),
		LogCapacity: DefaultLogCapacity,
		StartFEN:    engine.InitialFEN,
		LogLevel:    "info",
	}
}

// Validate checks every sub-config and the session settings.
func (c *Config) Validate() error {
	if err := c.Economy.Validate(); err != nil {
		return err
	}
	if err := c.Ability.Validate(); err != nil {
		return err
	}
	if c.LogCapacity < 1 {
		return fmt.Errorf("log capacity %d: %w", c.LogCapacity, errors.ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	if _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
		return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
