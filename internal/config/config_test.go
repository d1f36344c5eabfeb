package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/apex/log"

	"github.com/lgbarn/manachess-go/internal/engine"
	mcerrors "github.com/lgbarn/manachess-go/internal/errors"
)

// TestEconomyConfig_Defaults verifies EconomyConfig has sensible defaults
func TestEconomyConfig_Defaults(t *testing.T) {
	cfg := NewEconomyConfig()

	if cfg.StartingMana != 2 {
		t.Errorf("StartingMana = %d, want 2", cfg.StartingMana)
	}
	if cfg.MaxMana != 3 {
		t.Errorf("MaxMana = %d, want 3", cfg.MaxMana)
	}
	if cfg.RegenPerTurn != 1 {
		t.Errorf("RegenPerTurn = %d, want 1", cfg.RegenPerTurn)
	}
}

// TestAbilityConfig_Defaults verifies AbilityConfig has sensible defaults
func TestAbilityConfig_Defaults(t *testing.T) {
	cfg := NewAbilityConfig()

	if cfg.ChargeCost != 2 || cfg.ChargeCooldown != 2 || cfg.RootDuration != 2 {
		t.Errorf("Charge = %d/%d/%d, want 2/2/2", cfg.ChargeCost, cfg.ChargeCooldown, cfg.RootDuration)
	}
	if cfg.BulwarkCost != 1 || cfg.ShieldDuration != 2 {
		t.Errorf("Bulwark cost/shield = %d/%d, want 1/2", cfg.BulwarkCost, cfg.ShieldDuration)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.LogCapacity != DefaultLogCapacity {
		t.Errorf("LogCapacity = %d, want %d", cfg.LogCapacity, DefaultLogCapacity)
	}
	if cfg.StartFEN != engine.InitialFEN {
		t.Errorf("StartFEN = %q, want initial position", cfg.StartFEN)
	}
	if cfg.Level() != log.InfoLevel {
		t.Errorf("Level() = %v, want info", cfg.Level())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default Validate() error = %v", err)
	}
}

// TestConfig_Validate verifies config validation
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max mana", func(c *Config) { c.Economy.MaxMana = 0 }},
		{"starting above cap", func(c *Config) { c.Economy.StartingMana = 4 }},
		{"negative starting mana", func(c *Config) { c.Economy.StartingMana = -1 }},
		{"negative regen", func(c *Config) { c.Economy.RegenPerTurn = -1 }},
		{"negative charge cost", func(c *Config) { c.Ability.ChargeCost = -2 }},
		{"negative bulwark cooldown", func(c *Config) { c.Ability.BulwarkCooldown = -1 }},
		{"zero root duration", func(c *Config) { c.Ability.RootDuration = 0 }},
		{"zero shield duration", func(c *Config) { c.Ability.ShieldDuration = 0 }},
		{"zero log capacity", func(c *Config) { c.LogCapacity = 0 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "chatty" }},
		{"bad start position", func(c *Config) { c.StartFEN = "not a fen" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if !errors.Is(err, mcerrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("MANACHESS_STARTING_MANA", "1")
	t.Setenv("MANACHESS_MAX_MANA", "5")
	t.Setenv("MANACHESS_CHARGE_COST", "3")
	t.Setenv("MANACHESS_SHIELD_DURATION", "4")
	t.Setenv("MANACHESS_LOG_CAPACITY", "25")
	t.Setenv("MANACHESS_LOG_LEVEL", "debug")

	cfg := NewConfig()
	if err := LoadEnv(cfg); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if cfg.Economy.StartingMana != 1 || cfg.Economy.MaxMana != 5 {
		t.Errorf("Economy = %+v, want starting 1 max 5", cfg.Economy)
	}
	if cfg.Ability.ChargeCost != 3 || cfg.Ability.ShieldDuration != 4 {
		t.Errorf("Ability = %+v, want charge cost 3 shield 4", cfg.Ability)
	}
	if cfg.Ability.RootDuration != 2 {
		t.Errorf("unset RootDuration = %d, want default 2", cfg.Ability.RootDuration)
	}
	if cfg.LogCapacity != 25 {
		t.Errorf("LogCapacity = %d, want 25", cfg.LogCapacity)
	}
	if cfg.Level() != log.DebugLevel {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestLoadEnvError(t *testing.T) {
	t.Setenv("MANACHESS_REGEN", "lots")

	err := LoadEnv(NewConfig())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithStartFEN("8/8/8/8/8/8/8/1N6 w - - 0 1").
		WithMana(3, 3).
		WithRegen(2).
		WithCharge(1, 4, 3).
		WithBulwark(2, 5, 1).
		WithLogCapacity(4).
		WithLogLevel("warn").
		Build()

	if cfg.StartFEN != "8/8/8/8/8/8/8/1N6 w - - 0 1" {
		t.Errorf("StartFEN = %q", cfg.StartFEN)
	}
	if cfg.Economy != (EconomyConfig{StartingMana: 3, MaxMana: 3, RegenPerTurn: 2}) {
		t.Errorf("Economy = %+v", cfg.Economy)
	}
	want := AbilityConfig{ChargeCost: 1, ChargeCooldown: 4, RootDuration: 3, BulwarkCost: 2, BulwarkCooldown: 5, ShieldDuration: 1}
	if cfg.Ability != want {
		t.Errorf("Ability = %+v, want %+v", cfg.Ability, want)
	}
	if cfg.LogCapacity != 4 || cfg.Level() != log.WarnLevel {
		t.Errorf("LogCapacity/Level = %d/%v, want 4/warn", cfg.LogCapacity, cfg.Level())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
