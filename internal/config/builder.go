package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithMana sets starting and maximum mana for both sides.
func (b *ConfigBuilder) WithMana(starting, max int) *ConfigBuilder {
	b.cfg.Economy.StartingMana = starting
	b.cfg.Economy.MaxMana = max
	return b
}

// WithRegen sets the mana regenerated per turn.
func (b *ConfigBuilder) WithRegen(amount int) *ConfigBuilder {
	b.cfg.Economy.RegenPerTurn = amount
	return b
}

// WithCharge tunes the knight's Charge.
func (b *ConfigBuilder) WithCharge(cost, cooldown, rootDuration int) *ConfigBuilder {
	b.cfg.Ability.ChargeCost = cost
	b.cfg.Ability.ChargeCooldown = cooldown
	b.cfg.Ability.RootDuration = rootDuration
	return b
}

// WithBulwark tunes the rook's Bulwark.
func (b *ConfigBuilder) WithBulwark(cost, cooldown, shieldDuration int) *ConfigBuilder {
	b.cfg.Ability.BulwarkCost = cost
	b.cfg.Ability.BulwarkCooldown = cooldown
	b.cfg.Ability.ShieldDuration = shieldDuration
	return b
}

// WithLogCapacity sets the game log capacity.
func (b *ConfigBuilder) WithLogCapacity(n int) *ConfigBuilder {
	b.cfg.LogCapacity = n
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}
