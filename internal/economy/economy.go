// Package economy tracks each side's mana and each piece's ability cooldowns.
package economy

import (
	"fmt"

	"github.com/lgbarn/manachess-go/internal/ability"
	"github.com/lgbarn/manachess-go/internal/chess"
	"github.com/lgbarn/manachess-go/internal/config"
	"github.com/lgbarn/manachess-go/internal/registry"
)

// Economy is a snapshot of mana pools and cooldown schedules. It is never
// modified after construction; every operation returns a new Economy.
type Economy struct {
	mana    [chess.NumColours]int
	maxMana [chess.NumColours]int
	regen   int

	// cooldowns holds the first turn each ability is usable again, per piece.
	cooldowns map[registry.ID]map[ability.ID]int
}

// New creates an economy with both sides at the configured starting mana.
func New(cfg config.EconomyConfig) *Economy {
	e := &Economy{
		regen:     cfg.RegenPerTurn,
		cooldowns: make(map[registry.ID]map[ability.ID]int),
	}
	for side := range e.mana {
		e.mana[side] = cfg.StartingMana
		e.maxMana[side] = cfg.MaxMana
	}
	return e
}

// Mana returns the current mana of a side.
func (e *Economy) Mana(side chess.Colour) int {
	return e.mana[side]
}

// MaxMana returns the mana cap of a side.
func (e *Economy) MaxMana(side chess.Colour) int {
	return e.maxMana[side]
}

// CanAfford reports whether side holds at least cost mana.
func (e *Economy) CanAfford(side chess.Colour, cost int) bool {
	return e.mana[side] >= cost
}

// SpendMana subtracts cost from side. Callers gate with CanAfford; spending
// below zero panics.
func (e *Economy) SpendMana(side chess.Colour, cost int) *Economy {
	if e.mana[side] < cost {
		panic(fmt.Sprintf("economy: %s spends %d with %d mana", side, cost, e.mana[side]))
	}
	next := e.clone()
	next.mana[side] -= cost
	return next
}

// Regen adds the per-turn regeneration to side, clamped to its cap.
func (e *Economy) Regen(side chess.Colour) *Economy {
	next := e.clone()
	next.mana[side] += next.regen
	if next.mana[side] > next.maxMana[side] {
		next.mana[side] = next.maxMana[side]
	}
	return next
}

// CooldownAvailableTurn returns the first turn the piece may use the
// ability again. Zero means it has never been used.
func (e *Economy) CooldownAvailableTurn(id registry.ID, ab ability.ID) int {
	return e.cooldowns[id][ab]
}

// Ready reports whether the ability is off cooldown on the given turn.
func (e *Economy) Ready(id registry.ID, ab ability.ID, turn int) bool {
	return e.CooldownAvailableTurn(id, ab) <= turn
}

// SetCooldown records the first turn the piece may use the ability again.
func (e *Economy) SetCooldown(id registry.ID, ab ability.ID, turn int) *Economy {
	next := e.clone()
	inner := make(map[ability.ID]int, len(next.cooldowns[id])+1)
	for k, v := range next.cooldowns[id] {
		inner[k] = v
	}
	inner[ab] = turn
	next.cooldowns[id] = inner
	return next
}

// Cast spends the cost and schedules the cooldown in one step.
func (e *Economy) Cast(side chess.Colour, id registry.ID, def ability.Definition, turn int) *Economy {
	return e.SpendMana(side, def.Cost).SetCooldown(id, def.ID, turn+def.Cooldown)
}

// PruneCooldowns drops the schedules of identities for which alive is false.
func (e *Economy) PruneCooldowns(alive func(registry.ID) bool) *Economy {
	next := e.clone()
	for id := range next.cooldowns {
		if !alive(id) {
			delete(next.cooldowns, id)
		}
	}
	return next
}

// TrackedPieces returns the number of identities with a cooldown schedule.
func (e *Economy) TrackedPieces() int {
	return len(e.cooldowns)
}

// clone copies the outer cooldown map; inner maps are shared and replaced
// wholesale by SetCooldown.
func (e *Economy) clone() *Economy {
	next := *e
	next.cooldowns = make(map[registry.ID]map[ability.ID]int, len(e.cooldowns))
	for id, inner := range e.cooldowns {
		next.cooldowns[id] = inner
	}
	return &next
}
