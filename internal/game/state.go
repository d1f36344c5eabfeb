// Package game drives a match: it owns the board, publishes one immutable
// State per accepted action and resolves ability casts on top of ordinary
// chess moves.
package game

import (
	"github.com/lgbarn/manachess-go/internal/chess"
	"github.com/lgbarn/manachess-go/internal/config"
	"github.com/lgbarn/manachess-go/internal/economy"
	"github.com/lgbarn/manachess-go/internal/registry"
	"github.com/lgbarn/manachess-go/internal/status"
)

// State is one snapshot of the RPG layer. Published states are never
// modified; every action builds the next one from the previous.
type State struct {
	Turn     int
	Economy  *economy.Economy
	Registry *registry.Registry
	Statuses *status.Store
	Log      *Log
}

// NewState seeds identities from board and starts both sides with the
// configured mana.
func NewState(cfg *config.Config, board *chess.Board) *State {
	return &State{
		Turn:     1,
		Economy:  economy.New(cfg.Economy),
		Registry: registry.Seed(board),
		Statuses: status.NewStore(),
		Log:      NewLog(cfg.LogCapacity).Prepend("Game start."),
	}
}

func (s *State) with(fn func(*State)) *State {
	next := *s
	fn(&next)
	return &next
}

// Rooted reports whether the identity is rooted.
func (s *State) Rooted(id registry.ID) bool {
	return s.Statuses.Has(id, status.Rooted)
}

// Shielded reports whether the identity is shielded.
func (s *State) Shielded(id registry.ID) bool {
	return s.Statuses.Has(id, status.Shielded)
}
