package game

import (
	"github.com/lgbarn/manachess-go/internal/ability"
	"github.com/lgbarn/manachess-go/internal/chess"
	"github.com/lgbarn/manachess-go/internal/engine"
	"github.com/lgbarn/manachess-go/internal/registry"
)

// Mode is the state of the ability resolver: Idle, CastingMove or
// CastingTarget.
type Mode interface {
	// Label is the prompt shown while the mode is active.
	Label() string
	isMode()
}

// Idle means clicks select and move pieces normally.
type Idle struct{}

// CastingMove waits for the destination of a movement ability.
type CastingMove struct {
	Ability ability.Definition
	Caster  registry.ID
	From    chess.Square
	Targets []engine.LegalMove
}

// CastingTarget waits for the secondary target after the caster has landed.
type CastingTarget struct {
	Ability  ability.Definition
	Landing  chess.Square
	Targets  []chess.Square
	CastTurn int
}

func (Idle) isMode()          {}
func (CastingMove) isMode()   {}
func (CastingTarget) isMode() {}

func (Idle) Label() string { return "" }

func (m CastingMove) Label() string {
	return m.Ability.Title + ": choose a destination"
}

func (m CastingTarget) Label() string {
	return m.Ability.Title + ": choose an adjacent enemy to root"
}

func findMove(moves []engine.LegalMove, to chess.Square) (engine.LegalMove, bool) {
	for _, m := range moves {
		if m.To == to {
			return m, true
		}
	}
	return engine.LegalMove{}, false
}

func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

// victimSquare is where the piece captured by m stands. En passant takes
// the pawn beside the mover, not the one on the destination.
func victimSquare(from chess.Square, m engine.LegalMove) chess.Square {
	if m.Class == chess.EnPassantPawnMove {
		return chess.Sq(m.To.Col, from.Rank)
	}
	return m.To
}
