package game

import (
	"github.com/lgbarn/manachess-go/internal/chess"
	"github.com/lgbarn/manachess-go/internal/economy"
	"github.com/lgbarn/manachess-go/internal/registry"
	"github.com/lgbarn/manachess-go/internal/status"
)

// Action is one accepted action handed to the turn cycle. Passes carry a
// null move.
type Action struct {
	Move        *chess.Move
	Description string
}

// Advance runs the turn cycle and returns the next state. The steps run in
// a fixed order:
//
//  1. increment the turn
//  2. drop statuses expiring on the new turn
//  3. reconcile identities against the move (not for passes)
//  4. prune statuses and cooldowns of captured identities
//  5. regenerate mana for the side now to act
//  6. prepend the description to the log
//
// reconciled is false when no identity stood on the move's source square;
// the registry is then carried over unchanged. act.Move must not be nil:
// passes carry the null move from engine.Pass. Advance panics otherwise.
func Advance(prev *State, act Action) (next *State, reconciled bool) {
	if act.Move == nil {
		panic("game: Advance called without a move")
	}
	turn := prev.Turn + 1
	statuses := prev.Statuses.RemoveExpired(turn)

	reg, reconciled := prev.Registry, true
	if !act.Move.IsNull() {
		reg, reconciled = reg.Reconcile(act.Move)
	}

	statuses, econ := PruneDeadIDs(reg, statuses, prev.Economy)
	econ = econ.Regen(act.Move.Mover.Opposite())

	return &State{
		Turn:     turn,
		Economy:  econ,
		Registry: reg,
		Statuses: statuses,
		Log:      prev.Log.Prepend(act.Description),
	}, reconciled
}

// PruneDeadIDs drops statuses and cooldowns keyed by identities that are no
// longer on the board.
func PruneDeadIDs(reg *registry.Registry, statuses *status.Store, econ *economy.Economy) (*status.Store, *economy.Economy) {
	return statuses.Prune(reg.Alive), econ.PruneCooldowns(reg.Alive)
}
