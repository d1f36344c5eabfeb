package game

import (
	"github.com/lgbarn/manachess-go/internal/ability"
	"github.com/lgbarn/manachess-go/internal/chess"
	"github.com/lgbarn/manachess-go/internal/errors"
	"github.com/lgbarn/manachess-go/internal/registry"
)

// Panel describes the ability of the selected piece.
type Panel struct {
	Ability ability.Definition
	Enabled bool
	// Reason explains why the ability is disabled.
	Reason string
}

// checkAbility reports the first failing precondition for casting def with
// the identity on sq: rooted, on cooldown, then unaffordable.
func checkAbility(st *State, id registry.ID, sq chess.Square, side chess.Colour, def ability.Definition) error {
	refuse := func(err error) *errors.ActionError {
		return &errors.ActionError{Err: err, Turn: st.Turn, Square: sq.String(), Ability: def.Title}
	}

	if st.Rooted(id) {
		return refuse(errors.ErrRooted)
	}
	if !st.Economy.Ready(id, def.ID, st.Turn) {
		ae := refuse(errors.ErrOnCooldown)
		ae.AvailableOn = st.Economy.CooldownAvailableTurn(id, def.ID)
		return ae
	}
	if !st.Economy.CanAfford(side, def.Cost) {
		return refuse(errors.ErrInsufficientMana)
	}
	return nil
}
