// Package ability defines the two fixed abilities and their tuning.
package ability

import (
	"github.com/lgbarn/manachess-go/internal/chess"
	"github.com/lgbarn/manachess-go/internal/config"
)

// ID names an ability. Cooldowns are scheduled per piece and per ID.
type ID string

const (
	Charge  ID = "KNIGHT_CHARGE"
	Bulwark ID = "ROOK_BULWARK"
)

// Kind separates abilities that move the caster from those that do not.
type Kind int

const (
	// Movement abilities move the caster and end the turn.
	Movement Kind = iota
	// Instant abilities resolve at once and leave the turn with the caster.
	Instant
)

// Definition describes one ability.
type Definition struct {
	ID          ID
	Title       string
	Description string
	PieceType   chess.Piece
	Cost        int
	Cooldown    int
	Kind        Kind

	// Duration is how many turns the attached status lasts.
	Duration int
}

// Catalog holds the abilities available in a game, keyed by piece type.
type Catalog struct {
	byPiece map[chess.Piece]Definition
}

// NewCatalog builds the catalog from configuration.
func NewCatalog(cfg config.AbilityConfig) *Catalog {
	return &Catalog{byPiece: map[chess.Piece]Definition{
		chess.Knight: {
			ID:          Charge,
			Title:       "Charge",
			Description: "Move, then root an adjacent enemy",
			PieceType:   chess.Knight,
			Cost:        cfg.ChargeCost,
			Cooldown:    cfg.ChargeCooldown,
			Kind:        Movement,
			Duration:    cfg.RootDuration,
		},
		chess.Rook: {
			ID:          Bulwark,
			Title:       "Bulwark",
			Description: "Shield this rook from the next capture",
			PieceType:   chess.Rook,
			Cost:        cfg.BulwarkCost,
			Cooldown:    cfg.BulwarkCooldown,
			Kind:        Instant,
			Duration:    cfg.ShieldDuration,
		},
	}}
}

// ForPiece returns the ability of a piece type, if it has one.
func (c *Catalog) ForPiece(pieceType chess.Piece) (Definition, bool) {
	d, ok := c.byPiece[pieceType]
	return d, ok
}
