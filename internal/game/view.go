package game

import (
	"github.com/lgbarn/manachess-go/internal/chess"
	"github.com/lgbarn/manachess-go/internal/status"
)

// Badges are the status markers drawn on a square.
type Badges struct {
	Rooted   bool
	Shielded bool
}

// Target is a highlighted square. Capture marks squares holding an enemy.
type Target struct {
	Square  chess.Square
	Capture bool
}

// BadgesAt returns the status markers of the piece on sq.
func (s *Session) BadgesAt(sq chess.Square) Badges {
	id, ok := s.state.Registry.IDAt(sq)
	if !ok {
		return Badges{}
	}
	return Badges{
		Rooted:   s.state.Statuses.Has(id, status.Rooted),
		Shielded: s.state.Statuses.Has(id, status.Shielded),
	}
}

// Targets returns the squares the next click can act on: the moves of the
// selected piece, the destinations of a cast or the enemies it may root.
func (s *Session) Targets() []Target {
	var targets []Target
	switch m := s.mode.(type) {
	case Idle:
		sq, ok := s.Selected()
		if !ok {
			return nil
		}
		for _, lm := range s.moveTargets(sq) {
			targets = append(targets, Target{Square: lm.To, Capture: lm.Capture})
		}
	case CastingMove:
		for _, lm := range m.Targets {
			targets = append(targets, Target{Square: lm.To, Capture: lm.Capture})
		}
	case CastingTarget:
		for _, sq := range m.Targets {
			targets = append(targets, Target{Square: sq, Capture: true})
		}
	}
	return targets
}

// ModeLabel returns the resolver prompt, empty when idle.
func (s *Session) ModeLabel() string {
	return s.mode.Label()
}

// BoardMap maps every occupied square to a piece code such as "wN" or "bP".
func (s *Session) BoardMap() map[chess.Square]string {
	m := make(map[chess.Square]string)
	for _, sq := range chess.AllSquares() {
		if code := PieceCode(s.board.At(sq)); code != "" {
			m[sq] = code
		}
	}
	return m
}

// PieceCode returns the two-letter code of a coloured piece, or "" for an
// empty square.
func PieceCode(p chess.Piece) string {
	if !chess.IsOccupied(p) {
		return ""
	}
	side := byte('b')
	if chess.ExtractColour(p) == chess.White {
		side = 'w'
	}
	return string([]byte{side, chess.ExtractPiece(p).Letter()})
}
