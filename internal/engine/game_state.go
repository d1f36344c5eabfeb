package engine

import "github.com/lgbarn/manachess-go/internal/chess"

// Game-over reasons reported by Evaluate.
const (
	ReasonCheckmate            = "Checkmate"
	ReasonStalemate            = "Stalemate"
	ReasonInsufficientMaterial = "Draw by insufficient material"
	ReasonFiftyMoves           = "Draw by fifty-move rule"
	ReasonRepetition           = "Draw by threefold repetition"
)

// FiftyMoveHalfmoves is the halfmove clock value at which the game is drawn.
const FiftyMoveHalfmoves = 100

// RepetitionLimit is the number of occurrences of a position that draws.
const RepetitionLimit = 3

// Outcome describes whether the game has ended and why.
type Outcome struct {
	Over    bool
	Reason  string
	Winner  chess.Colour // valid only for checkmate
	InCheck bool
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// Evaluate reports the game state for the side to move. repetitions is the
// number of times the current position has occurred, including now.
func Evaluate(board *chess.Board, repetitions int) Outcome {
	colour := board.ToMove
	out := Outcome{InCheck: IsInCheck(board, colour)}

	if !HasLegalMoves(board, colour) {
		out.Over = true
		if out.InCheck {
			out.Reason = ReasonCheckmate
			out.Winner = colour.Opposite()
		} else {
			out.Reason = ReasonStalemate
		}
		return out
	}

	switch {
	case HasInsufficientMaterial(board):
		out.Over, out.Reason = true, ReasonInsufficientMaterial
	case board.HalfmoveClock >= FiftyMoveHalfmoves:
		out.Over, out.Reason = true, ReasonFiftyMoves
	case repetitions >= RepetitionLimit:
		out.Over, out.Reason = true, ReasonRepetition
	}
	return out
}
