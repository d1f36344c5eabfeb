package engine

import (
	"github.com/lgbarn/manachess-go/internal/chess"
	"github.com/lgbarn/manachess-go/internal/errors"
)

// ApplyMove applies a move to the board and updates the board state.
// The move must name its source square. Returns true if the move was
// applied successfully; legality is the caller's concern.
func ApplyMove(board *chess.Board, move *chess.Move) bool {
	if move == nil {
		return false
	}
	move.Mover = board.ToMove

	switch move.Class {
	case chess.NullMove:
		board.EnPassant = false
		board.HalfmoveClock++
		finishMove(board, board.ToMove)
		return true

	case chess.KingsideCastle, chess.QueensideCastle:
		return applyCastle(board, move)

	case chess.PawnMove, chess.PawnMoveWithPromotion, chess.EnPassantPawnMove:
		if move.FromCol == 0 || move.FromRank == 0 {
			return false
		}
		return applyPawnMove(board, move)

	case chess.PieceMove:
		if move.FromCol == 0 || move.FromRank == 0 {
			return false
		}
		return applyPieceMove(board, move)

	default:
		return false
	}
}

// Pass hands the move to the other side without touching the pieces.
func Pass(board *chess.Board) *chess.Move {
	move := chess.NewMove()
	move.Class = chess.NullMove
	move.Text = "--"
	ApplyMove(board, move)
	return move
}

// Play validates and applies the move from one square to another for the
// side to move. Pawns reaching the last rank promote to promotion (a queen
// when promotion is Empty). On success the board is updated in place and
// the returned move describes what happened; on failure the board is
// untouched and the error wraps ErrIllegalMove.
func Play(board *chess.Board, from, to chess.Square, promotion chess.Piece) (*chess.Move, error) {
	if promotion == chess.Empty {
		promotion = chess.Queen
	}

	for _, lm := range LegalMovesFrom(board, from) {
		if lm.To != to {
			continue
		}

		mover := board.ToMove
		move := lm.toMove(mover, promotion)
		move.PieceToMove = chess.ExtractPiece(board.At(from))
		switch {
		case lm.Class == chess.EnPassantPawnMove:
			move.CapturedPiece = chess.Pawn
		case lm.Capture:
			move.CapturedPiece = chess.ExtractPiece(board.At(to))
		}
		prefix := sanPrefix(board, lm, move.PieceToMove)

		if !ApplyMove(board, move) {
			return nil, errors.Wrapf(errors.ErrIllegalMove, "%s%s", from, to)
		}

		if IsInCheck(board, board.ToMove) {
			move.CheckStatus = chess.Check
			if !HasLegalMoves(board, board.ToMove) {
				move.CheckStatus = chess.Checkmate
			}
		}
		move.Text = sanText(move, prefix)
		return move, nil
	}

	return nil, errors.Wrapf(errors.ErrIllegalMove, "%s%s", from, to)
}
