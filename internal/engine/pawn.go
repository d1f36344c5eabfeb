package engine

import "github.com/lgbarn/manachess-go/internal/chess"

// applyPawnMove applies a pawn move, including en passant and promotion.
func applyPawnMove(board *chess.Board, move *chess.Move) bool {
	colour := board.ToMove
	fromCol, fromRank := move.FromCol, move.FromRank
	toCol, toRank := move.ToCol, move.ToRank

	pawn := board.Get(fromCol, fromRank)
	if pawn != chess.MakeColouredPiece(colour, chess.Pawn) {
		return false
	}
	capturedPiece := board.Get(toCol, toRank)

	if move.Class == chess.EnPassantPawnMove {
		capturedRank := chess.Rank(int(toRank) - chess.ColourOffset(colour))
		board.Set(toCol, capturedRank, chess.Empty)
	}

	board.Set(fromCol, fromRank, chess.Empty)

	if move.Class == chess.PawnMoveWithPromotion {
		promotedPiece := move.PromotedPiece
		if promotedPiece == chess.Empty {
			promotedPiece = chess.Queen
		}
		board.Set(toCol, toRank, chess.MakeColouredPiece(colour, promotedPiece))
	} else {
		board.Set(toCol, toRank, pawn)
	}

	if chess.IsOccupied(capturedPiece) && chess.ExtractPiece(capturedPiece) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(capturedPiece), toCol, toRank)
	}

	// Set en passant square if double pawn push
	board.EnPassant = false
	if abs(int(toRank)-int(fromRank)) == 2 {
		board.EnPassant = true
		board.EPCol = toCol
		board.EPRank = chess.Rank(int(fromRank) + chess.ColourOffset(colour))
	}

	board.HalfmoveClock = 0
	finishMove(board, colour)

	return true
}

// pawnStartRank returns the rank pawns of the given colour start on.
func pawnStartRank(colour chess.Colour) chess.Rank {
	if colour == chess.White {
		return '2'
	}
	return '7'
}

// promotionRank returns the rank on which pawns of the given colour promote.
func promotionRank(colour chess.Colour) chess.Rank {
	return chess.HomeRank(colour.Opposite())
}
