package engine

import "github.com/lgbarn/manachess-go/internal/chess"

// applyPieceMove applies a piece (non-pawn) move.
func applyPieceMove(board *chess.Board, move *chess.Move) bool {
	colour := board.ToMove
	fromCol, fromRank := move.FromCol, move.FromRank
	toCol, toRank := move.ToCol, move.ToRank

	piece := board.Get(fromCol, fromRank)
	if !chess.IsOccupied(piece) || chess.ExtractColour(piece) != colour {
		return false
	}
	pieceType := chess.ExtractPiece(piece)
	capturedPiece := board.Get(toCol, toRank)

	board.Set(fromCol, fromRank, chess.Empty)
	board.Set(toCol, toRank, piece)

	if pieceType == chess.King {
		setKingSquare(board, colour, toCol, toRank)
		clearCastlingRights(board, colour)
	}

	// Update castling rights if rook moved or captured
	if pieceType == chess.Rook {
		updateCastlingRightsForRook(board, colour, fromCol, fromRank)
	}
	if chess.IsOccupied(capturedPiece) && chess.ExtractPiece(capturedPiece) == chess.Rook {
		updateCastlingRightsForRook(board, chess.ExtractColour(capturedPiece), toCol, toRank)
	}

	board.EnPassant = false
	if chess.IsOccupied(capturedPiece) {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	finishMove(board, colour)

	return true
}

// setKingSquare records where the king of the given colour stands.
func setKingSquare(board *chess.Board, colour chess.Colour, col chess.Col, rank chess.Rank) {
	if colour == chess.White {
		board.WKingCol, board.WKingRank = col, rank
	} else {
		board.BKingCol, board.BKingRank = col, rank
	}
}

// finishMove advances the move number after Black and hands the move over.
func finishMove(board *chess.Board, colour chess.Colour) {
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
}
