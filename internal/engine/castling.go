package engine

import "github.com/lgbarn/manachess-go/internal/chess"

// castleFiles returns the king's file and the rook's starting file for a
// castle, or zero files when the right has been lost.
func castleFiles(board *chess.Board, colour chess.Colour, kingside bool) (kingCol, rookCol chess.Col) {
	if colour == chess.White {
		kingCol = board.WKingCol
		rookCol = board.WQueenCastle
		if kingside {
			rookCol = board.WKingCastle
		}
	} else {
		kingCol = board.BKingCol
		rookCol = board.BQueenCastle
		if kingside {
			rookCol = board.BKingCastle
		}
	}
	return kingCol, rookCol
}

// castleTargets returns the king and rook destination files.
func castleTargets(kingside bool) (kingTo, rookTo chess.Col) {
	if kingside {
		return 'g', 'f'
	}
	return 'c', 'd'
}

// applyCastle applies a castling move and records the rook files on the move.
func applyCastle(board *chess.Board, move *chess.Move) bool {
	colour := board.ToMove
	kingside := move.Class == chess.KingsideCastle
	rank := chess.HomeRank(colour)
	kingFromCol, rookFromCol := castleFiles(board, colour, kingside)
	kingToCol, rookToCol := castleTargets(kingside)

	king := board.Get(kingFromCol, rank)
	rook := board.Get(rookFromCol, rank)
	if king != chess.MakeColouredPiece(colour, chess.King) || rook != chess.MakeColouredPiece(colour, chess.Rook) {
		return false
	}

	board.Set(kingFromCol, rank, chess.Empty)
	board.Set(rookFromCol, rank, chess.Empty)
	board.Set(kingToCol, rank, king)
	board.Set(rookToCol, rank, rook)

	setKingSquare(board, colour, kingToCol, rank)
	clearCastlingRights(board, colour)

	move.FromCol, move.FromRank = kingFromCol, rank
	move.ToCol, move.ToRank = kingToCol, rank
	move.RookFromCol, move.RookToCol = rookFromCol, rookToCol

	board.EnPassant = false
	board.HalfmoveClock++
	finishMove(board, colour)

	return true
}

// canCastle reports whether the side to move may castle on the given wing:
// the right is held, the pieces are in place, the squares between them are
// empty and the king neither starts in, passes through, nor lands in check.
func canCastle(board *chess.Board, colour chess.Colour, kingside bool) bool {
	rank := chess.HomeRank(colour)
	kingCol, rookCol := castleFiles(board, colour, kingside)
	if kingCol == 0 || rookCol == 0 {
		return false
	}
	if board.Get(kingCol, rank) != chess.MakeColouredPiece(colour, chess.King) ||
		board.Get(rookCol, rank) != chess.MakeColouredPiece(colour, chess.Rook) {
		return false
	}

	kingTo, rookTo := castleTargets(kingside)
	lo, hi := minCol(kingCol, rookCol, kingTo, rookTo), maxCol(kingCol, rookCol, kingTo, rookTo)
	for col := lo; col <= hi; col++ {
		if col == kingCol || col == rookCol {
			continue
		}
		if board.Get(col, rank) != chess.Empty {
			return false
		}
	}

	step := sign(int(kingTo) - int(kingCol))
	for col := kingCol; ; col = chess.Col(int(col) + step) {
		if isSquareAttacked(board, chess.Sq(col, rank), colour.Opposite()) {
			return false
		}
		if col == kingTo {
			break
		}
	}
	return true
}

// clearCastlingRights removes both castling rights of a colour.
func clearCastlingRights(board *chess.Board, colour chess.Colour) {
	if colour == chess.White {
		board.WKingCastle = 0
		board.WQueenCastle = 0
	} else {
		board.BKingCastle = 0
		board.BQueenCastle = 0
	}
}

// updateCastlingRightsForRook removes castling rights when a rook moves or is captured.
func updateCastlingRightsForRook(board *chess.Board, colour chess.Colour, col chess.Col, rank chess.Rank) {
	if colour == chess.White && rank == '1' {
		if col == board.WKingCastle {
			board.WKingCastle = 0
		}
		if col == board.WQueenCastle {
			board.WQueenCastle = 0
		}
	} else if colour == chess.Black && rank == '8' {
		if col == board.BKingCastle {
			board.BKingCastle = 0
		}
		if col == board.BQueenCastle {
			board.BQueenCastle = 0
		}
	}
}
