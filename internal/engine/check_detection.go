package engine

import "github.com/lgbarn/manachess-go/internal/chess"

// Step vectors as (files, ranks).
var (
	knightSteps   = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingSteps     = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalSteps = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightSteps = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is in check. A side
// without a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := trackedKing(board, colour)
	if !ok {
		king, ok = findKing(board, colour)
		if !ok {
			return false
		}
	}
	return isSquareAttacked(board, king, colour.Opposite())
}

func trackedKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	sq := chess.Sq(board.BKingCol, board.BKingRank)
	if colour == chess.White {
		sq = chess.Sq(board.WKingCol, board.WKingRank)
	}
	return sq, sq.Valid()
}

// findKing scans the board for the king of the given colour.
func findKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.MakeColouredPiece(colour, chess.King)
	for _, sq := range chess.AllSquares() {
		if board.At(sq) == king {
			return sq, true
		}
	}
	return chess.Square{}, false
}

// isSquareAttacked reports whether any piece of byColour attacks sq.
func isSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// A pawn attacks from one rank behind, seen from its own side.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	behind := -chess.ColourOffset(byColour)
	for _, dc := range []int{-1, 1} {
		if from, ok := sq.Offset(dc, behind); ok && board.At(from) == pawn {
			return true
		}
	}

	if hitsOnce(board, sq, knightSteps, chess.MakeColouredPiece(byColour, chess.Knight)) ||
		hitsOnce(board, sq, kingSteps, chess.MakeColouredPiece(byColour, chess.King)) {
		return true
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	return slidesInto(board, sq, diagonalSteps, chess.MakeColouredPiece(byColour, chess.Bishop), queen) ||
		slidesInto(board, sq, straightSteps, chess.MakeColouredPiece(byColour, chess.Rook), queen)
}

// hitsOnce reports whether attacker stands one step from sq.
func hitsOnce(board *chess.Board, sq chess.Square, steps [][2]int, attacker chess.Piece) bool {
	for _, step := range steps {
		if from, ok := sq.Offset(step[0], step[1]); ok && board.At(from) == attacker {
			return true
		}
	}
	return false
}

// slidesInto reports whether the first piece met along any of the rays from
// sq is one of the sliders.
func slidesInto(board *chess.Board, sq chess.Square, steps [][2]int, sliders ...chess.Piece) bool {
	for _, step := range steps {
		for at, ok := sq.Offset(step[0], step[1]); ok; at, ok = at.Offset(step[0], step[1]) {
			piece := board.At(at)
			if piece == chess.Empty {
				continue
			}
			for _, s := range sliders {
				if piece == s {
					return true
				}
			}
			break
		}
	}
	return false
}
