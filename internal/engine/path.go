package engine

import "github.com/lgbarn/manachess-go/internal/chess"

// canPieceMove reports whether a knight, bishop, rook, queen or king could
// move from one square to another, ignoring what stands on the destination.
// Pawns are generated separately.
func canPieceMove(board *chess.Board, pieceType chess.Piece, from, to chess.Square) bool {
	dc := abs(int(to.Col) - int(from.Col))
	dr := abs(int(to.Rank) - int(from.Rank))
	diagonal := dc == dr
	straight := dc == 0 || dr == 0

	switch pieceType {
	case chess.Knight:
		return (dc == 1 && dr == 2) || (dc == 2 && dr == 1)
	case chess.King:
		return dc <= 1 && dr <= 1
	case chess.Bishop:
		return diagonal && pathClear(board, from, to)
	case chess.Rook:
		return straight && pathClear(board, from, to)
	case chess.Queen:
		return (diagonal || straight) && pathClear(board, from, to)
	}
	return false
}

// pathClear reports whether every square strictly between from and to is
// empty. The squares must share a file, rank or diagonal.
func pathClear(board *chess.Board, from, to chess.Square) bool {
	dc := sign(int(to.Col) - int(from.Col))
	dr := sign(int(to.Rank) - int(from.Rank))
	for at, _ := from.Offset(dc, dr); at != to; at, _ = at.Offset(dc, dr) {
		if board.At(at) != chess.Empty {
			return false
		}
	}
	return true
}
