package engine

import "github.com/lgbarn/manachess-go/internal/chess"

// LegalMove is one legal destination for the piece on From.
type LegalMove struct {
	From    chess.Square
	To      chess.Square
	Class   chess.MoveClass
	Capture bool
}

// LegalMovesFrom returns the legal moves of the piece on from. Only pieces
// of the side to move have moves; any other square yields none.
func LegalMovesFrom(board *chess.Board, from chess.Square) []LegalMove {
	piece := board.At(from)
	if !chess.IsOccupied(piece) || chess.ExtractColour(piece) != board.ToMove {
		return nil
	}

	var result []LegalMove
	for _, m := range candidateMoves(board, from) {
		if tryMove(board, m) {
			result = append(result, m)
		}
	}
	return result
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, sq := range chess.AllSquares() {
		piece := board.At(sq)
		if !chess.IsOccupied(piece) || chess.ExtractColour(piece) != colour {
			continue
		}
		for _, m := range candidateMoves(board, sq) {
			if tryMoveAs(board, m, colour) {
				return true
			}
		}
	}
	return false
}

// candidateMoves generates the pseudo-legal moves of the piece on from,
// ignoring whether they leave its own king in check.
func candidateMoves(board *chess.Board, from chess.Square) []LegalMove {
	piece := board.At(from)
	colour := chess.ExtractColour(piece)
	pieceType := chess.ExtractPiece(piece)

	if pieceType == chess.Pawn {
		return pawnCandidates(board, from, colour)
	}

	var result []LegalMove
	for _, to := range chess.AllSquares() {
		if to == from || !canPieceMove(board, pieceType, from, to) {
			continue
		}
		if capture, ok := landing(board, to, colour); ok {
			result = append(result, LegalMove{From: from, To: to, Class: chess.PieceMove, Capture: capture})
		}
	}

	if pieceType == chess.King {
		rank := chess.HomeRank(colour)
		if canCastle(board, colour, true) {
			result = append(result, LegalMove{From: from, To: chess.Sq('g', rank), Class: chess.KingsideCastle})
		}
		if canCastle(board, colour, false) {
			result = append(result, LegalMove{From: from, To: chess.Sq('c', rank), Class: chess.QueensideCastle})
		}
	}
	return result
}

// pawnCandidates generates pushes, captures and en passant for a pawn.
func pawnCandidates(board *chess.Board, from chess.Square, colour chess.Colour) []LegalMove {
	var result []LegalMove
	dir := chess.ColourOffset(colour)
	pushClass := func(to chess.Square) chess.MoveClass {
		if to.Rank == promotionRank(colour) {
			return chess.PawnMoveWithPromotion
		}
		return chess.PawnMove
	}

	if one, ok := from.Offset(0, dir); ok && board.At(one) == chess.Empty {
		result = append(result, LegalMove{From: from, To: one, Class: pushClass(one)})
		if from.Rank == pawnStartRank(colour) {
			if two, ok := from.Offset(0, 2*dir); ok && board.At(two) == chess.Empty {
				result = append(result, LegalMove{From: from, To: two, Class: chess.PawnMove})
			}
		}
	}

	for dc := -1; dc <= 1; dc += 2 {
		to, ok := from.Offset(dc, dir)
		if !ok {
			continue
		}
		target := board.At(to)
		if chess.IsOccupied(target) {
			if capture, ok := landing(board, to, colour); ok && capture {
				result = append(result, LegalMove{From: from, To: to, Class: pushClass(to), Capture: true})
			}
			continue
		}
		if board.EnPassant && to.Col == board.EPCol && to.Rank == board.EPRank {
			result = append(result, LegalMove{From: from, To: to, Class: chess.EnPassantPawnMove, Capture: true})
		}
	}
	return result
}

// landing reports whether a piece of colour may end its move on to, and
// whether doing so captures. Kings are never captured.
func landing(board *chess.Board, to chess.Square, colour chess.Colour) (capture, ok bool) {
	target := board.At(to)
	if target == chess.Empty {
		return false, true
	}
	if chess.ExtractColour(target) == colour || chess.ExtractPiece(target) == chess.King {
		return false, false
	}
	return true, true
}

// tryMove makes a candidate move on a copied board and checks that it does
// not leave the mover's king in check.
func tryMove(board *chess.Board, m LegalMove) bool {
	return tryMoveAs(board, m, board.ToMove)
}

func tryMoveAs(board *chess.Board, m LegalMove, colour chess.Colour) bool {
	testBoard := board.Copy()
	testBoard.ToMove = colour
	if !ApplyMove(testBoard, m.toMove(colour, chess.Queen)) {
		return false
	}
	return !IsInCheck(testBoard, colour)
}

// toMove builds the move descriptor ApplyMove consumes.
func (m LegalMove) toMove(colour chess.Colour, promotion chess.Piece) *chess.Move {
	move := chess.NewMove()
	move.Class = m.Class
	move.Mover = colour
	move.FromCol, move.FromRank = m.From.Col, m.From.Rank
	move.ToCol, move.ToRank = m.To.Col, m.To.Rank
	if m.Class == chess.PawnMoveWithPromotion {
		move.PromotedPiece = promotion
	}
	return move
}
