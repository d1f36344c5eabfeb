package engine

import (
	"strings"

	"github.com/lgbarn/manachess-go/internal/chess"
)

// sanPrefix returns the piece letter and any disambiguation for a move,
// computed before the move is made.
func sanPrefix(board *chess.Board, lm LegalMove, pieceType chess.Piece) string {
	if pieceType == chess.Pawn {
		if lm.Capture {
			return string(rune(lm.From.Col))
		}
		return ""
	}
	if pieceType == chess.King {
		return "K"
	}

	var sameFile, sameRank, rivals bool
	mover := board.At(lm.From)
	for _, sq := range chess.AllSquares() {
		if sq == lm.From || board.At(sq) != mover {
			continue
		}
		for _, other := range LegalMovesFrom(board, sq) {
			if other.To != lm.To {
				continue
			}
			rivals = true
			sameFile = sameFile || sq.Col == lm.From.Col
			sameRank = sameRank || sq.Rank == lm.From.Rank
		}
	}

	var sb strings.Builder
	sb.WriteByte(SANPieceLetter(pieceType))
	switch {
	case !rivals:
	case !sameFile:
		sb.WriteByte(byte(lm.From.Col))
	case !sameRank:
		sb.WriteByte(byte(lm.From.Rank))
	default:
		sb.WriteString(lm.From.String())
	}
	return sb.String()
}

// sanText renders a short algebraic label such as "Nc3", "exd6", "O-O"
// or "e8=Q+".
func sanText(move *chess.Move, prefix string) string {
	var sb strings.Builder
	switch move.Class {
	case chess.KingsideCastle:
		sb.WriteString("O-O")
	case chess.QueensideCastle:
		sb.WriteString("O-O-O")
	default:
		sb.WriteString(prefix)
		if move.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(move.To().String())
		if move.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(SANPieceLetter(move.PromotedPiece))
		}
	}

	switch move.CheckStatus {
	case chess.Check:
		sb.WriteByte('+')
	case chess.Checkmate:
		sb.WriteByte('#')
	}
	return sb.String()
}
