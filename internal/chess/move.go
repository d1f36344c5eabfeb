package chess

// Move describes one move accepted by the rules engine. It is the structured
// descriptor consumed by everything layered on top of the board.
type Move struct {
	// Short algebraic label (e.g., "Nf3", "exd6", "O-O", "e8=Q+").
	Text string

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// Side that made the move.
	Mover Colour

	// Source square.
	FromCol  Col
	FromRank Rank

	// Destination square. For castling this is the king's destination.
	ToCol  Col
	ToRank Rank

	// The piece type being moved, before any promotion.
	PieceToMove Piece

	// The piece type captured (Empty if no capture).
	CapturedPiece Piece

	// The piece type promoted to (Empty if not a promotion).
	PromotedPiece Piece

	// For castling, the rook's start and end files.
	RookFromCol Col
	RookToCol   Col

	// Whether this move gives check or checkmate.
	CheckStatus CheckStatus
}

// NewMove creates a new empty move.
func NewMove() *Move {
	return &Move{
		CapturedPiece: Empty,
		PromotedPiece: Empty,
		CheckStatus:   NoCheck,
	}
}

// From returns the source square.
func (m *Move) From() Square {
	return Square{Col: m.FromCol, Rank: m.FromRank}
}

// To returns the destination square.
func (m *Move) To() Square {
	return Square{Col: m.ToCol, Rank: m.ToRank}
}

// IsCapture returns true if this move is a capture.
func (m *Move) IsCapture() bool {
	return (m.CapturedPiece != Empty && m.CapturedPiece != Off) || m.Class == EnPassantPawnMove
}

// IsEnPassant returns true if this move captures en passant.
func (m *Move) IsEnPassant() bool {
	return m.Class == EnPassantPawnMove
}

// IsPromotion returns true if this move is a pawn promotion.
func (m *Move) IsPromotion() bool {
	return m.Class == PawnMoveWithPromotion
}

// IsCastle returns true if this move is a castling move.
func (m *Move) IsCastle() bool {
	switch m.Class {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// IsNull returns true if this is a null move.
func (m *Move) IsNull() bool {
	return m.Class == NullMove
}

// CapturedSquare returns the square the captured piece stood on. For en
// passant this is one rank behind the destination from the mover's side.
func (m *Move) CapturedSquare() Square {
	if m.Class == EnPassantPawnMove {
		return Square{Col: m.ToCol, Rank: Rank(int(m.ToRank) - ColourOffset(m.Mover))}
	}
	return m.To()
}

// RookFrom returns the castling rook's start square, defaulting to the
// standard corner when the engine did not record it.
func (m *Move) RookFrom() Square {
	col := m.RookFromCol
	if col == 0 {
		col = 'h'
		if m.Class == QueensideCastle {
			col = 'a'
		}
	}
	return Square{Col: col, Rank: HomeRank(m.Mover)}
}

// RookTo returns the castling rook's destination square.
func (m *Move) RookTo() Square {
	col := m.RookToCol
	if col == 0 {
		col = 'f'
		if m.Class == QueensideCastle {
			col = 'd'
		}
	}
	return Square{Col: col, Rank: HomeRank(m.Mover)}
}
