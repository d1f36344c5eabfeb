// Package registry gives every piece a stable identity that follows it from
// square to square until it is captured.
package registry

import (
	uuid "github.com/satori/go.uuid"

	"github.com/lgbarn/manachess-go/internal/chess"
)

// ID is an opaque piece identity. IDs are never reused.
type ID uuid.UUID

// NewID returns a fresh random identity.
func NewID() ID {
	return ID(uuid.NewV4())
}

// String returns the canonical UUID text of the identity.
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// Short returns the first eight hex digits, enough to tell pieces apart in logs.
func (id ID) Short() string {
	return id.String()[:8]
}

// Piece holds the facts known about an identity.
type Piece struct {
	Side chess.Colour
	Type chess.Piece
}

// Entry pairs a square with the identity standing on it.
type Entry struct {
	Square chess.Square
	ID     ID
	Piece  Piece
}

// Registry maps squares to identities and identities to piece facts. A
// Registry is never modified after construction; Reconcile returns a new one.
type Registry struct {
	squares map[chess.Square]ID
	pieces  map[ID]Piece
}

// Seed scans the board from a8 to h1 and gives each piece a new identity.
func Seed(board *chess.Board) *Registry {
	r := &Registry{
		squares: make(map[chess.Square]ID),
		pieces:  make(map[ID]Piece),
	}
	for _, sq := range chess.AllSquares() {
		p := board.At(sq)
		if !chess.IsOccupied(p) {
			continue
		}
		id := NewID()
		r.squares[sq] = id
		r.pieces[id] = Piece{Side: chess.ExtractColour(p), Type: chess.ExtractPiece(p)}
	}
	return r
}

// Reconcile returns the registry after move. The steps run in order: remove
// an ordinary capture on the destination, remove an en passant capture
// behind it, move the mover's identity, retype it on promotion and relocate
// the rook of a castle. When no identity stands on the move's source the
// receiver is returned unchanged with ok false.
func (r *Registry) Reconcile(move *chess.Move) (next *Registry, ok bool) {
	if move == nil || move.IsNull() {
		return r, true
	}
	from, to := move.From(), move.To()
	moverID, found := r.squares[from]
	if !found {
		return r, false
	}

	next = r.clone()

	if move.IsEnPassant() {
		next.remove(move.CapturedSquare())
	} else if victim, occupied := next.squares[to]; occupied && victim != moverID {
		next.remove(to)
	}

	delete(next.squares, from)
	next.squares[to] = moverID

	if move.IsPromotion() {
		p := next.pieces[moverID]
		p.Type = move.PromotedPiece
		if p.Type == chess.Empty {
			p.Type = chess.Queen
		}
		next.pieces[moverID] = p
	}

	if move.IsCastle() {
		rookFrom, rookTo := move.RookFrom(), move.RookTo()
		if rookID, has := next.squares[rookFrom]; has {
			delete(next.squares, rookFrom)
			next.squares[rookTo] = rookID
		}
	}

	return next, true
}

// IDAt returns the identity on a square.
func (r *Registry) IDAt(sq chess.Square) (ID, bool) {
	id, ok := r.squares[sq]
	return id, ok
}

// Piece returns the facts of a live identity.
func (r *Registry) Piece(id ID) (Piece, bool) {
	p, ok := r.pieces[id]
	return p, ok
}

// Alive reports whether the identity is still on the board.
func (r *Registry) Alive(id ID) bool {
	_, ok := r.pieces[id]
	return ok
}

// SquareOf returns the square a live identity stands on.
func (r *Registry) SquareOf(id ID) (chess.Square, bool) {
	for sq, other := range r.squares {
		if other == id {
			return sq, true
		}
	}
	return chess.Square{}, false
}

// Len returns the number of live identities.
func (r *Registry) Len() int {
	return len(r.pieces)
}

// Entries lists every occupied square from a8 to h1.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.squares))
	for _, sq := range chess.AllSquares() {
		if id, ok := r.squares[sq]; ok {
			entries = append(entries, Entry{Square: sq, ID: id, Piece: r.pieces[id]})
		}
	}
	return entries
}

func (r *Registry) clone() *Registry {
	c := &Registry{
		squares: make(map[chess.Square]ID, len(r.squares)),
		pieces:  make(map[ID]Piece, len(r.pieces)),
	}
	for sq, id := range r.squares {
		c.squares[sq] = id
	}
	for id, p := range r.pieces {
		c.pieces[id] = p
	}
	return c
}

// remove drops the identity on sq from both maps.
func (r *Registry) remove(sq chess.Square) {
	id, ok := r.squares[sq]
	if !ok {
		return
	}
	delete(r.squares, sq)
	delete(r.pieces, id)
}
