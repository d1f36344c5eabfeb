// Package hashing counts how often positions recur during a game.
package hashing

import (
	"github.com/lgbarn/manachess-go/internal/chess"
	"github.com/lgbarn/manachess-go/internal/engine"
)

// PositionHash identifies a position by placement, side to move, castling
// rights and en passant square. Clocks do not take part.
type PositionHash uint64

// HashPosition hashes the position on the board.
func HashPosition(board *chess.Board) PositionHash {
	return hashKey(engine.PositionKey(board))
}

// hashKey folds a position key into a 64-bit value.
func hashKey(key string) PositionHash {
	var hash uint64
	multiplier := uint64(31)
	for _, c := range key {
		hash = hash*multiplier + uint64(c)
	}
	return PositionHash(hash)
}

// RepetitionTable records how many times each position has been reached.
type RepetitionTable struct {
	counts map[PositionHash]int
	total  int
}

// NewRepetitionTable creates an empty table.
func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{counts: make(map[PositionHash]int)}
}

// Record notes one more occurrence of the board's position and returns
// how many times it has now occurred.
func (t *RepetitionTable) Record(board *chess.Board) int {
	h := HashPosition(board)
	t.counts[h]++
	t.total++
	return t.counts[h]
}

// Count returns how many times the board's position has occurred.
func (t *RepetitionTable) Count(board *chess.Board) int {
	return t.counts[HashPosition(board)]
}

// Positions returns the number of positions recorded, repeats included.
func (t *RepetitionTable) Positions() int {
	return t.total
}

// UniqueCount returns the number of distinct positions recorded.
func (t *RepetitionTable) UniqueCount() int {
	return len(t.counts)
}

// Reset clears the table.
func (t *RepetitionTable) Reset() {
	t.counts = make(map[PositionHash]int)
	t.total = 0
}
