package chess

import (
	"fmt"
	"strings"
)

// Square identifies one of the 64 board squares by file and rank characters.
// The zero value is not a valid square.
type Square struct {
	Col  Col
	Rank Rank
}

// Sq builds a square from file and rank characters.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Square, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: want file and rank", s)
	}
	sq := Square{Col: Col(s[0]), Rank: Rank(s[1])}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("square %q: off the board", s)
	}
	return sq, nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col >= FirstCol && s.Col <= LastCol && s.Rank >= FirstRank && s.Rank <= LastRank
}

// String returns the algebraic name of the square, or "-" for invalid squares.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// Offset returns the square dc files and dr ranks away, and whether it is on the board.
func (s Square) Offset(dc, dr int) (Square, bool) {
	n := Square{Col: Col(int(s.Col) + dc), Rank: Rank(int(s.Rank) + dr)}
	return n, n.Valid()
}

// Adjacent returns the up to eight on-board squares touching s.
func (s Square) Adjacent() []Square {
	result := make([]Square, 0, 8)
	for dc := -1; dc <= 1; dc++ {
		for dr := -1; dr <= 1; dr++ {
			if dc == 0 && dr == 0 {
				continue
			}
			if n, ok := s.Offset(dc, dr); ok {
				result = append(result, n)
			}
		}
	}
	return result
}

// IsDark reports whether the square is a dark square (a1 is dark).
func (s Square) IsDark() bool {
	return (int(s.Col-FirstCol)+int(s.Rank-FirstRank))%2 == 0
}

// AllSquares returns every board square from a8 to h1, rank by rank.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for rank := Rank(LastRank); rank >= FirstRank; rank-- {
		for col := Col(FirstCol); col <= LastCol; col++ {
			squares = append(squares, Square{Col: col, Rank: rank})
		}
	}
	return squares
}
