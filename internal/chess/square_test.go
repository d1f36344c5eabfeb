package chess

import (
	"testing"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Square
		wantErr bool
	}{
		{"e4", Sq('e', '4'), false},
		{"a1", Sq('a', '1'), false},
		{"H8", Sq('h', '8'), false},
		{" c3 ", Sq('c', '3'), false},
		{"i1", Square{}, true},
		{"a9", Square{}, true},
		{"e", Square{}, true},
		{"", Square{}, true},
		{"e44", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSquare(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSquareString(t *testing.T) {
	if got := Sq('e', '4').String(); got != "e4" {
		t.Errorf("String() = %q; want e4", got)
	}
	if got := (Square{}).String(); got != "-" {
		t.Errorf("zero square String() = %q; want -", got)
	}
}

func TestSquareAdjacent(t *testing.T) {
	tests := []struct {
		sq   Square
		want int
	}{
		{Sq('a', '1'), 3},
		{Sq('h', '8'), 3},
		{Sq('a', '4'), 5},
		{Sq('d', '1'), 5},
		{Sq('c', '3'), 8},
	}

	for _, tt := range tests {
		t.Run(tt.sq.String(), func(t *testing.T) {
			got := tt.sq.Adjacent()
			if len(got) != tt.want {
				t.Fatalf("len(Adjacent()) = %d; want %d (%v)", len(got), tt.want, got)
			}
			for _, n := range got {
				if !n.Valid() {
					t.Errorf("Adjacent() returned off-board square %v", n)
				}
				if n == tt.sq {
					t.Errorf("Adjacent() includes the square itself")
				}
			}
		})
	}

	t.Run("c3 neighbourhood excludes a3", func(t *testing.T) {
		for _, n := range Sq('c', '3').Adjacent() {
			if n == Sq('a', '3') {
				t.Error("a3 is two files from c3 and must not be adjacent")
			}
		}
	})
}

func TestSquareIsDark(t *testing.T) {
	if !Sq('a', '1').IsDark() {
		t.Error("a1 should be dark")
	}
	if Sq('h', '1').IsDark() {
		t.Error("h1 should be light")
	}
	if !Sq('h', '8').IsDark() {
		t.Error("h8 should be dark")
	}
}

func TestAllSquares(t *testing.T) {
	squares := AllSquares()
	if len(squares) != 64 {
		t.Fatalf("len(AllSquares()) = %d; want 64", len(squares))
	}
	if squares[0] != Sq('a', '8') {
		t.Errorf("first square = %v; want a8", squares[0])
	}
	if squares[63] != Sq('h', '1') {
		t.Errorf("last square = %v; want h1", squares[63])
	}
}
