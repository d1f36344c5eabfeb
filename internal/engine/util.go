package engine

import "github.com/lgbarn/manachess-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func minCol(cols ...chess.Col) chess.Col {
	m := cols[0]
	for _, c := range cols[1:] {
		if c < m {
			m = c
		}
	}
	return m
}

func maxCol(cols ...chess.Col) chess.Col {
	m := cols[0]
	for _, c := range cols[1:] {
		if c > m {
			m = c
		}
	}
	return m
}
