package solver

import "errors"

// ErrUnsolvable reports that no assignment of the remaining blanks satisfies
// the row/column/box constraints.
var ErrUnsolvable = errors.New("puzzle has no solution")

// Possible reports whether v can legally be placed at (r, c): the cell must
// be blank and v must not already occur in the row, the column, or the 3x3
// box containing the cell.
func Possible(g *[9][9]uint8, r, c int, v uint8) bool {
	if g[r][c] != 0 {
		return false
	}
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// findEmpty returns the first blank cell in row-major order.
func findEmpty(g *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
