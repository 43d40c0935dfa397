package solver

import "svw.info/sudoku-solver/internal/domain"

// The deduction rules commit at most one cell per call and never conclude a
// puzzle is unsolvable: no available move only means no logical progress.

// findNakedSingle locates the first cell (row-major) whose candidate set
// holds exactly one value. Filled cells carry the empty set and are skipped.
func findNakedSingle(cd *Candidates) (int, int, uint8, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v, ok := cd[r][c].Sole(); ok {
				return r, c, v, true
			}
		}
	}
	return 0, 0, 0, false
}

// findUniquePosition locates a cell that is the only remaining home for some
// value within a row, column, or box. Rows are scanned before columns before
// boxes, each in ascending order with values ascending inside a unit; the
// first qualifying (unit, value) pair wins.
func findUniquePosition(cd *Candidates) (int, int, uint8, bool) {
	for r := 0; r < 9; r++ {
		for v := uint8(1); v <= 9; v++ {
			col, n := 0, 0
			for c := 0; c < 9; c++ {
				if cd[r][c].Has(v) {
					col = c
					n++
				}
			}
			if n == 1 {
				return r, col, v, true
			}
		}
	}
	for c := 0; c < 9; c++ {
		for v := uint8(1); v <= 9; v++ {
			row, n := 0, 0
			for r := 0; r < 9; r++ {
				if cd[r][c].Has(v) {
					row = r
					n++
				}
			}
			if n == 1 {
				return row, c, v, true
			}
		}
	}
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			for v := uint8(1); v <= 9; v++ {
				row, col, n := 0, 0, 0
				for dr := 0; dr < 3; dr++ {
					for dc := 0; dc < 3; dc++ {
						if cd[br+dr][bc+dc].Has(v) {
							row, col = br+dr, bc+dc
							n++
						}
					}
				}
				if n == 1 {
					return row, col, v, true
				}
			}
		}
	}
	return 0, 0, 0, false
}

// nakedSingle commits the first naked single, if any. The tracker must be
// fresh with respect to g.
func nakedSingle(g *[9][9]uint8, cd *Candidates) bool {
	r, c, v, ok := findNakedSingle(cd)
	if ok {
		g[r][c] = v
	}
	return ok
}

// uniquePosition commits the first unique-position move, if any. The tracker
// must be fresh with respect to g.
func uniquePosition(g *[9][9]uint8, cd *Candidates) bool {
	r, c, v, ok := findUniquePosition(cd)
	if ok {
		g[r][c] = v
	}
	return ok
}

// FindNakedSingle reports the first naked single on the grid without
// committing it. Intended for hinting.
func FindNakedSingle(g *[9][9]uint8) (domain.CellCoord, uint8, bool) {
	var cd Candidates
	cd.refresh(g)
	r, c, v, ok := findNakedSingle(&cd)
	return domain.CellCoord{Row: r, Col: c}, v, ok
}

// FindUniquePosition reports the first unique-position move on the grid
// without committing it. Intended for hinting.
func FindUniquePosition(g *[9][9]uint8) (domain.CellCoord, uint8, bool) {
	var cd Candidates
	cd.refresh(g)
	r, c, v, ok := findUniquePosition(&cd)
	return domain.CellCoord{Row: r, Col: c}, v, ok
}
