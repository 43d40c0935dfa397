package solver

import "math/bits"

// CellSet is a bitmask of candidate values for one cell. Bit v set means
// value v (1..9) has not been excluded yet.
type CellSet uint16

// Has reports whether v is in the set.
func (s CellSet) Has(v uint8) bool { return s&(1<<v) != 0 }

// Len counts the values in the set.
func (s CellSet) Len() int { return bits.OnesCount16(uint16(s)) }

// Sole returns the remaining value when exactly one is left.
func (s CellSet) Sole() (uint8, bool) {
	if s.Len() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))), true
}

// CellCandidates computes the candidate set for one cell from the grid.
// Filled cells yield the empty set.
func CellCandidates(g *[9][9]uint8, r, c int) CellSet {
	var s CellSet
	for v := uint8(1); v <= 9; v++ {
		if Possible(g, r, c, v) {
			s |= 1 << v
		}
	}
	return s
}

// Candidates tracks the remaining legal values of every cell in parallel to
// the grid. It goes stale the moment any cell is filled: callers must refresh
// before trusting it again, since the deduction rules commit values based on
// candidate counts.
type Candidates [9][9]CellSet

// refresh rebuilds the whole tracker from the grid in place.
func (cd *Candidates) refresh(g *[9][9]uint8) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != 0 {
				cd[r][c] = 0
				continue
			}
			cd[r][c] = CellCandidates(g, r, c)
		}
	}
}
