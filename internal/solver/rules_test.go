package solver

import (
	"context"
	"errors"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
)

// A classic, uniquely solvable Sudoku (0 = blank).
var classic = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// Its well-known unique solution.
var classicSolved = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

// wellFormed fails the test unless every row, column, and box contains each
// of 1..9 exactly once.
func wellFormed(t *testing.T, g *[9][9]uint8) {
	t.Helper()
	for i := 0; i < 9; i++ {
		var row, col [10]int
		for j := 0; j < 9; j++ {
			row[g[i][j]]++
			col[g[j][i]]++
		}
		for v := 1; v <= 9; v++ {
			if row[v] != 1 || col[v] != 1 {
				t.Fatalf("value %d: %d in row %d, %d in col %d", v, row[v], i, col[v], i)
			}
		}
	}
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			var box [10]int
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					box[g[br+dr][bc+dc]]++
				}
			}
			for v := 1; v <= 9; v++ {
				if box[v] != 1 {
					t.Fatalf("value %d appears %d times in box (%d,%d)", v, box[v], br, bc)
				}
			}
		}
	}
}

func TestRuleSolverClassicPuzzle(t *testing.T) {
	in := &domain.Board{Values: classic}
	out, st, err := NewRuleSolver().Solve(context.Background(), in)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if out.Values != classicSolved {
		t.Fatalf("wrong solution:\ngot  %v\nwant %v", out.Values, classicSolved)
	}
	if in.Values != classic {
		t.Fatal("input board was mutated")
	}
	wellFormed(t, &out.Values)
	t.Logf("deduced=%d nodes=%d dur=%v", st.Deduced, st.Nodes, st.Duration)
}

func TestRuleSolverForcedCellSkipsSearch(t *testing.T) {
	grid := classicSolved
	grid[4][4] = 0
	out, st, err := NewRuleSolver().Solve(context.Background(), &domain.Board{Values: grid})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if out.Values != classicSolved {
		t.Fatal("forced cell filled with wrong value")
	}
	if st.Deduced != 1 {
		t.Fatalf("expected exactly one deduction, got %d", st.Deduced)
	}
	if st.Nodes != 0 {
		t.Fatalf("search ran (%d nodes) on a naked-single puzzle", st.Nodes)
	}
}

func TestRuleSolverSolvedBoardIsIdempotent(t *testing.T) {
	out, st, err := NewRuleSolver().Solve(context.Background(), &domain.Board{Values: classicSolved})
	if err != nil {
		t.Fatalf("Solve failed on a solved board: %v", err)
	}
	if out.Values != classicSolved {
		t.Fatal("solved board was mutated")
	}
	if st.Deduced != 0 || st.Nodes != 0 {
		t.Fatalf("no work expected, got deduced=%d nodes=%d", st.Deduced, st.Nodes)
	}
}

func TestRuleSolverDuplicateGivensFail(t *testing.T) {
	grid := classic
	grid[1][2] = 9 // row 1 now holds 9 twice
	_, _, err := NewRuleSolver().Solve(context.Background(), &domain.Board{Values: grid})
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("want ErrUnsolvable, got %v", err)
	}
}

func TestUniquePositionOrdering(t *testing.T) {
	var cd Candidates
	// Value 3 has a single home in row 4 and another in column 2; the row
	// scan runs first, so (4,7) must win.
	cd[4][7] = 1<<3 | 1<<5
	cd[6][2] = 1<<3 | 1<<8
	r, c, v, ok := findUniquePosition(&cd)
	if !ok || r != 4 || c != 7 || v != 3 {
		t.Fatalf("got r=%d c=%d v=%d ok=%v, want 4 7 3 true", r, c, v, ok)
	}
}

func TestNakedSingleRowMajorOrder(t *testing.T) {
	var cd Candidates
	cd[2][5] = 1 << 7
	cd[1][8] = 1 << 4 // earlier in row-major order
	r, c, v, ok := findNakedSingle(&cd)
	if !ok || r != 1 || c != 8 || v != 4 {
		t.Fatalf("got r=%d c=%d v=%d ok=%v, want 1 8 4 true", r, c, v, ok)
	}
}

func TestCandidatesRefresh(t *testing.T) {
	g := classic
	var cd Candidates
	cd.refresh(&g)
	if cd[0][0] != 0 {
		t.Fatal("filled cell kept candidates")
	}
	// (0,2) sees 5,3 in its row+box, 7 in its row, 6,8,9 in column/box, ...
	for v := uint8(1); v <= 9; v++ {
		if cd[0][2].Has(v) != Possible(&g, 0, 2, v) {
			t.Fatalf("tracker disagrees with constraint check at (0,2) for %d", v)
		}
	}
}
