package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"svw.info/sudoku-solver/internal/domain"
)

func TestBacktrackingSolveClassicUnder1s(t *testing.T) {
	in := &domain.Board{Values: classic}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := NewBacktrackingSolver().Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	if out.Values != classicSolved {
		t.Fatalf("wrong solution: %v", out.Values)
	}
	t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestBacktrackingSolvesEmptyGrid(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, st, err := NewBacktrackingSolver().Solve(ctx, &domain.Board{})
	if err != nil {
		t.Fatalf("Solve failed on empty grid: %v", err)
	}
	wellFormed(t, &out.Values)
	if st.Nodes == 0 {
		t.Fatal("empty grid cannot be completed without search")
	}
}

func TestSearchRestoresGridOnFailure(t *testing.T) {
	grid := classic
	grid[1][2] = 9 // unsolvable: 9 twice in row 1
	before := grid
	nodes := 0
	if search(context.Background(), &grid, &nodes) {
		t.Fatal("search succeeded on an unsolvable grid")
	}
	if grid != before {
		t.Fatalf("failed search left mutations:\nbefore %v\nafter  %v", before, grid)
	}
}

func TestSearchHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewBacktrackingSolver().Solve(ctx, &domain.Board{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
