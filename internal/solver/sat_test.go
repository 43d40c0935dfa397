package solver

import (
	"context"
	"errors"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
)

func TestSATSolverClassicPuzzle(t *testing.T) {
	out, _, err := NewSATSolver().Solve(context.Background(), &domain.Board{Values: classic})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if out.Values != classicSolved {
		t.Fatalf("wrong solution: %v", out.Values)
	}
}

func TestSATSolverEmptyGrid(t *testing.T) {
	out, _, err := NewSATSolver().Solve(context.Background(), &domain.Board{})
	if err != nil {
		t.Fatalf("Solve failed on empty grid: %v", err)
	}
	wellFormed(t, &out.Values)
}

func TestSATSolverUnsolvable(t *testing.T) {
	grid := classic
	grid[1][2] = 9
	_, _, err := NewSATSolver().Solve(context.Background(), &domain.Board{Values: grid})
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("want ErrUnsolvable, got %v", err)
	}
}
