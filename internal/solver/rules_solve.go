package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// RuleSolver interleaves cheap logical deduction with exhaustive search:
// naked singles and unique positions run until neither fires, and whatever is
// left falls through to backtracking. This is the default solver.
type RuleSolver struct{}

func NewRuleSolver() *RuleSolver { return &RuleSolver{} }

func (s *RuleSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	var cd Candidates
	deduced := 0
	for ctx.Err() == nil {
		cd.refresh(&grid)
		if nakedSingle(&grid, &cd) {
			deduced++
			continue
		}
		// No cell changed, so the tracker is still fresh here.
		if uniquePosition(&grid, &cd) {
			deduced++
			continue
		}
		break
	}

	nodes := 0
	if _, _, blank := findEmpty(&grid); blank {
		if !search(ctx, &grid, &nodes) {
			st := ports.Stats{Deduced: deduced, Nodes: nodes, Duration: time.Since(start)}
			if err := ctx.Err(); err != nil {
				return nil, st, err
			}
			return nil, st, ErrUnsolvable
		}
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, ports.Stats{Deduced: deduced, Nodes: nodes, Duration: time.Since(start)}, nil
}
