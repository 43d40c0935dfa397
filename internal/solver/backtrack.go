package solver

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// BacktrackingSolver runs exhaustive depth-first search with no deduction.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	ok := search(ctx, &grid, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	return &domain.Board{Values: grid, Fixed: b.Fixed}, st, nil
}

// search tries values 1..9 in the first blank cell and recurses. On failure
// the cell is reverted to blank before returning, so shallower frames see the
// grid exactly as it was. A complete grid returns true with no mutation.
func search(ctx context.Context, g *[9][9]uint8, nodes *int) bool {
	if ctx.Err() != nil {
		return false
	}
	r, c, ok := findEmpty(g)
	if !ok {
		return true
	}
	for v := uint8(1); v <= 9; v++ {
		if !Possible(g, r, c, v) {
			continue
		}
		*nodes++
		g[r][c] = v
		if search(ctx, g, nodes) {
			return true
		}
		g[r][c] = 0
	}
	return false
}
