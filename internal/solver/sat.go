package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// SATSolver encodes the board as CNF and hands it to gini. One variable per
// (row, col, value) triple; clauses say every cell holds at least one value,
// every row/column/box holds each value at most once, and every given holds.
type SATSolver struct{}

func NewSATSolver() *SATSolver { return &SATSolver{} }

// lit maps (r, c, v) with v in 1..9 onto variables 1..729.
func lit(r, c int, v uint8) z.Lit {
	return z.Var(r*81 + c*9 + int(v)).Pos()
}

func (s *SATSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	g := gini.New()

	// every cell has at least one value
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := uint8(1); v <= 9; v++ {
				g.Add(lit(r, c, v))
			}
			g.Add(0)
		}
	}

	// at most one occurrence of each value per row and per column
	for v := uint8(1); v <= 9; v++ {
		for i := 0; i < 9; i++ {
			for a := 0; a < 9; a++ {
				for b2 := a + 1; b2 < 9; b2++ {
					g.Add(lit(i, a, v).Not())
					g.Add(lit(i, b2, v).Not())
					g.Add(0)
					g.Add(lit(a, i, v).Not())
					g.Add(lit(b2, i, v).Not())
					g.Add(0)
				}
			}
		}
	}

	// at most one occurrence of each value per box
	box := func(br, bc int) {
		for v := uint8(1); v <= 9; v++ {
			for a := 0; a < 9; a++ {
				for b2 := a + 1; b2 < 9; b2++ {
					g.Add(lit(br+a/3, bc+a%3, v).Not())
					g.Add(lit(br+b2/3, bc+b2%3, v).Not())
					g.Add(0)
				}
			}
		}
	}
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			box(br, bc)
		}
	}

	// pin the givens
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v != 0 {
				g.Add(lit(r, c, v))
				g.Add(0)
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	if g.Solve() != 1 {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrUnsolvable
	}

	out := &domain.Board{Fixed: b.Fixed}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := uint8(1); v <= 9; v++ {
				if g.Value(lit(r, c, v)) {
					out.Values[r][c] = v
					break
				}
			}
		}
	}
	return out, ports.Stats{Duration: time.Since(start)}, nil
}
