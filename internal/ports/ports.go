package ports

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	// Deduced counts cells filled by logical rules before any search ran.
	Deduced int
	// Nodes counts assignments tried by exhaustive search; zero means the
	// puzzle was cracked by deduction alone.
	Nodes    int
	Duration time.Duration
}

// Solver produces a completed board or reports that none exists.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Validator performs fast constraint checks (row/col/box duplicates).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
	Close() error
}
