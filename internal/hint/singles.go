package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/solver"
)

// Singles suggests naked singles and, one tier up, hidden singles (a value
// with exactly one home left in a row, column, or box). It reuses the
// engine's own candidate bookkeeping, so a hint is always the move the
// deduction rules would make next.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if cell, v, ok := solver.FindNakedSingle(&b.Values); ok {
		return domain.Hint{
			Message:  fmt.Sprintf("Naked single: only %d fits here", v),
			Value:    v,
			Cells:    []domain.CellCoord{cell},
			Strategy: domain.StrategySingles,
		}, true, nil
	}
	if max < domain.StrategyHidden {
		return domain.Hint{}, false, nil
	}
	if cell, v, ok := solver.FindUniquePosition(&b.Values); ok {
		return domain.Hint{
			Message:  fmt.Sprintf("Hidden single: %d has only one place left in its unit", v),
			Value:    v,
			Cells:    []domain.CellCoord{cell},
			Strategy: domain.StrategyHidden,
		}, true, nil
	}
	return domain.Hint{}, false, nil
}
