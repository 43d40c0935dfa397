package validator

import (
	"context"

	"svw.info/sudoku-solver/internal/domain"
)

// FastValidator flags duplicate values inside any row, column, or box using
// per-unit bitmasks. It is the gate that keeps conflicting givens away from
// the solving engine, which assumes a legality-respecting starting grid.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for _, unit := range units() {
		mask := 0
		for _, cc := range unit {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if mask&bit != 0 {
				conf = append(conf, cc)
			}
			mask |= bit
		}
	}
	return len(conf) == 0, conf, nil
}

// units enumerates the 27 constraint units: rows, then columns, then boxes.
func units() [27][9]domain.CellCoord {
	var us [27][9]domain.CellCoord
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			us[i][j] = domain.CellCoord{Row: i, Col: j}
			us[9+i][j] = domain.CellCoord{Row: j, Col: i}
		}
	}
	for bx := 0; bx < 9; bx++ {
		br, bc := (bx/3)*3, (bx%3)*3
		for j := 0; j < 9; j++ {
			us[18+bx][j] = domain.CellCoord{Row: br + j/3, Col: bc + j%3}
		}
	}
	return us
}
