package validator

import (
	"context"

	"github.com/nicholasprowse/sudoku-solver/internal/domain"
)

// FastValidator reports duplicate digits within any row, column, or box
// using per-scope digit masks. Empty cells are ignored, so a partial
// board validates as long as its givens do not collide.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < domain.Size; r++ {
		var m domain.DigitSet
		for c := 0; c < domain.Size; c++ {
			m = mark(b, r, c, m, &conf)
		}
	}
	// cols
	for c := 0; c < domain.Size; c++ {
		var m domain.DigitSet
		for r := 0; r < domain.Size; r++ {
			m = mark(b, r, c, m, &conf)
		}
	}
	// boxes
	for br := 0; br < domain.BoxSize; br++ {
		for bc := 0; bc < domain.BoxSize; bc++ {
			var m domain.DigitSet
			for dr := 0; dr < domain.BoxSize; dr++ {
				for dc := 0; dc < domain.BoxSize; dc++ {
					m = mark(b, br*domain.BoxSize+dr, bc*domain.BoxSize+dc, m, &conf)
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}

// mark records the digit at (r, c) into mask m, appending a conflict if
// the digit was already seen in this scope.
func mark(b *domain.Board, r, c int, m domain.DigitSet, conf *[]domain.CellCoord) domain.DigitSet {
	val := b.Values[r][c]
	if val == 0 {
		return m
	}
	bit := domain.DigitSet(1) << (val - 1)
	if m&bit != 0 {
		*conf = append(*conf, domain.CellCoord{Row: r, Col: c})
	}
	return m | bit
}
