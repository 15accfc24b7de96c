package hint

import (
	"context"
	"fmt"

	"github.com/nicholasprowse/sudoku-solver/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles: an
// empty cell whose candidate set has exactly one member.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first found naked single if max tier allows it.
func (h *Singles) Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error) {
	if max < domain.StrategySingles {
		return domain.Hint{}, false, nil
	}
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			cand := b.Candidates(r, c)
			if cand.Count() != 1 {
				continue
			}
			v := cand.Digits()[0]
			return domain.Hint{
				Message:  fmt.Sprintf("Single: only %d fits here", v),
				Cells:    []domain.CellCoord{{Row: r, Col: c}},
				Strategy: domain.StrategySingles,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}
