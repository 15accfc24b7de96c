package solver

import (
	"context"
	"errors"
	"time"

	"github.com/nicholasprowse/sudoku-solver/internal/domain"
	"github.com/nicholasprowse/sudoku-solver/internal/ports"
)

// ErrUnsolvable reports that the puzzle admits no legal completion.
// Callers distinguish it from transport or cancellation errors with
// errors.Is.
var ErrUnsolvable = errors.New("puzzle has no solution")

// BacktrackingSolver fills the first empty cell (row-major order) with
// each legal candidate in ascending order, recursing until the board is
// complete or the candidates run out. The first completion found wins;
// a failed branch is undone before the next candidate is tried.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if hasConflict(b) {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrUnsolvable
	}
	work := domain.Board{Values: b.Values}
	nodes := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&work)
		if !ok {
			return true
		}
		for _, v := range work.Candidates(r, c).Digits() {
			nodes++
			work.Set(r, c, v)
			if dfs() {
				return true
			}
			work.Set(r, c, 0)
		}
		return false
	}

	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	out := &domain.Board{Values: work.Values, Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// findEmpty returns the first unknown cell in row-major order.
func findEmpty(b *domain.Board) (int, int, bool) {
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if b.Values[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// hasConflict reports a duplicate digit among the given values of any
// row, column, or box. Candidate pruning only constrains cells filled
// during search, so conflicting givens must be rejected up front or the
// search could "complete" an illegal board.
func hasConflict(b *domain.Board) bool {
	var rows, cols, boxes [domain.Size]domain.DigitSet
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			v := b.Values[r][c]
			if v == 0 {
				continue
			}
			bit := domain.DigitSet(1) << (v - 1)
			bx := boxIndex(r, c)
			if rows[r]&bit != 0 || cols[c]&bit != 0 || boxes[bx]&bit != 0 {
				return true
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[bx] |= bit
		}
	}
	return false
}
