package solver

import (
	"context"
	"time"

	"github.com/nicholasprowse/sudoku-solver/internal/domain"
	"github.com/nicholasprowse/sudoku-solver/internal/ports"
)

// BitmaskSolver tracks row, column, and box occupancy as 9-bit masks
// and branches on the most constrained empty cell first. Same contract
// and result as BacktrackingSolver, far fewer nodes on hard boards.
type BitmaskSolver struct{}

func NewBitmaskSolver() *BitmaskSolver { return &BitmaskSolver{} }

type maskState struct {
	grid  [9][9]uint8
	rows  [domain.Size]domain.DigitSet
	cols  [domain.Size]domain.DigitSet
	boxes [domain.Size]domain.DigitSet
}

func boxIndex(r, c int) int {
	return (r/domain.BoxSize)*domain.BoxSize + c/domain.BoxSize
}

func newMaskState(b *domain.Board) *maskState {
	st := &maskState{grid: b.Values}
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if v := st.grid[r][c]; v != 0 {
				bit := domain.DigitSet(1) << (v - 1)
				st.rows[r] |= bit
				st.cols[c] |= bit
				st.boxes[boxIndex(r, c)] |= bit
			}
		}
	}
	return st
}

func (st *maskState) candidates(r, c int) domain.DigitSet {
	return domain.AllDigits &^ (st.rows[r] | st.cols[c] | st.boxes[boxIndex(r, c)])
}

func (st *maskState) place(r, c int, v uint8) {
	bit := domain.DigitSet(1) << (v - 1)
	st.grid[r][c] = v
	st.rows[r] |= bit
	st.cols[c] |= bit
	st.boxes[boxIndex(r, c)] |= bit
}

func (st *maskState) unplace(r, c int, v uint8) {
	bit := domain.DigitSet(1) << (v - 1)
	st.grid[r][c] = 0
	st.rows[r] &^= bit
	st.cols[c] &^= bit
	st.boxes[boxIndex(r, c)] &^= bit
}

// pick returns the empty cell with the fewest candidates. A cell with
// no candidates is returned immediately so the search fails fast.
func (st *maskState) pick() (row, col int, found bool) {
	best := domain.Size + 1
	for r := 0; r < domain.Size; r++ {
		for c := 0; c < domain.Size; c++ {
			if st.grid[r][c] != 0 {
				continue
			}
			n := st.candidates(r, c).Count()
			if n == 0 {
				return r, c, true
			}
			if n < best {
				best, row, col = n, r, c
				found = true
			}
		}
	}
	return row, col, found
}

func (s *BitmaskSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if hasConflict(b) {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrUnsolvable
	}
	st := newMaskState(b)
	nodes := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := st.pick()
		if !ok {
			return true
		}
		for _, v := range st.candidates(r, c).Digits() {
			nodes++
			st.place(r, c, v)
			if dfs() {
				return true
			}
			st.unplace(r, c, v)
		}
		return false
	}

	if !dfs() {
		stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		return nil, stats, ErrUnsolvable
	}
	out := &domain.Board{Values: st.grid, Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
