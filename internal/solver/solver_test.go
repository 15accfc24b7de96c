package solver

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nicholasprowse/sudoku-solver/internal/domain"
	"github.com/nicholasprowse/sudoku-solver/internal/ports"
	"github.com/nicholasprowse/sudoku-solver/internal/validator"
)

// A classic, solvable Sudoku (0 = empty) with a unique solution.
var sample = [9][9]uint8{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolved = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func solvers() map[string]ports.Solver {
	return map[string]ports.Solver{
		"backtrack": NewBacktrackingSolver(),
		"bitmask":   NewBitmaskSolver(),
	}
}

func TestSolveClassicPuzzle(t *testing.T) {
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			in := &domain.Board{Values: sample}
			out, st, err := s.Solve(ctx, in)
			if err != nil {
				t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
			}
			if out.Values != sampleSolved {
				t.Fatalf("wrong solution:\ngot  %v\nwant %v", out.Values, sampleSolved)
			}
			if in.Values != sample {
				t.Fatal("input board was mutated")
			}
			ok, conf, err := validator.New().Validate(ctx, out)
			if err != nil || !ok {
				t.Fatalf("invalid solution: err=%v conflicts=%v", err, conf)
			}
			t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
		})
	}
}

func TestSolveCompleteBoardReturnsUnchanged(t *testing.T) {
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			in := &domain.Board{Values: sampleSolved}
			out, st, err := s.Solve(context.Background(), in)
			if err != nil {
				t.Fatalf("Solve failed: %v", err)
			}
			if out.Values != sampleSolved {
				t.Fatal("complete board came back altered")
			}
			if st.Nodes != 0 {
				t.Fatalf("expected zero search nodes for a complete board, got %d", st.Nodes)
			}
		})
	}
}

func TestSolveColumnConflict(t *testing.T) {
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			var b domain.Board
			b.Set(0, 0, 5)
			b.Set(1, 0, 5)
			_, _, err := s.Solve(context.Background(), &b)
			if !errors.Is(err, ErrUnsolvable) {
				t.Fatalf("want ErrUnsolvable for conflicting givens, got %v", err)
			}
		})
	}
}

func TestSolveRowConflict(t *testing.T) {
	var b domain.Board
	b.Set(4, 2, 7)
	b.Set(4, 8, 7)
	_, _, err := NewBacktrackingSolver().Solve(context.Background(), &b)
	if !errors.Is(err, ErrUnsolvable) {
		t.Fatalf("want ErrUnsolvable, got %v", err)
	}
}

func TestSolveUnsolvableButConflictFree(t *testing.T) {
	// Legal givens that still admit no completion: cell (0,0) is empty
	// while 1..9 all appear in its row, column, or box.
	var b domain.Board
	b.Set(0, 1, 1)
	b.Set(0, 2, 2)
	b.Set(1, 0, 3)
	b.Set(1, 1, 4)
	b.Set(1, 2, 5)
	b.Set(2, 0, 6)
	b.Set(2, 1, 7)
	b.Set(2, 2, 8)
	b.Set(3, 0, 9)
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			_, _, err := s.Solve(context.Background(), &b)
			if !errors.Is(err, ErrUnsolvable) {
				t.Fatalf("want ErrUnsolvable, got %v", err)
			}
		})
	}
}

func TestSolveDeterministic(t *testing.T) {
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			in := &domain.Board{Values: sample}
			first, _, err := s.Solve(context.Background(), in)
			if err != nil {
				t.Fatalf("Solve failed: %v", err)
			}
			second, _, err := s.Solve(context.Background(), in)
			if err != nil {
				t.Fatalf("repeat Solve failed: %v", err)
			}
			if first.Values != second.Values {
				t.Fatal("repeated solves disagree")
			}
		})
	}
}

func TestSolveKeepsFixedClues(t *testing.T) {
	// Clear a scattering of cells from a known solution and check the
	// result still honors every remaining clue.
	cleared := sampleSolved
	for i := 0; i < 81; i += 2 {
		cleared[i/9][i%9] = 0
	}
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			in := &domain.Board{Values: cleared}
			out, _, err := s.Solve(ctx, in)
			if err != nil {
				t.Fatalf("Solve failed: %v", err)
			}
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if cleared[r][c] != 0 && out.Values[r][c] != cleared[r][c] {
						t.Fatalf("clue at r=%d c=%d changed from %d to %d",
							r, c, cleared[r][c], out.Values[r][c])
					}
				}
			}
			if !out.IsComplete() {
				t.Fatal("solution has empty cells")
			}
			ok, conf, _ := validator.New().Validate(ctx, out)
			if !ok {
				t.Fatalf("solution has conflicts: %v", conf)
			}
		})
	}
}

func TestSolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	in := &domain.Board{Values: sample}
	_, _, err := NewBacktrackingSolver().Solve(ctx, in)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}
