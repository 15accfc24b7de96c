package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nicholasprowse/sudoku-solver/internal/hint"
	"github.com/nicholasprowse/sudoku-solver/internal/infrastructure/storage"
	"github.com/nicholasprowse/sudoku-solver/internal/ports"
	"github.com/nicholasprowse/sudoku-solver/internal/solver"
	"github.com/nicholasprowse/sudoku-solver/internal/usecase"
	"github.com/nicholasprowse/sudoku-solver/internal/validator"
)

func main() {
	root := &cobra.Command{
		Use:          "sudoku",
		Short:        "Solve and serve 9x9 Sudoku puzzles",
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd(), newServeCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newService wires providers into the shared use-case service.
// Bitmask is the default engine; backtrack is the plain reference one.
func newService(solverKind, persist string) *usecase.Service {
	var s ports.Solver
	switch strings.ToLower(strings.TrimSpace(solverKind)) {
	case "backtrack", "backtracking":
		s = solver.NewBacktrackingSolver()
	default:
		s = solver.NewBitmaskSolver()
	}
	return usecase.NewService(s, validator.New(), hint.NewSingles(), storage.NewFS(persist))
}
