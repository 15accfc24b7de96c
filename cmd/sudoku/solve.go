package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/nicholasprowse/sudoku-solver/internal/cli"
	"github.com/nicholasprowse/sudoku-solver/internal/domain"
	"github.com/nicholasprowse/sudoku-solver/internal/solver"
	"github.com/nicholasprowse/sudoku-solver/internal/textgrid"
)

const puzzleHelp = `Known values are given as 1-9; unknown values as '0', '_', or a space.
Cells run left to right, top to bottom, with an optional '|' between rows
for readability. With no puzzle argument and no --file, the board is
collected interactively row by row.`

func newSolveCmd() *cobra.Command {
	var (
		file       string
		solverKind string
		save       bool
		persist    string
		pprof      bool
	)
	cmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a puzzle given as text, from a file, or interactively",
		Long:  puzzleHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := readBoard(args, file)
			if err != nil {
				return err
			}
			uc := newService(solverKind, persist)
			if ok, conflicts, err := uc.Validate(cmd.Context(), board); err != nil {
				return err
			} else if !ok {
				return fmt.Errorf("puzzle has conflicting givens at %v", conflicts)
			}
			if pprof {
				defer profile.Start(profile.ProfilePath(".")).Stop()
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, textgrid.Render(board))
			solved, st, err := uc.Solve(cmd.Context(), board)
			if errors.Is(err, solver.ErrUnsolvable) {
				fmt.Fprintln(out, "no solution")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprint(out, textgrid.Render(solved))
			fmt.Fprintf(out, "solved in %v (%d nodes)\n", st.Duration.Round(time.Microsecond), st.Nodes)

			if save {
				p := &domain.Puzzle{Board: *board, Solution: solved}
				if err := uc.Save(cmd.Context(), p); err != nil {
					return err
				}
				fmt.Fprintf(out, "saved as %s\n", p.ID)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the puzzle from a file")
	cmd.Flags().StringVar(&solverKind, "solver", "bitmask", "solver to use: bitmask|backtrack")
	cmd.Flags().BoolVar(&save, "save", false, "persist the puzzle together with its solution")
	cmd.Flags().StringVar(&persist, "persist-path", "./data", "save directory")
	cmd.Flags().BoolVar(&pprof, "pprof", false, "write a CPU profile of the solve to the current directory")
	return cmd
}

func readBoard(args []string, file string) (*domain.Board, error) {
	switch {
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		return textgrid.Parse(string(data))
	case len(args) == 1:
		return textgrid.Parse(args[0])
	default:
		return cli.StdinCollector().Collect()
	}
}
