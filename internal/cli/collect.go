// Package cli collects a puzzle from the user when none is supplied on
// the command line.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/nicholasprowse/sudoku-solver/internal/domain"
	"github.com/nicholasprowse/sudoku-solver/internal/textgrid"
)

// Collector reads a sudoku row by row. When prompting, malformed rows
// are reported and re-read; otherwise the first bad row is an error so
// piped input fails loudly.
type Collector struct {
	in     *bufio.Reader
	out    io.Writer
	prompt bool
}

func NewCollector(in io.Reader, out io.Writer, prompt bool) *Collector {
	return &Collector{in: bufio.NewReader(in), out: out, prompt: prompt}
}

// StdinCollector prompts only when stdin is attached to a terminal.
func StdinCollector() *Collector {
	return NewCollector(os.Stdin, os.Stderr, term.IsTerminal(int(os.Stdin.Fd())))
}

// Collect reads nine rows using the puzzle cell grammar: 1-9 for
// givens; '0', '_', or a space for unknowns.
func (c *Collector) Collect() (*domain.Board, error) {
	if c.prompt {
		fmt.Fprintln(c.out, "Enter the sudoku row by row (1-9 for givens; 0, _ or space for blanks):")
	}
	b := &domain.Board{}
	for r := 0; r < domain.Size; r++ {
		row, err := c.readRow(r)
		if err != nil {
			return nil, err
		}
		for col, v := range row {
			b.Values[r][col] = v
			b.Fixed[r][col] = v != 0
		}
	}
	return b, nil
}

func (c *Collector) readRow(r int) ([domain.Size]uint8, error) {
	for {
		if c.prompt {
			fmt.Fprintf(c.out, "row %d> ", r+1)
		}
		line, err := c.in.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return [domain.Size]uint8{}, fmt.Errorf("reading row %d: %w", r+1, err)
		}
		row, perr := textgrid.ParseRow(strings.TrimRight(line, "\r\n"))
		if perr == nil {
			return row, nil
		}
		if !c.prompt {
			return row, fmt.Errorf("row %d: %w", r+1, perr)
		}
		fmt.Fprintf(c.out, "  %v, try again\n", perr)
	}
}
