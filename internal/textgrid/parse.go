// Package textgrid converts between Sudoku boards and their text form.
//
// A puzzle string holds 81 cells ordered left to right, top to bottom.
// Digits 1-9 are givens; '0', '_', or a space mean unknown. A vertical
// pipe '|' may separate rows for readability and is ignored, as are
// newlines so that file input works unchanged.
package textgrid

import (
	"fmt"

	"github.com/nicholasprowse/sudoku-solver/internal/domain"
)

// Parse decodes a full 81-cell puzzle string into a board. Non-zero
// cells are marked as fixed givens.
func Parse(s string) (*domain.Board, error) {
	cells, err := parseCells(s, domain.Size*domain.Size)
	if err != nil {
		return nil, err
	}
	b := &domain.Board{}
	for i, v := range cells {
		r, c := i/domain.Size, i%domain.Size
		b.Values[r][c] = v
		b.Fixed[r][c] = v != 0
	}
	return b, nil
}

// ParseRow decodes a single 9-cell row, as entered interactively.
func ParseRow(s string) ([domain.Size]uint8, error) {
	var row [domain.Size]uint8
	cells, err := parseCells(s, domain.Size)
	if err != nil {
		return row, err
	}
	copy(row[:], cells)
	return row, nil
}

func parseCells(s string, want int) ([]uint8, error) {
	cells := make([]uint8, 0, want)
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			cells = append(cells, uint8(r-'0'))
		case r == '_' || r == ' ':
			cells = append(cells, 0)
		case r == '|' || r == '\n' || r == '\r' || r == '\t':
			// separators, ignored
		default:
			return nil, fmt.Errorf("cell %d: invalid character %q", len(cells)+1, r)
		}
		if len(cells) > want {
			break
		}
	}
	if len(cells) != want {
		return nil, fmt.Errorf("expected %d cells, got %d", want, len(cells))
	}
	return cells, nil
}
