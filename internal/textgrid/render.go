package textgrid

import (
	"strings"

	"github.com/nicholasprowse/sudoku-solver/internal/domain"
)

const (
	topBorder    = "┌───────┬───────┬───────┐\n"
	midBorder    = "├───────┼───────┼───────┤\n"
	bottomBorder = "└───────┴───────┴───────┘\n"
)

// Render draws the board with box-drawing borders around each 3x3
// block. Unknown cells render blank.
func Render(b *domain.Board) string {
	var sb strings.Builder
	sb.WriteString(topBorder)
	for r := 0; r < domain.Size; r++ {
		if r != 0 && r%domain.BoxSize == 0 {
			sb.WriteString(midBorder)
		}
		for c := 0; c < domain.Size; c++ {
			if c%domain.BoxSize == 0 {
				sb.WriteString("│ ")
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteString("  ")
			} else {
				sb.WriteByte('0' + v)
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("│\n")
	}
	sb.WriteString(bottomBorder)
	return sb.String()
}

// Compact returns the 81-cell single-line form accepted by Parse, with
// '0' for unknowns and '|' between rows.
func Compact(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < domain.Size; r++ {
		if r != 0 {
			sb.WriteByte('|')
		}
		for c := 0; c < domain.Size; c++ {
			sb.WriteByte('0' + b.Values[r][c])
		}
	}
	return sb.String()
}
