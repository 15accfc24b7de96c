package domain

import "math/bits"

// Standard Sudoku dimensions. The solver, validator, and renderer all
// assume these; there is no N x N generalization.
const (
	Size    = 9
	BoxSize = 3
)

// DigitSet is a set of digits 1..9 packed into the low nine bits.
type DigitSet uint16

// AllDigits contains every digit 1..9.
const AllDigits DigitSet = 1<<Size - 1

func (s DigitSet) Has(v uint8) bool {
	return v >= 1 && v <= Size && s&(1<<(v-1)) != 0
}

func (s DigitSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Digits returns the member digits in ascending order.
func (s DigitSet) Digits() []uint8 {
	out := make([]uint8, 0, s.Count())
	for v := uint8(1); v <= Size; v++ {
		if s.Has(v) {
			out = append(out, v)
		}
	}
	return out
}

// Get returns the value at (r, c); 0 means unknown. Coordinates must be
// in [0, Size).
func (b *Board) Get(r, c int) uint8 { return b.Values[r][c] }

// Set assigns v to (r, c). No legality check is performed; callers are
// responsible for only placing legal candidates.
func (b *Board) Set(r, c int, v uint8) { b.Values[r][c] = v }

// Candidates returns the digits not already present in row r, column c,
// or the 3x3 box containing (r, c). Only meaningful for empty cells.
func (b *Board) Candidates(r, c int) DigitSet {
	var used DigitSet
	for i := 0; i < Size; i++ {
		if v := b.Values[r][i]; v != 0 {
			used |= 1 << (v - 1)
		}
		if v := b.Values[i][c]; v != 0 {
			used |= 1 << (v - 1)
		}
	}
	br, bc := (r/BoxSize)*BoxSize, (c/BoxSize)*BoxSize
	for dr := 0; dr < BoxSize; dr++ {
		for dc := 0; dc < BoxSize; dc++ {
			if v := b.Values[br+dr][bc+dc]; v != 0 {
				used |= 1 << (v - 1)
			}
		}
	}
	return AllDigits &^ used
}

// IsComplete reports whether every cell holds a digit.
func (b *Board) IsComplete() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.Values[r][c] == 0 {
				return false
			}
		}
	}
	return true
}
