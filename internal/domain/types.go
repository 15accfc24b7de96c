package domain

// Board holds current values and which cells are fixed givens.
// A value of 0 means the cell is unknown; 1..9 is a placed digit.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a strategy suggestion for the caller.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is a persisted Sudoku with metadata. Solution is present once
// the puzzle has been solved and saved alongside its givens.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Board     Board  `json:"board"`
	Solution  *Board `json:"solution,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Solved    bool   `json:"solved"`
	CreatedAt int64  `json:"createdAt"`
}
