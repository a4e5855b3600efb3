package domain

import "fmt"

// Board is the grid of cells. Row 0 is the top row.
type Board struct {
	rows  int
	cols  int
	cells [][]Cell
	moves int
}

// DimensionError reports which axis of a requested board is out of range.
type DimensionError struct {
	Axis  string // "rows" or "columns"
	Value int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("Board %s should be from %d to %d", e.Axis, MinSize, MaxSize)
}

func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimension
}

// ValidateDimensions checks that rows and cols are both within MinSize..MaxSize.
func ValidateDimensions(rows, cols int) error {
	if rows < MinSize || rows > MaxSize {
		return &DimensionError{Axis: "rows", Value: rows}
	}
	if cols < MinSize || cols > MaxSize {
		return &DimensionError{Axis: "columns", Value: cols}
	}
	return nil
}

func NewBoard(rows, cols int) (*Board, error) {
	if err := ValidateDimensions(rows, cols); err != nil {
		return nil, err
	}

	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Board{rows: rows, cols: cols, cells: cells}, nil
}

func (b *Board) Rows() int { return b.rows }

func (b *Board) Cols() int { return b.cols }

// MoveCount is the number of tokens dropped so far.
func (b *Board) MoveCount() int { return b.moves }

// At returns the cell at (row, col), or Empty when the position is off the board.
func (b *Board) At(row, col int) Cell {
	if !b.inBounds(row, col) {
		return Empty
	}
	return b.cells[row][col]
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// IsColumnOpen reports whether the 0-based column still has an empty cell.
func (b *Board) IsColumnOpen(col int) bool {
	if col < 0 || col >= b.cols {
		return false
	}

	// the column fills from the bottom, so the top cell is the last to go
	return b.cells[0][col] == Empty
}

// Drop places token in the lowest empty cell of col and returns its row.
func (b *Board) Drop(col int, token Cell) (int, error) {
	if col < 0 || col >= b.cols {
		return -1, ErrOutOfRangeColumn
	}

	for row := b.rows - 1; row >= 0; row-- {
		if b.cells[row][col] == Empty {
			b.cells[row][col] = token
			b.moves++
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

func (b *Board) IsFull() bool {
	for c := 0; c < b.cols; c++ {
		if b.cells[0][c] == Empty {
			return false
		}
	}

	return true
}

// Snapshot returns a deep copy of the cells.
func (b *Board) Snapshot() [][]Cell {
	out := make([][]Cell, b.rows)
	for i := range b.cells {
		out[i] = make([]Cell, b.cols)
		copy(out[i], b.cells[i])
	}
	return out
}
