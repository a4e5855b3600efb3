package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Move is a validated column choice. Column is 0-based.
type Move struct {
	Column int
}

// Number is the 1-based column shown to players.
func (m Move) Number() int {
	return m.Column + 1
}

// Input is what a player typed on their turn once parsed.
type Input struct {
	Quit bool
	Move Move
}

// MoveError carries the column the player asked for alongside the reason it was refused.
type MoveError struct {
	Column int // as typed, 1-based
	Cols   int
	Raw    string
	Err    error
}

func (e *MoveError) Error() string {
	switch e.Err {
	case ErrColumnFull:
		return fmt.Sprintf("Column %d is full", e.Column)
	case ErrOutOfRangeColumn:
		return fmt.Sprintf("The column number is out of range (1 - %d)", e.Cols)
	case ErrUnparseableInput:
		return "Incorrect column number"
	default:
		return e.Err.Error()
	}
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseInput turns raw text into a quit signal or a legal move for b.
// Range is checked before fullness.
func ParseInput(raw, quitCommand string, b *Board) (Input, error) {
	text := strings.TrimSpace(raw)
	if text == quitCommand {
		return Input{Quit: true}, nil
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return Input{}, &MoveError{Raw: raw, Cols: b.Cols(), Err: ErrUnparseableInput}
	}

	if n < 1 || n > b.Cols() {
		return Input{}, &MoveError{Column: n, Cols: b.Cols(), Raw: raw, Err: ErrOutOfRangeColumn}
	}

	if !b.IsColumnOpen(n - 1) {
		return Input{}, &MoveError{Column: n, Cols: b.Cols(), Raw: raw, Err: ErrColumnFull}
	}

	return Input{Move: Move{Column: n - 1}}, nil
}
