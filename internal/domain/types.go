package domain

// Cell is the state of one board position.
type Cell int

const (
	Empty   Cell = 0
	Player1 Cell = 1
	Player2 Cell = 2
)

// Symbol returns the glyph used when the board is printed.
func (c Cell) Symbol() string {
	switch c {
	case Player1:
		return "o"
	case Player2:
		return "*"
	default:
		return " "
	}
}

const (
	MinSize = 5
	MaxSize = 9
	ToWin   = 4

	DefaultRows = 6
	DefaultCols = 7
)

const (
	WinPoints  = 2
	DrawPoints = 1
)

// to represent the round status
type RoundState string

const (
	StateAwaitingMove RoundState = "awaiting_move"
	StateWon          RoundState = "won"
	StateDraw         RoundState = "draw"
	StateEndedEarly   RoundState = "ended_early"
)

// IsTerminal reports whether no more moves can be made in this state.
func (s RoundState) IsTerminal() bool {
	return s == StateWon || s == StateDraw || s == StateEndedEarly
}

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidDimension Error = "invalid board dimension"
	ErrOutOfRangeColumn Error = "column out of range"
	ErrColumnFull       Error = "column is full"
	ErrUnparseableInput Error = "incorrect column number"
	ErrRoundOver        Error = "round is over"
)
