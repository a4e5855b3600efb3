package domain

// Game is one round: a fresh board, the two session players and the turn counter.
type Game struct {
	Board   *Board
	Players [2]*Player
	// Turn is shared across the rounds of a session; even is Players[0], odd is Players[1].
	Turn   int
	State  RoundState
	Winner *Player
}

// Outcome is the terminal result of a round.
type Outcome struct {
	State  RoundState
	Winner *Player
}

func NewGame(rows, cols int, players [2]*Player, turn int) (*Game, error) {
	board, err := NewBoard(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Game{
		Board:   board,
		Players: players,
		Turn:    turn,
		State:   StateAwaitingMove,
	}, nil
}

func (g *Game) CurrentPlayer() *Player {
	return g.Players[g.Turn%2]
}

// MakeMove drops the current player's token and evaluates the board.
// Only lines through the new token can have become a four. A win is checked
// before a draw, so a move that fills the board and completes four scores as a win.
func (g *Game) MakeMove(move Move) (int, error) {
	if g.State != StateAwaitingMove {
		return -1, ErrRoundOver
	}

	mover := g.CurrentPlayer()
	row, err := g.Board.Drop(move.Column, mover.Token)
	if err != nil {
		return -1, err
	}

	g.Turn++

	if HasFourThrough(g.Board, row, move.Column, mover.Token) {
		g.State = StateWon
		g.Winner = mover
		mover.Score += WinPoints
		return row, nil
	}

	if g.Board.IsFull() {
		g.State = StateDraw
		for _, p := range g.Players {
			p.Score += DrawPoints
		}
	}

	return row, nil
}

// Quit ends the round without evaluating the board.
func (g *Game) Quit() error {
	if g.State != StateAwaitingMove {
		return ErrRoundOver
	}
	g.State = StateEndedEarly
	g.Turn++
	return nil
}

func (g *Game) IsFinished() bool {
	return g.State.IsTerminal()
}

func (g *Game) Outcome() Outcome {
	return Outcome{State: g.State, Winner: g.Winner}
}
