package game

import "github.com/iamasit07/4-in-a-row/console/internal/domain"

// MoveSource supplies the raw text a player typed on their turn.
// Returning io.EOF is treated as the quit signal.
type MoveSource interface {
	ReadMove(player *domain.Player) (string, error)
}

// Listener is told about everything that happens during a session.
// Boards passed to a listener are live; take a Snapshot to keep them.
type Listener interface {
	RoundStarted(info RoundInfo, board *domain.Board)
	MoveApplied(player *domain.Player, move domain.Move, row int, board *domain.Board)
	MoveRejected(player *domain.Player, err error)
	RoundFinished(summary RoundSummary)
	SessionEnded(result Result)
}

type RoundInfo struct {
	SessionID string
	Number    int
	Total     int
	Players   [2]domain.Player
}

type RoundSummary struct {
	RoundInfo
	Outcome domain.Outcome
	// ShowScore is set when the session has more than one round.
	ShowScore bool
	Board     *domain.Board
}

// Result is the final standing of a session.
type Result struct {
	SessionID    string
	Players      [2]domain.Player
	RoundsPlayed int
	TotalRounds  int
	EndedEarly   bool
}

// Leader returns the player with the higher score, or nil on a tie.
func (r Result) Leader() *domain.Player {
	switch {
	case r.Players[0].Score > r.Players[1].Score:
		return &r.Players[0]
	case r.Players[1].Score > r.Players[0].Score:
		return &r.Players[1]
	default:
		return nil
	}
}

type listeners []Listener

func (ls listeners) RoundStarted(info RoundInfo, board *domain.Board) {
	for _, l := range ls {
		l.RoundStarted(info, board)
	}
}

func (ls listeners) MoveApplied(player *domain.Player, move domain.Move, row int, board *domain.Board) {
	for _, l := range ls {
		l.MoveApplied(player, move, row, board)
	}
}

func (ls listeners) MoveRejected(player *domain.Player, err error) {
	for _, l := range ls {
		l.MoveRejected(player, err)
	}
}

func (ls listeners) RoundFinished(summary RoundSummary) {
	for _, l := range ls {
		l.RoundFinished(summary)
	}
}

func (ls listeners) SessionEnded(result Result) {
	for _, l := range ls {
		l.SessionEnded(result)
	}
}
