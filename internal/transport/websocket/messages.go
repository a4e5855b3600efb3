package websocket

import (
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
)

type PlayerScore struct {
	Name   string `json:"name"`
	Player int    `json:"player"`
	Score  int    `json:"score"`
}

type ServerMessage struct {
	Type        string        `json:"type"`
	SessionID   string        `json:"sessionId,omitempty"`
	Round       int           `json:"round,omitempty"`
	TotalRounds int           `json:"totalRounds,omitempty"`
	Player      string        `json:"player,omitempty"`
	Column      int           `json:"column,omitempty"` // 1-based
	Row         int           `json:"row,omitempty"`    // 1-based from the top
	Board       [][]int       `json:"board,omitempty"`
	Winner      string        `json:"winner,omitempty"`
	Reason      string        `json:"reason,omitempty"`
	Scores      []PlayerScore `json:"scores,omitempty"`
}

// Feed turns session events into spectator messages.
type Feed struct {
	cm        *ConnectionManager
	sessionID string
	round     int
	total     int
}

func NewFeed(cm *ConnectionManager) *Feed {
	return &Feed{cm: cm}
}

// Helper function to convert the board to ints for JSON
func convertBoardToInts(board *domain.Board) [][]int {
	cells := board.Snapshot()
	intBoard := make([][]int, len(cells))
	for i := range cells {
		intBoard[i] = make([]int, len(cells[i]))
		for j := range cells[i] {
			intBoard[i][j] = int(cells[i][j])
		}
	}
	return intBoard
}

func scoresOf(players [2]domain.Player) []PlayerScore {
	out := make([]PlayerScore, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerScore{Name: p.Name, Player: int(p.Token), Score: p.Score})
	}
	return out
}

func (f *Feed) RoundStarted(info game.RoundInfo, board *domain.Board) {
	f.sessionID = info.SessionID
	f.round = info.Number
	f.total = info.Total

	f.cm.BroadcastMessage(ServerMessage{
		Type:        "round_start",
		SessionID:   info.SessionID,
		Round:       info.Number,
		TotalRounds: info.Total,
		Board:       convertBoardToInts(board),
		Scores:      scoresOf(info.Players),
	})
}

func (f *Feed) MoveApplied(player *domain.Player, move domain.Move, row int, board *domain.Board) {
	f.cm.BroadcastMessage(ServerMessage{
		Type:        "move_made",
		SessionID:   f.sessionID,
		Round:       f.round,
		TotalRounds: f.total,
		Player:      player.Name,
		Column:      move.Number(),
		Row:         row + 1,
		Board:       convertBoardToInts(board),
	})
}

// MoveRejected is not shown to spectators.
func (f *Feed) MoveRejected(*domain.Player, error) {}

func (f *Feed) RoundFinished(summary game.RoundSummary) {
	msg := ServerMessage{
		Type:        "round_over",
		SessionID:   summary.SessionID,
		Round:       summary.Number,
		TotalRounds: summary.Total,
		Board:       convertBoardToInts(summary.Board),
		Scores:      scoresOf(summary.Players),
	}

	switch summary.Outcome.State {
	case domain.StateWon:
		msg.Winner = summary.Outcome.Winner.Name
		msg.Reason = "connect_four"
	case domain.StateDraw:
		msg.Winner = "draw"
		msg.Reason = "draw"
	case domain.StateEndedEarly:
		msg.Reason = "ended_early"
	}

	f.cm.BroadcastMessage(msg)
}

func (f *Feed) SessionEnded(result game.Result) {
	msg := ServerMessage{
		Type:        "session_over",
		SessionID:   result.SessionID,
		Round:       result.RoundsPlayed,
		TotalRounds: result.TotalRounds,
		Scores:      scoresOf(result.Players),
	}
	if leader := result.Leader(); leader != nil {
		msg.Winner = leader.Name
	}
	if result.EndedEarly {
		msg.Reason = "ended_early"
	}

	f.cm.BroadcastMessage(msg)
}
