package game

import (
	"fmt"
	"log"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/pkg/uid"
)

const DefaultQuitCommand = "end"

// Settings are fixed for the whole session.
type Settings struct {
	Rows        int
	Cols        int
	TotalRounds int
	QuitCommand string
}

type SessionState string

const (
	SessionRunning SessionState = "running"
	SessionEnded   SessionState = "ended"
)

// Session plays a series of rounds between the same two players.
type Session struct {
	ID       string
	Settings Settings
	Players  [2]*domain.Player
	State    SessionState

	// turn carries over between rounds; it is never reset.
	turn       int
	played     int
	endedEarly bool

	source MoveSource
	notify listeners
}

func NewSession(settings Settings, players [2]*domain.Player, source MoveSource, ls ...Listener) (*Session, error) {
	if err := domain.ValidateDimensions(settings.Rows, settings.Cols); err != nil {
		return nil, err
	}
	if settings.TotalRounds < 1 {
		return nil, fmt.Errorf("round count must be positive, got %d", settings.TotalRounds)
	}
	if settings.QuitCommand == "" {
		settings.QuitCommand = DefaultQuitCommand
	}
	if players[0] == nil || players[1] == nil {
		return nil, fmt.Errorf("session needs two players")
	}

	players[0].Token = domain.Player1
	players[1].Token = domain.Player2

	return &Session{
		ID:       uid.GenerateSessionID(),
		Settings: settings,
		Players:  players,
		State:    SessionRunning,
		source:   source,
		notify:   listeners(ls),
	}, nil
}

// Run plays rounds until they are all done or a player quits. The session
// end is reported to listeners exactly once, including when a read fails.
func (s *Session) Run() (Result, error) {
	if s.State == SessionEnded {
		return s.Result(), fmt.Errorf("session %s already ended", s.ID)
	}

	log.Printf("[SESSION] %s started: %s vs %s, %dx%d, %d round(s)",
		s.ID, s.Players[0].Name, s.Players[1].Name, s.Settings.Rows, s.Settings.Cols, s.Settings.TotalRounds)

	for number := 1; number <= s.Settings.TotalRounds; number++ {
		outcome, err := s.playRound(number)
		if err != nil {
			s.end()
			return s.Result(), err
		}

		if outcome.State == domain.StateEndedEarly {
			s.endedEarly = true
			break
		}
	}

	s.end()
	return s.Result(), nil
}

func (s *Session) playRound(number int) (domain.Outcome, error) {
	g, err := domain.NewGame(s.Settings.Rows, s.Settings.Cols, s.Players, s.turn)
	if err != nil {
		return domain.Outcome{}, err
	}

	info := RoundInfo{
		SessionID: s.ID,
		Number:    number,
		Total:     s.Settings.TotalRounds,
		Players:   s.standings(),
	}

	round := newRound(info, g, s.Settings.QuitCommand, s.source, s.notify)
	outcome, err := round.Play()
	s.turn = g.Turn
	if err != nil {
		return outcome, err
	}
	s.played++

	info.Players = s.standings()
	s.notify.RoundFinished(RoundSummary{
		RoundInfo: info,
		Outcome:   outcome,
		ShowScore: s.Settings.TotalRounds > 1,
		Board:     g.Board,
	})

	return outcome, nil
}

func (s *Session) end() {
	if s.State == SessionEnded {
		return
	}
	s.State = SessionEnded

	result := s.Result()
	log.Printf("[SESSION] %s ended after %d/%d round(s): %s %d - %d %s",
		s.ID, result.RoundsPlayed, result.TotalRounds,
		result.Players[0].Name, result.Players[0].Score, result.Players[1].Score, result.Players[1].Name)
	s.notify.SessionEnded(result)
}

func (s *Session) standings() [2]domain.Player {
	return [2]domain.Player{*s.Players[0], *s.Players[1]}
}

// Result is safe to call at any time; it copies the players.
func (s *Session) Result() Result {
	return Result{
		SessionID:    s.ID,
		Players:      s.standings(),
		RoundsPlayed: s.played,
		TotalRounds:  s.Settings.TotalRounds,
		EndedEarly:   s.endedEarly,
	}
}

// Turn is the current value of the shared turn counter.
func (s *Session) Turn() int {
	return s.turn
}
