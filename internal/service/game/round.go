package game

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// Round drives one game until someone wins, the board fills or a player quits.
type Round struct {
	Info        RoundInfo
	Game        *domain.Game
	quitCommand string
	source      MoveSource
	notify      Listener
}

func newRound(info RoundInfo, g *domain.Game, quitCommand string, source MoveSource, notify Listener) *Round {
	return &Round{
		Info:        info,
		Game:        g,
		quitCommand: quitCommand,
		source:      source,
		notify:      notify,
	}
}

// Play blocks on the move source once per turn. Bad input is reported to the
// listener and the same player is asked again; only a read failure is returned.
func (r *Round) Play() (domain.Outcome, error) {
	r.notify.RoundStarted(r.Info, r.Game.Board)

	for !r.Game.IsFinished() {
		player := r.Game.CurrentPlayer()

		raw, err := r.source.ReadMove(player)
		if errors.Is(err, io.EOF) {
			log.Printf("[ROUND] %s #%d: input closed, treating as quit", r.Info.SessionID, r.Info.Number)
			raw = r.quitCommand
		} else if err != nil {
			return domain.Outcome{}, fmt.Errorf("failed to read move for %s: %w", player.Name, err)
		}

		if err := r.turn(player, raw); err != nil {
			log.Printf("[ROUND] %s #%d: rejected %q from %s: %v", r.Info.SessionID, r.Info.Number, raw, player.Name, err)
			r.notify.MoveRejected(player, err)
		}
	}

	outcome := r.Game.Outcome()
	switch outcome.State {
	case domain.StateWon:
		log.Printf("[ROUND] %s #%d: %s won after %d moves", r.Info.SessionID, r.Info.Number, outcome.Winner.Name, r.Game.Board.MoveCount())
	case domain.StateDraw:
		log.Printf("[ROUND] %s #%d: draw", r.Info.SessionID, r.Info.Number)
	case domain.StateEndedEarly:
		log.Printf("[ROUND] %s #%d: ended early", r.Info.SessionID, r.Info.Number)
	}
	return outcome, nil
}

func (r *Round) turn(player *domain.Player, raw string) error {
	input, err := domain.ParseInput(raw, r.quitCommand, r.Game.Board)
	if err != nil {
		return err
	}

	if input.Quit {
		return r.Game.Quit()
	}

	row, err := r.Game.MakeMove(input.Move)
	if err != nil {
		return err
	}

	r.notify.MoveApplied(player, input.Move, row, r.Game.Board)
	return nil
}
