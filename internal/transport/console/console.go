package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
)

// Console is the text front end. It reads setup answers and moves from in and
// prints the board and results to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	cfg *config.Config
}

func New(in io.Reader, out io.Writer, cfg *config.Config) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		cfg: cfg,
	}
}

// readLine returns one line without its terminator. A final line with no
// newline is returned as is; io.EOF is only returned when nothing was read.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func userMessage(err error) string {
	var moveErr *domain.MoveError
	switch {
	case errors.As(err, &moveErr):
		return moveErr.Error()
	case errors.Is(err, ErrInvalidInput):
		return "Invalid input"
	default:
		return err.Error()
	}
}

// ReadMove implements game.MoveSource.
func (c *Console) ReadMove(player *domain.Player) (string, error) {
	c.printf("%s's turn:\n", player.Name)
	return c.readLine()
}

func (c *Console) RoundStarted(info game.RoundInfo, board *domain.Board) {
	if info.Total > 1 {
		c.printf("Game #%d\n", info.Number)
	}
	RenderBoard(c.out, board)
}

func (c *Console) MoveApplied(_ *domain.Player, _ domain.Move, _ int, board *domain.Board) {
	RenderBoard(c.out, board)
}

func (c *Console) MoveRejected(_ *domain.Player, err error) {
	c.println(userMessage(err))
}

func (c *Console) RoundFinished(summary game.RoundSummary) {
	switch summary.Outcome.State {
	case domain.StateWon:
		c.printf("Player %s won\n", summary.Outcome.Winner.Name)
	case domain.StateDraw:
		c.println("It is a draw")
	}

	if summary.ShowScore {
		p1, p2 := summary.Players[0], summary.Players[1]
		c.println("Score")
		c.printf("%s: %d %s: %d\n", p1.Name, p1.Score, p2.Name, p2.Score)
	}
}

func (c *Console) SessionEnded(game.Result) {
	c.println("Game Over!")
}
