package console

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	dimensionsPattern = regexp.MustCompile(`^\s*\d+\s*[xX]\s*\d+\s*$`)
	separatorPattern  = regexp.MustCompile(`\s*[xX]\s*`)
)

// ParseDimensions reads "RxC". Blank input selects the defaults.
func ParseDimensions(input string, defaultRows, defaultCols int) (int, int, error) {
	if input == "" {
		return defaultRows, defaultCols, nil
	}
	if !dimensionsPattern.MatchString(input) {
		return 0, 0, ErrInvalidInput
	}

	parts := separatorPattern.Split(strings.TrimSpace(input), 2)
	rows, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, ErrInvalidInput
	}
	cols, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, ErrInvalidInput
	}

	if err := domain.ValidateDimensions(rows, cols); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// ParseRoundCount reads a positive number of games. Blank input means one game.
func ParseRoundCount(input string) (int, error) {
	if strings.TrimSpace(input) == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 {
		return 0, ErrInvalidInput
	}
	return n, nil
}

// Setup is everything gathered before the first round.
type Setup struct {
	Player1     *domain.Player
	Player2     *domain.Player
	Rows        int
	Cols        int
	TotalRounds int
}

// ReadSetup asks for names, board size and number of games, re-prompting on bad input.
// If input runs out, the remaining answers take their defaults.
func (c *Console) ReadSetup() (Setup, error) {
	var s Setup

	c.println("Connect Four")

	c.println("First player's name:")
	name, err := c.readLine()
	if err != nil && !isEOF(err) {
		return s, err
	}
	s.Player1 = domain.NewPlayer(name, c.cfg.Player1DefaultName, domain.Player1)

	c.println("Second player's name:")
	name, err = c.readLine()
	if err != nil && !isEOF(err) {
		return s, err
	}
	s.Player2 = domain.NewPlayer(name, c.cfg.Player2DefaultName, domain.Player2)

	for {
		c.println("Set the board dimensions (Rows x Columns)")
		c.printf("Press Enter for default (%d x %d)\n", c.cfg.DefaultRows, c.cfg.DefaultCols)
		input, err := c.readLine()
		if err != nil && !isEOF(err) {
			return s, err
		}

		rows, cols, perr := ParseDimensions(input, c.cfg.DefaultRows, c.cfg.DefaultCols)
		if perr != nil {
			c.println(userMessage(perr))
			continue
		}
		s.Rows, s.Cols = rows, cols
		break
	}

	for {
		c.println("Do you want to play single or multiple games?")
		c.println("For a single game, input 1 or press Enter")
		c.println("Input a number of games:")
		input, err := c.readLine()
		if err != nil && !isEOF(err) {
			return s, err
		}

		n, perr := ParseRoundCount(input)
		if perr != nil {
			c.println(userMessage(perr))
			continue
		}
		s.TotalRounds = n
		break
	}

	c.printf("%s VS %s\n", s.Player1.Name, s.Player2.Name)
	c.printf("%d X %d board\n", s.Rows, s.Cols)
	if s.TotalRounds == 1 {
		c.println("Single game")
	} else {
		c.printf("Total %d games\n", s.TotalRounds)
	}

	return s, nil
}
