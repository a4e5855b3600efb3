package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

const (
	wall        = "║"
	floor       = "═"
	cornerLeft  = "╚"
	cornerRight = "╝"
	joint       = "╩"
)

// RenderBoard prints column numbers, one line per row and a bottom border.
func RenderBoard(w io.Writer, board *domain.Board) {
	var sb strings.Builder

	for i := 1; i <= board.Cols(); i++ {
		fmt.Fprintf(&sb, " %d", i)
	}
	sb.WriteString(" \n")

	for r := 0; r < board.Rows(); r++ {
		for c := 0; c < board.Cols(); c++ {
			sb.WriteString(wall)
			sb.WriteString(board.At(r, c).Symbol())
		}
		sb.WriteString(wall + "\n")
	}

	sb.WriteString(cornerLeft)
	sb.WriteString(strings.Repeat(floor+joint, board.Cols()-1))
	sb.WriteString(floor + cornerRight + "\n")

	io.WriteString(w, sb.String())
}
