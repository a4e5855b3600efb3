package domain

// a direction is a (deltaRow, deltaCol) step; rows grow downward
type direction struct {
	dr, dc int
}

var (
	horizontal = direction{0, 1}
	vertical   = direction{-1, 0}
	diagRight  = direction{-1, 1}  // up-right
	diagLeft   = direction{-1, -1} // up-left
)

var directions = []direction{horizontal, vertical, diagRight, diagLeft}

// HasFour scans the whole board for four tokens in a line.
func HasFour(b *Board, token Cell) bool {
	if token == Empty {
		return false
	}

	for r := b.rows - 1; r >= 0; r-- {
		for c := 0; c < b.cols; c++ {
			for _, d := range directions {
				if windowMatches(b, r, c, d, token) {
					return true
				}
			}
		}
	}
	return false
}

// windowMatches checks the ToWin cells starting at (row, col) along d.
// Windows that would leave the board are skipped, not read.
func windowMatches(b *Board, row, col int, d direction, token Cell) bool {
	endRow := row + d.dr*(ToWin-1)
	endCol := col + d.dc*(ToWin-1)
	if !b.inBounds(row, col) || !b.inBounds(endRow, endCol) {
		return false
	}

	for i := 0; i < ToWin; i++ {
		if b.cells[row+d.dr*i][col+d.dc*i] != token {
			return false
		}
	}
	return true
}

// HasFourThrough only checks the lines passing through (row, col).
// It gives the same answer as HasFour when (row, col) is the last placed cell.
func HasFourThrough(b *Board, row, col int, token Cell) bool {
	if token == Empty || !b.inBounds(row, col) || b.cells[row][col] != token {
		return false
	}

	for _, d := range directions {
		count := 1 + countInDirection(b, row, col, d.dr, d.dc, token) +
			countInDirection(b, row, col, -d.dr, -d.dc, token)
		if count >= ToWin {
			return true
		}
	}
	return false
}

// this counts the number of tokens in a specific direction, not including the start cell
func countInDirection(b *Board, row, col, deltaRow, deltaCol int, token Cell) int {
	count := 0
	r, c := row+deltaRow, col+deltaCol
	for b.inBounds(r, c) && b.cells[r][c] == token {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
