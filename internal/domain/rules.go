package domain

// Axes are the four line directions as (deltaCol, deltaRow):
// horizontal, vertical, rising diagonal, falling diagonal.
var Axes = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

// CheckWin reports whether the piece at (col, row) completes a line of
// ToWin for player. The cell itself must hold player. Only lines through
// that cell are checked, so it must be called right after the piece at
// (col, row) was placed.
func CheckWin(g *Grid, col, row int, player CellState) bool {
	if !player.IsPlayer() || g.Cell(col, row) != player {
		return false
	}
	for _, axis := range Axes {
		if LineLength(g, col, row, axis[0], axis[1], player) >= ToWin {
			return true
		}
	}
	return false
}

// LineLength is the run of player pieces through (col, row) along one
// axis, counting the origin cell itself.
func LineLength(g *Grid, col, row, deltaCol, deltaRow int, player CellState) int {
	return 1 +
		CountInDirection(g, col, row, deltaCol, deltaRow, player) +
		CountInDirection(g, col, row, -deltaCol, -deltaRow, player)
}

// this counts the number of pieces in a specific direction, not
// including the starting cell
func CountInDirection(g *Grid, col, row, deltaCol, deltaRow int, player CellState) int {
	count := 0
	c, r := col+deltaCol, row+deltaRow
	for g.Cell(c, r) == player {
		count++
		c += deltaCol
		r += deltaRow
	}
	return count
}

// HasAnyWin scans the whole grid for a line owned by player. The search
// uses it because it does not track the last move across recursion.
func HasAnyWin(g *Grid, player CellState) bool {
	if !player.IsPlayer() {
		return false
	}
	for col := 0; col < g.Columns(); col++ {
		for row := 0; row < g.Rows(); row++ {
			if CheckWin(g, col, row, player) {
				return true
			}
		}
	}
	return false
}
