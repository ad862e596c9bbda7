package bot

import (
	"github.com/BorislavSto/Connect4Better/internal/domain"
)

const (
	// Window scores for the side to maximise
	AI_FOUR  = 100
	AI_THREE = 10
	AI_TWO   = 5

	// and for the opponent. Opponent threes weigh far more than ours so
	// the bot defends before it builds.
	OPPONENT_FOUR  = -100
	OPPONENT_THREE = -80
	OPPONENT_TWO   = -10
)

// Evaluate is the static score of the grid from ai's point of view: the
// sum of the 4-cell windows starting at every occupied cell along every
// axis.
func Evaluate(grid *domain.Grid, ai, opponent domain.CellState) int {
	score := 0
	for col := 0; col < grid.Columns(); col++ {
		for row := 0; row < grid.Rows(); row++ {
			if grid.Cell(col, row) == domain.Empty {
				continue
			}
			for _, axis := range domain.Axes {
				score += evaluateWindow(grid, col, row, axis[0], axis[1], ai, opponent)
			}
		}
	}
	return score
}

// evaluateWindow scores the window of ToWin cells from (col, row) along
// (dCol, dRow). Windows leaving the board and windows holding both
// players score 0.
func evaluateWindow(grid *domain.Grid, col, row, dCol, dRow int, ai, opponent domain.CellState) int {
	aiCount, opponentCount := 0, 0
	for i := 0; i < domain.ToWin; i++ {
		c, r := col+dCol*i, row+dRow*i
		if !grid.InBounds(c, r) {
			return 0
		}
		switch grid.Cell(c, r) {
		case ai:
			aiCount++
		case opponent:
			opponentCount++
		}
	}

	if aiCount > 0 && opponentCount > 0 {
		return 0
	}

	switch aiCount {
	case 4:
		return AI_FOUR
	case 3:
		return AI_THREE
	case 2:
		return AI_TWO
	}

	switch opponentCount {
	case 4:
		return OPPONENT_FOUR
	case 3:
		return OPPONENT_THREE
	case 2:
		return OPPONENT_TWO
	}

	return 0
}
