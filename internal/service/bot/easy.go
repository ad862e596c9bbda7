package bot

import (
	"math/rand"

	"github.com/BorislavSto/Connect4Better/internal/domain"
)

// Easy takes a winning drop, otherwise blocks the opponent's winning
// drop, otherwise plays a random column.
type Easy struct {
	rng *rand.Rand
}

func NewEasy(seed int64) *Easy {
	return &Easy{rng: newRand(seed)}
}

func (e *Easy) ChooseMove(grid *domain.Grid, ai, opponent domain.CellState) (int, bool) {
	validColumns := grid.ValidColumns()
	if len(validColumns) == 0 {
		return -1, false
	}

	for _, col := range validColumns {
		if winsAt(grid, col, ai) {
			return col, true
		}
	}

	for _, col := range validColumns {
		if winsAt(grid, col, opponent) {
			return col, true
		}
	}

	return validColumns[e.rng.Intn(len(validColumns))], true
}

// winsAt reports whether dropping player into col would win. The grid is
// left unchanged.
func winsAt(grid *domain.Grid, col int, player domain.CellState) bool {
	row := grid.ColumnHeight(col)
	grid.SetCell(col, row, player)
	defer grid.SetCell(col, row, domain.Empty)
	return domain.CheckWin(grid, col, row, player)
}
