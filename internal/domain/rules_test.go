package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func gridWith(cells map[[2]int]CellState) *Grid {
	g := NewGrid(DefaultColumns, DefaultRows)
	for pos, state := range cells {
		g.SetCell(pos[0], pos[1], state)
	}
	return g
}

func TestCheckWin(t *testing.T) {
	cases := []struct {
		name  string
		cells map[[2]int]CellState
		col   int
		row   int
		win   bool
	}{
		{
			name:  "horizontal",
			cells: map[[2]int]CellState{{1, 0}: Player1, {2, 0}: Player1, {3, 0}: Player1, {4, 0}: Player1},
			col:   2, row: 0, win: true,
		},
		{
			name:  "vertical",
			cells: map[[2]int]CellState{{6, 0}: Player1, {6, 1}: Player1, {6, 2}: Player1, {6, 3}: Player1},
			col:   6, row: 3, win: true,
		},
		{
			name:  "rising diagonal",
			cells: map[[2]int]CellState{{0, 0}: Player1, {1, 1}: Player1, {2, 2}: Player1, {3, 3}: Player1},
			col:   3, row: 3, win: true,
		},
		{
			name:  "falling diagonal",
			cells: map[[2]int]CellState{{3, 5}: Player1, {4, 4}: Player1, {5, 3}: Player1, {6, 2}: Player1},
			col:   4, row: 4, win: true,
		},
		{
			name:  "three only",
			cells: map[[2]int]CellState{{0, 0}: Player1, {1, 0}: Player1, {2, 0}: Player1},
			col:   2, row: 0, win: false,
		},
		{
			name:  "broken by opponent",
			cells: map[[2]int]CellState{{0, 0}: Player1, {1, 0}: Player1, {2, 0}: Player2, {3, 0}: Player1, {4, 0}: Player1},
			col:   4, row: 0, win: false,
		},
		{
			name:  "five in a row",
			cells: map[[2]int]CellState{{0, 0}: Player1, {1, 0}: Player1, {2, 0}: Player1, {3, 0}: Player1, {4, 0}: Player1},
			col:   0, row: 0, win: true,
		},
		{
			name:  "line at the edge",
			cells: map[[2]int]CellState{{3, 5}: Player1, {4, 5}: Player1, {5, 5}: Player1, {6, 5}: Player1},
			col:   6, row: 5, win: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := gridWith(tc.cells)
			assert.Equal(t, tc.win, CheckWin(g, tc.col, tc.row, Player1))
			assert.False(t, CheckWin(g, tc.col, tc.row, Player2))
			assert.Equal(t, tc.win, HasAnyWin(g, Player1))
		})
	}
}

func TestCheckWinMixedDiagonal(t *testing.T) {
	g := gridWith(map[[2]int]CellState{
		{0, 0}: Player1,
		{1, 1}: Player1,
		{2, 2}: Player1,
		{3, 3}: Player2,
	})
	assert.False(t, CheckWin(g, 3, 3, Player1))
	assert.False(t, CheckWin(g, 3, 3, Player2))
	assert.False(t, HasAnyWin(g, Player1))
	assert.False(t, HasAnyWin(g, Player2))
}

func TestCheckWinIgnoresNonPlayers(t *testing.T) {
	g := NewGrid(7, 6)
	assert.False(t, CheckWin(g, 0, 0, Empty))
	assert.False(t, HasAnyWin(g, Empty))
	assert.False(t, CheckWin(g, -1, -1, Player1))
}

// Every cell of a line must report the same win, whichever end the scan
// starts from.
func TestCheckWinSymmetric(t *testing.T) {
	for _, axis := range Axes {
		dc, dr := axis[0], axis[1]
		startRow := 0
		if dr < 0 {
			startRow = 3
		}
		g := NewGrid(7, 6)
		var line [][2]int
		for i := 0; i < ToWin; i++ {
			c, r := 1+dc*i, startRow+dr*i
			g.SetCell(c, r, Player2)
			line = append(line, [2]int{c, r})
		}
		for _, cell := range line {
			assert.True(t, CheckWin(g, cell[0], cell[1], Player2), "axis %v cell %v", axis, cell)

			forward := LineLength(g, cell[0], cell[1], dc, dr, Player2)
			backward := LineLength(g, cell[0], cell[1], -dc, -dr, Player2)
			assert.Equal(t, forward, backward)
			assert.Equal(t, ToWin, forward)
		}
	}
}

func TestCountInDirectionStopsAtEdge(t *testing.T) {
	g := NewGrid(7, 6)
	for col := 0; col < 7; col++ {
		g.SetCell(col, 0, Player1)
	}
	assert.Equal(t, 6, CountInDirection(g, 0, 0, 1, 0, Player1))
	assert.Equal(t, 0, CountInDirection(g, 0, 0, -1, 0, Player1))
	assert.Equal(t, 7, LineLength(g, 3, 0, 1, 0, Player1))
}
