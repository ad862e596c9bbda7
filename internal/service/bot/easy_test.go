package bot

import (
	"testing"

	"github.com/BorislavSto/Connect4Better/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEasyTakesWinFirst(t *testing.T) {
	// both sides threaten; the bot should finish its own line
	g := gridWith(map[[2]int]domain.CellState{
		{0, 0}: domain.Player2, {0, 1}: domain.Player2, {0, 2}: domain.Player2,
		{6, 0}: domain.Player1, {6, 1}: domain.Player1, {6, 2}: domain.Player1,
	})
	before := g.Clone()

	col, ok := NewEasy(1).ChooseMove(g, domain.Player2, domain.Player1)
	require.True(t, ok)
	assert.Equal(t, 0, col)
	assert.True(t, before.Equal(g))
}

func TestEasyBlocks(t *testing.T) {
	g := gridWith(map[[2]int]domain.CellState{
		{6, 0}: domain.Player1, {6, 1}: domain.Player1, {6, 2}: domain.Player1,
		{0, 0}: domain.Player2,
	})

	for seed := int64(1); seed <= 10; seed++ {
		col, ok := NewEasy(seed).ChooseMove(g, domain.Player2, domain.Player1)
		require.True(t, ok)
		assert.Equal(t, 6, col)
	}
}

func TestEasyPlaysLegalColumns(t *testing.T) {
	g := domain.NewGrid(7, 6)
	for row := 0; row < 6; row++ {
		for _, col := range []int{0, 1, 5, 6} {
			g.SetCell(col, row, domain.CellState(1+(col+row/2)%2))
		}
	}
	e := NewEasy(3)
	for i := 0; i < 50; i++ {
		col, ok := e.ChooseMove(g, domain.Player1, domain.Player2)
		require.True(t, ok)
		assert.Contains(t, []int{2, 3, 4}, col)
	}
}

func TestEasyFullBoard(t *testing.T) {
	g := domain.NewGrid(4, 4)
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			g.SetCell(col, row, domain.Player2)
		}
	}
	col, ok := NewEasy(1).ChooseMove(g, domain.Player1, domain.Player2)
	assert.False(t, ok)
	assert.Equal(t, -1, col)
}
