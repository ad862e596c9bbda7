package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(7, 6)
	assert.Equal(t, 7, g.Columns())
	assert.Equal(t, 6, g.Rows())
	for col := 0; col < 7; col++ {
		assert.Equal(t, 0, g.ColumnHeight(col))
		for row := 0; row < 6; row++ {
			assert.Equal(t, Empty, g.Cell(col, row))
		}
	}
	assert.False(t, g.IsFull())
}

func TestInitializeIsIdempotent(t *testing.T) {
	g := NewGrid(7, 6)
	g.SetCell(3, 0, Player1)
	g.SetCell(3, 1, Player2)

	g.Initialize(7, 6)
	g.Initialize(7, 6)
	assert.True(t, g.Equal(NewGrid(7, 6)))
	assert.Equal(t, 0, g.ColumnHeight(3))
}

func TestInitializeDefaultsBadDimensions(t *testing.T) {
	g := NewGrid(0, -1)
	assert.Equal(t, DefaultColumns, g.Columns())
	assert.Equal(t, DefaultRows, g.Rows())
}

func TestCellOutOfRangeIsEmpty(t *testing.T) {
	g := NewGrid(7, 6)
	for col := 0; col < 7; col++ {
		for row := 0; row < 6; row++ {
			g.SetCell(col, row, Player1)
		}
	}

	probes := [][2]int{{-1, 0}, {0, -1}, {7, 0}, {0, 6}, {-5, -5}, {100, 100}}
	for _, p := range probes {
		assert.Equal(t, Empty, g.Cell(p[0], p[1]), "probe %v", p)
	}
}

func TestSetCellOutOfRangeIsIgnored(t *testing.T) {
	g := NewGrid(7, 6)
	g.SetCell(-1, 0, Player1)
	g.SetCell(7, 0, Player1)
	g.SetCell(0, 6, Player1)
	assert.True(t, g.Equal(NewGrid(7, 6)))
}

func TestColumnHeightFollowsSetCell(t *testing.T) {
	g := NewGrid(7, 6)
	g.SetCell(2, 0, Player1)
	g.SetCell(2, 1, Player2)
	assert.Equal(t, 2, g.ColumnHeight(2))
	assert.True(t, g.HasRoom(2))

	g.SetCell(2, 1, Empty)
	assert.Equal(t, 1, g.ColumnHeight(2))

	assert.Equal(t, 0, g.ColumnHeight(-1))
	assert.Equal(t, 0, g.ColumnHeight(7))
	assert.False(t, g.HasRoom(-1))
	assert.False(t, g.HasRoom(7))
}

func TestIsFullAndValidColumns(t *testing.T) {
	g := NewGrid(3, 2)
	for col := 0; col < 3; col++ {
		for row := 0; row < 2; row++ {
			require.False(t, g.IsFull())
			g.SetCell(col, row, Player1)
		}
	}
	assert.True(t, g.IsFull())
	assert.Empty(t, g.ValidColumns())

	g.SetCell(1, 1, Empty)
	assert.False(t, g.IsFull())
	assert.Equal(t, []int{1}, g.ValidColumns())
}

func TestResetKeepsDimensions(t *testing.T) {
	g := NewGrid(5, 4)
	g.SetCell(0, 0, Player2)
	g.Reset()
	assert.Equal(t, 5, g.Columns())
	assert.Equal(t, 4, g.Rows())
	assert.True(t, g.Equal(NewGrid(5, 4)))
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(7, 6)
	g.SetCell(3, 0, Player1)

	c := g.Clone()
	require.True(t, g.Equal(c))

	c.SetCell(3, 1, Player2)
	assert.False(t, g.Equal(c))
	assert.Equal(t, 1, g.ColumnHeight(3))
	assert.Equal(t, 2, c.ColumnHeight(3))
}

func TestString(t *testing.T) {
	g := NewGrid(4, 2)
	g.SetCell(0, 0, Player1)
	g.SetCell(1, 0, Player2)
	g.SetCell(1, 1, Player1)
	assert.Equal(t, ".X..\nXO..\n", g.String())
}
