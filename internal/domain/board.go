package domain

import "strings"

// Grid is the board: columns of cells, row 0 at the bottom.
// Reads outside the board return Empty so directional scans can probe
// past the edges.
type Grid struct {
	columns int
	rows    int
	cells   [][]CellState
	heights []int
}

func NewGrid(columns, rows int) *Grid {
	g := &Grid{}
	g.Initialize(columns, rows)
	return g
}

// Initialize allocates an empty columns x rows grid. Calling it again
// always yields a fully empty grid.
func (g *Grid) Initialize(columns, rows int) {
	if columns <= 0 {
		columns = DefaultColumns
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	g.columns = columns
	g.rows = rows
	g.cells = make([][]CellState, columns)
	for c := range g.cells {
		g.cells[c] = make([]CellState, rows)
	}
	g.heights = make([]int, columns)
}

// Reset empties every cell, keeping the dimensions.
func (g *Grid) Reset() {
	for c := range g.cells {
		clear(g.cells[c])
		g.heights[c] = 0
	}
}

func (g *Grid) Columns() int { return g.columns }
func (g *Grid) Rows() int    { return g.rows }

func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.columns && row >= 0 && row < g.rows
}

// Cell returns the state at (col, row), or Empty when out of range.
func (g *Grid) Cell(col, row int) CellState {
	if !g.InBounds(col, row) {
		return Empty
	}
	return g.cells[col][row]
}

// ColumnHeight is the number of occupied cells in col.
func (g *Grid) ColumnHeight(col int) int {
	if col < 0 || col >= g.columns {
		return 0
	}
	return g.heights[col]
}

func (g *Grid) HasRoom(col int) bool {
	return col >= 0 && col < g.columns && g.heights[col] < g.rows
}

// SetCell writes a single cell. It performs no policy checks: the caller
// picks a valid, currently empty cell (or restores one it set itself).
// Writes outside the board are dropped.
func (g *Grid) SetCell(col, row int, state CellState) {
	if !g.InBounds(col, row) {
		return
	}
	g.cells[col][row] = state

	h := 0
	for h < g.rows && g.cells[col][h] != Empty {
		h++
	}
	g.heights[col] = h
}

func (g *Grid) IsFull() bool {
	for _, h := range g.heights {
		if h < g.rows {
			return false
		}
	}
	return true
}

// ValidColumns lists the columns that can still take a piece.
func (g *Grid) ValidColumns() []int {
	valid := []int{}
	for col := 0; col < g.columns; col++ {
		if g.HasRoom(col) {
			valid = append(valid, col)
		}
	}
	return valid
}

// this creates a deep copy of the grid
func (g *Grid) Clone() *Grid {
	out := &Grid{
		columns: g.columns,
		rows:    g.rows,
		cells:   g.Snapshot(),
		heights: make([]int, len(g.heights)),
	}
	copy(out.heights, g.heights)
	return out
}

// Snapshot copies the cells, indexed [col][row].
func (g *Grid) Snapshot() [][]CellState {
	out := make([][]CellState, len(g.cells))
	for c := range g.cells {
		out[c] = make([]CellState, len(g.cells[c]))
		copy(out[c], g.cells[c])
	}
	return out
}

func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.columns != other.columns || g.rows != other.rows {
		return false
	}
	for c := range g.cells {
		for r := range g.cells[c] {
			if g.cells[c][r] != other.cells[c][r] {
				return false
			}
		}
	}
	return true
}

// String renders the grid top row first: '.' empty, 'X' player1, 'O' player2.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := g.rows - 1; row >= 0; row-- {
		for col := 0; col < g.columns; col++ {
			switch g.cells[col][row] {
			case Player1:
				sb.WriteByte('X')
			case Player2:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
