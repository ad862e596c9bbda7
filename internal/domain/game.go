package domain

import "fmt"

// Game is the move engine. It owns the grid and the game status and is
// the only component that commits real moves. It is not safe for
// concurrent use; callers serialise access.
type Game struct {
	grid      *Grid
	turns     TurnKeeper
	status    GameStatus
	winner    CellState
	moveCount int
	lastMove  Move
	hasMove   bool
	pending   bool
}

func NewGame(grid *Grid, turns TurnKeeper) *Game {
	if grid == nil {
		grid = NewGrid(DefaultColumns, DefaultRows)
	}
	if turns == nil {
		turns = NewTurnState()
	}
	return &Game{
		grid:   grid,
		turns:  turns,
		status: StatusInProgress,
		winner: Empty,
	}
}

// TryDrop drops a piece for player into column. A rejected drop returns
// one of the domain errors and leaves every piece of state untouched.
// An accepted drop stays pending until CompleteDrop is called; the
// status is resolved immediately.
func (g *Game) TryDrop(column int, player CellState) (DropResult, error) {
	if g.status.IsTerminal() {
		return DropResult{}, ErrGameOver
	}
	if g.pending {
		return DropResult{}, ErrDropPending
	}
	if !player.IsPlayer() {
		return DropResult{}, ErrInvalidPlayer
	}
	if player != g.turns.CurrentPlayer() {
		return DropResult{}, ErrNotYourTurn
	}
	if column < 0 || column >= g.grid.Columns() {
		return DropResult{}, ErrInvalidColumn
	}
	if !g.grid.HasRoom(column) {
		return DropResult{}, ErrColumnFull
	}

	row := g.grid.ColumnHeight(column)
	if g.grid.Cell(column, row) != Empty {
		panic(fmt.Sprintf("domain: cell (%d,%d) is occupied above column height %d", column, row, row))
	}

	g.grid.SetCell(column, row, player)
	g.moveCount++
	g.lastMove = Move{Column: column, Row: row, Player: player}
	g.hasMove = true
	g.pending = true

	win := CheckWin(g.grid, column, row, player)
	switch {
	case win:
		g.status = winStatus(player)
		g.winner = player
	case g.grid.IsFull():
		g.status = StatusDraw
	}

	return DropResult{
		Column: column,
		Row:    row,
		Player: player,
		Win:    win,
		Status: g.status,
	}, nil
}

// CompleteDrop marks the pending drop as presented. The turn only
// advances when the game goes on.
func (g *Game) CompleteDrop() {
	if !g.pending {
		return
	}
	g.pending = false
	if g.status == StatusInProgress {
		g.turns.AdvanceTurn()
	}
}

// MakeMove drops and completes in one step, for callers with no
// presentation to wait for.
func (g *Game) MakeMove(player CellState, column int) (DropResult, error) {
	res, err := g.TryDrop(column, player)
	if err != nil {
		return res, err
	}
	g.CompleteDrop()
	return res, nil
}

// Reset clears the grid and returns status and turn to their initial
// values.
func (g *Game) Reset() {
	g.grid.Reset()
	g.status = StatusInProgress
	g.winner = Empty
	g.moveCount = 0
	g.lastMove = Move{}
	g.hasMove = false
	g.pending = false
	g.turns.ResetTurn()
}

func (g *Game) Grid() *Grid { return g.grid }
func (g *Game) Turns() TurnKeeper { return g.turns }
func (g *Game) Status() GameStatus { return g.status }
func (g *Game) Winner() CellState { return g.winner }
func (g *Game) MoveCount() int { return g.moveCount }
func (g *Game) Pending() bool { return g.pending }
func (g *Game) IsFinished() bool { return g.status.IsTerminal() }
func (g *Game) LastMove() (Move, bool) { return g.lastMove, g.hasMove }
