package domain

// TurnKeeper is the turn collaborator the move engine reads and advances.
type TurnKeeper interface {
	CurrentPlayer() CellState
	AdvanceTurn()
	ResetTurn()
}

// TurnState is the plain two-player alternation.
type TurnState struct {
	current CellState
}

func NewTurnState() *TurnState {
	return &TurnState{current: Player1}
}

func (t *TurnState) CurrentPlayer() CellState {
	return t.current
}

func (t *TurnState) AdvanceTurn() {
	t.current = Opponent(t.current)
}

func (t *TurnState) ResetTurn() {
	t.current = Player1
}
