package domain

// CellState is the occupancy of a single grid cell.
type CellState int

const (
	Empty   CellState = 0
	Player1 CellState = 1
	Player2 CellState = 2
)

func (c CellState) String() string {
	switch c {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "empty"
	}
}

// IsPlayer reports whether c names one of the two players.
func (c CellState) IsPlayer() bool {
	return c == Player1 || c == Player2
}

// Opponent returns the other player. Empty maps to Empty.
func Opponent(p CellState) CellState {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

const (
	DefaultColumns = 7
	DefaultRows    = 6
	ToWin          = 4
)

// to represent the game status
type GameStatus string

const (
	StatusInProgress  GameStatus = "in_progress"
	StatusPlayer1Wins GameStatus = "player1_wins"
	StatusPlayer2Wins GameStatus = "player2_wins"
	StatusDraw        GameStatus = "draw"
)

func (s GameStatus) IsTerminal() bool {
	return s != StatusInProgress
}

func winStatus(p CellState) GameStatus {
	if p == Player1 {
		return StatusPlayer1Wins
	}
	return StatusPlayer2Wins
}

// Move is the record of a committed drop.
type Move struct {
	Column int
	Row    int
	Player CellState
}

// DropResult describes an accepted drop.
type DropResult struct {
	Column int
	Row    int
	Player CellState
	Win    bool
	Status GameStatus
}

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "column out of range"
	ErrColumnFull    Error = "column is full"
	ErrGameOver      Error = "game is already over"
	ErrDropPending   Error = "a drop is already in progress"
	ErrNotYourTurn   Error = "not your turn"
	ErrInvalidPlayer Error = "invalid player"
	ErrNoAuthority   Error = "no authority to forward the drop to"
)
