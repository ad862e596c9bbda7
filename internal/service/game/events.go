package game

import "github.com/BorislavSto/Connect4Better/internal/domain"

const (
	EventGameStart  = "game_start"
	EventMoveMade   = "move_made"
	EventGameOver   = "game_over"
	EventBoardReset = "board_reset"

	ReasonConnectFour = "connect_four"
	ReasonDraw        = "draw"
)

// Event is what the session reports to its collaborators: animation
// places a piece on move_made, presentation shows the result on
// game_over, networking replicates moves.
//
// Seq is the session's drop sequence when the event was built. Events
// are delivered outside the session lock, so a consumer that has seen a
// board_reset should ignore any event with a lower Seq.
type Event struct {
	Type      string
	SessionID string
	Seq       uint64
	Column    int
	Row       int
	Player    domain.CellState
	Status    domain.GameStatus
	NextTurn  domain.CellState
	Winner    domain.CellState
	Reason    string
	Board     [][]domain.CellState
}

type Notifier interface {
	Notify(ev Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ev Event)

func (f NotifierFunc) Notify(ev Event) { f(ev) }

// Animator presents a drop and calls done once the presentation is over.
// The session keeps the drop pending, and rejects new drops, until then.
type Animator interface {
	AnimateDrop(ev Event, done func())
}

// Forwarder hands a drop request to the committing authority when this
// session is not it.
type Forwarder interface {
	ForwardDrop(column int) error
}
