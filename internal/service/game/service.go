package game

import (
	"errors"
	"sync"
	"time"

	"github.com/BorislavSto/Connect4Better/internal/domain"
	"github.com/BorislavSto/Connect4Better/internal/service/bot"
	"github.com/BorislavSto/Connect4Better/pkg/uid"
	log "github.com/sirupsen/logrus"
)

type Options struct {
	ID      string
	Mode    domain.GameMode
	Columns int
	Rows    int

	// VsAI: the side the bot plays (Player2 when unset) and how long to
	// wait before it moves.
	AIPlayer domain.CellState
	Bot      bot.Player
	AIDelay  time.Duration

	// Networked: whether this session commits drops, and which side its
	// local input plays.
	Authority   bool
	LocalPlayer domain.CellState

	Notifier  Notifier
	Animator  Animator
	Forwarder Forwarder
}

// Session is one game: the grid, the move engine, the turn state and the
// mode-specific dispatch in front of them. Every mutation happens under
// mu, so there is exactly one committing writer at a time even though
// bot moves and animation completions arrive on other goroutines.
type Session struct {
	ID   string
	Mode domain.GameMode

	mu         sync.Mutex
	game       *domain.Game
	turns      *domain.TurnState
	createdAt  time.Time
	finishedAt time.Time

	bot      bot.Player
	aiPlayer domain.CellState
	aiDelay  time.Duration
	aiTimer  *time.Timer

	authority   bool
	localPlayer domain.CellState

	notifier  Notifier
	animator  Animator
	forwarder Forwarder

	// dropSeq numbers committed drops and resets; completions and bot
	// timers carrying an older number are stale.
	dropSeq uint64
	closed  bool

	log *log.Entry
}

// Snapshot is a copy of the session state safe to read without the lock.
type Snapshot struct {
	ID            string
	Mode          domain.GameMode
	Grid          *domain.Grid
	Status        domain.GameStatus
	Winner        domain.CellState
	CurrentPlayer domain.CellState
	Pending       bool
	MoveCount     int
	LastMove      domain.Move
	HasMove       bool
}

func NewSession(opts Options) *Session {
	if opts.ID == "" {
		opts.ID = uid.GenerateGameID()
	}
	if !opts.AIPlayer.IsPlayer() {
		opts.AIPlayer = domain.Player2
	}
	if !opts.LocalPlayer.IsPlayer() {
		opts.LocalPlayer = domain.Player1
	}
	if opts.Mode == domain.ModeVsAI && opts.Bot == nil {
		opts.Bot = bot.NewPlayer(bot.DifficultyHard, bot.SearchConfig{
			Depth:            bot.DEFAULT_DEPTH,
			ReshufflePerNode: true,
		})
	}

	turns := domain.NewTurnState()
	return &Session{
		ID:          opts.ID,
		Mode:        opts.Mode,
		game:        domain.NewGame(domain.NewGrid(opts.Columns, opts.Rows), turns),
		turns:       turns,
		createdAt:   time.Now(),
		bot:         opts.Bot,
		aiPlayer:    opts.AIPlayer,
		aiDelay:     opts.AIDelay,
		authority:   opts.Authority,
		localPlayer: opts.LocalPlayer,
		notifier:    opts.Notifier,
		animator:    opts.Animator,
		forwarder:   opts.Forwarder,
		log: log.WithFields(log.Fields{
			"component": "session",
			"session":   opts.ID,
			"mode":      opts.Mode.String(),
		}),
	}
}

// Start announces the game and, when the bot has the first move,
// schedules it.
func (s *Session) Start() {
	s.mu.Lock()
	ev := s.eventLocked(EventGameStart)
	s.maybeScheduleAILocked()
	s.mu.Unlock()

	s.log.Info("game started")
	s.notify(ev)
}

// RequestDrop is the entry point for input: a drop in column for whoever
// the local side is under the session's mode. Rejections are returned as
// domain errors and change nothing; ErrDropPending means try again once
// the current drop has been presented.
func (s *Session) RequestDrop(column int) error {
	if s.Mode == domain.ModeNetworked && !s.authority {
		if s.forwarder == nil {
			return domain.ErrNoAuthority
		}
		return s.forwarder.ForwardDrop(column)
	}

	s.mu.Lock()
	player, err := s.requesterLocked()
	if err != nil {
		s.mu.Unlock()
		s.logRejected(column, err)
		return err
	}
	ev, seq, err := s.commitLocked(column, player)
	s.mu.Unlock()
	if err != nil {
		s.logRejected(column, err)
		return err
	}

	s.dispatch(ev, seq)
	return nil
}

// SubmitDrop applies a drop request forwarded by a remote party. Only the
// authority of a networked session accepts it.
func (s *Session) SubmitDrop(player domain.CellState, column int) error {
	if s.Mode != domain.ModeNetworked || !s.authority {
		return domain.ErrNoAuthority
	}

	s.mu.Lock()
	ev, seq, err := s.commitLocked(column, player)
	s.mu.Unlock()
	if err != nil {
		s.logRejected(column, err)
		return err
	}

	s.dispatch(ev, seq)
	return nil
}

// ResetBoard clears the grid and starts over with Player1 to move.
// Presentations and bot moves still in flight are discarded.
func (s *Session) ResetBoard() {
	s.mu.Lock()
	s.stopAITimerLocked()
	s.game.Reset()
	s.dropSeq++
	s.createdAt = time.Now()
	s.finishedAt = time.Time{}
	ev := s.eventLocked(EventBoardReset)
	s.maybeScheduleAILocked()
	s.mu.Unlock()

	s.log.Info("board reset")
	s.notify(ev)
}

// Close stops any scheduled bot move. Later completions are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.stopAITimerLocked()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, hasMove := s.game.LastMove()
	return Snapshot{
		ID:            s.ID,
		Mode:          s.Mode,
		Grid:          s.game.Grid().Clone(),
		Status:        s.game.Status(),
		Winner:        s.game.Winner(),
		CurrentPlayer: s.turns.CurrentPlayer(),
		Pending:       s.game.Pending(),
		MoveCount:     s.game.MoveCount(),
		LastMove:      last,
		HasMove:       hasMove,
	}
}

func (s *Session) IsFinished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.IsFinished()
}

func (s *Session) CreatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createdAt
}

func (s *Session) FinishedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finishedAt
}

// expired reports whether a sweep at now may drop the session. A drop
// still waiting for its presentation keeps the session alive so its
// game_over can be sent.
func (s *Session) expired(now time.Time, finishedTTL, staleTTL time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.game.Pending() {
		return false
	}
	if s.game.IsFinished() {
		return now.Sub(s.finishedAt) > finishedTTL
	}
	return now.Sub(s.createdAt) > staleTTL
}

// requesterLocked resolves whose piece a local drop request places.
func (s *Session) requesterLocked() (domain.CellState, error) {
	if s.game.IsFinished() {
		return domain.Empty, domain.ErrGameOver
	}
	current := s.turns.CurrentPlayer()
	switch s.Mode {
	case domain.ModeVsAI:
		if current == s.aiPlayer {
			return domain.Empty, domain.ErrNotYourTurn
		}
	case domain.ModeNetworked:
		return s.localPlayer, nil
	}
	return current, nil
}

func (s *Session) commitLocked(column int, player domain.CellState) (Event, uint64, error) {
	res, err := s.game.TryDrop(column, player)
	if err != nil {
		return Event{}, 0, err
	}
	s.dropSeq++
	if res.Status.IsTerminal() {
		s.finishedAt = time.Now()
	}

	ev := s.eventLocked(EventMoveMade)
	ev.Column = res.Column
	ev.Row = res.Row
	ev.Player = res.Player
	if res.Status.IsTerminal() {
		ev.NextTurn = domain.Empty
	} else {
		ev.NextTurn = domain.Opponent(res.Player)
	}

	s.log.WithFields(log.Fields{
		"column": res.Column,
		"row":    res.Row,
		"player": res.Player.String(),
		"status": string(res.Status),
	}).Debug("drop committed")

	return ev, s.dropSeq, nil
}

// dispatch reports a committed drop and hands it to the animator. The
// drop completes when the animator calls back, or right away without one.
func (s *Session) dispatch(ev Event, seq uint64) {
	s.notify(ev)

	done := func() { s.completeDrop(seq) }
	if s.animator == nil {
		done()
		return
	}
	s.animator.AnimateDrop(ev, done)
}

func (s *Session) completeDrop(seq uint64) {
	s.mu.Lock()
	if s.closed || seq != s.dropSeq || !s.game.Pending() {
		s.mu.Unlock()
		return
	}

	s.game.CompleteDrop()

	var over *Event
	moves := s.game.MoveCount()
	if s.game.IsFinished() {
		ev := s.eventLocked(EventGameOver)
		ev.Winner = s.game.Winner()
		ev.Reason = ReasonConnectFour
		if s.game.Status() == domain.StatusDraw {
			ev.Reason = ReasonDraw
		}
		over = &ev
	} else {
		s.maybeScheduleAILocked()
	}
	s.mu.Unlock()

	if over != nil {
		s.log.WithFields(log.Fields{
			"status": string(over.Status),
			"winner": over.Winner.String(),
			"moves":  moves,
		}).Info("game over")
		s.notify(*over)
	}
}

func (s *Session) maybeScheduleAILocked() {
	if s.Mode != domain.ModeVsAI || s.closed || s.game.IsFinished() {
		return
	}
	if s.turns.CurrentPlayer() != s.aiPlayer {
		return
	}

	seq := s.dropSeq
	s.stopAITimerLocked()
	s.aiTimer = time.AfterFunc(s.aiDelay, func() {
		s.playAI(seq)
	})
}

func (s *Session) playAI(seq uint64) {
	s.mu.Lock()
	if s.closed || seq != s.dropSeq || s.game.IsFinished() || s.game.Pending() ||
		s.turns.CurrentPlayer() != s.aiPlayer {
		s.mu.Unlock()
		return
	}

	column, ok := s.bot.ChooseMove(s.game.Grid(), s.aiPlayer, domain.Opponent(s.aiPlayer))
	if !ok {
		s.mu.Unlock()
		s.log.Warn("bot found no legal move")
		return
	}

	ev, next, err := s.commitLocked(column, s.aiPlayer)
	s.mu.Unlock()
	if err != nil {
		s.log.WithError(err).WithField("column", column).Error("bot move rejected")
		return
	}

	s.dispatch(ev, next)
}

func (s *Session) stopAITimerLocked() {
	if s.aiTimer != nil {
		s.aiTimer.Stop()
		s.aiTimer = nil
	}
}

func (s *Session) eventLocked(kind string) Event {
	return Event{
		Type:      kind,
		SessionID: s.ID,
		Seq:       s.dropSeq,
		Status:    s.game.Status(),
		NextTurn:  s.turns.CurrentPlayer(),
		Board:     s.game.Grid().Snapshot(),
	}
}

func (s *Session) notify(ev Event) {
	if s.notifier != nil {
		s.notifier.Notify(ev)
	}
}

// logRejected keeps ordinary rejections quiet; they are expected and
// the caller may simply retry.
func (s *Session) logRejected(column int, err error) {
	entry := s.log.WithError(err).WithField("column", column)
	var domainErr domain.Error
	if errors.As(err, &domainErr) {
		entry.Debug("drop rejected")
		return
	}
	entry.Warn("drop rejected")
}
