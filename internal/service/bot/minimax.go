package bot

import (
	"math"
	"math/rand"

	"github.com/BorislavSto/Connect4Better/internal/domain"
	log "github.com/sirupsen/logrus"
)

const (
	DEFAULT_DEPTH = 3
	MAX_DEPTH     = 10
	MINIMAX_WIN   = 1000
	MINIMAX_LOSS  = -1000
)

type SearchConfig struct {
	// Plies searched below each candidate root move.
	Depth int
	// Seed for move ordering; 0 seeds from the clock.
	Seed int64
	// ReshufflePerNode draws a fresh ordering at every node. When false
	// one ordering is drawn per search and reused everywhere below the
	// root.
	ReshufflePerNode bool
}

type Result struct {
	Column int
	Score  int
	Nodes  int
}

// Searcher is a depth-limited minimax with alpha-beta pruning. It plays
// hypothetical moves directly on the caller's grid and takes each one
// back before returning. A Searcher is not safe for concurrent use.
type Searcher struct {
	cfg SearchConfig
	rng *rand.Rand

	grid     *domain.Grid
	ai       domain.CellState
	opponent domain.CellState
	order    []int
	nodes    int
}

func NewSearcher(cfg SearchConfig) *Searcher {
	if cfg.Depth < 0 {
		cfg.Depth = 0
	}
	return &Searcher{
		cfg: cfg,
		rng: newRand(cfg.Seed),
	}
}

func (s *Searcher) Depth() int {
	return s.cfg.Depth
}

// ChooseMove returns the best column for ai, or false when no column has
// room left.
func (s *Searcher) ChooseMove(grid *domain.Grid, ai, opponent domain.CellState) (int, bool) {
	res, ok := s.Search(grid, ai, opponent)
	return res.Column, ok
}

// Search scores every playable root column and keeps the highest. Ties
// go to the column evaluated first, so with shuffled ordering they are
// broken at random.
func (s *Searcher) Search(grid *domain.Grid, ai, opponent domain.CellState) (Result, bool) {
	s.grid, s.ai, s.opponent = grid, ai, opponent
	s.nodes = 0
	defer func() { s.grid = nil }()

	s.order = s.columnOrder()

	best := Result{Column: -1, Score: math.MinInt}
	alpha, beta := math.MinInt, math.MaxInt
	for _, col := range s.order {
		if !grid.HasRoom(col) {
			continue
		}

		score := s.try(col, ai, func() int {
			return s.minimax(s.cfg.Depth, false, alpha, beta)
		})

		if best.Column == -1 || score > best.Score {
			best.Column = col
			best.Score = score
		}
		alpha = max(alpha, best.Score)
	}
	best.Nodes = s.nodes

	if best.Column == -1 {
		return Result{Column: -1}, false
	}

	log.WithFields(log.Fields{
		"component": "bot",
		"column":    best.Column,
		"score":     best.Score,
		"nodes":     best.Nodes,
		"depth":     s.cfg.Depth,
	}).Debug("search complete")

	return best, true
}

func (s *Searcher) minimax(depth int, maximizing bool, alpha, beta int) int {
	s.nodes++

	if domain.HasAnyWin(s.grid, s.ai) {
		return MINIMAX_WIN
	}
	if domain.HasAnyWin(s.grid, s.opponent) {
		return MINIMAX_LOSS
	}
	if depth <= 0 || s.grid.IsFull() {
		return Evaluate(s.grid, s.ai, s.opponent)
	}

	if maximizing {
		maxEval := math.MinInt
		for _, col := range s.nodeOrder() {
			if !s.grid.HasRoom(col) {
				continue
			}
			eval := s.try(col, s.ai, func() int {
				return s.minimax(depth-1, false, alpha, beta)
			})
			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				break // beta cutoff
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	for _, col := range s.nodeOrder() {
		if !s.grid.HasRoom(col) {
			continue
		}
		eval := s.try(col, s.opponent, func() int {
			return s.minimax(depth-1, true, alpha, beta)
		})
		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			break // alpha cutoff
		}
	}
	return minEval
}

// try drops player into col, runs fn and takes the piece back on every
// way out of fn.
func (s *Searcher) try(col int, player domain.CellState, fn func() int) int {
	row := s.grid.ColumnHeight(col)
	s.grid.SetCell(col, row, player)
	defer s.grid.SetCell(col, row, domain.Empty)
	return fn()
}

func (s *Searcher) nodeOrder() []int {
	if s.cfg.ReshufflePerNode {
		return s.columnOrder()
	}
	return s.order
}

func (s *Searcher) columnOrder() []int {
	order := CenterOrder(s.grid.Columns())
	shuffleTail(order, s.rng)
	return order
}
