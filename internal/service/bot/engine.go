package bot

import (
	"math/rand"
	"time"

	"github.com/BorislavSto/Connect4Better/internal/domain"
)

// Player picks a column for ai. Implementations may place pieces on the
// grid while thinking but must hand it back exactly as they found it.
type Player interface {
	ChooseMove(grid *domain.Grid, ai, opponent domain.CellState) (int, bool)
}

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// NewPlayer selects the bot for a difficulty. Unknown difficulties get
// the full-depth search.
func NewPlayer(difficulty string, cfg SearchConfig) Player {
	switch difficulty {
	case DifficultyEasy:
		return NewEasy(cfg.Seed)
	case DifficultyMedium:
		cfg.Depth = 1
		return NewSearcher(cfg)
	default:
		return NewSearcher(cfg)
	}
}

func IsDifficulty(s string) bool {
	switch s {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
