package selfplay

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"text/tabwriter"
	"time"

	"github.com/BorislavSto/Connect4Better/internal/config"
	"github.com/BorislavSto/Connect4Better/internal/domain"
	"github.com/BorislavSto/Connect4Better/internal/service/bot"
	"github.com/BorislavSto/Connect4Better/internal/service/cleanup"
	"github.com/BorislavSto/Connect4Better/internal/service/game"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Command struct {
	Config *config.Config

	Out io.Writer

	games   int
	threads int
	p1      string
	p2      string
	swap    bool
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two bots against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.games, "games", 10, "number of games to play")
	flags.IntVar(&c.threads, "threads", 4, "number of games played in parallel")
	flags.StringVar(&c.p1, "p1", bot.DifficultyHard, "difficulty of the first bot")
	flags.StringVar(&c.p2, "p2", bot.DifficultyMedium, "difficulty of the second bot")
	flags.BoolVar(&c.swap, "swap", true, "swap sides every other game")
	flags.Int64Var(&c.Config.Seed, "seed", c.Config.Seed, "starting random seed (0 = clock)")
	flags.IntVar(&c.Config.SearchDepth, "depth", c.Config.SearchDepth, "minimax depth")
	flags.IntVar(&c.Config.Columns, "columns", c.Config.Columns, "board columns")
	flags.IntVar(&c.Config.Rows, "rows", c.Config.Rows, "board rows")
	flags.BoolVar(&c.Config.ReshufflePerNode, "reshuffle", c.Config.ReshufflePerNode, "reshuffle move order at every search node")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.Config.Validate(); err != nil {
		log.Errorf("selfplay: %v", err)
		return subcommands.ExitUsageError
	}
	if !bot.IsDifficulty(c.p1) || !bot.IsDifficulty(c.p2) {
		log.Errorf("selfplay: unknown difficulty p1=%q p2=%q", c.p1, c.p2)
		return subcommands.ExitUsageError
	}
	if c.Config.Seed == 0 {
		c.Config.Seed = time.Now().Unix()
	}
	if c.Out == nil {
		c.Out = os.Stderr
	}

	st, err := c.Simulate(ctx)
	if err != nil {
		log.WithError(err).Error("selfplay failed")
		return subcommands.ExitFailure
	}

	log.Infof("done games=%d seed=%d draws=%d moves=%d",
		st.Games, c.Config.Seed, st.Draws, st.Moves)
	c.report(&st)
	return subcommands.ExitSuccess
}

type Stats struct {
	Players [2]struct {
		Wins       int
		FirstWins  int
		SecondWins int
	}
	Draws int
	Games int
	Moves int
}

type result struct {
	status domain.GameStatus
	// swapped is true when the -p1 bot played Player2.
	swapped bool
	moves   int
}

func (s *Stats) record(r result) {
	s.Games++
	s.Moves += r.moves

	var winner int
	switch r.status {
	case domain.StatusPlayer1Wins:
		winner = 0
	case domain.StatusPlayer2Wins:
		winner = 1
	default:
		s.Draws++
		return
	}
	first := winner == 0
	if r.swapped {
		winner = 1 - winner
	}
	s.Players[winner].Wins++
	if first {
		s.Players[winner].FirstWins++
	} else {
		s.Players[winner].SecondWins++
	}
}

const prime = 1099511628211

// Simulate plays the configured number of games, c.threads at a time.
func (c *Command) Simulate(ctx context.Context) (Stats, error) {
	var (
		st   Stats
		mu   sync.Mutex
		todo = int64(c.games)
	)
	manager := game.NewManager()

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go cleanup.NewWorker(manager).Run(sweepCtx)

	grp, ctx := errgroup.WithContext(ctx)
	for i := 0; i < max(c.threads, 1); i++ {
		i := i
		grp.Go(func() error {
			rng := rand.New(rand.NewSource(prime*c.Config.Seed + int64(i)))
			for {
				gid := atomic.AddInt64(&todo, -1)
				if gid < 0 {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				r, err := c.playGame(manager, rng, gid)
				if err != nil {
					return err
				}
				mu.Lock()
				st.record(r)
				mu.Unlock()
			}
		})
	}
	if err := grp.Wait(); err != nil {
		return st, err
	}
	return st, nil
}

func (c *Command) playGame(manager *game.Manager, rng *rand.Rand, gid int64) (result, error) {
	swapped := c.swap && gid%2 == 1
	first, second := c.p1, c.p2
	if swapped {
		first, second = second, first
	}

	cfg := c.Config.SearchConfig()
	players := map[domain.CellState]bot.Player{}
	cfg.Seed = rng.Int63()
	players[domain.Player1] = bot.NewPlayer(first, cfg)
	cfg.Seed = rng.Int63()
	players[domain.Player2] = bot.NewPlayer(second, cfg)

	session := manager.Create(game.Options{
		Mode:    domain.ModeLocal,
		Columns: c.Config.Columns,
		Rows:    c.Config.Rows,
	})
	defer manager.Remove(session.ID)

	for {
		snap := session.Snapshot()
		if snap.Status.IsTerminal() {
			log.WithFields(log.Fields{
				"game":   gid,
				"status": string(snap.Status),
				"moves":  snap.MoveCount,
			}).Debug("game finished")
			return result{status: snap.Status, swapped: swapped, moves: snap.MoveCount}, nil
		}

		mover := snap.CurrentPlayer
		col, ok := players[mover].ChooseMove(snap.Grid, mover, domain.Opponent(mover))
		if !ok {
			return result{}, fmt.Errorf("game %d: no legal move for %s on a live board", gid, mover)
		}
		if err := session.RequestDrop(col); err != nil {
			return result{}, fmt.Errorf("game %d: drop in column %d: %w", gid, col, err)
		}
	}
}

func (c *Command) report(st *Stats) {
	tw := tabwriter.NewWriter(c.Out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\tfirst\tsecond\tsum\n")
	fmt.Fprintf(tw, "p1 (%s)\t%d\t%d\t%d\n", c.p1, st.Players[0].FirstWins, st.Players[0].SecondWins, st.Players[0].Wins)
	fmt.Fprintf(tw, "p2 (%s)\t%d\t%d\t%d\n", c.p2, st.Players[1].FirstWins, st.Players[1].SecondWins, st.Players[1].Wins)
	fmt.Fprintf(tw, "draws\t\t\t%d\n", st.Draws)
	tw.Flush()
}
