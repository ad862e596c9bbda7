package play

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BorislavSto/Connect4Better/internal/config"
	"github.com/BorislavSto/Connect4Better/internal/domain"
	"github.com/BorislavSto/Connect4Better/internal/service/bot"
	"github.com/BorislavSto/Connect4Better/internal/service/game"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

type Command struct {
	Config *config.Config

	In  io.Reader
	Out io.Writer

	aiFirst bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play a game in the terminal" }
func (*Command) Usage() string {
	return `play [flags]

Enter a column number to drop a piece, r to reset the board, q to quit.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.Config.Mode, "mode", c.Config.Mode, "game mode: local or vs_ai")
	flags.IntVar(&c.Config.Columns, "columns", c.Config.Columns, "board columns")
	flags.IntVar(&c.Config.Rows, "rows", c.Config.Rows, "board rows")
	flags.IntVar(&c.Config.SearchDepth, "depth", c.Config.SearchDepth, "minimax depth")
	flags.StringVar(&c.Config.Difficulty, "difficulty", c.Config.Difficulty, "bot difficulty: easy, medium or hard")
	flags.DurationVar(&c.Config.AIDelay, "delay", c.Config.AIDelay, "pause before the bot moves")
	flags.Int64Var(&c.Config.Seed, "seed", c.Config.Seed, "bot random seed (0 = clock)")
	flags.BoolVar(&c.Config.ReshufflePerNode, "reshuffle", c.Config.ReshufflePerNode, "reshuffle move order at every search node")
	flags.BoolVar(&c.aiFirst, "ai-first", false, "let the bot play Player1")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.Config.Validate(); err != nil {
		log.Errorf("play: %v", err)
		return subcommands.ExitUsageError
	}
	mode, _ := domain.ParseGameMode(c.Config.Mode)
	if mode == domain.ModeNetworked {
		log.Error("play: networked games need a transport; use local or vs_ai")
		return subcommands.ExitUsageError
	}
	if c.In == nil {
		c.In = os.Stdin
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
	return c.run(ctx, mode)
}

func (c *Command) run(ctx context.Context, mode domain.GameMode) subcommands.ExitStatus {
	aiPlayer := domain.Player2
	if c.aiFirst {
		aiPlayer = domain.Player1
	}

	events := make(chan game.Event, c.Config.Columns*c.Config.Rows*2+8)
	manager := game.NewManager()
	session := manager.Create(game.Options{
		Mode:     mode,
		Columns:  c.Config.Columns,
		Rows:     c.Config.Rows,
		AIPlayer: aiPlayer,
		Bot:      bot.NewPlayer(c.Config.Difficulty, c.Config.SearchConfig()),
		AIDelay:  c.Config.AIDelay,
		Notifier: game.NotifierFunc(func(ev game.Event) { events <- ev }),
	})
	defer manager.Remove(session.ID)

	in := bufio.NewScanner(c.In)
	for {
		// snapshot first: every drop it shows completed has already
		// been reported
		snap := session.Snapshot()
		c.drain(events)
		c.render(snap)

		switch {
		case snap.Status.IsTerminal():
			c.printResult(snap)
			fmt.Fprint(c.Out, "r to play again, q to quit: ")
		case mode == domain.ModeVsAI && snap.CurrentPlayer == aiPlayer:
			fmt.Fprintln(c.Out, "Bot is thinking...")
			if !waitForTurn(ctx, session, aiPlayer) {
				return subcommands.ExitFailure
			}
			continue
		default:
			fmt.Fprintf(c.Out, "%s to move, column 1-%d (r reset, q quit): ",
				glyph(snap.CurrentPlayer), snap.Grid.Columns())
		}

		if !in.Scan() {
			return subcommands.ExitSuccess
		}
		line := strings.TrimSpace(in.Text())
		switch line {
		case "q", "quit":
			return subcommands.ExitSuccess
		case "r", "reset":
			session.ResetBoard()
			continue
		}

		col, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(c.Out, "not a column: %q\n", line)
			continue
		}
		if err := session.RequestDrop(col - 1); err != nil {
			fmt.Fprintf(c.Out, "rejected: %v\n", err)
		}
	}
}

// waitForTurn blocks until the bot's drop has been completed or the game
// ended.
func waitForTurn(ctx context.Context, session *game.Session, aiPlayer domain.CellState) bool {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		snap := session.Snapshot()
		if snap.Status.IsTerminal() || (!snap.Pending && snap.CurrentPlayer != aiPlayer) {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
	}
}

func (c *Command) drain(events <-chan game.Event) {
	for {
		select {
		case ev := <-events:
			if ev.Type == game.EventMoveMade {
				fmt.Fprintf(c.Out, "%s dropped into column %d\n", glyph(ev.Player), ev.Column+1)
			}
		default:
			return
		}
	}
}

func (c *Command) render(snap game.Snapshot) {
	var header strings.Builder
	for col := 1; col <= snap.Grid.Columns(); col++ {
		header.WriteString(strconv.Itoa(col % 10))
	}
	fmt.Fprintf(c.Out, "\n%s\n%s", header.String(), snap.Grid.String())
}

func (c *Command) printResult(snap game.Snapshot) {
	switch snap.Status {
	case domain.StatusDraw:
		fmt.Fprintln(c.Out, "Game over: draw.")
	default:
		fmt.Fprintf(c.Out, "Game over: %s wins after %d moves.\n", glyph(snap.Winner), snap.MoveCount)
	}
}

func glyph(p domain.CellState) string {
	switch p {
	case domain.Player1:
		return "X"
	case domain.Player2:
		return "O"
	}
	return "."
}
