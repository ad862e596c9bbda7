package main

import (
	"context"
	"flag"
	"os"

	"github.com/BorislavSto/Connect4Better/cmd/internal/play"
	"github.com/BorislavSto/Connect4Better/cmd/internal/selfplay"
	"github.com/BorislavSto/Connect4Better/internal/config"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found")
	}

	cfg := config.LoadConfig()
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Invalid LOG_LEVEL %q, using info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&play.Command{Config: cfg}, "")
	subcommands.Register(&selfplay.Command{Config: cfg}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
