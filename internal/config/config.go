package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BorislavSto/Connect4Better/internal/domain"
	"github.com/BorislavSto/Connect4Better/internal/service/bot"
	log "github.com/sirupsen/logrus"
)

// Config is fixed when a session starts; nothing reloads it mid-game.
type Config struct {
	Columns          int
	Rows             int
	SearchDepth      int
	Difficulty       string
	AIDelay          time.Duration
	ReshufflePerNode bool
	Seed             int64
	Mode             string
	LogLevel         string
}

func LoadConfig() *Config {
	return &Config{
		Columns:          GetEnvAsInt("BOARD_COLUMNS", domain.DefaultColumns),
		Rows:             GetEnvAsInt("BOARD_ROWS", domain.DefaultRows),
		SearchDepth:      GetEnvAsInt("AI_DEPTH", bot.DEFAULT_DEPTH),
		Difficulty:       strings.ToLower(GetEnv("AI_DIFFICULTY", bot.DifficultyHard)),
		AIDelay:          time.Duration(GetEnvAsInt("AI_DELAY_MS", 1000)) * time.Millisecond,
		ReshufflePerNode: GetEnvAsBool("AI_RESHUFFLE_PER_NODE", true),
		Seed:             GetEnvAsInt64("AI_SEED", 0),
		Mode:             GetEnv("GAME_MODE", domain.ModeVsAI.String()),
		LogLevel:         GetEnv("LOG_LEVEL", "info"),
	}
}

// Validate rejects values no session can be started with.
func (c *Config) Validate() error {
	if c.Columns <= 0 || c.Rows <= 0 {
		return fmt.Errorf("board dimensions must be positive, got %dx%d", c.Columns, c.Rows)
	}
	if c.Columns < domain.ToWin && c.Rows < domain.ToWin {
		return fmt.Errorf("board %dx%d cannot hold a line of %d", c.Columns, c.Rows, domain.ToWin)
	}
	if c.SearchDepth < 0 || c.SearchDepth > bot.MAX_DEPTH {
		return fmt.Errorf("search depth %d out of range [0, %d]", c.SearchDepth, bot.MAX_DEPTH)
	}
	if !bot.IsDifficulty(c.Difficulty) {
		return fmt.Errorf("unknown difficulty %q", c.Difficulty)
	}
	if c.AIDelay < 0 {
		return fmt.Errorf("negative ai delay %s", c.AIDelay)
	}
	if _, err := domain.ParseGameMode(c.Mode); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// SearchConfig is the bot configuration derived from c.
func (c *Config) SearchConfig() bot.SearchConfig {
	return bot.SearchConfig{
		Depth:            c.SearchDepth,
		Seed:             c.Seed,
		ReshufflePerNode: c.ReshufflePerNode,
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warnf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Warnf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warnf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
