package domain

import (
	"fmt"
	"strings"
)

// GameMode selects how drop requests are dispatched before they reach
// the move engine.
type GameMode int

const (
	ModeLocal GameMode = iota
	ModeVsAI
	ModeNetworked
)

func (m GameMode) String() string {
	switch m {
	case ModeLocal:
		return "local"
	case ModeVsAI:
		return "vs_ai"
	case ModeNetworked:
		return "networked"
	}
	return fmt.Sprintf("GameMode(%d)", int(m))
}

func ParseGameMode(s string) (GameMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local":
		return ModeLocal, nil
	case "vs_ai", "ai", "vsai":
		return ModeVsAI, nil
	case "networked", "multiplayer":
		return ModeNetworked, nil
	}
	return ModeLocal, fmt.Errorf("unknown game mode %q", s)
}
