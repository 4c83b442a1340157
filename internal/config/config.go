package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// GameConfig holds deployment knobs for the scorer. Scoring rules are fixed
// by the ruleset and deliberately absent here.
type GameConfig struct {
	// MaxGameNameLength bounds the optional name attached to a saved game.
	MaxGameNameLength int `json:"max_game_name_length"`

	// Storage locations for the saved-game collection and the active session.
	HistoryCollection string `json:"history_collection"`
	HistoryKey        string `json:"history_key"`
	SessionCollection string `json:"session_collection"`
	SessionKey        string `json:"session_key"`

	// Share-token signing. The secret comes from the runtime environment,
	// never from this file.
	ShareIssuer          string `json:"share_issuer"`
	ShareTokenTTLSeconds int    `json:"share_token_ttl_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

func defaults() *GameConfig {
	return &GameConfig{
		MaxGameNameLength:    40,
		HistoryCollection:    "ouiste",
		HistoryKey:           "saved_games_v1",
		SessionCollection:    "ouiste",
		SessionKey:           "active_session_v1",
		ShareIssuer:          "ouiste",
		ShareTokenTTLSeconds: 30 * 24 * 60 * 60,
	}
}

// LoadGameConfig loads the game configuration from the given path. Missing
// fields keep their defaults.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		c := defaults()
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			cfg = c
			return
		}
		if err := json.Unmarshal(data, c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			cfg = defaults()
			return
		}
		cfg = c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, defaulted when no file
// was ever loaded.
func GetGameConfig() *GameConfig {
	if cfg == nil {
		return defaults()
	}
	return cfg
}
