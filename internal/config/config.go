// Package config loads the match-3 game configuration from YAML and applies
// difficulty presets.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/engine"
)

// Match3Config contains all configuration for the match-3 game.
type Match3Config struct {
	Board        BoardConfig        `yaml:"board"`
	Scoring      ScoringConfig      `yaml:"scoring"`
	Presentation PresentationConfig `yaml:"presentation"`
	Difficulty   DifficultyPreset   `yaml:"difficulty"`
}

// BoardConfig defines the grid and the match rule.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Kinds  int `yaml:"kinds"`   // number of distinct tile kinds
	MinRun int `yaml:"min_run"` // shortest run that matches
}

// ScoringConfig defines the score formula base * L^2 * combo.
type ScoringConfig struct {
	Base int `yaml:"base"`
}

// PresentationConfig defines replay pacing and hint timing, in ticks.
type PresentationConfig struct {
	StepTicks     int `yaml:"step_ticks"`      // how long each replay frame stays on screen
	HintIdleTicks int `yaml:"hint_idle_ticks"` // idle time before a hint shows; 0 disables it
	MessageTicks  int `yaml:"message_ticks"`   // how long status messages stay
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. The empty string means
// "keep the config file's values".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// EngineConfig returns the engine rules described by the config.
func (c Match3Config) EngineConfig() engine.Config {
	return engine.Config{
		Width:     c.Board.Width,
		Height:    c.Board.Height,
		Kinds:     c.Board.Kinds,
		MinRun:    c.Board.MinRun,
		ScoreBase: c.Scoring.Base,
	}
}

// Validate reports a config that cannot run.
func (c Match3Config) Validate() error {
	if err := c.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Scoring.Base <= 0 {
		return fmt.Errorf("config: scoring base must be positive, got %d", c.Scoring.Base)
	}
	if c.Presentation.StepTicks < 1 {
		return fmt.Errorf("config: step_ticks must be at least 1, got %d", c.Presentation.StepTicks)
	}
	if c.Presentation.HintIdleTicks < 0 || c.Presentation.MessageTicks < 0 {
		return fmt.Errorf("config: tick counts cannot be negative")
	}
	return nil
}
