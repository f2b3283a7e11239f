package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-match3/internal/engine"
)

//go:embed defaults/match3.yaml
var defaultMatch3YAML []byte

// DefaultMatch3Config returns the built-in configuration. It matches the
// embedded defaults/match3.yaml and is used when that cannot be parsed.
func DefaultMatch3Config() Match3Config {
	return Match3Config{
		Board: BoardConfig{
			Width:  8,
			Height: 8,
			Kinds:  6,
			MinRun: engine.DefaultMinRun,
		},
		Scoring: ScoringConfig{
			Base: engine.DefaultScoreBase,
		},
		Presentation: PresentationConfig{
			StepTicks:     6,   // 100ms at 60fps
			HintIdleTicks: 300, // 5 seconds
			MessageTicks:  90,
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMatch3YAML
}
