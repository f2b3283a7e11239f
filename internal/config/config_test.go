package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-match3/internal/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "match3.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Match3Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMatch3Config()) {
		t.Errorf("embedded defaults differ from DefaultMatch3Config():\n%+v\n%+v", cfg, DefaultMatch3Config())
	}
}

func TestLoadMatch3Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultMatch3Config()) {
		t.Errorf("LoadMatch3() = %+v, expected defaults", cfg)
	}
}

func TestLoadMatch3UserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "scoring:\n  base: 10\n"
	if err := os.WriteFile(filepath.Join(dir, "match3.yaml"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMatch3("")
	if err != nil {
		t.Fatalf("LoadMatch3() failed: %v", err)
	}
	if cfg.Scoring.Base != 10 {
		t.Errorf("scoring base = %d, expected 10 from the user file", cfg.Scoring.Base)
	}
}

func TestLoadMatch3CustomPath(t *testing.T) {
	path := writeConfig(t, `
board:
  width: 6
  kinds: 4
difficulty: fixed
`)

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3() failed: %v", err)
	}
	if cfg.Board.Width != 6 || cfg.Board.Kinds != 4 {
		t.Errorf("board = %+v, expected width 6 and 4 kinds", cfg.Board)
	}
	// Missing fields keep their defaults
	if cfg.Board.Height != 8 || cfg.Board.MinRun != 3 || cfg.Presentation.StepTicks != 6 {
		t.Errorf("defaults not kept for missing fields: %+v", cfg)
	}
}

func TestLoadMatch3FilePresetApplies(t *testing.T) {
	path := writeConfig(t, "board:\n  kinds: 4\ndifficulty: hard\n")

	cfg, err := LoadMatch3(path)
	if err != nil {
		t.Fatalf("LoadMatch3() failed: %v", err)
	}
	if cfg.Board.Kinds != 7 {
		t.Errorf("kinds = %d, expected the hard preset's 7", cfg.Board.Kinds)
	}
}

func TestLoadMatch3Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }},
		{"bad yaml", func(t *testing.T) string { return writeConfig(t, "board: [1, 2") }},
		{"invalid board", func(t *testing.T) string {
			return writeConfig(t, "board:\n  kinds: 1\ndifficulty: fixed\n")
		}},
		{"two kinds fixed", func(t *testing.T) string {
			return writeConfig(t, "board:\n  kinds: 2\ndifficulty: fixed\n")
		}},
		{"unknown preset", func(t *testing.T) string { return writeConfig(t, "difficulty: brutal\n") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadMatch3(tc.path(t)); err == nil {
				t.Error("LoadMatch3() should fail")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Match3Config)
		engine bool // expect an engine.ErrInvalidConfig
	}{
		{"too few kinds", func(c *Match3Config) { c.Board.Kinds = 1 }, true},
		{"two kinds", func(c *Match3Config) { c.Board.Kinds = 2 }, true},
		{"pair runs", func(c *Match3Config) { c.Board.MinRun = 2 }, true},
		{"run longer than board", func(c *Match3Config) { c.Board.Width, c.Board.Height = 2, 2 }, true},
		{"zero base", func(c *Match3Config) { c.Scoring.Base = 0 }, false},
		{"zero step ticks", func(c *Match3Config) { c.Presentation.StepTicks = 0 }, false},
		{"negative hint delay", func(c *Match3Config) { c.Presentation.HintIdleTicks = -1 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMatch3Config()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if got := errors.Is(err, engine.ErrInvalidConfig); got != tc.engine {
				t.Errorf("errors.Is(ErrInvalidConfig) = %v, expected %v (%v)", got, tc.engine, err)
			}
		})
	}

	if err := DefaultMatch3Config().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestApplyMatch3Preset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		kinds  int
		hint   int
	}{
		{DifficultyEasy, 5, 180},
		{DifficultyNormal, 6, 300},
		{DifficultyHard, 7, 600},
		{DifficultyFixed, 4, 42},
		{"", 4, 42},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultMatch3Config()
			cfg.Board.Kinds = 4
			cfg.Presentation.HintIdleTicks = 42

			if err := ApplyMatch3Preset(&cfg, tc.preset); err != nil {
				t.Fatalf("ApplyMatch3Preset() failed: %v", err)
			}
			if cfg.Board.Kinds != tc.kinds || cfg.Presentation.HintIdleTicks != tc.hint {
				t.Errorf("kinds=%d hint=%d, expected kinds=%d hint=%d",
					cfg.Board.Kinds, cfg.Presentation.HintIdleTicks, tc.kinds, tc.hint)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := DefaultMatch3Config()
	got := cfg.EngineConfig()
	if got != engine.DefaultConfig() {
		t.Errorf("EngineConfig() = %+v, expected %+v", got, engine.DefaultConfig())
	}
}
