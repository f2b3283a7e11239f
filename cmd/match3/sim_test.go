package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/engine"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := engine.DefaultConfig()

	a, err := simulate(cfg, 42, 30, quietLogger())
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	b, err := simulate(cfg, 42, 30, quietLogger())
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}

	if a.Score != b.Score || a.Swaps != b.Swaps || a.BestCombo != b.BestCombo {
		t.Errorf("same seed gave %+v and %+v", a, b)
	}
	if !a.Board.Equal(b.Board) {
		t.Error("same seed gave different final boards")
	}
}

func TestSimulateRespectsMoveLimit(t *testing.T) {
	res, err := simulate(engine.DefaultConfig(), 7, 5, quietLogger())
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if res.Swaps > 5 {
		t.Errorf("Swaps = %d, expected at most 5", res.Swaps)
	}
	if !res.Stuck && res.Swaps != 5 {
		t.Errorf("Swaps = %d without getting stuck, expected 5", res.Swaps)
	}
	if res.Swaps > 0 && res.Score == 0 {
		t.Error("accepted swaps should score")
	}
	if err := res.Board.CheckInvariants(); err != nil {
		t.Errorf("final board broken: %v", err)
	}
}

func TestSimulateRejectsBadConfig(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Kinds = 1
	if _, err := simulate(cfg, 1, 1, quietLogger()); err == nil {
		t.Error("expected an error for a single kind")
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":       "23234",
		"0.0.0.0:2222": "2222",
		"localhost":    "localhost",
		"[::1]:23234":  "23234",
	}
	for in, want := range tests {
		if got := portOf(in); got != want {
			t.Errorf("portOf(%q) = %q, expected %q", in, got, want)
		}
	}
}
