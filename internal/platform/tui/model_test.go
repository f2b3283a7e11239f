package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// stubGame counts calls and ends when it sees a select action.
type stubGame struct {
	resets  int
	resized bool
	last    core.InputFrame
	over    bool
	score   int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.over = false
	g.score = 0
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.last = core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			g.last.Set(a)
		}
	}
	g.last.Click = in.Click
	if in.Has(core.ActionSelect) {
		g.over = true
		g.score = 1200
	}
	return core.StepResult{State: g.State()}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over}
}

func (g *stubGame) Seed() int64    { return 99 }
func (g *stubGame) Moves() int     { return 7 }
func (g *stubGame) BestCombo() int { return 3 }

func (g *stubGame) Resize(int, int) { g.resized = true }

func openModelStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelResetsOnFirstTick(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.DefaultConfig())

	if m.View() != "" {
		t.Error("nothing should render before the first tick")
	}
	m = update(t, m, TickMsg{})
	if g.resets != 1 {
		t.Errorf("resets = %d after first tick, expected 1", g.resets)
	}
	m = update(t, m, TickMsg{})
	if g.resets != 1 {
		t.Error("later ticks should not reset")
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("View() should render the game")
	}
}

func TestModelForwardsInput(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.DefaultConfig())
	m = update(t, m, TickMsg{})

	m = update(t, m, runeKey('?'))
	m = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})

	if !g.last.Has(core.ActionHint) {
		t.Error("hint key did not reach the game")
	}
	if g.last.Click == nil || *g.last.Click != (core.Point{X: 3, Y: 4}) {
		t.Errorf("click = %v, expected (3,4)", g.last.Click)
	}

	update(t, m, TickMsg{})
	if !g.last.Empty() {
		t.Error("input should be cleared after each tick")
	}
}

func TestModelSavesRunOnGameOver(t *testing.T) {
	store := openModelStore(t)
	g := &stubGame{}
	m := NewModel(g, store, core.DefaultConfig()).WithPlayer("ada")
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	runs, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected exactly 1", len(runs))
	}
	r := runs[0]
	if r.Score != 1200 || r.Moves != 7 || r.BestCombo != 3 || r.Seed != 99 || r.Player != "ada" {
		t.Errorf("saved run = %+v", r)
	}
	if m.LastRunID() != r.RunID {
		t.Errorf("LastRunID() = %q, expected %q", m.LastRunID(), r.RunID)
	}
}

func TestModelRestart(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.DefaultConfig())
	m = update(t, m, TickMsg{})

	m = update(t, m, runeKey('r'))
	update(t, m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d after restart, expected 2", g.resets)
	}
}

func TestModelBackToMenuOnlyWhenOver(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.DefaultConfig())
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("esc during play should not leave the game")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc after game over should go back to the menu")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, core.DefaultConfig())
	m = update(t, m, runeKey('q'))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.DefaultConfig())
	m = update(t, m, TickMsg{})

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if !g.resized {
		t.Error("a resizable game should be resized")
	}
	if g.resets != 1 {
		t.Error("a resizable game should not be reset")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(0, 1, "tiles", core.ColorBrightRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "plain") || !strings.Contains(out, "tiles") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", got)
	}
}
