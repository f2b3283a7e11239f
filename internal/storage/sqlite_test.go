package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore("match3", 900); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("match3"); high != 900 {
		t.Errorf("HighScore() after reopen = %d, expected 900", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	runID, err := store.SaveRun(Run{GameID: "match3", Player: "ada", Score: 4100, Moves: 12, BestCombo: 3, Seed: 42})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(runID); err != nil {
		t.Errorf("run id %q is not a uuid: %v", runID, err)
	}

	r, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil {
		t.Fatal("RunByID() found nothing")
	}
	if r.Score != 4100 || r.Moves != 12 || r.BestCombo != 3 || r.Seed != 42 || r.GameID != "match3" || r.Player != "ada" {
		t.Errorf("RunByID() = %+v", *r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("created_at was not parsed")
	}
}

func TestStoreSaveRunValidation(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(Run{Score: 1}); err == nil {
		t.Error("SaveRun() without a game id should fail")
	}

	runID, err := store.SaveRun(Run{GameID: "match3", Score: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	r, _ := store.RunByID(runID)
	if r == nil || r.BestCombo != 1 {
		t.Errorf("best combo should default to 1, got %+v", r)
	}
}

func TestStoreRunByIDUnknown(t *testing.T) {
	store := openTestStore(t)

	r, err := store.RunByID(uuid.NewString())
	if err != nil || r != nil {
		t.Errorf("RunByID(unknown) = %v, %v; expected nil, nil", r, err)
	}
	if _, err := store.RunByID("not-a-uuid"); err == nil {
		t.Error("RunByID() should reject a malformed id")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 200} {
		if _, err := store.SaveScore("match3", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("other", 500)

	scores, err := store.TopScores("match3", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 4 {
		t.Fatalf("expected 4 scores, got %d", len(scores))
	}

	expected := []int{200, 200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
	}
	if scores[0].ID > scores[1].ID {
		t.Error("ties should list the earlier run first")
	}

	top, _ := store.TopScores("match3", 2)
	if len(top) != 2 {
		t.Errorf("limit 2 returned %d rows", len(top))
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveScore("match3", i*100)
	}

	recent, err := store.RecentRuns("match3", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 || recent[0].Score != 500 || recent[2].Score != 300 {
		t.Errorf("RecentRuns() = %+v", recent)
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty game high score = %d, expected 0", high)
	}

	store.SaveScore("match3", 100)
	store.SaveScore("match3", 300)
	store.SaveScore("other", 900)

	if high, _ = store.HighScore("match3"); high != 300 {
		t.Errorf("HighScore() = %d, expected 300", high)
	}

	if err := store.ClearScores("match3"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("match3", 10); len(scores) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("clearing one game should not touch another")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("match3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for an unplayed game = %+v", empty)
	}

	store.SaveRun(Run{GameID: "match3", Score: 1000, Moves: 10, BestCombo: 2})
	store.SaveRun(Run{GameID: "match3", Score: 3000, Moves: 20, BestCombo: 4})

	stats, err := store.GetGameStats("match3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 3000 || stats.AvgScore != 2000 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalMoves != 30 || stats.BestCombo != 4 {
		t.Errorf("moves=%d bestCombo=%d, expected 30 and 4", stats.TotalMoves, stats.BestCombo)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played should be set")
	}
}
