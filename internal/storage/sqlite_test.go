package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	results := []GameResult{
		{Player: "alice", Score: 10, Ticks: 600, Seed: 1},
		{Player: "bob", Score: 5, Ticks: 300, Seed: 2},
		{Player: "carol", Score: 20, Ticks: 1200, Seed: 3, Difficulty: "hard"},
	}
	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	top, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(top))
	}

	if top[0].Player != "carol" || top[0].Score != 20 {
		t.Errorf("Expected carol with 20 first, got %+v", top[0])
	}
	if top[0].Ticks != 1200 || top[0].Seed != 3 || top[0].Difficulty != "hard" {
		t.Errorf("Round trip lost fields: %+v", top[0])
	}
	if top[1].Score != 10 || top[2].Score != 5 {
		t.Errorf("Results not in expected order: %+v", top)
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveResult(GameResult{Player: "p", Score: (i + 1) * 100})
	}

	top, err := store.TopResults(3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Results not in expected order: %v", top)
	}
}

func TestStoreRecentResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(GameResult{Player: "first", Score: 50})
	store.SaveResult(GameResult{Player: "second", Score: 1})

	recent, err := store.RecentResults(1)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 1 || recent[0].Player != "second" {
		t.Errorf("Expected the latest game, got %+v", recent)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty history, got %d", high)
	}

	store.SaveResult(GameResult{Player: "a", Score: 100})
	store.SaveResult(GameResult{Player: "b", Score: 300})
	store.SaveResult(GameResult{Player: "c", Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearResults(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(GameResult{Player: "a", Score: 100})
	store.SaveResult(GameResult{Player: "b", Score: 200})

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	top, _ := store.TopResults(10)
	if len(top) != 0 {
		t.Errorf("Expected 0 results after clear, got %d", len(top))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Unexpected stats for empty history: %+v", empty)
	}

	store.SaveResult(GameResult{Player: "a", Score: 4, Ticks: 100})
	store.SaveResult(GameResult{Player: "b", Score: 8, Ticks: 300})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 8 {
		t.Errorf("HighScore = %d, expected 8", stats.HighScore)
	}
	if stats.AvgScore != 6 {
		t.Errorf("AvgScore = %v, expected 6", stats.AvgScore)
	}
	if stats.TotalScore != 12 || stats.TotalTicks != 400 {
		t.Errorf("totals = (%d, %d), expected (12, 400)", stats.TotalScore, stats.TotalTicks)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
