package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{100, 350, 225} {
		if _, err := store.SaveScore("drift", score, i+1); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	entries, err := store.TopScores("drift", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Score != 350 || entries[1].Score != 225 || entries[2].Score != 100 {
		t.Errorf("entries not sorted by score descending: %+v", entries)
	}
	if entries[0].Level != 2 {
		t.Errorf("level not round-tripped, got %d", entries[0].Level)
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("drift", i*10, 1); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := store.TopScores("drift", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 5 {
		t.Errorf("expected 5 entries, got %d", len(entries))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("drift")
	if err != nil {
		t.Fatal(err)
	}
	if score != 0 {
		t.Errorf("empty table should give high score 0, got %d", score)
	}

	store.SaveScore("drift", 500, 3)
	store.SaveScore("drift", 200, 2)

	score, err = store.HighScore("drift")
	if err != nil {
		t.Fatal(err)
	}
	if score != 500 {
		t.Errorf("expected high score 500, got %d", score)
	}
}

func TestScoresIsolatedPerGame(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("drift", 100, 1)
	store.SaveScore("other", 900, 1)

	score, err := store.HighScore("drift")
	if err != nil {
		t.Fatal(err)
	}
	if score != 100 {
		t.Errorf("scores should be isolated per game, got %d", score)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("drift", 100, 1)
	store.SaveScore("other", 200, 1)

	if err := store.ClearScores("drift"); err != nil {
		t.Fatal(err)
	}

	entries, err := store.TopScores("drift", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("drift scores should be cleared, got %d", len(entries))
	}

	other, err := store.HighScore("other")
	if err != nil {
		t.Fatal(err)
	}
	if other != 200 {
		t.Error("other game's scores should survive the clear")
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("drift", 100, 2)
	store.SaveScore("drift", 300, 5)

	stats, err := store.GetGameStats("drift")
	if err != nil {
		t.Fatal(err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.BestLevel != 5 {
		t.Errorf("BestLevel = %d, expected 5", stats.BestLevel)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
}
