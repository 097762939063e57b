package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

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

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun(Run{Difficulty: "normal", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(Run{Difficulty: "hard", Score: 500}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 500 {
		t.Errorf("TopScores(\"\") = %v, expected all four runs led by 500", all)
	}
}

func TestStoreRunFields(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveRun(Run{
		Player:   "alice",
		Score:    70,
		Level:    2,
		Length:   12,
		Eaten:    7,
		Duration: 95 * time.Second,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.ID == uuid.Nil {
		t.Fatal("SaveRun() should assign a run ID")
	}
	if saved.Difficulty != "normal" {
		t.Errorf("Difficulty = %q, expected default normal", saved.Difficulty)
	}

	e, err := store.RunByID(saved.ID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if e.RunID != saved.ID || e.Player != "alice" || e.Level != 2 || e.Length != 12 || e.Eaten != 7 {
		t.Errorf("RunByID() = %+v, fields do not match saved run", e)
	}
	if e.Duration != 95*time.Second {
		t.Errorf("Duration = %v, expected 95s", e.Duration)
	}

	if _, err := store.RunByID(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("RunByID(unknown) err = %v, expected ErrNotFound", err)
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)
	id := uuid.New()

	if _, err := store.SaveRun(Run{ID: id, Score: 10}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{ID: id, Score: 20}); err == nil {
		t.Error("saving the same run ID twice should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Score: (i + 1) * 100})
	}

	scores, err := store.TopScores("normal", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	scores, _ = store.TopScores("normal", 0)
	if len(scores) != 5 {
		t.Errorf("non-positive limit should default to 10, got %d rows", len(scores))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	store.SaveRun(Run{Score: 100})
	store.SaveRun(Run{Score: 300})
	store.SaveRun(Run{Score: 200})
	store.SaveRun(Run{Difficulty: "easy", Score: 900})

	high, err = store.HighScore("normal")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
	if high, _ := store.HighScore(""); high != 900 {
		t.Errorf("Expected overall high score of 900, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Difficulty: "easy", Score: 100})
	store.SaveRun(Run{Difficulty: "easy", Score: 200})
	store.SaveRun(Run{Difficulty: "hard", Score: 300})

	if err := store.ClearScores("easy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	easy, _ := store.TopScores("easy", 10)
	if len(easy) != 0 {
		t.Errorf("Expected 0 easy scores after clear, got %d", len(easy))
	}
	hard, _ := store.TopScores("hard", 10)
	if len(hard) != 1 {
		t.Errorf("Hard scores should not be affected by clearing easy")
	}

	if err := store.ClearScores(""); err != nil {
		t.Fatalf("ClearScores(\"\") failed: %v", err)
	}
	if all, _ := store.TopScores("", 10); len(all) != 0 {
		t.Errorf("Expected empty store, got %d runs", len(all))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.HighScore != 0 {
		t.Errorf("Stats() on empty store = %+v", empty)
	}

	store.SaveRun(Run{Score: 100, Level: 2, Eaten: 10})
	store.SaveRun(Run{Score: 50, Level: 1, Eaten: 5})

	st, err := store.Stats("normal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 2 || st.HighScore != 100 || st.BestLevel != 2 || st.TotalEaten != 15 {
		t.Errorf("Stats() = %+v", st)
	}
	if st.AvgScore != 75 {
		t.Errorf("AvgScore = %v, expected 75", st.AvgScore)
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
