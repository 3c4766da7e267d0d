package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("chasm", 100)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("chasm", 50)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("chasm", 200)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different game
	_, err = store.SaveScore("chasm_free", 500)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for the standard mode
	scores, err := store.TopScores("chasm", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for the other mode
	freeScores, err := store.TopScores("chasm_free", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(freeScores) != 1 {
		t.Errorf("Expected 1 chasm_free score, got %d", len(freeScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("chasm")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveScore("chasm", 100)
	store.SaveScore("chasm", 300)
	store.SaveScore("chasm", 200)

	high, err = store.HighScore("chasm")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("chasm", 100)
	store.SaveScore("chasm", 200)
	store.SaveScore("chasm_free", 300)

	// Clear only standard mode scores
	err = store.ClearScores("chasm")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Standard mode should be empty
	chasmScores, _ := store.TopScores("chasm", 10)
	if len(chasmScores) != 0 {
		t.Errorf("Expected 0 chasm scores after clear, got %d", len(chasmScores))
	}

	// Free mode should still have scores
	freeScores, _ := store.TopScores("chasm_free", 10)
	if len(freeScores) != 1 {
		t.Errorf("chasm_free scores should not be affected by clearing chasm")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("test", i*10)
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveDescent(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	_, err = store.SaveDescent(DescentRecord{
		GameID:        "chasm",
		Score:         127,
		MaxDepth:      18,
		BlocksPlaced:  100,
		BlocksLost:    23,
		DurationTicks: 5400,
	})
	if err != nil {
		t.Fatalf("SaveDescent() failed: %v", err)
	}

	recs, err := store.RecentDescents("chasm", 10)
	if err != nil {
		t.Fatalf("RecentDescents() failed: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("Expected 1 descent record, got %d", len(recs))
	}
	rec := recs[0]
	if rec.Score != 127 || rec.MaxDepth != 18 || rec.BlocksPlaced != 100 ||
		rec.BlocksLost != 23 || rec.DurationTicks != 5400 {
		t.Errorf("Descent record round-trip mismatch: %+v", rec)
	}
}

func TestStoreBestDescent(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No descents yet
	best, err := store.BestDescent("chasm")
	if err != nil {
		t.Fatalf("BestDescent() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil best descent for empty game, got %+v", best)
	}

	store.SaveDescent(DescentRecord{GameID: "chasm", Score: 80})
	store.SaveDescent(DescentRecord{GameID: "chasm", Score: 210})
	store.SaveDescent(DescentRecord{GameID: "chasm", Score: 150})
	store.SaveDescent(DescentRecord{GameID: "chasm_free", Score: 999})

	best, err = store.BestDescent("chasm")
	if err != nil {
		t.Fatalf("BestDescent() failed: %v", err)
	}
	if best == nil || best.Score != 210 {
		t.Errorf("Expected best descent score 210, got %+v", best)
	}

	top, err := store.TopDescents("chasm", 2)
	if err != nil {
		t.Fatalf("TopDescents() failed: %v", err)
	}
	if len(top) != 2 || top[0].Score != 210 || top[1].Score != 150 {
		t.Errorf("TopDescents ranking wrong: %+v", top)
	}
}

func TestStoreClearRemovesDescents(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveDescent(DescentRecord{GameID: "chasm", Score: 50})
	store.SaveDescent(DescentRecord{GameID: "chasm_free", Score: 70})

	if err := store.ClearScores("chasm"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	best, _ := store.BestDescent("chasm")
	if best != nil {
		t.Errorf("Expected descents cleared with scores, got %+v", best)
	}
	other, _ := store.BestDescent("chasm_free")
	if other == nil {
		t.Error("Clearing one game should not touch the other")
	}
}
