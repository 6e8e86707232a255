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

	// Save some runs
	_, err = store.SaveRun("skyhop", 1200, 85)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	_, err = store.SaveRun("skyhop", 500, 40)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	_, err = store.SaveRun("skyhop", 2400, 170)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Retrieve top runs
	runs, err := store.TopRuns("skyhop", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted by score descending
	if runs[0].Score != 2400 {
		t.Errorf("Expected highest score to be 2400, got %d", runs[0].Score)
	}
	if runs[0].Height != 170 {
		t.Errorf("Expected height 170 on the top run, got %d", runs[0].Height)
	}
	if runs[1].Score != 1200 {
		t.Errorf("Expected second score to be 1200, got %d", runs[1].Score)
	}
	if runs[2].Score != 500 {
		t.Errorf("Expected third score to be 500, got %d", runs[2].Score)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 runs
	for i := 0; i < 5; i++ {
		store.SaveRun("skyhop", (i+1)*100, (i+1)*10)
	}

	// Request only top 3
	runs, err := store.TopRuns("skyhop", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Should be 500, 400, 300 (top 3)
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
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

	// No runs yet
	high, err := store.HighScore("skyhop")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add runs
	store.SaveRun("skyhop", 100, 10)
	store.SaveRun("skyhop", 300, 25)
	store.SaveRun("skyhop", 200, 50)

	high, err = store.HighScore("skyhop")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreBestHeight(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	best, err := store.BestHeight("skyhop")
	if err != nil {
		t.Fatalf("BestHeight() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best height of 0 for empty game, got %d", best)
	}

	// The best climb is not necessarily on the best-scoring run.
	store.SaveRun("skyhop", 900, 30)
	store.SaveRun("skyhop", 400, 120)

	best, err = store.BestHeight("skyhop")
	if err != nil {
		t.Fatalf("BestHeight() failed: %v", err)
	}
	if best != 120 {
		t.Errorf("Expected best height of 120, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("skyhop", 100, 10)
	store.SaveRun("skyhop", 200, 20)
	store.SaveRun("other", 300, 30)

	// Clear only skyhop runs
	err = store.ClearRuns("skyhop")
	if err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	skyhopRuns, _ := store.TopRuns("skyhop", 10)
	if len(skyhopRuns) != 0 {
		t.Errorf("Expected 0 skyhop runs after clear, got %d", len(skyhopRuns))
	}

	otherRuns, _ := store.TopRuns("other", 10)
	if len(otherRuns) != 1 {
		t.Errorf("Other game's runs should not be affected by the clear")
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("skyhop", 100, 10)
	store.SaveRun("skyhop", 300, 90)
	store.SaveRun("skyhop", 200, 40)

	stats, err := store.GetGameStats("skyhop")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.RunsCount != 3 {
		t.Errorf("RunsCount = %d, want 3", stats.RunsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.BestHeight != 90 {
		t.Errorf("BestHeight = %d, want 90", stats.BestHeight)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, want 200", stats.AvgScore)
	}
	if stats.TotalScore != 600 {
		t.Errorf("TotalScore = %d, want 600", stats.TotalScore)
	}
}

func TestStoreAllRuns(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many runs
	for i := 0; i < 20; i++ {
		store.SaveRun("skyhop", i*10, i)
	}

	runs, err := store.AllRuns("skyhop")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}

	if len(runs) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(runs))
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
