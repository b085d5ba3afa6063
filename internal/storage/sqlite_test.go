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

func TestStoreSaveRunAssignsIDs(t *testing.T) {
	store := openTestStore(t)

	saved, err := store.SaveRun(RunRecord{
		GameID:     "antigravity",
		Player:     "ada",
		Score:      130,
		Kills:      11,
		EliteKills: 2,
		Ticks:      4200,
		DurationMS: 70000,
		Difficulty: "hard",
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.ID == 0 {
		t.Error("SaveRun should set the row ID")
	}
	if _, err := uuid.Parse(saved.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", saved.RunID, err)
	}

	got, err := store.RunByID(saved.RunID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Player != "ada" || got.Score != 130 || got.Kills != 11 || got.EliteKills != 2 ||
		got.Ticks != 4200 || got.DurationMS != 70000 || got.Difficulty != "hard" {
		t.Errorf("RunByID() = %+v, expected the saved fields", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreSaveRunKeepsGivenRunID(t *testing.T) {
	store := openTestStore(t)

	id := uuid.NewString()
	saved, err := store.SaveRun(RunRecord{RunID: id, GameID: "antigravity", Score: 1})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if saved.RunID != id {
		t.Errorf("RunID = %q, expected %q", saved.RunID, id)
	}

	if _, err := store.SaveRun(RunRecord{RunID: id, GameID: "antigravity", Score: 2}); err == nil {
		t.Error("duplicate RunID should be rejected")
	}
}

func TestStoreRunByIDMissing(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RunByID("nope")
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got != nil {
		t.Errorf("RunByID() = %+v, expected nil", got)
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 100} {
		if _, err := store.SaveRun(RunRecord{GameID: "antigravity", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(RunRecord{GameID: "other", Score: 500}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("antigravity", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 100 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[1].ID > scores[2].ID {
		t.Error("ties should list the earlier run first")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("antigravity")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		store.SaveRun(RunRecord{GameID: "antigravity", Score: score})
	}

	high, err = store.HighScore("antigravity")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "antigravity", Player: "ada", Score: 10})
	store.SaveRun(RunRecord{GameID: "antigravity", Player: "bob", Score: 20})
	store.SaveRun(RunRecord{GameID: "antigravity", Player: "ada", Score: 30})

	runs, err := store.PlayerRuns("ada", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs for ada, got %d", len(runs))
	}
	if runs[0].Score != 30 {
		t.Errorf("most recent run should come first, got score %d", runs[0].Score)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{GameID: "antigravity", Score: 100})
	store.SaveRun(RunRecord{GameID: "antigravity", Score: 200})
	store.SaveRun(RunRecord{GameID: "other", Score: 300})

	if err := store.ClearScores("antigravity"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.TopScores("antigravity", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}

	other, _ := store.TopScores("other", 10)
	if len(other) != 1 {
		t.Errorf("other game's scores should not be affected")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("antigravity")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(RunRecord{GameID: "antigravity", Score: 100, Kills: 8})
	store.SaveRun(RunRecord{GameID: "antigravity", Score: 300, Kills: 20})

	stats, err := store.GetGameStats("antigravity")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalKills != 28 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
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
