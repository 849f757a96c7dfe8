package storage

import (
	"path/filepath"
	"testing"

	"github.com/kpeters/hard75/internal/models"
)

func TestSQLiteStore_LoadBeforeInitReturnsNoState(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "hard75.db"))
	defer store.Close()

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if state != nil {
		t.Fatal("expected no prior state before init")
	}
}

func TestSQLiteStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "hard75.db"))
	defer store.Close()

	state := models.NewState()
	state.CurrentDay = 7
	start := "2026-01-08"
	state.StartDate = &start
	day := models.NewEmptyDay("2026-01-14")
	day.WaterOz = 96
	state.TodayProgress = &day
	state.History = append(state.History, day)

	if err := store.Save(state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected saved state to load")
	}
	if got.CurrentDay != 7 {
		t.Errorf("expected day 7, got %d", got.CurrentDay)
	}
	if got.TodayProgress == nil || got.TodayProgress.WaterOz != 96 {
		t.Errorf("expected today's water to survive, got %+v", got.TodayProgress)
	}
	if len(got.History) != 1 || got.History[0].Date != "2026-01-14" {
		t.Errorf("unexpected history after reload: %+v", got.History)
	}
}

func TestSQLiteStore_SaveOverwritesPrevious(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "hard75.db"))
	defer store.Close()

	first := models.NewState()
	first.CurrentDay = 1
	if err := store.Save(first); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	second := models.NewState()
	second.CurrentDay = 2
	if err := store.Save(second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.CurrentDay != 2 {
		t.Fatalf("expected the later save to win, got day %d", got.CurrentDay)
	}
}

func TestSQLiteStore_ClearRemovesState(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "hard75.db"))
	defer store.Close()

	if err := store.Save(models.NewState()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if state != nil {
		t.Fatal("expected no state after Clear")
	}
}

func TestSQLiteStore_InitThenLoad(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "hard75.db"))
	defer store.Close()

	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if state == nil || state.CurrentDay != 0 {
		t.Fatalf("expected pre-onboarding initial state, got %+v", state)
	}
}

func TestSQLiteStore_ReopenAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hard75.db")

	store := NewSQLiteStore(path)
	state := models.NewState()
	state.CurrentDay = 5
	if err := store.Save(state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewSQLiteStore(path)
	defer reopened.Close()

	got, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load after reopen failed: %v", err)
	}
	if got == nil || got.CurrentDay != 5 {
		t.Fatalf("expected persisted state after reopen, got %+v", got)
	}
}
