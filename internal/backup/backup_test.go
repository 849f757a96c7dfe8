package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kpeters/hard75/internal/storage"
)

func newJSONStore(t *testing.T) (*storage.JSONStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hard75.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	return store, path
}

func TestCreateBackup_JSONStore(t *testing.T) {
	_, path := newJSONStore(t)
	mgr := NewManager(path)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if !strings.HasSuffix(backupPath, ".json") {
		t.Errorf("expected backup to keep the store extension, got %s", backupPath)
	}
	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}
}

func TestCreateBackup_MissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "hard75.json"))

	if _, err := mgr.CreateBackup(); err == nil {
		t.Fatal("expected CreateBackup to fail when the store does not exist")
	}
}

func TestListBackups_EmptyDirectory(t *testing.T) {
	_, path := newJSONStore(t)
	mgr := NewManager(path)

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Fatalf("expected no backups, got %d", len(backups))
	}
}

func TestListBackups_FindsCreated(t *testing.T) {
	_, path := newJSONStore(t)
	mgr := NewManager(path)

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected one backup, got %d", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("expected the backup to have content")
	}
}

func TestListBackups_IgnoresForeignFiles(t *testing.T) {
	_, path := newJSONStore(t)
	mgr := NewManager(path)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	foreign := filepath.Join(mgr.GetBackupDir(), "notes.txt")
	if err := os.WriteFile(foreign, []byte("unrelated"), 0600); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Fatalf("expected foreign files to be ignored, got %d entries", len(backups))
	}
}

func TestRestoreBackup_RoundTrip(t *testing.T) {
	store, path := newJSONStore(t)
	mgr := NewManager(path)

	// Snapshot the initial state, then change it.
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	state.CurrentDay = 42
	if err := store.Save(*state); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	restored, err := store.Load()
	if err != nil {
		t.Fatalf("Load after restore failed: %v", err)
	}
	if restored.CurrentDay != 0 {
		t.Fatalf("expected restored state at day 0, got %d", restored.CurrentDay)
	}
}

func TestRestoreBackup_RejectsCorruptBackup(t *testing.T) {
	_, path := newJSONStore(t)
	mgr := NewManager(path)

	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	corrupt := filepath.Join(mgr.GetBackupDir(), "hard75-20260105-0900.json")
	if err := os.WriteFile(corrupt, []byte("{broken"), 0600); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := mgr.RestoreBackup(corrupt); err == nil {
		t.Fatal("expected a corrupt backup to be rejected")
	}
}

func TestRestoreBackup_MissingFile(t *testing.T) {
	_, path := newJSONStore(t)
	mgr := NewManager(path)

	if err := mgr.RestoreBackup(filepath.Join(mgr.GetBackupDir(), "nope.json")); err == nil {
		t.Fatal("expected a missing backup file to be rejected")
	}
}

func TestCreateBackup_SQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hard75.db")
	store := storage.NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	defer store.Close()

	mgr := NewManager(path)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// The copy must itself be a loadable store.
	restored := storage.NewSQLiteStore(backupPath)
	defer restored.Close()
	state, err := restored.Load()
	if err != nil {
		t.Fatalf("backup is not a readable store: %v", err)
	}
	if state == nil {
		t.Fatal("expected the backup to carry the saved state")
	}
}
