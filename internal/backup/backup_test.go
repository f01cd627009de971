package backup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/joeldevian/myday-rutinas/internal/models"
	"github.com/joeldevian/myday-rutinas/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	s := storage.NewJSONStore(filepath.Join(t.TempDir(), "myday.json"))
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	return s
}

func seed(t *testing.T, store storage.Provider, userID string) {
	t.Helper()
	routines := []models.Routine{{ID: "r1", Title: "Coffee", StartTime: "07:00", EndTime: "08:00"}}
	history := models.StatsHistory{"2026-08-28": {Total: 1, Completed: 1, Percentage: 100}}
	events := models.Events{"2026-08-29": {{ID: "e1", Title: "Dentist", Date: "2026-08-29"}}}
	if err := store.Put(storage.UserKey(storage.KeyRoutines, userID), routines); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(storage.UserKey(storage.KeyStatsHistory, userID), history); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(storage.UserKey(storage.KeyEvents, userID), events); err != nil {
		t.Fatal(err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t)
	seed(t, src, "user-1")
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

	doc, err := Export(src, "user-1", now)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Routines) != 1 || len(doc.Stats) != 1 || len(doc.Events) != 1 {
		t.Fatalf("export collections: %d %d %d", len(doc.Routines), len(doc.Stats), len(doc.Events))
	}
	if doc.UserID != "user-1" || doc.Version == "" {
		t.Errorf("doc metadata: user=%q version=%q", doc.UserID, doc.Version)
	}

	path := filepath.Join(t.TempDir(), DefaultFilename(now))
	if err := WriteFile(doc, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	dst := newTestStore(t)
	if err := Import(dst, "user-2", parsed); err != nil {
		t.Fatal(err)
	}

	var routines []models.Routine
	if _, err := dst.Get(storage.UserKey(storage.KeyRoutines, "user-2"), &routines); err != nil {
		t.Fatal(err)
	}
	if len(routines) != 1 || routines[0].Title != "Coffee" {
		t.Errorf("imported routines = %v", routines)
	}
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	if got := DefaultFilename(now); got != "myday-backup-2026-08-29.json" {
		t.Errorf("DefaultFilename = %q", got)
	}
}

func TestBackupJSONFieldNames(t *testing.T) {
	doc := Document{UserID: "u", Version: "1.0.0"}
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"exportDate"`, `"userId"`, `"version"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("serialized document missing %s: %s", field, data)
		}
	}
}

func TestParse_RejectsMalformed(t *testing.T) {
	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Error("malformed JSON must be rejected")
	}
	if _, err := Parse([]byte(`{}`)); err == nil {
		t.Error("a document with no version must be rejected")
	}
}

func TestImport_NoPartialWrites(t *testing.T) {
	dst := newTestStore(t)
	seed(t, dst, "user-1")

	// Parse fails before Import can run, so the store is untouched.
	if _, err := Parse([]byte(`{"routines": "not-an-array", "version": "1.0.0"}`)); err == nil {
		t.Fatal("expected parse failure")
	}

	var routines []models.Routine
	if _, err := dst.Get(storage.UserKey(storage.KeyRoutines, "user-1"), &routines); err != nil {
		t.Fatal(err)
	}
	if len(routines) != 1 {
		t.Errorf("existing data disturbed: %v", routines)
	}
}

func TestExport_RequiresUser(t *testing.T) {
	if _, err := Export(newTestStore(t), "", time.Now()); err == nil {
		t.Error("export without a user must fail")
	}
}
