// Package backup implements export/import of a user's data as a single JSON
// document. Import parses and validates the whole document before touching
// the store, so a malformed file can never leave a partial overwrite.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joeldevian/myday-rutinas/internal/constants"
	"github.com/joeldevian/myday-rutinas/internal/models"
	"github.com/joeldevian/myday-rutinas/internal/storage"
)

// Document is the on-disk backup format.
type Document struct {
	Routines   []models.Routine    `json:"routines"`
	Stats      models.StatsHistory `json:"stats"`
	Events     models.Events       `json:"events"`
	ExportDate time.Time           `json:"exportDate"`
	Version    string              `json:"version"`
	UserID     string              `json:"userId"`
}

// Export assembles a document from the user's stored collections.
func Export(store storage.Provider, userID string, now time.Time) (Document, error) {
	if userID == "" {
		return Document{}, fmt.Errorf("no user signed in")
	}

	doc := Document{
		Routines:   []models.Routine{},
		Stats:      models.StatsHistory{},
		Events:     models.Events{},
		ExportDate: now,
		Version:    constants.BackupVersion,
		UserID:     userID,
	}
	if _, err := store.Get(storage.UserKey(storage.KeyRoutines, userID), &doc.Routines); err != nil {
		return Document{}, fmt.Errorf("failed to read routines: %w", err)
	}
	if _, err := store.Get(storage.UserKey(storage.KeyStatsHistory, userID), &doc.Stats); err != nil {
		return Document{}, fmt.Errorf("failed to read stats: %w", err)
	}
	if _, err := store.Get(storage.UserKey(storage.KeyEvents, userID), &doc.Events); err != nil {
		return Document{}, fmt.Errorf("failed to read events: %w", err)
	}
	return doc, nil
}

// WriteFile marshals the document, indented, to path.
func WriteFile(doc Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return nil
}

// DefaultFilename names a backup after its export day.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("myday-backup-%s.json", now.Format(constants.DateFormat))
}

// Parse decodes and sanity-checks a backup document. Nothing is written here;
// errors surface as user-visible messages.
func Parse(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("not a valid backup file: %w", err)
	}
	if doc.Version == "" {
		return Document{}, fmt.Errorf("not a valid backup file: missing version")
	}
	if doc.Routines == nil && doc.Stats == nil && doc.Events == nil {
		return Document{}, fmt.Errorf("not a valid backup file: no collections present")
	}
	return doc, nil
}

// Import overwrites the user's routines, stats, and events with the
// document's collections. The caller has already confirmed the overwrite.
func Import(store storage.Provider, userID string, doc Document) error {
	if userID == "" {
		return fmt.Errorf("no user signed in")
	}

	if doc.Routines != nil {
		if err := store.Put(storage.UserKey(storage.KeyRoutines, userID), doc.Routines); err != nil {
			return fmt.Errorf("failed to import routines: %w", err)
		}
	}
	if doc.Stats != nil {
		if err := store.Put(storage.UserKey(storage.KeyStatsHistory, userID), doc.Stats); err != nil {
			return fmt.Errorf("failed to import stats: %w", err)
		}
	}
	if doc.Events != nil {
		if err := store.Put(storage.UserKey(storage.KeyEvents, userID), doc.Events); err != nil {
			return fmt.Errorf("failed to import events: %w", err)
		}
	}
	return nil
}
