package repo

import (
	"testing"

	"github.com/joeldevian/myday-rutinas/internal/models"
)

func TestMigrateRoutines_BackfillsEndTimes(t *testing.T) {
	in := []models.Routine{
		{ID: "a", StartTime: "08:30", TimeOfDay: models.Morning},
		{ID: "b", StartTime: "23:15", TimeOfDay: models.Night},
		{ID: "c", StartTime: "10:00", EndTime: "11:30", TimeOfDay: models.Morning},
	}

	out, changed := MigrateRoutines(in)
	if !changed {
		t.Fatal("expected the migration to report a change")
	}
	if out[0].EndTime != "09:30" {
		t.Errorf("a.EndTime = %q, want 09:30", out[0].EndTime)
	}
	// hour arithmetic wraps past midnight
	if out[1].EndTime != "00:15" {
		t.Errorf("b.EndTime = %q, want 00:15", out[1].EndTime)
	}
	if out[2].EndTime != "11:30" {
		t.Errorf("existing end time must be untouched, got %q", out[2].EndTime)
	}
}

func TestMigrateRoutines_RepairsTimeOfDay(t *testing.T) {
	in := []models.Routine{
		{ID: "a", StartTime: "19:00", EndTime: "20:00", TimeOfDay: models.Morning},
	}
	out, changed := MigrateRoutines(in)
	if !changed {
		t.Fatal("expected the migration to report a change")
	}
	if out[0].TimeOfDay != models.Night {
		t.Errorf("TimeOfDay = %q, want night", out[0].TimeOfDay)
	}
}

func TestMigrateRoutines_CleanDataUnchanged(t *testing.T) {
	in := []models.Routine{
		{ID: "a", StartTime: "08:00", EndTime: "09:00", TimeOfDay: models.Morning},
	}
	_, changed := MigrateRoutines(in)
	if changed {
		t.Error("clean data should not report a change")
	}
}

func TestRoutinesAll_PersistsMigration(t *testing.T) {
	store := newTestStore(t)
	r := NewRoutines(store, testUser, testClock())

	// simulate a stored pre-endTime record
	legacy := []models.Routine{{ID: "a", Title: "Old", StartTime: "08:00", TimeOfDay: models.Morning}}
	if err := r.Replace(legacy); err != nil {
		t.Fatal(err)
	}

	routines, err := r.All()
	if err != nil {
		t.Fatal(err)
	}
	if routines[0].EndTime != "09:00" {
		t.Fatalf("migration not applied on load: %q", routines[0].EndTime)
	}

	// the migrated form must now be what is stored
	fresh := NewRoutines(store, testUser, testClock())
	stored, _ := fresh.All()
	if stored[0].EndTime != "09:00" {
		t.Error("migrated collection was not persisted")
	}
}
