package repo

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/joeldevian/myday-rutinas/internal/models"
	"github.com/joeldevian/myday-rutinas/internal/storage"
	"github.com/joeldevian/myday-rutinas/internal/validation"
)

const testUser = "user-1"

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

func testClock() *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC))
}

func TestRoutinesCreate_SortedAndDerived(t *testing.T) {
	r := NewRoutines(newTestStore(t), testUser, testClock())

	if _, err := r.Create(RoutineInput{Title: "Evening walk", StartTime: "19:00", EndTime: "20:00"}); err != nil {
		t.Fatal(err)
	}
	created, err := r.Create(RoutineInput{Title: "Coffee", StartTime: "07:30", EndTime: "08:00", Icon: models.IconCoffee})
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Error("Create should assign an id")
	}
	if created.TimeOfDay != models.Morning {
		t.Errorf("TimeOfDay = %q, want morning", created.TimeOfDay)
	}

	routines, err := r.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(routines) != 2 {
		t.Fatalf("got %d routines, want 2", len(routines))
	}
	if routines[0].Title != "Coffee" {
		t.Errorf("collection should be sorted by start time, got %q first", routines[0].Title)
	}
}

func TestRoutinesCreate_Invalid(t *testing.T) {
	r := NewRoutines(newTestStore(t), testUser, testClock())

	_, err := r.Create(RoutineInput{Title: "", StartTime: "bad"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	if errs["title"] == "" || errs["startTime"] == "" {
		t.Errorf("expected title and startTime errors, got %v", errs)
	}
}

func TestRoutinesCreate_NoUser(t *testing.T) {
	r := NewRoutines(newTestStore(t), "", testClock())
	if _, err := r.Create(RoutineInput{Title: "X", StartTime: "08:00"}); err != ErrNoUser {
		t.Errorf("expected ErrNoUser, got %v", err)
	}
	routines, err := r.All()
	if err != nil || routines != nil {
		t.Errorf("reads without a user should be empty, got %v, %v", routines, err)
	}
}

func TestRoutinesUpdate_RecomputesTimeOfDay(t *testing.T) {
	r := NewRoutines(newTestStore(t), testUser, testClock())
	created, err := r.Create(RoutineInput{Title: "Gym", StartTime: "08:00", EndTime: "09:00"})
	if err != nil {
		t.Fatal(err)
	}

	start := "19:00"
	end := "20:00"
	updated, matched, err := r.Update(created.ID, RoutinePatch{StartTime: &start, EndTime: &end})
	if err != nil {
		t.Fatal(err)
	}
	if !matched {
		t.Fatal("expected the id to match")
	}
	if updated.TimeOfDay != models.Night {
		t.Errorf("TimeOfDay = %q, want night after moving the start time", updated.TimeOfDay)
	}
	if updated.Title != "Gym" {
		t.Error("unpatched fields must be preserved")
	}
}

func TestRoutinesUpdate_UnknownIDIsSilentNoOp(t *testing.T) {
	r := NewRoutines(newTestStore(t), testUser, testClock())
	if _, err := r.Create(RoutineInput{Title: "Gym", StartTime: "08:00"}); err != nil {
		t.Fatal(err)
	}

	title := "Renamed"
	_, matched, err := r.Update("nope", RoutinePatch{Title: &title})
	if err != nil {
		t.Fatal(err)
	}
	if matched {
		t.Error("unknown id should not match")
	}

	routines, _ := r.All()
	if routines[0].Title != "Gym" {
		t.Error("collection must be unchanged after a missed update")
	}
}

func TestRoutinesDelete(t *testing.T) {
	r := NewRoutines(newTestStore(t), testUser, testClock())
	created, _ := r.Create(RoutineInput{Title: "Gym", StartTime: "08:00"})

	matched, err := r.Delete("nope")
	if err != nil || matched {
		t.Errorf("deleting an unknown id: matched=%v err=%v", matched, err)
	}

	matched, err = r.Delete(created.ID)
	if err != nil || !matched {
		t.Fatalf("deleting an existing id: matched=%v err=%v", matched, err)
	}
	routines, _ := r.All()
	if len(routines) != 0 {
		t.Errorf("got %d routines after delete, want 0", len(routines))
	}
}

func TestToggleComplete_StopsTimerKeepingElapsed(t *testing.T) {
	clock := testClock()
	r := NewRoutines(newTestStore(t), testUser, clock)
	created, _ := r.Create(RoutineInput{Title: "Deep work", StartTime: "09:00", EndTime: "11:00"})

	if _, _, err := r.StartTimer(created.ID); err != nil {
		t.Fatal(err)
	}
	clock.Advance(90 * time.Second)

	toggled, matched, err := r.ToggleComplete(created.ID)
	if err != nil || !matched {
		t.Fatalf("toggle: matched=%v err=%v", matched, err)
	}
	if !toggled.Completed {
		t.Error("routine should be completed")
	}
	if toggled.Timer.IsRunning {
		t.Error("completing must stop the stopwatch")
	}
	if toggled.Timer.ElapsedSeconds != 90 {
		t.Errorf("ElapsedSeconds = %d, want 90", toggled.Timer.ElapsedSeconds)
	}

	// un-completing leaves the timer untouched
	reopened, _, err := r.ToggleComplete(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if reopened.Completed {
		t.Error("routine should be back to pending")
	}
	if reopened.Timer.ElapsedSeconds != 90 {
		t.Errorf("un-completing changed the timer: %+v", reopened.Timer)
	}
}

func TestTimerLifecycleThroughRepo(t *testing.T) {
	clock := testClock()
	r := NewRoutines(newTestStore(t), testUser, clock)
	created, _ := r.Create(RoutineInput{Title: "Read", StartTime: "21:00"})

	r.StartTimer(created.ID)
	clock.Advance(30 * time.Second)
	paused, _, _ := r.PauseTimer(created.ID)
	if paused.Timer.IsRunning || paused.Timer.ElapsedSeconds != 30 {
		t.Errorf("after pause: %+v", paused.Timer)
	}

	zeroed, _, _ := r.ResetTimer(created.ID)
	if zeroed.Timer.ElapsedSeconds != 0 || zeroed.Timer.IsRunning {
		t.Errorf("after reset: %+v", zeroed.Timer)
	}
}

func TestResetForNewDay(t *testing.T) {
	clock := testClock()
	r := NewRoutines(newTestStore(t), testUser, clock)
	a, _ := r.Create(RoutineInput{Title: "A", StartTime: "08:00"})
	b, _ := r.Create(RoutineInput{Title: "B", StartTime: "09:00"})

	r.ToggleComplete(a.ID)
	r.StartTimer(b.ID)
	clock.Advance(time.Minute)

	routines, _ := r.All()
	fresh := ResetForNewDay(routines)
	for _, routine := range fresh {
		if routine.Completed {
			t.Errorf("%s still completed after reset", routine.Title)
		}
		if routine.Timer.IsRunning || routine.Timer.ElapsedSeconds != 0 {
			t.Errorf("%s timer not zeroed: %+v", routine.Title, routine.Timer)
		}
	}
	// identity fields survive
	if fresh[0].ID != routines[0].ID || fresh[0].Title != routines[0].Title {
		t.Error("reset must preserve id and title")
	}
}

func TestRoutinesResetAll(t *testing.T) {
	store := newTestStore(t)
	clock := testClock()
	r := NewRoutines(store, testUser, clock)
	a, _ := r.Create(RoutineInput{Title: "A", StartTime: "08:00"})
	b, _ := r.Create(RoutineInput{Title: "B", StartTime: "09:00"})
	r.ToggleComplete(a.ID)
	r.StartTimer(b.ID)
	clock.Advance(time.Minute)

	if err := r.ResetAll("2026-08-30"); err != nil {
		t.Fatal(err)
	}

	routines, _ := r.All()
	for _, routine := range routines {
		if routine.Completed || routine.Timer.IsRunning || routine.Timer.ElapsedSeconds != 0 {
			t.Errorf("%s not reset: %+v", routine.Title, routine)
		}
	}
	var marker string
	found, err := store.Get(storage.UserKey(storage.KeyLastReset, testUser), &marker)
	if err != nil || !found || marker != "2026-08-30" {
		t.Errorf("day marker = %q found=%v err=%v", marker, found, err)
	}

	noUser := NewRoutines(store, "", clock)
	if err := noUser.ResetAll("2026-08-30"); err != ErrNoUser {
		t.Errorf("ResetAll without a user: %v", err)
	}
}

func TestRoutinesByTimeOfDay(t *testing.T) {
	r := NewRoutines(newTestStore(t), testUser, testClock())
	r.Create(RoutineInput{Title: "Coffee", StartTime: "07:00"})
	r.Create(RoutineInput{Title: "Lunch", StartTime: "13:00"})
	r.Create(RoutineInput{Title: "Walk", StartTime: "19:00"})

	morning, err := r.ByTimeOfDay(models.Morning)
	if err != nil {
		t.Fatal(err)
	}
	if len(morning) != 1 || morning[0].Title != "Coffee" {
		t.Errorf("morning = %v", morning)
	}
}
