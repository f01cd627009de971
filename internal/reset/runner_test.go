package reset

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/joeldevian/myday-rutinas/internal/models"
	"github.com/joeldevian/myday-rutinas/internal/repo"
	"github.com/joeldevian/myday-rutinas/internal/stats"
	"github.com/joeldevian/myday-rutinas/internal/storage"
)

type fixture struct {
	store    storage.Provider
	clock    *clockwork.FakeClock
	runner   *Runner
	routines *repo.Routines
	goals    *repo.Goals
	missions *repo.Missions
	recorder *stats.Recorder
}

func newFixture(t *testing.T, at time.Time) *fixture {
	t.Helper()
	store := newTestStore(t)
	clock := clockwork.NewFakeClockAt(at)
	return &fixture{
		store:    store,
		clock:    clock,
		runner:   NewRunner(store, "user-1", clock),
		routines: repo.NewRoutines(store, "user-1", clock),
		goals:    repo.NewGoals(store, "user-1", clock),
		missions: repo.NewMissions(store, "user-1", clock),
		recorder: stats.NewRecorder(store, "user-1", clock),
	}
}

func TestRunnerTick_DailyReset(t *testing.T) {
	f := newFixture(t, time.Date(2026, time.August, 29, 22, 0, 0, 0, time.UTC))

	// settle the markers for the current periods first
	f.runner.Tick()

	a, _ := f.routines.Create(repo.RoutineInput{Title: "A", StartTime: "08:00", EndTime: "09:00"})
	f.routines.Create(repo.RoutineInput{Title: "B", StartTime: "21:00", EndTime: "22:00"})
	f.routines.ToggleComplete(a.ID)

	// same day: nothing happens
	f.clock.Advance(time.Minute)
	f.runner.Tick()
	routines, _ := f.routines.All()
	if !routines[0].Completed {
		t.Fatal("tick within the day must not reset")
	}

	// cross midnight
	f.clock.Advance(3 * time.Hour)
	f.runner.Tick()

	routines, _ = f.routines.All()
	for _, r := range routines {
		if r.Completed {
			t.Errorf("%s still completed after the day boundary", r.Title)
		}
	}
	if len(routines) != 2 {
		t.Errorf("reset must keep the routines themselves, got %d", len(routines))
	}

	// the outgoing day's snapshot was recorded before the wipe
	history := f.recorder.History()
	snap, ok := history["2026-08-29"]
	if !ok {
		t.Fatal("outgoing day snapshot missing")
	}
	if snap.Total != 2 || snap.Completed != 1 || snap.Percentage != 50 {
		t.Errorf("outgoing snapshot = %+v", snap)
	}

	// re-ticking the new day is a no-op
	f.routines.ToggleComplete(a.ID)
	f.clock.Advance(time.Minute)
	f.runner.Tick()
	routines, _ = f.routines.All()
	if !routines[0].Completed {
		t.Error("second tick on the same day must not reset again")
	}
}

func TestRunnerTick_WeeklyReset(t *testing.T) {
	// Saturday evening; the next Sunday starts a new week.
	f := newFixture(t, time.Date(2026, time.August, 29, 23, 0, 0, 0, time.UTC))
	f.runner.Tick()

	goal, _ := f.goals.Create("Run")
	f.goals.ToggleDay(goal.ID, 1)
	f.goals.ToggleDay(goal.ID, 3)

	f.clock.Advance(2 * time.Hour) // Sunday 01:00
	f.runner.Tick()

	goals, _ := f.goals.All()
	if len(goals) != 1 {
		t.Fatalf("goal count changed: %d", len(goals))
	}
	if goals[0].CompletedDays() != 0 {
		t.Errorf("checkboxes survived the week boundary: %v", goals[0].DaysCompleted)
	}
	if goals[0].ID != goal.ID || goals[0].Title != "Run" {
		t.Error("weekly reset must preserve the goals themselves")
	}
}

func TestRunnerTick_MeritThenMonthlyClear(t *testing.T) {
	// inside the month-end window on August 31st
	f := newFixture(t, time.Date(2026, time.August, 31, 23, 50, 0, 0, time.UTC))
	f.runner.Tick()

	a, _ := f.missions.Create("A")
	b, _ := f.missions.Create("B")
	f.missions.Create("C")
	f.missions.Toggle(a.ID)
	f.missions.Toggle(b.ID)

	// before 23:55: no evaluation yet
	f.runner.Tick()
	if tally := f.runner.Tally(); tally.Total() != 0 {
		t.Fatalf("evaluated before the window: %+v", tally)
	}

	// in the window: 2 of 3 completed earns novato, missions still intact
	f.clock.Advance(6 * time.Minute) // 23:56
	f.runner.Tick()
	tally := f.runner.Tally()
	if tally.Novato != 1 || tally.Total() != 1 {
		t.Fatalf("tally after evaluation = %+v", tally)
	}
	missions, _ := f.missions.All()
	if len(missions) != 3 {
		t.Error("evaluation must not clear the missions")
	}

	// a second tick in the same window must not double-award
	f.clock.Advance(time.Minute)
	f.runner.Tick()
	if tally := f.runner.Tally(); tally.Total() != 1 {
		t.Errorf("double award: %+v", tally)
	}

	// crossing into September discards the collection, tally untouched
	f.clock.Advance(10 * time.Minute)
	f.runner.Tick()
	missions, _ = f.missions.All()
	if len(missions) != 0 {
		t.Errorf("missions survived the month boundary: %d", len(missions))
	}
	if tally := f.runner.Tally(); tally.Novato != 1 {
		t.Errorf("tally changed at the month boundary: %+v", tally)
	}
}

func TestRunnerTick_ClosedAppSkipsEvaluationWindow(t *testing.T) {
	// App was closed during the whole evaluation window; the next tick is
	// already September. The month clears without any award.
	f := newFixture(t, time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC))
	f.runner.Tick()

	a, _ := f.missions.Create("A")
	f.missions.Toggle(a.ID)

	f.clock.Advance(18*24*time.Hour + 6*time.Hour) // September 2nd
	f.runner.Tick()

	if tally := f.runner.Tally(); tally.Total() != 0 {
		t.Errorf("award granted outside the window: %+v", tally)
	}
	missions, _ := f.missions.All()
	if len(missions) != 0 {
		t.Error("missions should be cleared")
	}
}

func TestRunnerTick_AnnualTallyWipe(t *testing.T) {
	f := newFixture(t, time.Date(2026, time.December, 31, 12, 0, 0, 0, time.UTC))
	f.runner.Tick()

	if err := f.store.Put(storage.UserKey(storage.KeyMerit, "user-1"), models.MeritTally{Novato: 2, Elite: 1}); err != nil {
		t.Fatal(err)
	}

	// still 2026: nothing happens
	f.runner.Tick()
	if tally := f.runner.Tally(); tally.Total() != 3 {
		t.Fatalf("tally wiped early: %+v", tally)
	}

	// cross into 2027
	f.clock.Advance(24 * time.Hour)
	f.runner.Tick()
	if tally := f.runner.Tally(); tally.Total() != 0 {
		t.Errorf("tally not wiped: %+v", tally)
	}

	// the wipe is one-time: later awards survive subsequent ticks
	if err := f.store.Put(storage.UserKey(storage.KeyMerit, "user-1"), models.MeritTally{Leyenda: 1}); err != nil {
		t.Fatal(err)
	}
	f.clock.Advance(time.Hour)
	f.runner.Tick()
	if tally := f.runner.Tally(); tally.Leyenda != 1 {
		t.Errorf("wipe ran twice: %+v", tally)
	}
}

func TestRunnerTick_NoUserIsInert(t *testing.T) {
	store := newTestStore(t)
	clock := clockwork.NewFakeClockAt(time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC))
	runner := NewRunner(store, "", clock)

	runner.Tick()
	clock.Advance(48 * time.Hour)
	runner.Tick()

	keys, _ := store.Keys("")
	if len(keys) != 0 {
		t.Errorf("runner without a user wrote keys: %v", keys)
	}
}
