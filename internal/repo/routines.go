package repo

import (
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/joeldevian/myday-rutinas/internal/models"
	"github.com/joeldevian/myday-rutinas/internal/storage"
	"github.com/joeldevian/myday-rutinas/internal/timer"
	"github.com/joeldevian/myday-rutinas/internal/validation"
)

// Routines is the repository for the routine collection.
type Routines struct {
	base
}

func NewRoutines(store storage.Provider, userID string, clock clockwork.Clock) *Routines {
	return &Routines{base{store: store, userID: userID, clock: clock}}
}

// All returns the user's routines, applying pending data migrations. A
// changed collection is persisted back immediately so migrations run once.
func (r *Routines) All() ([]models.Routine, error) {
	if !r.signedIn() {
		return nil, nil
	}
	var routines []models.Routine
	if _, err := r.store.Get(r.key(storage.KeyRoutines), &routines); err != nil {
		return nil, err
	}
	migrated, changed := MigrateRoutines(routines)
	if changed {
		r.put(storage.KeyRoutines, migrated)
	}
	return migrated, nil
}

// Replace persists a full new collection value. Used by the reset engine and
// import, which construct the collection themselves.
func (r *Routines) Replace(routines []models.Routine) error {
	if !r.signedIn() {
		return ErrNoUser
	}
	r.put(storage.KeyRoutines, routines)
	return nil
}

// RoutineInput carries the user-provided fields of a new routine.
type RoutineInput struct {
	Title     string
	StartTime string
	EndTime   string
	Icon      models.Icon
}

// Create validates and appends a new routine, keeping the collection sorted
// by start time.
func (r *Routines) Create(in RoutineInput) (models.Routine, error) {
	if !r.signedIn() {
		return models.Routine{}, ErrNoUser
	}
	if errs := validation.Routine(in.Title, in.StartTime, in.EndTime); errs != nil {
		return models.Routine{}, errs
	}

	icon := in.Icon
	if !icon.Valid() {
		icon = models.IconCircle
	}

	routine := models.Routine{
		ID:        uuid.New().String(),
		Title:     in.Title,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		Icon:      icon,
		TimeOfDay: models.TimeOfDayFor(in.StartTime),
		CreatedAt: r.clock.Now(),
		Timer:     timer.IdleState(),
	}

	routines, err := r.All()
	if err != nil {
		return models.Routine{}, err
	}
	r.put(storage.KeyRoutines, models.SortByStartTime(append(routines, routine)))
	return routine, nil
}

// RoutinePatch holds optional field updates; nil fields are left untouched.
type RoutinePatch struct {
	Title     *string
	StartTime *string
	EndTime   *string
	Icon      *models.Icon
}

// Update applies a patch to the routine with the given id. A changed start
// time recomputes the derived TimeOfDay in the same mutation, and the
// collection is re-sorted. The bool reports whether the id matched; an
// unknown id leaves the stored collection unchanged.
func (r *Routines) Update(id string, patch RoutinePatch) (models.Routine, bool, error) {
	if !r.signedIn() {
		return models.Routine{}, false, ErrNoUser
	}
	routines, err := r.All()
	if err != nil {
		return models.Routine{}, false, err
	}

	var updated models.Routine
	matched := false
	next := make([]models.Routine, len(routines))
	for i, routine := range routines {
		if routine.ID != id {
			next[i] = routine
			continue
		}
		matched = true
		if patch.Title != nil {
			routine.Title = *patch.Title
		}
		if patch.StartTime != nil {
			routine.StartTime = *patch.StartTime
			routine.TimeOfDay = models.TimeOfDayFor(*patch.StartTime)
		}
		if patch.EndTime != nil {
			routine.EndTime = *patch.EndTime
		}
		if patch.Icon != nil && patch.Icon.Valid() {
			routine.Icon = *patch.Icon
		}
		if errs := validation.Routine(routine.Title, routine.StartTime, routine.EndTime); errs != nil {
			return models.Routine{}, true, errs
		}
		updated = routine
		next[i] = routine
	}

	r.put(storage.KeyRoutines, models.SortByStartTime(next))
	return updated, matched, nil
}

// Delete removes a routine by id. Unknown ids are a no-op; the bool reports
// whether anything was removed.
func (r *Routines) Delete(id string) (bool, error) {
	if !r.signedIn() {
		return false, ErrNoUser
	}
	routines, err := r.All()
	if err != nil {
		return false, err
	}
	next := make([]models.Routine, 0, len(routines))
	for _, routine := range routines {
		if routine.ID != id {
			next = append(next, routine)
		}
	}
	r.put(storage.KeyRoutines, next)
	return len(next) != len(routines), nil
}

// ToggleComplete flips a routine's completion. Completing a routine stops its
// stopwatch and returns it to idle while keeping the tracked seconds;
// un-completing leaves the stopwatch untouched.
func (r *Routines) ToggleComplete(id string) (models.Routine, bool, error) {
	if !r.signedIn() {
		return models.Routine{}, false, ErrNoUser
	}
	routines, err := r.All()
	if err != nil {
		return models.Routine{}, false, err
	}

	var updated models.Routine
	matched := false
	next := make([]models.Routine, len(routines))
	for i, routine := range routines {
		if routine.ID == id {
			matched = true
			if !routine.Completed {
				routine.Timer = models.TimerState{ElapsedSeconds: routine.Timer.Elapsed(r.clock.Now())}
			}
			routine.Completed = !routine.Completed
			updated = routine
		}
		next[i] = routine
	}

	r.put(storage.KeyRoutines, next)
	return updated, matched, nil
}

// StartTimer starts the routine's stopwatch.
func (r *Routines) StartTimer(id string) (models.Routine, bool, error) {
	return r.withTimer(id, func(ts models.TimerState) models.TimerState {
		return timer.Start(ts, r.clock.Now())
	})
}

// PauseTimer pauses the routine's stopwatch, folding the running span into
// the elapsed total.
func (r *Routines) PauseTimer(id string) (models.Routine, bool, error) {
	return r.withTimer(id, func(ts models.TimerState) models.TimerState {
		return timer.Pause(ts, r.clock.Now())
	})
}

// ResetTimer returns the routine's stopwatch to zero.
func (r *Routines) ResetTimer(id string) (models.Routine, bool, error) {
	return r.withTimer(id, func(models.TimerState) models.TimerState {
		return timer.IdleState()
	})
}

func (r *Routines) withTimer(id string, apply func(models.TimerState) models.TimerState) (models.Routine, bool, error) {
	if !r.signedIn() {
		return models.Routine{}, false, ErrNoUser
	}
	routines, err := r.All()
	if err != nil {
		return models.Routine{}, false, err
	}

	var updated models.Routine
	matched := false
	next := make([]models.Routine, len(routines))
	for i, routine := range routines {
		if routine.ID == id {
			matched = true
			routine.Timer = apply(routine.Timer)
			updated = routine
		}
		next[i] = routine
	}

	r.put(storage.KeyRoutines, next)
	return updated, matched, nil
}

// ResetAll clears completion and stopwatches across the whole collection and
// stamps the daily marker, exactly as the day-boundary reset does.
func (r *Routines) ResetAll(dayMarker string) error {
	if !r.signedIn() {
		return ErrNoUser
	}
	routines, err := r.All()
	if err != nil {
		return err
	}
	r.put(storage.KeyRoutines, ResetForNewDay(routines))
	r.put(storage.KeyLastReset, dayMarker)
	return nil
}

// ResetForNewDay returns the collection with period-scoped fields back at
// their defaults: completion cleared, stopwatches zeroed.
func ResetForNewDay(routines []models.Routine) []models.Routine {
	next := make([]models.Routine, len(routines))
	for i, routine := range routines {
		routine.Completed = false
		routine.Timer = timer.IdleState()
		next[i] = routine
	}
	return next
}

// ByID finds one routine.
func (r *Routines) ByID(id string) (models.Routine, bool, error) {
	routines, err := r.All()
	if err != nil {
		return models.Routine{}, false, err
	}
	for _, routine := range routines {
		if routine.ID == id {
			return routine, true, nil
		}
	}
	return models.Routine{}, false, nil
}

// ByTimeOfDay lists the routines of one day period.
func (r *Routines) ByTimeOfDay(tod models.TimeOfDay) ([]models.Routine, error) {
	routines, err := r.All()
	if err != nil {
		return nil, err
	}
	return models.FilterByTimeOfDay(routines, tod), nil
}
