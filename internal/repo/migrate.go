package repo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joeldevian/myday-rutinas/internal/models"
)

// routineMigration rewrites a loaded routine collection to the current shape.
// The bool reports whether anything changed and needs persisting.
type routineMigration func([]models.Routine) ([]models.Routine, bool)

// The chain is applied in order, once per load.
var routineMigrations = []routineMigration{
	backfillEndTimes,
	deriveTimeOfDay,
}

// MigrateRoutines runs the migration chain over a freshly loaded collection.
func MigrateRoutines(routines []models.Routine) ([]models.Routine, bool) {
	changed := false
	for _, step := range routineMigrations {
		var c bool
		routines, c = step(routines)
		changed = changed || c
	}
	return routines, changed
}

// backfillEndTimes gives pre-endTime records an end one hour after the start.
func backfillEndTimes(routines []models.Routine) ([]models.Routine, bool) {
	changed := false
	next := make([]models.Routine, len(routines))
	for i, routine := range routines {
		if routine.EndTime == "" && routine.StartTime != "" {
			routine.EndTime = addHour(routine.StartTime)
			changed = true
		}
		next[i] = routine
	}
	return next, changed
}

// deriveTimeOfDay repairs records whose stored timeOfDay drifted from the
// partition the start time dictates.
func deriveTimeOfDay(routines []models.Routine) ([]models.Routine, bool) {
	changed := false
	next := make([]models.Routine, len(routines))
	for i, routine := range routines {
		if want := models.TimeOfDayFor(routine.StartTime); routine.TimeOfDay != want {
			routine.TimeOfDay = want
			changed = true
		}
		next[i] = routine
	}
	return next, changed
}

func addHour(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return hhmm
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return hhmm
	}
	return fmt.Sprintf("%02d:%s", (h+1)%24, parts[1])
}
