// Package stats computes and persists daily completion snapshots and serves
// the 7-day chart read model.
package stats

import (
	"math"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/joeldevian/myday-rutinas/internal/constants"
	"github.com/joeldevian/myday-rutinas/internal/logger"
	"github.com/joeldevian/myday-rutinas/internal/models"
	"github.com/joeldevian/myday-rutinas/internal/storage"
)

// Percentage is the completion ratio rounded to a whole percent; 0 of 0 is 0.
func Percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// DaySnapshot is a computed point-in-time summary for one day.
type DaySnapshot struct {
	Date string
	models.DaySummary
}

// Take computes the completion snapshot of a routine collection for a day.
func Take(routines []models.Routine, date string) DaySnapshot {
	completed := 0
	for _, r := range routines {
		if r.Completed {
			completed++
		}
	}
	return DaySnapshot{
		Date: date,
		DaySummary: models.DaySummary{
			Total:      len(routines),
			Completed:  completed,
			Percentage: Percentage(completed, len(routines)),
		},
	}
}

// Prune returns the history without entries strictly older than the retention
// window ending at now.
func Prune(history models.StatsHistory, now time.Time) models.StatsHistory {
	cutoff := now.AddDate(0, 0, -constants.StatsRetentionDays).Format(constants.DateFormat)
	next := make(models.StatsHistory, len(history))
	for date, summary := range history {
		if date >= cutoff {
			next[date] = summary
		}
	}
	return next
}

// LastN builds exactly n chart rows in ascending date order ending at today.
// Days absent from history come back zero-valued; today is recomputed from
// the live routines so the current bar is always real-time.
func LastN(n int, routines []models.Routine, history models.StatsHistory, now time.Time) []models.DayStat {
	days := make([]models.DayStat, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		date := day.Format(constants.DateFormat)
		row := models.DayStat{
			Date:    date,
			DayName: dayNames[day.Weekday()],
			IsToday: i == 0,
		}
		if i == 0 {
			row.DaySummary = Take(routines, date).DaySummary
		} else {
			row.DaySummary = history[date]
		}
		days = append(days, row)
	}
	return days
}

var dayNames = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// Recorder persists snapshots into the user's stats history.
type Recorder struct {
	store  storage.Provider
	userID string
	clock  clockwork.Clock
}

func NewRecorder(store storage.Provider, userID string, clock clockwork.Clock) *Recorder {
	return &Recorder{store: store, userID: userID, clock: clock}
}

func (r *Recorder) key() string {
	return storage.UserKey(storage.KeyStatsHistory, r.userID)
}

// History returns the stored snapshot map; absent or unreadable history reads
// as empty.
func (r *Recorder) History() models.StatsHistory {
	if r.userID == "" {
		return models.StatsHistory{}
	}
	history := models.StatsHistory{}
	if _, err := r.store.Get(r.key(), &history); err != nil {
		logger.Error("failed to read stats history", "error", err)
		return models.StatsHistory{}
	}
	return history
}

func (r *Recorder) persist(history models.StatsHistory) {
	if r.userID == "" {
		return
	}
	if err := r.store.Put(r.key(), history); err != nil {
		logger.Error("write skipped", "key", storage.KeyStatsHistory, "error", err)
	}
}

// Commit upserts a snapshot into history. Repeated commits for the same day
// replace the entry, so the latest state always wins.
func (r *Recorder) Commit(snap DaySnapshot) {
	history := r.History()
	next := make(models.StatsHistory, len(history)+1)
	for k, v := range history {
		next[k] = v
	}
	next[snap.Date] = snap.DaySummary
	r.persist(next)
}

// CommitToday snapshots the live collection under today's date.
func (r *Recorder) CommitToday(routines []models.Routine) {
	r.Commit(Take(routines, r.clock.Now().Format(constants.DateFormat)))
}

// CommitOutgoingDay records the last known state of a day that is about to be
// reset, keyed to the outgoing day rather than today. Called by the daily
// reset just before completion flags are cleared.
func (r *Recorder) CommitOutgoingDay(routines []models.Routine, outgoingDate string) {
	r.Commit(Take(routines, outgoingDate))
}

// PruneStored drops entries older than the retention window and persists the
// survivors.
func (r *Recorder) PruneStored() {
	r.persist(Prune(r.History(), r.clock.Now()))
}

// LastNDays serves the chart rows from stored history plus the live routines.
func (r *Recorder) LastNDays(n int, routines []models.Routine) []models.DayStat {
	return LastN(n, routines, r.History(), r.clock.Now())
}
