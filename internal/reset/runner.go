package reset

import (
	"github.com/jonboulle/clockwork"

	"github.com/joeldevian/myday-rutinas/internal/logger"
	"github.com/joeldevian/myday-rutinas/internal/models"
	"github.com/joeldevian/myday-rutinas/internal/repo"
	"github.com/joeldevian/myday-rutinas/internal/stats"
	"github.com/joeldevian/myday-rutinas/internal/storage"
)

// Runner wires the four reset instantiations to the repositories and the
// stats recorder. Every entry point that can observe a boundary crossing
// (app load, the watch daemon's poll, the TUI's per-minute tick) funnels
// through Tick, so behavior is identical regardless of how the crossing was
// noticed, and re-running within a period is a no-op.
type Runner struct {
	store  storage.Provider
	userID string
	clock  clockwork.Clock

	routines *repo.Routines
	goals    *repo.Goals
	missions *repo.Missions
	recorder *stats.Recorder

	daily     *Engine
	weekly    *Engine
	monthly   *Engine
	evaluated *Engine
}

func NewRunner(store storage.Provider, userID string, clock clockwork.Clock) *Runner {
	return &Runner{
		store:     store,
		userID:    userID,
		clock:     clock,
		routines:  repo.NewRoutines(store, userID, clock),
		goals:     repo.NewGoals(store, userID, clock),
		missions:  repo.NewMissions(store, userID, clock),
		recorder:  stats.NewRecorder(store, userID, clock),
		daily:     NewEngine(store, userID, storage.KeyLastReset, DayIdentifier),
		weekly:    NewEngine(store, userID, storage.KeyLastWeek, WeekIdentifier),
		monthly:   NewEngine(store, userID, storage.KeyLastMonth, MonthIdentifier),
		evaluated: NewEngine(store, userID, storage.KeyLastEvaluated, MonthIdentifier),
	}
}

// Tick evaluates every periodic reset against the current wall clock.
func (r *Runner) Tick() {
	now := r.clock.Now()

	// Day boundary: capture the outgoing day's snapshot before completion
	// flags are cleared, then reset, then sweep old stats entries.
	if crossed, current, outgoing := r.daily.Check(now); crossed {
		routines, err := r.routines.All()
		if err != nil {
			logger.Error("daily reset skipped", "error", err)
		} else {
			if outgoing != "" {
				r.recorder.CommitOutgoingDay(routines, outgoing)
			}
			if err := r.routines.Replace(repo.ResetForNewDay(routines)); err == nil {
				r.recorder.PruneStored()
				r.daily.Commit(current)
				logger.Info("daily reset applied", "day", current)
			}
		}
	}

	// Week boundary: clear goal checkboxes, keep the goals.
	if crossed, current, _ := r.weekly.Check(now); crossed {
		goals, err := r.goals.All()
		if err != nil {
			logger.Error("weekly reset skipped", "error", err)
		} else if err := r.goals.Replace(repo.ResetForNewWeek(goals)); err == nil {
			r.weekly.Commit(current)
			logger.Info("weekly reset applied", "week", current)
		}
	}

	// Merit evaluation runs inside its month-end window, once per month,
	// strictly before the mission collection can be cleared below.
	if r.userID != "" && InEvaluationWindow(now) {
		if due, current, _ := r.evaluated.Check(now); due {
			missions, err := r.missions.All()
			if err != nil {
				logger.Error("merit evaluation skipped", "error", err)
			} else {
				if award := EvaluateMerit(missions); award != AwardNone {
					r.putTally(Apply(r.Tally(), award))
					logger.Info("merit awarded", "month", current, "award", award)
				}
				r.evaluated.Commit(current)
			}
		}
	}

	// Month boundary: the whole mission collection is discarded.
	if crossed, current, _ := r.monthly.Check(now); crossed {
		if err := r.missions.Clear(); err == nil {
			r.monthly.Commit(current)
			logger.Info("monthly reset applied", "month", current)
		}
	}

	// One-time tally wipe at the fixed year boundary. Checked on every tick
	// once due, so a session opened past the boundary still converges.
	if r.userID != "" && MeritResetDue(now) && !r.meritResetApplied() {
		r.putTally(models.MeritTally{})
		if err := r.store.Put(storage.UserKey(storage.KeyMeritResetDone, r.userID), true); err != nil {
			logger.Error("write skipped", "key", storage.KeyMeritResetDone, "error", err)
		}
		logger.Info("merit tally reset")
	}
}

// Tally reads the persisted merit tally; absent reads as zero.
func (r *Runner) Tally() models.MeritTally {
	var tally models.MeritTally
	if r.userID == "" {
		return tally
	}
	if _, err := r.store.Get(storage.UserKey(storage.KeyMerit, r.userID), &tally); err != nil {
		logger.Error("failed to read merit tally", "error", err)
	}
	return tally
}

func (r *Runner) putTally(tally models.MeritTally) {
	if err := r.store.Put(storage.UserKey(storage.KeyMerit, r.userID), tally); err != nil {
		logger.Error("write skipped", "key", storage.KeyMerit, "error", err)
	}
}

func (r *Runner) meritResetApplied() bool {
	var done bool
	if _, err := r.store.Get(storage.UserKey(storage.KeyMeritResetDone, r.userID), &done); err != nil {
		return false
	}
	return done
}
