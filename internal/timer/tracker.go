// Package timer holds the per-routine stopwatch transitions and the
// standalone countdown timer. All transitions build new values; elapsed time
// while running is derived from the start instant, never ticked by a writer.
package timer

import (
	"fmt"
	"time"

	"github.com/joeldevian/myday-rutinas/internal/models"
)

// IdleState is the zero stopwatch.
func IdleState() models.TimerState {
	return models.TimerState{}
}

// Start begins (or resumes) tracking from now. Starting an already-running
// stopwatch is a no-op.
func Start(ts models.TimerState, now time.Time) models.TimerState {
	if ts.IsRunning {
		return ts
	}
	started := now
	return models.TimerState{
		IsRunning:      true,
		ElapsedSeconds: ts.ElapsedSeconds,
		StartedAt:      &started,
	}
}

// Pause stops tracking and folds the running span into the elapsed total.
func Pause(ts models.TimerState, now time.Time) models.TimerState {
	if !ts.IsRunning {
		return ts
	}
	paused := now
	return models.TimerState{
		ElapsedSeconds: ts.Elapsed(now),
		PausedAt:       &paused,
	}
}

// FormatClock renders a second count as MM:SS, or HH:MM:SS past the hour.
func FormatClock(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
