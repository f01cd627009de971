package storage

import "fmt"

// Base key names for every persisted collection and marker. The stored key is
// always user-scoped: myday_<base>_<userID>.
const (
	KeyRoutines       = "routines"
	KeyLastReset      = "last_reset"
	KeyEvents         = "events"
	KeyWeeklyGoals    = "weeklyGoals"
	KeyLastWeek       = "weeklyGoals_lastWeek"
	KeyMissions       = "monthlyMissions"
	KeyLastMonth      = "monthlyMissions_lastMonth"
	KeyMerit          = "merit"
	KeyLastEvaluated  = "merit_lastEvaluated"
	KeyMeritResetDone = "merit_reset_done"
	KeyStatsHistory   = "stats_history"
)

// UserKey builds the namespaced storage key for a user. Empty when no user is
// signed in; callers treat collections under an empty key as absent.
func UserKey(base, userID string) string {
	if userID == "" {
		return ""
	}
	return fmt.Sprintf("myday_%s_%s", base, userID)
}

// BaseKeys lists every base key a user's data may live under, in a stable
// order, for wholesale clears.
func BaseKeys() []string {
	return []string{
		KeyRoutines, KeyLastReset, KeyEvents, KeyWeeklyGoals, KeyLastWeek,
		KeyMissions, KeyLastMonth, KeyMerit, KeyLastEvaluated,
		KeyMeritResetDone, KeyStatsHistory,
	}
}
