// Package reset implements the periodic-reset state machines: daily routine
// reset, weekly goal reset, monthly mission reset with merit evaluation, and
// the stats retention sweep that rides the daily tick.
package reset

import (
	"fmt"
	"time"

	"github.com/joeldevian/myday-rutinas/internal/constants"
)

// A PeriodFunc computes a period identifier: a string stable within a period
// (day, week, month) that changes exactly at its boundary.
type PeriodFunc func(time.Time) string

// DayIdentifier identifies a calendar day (YYYY-MM-DD).
func DayIdentifier(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// WeekIdentifier identifies a Sunday-first week as "<year>-W<n>", where year
// and week number belong to the Sunday the week began on.
func WeekIdentifier(t time.Time) string {
	sunday := t.AddDate(0, 0, -int(t.Weekday()))

	// Count days calendar-wise. Subtracting wall-clock durations undercounts
	// across a short DST day and can merge two adjacent weeks.
	week := (sunday.YearDay() + 6) / 7

	return fmt.Sprintf("%d-W%d", sunday.Year(), week)
}

// MonthIdentifier identifies a calendar month (YYYY-MM).
func MonthIdentifier(t time.Time) string {
	return t.Format(constants.MonthFormat)
}

// lastDayOfMonth reports whether t falls on its month's final day.
func lastDayOfMonth(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}
