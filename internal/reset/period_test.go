package reset

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestDayIdentifier(t *testing.T) {
	if got := DayIdentifier(day(2026, time.August, 29)); got != "2026-08-29" {
		t.Errorf("DayIdentifier = %q", got)
	}
	// changes exactly at midnight
	before := time.Date(2026, time.August, 29, 23, 59, 59, 0, time.UTC)
	after := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	if DayIdentifier(before) == DayIdentifier(after) {
		t.Error("identifiers should differ across midnight")
	}
}

func TestWeekIdentifier_StableWithinSundayWeek(t *testing.T) {
	// 2026-08-23 is a Sunday; the week runs through Saturday the 29th.
	want := WeekIdentifier(day(2026, time.August, 23))
	for d := 24; d <= 29; d++ {
		if got := WeekIdentifier(day(2026, time.August, d)); got != want {
			t.Errorf("Aug %d: %q, want %q", d, got, want)
		}
	}
	// the next Sunday starts a new week
	if got := WeekIdentifier(day(2026, time.August, 30)); got == want {
		t.Error("Sunday should begin a new week identifier")
	}
}

func TestWeekIdentifier_Value(t *testing.T) {
	if got := WeekIdentifier(day(2026, time.August, 29)); got != "2026-W34" {
		t.Errorf("WeekIdentifier = %q, want 2026-W34", got)
	}
}

func TestWeekIdentifier_SpringForwardWeek(t *testing.T) {
	// The US spring-forward Sunday is a 23-hour day. 2023-01-01 is a Sunday,
	// so every week that year starts on an exact 7-day multiple; a duration
	// based day count would merge the DST week with its successor.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	week := WeekIdentifier(time.Date(2023, time.March, 12, 10, 0, 0, 0, loc))
	next := WeekIdentifier(time.Date(2023, time.March, 19, 10, 0, 0, 0, loc))
	if week == next {
		t.Errorf("consecutive Sundays share identifier %q", week)
	}
	if week != "2023-W11" || next != "2023-W12" {
		t.Errorf("got %q and %q, want 2023-W11 and 2023-W12", week, next)
	}
}

func TestMonthIdentifier(t *testing.T) {
	if got := MonthIdentifier(day(2026, time.August, 29)); got != "2026-08" {
		t.Errorf("MonthIdentifier = %q", got)
	}
	if MonthIdentifier(day(2026, time.August, 31)) == MonthIdentifier(day(2026, time.September, 1)) {
		t.Error("identifiers should differ across the month boundary")
	}
}

func TestLastDayOfMonth(t *testing.T) {
	cases := []struct {
		t    time.Time
		want bool
	}{
		{day(2026, time.August, 31), true},
		{day(2026, time.August, 30), false},
		{day(2026, time.February, 28), true},
		{day(2028, time.February, 28), false}, // leap year
		{day(2028, time.February, 29), true},
		{day(2026, time.December, 31), true},
	}
	for _, c := range cases {
		if got := lastDayOfMonth(c.t); got != c.want {
			t.Errorf("lastDayOfMonth(%s) = %v, want %v", c.t.Format("2006-01-02"), got, c.want)
		}
	}
}
