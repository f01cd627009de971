package reset

import (
	"testing"
	"time"

	"github.com/joeldevian/myday-rutinas/internal/models"
)

func missions(completed, total int) []models.MonthlyMission {
	out := make([]models.MonthlyMission, total)
	for i := range out {
		out[i] = models.MonthlyMission{ID: string(rune('a' + i)), Completed: i < completed}
	}
	return out
}

func TestEvaluateMerit(t *testing.T) {
	cases := []struct {
		name             string
		completed, total int
		want             Award
	}{
		{"empty month", 0, 0, AwardNone},
		{"nothing done", 0, 5, AwardNone},
		{"one done", 1, 5, AwardNovato},
		{"two done", 2, 5, AwardNovato},
		{"three done", 3, 5, AwardElite},
		{"three of four", 3, 4, AwardElite},
		{"all done", 5, 5, AwardLeyenda},
		{"single mission completed", 1, 1, AwardLeyenda},
		{"three of three", 3, 3, AwardLeyenda},
	}
	for _, c := range cases {
		if got := EvaluateMerit(missions(c.completed, c.total)); got != c.want {
			t.Errorf("%s: EvaluateMerit = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestApply(t *testing.T) {
	tally := models.MeritTally{Novato: 1}

	tally = Apply(tally, AwardElite)
	if tally.Elite != 1 || tally.Novato != 1 || tally.Leyenda != 0 {
		t.Errorf("tally = %+v", tally)
	}

	tally = Apply(tally, AwardNone)
	if tally.Total() != 2 {
		t.Errorf("AwardNone must not change the tally: %+v", tally)
	}
}

func TestInEvaluationWindow(t *testing.T) {
	cases := []struct {
		t    time.Time
		want bool
	}{
		{time.Date(2026, time.August, 31, 23, 55, 0, 0, time.UTC), true},
		{time.Date(2026, time.August, 31, 23, 59, 59, 0, time.UTC), true},
		{time.Date(2026, time.August, 31, 23, 54, 59, 0, time.UTC), false},
		{time.Date(2026, time.August, 30, 23, 58, 0, 0, time.UTC), false}, // not the last day
		{time.Date(2026, time.February, 28, 23, 56, 0, 0, time.UTC), true},
		{time.Date(2028, time.February, 28, 23, 56, 0, 0, time.UTC), false}, // leap year
	}
	for _, c := range cases {
		if got := InEvaluationWindow(c.t); got != c.want {
			t.Errorf("InEvaluationWindow(%s) = %v, want %v", c.t.Format(time.RFC3339), got, c.want)
		}
	}
}

func TestMeritResetDue(t *testing.T) {
	if MeritResetDue(time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC)) {
		t.Error("not due before the target year")
	}
	if !MeritResetDue(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("due at the year boundary")
	}
	if !MeritResetDue(time.Date(2031, time.June, 15, 12, 0, 0, 0, time.UTC)) {
		t.Error("still due long after the boundary")
	}
}
