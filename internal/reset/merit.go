package reset

import (
	"time"

	"github.com/joeldevian/myday-rutinas/internal/constants"
	"github.com/joeldevian/myday-rutinas/internal/models"
)

// Award is the outcome of one month's merit evaluation.
type Award string

const (
	AwardNone    Award = "none"
	AwardNovato  Award = "novato"
	AwardElite   Award = "elite"
	AwardLeyenda Award = "leyenda"
)

// EvaluateMerit grades a month's missions. Empty months award nothing; a
// fully completed month is leyenda; otherwise three or more completions earn
// elite and at least one earns novato.
func EvaluateMerit(missions []models.MonthlyMission) Award {
	total := len(missions)
	if total == 0 {
		return AwardNone
	}
	done := 0
	for _, m := range missions {
		if m.Completed {
			done++
		}
	}
	switch {
	case done == total:
		return AwardLeyenda
	case done >= constants.MeritEliteMin:
		return AwardElite
	case done >= 1:
		return AwardNovato
	default:
		return AwardNone
	}
}

// Apply adds an award to the tally. At most one tally cell changes.
func Apply(tally models.MeritTally, award Award) models.MeritTally {
	switch award {
	case AwardNovato:
		tally.Novato++
	case AwardElite:
		tally.Elite++
	case AwardLeyenda:
		tally.Leyenda++
	}
	return tally
}

// InEvaluationWindow reports whether now falls in the month-end evaluation
// window: the last calendar day of the month from 23:55 onward.
func InEvaluationWindow(now time.Time) bool {
	if !lastDayOfMonth(now) {
		return false
	}
	minute := now.Hour()*60 + now.Minute()
	return minute >= constants.MeritWindowHour*60+constants.MeritWindowMinute
}

// MeritResetDue reports whether the one-time tally wipe has come due: any
// instant on or after January 1st of the target year qualifies, so a session
// opened long after the boundary still applies it.
func MeritResetDue(now time.Time) bool {
	return now.Year() >= constants.MeritResetYear
}
