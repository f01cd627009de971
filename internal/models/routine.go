package models

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/joeldevian/myday-rutinas/internal/constants"
)

// TimeOfDay partitions the day into the three dashboard columns.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"   // 00:00–11:59
	Afternoon TimeOfDay = "afternoon" // 12:00–17:59
	Night     TimeOfDay = "night"     // 18:00–23:59
)

// Icon is the closed set of icon tags a routine may carry. The presentation
// layer resolves tags to glyphs; the core only stores and validates them.
type Icon string

const (
	IconCircle    Icon = "Circle"
	IconSun       Icon = "Sun"
	IconMoon      Icon = "Moon"
	IconCoffee    Icon = "Coffee"
	IconBook      Icon = "Book"
	IconDumbbell  Icon = "Dumbbell"
	IconBriefcase Icon = "Briefcase"
	IconHeart     Icon = "Heart"
	IconStar      Icon = "Star"
	IconMusic     Icon = "Music"
)

var knownIcons = map[Icon]bool{
	IconCircle: true, IconSun: true, IconMoon: true, IconCoffee: true,
	IconBook: true, IconDumbbell: true, IconBriefcase: true,
	IconHeart: true, IconStar: true, IconMusic: true,
}

func (i Icon) Valid() bool { return knownIcons[i] }

// UnmarshalJSON normalizes unknown icon tags to Circle so stale or imported
// data never carries an unrenderable tag.
func (i *Icon) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !knownIcons[Icon(s)] {
		*i = IconCircle
		return nil
	}
	*i = Icon(s)
	return nil
}

// TimerState is the per-routine stopwatch. Elapsed time while running is
// derived on read, never advanced by a ticking writer.
type TimerState struct {
	IsRunning      bool       `json:"isRunning"`
	ElapsedSeconds int        `json:"elapsedTime"`
	StartedAt      *time.Time `json:"startedAt"`
	PausedAt       *time.Time `json:"pausedAt"`
}

// Elapsed returns the total tracked seconds as of now.
func (t TimerState) Elapsed(now time.Time) int {
	if t.IsRunning && t.StartedAt != nil {
		return t.ElapsedSeconds + int(now.Sub(*t.StartedAt).Seconds())
	}
	return t.ElapsedSeconds
}

// Routine is a recurring time-boxed daily task.
type Routine struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	StartTime string     `json:"time"`              // HH:MM
	EndTime   string     `json:"endTime,omitempty"` // HH:MM, exclusive upper bound
	Icon      Icon       `json:"icon"`
	Completed bool       `json:"completed"`
	TimeOfDay TimeOfDay  `json:"timeOfDay"`
	CreatedAt time.Time  `json:"createdAt"`
	Timer     TimerState `json:"timer"`
}

// TimeOfDayFor maps a start time onto its day period. The partition is fixed:
// hours 0–11 are morning, 12–17 afternoon, 18–23 night.
func TimeOfDayFor(startTime string) TimeOfDay {
	h := parseHour(startTime)
	switch {
	case h <= 11:
		return Morning
	case h <= 17:
		return Afternoon
	default:
		return Night
	}
}

func parseHour(hhmm string) int {
	t, err := time.Parse(constants.TimeFormat, hhmm)
	if err != nil {
		return 0
	}
	return t.Hour()
}

func minutesOfDay(hhmm string) (int, bool) {
	t, err := time.Parse(constants.TimeFormat, hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// IsActiveAt reports whether the routine's window covers now: start <= now < end
// in minutes from midnight. Routines without an end time fall back to
// hour-of-day equality with the start time.
func (r Routine) IsActiveAt(now time.Time) bool {
	start, ok := minutesOfDay(r.StartTime)
	if !ok {
		return false
	}
	cur := now.Hour()*60 + now.Minute()
	if r.EndTime == "" {
		return now.Hour() == start/60
	}
	end, ok := minutesOfDay(r.EndTime)
	if !ok {
		return false
	}
	return cur >= start && cur < end
}

// IsPast reports whether the routine's start time has already passed today.
func (r Routine) IsPast(now time.Time) bool {
	start, ok := minutesOfDay(r.StartTime)
	if !ok {
		return false
	}
	return now.Hour()*60+now.Minute() > start
}

// SortByStartTime returns a new slice ordered by start time ascending. The
// sort is stable so routines sharing a start time keep their insertion order
// across edits.
func SortByStartTime(routines []Routine) []Routine {
	out := make([]Routine, len(routines))
	copy(out, routines)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}

// FilterByTimeOfDay returns the routines belonging to one day period.
func FilterByTimeOfDay(routines []Routine, tod TimeOfDay) []Routine {
	var out []Routine
	for _, r := range routines {
		if r.TimeOfDay == tod {
			out = append(out, r)
		}
	}
	return out
}
