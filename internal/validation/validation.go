package validation

import (
	"sort"
	"strings"
	"time"

	"github.com/joeldevian/myday-rutinas/internal/constants"
)

// Errors is a field-keyed validation error map. A nil/empty map means valid.
type Errors map[string]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// OrNil returns the map as an error, or nil when there is nothing in it.
// Returning a typed nil map through the error interface would be non-nil.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// ValidClock reports whether s is a well-formed HH:MM clock time.
func ValidClock(s string) bool {
	_, err := time.Parse(constants.TimeFormat, s)
	return err == nil
}

// Routine validates the fields of a routine create/update. endTime is
// optional but must be later than startTime when present.
func Routine(title, startTime, endTime string) Errors {
	errs := Errors{}
	if strings.TrimSpace(title) == "" {
		errs["title"] = "title is required"
	}
	if !ValidClock(startTime) {
		errs["startTime"] = "start time must be HH:MM"
	}
	if endTime != "" {
		switch {
		case !ValidClock(endTime):
			errs["endTime"] = "end time must be HH:MM"
		case ValidClock(startTime) && endTime <= startTime:
			errs["endTime"] = "end time must be after start time"
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Title validates a bare-title entity (events, goals, missions).
func Title(title string) Errors {
	if strings.TrimSpace(title) == "" {
		return Errors{"title": "title is required"}
	}
	return nil
}

// Date validates a YYYY-MM-DD day key.
func Date(s string) Errors {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return Errors{"date": "date must be YYYY-MM-DD"}
	}
	return nil
}
