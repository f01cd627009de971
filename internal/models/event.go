package models

import "time"

// CalendarEvent is an ad-hoc note attached to a calendar day.
type CalendarEvent struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"createdAt"`
}

// Events maps a day key to that day's events, insertion order preserved.
type Events map[string][]CalendarEvent
