package models

import "time"

// MonthlyMission is a user-defined goal for the current month. The whole
// collection is discarded at the month boundary.
type MonthlyMission struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// MonthStats summarizes the month's missions.
type MonthStats struct {
	Total      int    `json:"total"`
	Completed  int    `json:"completed"`
	Percentage int    `json:"percentage"`
	MonthName  string `json:"monthName"`
	Year       int    `json:"year"`
	Identifier string `json:"identifier"`
}

var monthNames = [12]string{
	"ENERO", "FEBRERO", "MARZO", "ABRIL", "MAYO", "JUNIO",
	"JULIO", "AGOSTO", "SEPTIEMBRE", "OCTUBRE", "NOVIEMBRE", "DICIEMBRE",
}

// MonthName returns the display name for a month.
func MonthName(m time.Month) string {
	return monthNames[int(m)-1]
}
