package constants

import "time"

const (
	AppName           = "myday"
	Version           = "v1.0.0"
	DefaultConfigPath = "~/.config/myday/myday.db"

	// DateFormat is the standard day key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat identifies a calendar month (YYYY-MM)
	MonthFormat = "2006-01"

	// TimeFormat is the standard clock format used throughout the application (HH:MM)
	TimeFormat = "15:04"
)

const (
	// ResetPollInterval is the cadence at which period boundaries are re-checked.
	ResetPollInterval = time.Minute

	// CountdownTickInterval drives the countdown timer and stopwatch displays.
	CountdownTickInterval = time.Second

	// StatsRetentionDays bounds the stats history; entries strictly older are pruned.
	StatsRetentionDays = 30
)

// Merit evaluation of monthly missions.
const (
	// MeritEliteMin is the minimum completed-mission count for an elite tally
	// when the month was not fully completed.
	MeritEliteMin = 3

	// Merit evaluation only runs on the last calendar day of the month, from
	// MeritWindowHour:MeritWindowMinute onward.
	MeritWindowHour   = 23
	MeritWindowMinute = 55

	// MeritResetYear is the January 1st boundary on or after which the merit
	// tally is wiped once, independent of the monthly cycle.
	MeritResetYear = 2027
)

const (
	// BackupVersion tags exported backup documents.
	BackupVersion = "1.0.0"
)
