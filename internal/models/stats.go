package models

// DaySummary is the persisted completion snapshot for one day.
type DaySummary struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Percentage int `json:"percentage"`
}

// StatsHistory maps day keys (YYYY-MM-DD) to their summaries.
type StatsHistory map[string]DaySummary

// DayStat is one row of the 7-day chart read model.
type DayStat struct {
	Date    string `json:"date"`
	DayName string `json:"dayName"`
	IsToday bool   `json:"isToday"`
	DaySummary
}
