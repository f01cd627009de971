package models

import "time"

// WeeklyGoal tracks one intention across a Sunday-first week. DaysCompleted is
// a fixed-size array so the seven-slot invariant holds by construction
// (index 0 = Sunday .. 6 = Saturday).
type WeeklyGoal struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	DaysCompleted [7]bool   `json:"daysCompleted"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CompletedDays counts the checked days.
func (g WeeklyGoal) CompletedDays() int {
	n := 0
	for _, done := range g.DaysCompleted {
		if done {
			n++
		}
	}
	return n
}

// WeekStats summarizes checkbox progress across all goals for the week.
type WeekStats struct {
	TotalGoals          int `json:"totalGoals"`
	TotalCheckboxes     int `json:"totalCheckboxes"`
	CompletedCheckboxes int `json:"completedCheckboxes"`
	Percentage          int `json:"percentage"`
}
