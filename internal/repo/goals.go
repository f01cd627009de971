package repo

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/joeldevian/myday-rutinas/internal/models"
	"github.com/joeldevian/myday-rutinas/internal/stats"
	"github.com/joeldevian/myday-rutinas/internal/storage"
	"github.com/joeldevian/myday-rutinas/internal/validation"
)

// Goals is the repository for weekly goals.
type Goals struct {
	base
}

func NewGoals(store storage.Provider, userID string, clock clockwork.Clock) *Goals {
	return &Goals{base{store: store, userID: userID, clock: clock}}
}

func (g *Goals) All() ([]models.WeeklyGoal, error) {
	if !g.signedIn() {
		return nil, nil
	}
	var goals []models.WeeklyGoal
	if _, err := g.store.Get(g.key(storage.KeyWeeklyGoals), &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (g *Goals) Replace(goals []models.WeeklyGoal) error {
	if !g.signedIn() {
		return ErrNoUser
	}
	g.put(storage.KeyWeeklyGoals, goals)
	return nil
}

func (g *Goals) Create(title string) (models.WeeklyGoal, error) {
	if !g.signedIn() {
		return models.WeeklyGoal{}, ErrNoUser
	}
	if errs := validation.Title(title); errs != nil {
		return models.WeeklyGoal{}, errs
	}

	goals, err := g.All()
	if err != nil {
		return models.WeeklyGoal{}, err
	}

	goal := models.WeeklyGoal{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: g.clock.Now(),
	}
	g.put(storage.KeyWeeklyGoals, append(goals, goal))
	return goal, nil
}

func (g *Goals) Rename(id, title string) (models.WeeklyGoal, bool, error) {
	if !g.signedIn() {
		return models.WeeklyGoal{}, false, ErrNoUser
	}
	if errs := validation.Title(title); errs != nil {
		return models.WeeklyGoal{}, false, errs
	}

	goals, err := g.All()
	if err != nil {
		return models.WeeklyGoal{}, false, err
	}

	var updated models.WeeklyGoal
	matched := false
	next := make([]models.WeeklyGoal, len(goals))
	for i, goal := range goals {
		if goal.ID == id {
			matched = true
			goal.Title = title
			updated = goal
		}
		next[i] = goal
	}

	g.put(storage.KeyWeeklyGoals, next)
	return updated, matched, nil
}

func (g *Goals) Delete(id string) (bool, error) {
	if !g.signedIn() {
		return false, ErrNoUser
	}
	goals, err := g.All()
	if err != nil {
		return false, err
	}
	next := make([]models.WeeklyGoal, 0, len(goals))
	for _, goal := range goals {
		if goal.ID != id {
			next = append(next, goal)
		}
	}
	g.put(storage.KeyWeeklyGoals, next)
	return len(next) != len(goals), nil
}

// ToggleDay flips one weekday checkbox (0 = Sunday .. 6 = Saturday).
func (g *Goals) ToggleDay(id string, day int) (models.WeeklyGoal, bool, error) {
	if !g.signedIn() {
		return models.WeeklyGoal{}, false, ErrNoUser
	}
	if day < 0 || day > 6 {
		return models.WeeklyGoal{}, false, fmt.Errorf("day index must be 0-6, got %d", day)
	}

	goals, err := g.All()
	if err != nil {
		return models.WeeklyGoal{}, false, err
	}

	var updated models.WeeklyGoal
	matched := false
	next := make([]models.WeeklyGoal, len(goals))
	for i, goal := range goals {
		if goal.ID == id {
			matched = true
			goal.DaysCompleted[day] = !goal.DaysCompleted[day]
			updated = goal
		}
		next[i] = goal
	}

	g.put(storage.KeyWeeklyGoals, next)
	return updated, matched, nil
}

// ResetAllProgress clears every checkbox and stamps the weekly marker, the
// same mutation the week-boundary reset performs.
func (g *Goals) ResetAllProgress(weekMarker string) error {
	if !g.signedIn() {
		return ErrNoUser
	}
	goals, err := g.All()
	if err != nil {
		return err
	}
	g.put(storage.KeyWeeklyGoals, ResetForNewWeek(goals))
	g.put(storage.KeyLastWeek, weekMarker)
	return nil
}

// ResetForNewWeek returns the goals with all seven checkboxes cleared; ids,
// titles, and creation times are untouched.
func ResetForNewWeek(goals []models.WeeklyGoal) []models.WeeklyGoal {
	next := make([]models.WeeklyGoal, len(goals))
	for i, goal := range goals {
		goal.DaysCompleted = [7]bool{}
		next[i] = goal
	}
	return next
}

// Stats summarizes the current week's checkbox progress.
func (g *Goals) Stats() (models.WeekStats, error) {
	goals, err := g.All()
	if err != nil {
		return models.WeekStats{}, err
	}
	total := len(goals) * 7
	completed := 0
	for _, goal := range goals {
		completed += goal.CompletedDays()
	}
	return models.WeekStats{
		TotalGoals:          len(goals),
		TotalCheckboxes:     total,
		CompletedCheckboxes: completed,
		Percentage:          stats.Percentage(completed, total),
	}, nil
}
