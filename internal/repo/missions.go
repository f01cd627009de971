package repo

import (
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/joeldevian/myday-rutinas/internal/constants"
	"github.com/joeldevian/myday-rutinas/internal/models"
	"github.com/joeldevian/myday-rutinas/internal/stats"
	"github.com/joeldevian/myday-rutinas/internal/storage"
	"github.com/joeldevian/myday-rutinas/internal/validation"
)

// Missions is the repository for monthly missions.
type Missions struct {
	base
}

func NewMissions(store storage.Provider, userID string, clock clockwork.Clock) *Missions {
	return &Missions{base{store: store, userID: userID, clock: clock}}
}

func (m *Missions) All() ([]models.MonthlyMission, error) {
	if !m.signedIn() {
		return nil, nil
	}
	var missions []models.MonthlyMission
	if _, err := m.store.Get(m.key(storage.KeyMissions), &missions); err != nil {
		return nil, err
	}
	return missions, nil
}

func (m *Missions) Replace(missions []models.MonthlyMission) error {
	if !m.signedIn() {
		return ErrNoUser
	}
	m.put(storage.KeyMissions, missions)
	return nil
}

func (m *Missions) Create(title string) (models.MonthlyMission, error) {
	if !m.signedIn() {
		return models.MonthlyMission{}, ErrNoUser
	}
	if errs := validation.Title(title); errs != nil {
		return models.MonthlyMission{}, errs
	}

	missions, err := m.All()
	if err != nil {
		return models.MonthlyMission{}, err
	}

	mission := models.MonthlyMission{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: m.clock.Now(),
	}
	m.put(storage.KeyMissions, append(missions, mission))
	return mission, nil
}

func (m *Missions) Rename(id, title string) (models.MonthlyMission, bool, error) {
	if !m.signedIn() {
		return models.MonthlyMission{}, false, ErrNoUser
	}
	if errs := validation.Title(title); errs != nil {
		return models.MonthlyMission{}, false, errs
	}

	missions, err := m.All()
	if err != nil {
		return models.MonthlyMission{}, false, err
	}

	var updated models.MonthlyMission
	matched := false
	next := make([]models.MonthlyMission, len(missions))
	for i, mission := range missions {
		if mission.ID == id {
			matched = true
			mission.Title = title
			updated = mission
		}
		next[i] = mission
	}

	m.put(storage.KeyMissions, next)
	return updated, matched, nil
}

func (m *Missions) Delete(id string) (bool, error) {
	if !m.signedIn() {
		return false, ErrNoUser
	}
	missions, err := m.All()
	if err != nil {
		return false, err
	}
	next := make([]models.MonthlyMission, 0, len(missions))
	for _, mission := range missions {
		if mission.ID != id {
			next = append(next, mission)
		}
	}
	m.put(storage.KeyMissions, next)
	return len(next) != len(missions), nil
}

// Toggle flips a mission's completion.
func (m *Missions) Toggle(id string) (models.MonthlyMission, bool, error) {
	if !m.signedIn() {
		return models.MonthlyMission{}, false, ErrNoUser
	}
	missions, err := m.All()
	if err != nil {
		return models.MonthlyMission{}, false, err
	}

	var updated models.MonthlyMission
	matched := false
	next := make([]models.MonthlyMission, len(missions))
	for i, mission := range missions {
		if mission.ID == id {
			matched = true
			mission.Completed = !mission.Completed
			updated = mission
		}
		next[i] = mission
	}

	m.put(storage.KeyMissions, next)
	return updated, matched, nil
}

// Clear discards the whole collection, as the month-boundary reset does.
func (m *Missions) Clear() error {
	if !m.signedIn() {
		return ErrNoUser
	}
	m.put(storage.KeyMissions, []models.MonthlyMission{})
	return nil
}

// Stats summarizes the current month's missions.
func (m *Missions) Stats() (models.MonthStats, error) {
	missions, err := m.All()
	if err != nil {
		return models.MonthStats{}, err
	}
	now := m.clock.Now()
	completed := 0
	for _, mission := range missions {
		if mission.Completed {
			completed++
		}
	}
	return models.MonthStats{
		Total:      len(missions),
		Completed:  completed,
		Percentage: stats.Percentage(completed, len(missions)),
		MonthName:  models.MonthName(now.Month()),
		Year:       now.Year(),
		Identifier: now.Format(constants.MonthFormat),
	}, nil
}
