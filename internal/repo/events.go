package repo

import (
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/joeldevian/myday-rutinas/internal/models"
	"github.com/joeldevian/myday-rutinas/internal/storage"
	"github.com/joeldevian/myday-rutinas/internal/validation"
)

// Events is the repository for calendar events, bucketed by day key.
type Events struct {
	base
}

func NewEvents(store storage.Provider, userID string, clock clockwork.Clock) *Events {
	return &Events{base{store: store, userID: userID, clock: clock}}
}

func (e *Events) All() (models.Events, error) {
	if !e.signedIn() {
		return models.Events{}, nil
	}
	events := models.Events{}
	if _, err := e.store.Get(e.key(storage.KeyEvents), &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (e *Events) Replace(events models.Events) error {
	if !e.signedIn() {
		return ErrNoUser
	}
	e.put(storage.KeyEvents, events)
	return nil
}

// Add appends an event to its date bucket.
func (e *Events) Add(date, title string) (models.CalendarEvent, error) {
	if !e.signedIn() {
		return models.CalendarEvent{}, ErrNoUser
	}
	errs := validation.Title(title)
	if derrs := validation.Date(date); derrs != nil {
		if errs == nil {
			errs = validation.Errors{}
		}
		errs["date"] = derrs["date"]
	}
	if errs != nil {
		return models.CalendarEvent{}, errs
	}

	events, err := e.All()
	if err != nil {
		return models.CalendarEvent{}, err
	}

	event := models.CalendarEvent{
		ID:        uuid.New().String(),
		Title:     title,
		Date:      date,
		CreatedAt: e.clock.Now(),
	}

	next := cloneEvents(events)
	next[date] = append(next[date], event)
	e.put(storage.KeyEvents, next)
	return event, nil
}

// Update renames an event within its date bucket. Unknown ids change nothing.
func (e *Events) Update(date, id, title string) (models.CalendarEvent, bool, error) {
	if !e.signedIn() {
		return models.CalendarEvent{}, false, ErrNoUser
	}
	if errs := validation.Title(title); errs != nil {
		return models.CalendarEvent{}, false, errs
	}

	events, err := e.All()
	if err != nil {
		return models.CalendarEvent{}, false, err
	}

	var updated models.CalendarEvent
	matched := false
	next := cloneEvents(events)
	bucket := make([]models.CalendarEvent, len(events[date]))
	for i, event := range events[date] {
		if event.ID == id {
			matched = true
			event.Title = title
			updated = event
		}
		bucket[i] = event
	}
	if !matched {
		// Writing here would key an empty bucket under an unknown date.
		return models.CalendarEvent{}, false, nil
	}
	next[date] = bucket

	e.put(storage.KeyEvents, next)
	return updated, matched, nil
}

// Delete removes an event from its date bucket.
func (e *Events) Delete(date, id string) (bool, error) {
	if !e.signedIn() {
		return false, ErrNoUser
	}
	events, err := e.All()
	if err != nil {
		return false, err
	}

	next := cloneEvents(events)
	bucket := make([]models.CalendarEvent, 0, len(events[date]))
	for _, event := range events[date] {
		if event.ID != id {
			bucket = append(bucket, event)
		}
	}
	matched := len(bucket) != len(events[date])
	if !matched {
		return false, nil
	}
	if len(bucket) == 0 {
		delete(next, date)
	} else {
		next[date] = bucket
	}

	e.put(storage.KeyEvents, next)
	return matched, nil
}

// ForDate lists the events of one day in insertion order.
func (e *Events) ForDate(date string) ([]models.CalendarEvent, error) {
	events, err := e.All()
	if err != nil {
		return nil, err
	}
	return events[date], nil
}

func cloneEvents(events models.Events) models.Events {
	next := make(models.Events, len(events))
	for k, v := range events {
		next[k] = v
	}
	return next
}
