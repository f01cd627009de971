package routines

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joeldevian/myday-rutinas/internal/models"
	"github.com/joeldevian/myday-rutinas/internal/timer"
)

type AddRoutineMsg struct{}

type EditRoutineMsg struct {
	ID string
}

type DeleteRoutineMsg struct {
	ID string
}

type ToggleRoutineMsg struct {
	ID string
}

type StartTimerMsg struct {
	ID string
}

type PauseTimerMsg struct {
	ID string
}

type ResetTimerMsg struct {
	ID string
}

type Item struct {
	Routine models.Routine
	Now     time.Time
}

func (i Item) Title() string {
	title := i.Routine.Title
	if i.Routine.Completed {
		title = "✓ " + title
	} else if i.Routine.IsActiveAt(i.Now) {
		title = "▶ " + title
	} else {
		title = "○ " + title
	}
	return title
}

func (i Item) Description() string {
	window := i.Routine.StartTime
	if i.Routine.EndTime != "" {
		window += " - " + i.Routine.EndTime
	}
	desc := fmt.Sprintf("%s · %s", window, i.Routine.TimeOfDay)
	if !i.Routine.Completed && !i.Routine.IsActiveAt(i.Now) && i.Routine.IsPast(i.Now) {
		desc += " · missed"
	}
	if secs := i.Routine.Timer.Elapsed(i.Now); secs > 0 || i.Routine.Timer.IsRunning {
		state := "paused"
		if i.Routine.Timer.IsRunning {
			state = "running"
		}
		desc += fmt.Sprintf(" · %s %s", timer.FormatClock(secs), state)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Routine.Title }

type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Toggle key.Binding
	Start  key.Binding
	Pause  key.Binding
	Reset  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle done"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start timer"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause timer"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset timer"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
	now  time.Time
}

func New(items []models.Routine, now time.Time, width, height int) Model {
	l := list.New(toItems(items, now), list.NewDefaultDelegate(), width, height)
	l.Title = "Routines"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Edit, keys.Delete, keys.Toggle, keys.Start, keys.Pause, keys.Reset}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys, now: now}
}

func toItems(routines []models.Routine, now time.Time) []list.Item {
	items := make([]list.Item, len(routines))
	for i, r := range routines {
		items[i] = Item{Routine: r, Now: now}
	}
	return items
}

func (m *Model) SetRoutines(routines []models.Routine, now time.Time) {
	m.now = now
	m.list.SetItems(toItems(routines, now))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddRoutineMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditRoutineMsg{ID: i.Routine.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteRoutineMsg{ID: i.Routine.ID} }
			}
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleRoutineMsg{ID: i.Routine.ID} }
			}
		case key.Matches(msg, m.keys.Start):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return StartTimerMsg{ID: i.Routine.ID} }
			}
		case key.Matches(msg, m.keys.Pause):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return PauseTimerMsg{ID: i.Routine.ID} }
			}
		case key.Matches(msg, m.keys.Reset):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ResetTimerMsg{ID: i.Routine.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
