package missions

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joeldevian/myday-rutinas/internal/models"
)

type AddMissionMsg struct{}

type RenameMissionMsg struct {
	ID string
}

type DeleteMissionMsg struct {
	ID string
}

type ToggleMissionMsg struct {
	ID string
}

type Item struct {
	Mission models.MonthlyMission
}

func (i Item) Title() string {
	if i.Mission.Completed {
		return "✓ " + i.Mission.Title
	}
	return "○ " + i.Mission.Title
}

func (i Item) Description() string {
	if i.Mission.Completed {
		return "completed"
	}
	return "pending"
}

func (i Item) FilterValue() string { return i.Mission.Title }

type KeyMap struct {
	Add    key.Binding
	Rename key.Binding
	Delete key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Rename: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "rename"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle done"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(missionList []models.MonthlyMission, width, height int) Model {
	l := list.New(toItems(missionList), list.NewDefaultDelegate(), width, height)
	l.Title = "Monthly missions"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Rename, keys.Delete, keys.Toggle}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func toItems(missionList []models.MonthlyMission) []list.Item {
	items := make([]list.Item, len(missionList))
	for i, m := range missionList {
		items[i] = Item{Mission: m}
	}
	return items
}

func (m *Model) SetMissions(missionList []models.MonthlyMission) {
	m.list.SetItems(toItems(missionList))
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
			return m, func() tea.Msg { return AddMissionMsg{} }
		case key.Matches(msg, m.keys.Rename):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return RenameMissionMsg{ID: i.Mission.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteMissionMsg{ID: i.Mission.ID} }
			}
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleMissionMsg{ID: i.Mission.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
