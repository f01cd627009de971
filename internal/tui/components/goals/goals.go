package goals

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joeldevian/myday-rutinas/internal/models"
)

type AddGoalMsg struct{}

type RenameGoalMsg struct {
	ID string
}

type DeleteGoalMsg struct {
	ID string
}

type ToggleDayMsg struct {
	ID  string
	Day int
}

var dayLetters = [7]string{"D", "L", "M", "X", "J", "V", "S"}

type Item struct {
	Goal models.WeeklyGoal
}

func (i Item) Title() string {
	return i.Goal.Title
}

func (i Item) Description() string {
	var week strings.Builder
	for d, done := range i.Goal.DaysCompleted {
		if done {
			week.WriteString(dayLetters[d])
		} else {
			week.WriteString("·")
		}
	}
	return fmt.Sprintf("%s  %d/7", week.String(), i.Goal.CompletedDays())
}

func (i Item) FilterValue() string { return i.Goal.Title }

type KeyMap struct {
	Add    key.Binding
	Rename key.Binding
	Delete key.Binding
	Days   key.Binding
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
		Days: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6"),
			key.WithHelp("0-6", "toggle day (0=Sun)"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(goalList []models.WeeklyGoal, width, height int) Model {
	l := list.New(toItems(goalList), list.NewDefaultDelegate(), width, height)
	l.Title = "Weekly goals"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Rename, keys.Delete, keys.Days}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys}
}

func toItems(goalList []models.WeeklyGoal) []list.Item {
	items := make([]list.Item, len(goalList))
	for i, g := range goalList {
		items[i] = Item{Goal: g}
	}
	return items
}

func (m *Model) SetGoals(goalList []models.WeeklyGoal) {
	m.list.SetItems(toItems(goalList))
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
			return m, func() tea.Msg { return AddGoalMsg{} }
		case key.Matches(msg, m.keys.Rename):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return RenameGoalMsg{ID: i.Goal.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteGoalMsg{ID: i.Goal.ID} }
			}
		case key.Matches(msg, m.keys.Days):
			if i, ok := m.list.SelectedItem().(Item); ok {
				day := int(msg.String()[0] - '0')
				return m, func() tea.Msg { return ToggleDayMsg{ID: i.Goal.ID, Day: day} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
