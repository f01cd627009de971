package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/jonboulle/clockwork"

	"github.com/joeldevian/myday-rutinas/internal/constants"
	"github.com/joeldevian/myday-rutinas/internal/repo"
	"github.com/joeldevian/myday-rutinas/internal/reset"
	"github.com/joeldevian/myday-rutinas/internal/stats"
	"github.com/joeldevian/myday-rutinas/internal/timer"
	"github.com/joeldevian/myday-rutinas/internal/tui/components/goals"
	"github.com/joeldevian/myday-rutinas/internal/tui/components/missions"
	"github.com/joeldevian/myday-rutinas/internal/tui/components/routines"
)

type SessionState int

const (
	StateRoutines SessionState = iota
	StateGoals
	StateMissions
	StateStats
	StateTimer
	StateForm
	StateConfirmDelete
)

type formTarget int

const (
	formNone formTarget = iota
	formAddRoutine
	formEditRoutine
	formAddGoal
	formRenameGoal
	formAddMission
	formRenameMission
	formCountdown
)

type deleteTarget int

const (
	deleteRoutine deleteTarget = iota
	deleteGoal
	deleteMission
)

// Deps is the opened per-user working set the TUI operates on.
type Deps struct {
	Routines *repo.Routines
	Goals    *repo.Goals
	Missions *repo.Missions
	Recorder *stats.Recorder
	Runner   *reset.Runner
	Clock    clockwork.Clock
}

type KeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.PrevTab, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextTab, k.PrevTab, k.Quit}}
}

type Model struct {
	deps          Deps
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	routinesModel routines.Model
	goalsModel    goals.Model
	missionsModel missions.Model
	statsBar      progress.Model

	countdown *timer.Countdown

	form          *huh.Form
	routineForm   *RoutineFormModel
	titleForm     *TitleFormModel
	countdownForm *CountdownFormModel
	formTarget    formTarget
	editingID     string

	deleteKind deleteTarget
	deleteID   string

	now        time.Time
	lastMinute string
	width      int
	height     int
	quitting   bool
}

func NewModel(deps Deps) Model {
	now := deps.Clock.Now()

	routineList, err := deps.Routines.All()
	if err != nil {
		routineList = nil
	}
	goalList, err := deps.Goals.All()
	if err != nil {
		goalList = nil
	}
	missionList, err := deps.Missions.All()
	if err != nil {
		missionList = nil
	}

	return Model{
		deps:          deps,
		state:         StateRoutines,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		routinesModel: routines.New(routineList, now, 0, 0),
		goalsModel:    goals.New(goalList, 0, 0),
		missionsModel: missions.New(missionList, 0, 0),
		statsBar:      progress.New(progress.WithDefaultGradient()),
		countdown:     timer.NewCountdown(TerminalBell{}),
		now:           now,
		lastMinute:    now.Format(constants.DateFormat + " " + constants.TimeFormat),
	}
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(constants.CountdownTickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) refreshRoutines() {
	if routineList, err := m.deps.Routines.All(); err == nil {
		m.routinesModel.SetRoutines(routineList, m.now)
	}
}

func (m *Model) refreshGoals() {
	if goalList, err := m.deps.Goals.All(); err == nil {
		m.goalsModel.SetGoals(goalList)
	}
}

func (m *Model) refreshMissions() {
	if missionList, err := m.deps.Missions.All(); err == nil {
		m.missionsModel.SetMissions(missionList)
	}
}

func (m *Model) refreshAll() {
	m.refreshRoutines()
	m.refreshGoals()
	m.refreshMissions()
}
